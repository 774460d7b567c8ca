// Copyright 2015 Zalando SE
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package apiquery

// Key identifies a query parameter.
type Key string

const (
	KeyZoom           Key = "z"
	KeyOutput         Key = "output"
	KeyJSONP          Key = "jsonp"
	KeyChecksum       Key = "checksum"
	KeyInstructions   Key = "instructions"
	KeyGeometry       Key = "geometry"
	KeyCompression    Key = "compression"
	KeyLocation       Key = "loc"
	KeySource         Key = "src"
	KeyDestination    Key = "dst"
	KeyHint           Key = "hint"
	KeyTimestamp      Key = "t"
	KeyBearing        Key = "b"
	KeyUTurn          Key = "u"
	KeyUTurns         Key = "uturns"
	KeyLanguage       Key = "hl"
	KeyAlternateRoute Key = "alt"
	KeyGeomFormat     Key = "geomformat"
	KeyNumResults     Key = "num_results"
	KeyMatchingBeta   Key = "matching_beta"
	KeyGPSPrecision   Key = "gps_precision"
	KeyClassify       Key = "classify"
	KeyLocs           Key = "locs"
)

// DefaultBearingRange is reported for bearings without an explicit
// range.
const DefaultBearingRange = 10

// Coordinate is the value of the loc, src and dst parameters.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bearing is the value of the b parameter.
type Bearing struct {
	Value    int32 `json:"value"`
	Range    int32 `json:"range"`
	HasRange bool  `json:"-"`
}

// Param is a single parsed query parameter. The type of Value depends
// on the key:
//
//	z, num_results                                          int16
//	checksum, t                                             uint32
//	matching_beta, gps_precision                            float32
//	instructions, geometry, compression, u, uturns,
//	alt, classify                                           bool
//	loc, src, dst                                           Coordinate
//	b                                                       Bearing
//	output, jsonp, hint, hl, geomformat, locs               string
//
// Only loc, src and dst parameters have modifiers: the b, u, t and hint
// parameters attached to them, in the order of appearance.
type Param struct {
	Key       Key
	Value     interface{}
	Modifiers []*Param
}

// Call is the side effect free result of parsing an API call.
type Call struct {
	Service string
	Params  []*Param
}

// Location is a loc, src or dst parameter together with its
// modifiers. The order of the modifiers in the query does not affect
// its value.
type Location struct {
	Coordinate
	Bearing   *Bearing `json:"bearing,omitempty"`
	UTurn     *bool    `json:"uturn,omitempty"`
	Timestamp *uint32  `json:"timestamp,omitempty"`
	Hint      string   `json:"hint,omitempty"`
}

func isMarker(k Key) bool {
	switch k {
	case KeyLocation, KeySource, KeyDestination:
		return true
	default:
		return false
	}
}

// Location returns the location described by a loc, src or dst
// parameter. For other parameters, it returns false.
func (p *Param) Location() (Location, bool) {
	c, ok := p.Value.(Coordinate)
	if !ok || !isMarker(p.Key) {
		return Location{}, false
	}

	l := Location{Coordinate: c}
	for _, m := range p.Modifiers {
		switch m.Key {
		case KeyBearing:
			b := m.Value.(Bearing)
			l.Bearing = &b
		case KeyUTurn:
			u := m.Value.(bool)
			l.UTurn = &u
		case KeyTimestamp:
			t := m.Value.(uint32)
			l.Timestamp = &t
		case KeyHint:
			l.Hint = m.Value.(string)
		}
	}

	return l, true
}

// Replay reports the service and the parameters of the call to the
// handler, in the order of appearance.
func (c *Call) Replay(h Handler) {
	h.SetService(c.Service)
	for _, p := range c.Params {
		p.replay(h)
	}
}

func (p *Param) replay(h Handler) {
	switch p.Key {
	case KeyZoom:
		h.SetZoomLevel(p.Value.(int16))
	case KeyOutput:
		h.SetOutputFormat(p.Value.(string))
	case KeyJSONP:
		h.SetJSONPParameter(p.Value.(string))
	case KeyChecksum:
		h.SetChecksum(p.Value.(uint32))
	case KeyInstructions:
		h.SetInstructionFlag(p.Value.(bool))
	case KeyGeometry:
		h.SetGeometryFlag(p.Value.(bool))
	case KeyCompression:
		h.SetCompressionFlag(p.Value.(bool))
	case KeyLocation:
		c := p.Value.(Coordinate)
		h.AddCoordinate(c.Lat, c.Lon)
	case KeySource:
		c := p.Value.(Coordinate)
		h.AddSource(c.Lat, c.Lon)
	case KeyDestination:
		c := p.Value.(Coordinate)
		h.AddDestination(c.Lat, c.Lon)
	case KeyHint:
		h.AddHint(p.Value.(string))
	case KeyTimestamp:
		h.AddTimestamp(p.Value.(uint32))
	case KeyBearing:
		b := p.Value.(Bearing)
		h.AddBearing(b.Value, b.HasRange, b.Range)
	case KeyUTurn:
		h.SetUTurn(p.Value.(bool))
	case KeyUTurns:
		h.SetAllUTurns(p.Value.(bool))
	case KeyLanguage:
		h.SetLanguage(p.Value.(string))
	case KeyAlternateRoute:
		h.SetAlternateRouteFlag(p.Value.(bool))
	case KeyGeomFormat:
		h.SetDeprecatedAPIFlag(p.Value.(string))
	case KeyNumResults:
		h.SetNumberOfResults(p.Value.(int16))
	case KeyMatchingBeta:
		h.SetMatchingBeta(p.Value.(float32))
	case KeyGPSPrecision:
		h.SetGPSPrecision(p.Value.(float32))
	case KeyClassify:
		h.SetClassify(p.Value.(bool))
	case KeyLocs:
		h.GetCoordinatesFromGeometry(p.Value.(string))
	}

	for _, m := range p.Modifiers {
		m.replay(h)
	}
}
