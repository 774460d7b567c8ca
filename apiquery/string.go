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

import (
	"strconv"
	"strings"
)

func formatFloat(f float64, bitSize int) string {
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

func formatValue(v interface{}) string {
	switch vt := v.(type) {
	case string:
		return vt
	case bool:
		return strconv.FormatBool(vt)
	case int16:
		return strconv.FormatInt(int64(vt), 10)
	case uint32:
		return strconv.FormatUint(uint64(vt), 10)
	case float32:
		return formatFloat(float64(vt), 32)
	case Coordinate:
		return formatFloat(vt.Lat, 64) + string(listSeparator) + formatFloat(vt.Lon, 64)
	case Bearing:
		s := strconv.FormatInt(int64(vt.Value), 10)
		if vt.HasRange {
			s += string(listSeparator) + strconv.FormatInt(int64(vt.Range), 10)
		}

		return s
	default:
		return ""
	}
}

// String returns the parameter in its query form, followed by its
// modifiers.
func (p *Param) String() string {
	s := []string{string(p.Key) + string(keyValueChar) + formatValue(p.Value)}
	for _, m := range p.Modifiers {
		s = append(s, m.String())
	}

	return strings.Join(s, string(paramSeparator))
}

// String returns the API call in a form accepted by Parse.
func (c *Call) String() string {
	if len(c.Params) == 0 {
		return "/" + c.Service
	}

	s := make([]string, len(c.Params))
	for i, p := range c.Params {
		s[i] = p.String()
	}

	return "/" + c.Service + "?" + strings.Join(s, string(paramSeparator))
}

func (l Location) param(k Key) *Param {
	p := &Param{Key: k, Value: l.Coordinate}
	if l.Bearing != nil {
		p.Modifiers = append(p.Modifiers, &Param{Key: KeyBearing, Value: *l.Bearing})
	}

	if l.UTurn != nil {
		p.Modifiers = append(p.Modifiers, &Param{Key: KeyUTurn, Value: *l.UTurn})
	}

	if l.Timestamp != nil {
		p.Modifiers = append(p.Modifiers, &Param{Key: KeyTimestamp, Value: *l.Timestamp})
	}

	if l.Hint != "" {
		p.Modifiers = append(p.Modifiers, &Param{Key: KeyHint, Value: l.Hint})
	}

	return p
}

// Call returns an API call that, parsed into a request with the same
// default output format, results in an equal request. A compressed
// geometry is kept as its raw payload, followed by the locations added
// after it.
func (r *RouteRequest) Call() *Call {
	c := &Call{Service: r.Service}
	add := func(k Key, v interface{}) {
		c.Params = append(c.Params, &Param{Key: k, Value: v})
	}

	addString := func(k Key, v string) {
		if v != "" {
			add(k, v)
		}
	}

	addString(KeyOutput, r.OutputFormat)
	addString(KeyJSONP, r.JSONPParameter)
	addString(KeyLanguage, r.Language)
	add(KeyZoom, r.ZoomLevel)
	add(KeyChecksum, r.Checksum)
	add(KeyNumResults, r.NumResults)
	add(KeyMatchingBeta, r.MatchingBeta)
	add(KeyGPSPrecision, r.GPSPrecision)
	add(KeyInstructions, r.Instructions)
	add(KeyGeometry, r.Geometry)
	add(KeyCompression, r.Compression)
	add(KeyUTurns, r.AllUTurns)
	add(KeyAlternateRoute, r.AlternateRoute)
	add(KeyClassify, r.Classify)
	if r.DeprecatedAPI {
		addString(KeyGeomFormat, r.GeomFormat)
	}

	locations := r.Locations
	if r.CompressedGeometry != "" {
		add(KeyLocs, r.CompressedGeometry)
		locations = locations[r.geometryLocations:]
	}

	for _, l := range locations {
		c.Params = append(c.Params, l.param(KeyLocation))
	}

	for _, l := range r.Sources {
		c.Params = append(c.Params, l.param(KeySource))
	}

	for _, l := range r.Destinations {
		c.Params = append(c.Params, l.param(KeyDestination))
	}

	return c
}

func (r *RouteRequest) String() string {
	return r.Call().String()
}
