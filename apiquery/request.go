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
	"fmt"
	"net/url"
	"strings"

	"github.com/twpayne/go-polyline"
	"golang.org/x/text/language"
)

// Default values of a RouteRequest.
const (
	DefaultOutputFormat = "json"
	DefaultZoomLevel    = 18
	DefaultNumResults   = 1
	DefaultMatchingBeta = 5
	DefaultGPSPrecision = 5
	MaxZoomLevel        = 18
	MaxNumResults       = 100
)

const (
	geometryEscapeChar = "%"
	geometryDimensions = 2
)

// RouteRequest is the Handler collecting the parameters of an API call
// into the route request consumed by the routing services.
type RouteRequest struct {
	Service        string  `json:"service"`
	OutputFormat   string  `json:"output"`
	JSONPParameter string  `json:"jsonp,omitempty"`
	Language       string  `json:"language,omitempty"`
	ZoomLevel      int16   `json:"zoom"`
	Checksum       uint32  `json:"checksum"`
	NumResults     int16   `json:"numResults"`
	MatchingBeta   float32 `json:"matchingBeta"`
	GPSPrecision   float32 `json:"gpsPrecision"`

	Instructions   bool `json:"instructions"`
	Geometry       bool `json:"geometry"`
	Compression    bool `json:"compression"`
	AllUTurns      bool `json:"uturns"`
	AlternateRoute bool `json:"alternateRoute"`
	Classify       bool `json:"classify"`

	DeprecatedAPI bool   `json:"deprecatedAPI"`
	GeomFormat    string `json:"geomformat,omitempty"`

	Locations    []Location `json:"locations,omitempty"`
	Sources      []Location `json:"sources,omitempty"`
	Destinations []Location `json:"destinations,omitempty"`

	// CompressedGeometry is the raw payload of the locs parameter.
	CompressedGeometry string `json:"compressedGeometry,omitempty"`

	last        *Location
	geometryErr error

	// number of leading locations decoded from CompressedGeometry
	geometryLocations int
}

// NewRouteRequest creates a route request with the default values,
// using outputFormat when no output parameter is given.
func NewRouteRequest(outputFormat string) *RouteRequest {
	return &RouteRequest{
		OutputFormat:   outputFormat,
		ZoomLevel:      DefaultZoomLevel,
		NumResults:     DefaultNumResults,
		MatchingBeta:   DefaultMatchingBeta,
		GPSPrecision:   DefaultGPSPrecision,
		Geometry:       true,
		Compression:    true,
		AlternateRoute: true,
	}
}

func (r *RouteRequest) SetService(name string)        { r.Service = name }
func (r *RouteRequest) SetOutputFormat(format string) { r.OutputFormat = format }
func (r *RouteRequest) SetJSONPParameter(name string) { r.JSONPParameter = name }
func (r *RouteRequest) SetChecksum(v uint32)          { r.Checksum = v }
func (r *RouteRequest) SetInstructionFlag(v bool)     { r.Instructions = v }
func (r *RouteRequest) SetGeometryFlag(v bool)        { r.Geometry = v }
func (r *RouteRequest) SetCompressionFlag(v bool)     { r.Compression = v }
func (r *RouteRequest) SetAllUTurns(v bool)           { r.AllUTurns = v }
func (r *RouteRequest) SetLanguage(tag string)        { r.Language = tag }
func (r *RouteRequest) SetAlternateRouteFlag(v bool)  { r.AlternateRoute = v }
func (r *RouteRequest) SetMatchingBeta(v float32)     { r.MatchingBeta = v }
func (r *RouteRequest) SetGPSPrecision(v float32)     { r.GPSPrecision = v }
func (r *RouteRequest) SetClassify(v bool)            { r.Classify = v }

// SetZoomLevel ignores levels outside of 0..MaxZoomLevel.
func (r *RouteRequest) SetZoomLevel(z int16) {
	if z >= 0 && z <= MaxZoomLevel {
		r.ZoomLevel = z
	}
}

// SetNumberOfResults ignores values outside of 1..MaxNumResults.
func (r *RouteRequest) SetNumberOfResults(n int16) {
	if n > 0 && n <= MaxNumResults {
		r.NumResults = n
	}
}

func (r *RouteRequest) SetDeprecatedAPIFlag(geomformat string) {
	r.DeprecatedAPI = true
	r.GeomFormat = geomformat
}

func appendLocation(l []Location, lat, lon float64) ([]Location, *Location) {
	l = append(l, Location{Coordinate: Coordinate{Lat: lat, Lon: lon}})
	return l, &l[len(l)-1]
}

func (r *RouteRequest) AddCoordinate(lat, lon float64) {
	r.Locations, r.last = appendLocation(r.Locations, lat, lon)
}

func (r *RouteRequest) AddSource(lat, lon float64) {
	r.Sources, r.last = appendLocation(r.Sources, lat, lon)
}

func (r *RouteRequest) AddDestination(lat, lon float64) {
	r.Destinations, r.last = appendLocation(r.Destinations, lat, lon)
}

// The location modifiers apply to the last added location of any kind.
// Without a location, they are dropped.

func (r *RouteRequest) AddHint(token string) {
	if r.last != nil {
		r.last.Hint = token
	}
}

func (r *RouteRequest) AddTimestamp(t uint32) {
	if r.last != nil {
		r.last.Timestamp = &t
	}
}

func (r *RouteRequest) AddBearing(value int32, hasRange bool, rng int32) {
	if r.last != nil {
		r.last.Bearing = &Bearing{Value: value, Range: rng, HasRange: hasRange}
	}
}

func (r *RouteRequest) SetUTurn(v bool) {
	if r.last != nil {
		r.last.UTurn = &v
	}
}

// GetCoordinatesFromGeometry replaces the locations with the ones
// decoded from a compressed polyline. Percent escapes in the payload
// are decoded first.
func (r *RouteRequest) GetCoordinatesFromGeometry(payload string) {
	r.CompressedGeometry = payload
	r.Locations, r.last, r.geometryErr = nil, nil, nil
	r.geometryLocations = 0

	if strings.Contains(payload, geometryEscapeChar) {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			r.geometryErr = fmt.Errorf("invalid geometry escape: %w", err)
			return
		}

		payload = unescaped
	}

	coords, rest, err := polyline.DecodeCoords([]byte(payload))
	if err == nil && len(rest) > 0 {
		err = fmt.Errorf("%d trailing bytes", len(rest))
	}

	if err != nil {
		r.geometryErr = fmt.Errorf("invalid geometry: %w", err)
		return
	}

	for _, c := range coords {
		if len(c) != geometryDimensions {
			continue
		}

		r.Locations = append(r.Locations, Location{Coordinate: Coordinate{
			Lat: c[0],
			Lon: c[1],
		}})
	}

	r.geometryLocations = len(r.Locations)
}

// Validate returns the error of decoding the compressed geometry, if
// any.
func (r *RouteRequest) Validate() error {
	return r.geometryErr
}

// UTurn tells whether a u-turn is allowed at l, falling back to the
// request wide setting.
func (r *RouteRequest) UTurn(l Location) bool {
	if l.UTurn != nil {
		return *l.UTurn
	}

	return r.AllUTurns
}

// JSONPCallback returns the jsonp parameter with the percent escapes
// decoded.
func (r *RouteRequest) JSONPCallback() (string, error) {
	return url.PathUnescape(r.JSONPParameter)
}

// LanguageTag returns the hl parameter as a BCP 47 language tag. When
// not set, it returns language.Und.
func (r *RouteRequest) LanguageTag() (language.Tag, error) {
	if r.Language == "" {
		return language.Und, nil
	}

	return language.Parse(r.Language)
}
