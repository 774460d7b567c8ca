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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func parseRequest(t *testing.T, apiCall string) *RouteRequest {
	t.Helper()
	r := NewRouteRequest(DefaultOutputFormat)
	require.NoError(t, ParseInto(apiCall, r))
	return r
}

func TestRouteRequestDefaults(t *testing.T) {
	r := parseRequest(t, "/viaroute")
	assert.Equal(t, &RouteRequest{
		Service:        "viaroute",
		OutputFormat:   DefaultOutputFormat,
		ZoomLevel:      DefaultZoomLevel,
		NumResults:     DefaultNumResults,
		MatchingBeta:   DefaultMatchingBeta,
		GPSPrecision:   DefaultGPSPrecision,
		Geometry:       true,
		Compression:    true,
		AlternateRoute: true,
	}, r)

	assert.NoError(t, r.Validate())
}

func TestRouteRequestRanges(t *testing.T) {
	for _, tt := range []struct {
		query      string
		zoom       int16
		numResults int16
	}{
		{"z=0", 0, DefaultNumResults},
		{"z=18", 18, DefaultNumResults},
		{"z=19", DefaultZoomLevel, DefaultNumResults},
		{"z=-1", DefaultZoomLevel, DefaultNumResults},
		{"z=3&z=19", 3, DefaultNumResults},
		{"num_results=100", DefaultZoomLevel, 100},
		{"num_results=101", DefaultZoomLevel, DefaultNumResults},
		{"num_results=0", DefaultZoomLevel, DefaultNumResults},
	} {
		t.Run(tt.query, func(t *testing.T) {
			r := parseRequest(t, "/viaroute?"+tt.query)
			assert.Equal(t, tt.zoom, r.ZoomLevel)
			assert.Equal(t, tt.numResults, r.NumResults)
		})
	}
}

func TestRouteRequestScalars(t *testing.T) {
	r := parseRequest(t, "/viaroute?output=gpx&checksum=99&instructions=true&geometry=false&compression=false"+
		"&uturns=true&alt=false&classify=true&matching_beta=2.5&gps_precision=10&geomformat=cmp")

	assert.Equal(t, "gpx", r.OutputFormat)
	assert.Equal(t, uint32(99), r.Checksum)
	assert.True(t, r.Instructions)
	assert.False(t, r.Geometry)
	assert.False(t, r.Compression)
	assert.True(t, r.AllUTurns)
	assert.False(t, r.AlternateRoute)
	assert.True(t, r.Classify)
	assert.Equal(t, float32(2.5), r.MatchingBeta)
	assert.Equal(t, float32(10), r.GPSPrecision)
	assert.True(t, r.DeprecatedAPI)
	assert.Equal(t, "cmp", r.GeomFormat)
}

func TestRouteRequestLocations(t *testing.T) {
	r := parseRequest(t, "/table?src=1,2&b=10,20&src=3,4&dst=5,6&u=true&t=7&loc=8,9&hint=abc")

	yes := true
	ts := uint32(7)
	assert.Equal(t, []Location{
		{Coordinate: Coordinate{Lat: 1, Lon: 2}, Bearing: &Bearing{Value: 10, Range: 20, HasRange: true}},
		{Coordinate: Coordinate{Lat: 3, Lon: 4}},
	}, r.Sources)
	assert.Equal(t, []Location{
		{Coordinate: Coordinate{Lat: 5, Lon: 6}, UTurn: &yes, Timestamp: &ts},
	}, r.Destinations)
	assert.Equal(t, []Location{
		{Coordinate: Coordinate{Lat: 8, Lon: 9}, Hint: "abc"},
	}, r.Locations)
}

func TestStandaloneModifiersApplyToLastLocation(t *testing.T) {
	r := parseRequest(t, "/viaroute?b=1&t=2&loc=1,2&z=3&t=5&loc=3,4&uturns=true&hint=x")

	require.Len(t, r.Locations, 2)
	require.NotNil(t, r.Locations[0].Timestamp)
	assert.Equal(t, uint32(5), *r.Locations[0].Timestamp)
	assert.Nil(t, r.Locations[0].Bearing)
	assert.Equal(t, "x", r.Locations[1].Hint)
}

func TestModifiersWithoutLocationAreDropped(t *testing.T) {
	r := parseRequest(t, "/viaroute?b=10&u=true&t=5&hint=x")
	assert.Empty(t, r.Locations)
	assert.Empty(t, r.Sources)
	assert.Empty(t, r.Destinations)
}

func TestRouteRequestUTurn(t *testing.T) {
	r := parseRequest(t, "/viaroute?uturns=true&loc=1,2&u=false&loc=3,4")
	require.Len(t, r.Locations, 2)
	assert.False(t, r.UTurn(r.Locations[0]))
	assert.True(t, r.UTurn(r.Locations[1]))

	r = parseRequest(t, "/viaroute?loc=1,2&u=true&loc=3,4")
	assert.True(t, r.UTurn(r.Locations[0]))
	assert.False(t, r.UTurn(r.Locations[1]))
}

func TestCompressedGeometry(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	want := []Location{
		{Coordinate: Coordinate{Lat: 38.5, Lon: -120.2}},
		{Coordinate: Coordinate{Lat: 40.7, Lon: -120.95}},
		{Coordinate: Coordinate{Lat: 43.252, Lon: -126.453}},
	}

	for _, tt := range []struct {
		title string
		query string
		want  []Location
	}{{
		title: "plain",
		query: "locs=_p~iF~ps|U_ulLnnqC_mqNvxq`@",
		want:  want,
	}, {
		title: "escaped",
		query: "locs=_p~iF~ps%7CU_ulLnnqC_mqNvxq%60@",
		want:  want,
	}, {
		title: "replaces the locations",
		query: "loc=1,2&locs=_p~iF~ps|U",
		want:  want[:1],
	}, {
		title: "followed by a location",
		query: "locs=_p~iF~ps|U&loc=1,2&hint=x",
		want:  []Location{want[0], {Coordinate: Coordinate{Lat: 1, Lon: 2}, Hint: "x"}},
	}} {
		t.Run(tt.title, func(t *testing.T) {
			r := parseRequest(t, "/viaroute?"+tt.query)
			require.NoError(t, r.Validate())
			if d := cmp.Diff(tt.want, r.Locations, approx); d != "" {
				t.Errorf("unexpected locations: %s", d)
			}
		})
	}
}

func TestInvalidCompressedGeometry(t *testing.T) {
	for _, query := range []string{
		"locs=_p~iF~ps|U_",
		"locs=_p~iF%ZZ",
	} {
		r := parseRequest(t, "/viaroute?loc=1,2&"+query)
		assert.Error(t, r.Validate(), query)
		assert.Empty(t, r.Locations, query)
	}

	r := parseRequest(t, "/viaroute?locs=_p~iF~ps|U_&locs=_p~iF~ps|U")
	assert.NoError(t, r.Validate())
	assert.Len(t, r.Locations, 1)
}

func TestJSONPCallback(t *testing.T) {
	r := parseRequest(t, "/viaroute?jsonp=cb%5B0%5D")
	assert.Equal(t, "cb%5B0%5D", r.JSONPParameter)

	cb, err := r.JSONPCallback()
	require.NoError(t, err)
	assert.Equal(t, "cb[0]", cb)
}

func TestRouteRequestStringKeepsGeometry(t *testing.T) {
	r := parseRequest(t, "/viaroute?locs=_p~iF~ps|U_ulLnnqC&loc=1,2")
	require.Len(t, r.Locations, 3)
	assert.Equal(t, "/viaroute?output=json&z=18&checksum=0&num_results=1&matching_beta=5&gps_precision=5"+
		"&instructions=false&geometry=true&compression=true&uturns=false&alt=true&classify=false"+
		"&locs=_p~iF~ps|U_ulLnnqC&loc=1,2", r.String())

	r = parseRequest(t, "/viaroute?locs=abc")
	require.Error(t, r.Validate())
	r2 := parseRequest(t, r.String())
	assert.Equal(t, "abc", r2.CompressedGeometry)
	assert.EqualError(t, r2.Validate(), r.Validate().Error())
}

func TestLanguageTag(t *testing.T) {
	tag, err := parseRequest(t, "/viaroute").LanguageTag()
	require.NoError(t, err)
	assert.Equal(t, language.Und, tag)

	tag, err = parseRequest(t, "/viaroute?hl=de").LanguageTag()
	require.NoError(t, err)
	assert.Equal(t, language.German.String(), tag.String())

	_, err = parseRequest(t, "/viaroute?hl=abcdefghi").LanguageTag()
	assert.Error(t, err)
}

func TestRouteRequestString(t *testing.T) {
	for _, input := range []string{
		"/locate",
		"/viaroute?loc=52.5,13.4&b=90,20&u=true&loc=52.6,13.5&t=3&hint=abc",
		"/viaroute?z=3&output=gpx&jsonp=cb%5B0%5D&hl=de&checksum=5&num_results=7&matching_beta=0.1&gps_precision=1e-3",
		"/viaroute?instructions=true&geometry=false&compression=false&uturns=true&alt=false&classify=true&geomformat=cmp",
		"/table?src=1,2&b=-10&src=3,4&dst=5,6&u=false&loc=7,8",
		"/viaroute?b=1&loc=1,2&z=3&t=5",
		"/viaroute?locs=_p~iF~ps|U_ulLnnqC",
		"/viaroute?loc=9,9&locs=_p~iF~ps|U_ulLnnqC&b=5&loc=1,2&t=3&src=3,4",
		"/viaroute?locs=%5Fp~iF~ps%7CU_ulLnnqC",
		"/viaroute?locs=abc&loc=1,2",
	} {
		t.Run(input, func(t *testing.T) {
			r := parseRequest(t, input)
			r2 := parseRequest(t, r.String())
			if d := cmp.Diff(r, r2, cmpopts.IgnoreUnexported(RouteRequest{})); d != "" {
				t.Errorf("%s: unexpected request after reparsing: %s", r.String(), d)
			}

			assert.Equal(t, r.String(), r2.String())
			assert.Equal(t, r.Validate() == nil, r2.Validate() == nil)
		})
	}
}
