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

// Handler receives the values of a successfully parsed API call. The
// methods are called in the order of appearance in the query, preceded
// by SetService. A handler instance must not be shared between
// concurrent parses.
type Handler interface {
	SetService(name string)
	SetZoomLevel(z int16)
	SetOutputFormat(format string)

	// SetJSONPParameter receives the callback name as it appears in the
	// query, percent escapes are not decoded.
	SetJSONPParameter(name string)

	SetChecksum(v uint32)
	SetInstructionFlag(v bool)
	SetGeometryFlag(v bool)
	SetCompressionFlag(v bool)
	AddCoordinate(lat, lon float64)
	AddSource(lat, lon float64)
	AddDestination(lat, lon float64)
	AddHint(token string)
	AddTimestamp(t uint32)

	// AddBearing receives the bearing value and its range. When the
	// range was not specified, hasRange is false and rng is
	// DefaultBearingRange.
	AddBearing(value int32, hasRange bool, rng int32)

	SetUTurn(v bool)
	SetAllUTurns(v bool)
	SetLanguage(tag string)
	SetAlternateRouteFlag(v bool)
	SetDeprecatedAPIFlag(geomformat string)
	SetNumberOfResults(n int16)
	SetMatchingBeta(v float32)
	SetGPSPrecision(v float32)
	SetClassify(v bool)
	GetCoordinatesFromGeometry(payload string)
}
