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

/*
Package apiquery implements the parser of the API calls received by the
routing services, e.g:

    /viaroute?loc=52.5,13.4&loc=52.6,13.5&output=json

An API call starts with '/' and the name of the service, optionally
followed by '?' and a query. The query contains one or more parameters in
the form key=value, separated by '&'. The first parameter can be
prefixed by '&', too. The complete input needs to match, there is no
prefix matching.


Parameters

    z=<int16>              zoom level
    output=<letters>       output format
    jsonp=<escaped>        jsonp callback name, %XX escapes are kept
    checksum=<uint32>      checksum of the data
    instructions=<bool>    print turn instructions
    geometry=<bool>        return the route geometry
    compression=<bool>     compress the route geometry
    loc=<lat>,<lon>        via location
    src=<lat>,<lon>        source location
    dst=<lat>,<lon>        destination location
    hint=<token>           location hint, [a-zA-Z0-9_.-]
    t=<uint32>             location timestamp
    b=<int>[,<int>]        location bearing and range, range defaults to 10
    u=<bool>               u-turn at the location
    uturns=<bool>          u-turns at all locations
    hl=<letters>           language
    alt=<bool>             alternative route
    geomformat=<letters>   deprecated geometry format
    num_results=<int16>    number of results
    matching_beta=<float>  map matching beta
    gps_precision=<float>  map matching gps precision
    classify=<bool>        classify the map matching result
    locs=<polyline>        locations as compressed polyline

The boolean values are exactly 'true' or 'false'. Unknown keys are
rejected.


Location Modifiers

The b, u, t and hint parameters directly following a loc, src or dst
parameter are its modifiers. Each of them can appear at most once for
the same location, in any order:

    /viaroute?loc=1,2&hint=abc&t=5&u=true
    /viaroute?loc=1,2&u=true&t=5&hint=abc

describe the same location, while

    /viaroute?loc=1,2&b=1&b=2

fails. Modifiers that do not follow a location, e.g. at the beginning of
the query or after a zoom parameter, are accepted as standalone
parameters.


Parsing and Handlers

Parse returns the parsed parameters as a Call, without side effects.
The Handler interface receives the values of a Call, in the order of
appearance, via Call.Replay. ParseInto calls the handler only when the
complete input was successfully parsed. RouteRequest is a Handler
collecting the parameters into a route request.

The complete grammar, in EBNF, is available via GrammarDoc and Grammar.
*/
package apiquery
