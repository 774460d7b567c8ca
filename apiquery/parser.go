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

type valueType int

const (
	plainValue valueType = iota
	dottedValue
	percentValue
	polylineValue
	boolValue
	int16Value
	uint32Value
	float32Value
	coordinateValue
	bearingValue
)

var valueTypes = map[Key]valueType{
	KeyZoom:           int16Value,
	KeyOutput:         plainValue,
	KeyJSONP:          percentValue,
	KeyChecksum:       uint32Value,
	KeyInstructions:   boolValue,
	KeyGeometry:       boolValue,
	KeyCompression:    boolValue,
	KeyLocation:       coordinateValue,
	KeySource:         coordinateValue,
	KeyDestination:    coordinateValue,
	KeyHint:           dottedValue,
	KeyTimestamp:      uint32Value,
	KeyBearing:        bearingValue,
	KeyUTurn:          boolValue,
	KeyUTurns:         boolValue,
	KeyLanguage:       plainValue,
	KeyAlternateRoute: boolValue,
	KeyGeomFormat:     plainValue,
	KeyNumResults:     int16Value,
	KeyMatchingBeta:   float32Value,
	KeyGPSPrecision:   float32Value,
	KeyClassify:       boolValue,
	KeyLocs:           polylineValue,
}

type parser struct {
	input     string
	code      string
	lastToken string
}

func newParser(input string) *parser {
	return &parser{input: input, code: input}
}

func (p *parser) position() int { return len(p.input) - len(p.code) }

func (p *parser) fail(err error) error {
	return p.failAt(p.position(), err)
}

func (p *parser) failAt(position int, err error) error {
	return &ParseError{Position: position, Token: p.lastToken, Err: err}
}

func (p *parser) accept(token, rest string) {
	p.lastToken = token
	p.code = rest
}

func (p *parser) literal(c byte) bool {
	if len(p.code) == 0 || p.code[0] != c {
		return false
	}

	p.accept(p.code[:1], p.code[1:])
	return true
}

func scanCoordinate(code string) (Coordinate, string, bool) {
	lat, rest, ok := scanFloat64(code)
	if !ok || len(rest) == 0 || rest[0] != listSeparator {
		return Coordinate{}, code, false
	}

	lon, rest, ok := scanFloat64(rest[1:])
	if !ok {
		return Coordinate{}, code, false
	}

	return Coordinate{Lat: lat, Lon: lon}, rest, true
}

func scanBearing(code string) (Bearing, string, bool) {
	v, rest, ok := scanInt32(code)
	if !ok {
		return Bearing{}, code, false
	}

	b := Bearing{Value: v, Range: DefaultBearingRange}
	if len(rest) == 0 || rest[0] != listSeparator {
		return b, rest, true
	}

	r, rest, ok := scanInt32(rest[1:])
	if !ok {
		return Bearing{}, code, false
	}

	b.Range, b.HasRange = r, true
	return b, rest, true
}

func scanToken(code string, scan func(string) (string, string)) (string, string, bool) {
	t, rest := scan(code)
	return t, rest, t != ""
}

func (p *parser) key() (Key, error) {
	k, rest := scanKey(p.code)
	if k == "" {
		return "", p.fail(ErrUnexpectedToken)
	}

	if _, ok := valueTypes[Key(k)]; !ok {
		return "", p.fail(ErrUnknownParameter)
	}

	p.accept(k, rest)
	if !p.literal(keyValueChar) {
		return "", p.fail(ErrUnexpectedToken)
	}

	return Key(k), nil
}

func (p *parser) value(k Key) (interface{}, error) {
	var (
		v    interface{}
		rest string
		ok   bool
	)

	switch valueTypes[k] {
	case plainValue:
		v, rest, ok = scanToken(p.code, scanPlain)
	case dottedValue:
		v, rest, ok = scanToken(p.code, scanDotted)
	case percentValue:
		v, rest, ok = scanToken(p.code, scanPercent)
	case polylineValue:
		v, rest, ok = scanToken(p.code, scanPolyline)
	case boolValue:
		v, rest, ok = scanBool(p.code)
	case int16Value:
		v, rest, ok = scanInt16(p.code)
	case uint32Value:
		v, rest, ok = scanUint32(p.code)
	case float32Value:
		v, rest, ok = scanFloat32(p.code)
	case coordinateValue:
		v, rest, ok = scanCoordinate(p.code)
	case bearingValue:
		v, rest, ok = scanBearing(p.code)
	}

	if !ok {
		return nil, p.fail(ErrInvalidValue)
	}

	p.accept(p.code[:len(p.code)-len(rest)], rest)
	return v, nil
}

// query accepts one or more parameters separated by '&'. The first
// parameter may also be prefixed by '&'. Modifiers directly following
// a location parameter are attached to it.
func (p *parser) query(c *Call) error {
	if len(p.code) == 0 {
		return p.fail(ErrMissingQuery)
	}

	var g *group
	for first := true; len(p.code) > 0; first = false {
		if !p.literal(paramSeparator) && !first {
			return p.fail(ErrUnexpectedToken)
		}

		start := p.position()
		k, err := p.key()
		if err != nil {
			return err
		}

		v, err := p.value(k)
		if err != nil {
			return err
		}

		param := &Param{Key: k, Value: v}
		switch {
		case isMarker(k):
			g = newGroup(param)
			c.Params = append(c.Params, param)
		case isModifier(k) && g != nil:
			if err := g.attach(param); err != nil {
				return p.failAt(start, err)
			}
		default:
			g = nil
			c.Params = append(c.Params, param)
		}
	}

	return nil
}

// parse accepts: '/' service ['?' query], matching the complete input.
func parse(input string) (*Call, error) {
	p := newParser(input)
	if !p.literal('/') {
		return nil, p.fail(ErrUnexpectedToken)
	}

	service, rest := scanPlain(p.code)
	if service == "" {
		return nil, p.fail(ErrMissingService)
	}

	p.accept(service, rest)
	c := &Call{Service: service}
	if len(p.code) == 0 {
		return c, nil
	}

	if !p.literal('?') {
		return nil, p.fail(ErrTrailingInput)
	}

	if err := p.query(c); err != nil {
		return nil, err
	}

	return c, nil
}
