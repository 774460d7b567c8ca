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

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	for _, tt := range []struct {
		name   string
		p      charPredicate
		accept string
		reject string
	}{{
		name:   "alpha",
		p:      isAlpha,
		accept: "azAZmM",
		reject: "09_.-&=[@ \x00\xff",
	}, {
		name:   "key",
		p:      isKeyChar,
		accept: "az_AZ",
		reject: "09.-=&",
	}, {
		name:   "escape digit",
		p:      isEscapeDigit,
		accept: "09AFZ",
		reject: "af%_",
	}, {
		name:   "dotted",
		p:      isDottedChar,
		accept: "aZ09_.-",
		reject: "%[]&=,~",
	}, {
		name:   "percent",
		p:      isPercentChar,
		accept: "aZ09_.-[]",
		reject: "%&=,{}",
	}, {
		name:   "polyline",
		p:      isPolylineChar,
		accept: "aZ09_.-[]{}@?|\\%~`^",
		reject: "&=,#$ \t+",
	}} {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.accept); i++ {
				assert.True(t, tt.p(tt.accept[i]), "%q", tt.accept[i])
			}

			for i := 0; i < len(tt.reject); i++ {
				assert.False(t, tt.p(tt.reject[i]), "%q", tt.reject[i])
			}
		})
	}
}

func TestTokenScanners(t *testing.T) {
	for _, tt := range []struct {
		name  string
		scan  func(string) (string, string)
		code  string
		token string
	}{
		{"key", scanKey, "num_results=1", "num_results"},
		{"key, digit", scanKey, "z0=1", "z"},
		{"plain", scanPlain, "json&z=1", "json"},
		{"plain, digit", scanPlain, "js0n", "js"},
		{"plain, empty", scanPlain, "0", ""},
		{"dotted", scanDotted, "abc.1-_X&z=1", "abc.1-_X"},
		{"percent", scanPercent, "abc%2Fdef&x", "abc%2Fdef"},
		{"percent, brackets", scanPercent, "cb[0]", "cb[0]"},
		{"percent, lowercase escape", scanPercent, "a%2f", "a"},
		{"percent, incomplete escape", scanPercent, "a%2", "a"},
		{"polyline", scanPolyline, "_p~iF~ps|U&z=1", "_p~iF~ps|U"},
		{"polyline, stops at space", scanPolyline, "a b", "a"},
		{"signed integer", func(s string) (string, string) { return scanInteger(s, true) }, "-12a", "-12"},
		{"signed integer, sign only", func(s string) (string, string) { return scanInteger(s, true) }, "+a", ""},
		{"unsigned integer, sign", func(s string) (string, string) { return scanInteger(s, false) }, "-12", ""},
		{"real", scanReal, "52.5,13", "52.5"},
		{"real, leading dot", scanReal, ".5x", ".5"},
		{"real, trailing dot", scanReal, "1.", "1."},
		{"real, exponent", scanReal, "-1e3&", "-1e3"},
		{"real, signed exponent", scanReal, "1.5E-2", "1.5E-2"},
		{"real, incomplete exponent", scanReal, "1e&", "1"},
		{"real, dot only", scanReal, ".", ""},
		{"real, sign only", scanReal, "+", ""},
		{"real, nan", scanReal, "nan", ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			token, rest := tt.scan(tt.code)
			assert.Equal(t, tt.token, token)
			assert.Equal(t, tt.code[len(token):], rest)
		})
	}
}

func TestScanBool(t *testing.T) {
	v, rest, ok := scanBool("true&z=1")
	assert.True(t, ok)
	assert.True(t, v)
	assert.Equal(t, "&z=1", rest)

	v, rest, ok = scanBool("false")
	assert.True(t, ok)
	assert.False(t, v)
	assert.Empty(t, rest)

	for _, code := range []string{"True", "1", "yes", "fals", ""} {
		_, rest, ok = scanBool(code)
		assert.False(t, ok, code)
		assert.Equal(t, code, rest)
	}
}

func TestScanIntegers(t *testing.T) {
	i16, rest, ok := scanInt16("-32768&")
	assert.True(t, ok)
	assert.Equal(t, int16(-32768), i16)
	assert.Equal(t, "&", rest)

	_, rest, ok = scanInt16("32768")
	assert.False(t, ok)
	assert.Equal(t, "32768", rest)

	i32, _, ok := scanInt32("+2147483647")
	assert.True(t, ok)
	assert.Equal(t, int32(2147483647), i32)

	_, _, ok = scanInt32("2147483648")
	assert.False(t, ok)

	u32, _, ok := scanUint32("4294967295")
	assert.True(t, ok)
	assert.Equal(t, uint32(4294967295), u32)

	for _, code := range []string{"4294967296", "-1", "+1", "x"} {
		_, rest, ok = scanUint32(code)
		assert.False(t, ok, code)
		assert.Equal(t, code, rest)
	}
}

func TestScanFloats(t *testing.T) {
	f64, rest, ok := scanFloat64("52.5166,13.3833")
	assert.True(t, ok)
	assert.Equal(t, 52.5166, f64)
	assert.Equal(t, ",13.3833", rest)

	f32, _, ok := scanFloat32("-.25")
	assert.True(t, ok)
	assert.Equal(t, float32(-.25), f32)

	_, rest, ok = scanFloat32("1e39")
	assert.False(t, ok)
	assert.Equal(t, "1e39", rest)

	for _, code := range []string{"inf", "nan", "-", "e5", ""} {
		_, _, ok = scanFloat64(code)
		assert.False(t, ok, code)
	}
}
