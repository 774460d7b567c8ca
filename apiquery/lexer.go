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

type charPredicate func(byte) bool

const (
	paramSeparator = '&'
	keyValueChar   = '='
	listSeparator  = ','
	escapeChar     = '%'
	decimalChar    = '.'
	underscore     = '_'
)

const (
	trueLiteral  = "true"
	falseLiteral = "false"

	// characters outside the letter, digit and [_.-] classes accepted
	// by the polyline lexer
	polylineSymbols = "[]{}@?|\\%~`^"
)

func isAlpha(c byte) bool      { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isUnderscore(c byte) bool { return c == underscore }
func isSign(c byte) bool       { return c == '+' || c == '-' }
func isExponent(c byte) bool   { return c == 'e' || c == 'E' }
func isKeyChar(c byte) bool    { return isAlpha(c) || isUnderscore(c) }
func isEscapeDigit(c byte) bool {
	return isDigit(c) || c >= 'A' && c <= 'Z'
}

// [a-zA-Z0-9_.-]
func isDottedChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == underscore || c == decimalChar || c == '-'
}

// [a-zA-Z0-9_.-] or '[' or ']'
func isPercentChar(c byte) bool {
	return isDottedChar(c) || c == '[' || c == ']'
}

// [a-zA-Z0-9_.\-\[\]{}@?|\\%~`^]
func isPolylineChar(c byte) bool {
	return isDottedChar(c) || strings.IndexByte(polylineSymbols, c) >= 0
}

// scanWhile returns the maximal prefix of code accepted by p, and the
// rest.
func scanWhile(code string, p charPredicate) (string, string) {
	i := 0
	for i < len(code) && p(code[i]) {
		i++
	}

	return code[:i], code[i:]
}

func scanKey(code string) (string, string)      { return scanWhile(code, isKeyChar) }
func scanPlain(code string) (string, string)    { return scanWhile(code, isAlpha) }
func scanDotted(code string) (string, string)   { return scanWhile(code, isDottedChar) }
func scanPolyline(code string) (string, string) { return scanWhile(code, isPolylineChar) }

func isEscapeTriplet(code string) bool {
	return len(code) >= 3 &&
		code[0] == escapeChar &&
		isEscapeDigit(code[1]) &&
		isEscapeDigit(code[2])
}

// scanPercent accepts the dotted characters, the square brackets and
// %XX escape triplets. The escapes are not decoded.
func scanPercent(code string) (string, string) {
	i := 0
	for i < len(code) {
		switch {
		case isPercentChar(code[i]):
			i++
		case isEscapeTriplet(code[i:]):
			i += 3
		default:
			return code[:i], code[i:]
		}
	}

	return code, ""
}

func scanDigits(code string) int {
	d, _ := scanWhile(code, isDigit)
	return len(d)
}

// scanInteger accepts an optional sign when signed is set, followed by
// one or more decimal digits.
func scanInteger(code string, signed bool) (string, string) {
	i := 0
	if signed && len(code) > 0 && isSign(code[0]) {
		i++
	}

	n := scanDigits(code[i:])
	if n == 0 {
		return "", code
	}

	i += n
	return code[:i], code[i:]
}

// scanReal accepts an optionally signed decimal number with an optional
// fraction and an optional exponent. Either the integer part or the
// fraction needs to have at least one digit. An exponent marker not
// followed by digits is not consumed.
func scanReal(code string) (string, string) {
	i := 0
	if len(code) > 0 && isSign(code[0]) {
		i++
	}

	digits := scanDigits(code[i:])
	i += digits
	if i < len(code) && code[i] == decimalChar {
		fraction := scanDigits(code[i+1:])
		if digits > 0 || fraction > 0 {
			i += 1 + fraction
			digits += fraction
		}
	}

	if digits == 0 {
		return "", code
	}

	if i < len(code) && isExponent(code[i]) {
		j := i + 1
		if j < len(code) && isSign(code[j]) {
			j++
		}

		if n := scanDigits(code[j:]); n > 0 {
			i = j + n
		}
	}

	return code[:i], code[i:]
}

func scanBool(code string) (bool, string, bool) {
	switch {
	case strings.HasPrefix(code, trueLiteral):
		return true, code[len(trueLiteral):], true
	case strings.HasPrefix(code, falseLiteral):
		return false, code[len(falseLiteral):], true
	default:
		return false, code, false
	}
}

func scanInt16(code string) (int16, string, bool) {
	s, rest := scanInteger(code, true)
	if s == "" {
		return 0, code, false
	}

	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, code, false
	}

	return int16(v), rest, true
}

func scanInt32(code string) (int32, string, bool) {
	s, rest := scanInteger(code, true)
	if s == "" {
		return 0, code, false
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, code, false
	}

	return int32(v), rest, true
}

func scanUint32(code string) (uint32, string, bool) {
	s, rest := scanInteger(code, false)
	if s == "" {
		return 0, code, false
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, code, false
	}

	return uint32(v), rest, true
}

func scanFloat(code string, bitSize int) (float64, string, bool) {
	s, rest := scanReal(code)
	if s == "" {
		return 0, code, false
	}

	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, code, false
	}

	return v, rest, true
}

func scanFloat32(code string) (float32, string, bool) {
	v, rest, ok := scanFloat(code, 32)
	return float32(v), rest, ok
}

func scanFloat64(code string) (float64, string, bool) {
	return scanFloat(code, 64)
}
