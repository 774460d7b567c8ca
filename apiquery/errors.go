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
	"errors"
	"fmt"
)

// The two classes of parse failures. Every error returned by the
// parser matches one of them with errors.Is.
var (
	ErrSyntax  = errors.New("syntax error")
	ErrLexical = errors.New("lexical error")
)

var (
	ErrUnexpectedToken   = fmt.Errorf("%w: unexpected token", ErrSyntax)
	ErrMissingService    = fmt.Errorf("%w: missing service name", ErrSyntax)
	ErrMissingQuery      = fmt.Errorf("%w: empty query", ErrSyntax)
	ErrUnknownParameter  = fmt.Errorf("%w: unknown parameter", ErrSyntax)
	ErrDuplicateModifier = fmt.Errorf("%w: duplicate location modifier", ErrSyntax)
	ErrTrailingInput     = fmt.Errorf("%w: trailing input", ErrSyntax)
	ErrInvalidValue      = fmt.Errorf("%w: invalid value", ErrLexical)
)

// ParseError is returned when an API call does not match the grammar.
type ParseError struct {

	// Position is the byte offset in the input where the failure was
	// detected.
	Position int

	// Token is the last token accepted before the failure, empty if
	// none.
	Token string

	Err error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse failed at position %d: %v", e.Position, e.Err)
	}

	return fmt.Sprintf(
		"parse failed after token %s, position %d: %v",
		e.Token, e.Position, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
