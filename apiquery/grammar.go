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
	_ "embed"
	"strings"

	"golang.org/x/exp/ebnf"
)

const grammarStart = "apiCall"

//go:embed grammar.ebnf
var grammarDoc string

// GrammarDoc returns the EBNF document describing the accepted API
// calls.
func GrammarDoc() string { return grammarDoc }

// Grammar returns the parsed and verified EBNF grammar of the accepted
// API calls.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(grammarDoc))
	if err != nil {
		return nil, err
	}

	if err := ebnf.Verify(g, grammarStart); err != nil {
		return nil, err
	}

	return g, nil
}
