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

type modifierKind uint8

const (
	bearingModifier modifierKind = 1 << iota
	uturnModifier
	timestampModifier
	hintModifier
)

var modifierKinds = map[Key]modifierKind{
	KeyBearing:   bearingModifier,
	KeyUTurn:     uturnModifier,
	KeyTimestamp: timestampModifier,
	KeyHint:      hintModifier,
}

func isModifier(k Key) bool {
	_, ok := modifierKinds[k]
	return ok
}

// group collects the modifiers following a loc, src or dst parameter.
// Each kind of modifier can be attached at most once, in any order.
type group struct {
	location *Param
	seen     modifierKind
}

func newGroup(location *Param) *group {
	return &group{location: location}
}

func (g *group) attach(m *Param) error {
	kind := modifierKinds[m.Key]
	if g.seen&kind != 0 {
		return ErrDuplicateModifier
	}

	g.seen |= kind
	g.location.Modifiers = append(g.location.Modifiers, m)
	return nil
}
