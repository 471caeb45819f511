package values

import (
	"fmt"
	"strings"
)

// Member declares one value of an enumeration. The integer value of the member is
// its code in the binary and text formats.
type Member[E ~int] struct {
	Value   E
	Name    string
	Aliases []string
}

// Enum is a closed, immutable set of named members
type Enum[E ~int] struct {
	name    string
	members []Member[E]
	byName  map[string]E
	byCode  map[int64]E
	names   map[E]string
}

// NewEnum builds an enumeration. Duplicate names, aliases or codes are programming
// errors and cause a panic.
func NewEnum[E ~int](name string, members ...Member[E]) *Enum[E] {
	e := &Enum[E]{
		name:    name,
		members: members,
		byName:  map[string]E{},
		byCode:  map[int64]E{},
		names:   map[E]string{},
	}

	register := func(key string, v E) {
		key = normalizeMemberName(key)
		if _, exists := e.byName[key]; exists {
			panic(fmt.Sprintf("enumeration %s: duplicate member name %q", name, key))
		}
		e.byName[key] = v
	}

	for _, m := range members {
		if _, exists := e.byCode[int64(m.Value)]; exists {
			panic(fmt.Sprintf("enumeration %s: duplicate member code %d", name, int(m.Value)))
		}
		e.byCode[int64(m.Value)] = m.Value
		e.names[m.Value] = m.Name

		register(m.Name, m.Value)
		for _, alias := range m.Aliases {
			register(alias, m.Value)
		}
	}

	return e
}

func normalizeMemberName(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (e *Enum[E]) Name() string {
	return e.name
}

// ByName finds a member by its canonical name or one of its aliases, ignoring case
func (e *Enum[E]) ByName(s string) (E, bool) {
	v, ok := e.byName[normalizeMemberName(s)]
	return v, ok
}

// ByCode finds a member by its integer code
func (e *Enum[E]) ByCode(code int64) (E, bool) {
	v, ok := e.byCode[code]
	return v, ok
}

func (e *Enum[E]) Contains(v E) bool {
	_, ok := e.names[v]
	return ok
}

// NameOf returns the canonical name of v, or a placeholder if v is not a member
func (e *Enum[E]) NameOf(v E) string {
	if n, ok := e.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", e.name, int(v))
}

// Members returns the members in declaration order
func (e *Enum[E]) Members() []E {
	values := make([]E, 0, len(e.members))
	for _, m := range e.members {
		values = append(values, m.Value)
	}
	return values
}

// MemberNames returns the canonical member names in declaration order
func (e *Enum[E]) MemberNames() []string {
	names := make([]string, 0, len(e.members))
	for _, m := range e.members {
		names = append(names, m.Name)
	}
	return names
}
