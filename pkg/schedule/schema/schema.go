package schema

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	yaml "gopkg.in/yaml.v2"

	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
)

// Kind names a type of schedule entity
type Kind string

const (
	Project    Kind = "project"
	Task       Kind = "task"
	Resource   Kind = "resource"
	Assignment Kind = "assignment"
	Calendar   Kind = "calendar"
)

var kinds = []Kind{Project, Task, Resource, Assignment, Calendar}

// Kinds returns all entity kinds that have a schema
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

//go:embed tables/*.yaml
var tablesFS embed.FS

var registry = func() map[Kind]func() *Table {
	r := make(map[Kind]func() *Table, len(kinds))
	for _, k := range kinds {
		r[k] = sync.OnceValue(func() *Table {
			return mustLoadEmbedded(k)
		})
	}
	return r
}()

// For returns the process wide schema table of an entity kind. The table is built on first use
// and is never modified afterwards.
func For(kind Kind) *Table {
	table, ok := registry[kind]
	if !ok {
		panic(fmt.Sprintf("schema: no table for entity kind %q", kind))
	}
	return table()
}

func mustLoadEmbedded(kind Kind) *Table {
	f, err := tablesFS.Open("tables/" + string(kind) + ".yaml")
	if err != nil {
		panic(fmt.Sprintf("schema: %s", err.Error()))
	}
	defer f.Close()

	t, err := LoadTable(f)
	if err != nil {
		panic(fmt.Sprintf("schema: failed to load %s table: %s", kind, err.Error()))
	}

	if t.kind != kind {
		panic(fmt.Sprintf("schema: table file for %s declares kind %s", kind, t.kind))
	}

	return t
}

// Table is an immutable mapping from attribute name to data type for one entity kind
type Table struct {
	kind     Kind
	names    []string
	types    map[string]datatypes.DataType
	families []Family
}

func (t *Table) Kind() Kind {
	return t.kind
}

// Lookup returns the data type of an attribute and false if the name is not declared
func (t *Table) Lookup(name string) (datatypes.DataType, bool) {
	dt, ok := t.types[name]
	return dt, ok
}

// MustLookup is used by the generated accessors, which only ever ask for names they declare.
// Any other name is an integration error and panics with an UnknownAttributeError.
func (t *Table) MustLookup(name string) datatypes.DataType {
	dt, ok := t.types[name]
	if !ok {
		panic(scherrors.NewUnknownAttributeError(string(t.kind), name))
	}
	return dt
}

// Names returns every declared attribute, plain attributes first and then the expanded
// families, in declaration order
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) Len() int {
	return len(t.names)
}

func (t *Table) Families() []Family {
	return append([]Family(nil), t.families...)
}

// Types returns a copy of the full name to data type mapping
func (t *Table) Types() map[string]datatypes.DataType {
	types := make(map[string]datatypes.DataType, len(t.types))
	for k, v := range t.types {
		types[k] = v
	}
	return types
}

// Family is a range of numbered attributes sharing one data type, e.g. text1 to text30
type Family struct {
	Pattern string             `json:"pattern"`
	From    int                `json:"from"`
	To      int                `json:"to"`
	Type    datatypes.DataType `json:"type"`
}

// Name returns the attribute name of slot n
func (f Family) Name(n int) string {
	return fmt.Sprintf(f.Pattern, n)
}

func (f Family) Names() []string {
	names := make([]string, 0, f.To-f.From+1)
	for n := f.From; n <= f.To; n++ {
		names = append(names, f.Name(n))
	}
	return names
}

func (f Family) Len() int {
	return f.To - f.From + 1
}

type tableFile struct {
	Kind       string        `yaml:"kind"`
	Attributes yaml.MapSlice `yaml:"attributes"`
	Families   []struct {
		Pattern string `yaml:"pattern"`
		From    int    `yaml:"from"`
		To      int    `yaml:"to"`
		Type    string `yaml:"type"`
	} `yaml:"families"`
}

// LoadTable reads a schema table declaration. Duplicate names, unknown data types and
// malformed families are reported as errors.
func LoadTable(data io.Reader) (*Table, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	tf := tableFile{}
	if err = yaml.Unmarshal(buf, &tf); err != nil {
		return nil, err
	}

	if tf.Kind == "" {
		return nil, fmt.Errorf("table declares no kind")
	}

	t := &Table{
		kind:  Kind(tf.Kind),
		types: map[string]datatypes.DataType{},
	}

	for _, item := range tf.Attributes {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("attribute name %v is not a string", item.Key)
		}

		typeName, ok := item.Value.(string)
		if !ok {
			return nil, fmt.Errorf("attribute %s: data type %v is not a string", name, item.Value)
		}

		if err = t.add(name, typeName); err != nil {
			return nil, err
		}
	}

	for _, f := range tf.Families {
		if strings.Count(f.Pattern, "%d") != 1 {
			return nil, fmt.Errorf("family %q must contain exactly one %%d", f.Pattern)
		}
		if f.From < 0 || f.To < f.From {
			return nil, fmt.Errorf("family %q has an empty range %d..%d", f.Pattern, f.From, f.To)
		}

		dt, err := datatypes.Parse(f.Type)
		if err != nil {
			return nil, fmt.Errorf("family %q: %w", f.Pattern, err)
		}

		family := Family{Pattern: f.Pattern, From: f.From, To: f.To, Type: dt}
		for _, name := range family.Names() {
			if err = t.add(name, f.Type); err != nil {
				return nil, err
			}
		}

		t.families = append(t.families, family)
	}

	return t, nil
}

func (t *Table) add(name, typeName string) error {
	if _, exists := t.types[name]; exists {
		return fmt.Errorf("attribute %s is declared more than once", name)
	}

	dt, err := datatypes.Parse(typeName)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}

	t.names = append(t.names, name)
	t.types[name] = dt

	return nil
}

// Lookup queries a kind without panicking, for tooling that handles names from outside the
// generated accessors
func Lookup(kind Kind, name string) (datatypes.DataType, error) {
	if _, ok := registry[kind]; !ok {
		return datatypes.Undefined, fmt.Errorf("unknown entity kind %q", kind)
	}

	dt, ok := For(kind).Lookup(name)
	if !ok {
		return datatypes.Undefined, scherrors.NewUnknownAttributeError(string(kind), name)
	}

	return dt, nil
}
