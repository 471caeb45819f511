package entities

//go:generate go run github.com/diwise/project-attributes/cmd/schemagen -out .

import (
	"fmt"

	"github.com/diwise/project-attributes/pkg/schedule/coerce"
	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/schema"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

// Entity is the kind independent view of a schedule entity
type Entity interface {
	EntityKind() schema.Kind
	Schema() *schema.Table
	Raw(attributeName string) (any, bool)
	Value(attributeName string) (any, bool, error)
	ForEachAttribute(callback func(attributeType datatypes.DataType, attributeName string, contents any)) error
	Undeclared() []string
	MarshalJSON() ([]byte, error)
}

type EntityDecoratorFunc func(e *EntityImpl)

// New creates an entity of the given kind. The returned value is one of *ProjectProperties,
// *Task, *Resource, *Assignment or *Calendar.
func New(kind schema.Kind, decorators ...EntityDecoratorFunc) (Entity, error) {
	switch kind {
	case schema.Project:
		return NewProjectProperties(decorators...), nil
	case schema.Task:
		return NewTask(decorators...), nil
	case schema.Resource:
		return NewResource(decorators...), nil
	case schema.Assignment:
		return NewAssignment(decorators...), nil
	case schema.Calendar:
		return NewCalendar(decorators...), nil
	}

	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

func newEntityImpl(kind schema.Kind, decorators ...EntityDecoratorFunc) EntityImpl {
	e := EntityImpl{
		kind:  kind,
		table: schema.For(kind),
		bag:   values.NewMap(),
	}

	for _, decorator := range decorators {
		decorator(&e)
	}

	return e
}

// EntityImpl holds the raw attribute bag of one entity. The bag is only written by the
// decorators passed to the constructor.
type EntityImpl struct {
	kind  schema.Kind
	table *schema.Table
	bag   *values.Map
}

func (e *EntityImpl) EntityKind() schema.Kind {
	return e.kind
}

func (e *EntityImpl) Schema() *schema.Table {
	return e.table
}

// Raw returns the value in the bag as the parser left it
func (e *EntityImpl) Raw(attributeName string) (any, bool) {
	return e.bag.Get(attributeName)
}

// Value coerces a declared attribute to its canonical type. An attribute that is missing
// from the bag, or present with a nil value, is reported as absent without an error.
func (e *EntityImpl) Value(attributeName string) (any, bool, error) {
	dt := e.table.MustLookup(attributeName)
	raw, _ := e.bag.Get(attributeName)

	v, ok, err := coerce.Value(raw, dt)
	if err != nil {
		return nil, false, scherrors.WithAttribute(err, attributeName)
	}

	return v, ok, nil
}

// ForEachAttribute calls back once for every declared attribute with a value, in bag order.
// Iteration stops at the first attribute that can not be coerced.
func (e *EntityImpl) ForEachAttribute(callback func(attributeType datatypes.DataType, attributeName string, contents any)) error {
	var err error

	e.bag.ForEach(func(name string, _ any) {
		if err != nil {
			return
		}

		dt, declared := e.table.Lookup(name)
		if !declared {
			return
		}

		v, ok, coerceErr := e.Value(name)
		if coerceErr != nil {
			err = coerceErr
			return
		}

		if ok {
			callback(dt, name, v)
		}
	})

	return err
}

// Undeclared returns the names in the bag that the schema of this kind does not know about
func (e *EntityImpl) Undeclared() []string {
	undeclared := []string{}
	for _, name := range e.bag.Keys() {
		if _, ok := e.table.Lookup(name); !ok {
			undeclared = append(undeclared, name)
		}
	}
	return undeclared
}

// MarshalJSON writes the canonical values of all declared attributes in bag order.
// Attributes that are absent or fail to coerce are left out.
func (e *EntityImpl) MarshalJSON() ([]byte, error) {
	contents := values.NewMap()

	e.bag.ForEach(func(name string, _ any) {
		dt, declared := e.table.Lookup(name)
		if !declared {
			return
		}

		v, ok, err := e.Value(name)
		if err != nil || !ok {
			return
		}

		contents.Set(name, Exportable(dt, v))
	})

	return contents.MarshalJSON()
}

// Exportable converts a canonical value to the form used when writing it as JSON
func Exportable(dt datatypes.DataType, v any) any {
	if r, ok := v.(rune); ok && dt == datatypes.Char {
		return string(r)
	}
	return v
}

// attr is the single dispatch point used by the generated getters. A failing type assertion
// means the generated code and the coercion engine disagree, which is a programming error.
func attr[T any](e *EntityImpl, attributeName string) (T, bool, error) {
	var zero T

	v, ok, err := e.Value(attributeName)
	if err != nil || !ok {
		return zero, false, err
	}

	typed, isT := v.(T)
	if !isT {
		panic(fmt.Sprintf("attribute %s of %s coerced to %T, not %T", attributeName, e.kind, v, zero))
	}

	return typed, true, nil
}

type ProjectProperties struct {
	EntityImpl
}

func NewProjectProperties(decorators ...EntityDecoratorFunc) *ProjectProperties {
	return &ProjectProperties{EntityImpl: newEntityImpl(schema.Project, decorators...)}
}

type Task struct {
	EntityImpl
}

func NewTask(decorators ...EntityDecoratorFunc) *Task {
	return &Task{EntityImpl: newEntityImpl(schema.Task, decorators...)}
}

type Resource struct {
	EntityImpl
}

func NewResource(decorators ...EntityDecoratorFunc) *Resource {
	return &Resource{EntityImpl: newEntityImpl(schema.Resource, decorators...)}
}

type Assignment struct {
	EntityImpl
}

func NewAssignment(decorators ...EntityDecoratorFunc) *Assignment {
	return &Assignment{EntityImpl: newEntityImpl(schema.Assignment, decorators...)}
}

type Calendar struct {
	EntityImpl
}

func NewCalendar(decorators ...EntityDecoratorFunc) *Calendar {
	return &Calendar{EntityImpl: newEntityImpl(schema.Calendar, decorators...)}
}
