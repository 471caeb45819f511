package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/schema"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

func TestDurationIsReturnedWithItsUnits(t *testing.T) {
	is := is.New(t)

	task := NewTask(Duration("duration", 120, values.Minutes))

	d, ok, err := task.Duration()
	is.NoErr(err)
	is.True(ok) // duration should not be absent
	is.Equal(d, values.NewDuration(120, values.Minutes))
}

func TestNullIsAbsentAndNotAnEmptyString(t *testing.T) {
	is := is.New(t)

	name, ok, err := NewTask(A("name", nil)).Name()
	is.NoErr(err)
	is.True(!ok)
	is.Equal(name, "")

	name, ok, err = NewTask(A("name", "")).Name()
	is.NoErr(err)
	is.True(ok) // an empty string is a value
	is.Equal(name, "")

	_, ok, err = NewTask().Name()
	is.NoErr(err)
	is.True(!ok)
}

func TestFractionalUniqueIDIsACoercionMismatch(t *testing.T) {
	is := is.New(t)

	_, ok, err := NewTask(A("unique_id", 42.5)).UniqueID()
	is.True(!ok)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))

	var mismatch *scherrors.MismatchError
	is.True(errors.As(err, &mismatch))
	is.Equal(mismatch.Attribute, "unique_id")
}

func TestThatEveryIntegerAttributeRejectsFractions(t *testing.T) {
	is := is.New(t)

	for _, kind := range schema.Kinds() {
		table := schema.For(kind)

		for _, name := range table.Names() {
			dt, _ := table.Lookup(name)
			if dt != datatypes.Integer && dt != datatypes.Short {
				continue
			}

			e, err := New(kind, A(name, 42.5))
			is.NoErr(err)

			_, ok, err := e.Value(name)
			is.True(!ok)
			is.True(errors.Is(err, scherrors.ErrCoercionMismatch))

			e, _ = New(kind, A(name, 42.0))
			v, ok, err := e.Value(name)
			is.NoErr(err)
			is.True(ok)
			is.Equal(v, int64(42))
		}
	}
}

func TestEnterpriseSlotsAreIndependent(t *testing.T) {
	is := is.New(t)

	table := schema.For(schema.Task)

	slots := []string{}
	for _, f := range table.Families() {
		if !strings.HasPrefix(f.Pattern, "enterprise_") {
			continue
		}
		if f.Type != datatypes.String && f.Type != datatypes.Numeric {
			continue
		}
		slots = append(slots, f.Names()...)
	}
	is.True(len(slots) >= 200) // there should be at least 200 enterprise slots
	slots = slots[:200]

	expected := map[string]any{}
	decorators := []EntityDecoratorFunc{}

	for i, name := range slots {
		dt := table.MustLookup(name)
		if dt == datatypes.String {
			expected[name] = fmt.Sprintf("value of %s", name)
		} else {
			expected[name] = float64(i)
		}
		decorators = append(decorators, A(name, expected[name]))
	}

	task := NewTask(decorators...)

	for _, name := range slots {
		v, ok, err := task.Value(name)
		is.NoErr(err)
		is.True(ok)
		is.Equal(v, expected[name])
	}

	text1, _, _ := task.EnterpriseText1()
	text2, _, _ := task.EnterpriseText2()
	is.Equal(text1, "value of enterprise_text1")
	is.Equal(text2, "value of enterprise_text2")
}

func TestSettingOneSlotLeavesItsNeighboursAbsent(t *testing.T) {
	is := is.New(t)

	task := NewTask(Number("enterprise_number7", 7))

	_, ok, err := task.EnterpriseNumber6()
	is.NoErr(err)
	is.True(!ok)

	n, ok, _ := task.EnterpriseNumber7()
	is.True(ok)
	is.Equal(n, 7.0)

	_, ok, _ = task.EnterpriseNumber8()
	is.True(!ok)
}

func TestThatEveryGeneratedGetterHandlesAnEmptyBag(t *testing.T) {
	is := is.New(t)

	for _, kind := range schema.Kinds() {
		e, err := New(kind)
		is.NoErr(err)

		getters := 0
		rv := reflect.ValueOf(e)

		for i := 0; i < rv.NumMethod(); i++ {
			method := rv.Method(i)
			mt := method.Type()
			if mt.NumIn() != 0 || mt.NumOut() != 3 {
				continue
			}

			out := method.Call(nil)
			is.True(!out[1].Bool()) // every attribute should be absent
			is.True(out[2].IsNil())  // absence should never be an error
			getters++
		}

		is.Equal(getters, schema.For(kind).Len()) // one getter per declared attribute
	}
}

func TestValuePanicsForUndeclaredNames(t *testing.T) {
	is := is.New(t)

	defer func() {
		r := recover()
		err, ok := r.(error)
		is.True(ok)
		is.True(errors.Is(err, scherrors.ErrUnknownAttribute))
	}()

	NewResource().Value("duration")
}

func TestTypedGetters(t *testing.T) {
	is := is.New(t)

	start := time.Date(2023, 1, 16, 8, 0, 0, 0, time.UTC)

	task := NewTask(
		UniqueID(12),
		Name("Pour foundation"),
		Date("start", start),
		Flag("milestone", false),
		A("constraint_type", "must_start_on"),
		A("priority", 700),
		A("guid", "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}"),
		A("outline_level", 3),
	)

	id, _, _ := task.UniqueID()
	is.Equal(id, int64(12))

	s, _, _ := task.Start()
	is.True(s.Equal(start))

	milestone, ok, _ := task.Milestone()
	is.True(ok)
	is.True(!milestone)

	constraint, _, err := task.ConstraintType()
	is.NoErr(err)
	is.Equal(constraint, values.MustStartOn)

	priority, _, _ := task.Priority()
	is.Equal(priority, values.PriorityHigh)

	guid, _, _ := task.GUID()
	is.Equal(guid, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	level, _, _ := task.OutlineLevel()
	is.Equal(level, int64(3))
}

func TestResourceRateAndType(t *testing.T) {
	is := is.New(t)

	resource := NewResource(
		A("standard_rate", values.NewRate(50, values.Hours)),
		A("type", "work"),
		A("max_units", 100),
	)

	rate, ok, err := resource.StandardRate()
	is.NoErr(err)
	is.True(ok)
	is.Equal(rate.String(), "50/h")

	rt, _, err := resource.Type()
	is.NoErr(err)
	is.Equal(rt, values.WorkResource)

	units, _, _ := resource.MaxUnits()
	is.Equal(units, 100.0)
}

func TestUnknownEnumMemberCarriesTheAttributeName(t *testing.T) {
	is := is.New(t)

	_, _, err := NewTask(A("task_mode", "SEMI_AUTOMATIC")).TaskMode()
	is.True(errors.Is(err, scherrors.ErrUnknownEnumMember))
	is.Equal(err.Error(), "attribute task_mode: SEMI_AUTOMATIC is not a member of task_mode")
}

func TestCalendarDaysAreOrderedMaps(t *testing.T) {
	is := is.New(t)

	calendar := NewCalendar(
		Name("Standard"),
		A("monday", values.NewMap(values.KV("type", "WORKING"), values.KV("hours", []any{"08:00-12:00", "13:00-17:00"}))),
		A("minutes_per_day", 480),
	)

	monday, ok, err := calendar.Monday()
	is.NoErr(err)
	is.True(ok)
	is.Equal(monday.Keys(), []string{"type", "hours"})

	_, ok, _ = calendar.Sunday()
	is.True(!ok)

	minutes, _, _ := calendar.MinutesPerDay()
	is.Equal(minutes, int64(480))
}

func TestNewFromJSON(t *testing.T) {
	is := is.New(t)

	e, err := NewFromJSON(schema.Task, []byte(taskJSON))
	is.NoErr(err)

	task, ok := e.(*Task)
	is.True(ok) // should be a task

	d, _, err := task.Duration()
	is.NoErr(err)
	is.Equal(d, values.NewDuration(3, values.Days))

	start, _, err := task.Start()
	is.NoErr(err)
	is.Equal(start.Format(time.RFC3339), "2023-01-16T08:00:00Z")

	_, ok, err = task.Notes()
	is.NoErr(err)
	is.True(!ok)

	is.Equal(task.Undeclared(), []string{"color"})
}

func TestForEachAttributeVisitsDeclaredValuesInBagOrder(t *testing.T) {
	is := is.New(t)

	e, err := NewFromJSON(schema.Task, []byte(taskJSON))
	is.NoErr(err)

	names := []string{}
	err = e.ForEachAttribute(func(attributeType datatypes.DataType, attributeName string, contents any) {
		names = append(names, attributeName)
	})
	is.NoErr(err)
	is.Equal(names, []string{"unique_id", "name", "start", "duration", "percent_complete", "critical", "constraint_type", "priority"})
}

func TestForEachAttributeStopsAtTheFirstError(t *testing.T) {
	is := is.New(t)

	task := NewTask(Name("first"), A("unique_id", 42.5), A("wbs", "1.2"))

	visited := 0
	err := task.ForEachAttribute(func(attributeType datatypes.DataType, attributeName string, contents any) {
		visited++
	})

	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
	is.Equal(visited, 1)
}

func TestMarshalJSONWritesCanonicalValues(t *testing.T) {
	is := is.New(t)

	e, err := NewFromJSON(schema.Task, []byte(taskJSON))
	is.NoErr(err)

	b, err := json.Marshal(e)
	is.NoErr(err)
	is.Equal(string(b), `{"unique_id":7,"name":"Write specification","start":"2023-01-16T08:00:00Z","duration":{"duration":3,"units":"DAYS"},"percent_complete":50,"critical":true,"constraint_type":"MUST_START_ON","priority":500}`)
}

func TestDecodeBagKeepsNumbersApart(t *testing.T) {
	is := is.New(t)

	bag, err := DecodeBag([]byte(`{"a": 42, "b": 42.5, "c": 1e3, "d": [1, "x"], "e": {"z": 1, "y": 2}}`))
	is.NoErr(err)

	a, _ := bag.Get("a")
	is.Equal(a, int64(42))

	b, _ := bag.Get("b")
	is.Equal(b, 42.5)

	c, _ := bag.Get("c")
	is.Equal(c, 1000.0)

	d, _ := bag.Get("d")
	is.Equal(d, []any{int64(1), "x"})

	e, _ := bag.Get("e")
	is.Equal(e.(*values.Map).Keys(), []string{"z", "y"})
}

func TestDecodeBagKeepsNestedMembersNamedType(t *testing.T) {
	is := is.New(t)

	e, err := NewFromJSON(schema.Project, []byte(`{"custom_properties": {"@type": "Category", "owner": "x"}}`))
	is.NoErr(err)

	props, ok, err := e.(*ProjectProperties).CustomProperties()
	is.NoErr(err)
	is.True(ok)
	is.Equal(props.Keys(), []string{"@type", "owner"})

	category, _ := props.Get("@type")
	is.Equal(category, "Category")
}

func TestListsOfMapsAreMarshalled(t *testing.T) {
	is := is.New(t)

	task := NewTask(A("activity_code_values", []any{*values.NewMap(values.KV("a", 1)), values.NewMap(values.KV("b", 2))}))

	b, err := task.MarshalJSON()
	is.NoErr(err)
	is.Equal(string(b), `{"activity_code_values":[{"a":1},{"b":2}]}`)
}

func TestDecodeBagTypedScalars(t *testing.T) {
	is := is.New(t)

	bag, err := DecodeBag([]byte(typedScalarsJSON))
	is.NoErr(err)

	rate, _ := bag.Get("standard_rate")
	is.Equal(rate, values.NewRate(45.5, values.Hours))

	start, _ := bag.Get("default_start_time")
	is.Equal(start, values.NewLocalTime(8, 0, 0))

	data, _ := bag.Get("timephased")
	is.Equal(data, []byte("hello"))
}

func TestDecodeBagErrors(t *testing.T) {
	is := is.New(t)

	for _, body := range []string{
		`[1, 2]`,
		`{"start": {"@type": "DateTime", "@value": "yesterday"}}`,
		`{"work": {"@type": "Duration", "@value": 8}}`,
		`{"work": {"@type": "Duration", "@value": 8, "unitCode": "fortnights"}}`,
		`{"x": {"@type": "Geometry", "@value": 1}}`,
		`{"a": 1} {"b": 2}`,
		`{"a": `,
	} {
		_, err := DecodeBag([]byte(body))
		is.True(err != nil) // body should be rejected
	}
}

func TestNewWithUnknownKind(t *testing.T) {
	is := is.New(t)

	_, err := New(schema.Kind("portfolio"))
	is.True(err != nil)
}

const taskJSON string = `{
	"unique_id": 7,
	"name": "Write specification",
	"start": {"@type": "DateTime", "@value": "2023-01-16T08:00:00Z"},
	"duration": {"@type": "Duration", "@value": 3, "unitCode": "d"},
	"percent_complete": 50,
	"critical": true,
	"constraint_type": "MUST_START_ON",
	"notes": null,
	"priority": 500,
	"color": "blue"
}`

const typedScalarsJSON string = `{
	"standard_rate": {"@type": "Rate", "@value": 45.5, "unitCode": "h"},
	"default_start_time": {"@type": "Time", "@value": "08:00"},
	"timephased": {"@type": "Binary", "@value": "aGVsbG8="}
}`
