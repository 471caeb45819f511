package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
)

func TestThatEveryKindHasATable(t *testing.T) {
	is := is.New(t)

	expectedSizes := map[Kind]int{
		Project:    177,
		Task:       989,
		Resource:   560,
		Assignment: 505,
		Calendar:   17,
	}

	for _, k := range Kinds() {
		table := For(k)
		is.Equal(table.Kind(), k)
		is.Equal(table.Len(), expectedSizes[k])
		is.Equal(len(table.Names()), len(table.Types()))
	}
}

func TestThatEveryDeclaredAttributeHasADefinedType(t *testing.T) {
	is := is.New(t)

	for _, k := range Kinds() {
		table := For(k)
		for _, name := range table.Names() {
			dt, ok := table.Lookup(name)
			is.True(ok)
			is.True(dt.Defined())
		}
	}
}

func TestThatTheTableIsBuiltOnce(t *testing.T) {
	is := is.New(t)
	is.True(For(Task) == For(Task))
}

func TestLookupOfKnownTaskAttributes(t *testing.T) {
	is := is.New(t)

	table := For(Task)

	for name, expected := range map[string]datatypes.DataType{
		"duration":         datatypes.Duration,
		"unique_id":        datatypes.Integer,
		"name":             datatypes.String,
		"guid":             datatypes.GUID,
		"constraint_type":  datatypes.Constraint,
		"text30":           datatypes.String,
		"baseline10_cost":  datatypes.Currency,
		"enterprise_text1": datatypes.String,
		"null":             datatypes.Boolean,
	} {
		dt, ok := table.Lookup(name)
		is.True(ok) // name should be declared
		is.Equal(dt, expected)
	}
}

func TestMustLookupPanicsForUndeclaredNames(t *testing.T) {
	is := is.New(t)

	defer func() {
		r := recover()
		err, ok := r.(error)
		is.True(ok)
		is.True(errors.Is(err, scherrors.ErrUnknownAttribute))
		is.Equal(err.Error(), `task does not declare an attribute named "text31"`)
	}()

	For(Task).MustLookup("text31")
}

func TestLookupWithoutPanic(t *testing.T) {
	is := is.New(t)

	dt, err := Lookup(Resource, "standard_rate")
	is.NoErr(err)
	is.Equal(dt, datatypes.Rate)

	_, err = Lookup(Resource, "no_such_thing")
	is.True(errors.Is(err, scherrors.ErrUnknownAttribute))

	_, err = Lookup(Kind("portfolio"), "name")
	is.True(err != nil)
}

func TestFamiliesAreExpandedIntoTheTable(t *testing.T) {
	is := is.New(t)

	table := For(Task)

	var numbers Family
	for _, f := range table.Families() {
		if f.Pattern == "enterprise_number%d" {
			numbers = f
		}
	}

	is.Equal(numbers.From, 1)
	is.Equal(numbers.To, 40)
	is.Equal(numbers.Len(), 40)
	is.Equal(numbers.Type, datatypes.Numeric)

	for _, name := range numbers.Names() {
		dt, ok := table.Lookup(name)
		is.True(ok)
		is.Equal(dt, datatypes.Numeric)
	}
}

func TestCalendarTable(t *testing.T) {
	is := is.New(t)

	table := For(Calendar)
	is.Equal(table.Names()[0], "unique_id")
	is.Equal(table.MustLookup("monday"), datatypes.Map)
	is.Equal(table.MustLookup("minutes_per_week"), datatypes.Integer)
	is.Equal(len(table.Families()), 0)
}

func TestParseKind(t *testing.T) {
	is := is.New(t)

	k, err := ParseKind(" Task ")
	is.NoErr(err)
	is.Equal(k, Task)

	_, err = ParseKind("portfolio")
	is.True(err != nil)
}

func TestLoadTableKeepsDeclarationOrder(t *testing.T) {
	is := is.New(t)

	table, err := LoadTable(strings.NewReader(orderedTable))
	is.NoErr(err)

	is.Equal(table.Names(), []string{"zeta", "alpha", "null", "slot2", "slot3", "slot4"})
	is.Equal(table.MustLookup("slot3"), datatypes.Work)
}

func TestLoadTableRejectsDuplicates(t *testing.T) {
	is := is.New(t)

	_, err := LoadTable(strings.NewReader(duplicateTable))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "text2"))
}

func TestLoadTableRejectsUnknownTypes(t *testing.T) {
	is := is.New(t)

	_, err := LoadTable(strings.NewReader(unknownTypeTable))
	is.True(err != nil)
}

func TestLoadTableRejectsInvertedRanges(t *testing.T) {
	is := is.New(t)

	_, err := LoadTable(strings.NewReader(invertedRangeTable))
	is.True(err != nil)
}

const orderedTable string = `
kind: test
attributes:
  zeta: string
  alpha: integer
  'null': boolean
families:
  - pattern: slot%d
    from: 2
    to: 4
    type: work
`

const duplicateTable string = `
kind: test
attributes:
  text2: string
families:
  - pattern: text%d
    from: 1
    to: 3
    type: string
`

const unknownTypeTable string = `
kind: test
attributes:
  name: text
`

const invertedRangeTable string = `
kind: test
families:
  - pattern: text%d
    from: 10
    to: 1
    type: string
`
