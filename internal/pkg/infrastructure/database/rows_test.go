package database

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

func TestNewRowWithNumbers(t *testing.T) {
	is := is.New(t)

	row, err := NewRow("unique_id", datatypes.Integer, int64(17))
	is.NoErr(err)
	is.Equal(row.Attribute, "unique_id")
	is.Equal(row.ValueType, datatypes.Integer.String())
	is.Equal(*row.Number, 17.0)
	is.True(row.Text == nil)
	is.True(row.JSON == nil)

	row, err = NewRow("cost", datatypes.Currency, 125.5)
	is.NoErr(err)
	is.Equal(*row.Number, 125.5)

	row, err = NewRow("priority", datatypes.Priority, values.PriorityHigh)
	is.NoErr(err)
	is.Equal(*row.Number, 700.0)
}

func TestNewRowWithDateIsStoredAsUTC(t *testing.T) {
	is := is.New(t)

	cet := time.FixedZone("CET", 3600)
	start := time.Date(2023, 1, 16, 9, 0, 0, 0, cet)

	row, err := NewRow("start", datatypes.Date, start)
	is.NoErr(err)
	is.Equal(row.Timestamp.Location(), time.UTC)
	is.True(row.Timestamp.Equal(start))
}

func TestNewRowWithTextValues(t *testing.T) {
	is := is.New(t)

	row, err := NewRow("name", datatypes.String, "Write specification")
	is.NoErr(err)
	is.Equal(*row.Text, "Write specification")

	row, err = NewRow("thousands_separator", datatypes.Char, ',')
	is.NoErr(err)
	is.Equal(*row.Text, ",")

	row, err = NewRow("default_start_time", datatypes.Time, values.NewLocalTime(8, 0, 0))
	is.NoErr(err)
	is.Equal(*row.Text, "08:00:00")

	row, err = NewRow("constraint_type", datatypes.Constraint, values.MustStartOn)
	is.NoErr(err)
	is.Equal(*row.Text, "MUST_START_ON")
}

func TestNewRowStoresFlagsAsNumbers(t *testing.T) {
	is := is.New(t)

	row, err := NewRow("critical", datatypes.Boolean, true)
	is.NoErr(err)
	is.Equal(*row.Number, 1.0)
	is.True(row.JSON == nil)

	row, err = NewRow("milestone", datatypes.Boolean, false)
	is.NoErr(err)
	is.Equal(*row.Number, 0.0)
	is.True(row.Text == nil)
}

func TestNewRowWithStructuredValues(t *testing.T) {
	is := is.New(t)

	row, err := NewRow("duration", datatypes.Duration, values.NewDuration(3, values.Days))
	is.NoErr(err)
	is.True(row.Text == nil)
	is.Equal(string(row.JSON), `{"duration":3,"units":"DAYS"}`)

	row, err = NewRow("monday", datatypes.Map, values.NewMap(values.KV("working", true)))
	is.NoErr(err)
	is.Equal(string(row.JSON), `{"working":true}`)
}

func TestDatabaseIsOnlyEnabledWithAHost(t *testing.T) {
	is := is.New(t)

	is.True(!Config{}.Enabled())

	cfg := Config{host: "localhost", user: "u", password: "p", port: "5432", dbname: "diwise", sslmode: "disable"}
	is.True(cfg.Enabled())
	is.Equal(cfg.ConnStr(), "postgres://u:p@localhost:5432/diwise?sslmode=disable")
}
