package exporter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/project-attributes/internal/pkg/infrastructure/database"
	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/schema"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

func TestProjectInLenientModeCollectsFailures(t *testing.T) {
	is, ctx := testSetup(t)

	x := New(Lenient, nil, nil)

	result, err := x.Project(ctx, schema.Task, taskBag())
	is.NoErr(err)

	is.Equal(result.Kind, schema.Task)
	is.Equal(result.Values.Keys(), []string{"name", "start", "duration", "critical"})
	is.Equal(len(result.NotCoerced), 2)
	is.Equal(result.NotCoerced[0].AttributeName, "unique_id")
	is.Equal(result.NotCoerced[1].AttributeName, "constraint_type")
	is.Equal(result.Undeclared, []string{"colour"})
}

func TestProjectInStrictModeFailsOnFirstError(t *testing.T) {
	is, ctx := testSetup(t)

	x := New(Strict, nil, nil)

	_, err := x.Project(ctx, schema.Task, taskBag())
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))

	var mismatch *scherrors.MismatchError
	is.True(errors.As(err, &mismatch))
	is.Equal(mismatch.Attribute, "unique_id")
}

func TestModeCanBeOverriddenPerCall(t *testing.T) {
	is, ctx := testSetup(t)

	x := New(Strict, nil, nil)

	result, err := x.Project(ctx, schema.Task, taskBag(), WithMode(Lenient))
	is.NoErr(err)
	is.Equal(len(result.NotCoerced), 2)
}

func TestProjectWithProfileOnlyExportsSelectedAttributes(t *testing.T) {
	is, ctx := testSetup(t)

	cfg := &Config{Profiles: []Profile{{Kind: "task", Attributes: []string{"name", "duration", "unique_id"}}}}
	x := New(Lenient, cfg, nil)

	result, err := x.Project(ctx, schema.Task, taskBag())
	is.NoErr(err)

	is.Equal(result.Values.Keys(), []string{"name", "duration"})
	is.Equal(len(result.NotCoerced), 1)
}

func TestProjectOfAnEmptyBag(t *testing.T) {
	is, ctx := testSetup(t)

	result, err := New(Strict, nil, nil).Project(ctx, schema.Calendar, nil)
	is.NoErr(err)
	is.Equal(result.Values.Len(), 0)
	is.Equal(len(result.NotCoerced), 0)
	is.Equal(len(result.Undeclared), 0)
}

func TestProjectTreatsNullAsAbsent(t *testing.T) {
	is, ctx := testSetup(t)

	bag := values.NewMap(values.KV("name", nil), values.KV("critical", nil))

	result, err := New(Strict, nil, nil).Project(ctx, schema.Task, bag)
	is.NoErr(err)
	is.Equal(result.Values.Len(), 0)
}

func TestExportWritesRowsToSink(t *testing.T) {
	is, ctx := testSetup(t)

	sink := newSinkMock(nil)
	x := New(Lenient, nil, sink)

	result, err := x.Export(ctx, schema.Task, "task-17", taskBag())
	is.NoErr(err)
	is.Equal(result.EntityID, "task-17")

	is.Equal(len(sink.WriteCalls()), 1)
	call := sink.WriteCalls()[0]
	is.Equal(call.Kind, schema.Task)
	is.Equal(call.EntityID, "task-17")
	is.Equal(len(call.Rows), 4)

	is.Equal(call.Rows[0].Attribute, "name")
	is.Equal(*call.Rows[0].Text, "Write specification")
	is.Equal(call.Rows[2].Attribute, "duration")
	is.Equal(string(call.Rows[2].JSON), `{"duration":3,"units":"DAYS"}`)
	is.Equal(call.Rows[3].Attribute, "critical")
	is.Equal(*call.Rows[3].Number, 1.0)
}

func TestExportInStrictModeDoesNotWrite(t *testing.T) {
	is, ctx := testSetup(t)

	sink := newSinkMock(nil)

	_, err := New(Strict, nil, sink).Export(ctx, schema.Task, "task-17", taskBag())
	is.True(err != nil)
	is.Equal(len(sink.WriteCalls()), 0)
}

func TestExportReportsSinkErrors(t *testing.T) {
	is, ctx := testSetup(t)

	sink := newSinkMock(errors.New("connection refused"))

	_, err := New(Lenient, nil, sink).Export(ctx, schema.Task, "task-17", taskBag())
	is.Equal(err.Error(), "failed to write task task-17: connection refused")
	is.Equal(len(sink.WriteCalls()), 1)
}

func TestExportWithoutSink(t *testing.T) {
	is, ctx := testSetup(t)

	result, err := New(Lenient, nil, nil).Export(ctx, schema.Task, "task-17", taskBag())
	is.NoErr(err)
	is.Equal(result.Values.Len(), 4)
}

func newSinkMock(err error) *SinkMock {
	return &SinkMock{
		WriteFunc: func(ctx context.Context, kind schema.Kind, entityID string, rows []database.Row) error {
			return err
		},
	}
}

func testSetup(t *testing.T) (*is.I, context.Context) {
	return is.New(t), context.Background()
}

func taskBag() *values.Map {
	return values.NewMap(
		values.KV("unique_id", "seventeen"),
		values.KV("name", "Write specification"),
		values.KV("start", time.Date(2023, 1, 16, 8, 0, 0, 0, time.UTC)),
		values.KV("colour", "blue"),
		values.KV("duration", values.NewDuration(3, values.Days)),
		values.KV("constraint_type", "SOMETIMES_STARTS_ON"),
		values.KV("critical", true),
		values.KV("notes", nil),
	)
}
