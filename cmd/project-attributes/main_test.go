package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/project-attributes/pkg/schedule/schema"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

func TestInitializeWithoutDatabase(t *testing.T) {
	is := is.New(t)
	t.Setenv("POSTGRES_HOST", "")

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	is.NoErr(os.WriteFile(path, []byte(profilesYAML), 0644))

	flags := defaultFlags()
	flags[profilesPath] = path

	app, closeSink, err := initialize(context.Background(), flags)
	is.NoErr(err)
	defer closeSink()

	bag := values.NewMap(values.KV("unique_id", 1.5), values.KV("name", "Design"), values.KV("start", "tomorrow"))

	// the profile selects strict mode and hides the start date
	_, err = app.Export(context.Background(), schema.Task, "task-1", bag)
	is.True(err != nil)
}

func TestInitializeWithModeOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("POSTGRES_HOST", "")

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	is.NoErr(os.WriteFile(path, []byte(profilesYAML), 0644))

	flags := defaultFlags()
	flags[profilesPath] = path
	flags[exportMode] = "lenient"

	app, closeSink, err := initialize(context.Background(), flags)
	is.NoErr(err)
	defer closeSink()

	bag := values.NewMap(values.KV("unique_id", 1.5), values.KV("name", "Design"), values.KV("start", "tomorrow"))

	result, err := app.Export(context.Background(), schema.Task, "task-1", bag)
	is.NoErr(err)
	is.Equal(result.Values.Keys(), []string{"name"})
	is.Equal(len(result.NotCoerced), 1)
	is.Equal(result.NotCoerced[0].AttributeName, "unique_id")
}

func TestInitializeFailsWithMissingProfiles(t *testing.T) {
	is := is.New(t)

	flags := defaultFlags()
	flags[profilesPath] = filepath.Join(t.TempDir(), "missing.yaml")

	_, _, err := initialize(context.Background(), flags)
	is.True(err != nil)
}

const profilesYAML string = `
mode: strict
profiles:
  - kind: task
    attributes: [unique_id, name]
`
