package exporter

import (
	"bytes"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/project-attributes/pkg/schedule/schema"
)

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(bytes.NewBufferString(profilesYAML))
	is.NoErr(err)

	is.Equal(cfg.Mode, "strict")
	is.Equal(len(cfg.Profiles), 2)
	is.Equal(cfg.Profiles[0].Kind, "task")
	is.Equal(cfg.Profiles[0].Attributes, []string{"unique_id", "name", "duration"})

	selected := cfg.selection()
	is.True(selected[schema.Task]["duration"])
	is.True(!selected[schema.Task]["start"])
	is.True(selected[schema.Resource]["standard_rate"])

	_, hasProfile := selected[schema.Assignment]
	is.True(!hasProfile)
}

func TestLoadConfigurationFailsOnUnknownAttribute(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString(`
profiles:
  - kind: task
    attributes: [unique_id, text31]
`))
	is.True(err != nil)
	is.Equal(err.Error(), `invalid export profile: task does not declare an attribute named "text31"`)
}

func TestLoadConfigurationFailsOnUnknownKindOrMode(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("profiles:\n  - kind: milestone\n"))
	is.True(err != nil)

	_, err = LoadConfiguration(bytes.NewBufferString("mode: sloppy\n"))
	is.True(err != nil)
}

func TestLoadConfigurationFailsOnEmptyProfile(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("profiles:\n  - kind: task\n    attributes: []\n"))
	is.True(err != nil)
	is.Equal(err.Error(), "invalid export profile: no attributes selected for task")
}

func TestProfileWithoutAttributesSelectsEverything(t *testing.T) {
	is := is.New(t)

	cfg := &Config{Profiles: []Profile{{Kind: "task"}}}
	_, hasProfile := cfg.selection()[schema.Task]
	is.True(!hasProfile)
}

func TestSelectionOfNilConfigIsEmpty(t *testing.T) {
	is := is.New(t)

	var cfg *Config
	is.Equal(len(cfg.selection()), 0)
}

func TestParseMode(t *testing.T) {
	is := is.New(t)

	m, err := ParseMode("")
	is.NoErr(err)
	is.Equal(m, Lenient)

	m, err = ParseMode("STRICT")
	is.NoErr(err)
	is.Equal(m, Strict)
}

const profilesYAML string = `
mode: strict
profiles:
  - kind: task
    attributes: [unique_id, name, duration]
  - kind: resource
    attributes: [unique_id, name, standard_rate]
`
