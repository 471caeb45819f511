package exporter

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"

	"github.com/diwise/project-attributes/pkg/schedule/schema"
)

// Profile limits the attributes that are exported for one entity kind
type Profile struct {
	Kind       string   `yaml:"kind"`
	Attributes []string `yaml:"attributes"`
}

type Config struct {
	Mode     string    `yaml:"mode"`
	Profiles []Profile `yaml:"profiles"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	if _, err = ParseMode(cfg.Mode); err != nil {
		return nil, err
	}

	for _, p := range cfg.Profiles {
		kind, err := schema.ParseKind(p.Kind)
		if err != nil {
			return nil, err
		}

		if len(p.Attributes) == 0 {
			return nil, fmt.Errorf("invalid export profile: no attributes selected for %s", kind)
		}

		for _, name := range p.Attributes {
			if _, err := schema.Lookup(kind, name); err != nil {
				return nil, fmt.Errorf("invalid export profile: %w", err)
			}
		}
	}

	return cfg, nil
}

// selection returns the attributes to export per kind. Kinds without a profile, or with a
// profile that lists no attributes, export everything.
func (cfg *Config) selection() map[schema.Kind]map[string]bool {
	selected := map[schema.Kind]map[string]bool{}

	if cfg == nil {
		return selected
	}

	for _, p := range cfg.Profiles {
		if len(p.Attributes) == 0 {
			continue
		}

		kind, _ := schema.ParseKind(p.Kind)

		if _, ok := selected[kind]; !ok {
			selected[kind] = map[string]bool{}
		}

		for _, name := range p.Attributes {
			selected[kind][name] = true
		}
	}

	return selected
}
