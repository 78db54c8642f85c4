// Package yaml loads filter criteria defaults from a YAML config file.
// Explicit CLI flags take precedence over values loaded here.
package yaml

import (
	"os"

	"github.com/fwojciec/jobscout"
	"gopkg.in/yaml.v3"
)

// Config mirrors the criteria fields of the YAML config file.
type Config struct {
	Include  []string `yaml:"include"`
	Exclude  []string `yaml:"exclude"`
	Location string   `yaml:"location"`
	Since    string   `yaml:"since"`
}

// LoadCriteria reads the file at path and converts it into filter
// criteria. A malformed file or an invalid since date is a configuration
// error.
func LoadCriteria(path string) (jobscout.Criteria, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return jobscout.Criteria{}, jobscout.Errorf(jobscout.EINVALID, "read config %s: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return jobscout.Criteria{}, jobscout.Errorf(jobscout.EINVALID, "parse config %s: %v", path, err)
	}

	criteria := jobscout.Criteria{
		Include:  cfg.Include,
		Exclude:  cfg.Exclude,
		Location: cfg.Location,
	}
	if cfg.Since != "" {
		since, err := jobscout.ParseSince(cfg.Since)
		if err != nil {
			return jobscout.Criteria{}, err
		}
		criteria.Since = &since
	}

	return criteria, nil
}

// Merge overlays explicit criteria on top of defaults: any field set in
// explicit wins, untouched fields fall back to the defaults.
func Merge(defaults, explicit jobscout.Criteria) jobscout.Criteria {
	out := defaults
	if len(explicit.Include) > 0 {
		out.Include = explicit.Include
	}
	if len(explicit.Exclude) > 0 {
		out.Exclude = explicit.Exclude
	}
	if explicit.Location != "" {
		out.Location = explicit.Location
	}
	if explicit.Since != nil {
		out.Since = explicit.Since
	}
	return out
}
