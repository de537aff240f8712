package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/relwatch/relwatch/pkg/errors"
	"github.com/relwatch/relwatch/pkg/release"
)

// Config is the TOML configuration for the relwatch CLI.
//
// Example:
//
//	feed_dir = "./feeds"
//	strategy = "auto"
//
//	[[projects]]
//	name = "views"
//	installed = "8.x-3.2"
//
//	[[projects]]
//	name = "token"
//	version = "8.x-2"
type Config struct {
	// FeedDir is the directory holding `<project>.json` feed documents.
	FeedDir string `toml:"feed_dir"`
	// Strategy is the default selection strategy (never, auto, ignore).
	Strategy string `toml:"strategy"`
	// Projects are the projects checked by the check command.
	Projects []ProjectConfig `toml:"projects"`
}

// ProjectConfig describes one watched project.
type ProjectConfig struct {
	Name      string `toml:"name"`
	Installed string `toml:"installed,omitempty"` // currently installed version, if any
	Version   string `toml:"version,omitempty"`   // pinned version or branch-wildcard
	Dev       bool   `toml:"dev,omitempty"`       // restrict to development snapshots
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading config %s", path)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding config %s", path)
	}
	for _, p := range cfg.Projects {
		if err := errors.ValidateProjectName(p.Name); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// InstalledLookup builds the installed-version collaborator from the
// configured projects.
func (c *Config) InstalledLookup() release.InstalledLookup {
	installed := make(map[string]string, len(c.Projects))
	for _, p := range c.Projects {
		if p.Installed != "" {
			installed[p.Name] = p.Installed
		}
	}
	return func(project string) (string, bool) {
		v, ok := installed[project]
		return v, ok
	}
}

// Requests converts the configured projects into resolution requests.
func (c *Config) Requests() []release.Request {
	reqs := make([]release.Request, 0, len(c.Projects))
	for _, p := range c.Projects {
		req := release.Request{Name: p.Name, Version: p.Version}
		switch {
		case p.Dev:
			req.Restrict = release.RestrictDev
		case p.Version != "":
			req.Restrict = release.RestrictVersion
		}
		reqs = append(reqs, req)
	}
	return reqs
}

// Project returns the configuration for a named project, if present.
func (c *Config) Project(name string) (ProjectConfig, bool) {
	for _, p := range c.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return ProjectConfig{}, false
}
