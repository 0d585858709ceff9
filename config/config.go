// Package config decodes carlo's two TOML configuration files: irc.toml
// (mandatory; the IRC library's own schema, of which this module inspects
// only server/nickname/channels/owners/TLS) and jenkins.toml (optional; the CI
// polling configuration).
package config

import (
	"os"

	"github.com/arekfu/carlo/go/skerr"
	"github.com/arekfu/carlo/go/sklog"
	"github.com/arekfu/carlo/go/util"
	"github.com/arekfu/carlo/jenkins"
	"github.com/pelletier/go-toml/v2"
)

// IRCConfig is the decoded contents of irc.toml.
type IRCConfig struct {
	Server   string   `toml:"server"`
	Nickname string   `toml:"nickname"`
	Channels []string `toml:"channels"`
	Owners   []string `toml:"owners"`
	UseTLS   bool     `toml:"use_tls"`
}

// OwnerSet returns the configured owners as a set, for membership checks.
func (c *IRCConfig) OwnerSet() util.StringSet {
	return util.NewStringSet(c.Owners)
}

// LoadIRCConfig reads and decodes irc.toml. Any failure here is fatal to the
// process (spec: "IRC config missing/malformed -> fatal").
func LoadIRCConfig(path string) (*IRCConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, skerr.Wrapf(err, "reading IRC config %q", path)
	}
	var cfg IRCConfig
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return nil, skerr.Wrapf(err, "decoding IRC config %q", path)
	}
	return &cfg, nil
}

// jenkinsFile mirrors jenkins.toml's on-disk shape.
type jenkinsFile struct {
	Sleep uint64     `toml:"sleep"`
	Job   []jobEntry `toml:"job"`
}

type jobEntry struct {
	ID     string   `toml:"id"`
	Server string   `toml:"server"`
	User   string   `toml:"user"`
	Token  string   `toml:"token"`
	Notify []string `toml:"notify"`
}

// LoadCIConfig reads and decodes jenkins.toml into a jenkins.GlobalConfig.
// Its absence or malformedness is not fatal to the caller; Bootstrap is
// expected to disable the poller and continue running IRC-only.
func LoadCIConfig(path string) (*jenkins.GlobalConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, skerr.Wrapf(err, "reading CI config %q", path)
	}
	var f jenkinsFile
	if err := toml.Unmarshal(b, &f); err != nil {
		return nil, skerr.Wrapf(err, "decoding CI config %q", path)
	}

	cfg := &jenkins.GlobalConfig{SleepSeconds: f.Sleep}
	for _, j := range f.Job {
		if len(j.Notify) == 0 {
			sklog.Warningf("config: CI job %q on server %q has no notify destinations configured", j.ID, j.Server)
		}
		cfg.Jobs = append(cfg.Jobs, jenkins.CIServerConfig{
			ID:     j.ID,
			Server: j.Server,
			User:   j.User,
			Token:  j.Token,
			Notify: j.Notify,
		})
	}
	return cfg, nil
}
