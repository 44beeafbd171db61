// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed, so a fork only has to edit that
// file to point the updater at a different release feed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GitHubRepo  string `yaml:"github_repo"`
	ConfigPath  string `yaml:"config_path"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "scriptsync",
			DisplayName: "ScriptSync",
			Description: "Keep game-host user scripts in sync with their GitHub releases",
			HomeDir:     ".scriptsync",
			EnvPrefix:   "SCRIPTSYNC",
			GitHubRepo:  "EastArctica/JSMacros-Scripts",
			ConfigPath:  "./config/scriptsync.json",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "scriptsync").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".scriptsync").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SCRIPTSYNC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string whose releases carry the scripts.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ConfigPath returns the default location of the version-tracking document.
func ConfigPath() string { load(); return defaults.ConfigPath }

// UserAgent returns the User-Agent sent with every release request.
func UserAgent() string { return CLIName() }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("repo") → "SCRIPTSYNC_REPO".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
