package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/scriptsync/scriptsync/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRepo          = "repo"
	KeyAPIBase       = "api_base"
	KeyConfigPath    = "config_path"
	KeyIndent        = "indent"
	KeyTimeout       = "timeout"
	KeyMirror        = "mirror"
	KeyToken         = "token"
	KeyMetadataIndex = "metadata_index"
)

// Settings is the resolved view of the tool configuration.
type Settings struct {
	Repo       string
	APIBase    string
	ConfigPath string
	Indent     int
	Timeout    time.Duration
	Mirror     string
	Token      string
	// MetadataIndex selects the metadata asset by position when >= 0.
	// Negative means select by name.
	MetadataIndex int
}

// Dir returns the path to the config directory (~/.scriptsync/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.scriptsync/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRepo, branding.GitHubRepo())
	v.SetDefault(KeyAPIBase, "https://api.github.com")
	v.SetDefault(KeyConfigPath, branding.ConfigPath())
	v.SetDefault(KeyIndent, 4)
	v.SetDefault(KeyTimeout, "30s")
	v.SetDefault(KeyMirror, "")
	v.SetDefault(KeyToken, "")
	v.SetDefault(KeyMetadataIndex, -1)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	loadInto(viper.GetViper(), FilePath())
}

func loadInto(v *viper.Viper, path string) {
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = v.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current resolves the loaded settings. Load must have been called first.
func Current() Settings {
	return resolve(viper.GetViper())
}

func resolve(v *viper.Viper) Settings {
	s := Settings{
		Repo:          v.GetString(KeyRepo),
		APIBase:       v.GetString(KeyAPIBase),
		ConfigPath:    v.GetString(KeyConfigPath),
		Indent:        v.GetInt(KeyIndent),
		Timeout:       v.GetDuration(KeyTimeout),
		Mirror:        v.GetString(KeyMirror),
		Token:         v.GetString(KeyToken),
		MetadataIndex: v.GetInt(KeyMetadataIndex),
	}
	if s.Token == "" {
		s.Token = os.Getenv("GITHUB_TOKEN")
	}
	if s.Indent < 0 {
		s.Indent = 0
	}
	return s
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	return setIn(viper.GetViper(), FilePath(), key, value)
}

func setIn(v *viper.Viper, configFile, key, value string) error {
	v.Set(key, value)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
