package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the working directory first, then in the
// user's config directory under "fss/".
const ConfigFileName = "fss.yaml"

// envPrefix prefixes every environment variable the scanner reads.
const envPrefix = "FSS_"

// Defaults holds persistent flag defaults. Command-line flags always win
// over environment variables, which win over the config file.
type Defaults struct {
	// Recursive is "" (off), "unlimited", or a non-negative depth.
	Recursive string `yaml:"recursive,omitempty"`

	ShowFiles    bool `yaml:"show_files"`
	ShowSymlinks bool `yaml:"show_symlinks"`
	ShowSpecial  bool `yaml:"show_special"`

	DirSize     bool `yaml:"dir_size"`
	Permissions bool `yaml:"permissions"`
	ModTime     bool `yaml:"modtime"`
	Absolute    bool `yaml:"absolute"`

	ShowErrors bool `yaml:"show_errors"`
	Verbose    bool `yaml:"verbose"`
}

// Load reads ConfigFileName from the given directory.
func Load(dir string) (*Defaults, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return &d, nil
}

// Discover resolves the effective defaults for one invocation. A .env file
// in the working directory is loaded first so FSS_* variables declared
// there behave like real environment variables. The config file is looked
// up in the working directory and then in the user config directory; a
// missing file yields zero-value defaults, not an error.
func Discover() (*Defaults, error) {
	// missing .env is the common case
	_ = godotenv.Load()

	d, err := Load(".")
	if errors.Is(err, ErrConfigNotFound) {
		d, err = loadUserConfig()
	}
	if errors.Is(err, ErrConfigNotFound) {
		d, err = &Defaults{}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := applyEnv(d); err != nil {
		return nil, err
	}
	return d, nil
}

func loadUserConfig() (*Defaults, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, ErrConfigNotFound
	}
	return Load(filepath.Join(base, "fss"))
}

// applyEnv overlays FSS_* environment variables onto d.
func applyEnv(d *Defaults) error {
	if v, ok := os.LookupEnv(envPrefix + "RECURSIVE"); ok {
		d.Recursive = v
	}

	boolVars := []struct {
		name string
		dst  *bool
	}{
		{"SHOW_FILES", &d.ShowFiles},
		{"SHOW_SYMLINKS", &d.ShowSymlinks},
		{"SHOW_SPECIAL", &d.ShowSpecial},
		{"DIR_SIZE", &d.DirSize},
		{"PERMISSIONS", &d.Permissions},
		{"MODTIME", &d.ModTime},
		{"ABSOLUTE", &d.Absolute},
		{"SHOW_ERRORS", &d.ShowErrors},
		{"VERBOSE", &d.Verbose},
	}
	for _, bv := range boolVars {
		v, ok := os.LookupEnv(envPrefix + bv.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s%s: %w", v, envPrefix, bv.name, err)
		}
		*bv.dst = parsed
	}
	return nil
}
