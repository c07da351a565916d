package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	LabelColumn  string `mapstructure:"label_column" yaml:"label_column"`
	EnergyColumn string `mapstructure:"energy_column" yaml:"energy_column"`
	// OutputPath is where rank exports unless --output is given.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	DefaultN   int    `mapstructure:"default_n" yaml:"default_n"`
	// Direction is "top" or "bottom".
	Direction      string   `mapstructure:"direction" yaml:"direction"`
	DefaultExclude []string `mapstructure:"default_exclude" yaml:"default_exclude"`
	// Vocabulary lists the orbital labels offered for exclusion/inclusion.
	Vocabulary []string `mapstructure:"vocabulary" yaml:"vocabulary"`
	Delimiter  string   `mapstructure:"delimiter" yaml:"delimiter"`
	Format     string   `mapstructure:"format" yaml:"format"`
}

// Dir returns ~/.nborank.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".nborank"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.nborank/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults; command flags are applied by callers.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("NBORANK")
	v.AutomaticEnv()

	v.SetDefault("label_column", "Orbital")
	v.SetDefault("energy_column", "kcal/mol")
	v.SetDefault("output_path", "top_sorted_result.csv")
	v.SetDefault("default_n", 5)
	v.SetDefault("direction", "top")
	v.SetDefault("default_exclude", []string{})
	v.SetDefault("vocabulary", []string{"BD", "BD*", "CR", "LP", "LP*", "RY", "RY*"})
	v.SetDefault("delimiter", "")
	v.SetDefault("format", "table")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// A missing file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.DefaultN < 1 {
		c.DefaultN = 1
	}
	return &c, nil
}
