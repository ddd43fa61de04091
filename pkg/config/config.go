package config

import "github.com/spf13/cobra"

// Load assembles configuration in precedence order: defaults, then the
// config file (explicit via --config or the conventional location), then
// environment variables, then flags. The result is validated before return.
func Load(cmd *cobra.Command, fc *FlagConfig) (*Config, error) {
	cfg := New()

	path := fc.ConfigFile
	explicit := path != ""
	if !explicit {
		path = DefaultFilePath()
	}
	if path != "" {
		if err := LoadFromFile(cfg, path, explicit); err != nil {
			return nil, err
		}
	}

	if err := NewEnvParser().Apply(cfg); err != nil {
		return nil, err
	}

	fc.Apply(cmd.Flags(), cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
