package config

// Resolve loads the active configuration using precedence:
// 1. path (--config flag), which must exist
// 2. ~/.parley/config.toml, or defaults when it is missing
// An instance override (--instance flag) replaces the configured instance.
func Resolve(path, instance string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, err = LoadOrDefault(ConfigPath())
	}
	if err != nil {
		return nil, err
	}
	if instance != "" {
		if err := ValidateInstance(instance); err != nil {
			return nil, err
		}
		cfg.Instance = instance
	}
	return cfg, nil
}
