package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-royale/internal/catalog"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ROYALE_"

// Load loads the application configuration.
// Search order: customPath -> ~/.royale/config.yaml -> ./configs/config.yaml -> embedded default.
// ROYALE_* environment variables are applied on top of whichever file wins.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()
	if err := loadYAML(customPath, "config.yaml", defaultConfigYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("config: environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// catalogFile is the on-disk shape of catalog.yaml.
type catalogFile struct {
	Cards []catalog.Card `yaml:"cards"`
}

// LoadCatalog loads and validates the card catalog.
// Search order: customPath -> ~/.royale/catalog.yaml -> ./configs/catalog.yaml -> embedded default.
func LoadCatalog(customPath string) (*catalog.Catalog, error) {
	var file catalogFile
	if err := loadYAML(customPath, "catalog.yaml", defaultCatalogYAML, &file); err != nil {
		return nil, err
	}
	return catalog.New(file.Cards)
}

// LoadProfile loads the player profile.
// Search order: customPath -> ~/.royale/profile.yaml -> ./configs/profile.yaml -> embedded default.
func LoadProfile(customPath string) (Profile, error) {
	var p Profile
	if err := loadYAML(customPath, "profile.yaml", defaultProfileYAML, &p); err != nil {
		return p, err
	}
	return p, nil
}

// loadYAML decodes the first readable candidate into out.
// A custom path must load; user and local files that are missing or broken
// are skipped in favour of the next candidate.
func loadYAML(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: embedded %s is invalid: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".royale", filename)
}
