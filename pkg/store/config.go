package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the store location and the remote defaults that seed a
// fresh state.
type Config interface {
	BasePath() string
	Endpoint() string
	Employee() string
}

// LoadConfig reads .shifthope.yaml (working directory, or the directory named
// by SHIFTHOPE_CONFIG_PATH) plus SHIFTHOPE_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.shifthope.db")
	viper.SetConfigName(".shifthope") // .yaml is implicit
	viper.SetEnvPrefix("SHIFTHOPE")
	viper.AutomaticEnv()

	if override := os.Getenv("SHIFTHOPE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:        path,
		EndpointURL: viper.GetString("endpoint"),
		Name:        viper.GetString("employee"),
	}, nil
}

// Endpoint resolves the sheet endpoint. An override stored in the db wins
// over the config file value.
func Endpoint(cfg Config, p Persistence) string {
	if p != nil {
		if v, ok := p.Get(KeyEndpoint); ok && v != "" {
			return v
		}
	}
	if cfg != nil {
		return cfg.Endpoint()
	}
	return ""
}

type fileConfig struct {
	Path        string `json:"path"`
	EndpointURL string `json:"endpoint"`
	Name        string `json:"employee"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Endpoint() string { return f.EndpointURL }
func (f *fileConfig) Employee() string { return f.Name }
