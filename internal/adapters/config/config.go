package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the site configuration read from vitrine.yaml, overridable
// through VITRINE_* environment variables.
type Config struct {
	Content        string
	Title          string
	Out            string
	Addr           string
	HighlightStyle string
	Colors         []string
}

// Load reads the configuration file at path, or ./vitrine.yaml when
// path is empty. A missing default file is not an error; an explicitly
// named file must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("content", "content.yaml")
	v.SetDefault("title", "Vitrine")
	v.SetDefault("out", "dist")
	v.SetDefault("addr", ":8080")
	v.SetDefault("highlight_style", "github")

	v.SetEnvPrefix("VITRINE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("vitrine")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return Config{
		Content:        v.GetString("content"),
		Title:          v.GetString("title"),
		Out:            v.GetString("out"),
		Addr:           v.GetString("addr"),
		HighlightStyle: v.GetString("highlight_style"),
		Colors:         v.GetStringSlice("colors"),
	}, nil
}
