package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// Config holds the app settings read from fm-calculator.yaml. Everything has
// a sensible default; the file is optional.
type Config struct {
	App struct {
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"app"`

	Window struct {
		Width  float32 `mapstructure:"width"`
		Height float32 `mapstructure:"height"`
	} `mapstructure:"window"`

	// Report defaults pre-fill the export dialog for operators who always
	// test for the same site or supplier.
	Report struct {
		SiteName string `mapstructure:"site_name"`
		Supplier string `mapstructure:"supplier"`
	} `mapstructure:"report"`
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Settings can be overridden through FM_* environment
// variables.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("FM")
	v.AutomaticEnv()

	v.SetDefault("app.log_level", "info")
	v.SetDefault("window.width", 1100)
	v.SetDefault("window.height", 760)

	var c Config
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
