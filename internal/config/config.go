package config

import (
	"github.com/spf13/viper"
)

// Config keys, overridable through TODOLOG_* environment variables.
const (
	cfgKeyAddr          = "addr"
	cfgKeyDataFile      = "data_file"
	cfgKeySessionSecret = "session_secret"
	cfgKeyGinMode       = "gin_mode"
	cfgKeyTemplateGlob  = "template_glob"
	cfgKeyStaticDir     = "static_dir"
)

type Config struct {
	Addr          string
	DataFile      string
	SessionSecret string
	GinMode       string
	TemplateGlob  string
	StaticDir     string
}

func Load() *Config {
	v := viper.New()
	v.SetDefault(cfgKeyAddr, ":8080")
	v.SetDefault(cfgKeyDataFile, "data/users.json")
	v.SetDefault(cfgKeySessionSecret, "default-secret-key-change-me")
	v.SetDefault(cfgKeyGinMode, "debug")
	v.SetDefault(cfgKeyTemplateGlob, "web/templates/*.html")
	v.SetDefault(cfgKeyStaticDir, "web/static")

	v.SetEnvPrefix("todolog")
	v.AutomaticEnv()

	return &Config{
		Addr:          v.GetString(cfgKeyAddr),
		DataFile:      v.GetString(cfgKeyDataFile),
		SessionSecret: v.GetString(cfgKeySessionSecret),
		GinMode:       v.GetString(cfgKeyGinMode),
		TemplateGlob:  v.GetString(cfgKeyTemplateGlob),
		StaticDir:     v.GetString(cfgKeyStaticDir),
	}
}
