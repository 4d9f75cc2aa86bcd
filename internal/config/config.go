package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Logging
	}

	Database struct {
		Path string
	}
	Logging struct {
		Level string // silent, error, warn or info
	}
)

// NewViper returns a viper instance reading WISHLIST_* environment variables
// with every default set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("log_level", DefaultLogLevel)
	return v
}

// BindFlags lets command line flags override environment values.
// Unknown flag names are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"database_path": "db",
		"log_level":     "log-level",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}

func NewConfig() *Config {
	return FromViper(NewViper())
}
