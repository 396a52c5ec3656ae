package config

import (
	"log"

	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type HTTPConfig struct {
	Env  string `mapstructure:"env"`
	Port int    `mapstructure:"port"`
}

type CatalogConfig struct {
	Seed bool `mapstructure:"seed"`
}

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("http.env", EnvLocal)
	viper.SetDefault("http.port", 8080)
	viper.SetDefault("catalog.seed", true)

	viper.SetEnvPrefix("cafepos")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		log.Printf("Error reading config file, %s\n", err)
		return nil, err
	}

	var cfg Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		log.Printf("Unable to decode into struct, %v\n", err)
		return nil, err
	}

	return &cfg, nil
}
