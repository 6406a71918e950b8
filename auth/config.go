package auth

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TokenSecret string `envconfig:"MINDWELL_TOKEN_SECRET" required:"true"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
