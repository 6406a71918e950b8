package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort uint16 `envconfig:"MINDWELL_HTTP_SERVER_PORT" default:"8080" required:"true"`
}

func New() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, err
	}
	return c, nil
}
