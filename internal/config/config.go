package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Board      Board  `yaml:"board"`
	Search     Search `yaml:"search"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Board - dimensions of the k-in-a-row game.
type Board struct {
	Rows    int `yaml:"rows" env:"BOARD_ROWS" env-default:"3"`
	Columns int `yaml:"columns" env:"BOARD_COLUMNS" env-default:"3"`
	K       int `yaml:"k" env:"BOARD_K" env-default:"3"`
}

type Search struct {
	// Seed for the random player; 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"SEARCH_SEED" env-default:"0"`
	// Matches played at the same time by a tournament.
	Parallelism int `yaml:"parallelism" env:"SEARCH_PARALLELISM" env-default:"4"`
	// Upper bound on the matches of one tournament.
	MaxMatches int `yaml:"max-matches" env:"SEARCH_MAX_MATCHES" env-default:"1000"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// LoadEnv - load configuration from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from env: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
