package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis     Redis  `yaml:"redis"`
	Mode      string `yaml:"mode" env:"GAME_MODE" env-default:"bot"`
	BotPlayer int    `yaml:"bot-player" env:"BOT_PLAYER" env-default:"1"`
}

// Redis is optional: an empty host keeps games in memory.
type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Mode != entity.PvPMode && config.Mode != entity.BotMode {
		return nil, fmt.Errorf("%w: mode %q", entity.ErrUnknownGameMode, config.Mode)
	}

	if config.BotPlayer != 0 && config.BotPlayer != 1 {
		return nil, fmt.Errorf("bot-player must be 0 or 1, got %d", config.BotPlayer)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
