package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	CartolaAPI  CartolaAPI
	Redis       Redis
	Server      Server
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type CartolaAPI struct {
	BaseURL    string        `envconfig:"CARTOLA_BASE_URL" default:"https://api.cartolafc.globo.com/"`
	Timeout    time.Duration `envconfig:"CARTOLA_TIMEOUT" default:"10s"`
	PlayersTTL time.Duration `envconfig:"CARTOLA_PLAYERS_TTL" default:"1h"`
}

// Redis is optional. An empty Addr keeps subscriptions in memory.
type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type Server struct {
	Addr     string `envconfig:"HTTP_ADDR" default:":8080"`
	Timezone string `envconfig:"TIMEZONE" default:"America/Sao_Paulo"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
