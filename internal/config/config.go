package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/zenify-music/email-server/internal/domain"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"3000"`
	Server      struct {
		ReadTimeout     int `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int `env:"WRITE_TIMEOUT" envDefault:"45"`
		IdleTimeout     int `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	// 邮箱账号和密码不设置为 required，缺失时由 handler 在每次请求中返回配置错误
	Gmail struct {
		Email    string `env:"EMAIL"`
		Password string `env:"PASSWORD"`
	} `envPrefix:"GMAIL_"`
	SMTP struct {
		Host    string `env:"HOST" envDefault:"smtp.gmail.com"`
		Port    int    `env:"PORT" envDefault:"465"`
		Timeout int    `env:"TIMEOUT" envDefault:"30"`
	} `envPrefix:"SMTP_"`
	CORS struct {
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	} `envPrefix:"CORS_"`
}

func LoadConfig() (*Config, error) {
	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}

func (c *Config) MailCredentials() domain.MailCredentials {
	return domain.MailCredentials{
		User: c.Gmail.Email,
		Pass: c.Gmail.Password,
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
