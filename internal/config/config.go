package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	DatabaseURL  string        `env:"DATABASE_URL" envDefault:"storefront.db"`
	SeedDemoData bool          `env:"SEED_DEMO_DATA" envDefault:"false"`
	NotifyDelay  time.Duration `env:"NOTIFY_DELAY" envDefault:"100ms"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
