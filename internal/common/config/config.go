package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Storage struct {
		// Driver selects the backing store: "redis" or "postgres".
		Driver string `env:"STORAGE_DRIVER" envDefault:"redis"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Postgres struct {
		URL         string `env:"DATABASE_URL" envDefault:""`
		AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	}

	Notify struct {
		Stream string `env:"NOTIFY_STREAM" envDefault:"admin:notifications"`
	}
}

func Load() *Config {
	// .env is optional, variables may come from the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}

// RedisAddr renders the host:port pair for the go-redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
