package config

import (
	"net/url"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

// AllowAnyOrigin disables the CORS allow-list when present in CORS.AllowedOrigins.
const AllowAnyOrigin = "*"

type Config struct {
	Env     string `env:"ENV" env-default:"prod"`
	HTTP    HTTPConfig
	Mongo   MongoConfig
	CORS    CORSConfig
	Metrics MetricsConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:""`
	Port            string        `env:"PORT" env-default:"5000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type MongoConfig struct {
	Scheme         string        `env:"MONGO_SCHEME" env-default:"mongodb+srv"`
	Host           string        `env:"MONGO_HOST" env-default:"cluster0.e5zetpl.mongodb.net"`
	Username       string        `env:"DB_USER" env-required:"true"`
	Password       string        `env:"DB_PASS" env-required:"true"`
	Database       string        `env:"MONGO_DATABASE" env-default:"taskmaster"`
	AppName        string        `env:"MONGO_APP_NAME" env-default:"Cluster0"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"MONGO_PING_TIMEOUT" env-default:"10s"`
}

// URI returns the connection string with the credentials escaped.
func (c MongoConfig) URI() string {
	query := url.Values{}
	query.Set("retryWrites", "true")
	query.Set("w", "majority")
	if c.AppName != "" {
		query.Set("appName", c.AppName)
	}

	u := url.URL{
		Scheme:   c.Scheme,
		User:     url.UserPassword(c.Username, c.Password),
		Host:     c.Host,
		Path:     "/",
		RawQuery: query.Encode(),
	}
	return u.String()
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// AllowsAnyOrigin reports whether the wildcard origin is configured.
func (c CORSConfig) AllowsAnyOrigin() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == AllowAnyOrigin {
			return true
		}
	}
	return false
}

type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" env-default:"true"`
}
