package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultAPIBaseURL is used when API_BASE_URL is not set.
const DefaultAPIBaseURL = "http://localhost:5000/api"

type Config struct {
	App     AppConfig
	API     APIConfig
	Redis   RedisConfig
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
}

type AppConfig struct {
	Port string `validate:"required"`
	Env  string
}

type APIConfig struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type RedisConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required"`
	Password string
	DB       int `validate:"gte=0"`
}

type SessionConfig struct {
	Secret       string        `validate:"required,min=16"`
	TTL          time.Duration `validate:"gt=0"`
	CookieName   string        `validate:"required"`
	CookieSecure bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

func LoadConfig(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("portal", pflag.ContinueOnError)
	configFile := flags.String("config", ".env", "path to the env file")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(*configFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("SESSION_COOKIE_NAME", "portal_session")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		// Running from the environment alone is fine.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	apiTimeout, err := time.ParseDuration(v.GetString("API_TIMEOUT"))
	if err != nil {
		apiTimeout = 10 * time.Second
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 12 * time.Hour
	}

	baseURL := strings.TrimRight(v.GetString("API_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		API: APIConfig{
			BaseURL: baseURL,
			Timeout: apiTimeout,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret:       v.GetString("SESSION_SECRET"),
			TTL:          sessionTTL,
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: v.GetBool("COOKIE_SECURE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
