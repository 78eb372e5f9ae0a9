package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the runtime configuration of the server, read from the
// environment (TRILO_ prefix) after an optional .env file.
type Config struct {
	Port        string
	Store       string
	JWTSecret   string
	LogFile     string
	LogLevel    string
	CORSOrigins []string
	DB          DBConfig

	// MaxTripSchedules has no default on purpose: it must be chosen per deployment.
	MaxTripSchedules int
}

// DBConfig holds the postgres connection settings.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TRILO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("store", StorePostgres)
	v.SetDefault("log.file", "./logs/app.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("cors.origins", "")
	v.SetDefault("max_trip_schedules", 0)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "password")
	v.SetDefault("db.name", "trilo")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("jwt.secret", "")
	return v
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on env vars")
	}
	return fromViper(newViper())
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:             v.GetString("port"),
		Store:            strings.ToLower(v.GetString("store")),
		JWTSecret:        v.GetString("jwt.secret"),
		LogFile:          v.GetString("log.file"),
		LogLevel:         v.GetString("log.level"),
		MaxTripSchedules: v.GetInt("max_trip_schedules"),
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
			TimeZone: v.GetString("db.timezone"),
		},
	}
	for _, o := range strings.Split(v.GetString("cors.origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg, nil
}

// Validate checks the settings needed to serve requests.
func (c Config) Validate() error {
	var errs []error
	if c.MaxTripSchedules <= 0 {
		errs = append(errs, errors.New("TRILO_MAX_TRIP_SCHEDULES must be set to a positive number"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("TRILO_JWT_SECRET must be set"))
	}
	if c.Store != StorePostgres && c.Store != StoreMemory {
		errs = append(errs, errors.New("TRILO_STORE must be postgres or memory"))
	}
	return errors.Join(errs...)
}
