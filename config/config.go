package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Store backends
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendNeo4j    = "neo4j"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	SQLite   SQLiteConfig
	Neo4j    Neo4jConfig
	Log      LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// StoreConfig selects where entities are kept
type StoreConfig struct {
	Backend string // postgres, sqlite, neo4j
}

// DatabaseConfig holds Postgres connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// SQLiteConfig holds the SQLite database file location
type SQLiteConfig struct {
	Path string
}

// Neo4jConfig holds graph database connection settings
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// Load reads configuration from a TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with VAREJO_ prefix (e.g., VAREJO_STORE_BACKEND)
// 2. the file at path, or varejo.toml in . and $HOME/.varejo
// 3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("varejo")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.varejo")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("VAREJO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Store: StoreConfig{
			Backend: strings.ToLower(v.GetString("store.backend")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("sqlite.path"),
		},
		Neo4j: Neo4jConfig{
			URI:      v.GetString("neo4j.uri"),
			Username: v.GetString("neo4j.username"),
			Password: v.GetString("neo4j.password"),
			Database: v.GetString("neo4j.database"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "gestao-varejo"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendPostgres
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "varejo"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = "varejo.db"
	}
	if cfg.Neo4j.URI == "" {
		cfg.Neo4j.URI = "bolt://localhost:7687"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "varejo.log"
	}
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendPostgres, BackendSQLite, BackendNeo4j:
	default:
		return fmt.Errorf("store.backend must be one of %s, %s or %s, got %q",
			BackendPostgres, BackendSQLite, BackendNeo4j, c.Store.Backend)
	}

	if c.App.Env == "production" && c.Store.Backend == BackendPostgres && c.Database.Password == "" {
		return fmt.Errorf("database.password is required in production")
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// DSN returns the modernc sqlite connection string. Foreign keys are switched
// on for every connection and dates are stored in a sortable text layout.
func (s *SQLiteConfig) DSN() string {
	return "file:" + s.Path + "?_pragma=foreign_keys(1)&_time_format=sqlite"
}
