package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv    string // dev/prod
	LogLevel string // debug/info/warn/error

	DatabaseURL      string // あれば POSTGRES_* より優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	RedisAddr     string // 空ならキャッシュ無効
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		GoEnv:    os.Getenv("GO_ENV"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	var err error
	if cfg.DBMaxOpenConns, err = atoiOr("DB_MAX_OPEN_CONNS", 25); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxIdleConns, err = atoiOr("DB_MAX_IDLE_CONNS", 25); err != nil {
		return Config{}, err
	}
	if cfg.DBConnMaxLifetime, err = durationOr("DB_CONN_MAX_LIFETIME", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = atoiOr("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = durationOr("CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	// DATABASE_URL が無いときだけ POSTGRES_* を要求
	if cfg.DatabaseURL == "" {
		pgPort, err := mustAtoi("POSTGRES_PORT")
		if err != nil {
			return Config{}, err
		}
		cfg.PostgresPort = pgPort

		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
		if cfg.PostgresHost == "" {
			return Config{}, fmt.Errorf("POSTGRES_HOST is required")
		}
	}

	return cfg, nil
}

// DSN は gorm の postgres ドライバに渡す接続文字列
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// Addr は "8080" でも ":8080" でも受け付ける
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] != ':' {
		return ":" + c.Port
	}
	return c.Port
}

func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func atoiOr(key string, def int) (int, error) {
	if os.Getenv(key) == "" {
		return def, nil
	}
	return mustAtoi(key)
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
