package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Server         ServerConfig   `yaml:"server"`
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Password       PasswordConfig `yaml:"password"`
	Media          MediaConfig    `yaml:"media"`
	Log            LogConfig      `yaml:"log"`
}

// LoadConfig читает yaml, затем переопределяет значения из окружения (.env подхватывается, если есть)
func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *AppConfig) applyEnv() {
	overrides := map[string]*string{
		"SERVER_ADDR":        &cfg.Server.Addr,
		"DATABASE_DSN":       &cfg.DatabaseConfig.DSN,
		"REDIS_ADDR":         &cfg.RedisConfig.Addr,
		"REDIS_PASSWORD":     &cfg.RedisConfig.Password,
		"S3_BUCKET":          &cfg.S3Config.Bucket,
		"S3_REGION":          &cfg.S3Config.Region,
		"S3_ENDPOINT":        &cfg.S3Config.Endpoint,
		"S3_PUBLIC_URL":      &cfg.S3Config.PublicURL,
		"JWT_ACCESS_SECRET":  &cfg.JWT.AccessSecret,
		"JWT_REFRESH_SECRET": &cfg.JWT.RefreshSecret,
		"ACCESS_TOKEN_TTL":   &cfg.JWT.AccessTokenTTL,
		"REFRESH_TOKEN_TTL":  &cfg.JWT.RefreshTokenTTL,
		"PASSWORD_SECRET":    &cfg.Password.Secret,
		"LOG_LEVEL":          &cfg.Log.Level,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*target = value
		}
	}

	if value, ok := os.LookupEnv("S3_LOCAL"); ok {
		if local, err := strconv.ParseBool(value); err == nil {
			cfg.S3Config.Local = local
		}
	}
}

func (cfg *AppConfig) Validate() error {
	var errs []error

	if cfg.DatabaseConfig.DSN == "" {
		errs = append(errs, errors.New("databaseConfig.dsn не задан"))
	}
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		errs = append(errs, errors.New("jwt.access_secret и jwt.refresh_secret обязательны"))
	} else if cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		errs = append(errs, errors.New("jwt.access_secret и jwt.refresh_secret должны отличаться"))
	}
	if cfg.Password.Secret == "" {
		errs = append(errs, errors.New("password.secret не задан"))
	}
	for name, value := range map[string]string{
		"jwt.access_token_ttl":  cfg.JWT.AccessTokenTTL,
		"jwt.refresh_token_ttl": cfg.JWT.RefreshTokenTTL,
		"redisConfig.ttl":       cfg.RedisConfig.TTL,
	} {
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("%s: некорректная длительность %q", name, value))
		}
	}
	if cfg.Media.MaxFiles <= 0 || cfg.Media.MaxFileSizeMB <= 0 {
		errs = append(errs, errors.New("media.max_files и media.max_file_size_mb должны быть больше нуля"))
	}

	return errors.Join(errs...)
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
