package config

import "time"

type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ShutdownTimeout string   `yaml:"shutdown_timeout"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTL      string `yaml:"ttl"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PublicURL string `yaml:"public_url"`
	Local     bool   `yaml:"local"`
}

// JWTConfig : у access и refresh токенов разные ключи
type JWTConfig struct {
	AccessSecret    string `yaml:"access_secret"`
	RefreshSecret   string `yaml:"refresh_secret"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
}

type PasswordConfig struct {
	Secret string `yaml:"secret"`
}

type MediaConfig struct {
	MaxFiles      int   `yaml:"max_files"`
	MaxFileSizeMB int64 `yaml:"max_file_size_mb"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func (c JWTConfig) AccessTTL() time.Duration {
	d, _ := time.ParseDuration(c.AccessTokenTTL)
	return d
}

func (c JWTConfig) RefreshTTL() time.Duration {
	d, _ := time.ParseDuration(c.RefreshTokenTTL)
	return d
}

func (c RedisConfig) CacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

func (c ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

func (c MediaConfig) MaxFileSize() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}
