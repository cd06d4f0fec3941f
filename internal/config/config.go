package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	devConfigPath = "config/dev"
	defaultName   = "config"
	envFile       = ".env"
)

type Config struct {
	Server ServerConfig      `mapstructure:"server"`
	DB     DBConfig          `mapstructure:"database"`
	Auth   AuthManagerConfig `mapstructure:"auth_manager"`
	Store  FileStoreConfig   `mapstructure:"file_store"`
	Log    LogConfig         `mapstructure:"log"`
	Cache  CacheConfig       `mapstructure:"cache"`
	Upload UploadConfig      `mapstructure:"upload"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type DBConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`

	MigrationsPath string `mapstructure:"migrations_path" validate:"required"`
	SSLMode        string `mapstructure:"sslmode" validate:"required,oneof=disable require verify-ca verify-full"`
}

type AuthManagerConfig struct {
	AccessTokenTTL   time.Duration `mapstructure:"access_token_ttl" validate:"required,gt=0"`
	RefreshTokenTTL  time.Duration `mapstructure:"refresh_token_ttl" validate:"required,gt=0"`
	Algorithm        string        `mapstructure:"signing_algorithm" validate:"required,oneof=HS256 HS384 HS512 RS256 RS384 RS512 ES256 ES384 ES512 EdDSA"`
	SecretPrivateKey string        `mapstructure:"secret_private_key"`
	PublicKey        string        `mapstructure:"public_key"`
}

type FileStoreConfig struct {
	Endpoint   string        `mapstructure:"endpoint" validate:"required"`
	AccessKey  string        `mapstructure:"access_key" validate:"required"`
	SecretKey  string        `mapstructure:"secret_key" validate:"required"`
	Bucket     string        `mapstructure:"bucket" validate:"required"`
	UseSSL     bool          `mapstructure:"use_ssl"`
	PresignTTL time.Duration `mapstructure:"presign_ttl" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json text"`
	File   string `mapstructure:"file"`
}

type CacheConfig struct {
	UsersSize int           `mapstructure:"users_size" validate:"gte=0"`
	UsersTTL  time.Duration `mapstructure:"users_ttl" validate:"gte=0"`
}

type UploadConfig struct {
	MaxSize int64 `mapstructure:"max_size" validate:"gte=0"`
}

func NewConfig() (Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load(envFile)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = devConfigPath
	}
	name := os.Getenv("CONFIG_NAME")
	if name == "" {
		name = defaultName
	}

	v := viper.New()
	v.AddConfigPath(configPath)
	v.SetConfigName(name)
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvPrefix("")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return config, err
	}
	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}

	return config, validator.New().Struct(config)
}
