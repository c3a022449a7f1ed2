package bootstrap

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	GrpcPort         string `mapstructure:"GRPC_PORT"`
	RedisUrl         string `mapstructure:"REDIS_URL"`
	MongoUri         string `mapstructure:"MONGO_URI"`
	MongoDatabase    string `mapstructure:"MONGO_DATABASE"`
	IsLocalCors      bool   `mapstructure:"LOCAL_CORS"`
	PageLimitRecords int    `mapstructure:"PAGE_LIMIT_RECORDS"`
	StrictParsing    bool   `mapstructure:"STRICT_PARSING"`
	CacheTTLSeconds  int    `mapstructure:"CACHE_TTL_SECONDS"`
}

var configKeys = []string{
	"SERVER_PORT", "GRPC_PORT", "REDIS_URL", "MONGO_URI", "MONGO_DATABASE",
	"LOCAL_CORS", "PAGE_LIMIT_RECORDS", "STRICT_PARSING", "CACHE_TTL_SECONDS",
}

// Setup reads cfgPath when it exists; environment variables override it.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GRPC_PORT", "8082")
	v.SetDefault("MONGO_DATABASE", "sgf_keeper")
	v.SetDefault("PAGE_LIMIT_RECORDS", 20)
	v.SetDefault("STRICT_PARSING", true)
	v.SetDefault("CACHE_TTL_SECONDS", 3600)

	fileValues, err := godotenv.Read(cfgPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	for key, value := range fileValues {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
