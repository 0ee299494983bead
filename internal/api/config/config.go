package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "HUSTINGS"

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.trusted_proxies", []string{"127.0.0.1"})
	v.SetDefault("directus.base_url", "http://localhost:8055")
	v.SetDefault("directus.token", "")
	v.SetDefault("directus.timeout", 10*time.Second)
	v.SetDefault("directus.profiles_collection", "profiles")
	v.SetDefault("directus.candidate_field", "is_candidate")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("cache.engagement_ttl", 30*time.Second)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "directus")
	v.SetDefault("webhook.secret", "")
	v.SetDefault("cron.engagement_warm", "")
	v.SetDefault("logstash.address", "")
	v.SetDefault("logstash.index", "logstash-hustings")
	v.SetDefault("logstash.token", "")
}

// LoadConfig 依次加载默认值、配置文件、.env 与环境变量
// configDir 为空时使用 ./configs，配置文件不存在时只使用默认值与环境变量
func LoadConfig(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = "./configs"
	}
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
