package config

import "time"

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Directus DirectusConfig `mapstructure:"directus"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Cron     CronConfig     `mapstructure:"cron"`
	Logstash LogstashConfig `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"min=1,max=65535"`
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// DirectusConfig CMS 连接配置
type DirectusConfig struct {
	BaseURL            string        `mapstructure:"base_url" validate:"required,url"`
	Token              string        `mapstructure:"token"`
	Timeout            time.Duration `mapstructure:"timeout"`
	ProfilesCollection string        `mapstructure:"profiles_collection" validate:"required"`
	// 候选人标记字段（布尔），为空表示所有 profile 都参与统计
	CandidateField string `mapstructure:"candidate_field"`
}

// RedisConfig Redis配置，Addr 为空时不启用缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	EngagementTTL time.Duration `mapstructure:"engagement_ttl"`
}

// AuthConfig Directus access token 校验配置
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// WebhookConfig CMS 回调配置
type WebhookConfig struct {
	Secret string `mapstructure:"secret"`
}

// CronConfig 定时任务配置，空字符串表示不注册
type CronConfig struct {
	EngagementWarm string `mapstructure:"engagement_warm"`
}

// LogstashConfig 远程日志配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// CacheEnabled 是否启用 Redis 缓存
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != "" && c.Cache.EngagementTTL > 0
}
