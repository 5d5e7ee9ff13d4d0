package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	OSS      OSSConfig      `mapstructure:"oss"`
	Wechat   WechatConfig   `mapstructure:"wechat"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Review   ReviewConfig   `mapstructure:"review"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type OSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket_name"`
	CDNDomain       string `mapstructure:"cdn_domain"`
}

type WechatConfig struct {
	AppID     string `mapstructure:"app_id"`
	AppSecret string `mapstructure:"app_secret"`
}

type LLMConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

type FeedConfig struct {
	DefaultKeywords        string `mapstructure:"default_keywords"`
	OpenAlexAPIKey         string `mapstructure:"openalex_api_key"`
	CacheTTLSeconds        int    `mapstructure:"cache_ttl_seconds"`
	RefreshIntervalMinutes int    `mapstructure:"refresh_interval_minutes"`
}

type ReviewConfig struct {
	TaskTTLSeconds      int      `mapstructure:"task_ttl_seconds"`
	AllowedHostSuffixes []string `mapstructure:"allowed_host_suffixes"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

func Load(configPath string) (*Config, error) {
	// 优先尝试读取 config.local.yaml（包含真实密钥，不提交到git）
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	// 检查 config.local.yaml 是否存在
	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// 环境变量覆盖
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = "https://api-inference.modelscope.cn"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "deepseek-ai/DeepSeek-V3.2"
	}
	if cfg.Feed.DefaultKeywords == "" {
		cfg.Feed.DefaultKeywords = "large language model, retrieval augmented generation, computer vision"
	}
	if cfg.Feed.CacheTTLSeconds <= 0 {
		cfg.Feed.CacheTTLSeconds = 300
	}
	if cfg.Feed.RefreshIntervalMinutes <= 0 {
		cfg.Feed.RefreshIntervalMinutes = 60
	}
	if cfg.Review.TaskTTLSeconds <= 0 {
		cfg.Review.TaskTTLSeconds = 7200
	}
	if len(cfg.Review.AllowedHostSuffixes) == 0 {
		cfg.Review.AllowedHostSuffixes = []string{".myqcloud.com", ".tcb.qcloud.la"}
	}
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 168
	}
}
