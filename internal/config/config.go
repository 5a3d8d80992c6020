package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxConns        int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds the shared-secret auth gate settings. JWTSecret and
// PortalPassword have no defaults on purpose: the login path reports a
// misconfiguration when they are unset instead of falling back to a
// guessable value.
type AuthConfig struct {
	JWTSecret       string
	PortalPassword  string
	TokenTTLSeconds int
	CookieDomain    string
}

// TokenTTL returns the session token lifetime, floored to one minute.
func (c AuthConfig) TokenTTL() time.Duration {
	ttl := c.TokenTTLSeconds
	if ttl < 60 {
		ttl = 60
	}
	return time.Duration(ttl) * time.Second
}

type StaticConfig struct {
	Dir   string
	Index string
}

type CacheConfig struct {
	SnapshotTTL time.Duration
}

type JobsConfig struct {
	WarmSpec    string
	WarmWindows []int
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Postgres         PostgresConfig
	Redis            RedisConfig
	Auth             AuthConfig
	Static           StaticConfig
	Cache            CacheConfig
	Jobs             JobsConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("MAYA")
	v.AutomaticEnv()

	setDefaults(v)
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// bindLegacyEnv keeps the env variable names the portal has always been
// deployed with working alongside the MAYA_* forms.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("http.port", "MAYA_HTTP_PORT", "PORT")
	_ = v.BindEnv("postgres.dsn", "MAYA_POSTGRES_DSN", "DATABASE_URL")
	_ = v.BindEnv("postgres.maxconns", "MAYA_POSTGRES_MAXCONNS", "DB_POOL_MAX_SIZE")
	_ = v.BindEnv("auth.jwtsecret", "MAYA_AUTH_JWTSECRET", "SHARED_JWT_SECRET")
	_ = v.BindEnv("auth.portalpassword", "MAYA_AUTH_PORTALPASSWORD", "METRICS_PORTAL_PASSWORD")
	_ = v.BindEnv("auth.tokenttlseconds", "MAYA_AUTH_TOKENTTLSECONDS", "JWT_TTL_SECONDS")
	_ = v.BindEnv("auth.cookiedomain", "MAYA_AUTH_COOKIEDOMAIN", "COOKIE_DOMAIN")
	_ = v.BindEnv("redis.addr", "MAYA_REDIS_ADDR", "REDIS_ADDR")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8000)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("postgres.dsn", "postgres://localhost:5432/maya_db")
	v.SetDefault("postgres.maxconns", 5)
	v.SetDefault("postgres.connmaxlifetime", "30m")

	v.SetDefault("redis.addr", "") // empty disables the snapshot cache
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.tokenttlseconds", 604800) // 7 days
	v.SetDefault("auth.cookiedomain", "")

	v.SetDefault("static.dir", "./frontend/dist")
	v.SetDefault("static.index", "index.html")

	v.SetDefault("cache.snapshotttl", "60s")

	v.SetDefault("jobs.warmspec", "@every 15m")
	v.SetDefault("jobs.warmwindows", []int{30})
}
