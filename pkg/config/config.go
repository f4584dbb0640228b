package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	TwoFactor    TwoFactorConfig
	Password     PasswordConfig
	Session      SessionConfig
	Shipping     ShippingConfig
	FeatureFlags FeatureFlagsConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
	Mail         MailConfig
	Cron         CronConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BOUTIQUE_APP_ENV" required:"true"`
	Port         string `envconfig:"BOUTIQUE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BOUTIQUE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BOUTIQUE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BOUTIQUE_DB_DSN"`
	Driver string `envconfig:"BOUTIQUE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BOUTIQUE_DB_HOST"`
	LegacyPort     int    `envconfig:"BOUTIQUE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BOUTIQUE_DB_USER"`
	LegacyPassword string `envconfig:"BOUTIQUE_DB_PASSWORD"`
	LegacyName     string `envconfig:"BOUTIQUE_DB_NAME"`
	LegacySSLMode  string `envconfig:"BOUTIQUE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BOUTIQUE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BOUTIQUE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BOUTIQUE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BOUTIQUE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"BOUTIQUE_REDIS_URL" required:"true"`
	PoolSize     int           `envconfig:"BOUTIQUE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BOUTIQUE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BOUTIQUE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BOUTIQUE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BOUTIQUE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"BOUTIQUE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"BOUTIQUE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"BOUTIQUE_JWT_EXPIRATION_MINUTES" default:"480"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type TwoFactorConfig struct {
	CodeTTL     time.Duration `envconfig:"BOUTIQUE_2FA_CODE_TTL" default:"10m"`
	MaxAttempts int           `envconfig:"BOUTIQUE_2FA_MAX_ATTEMPTS" default:"5"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"BOUTIQUE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BOUTIQUE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BOUTIQUE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BOUTIQUE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BOUTIQUE_ARGON_KEY_LEN" default:"32"`
}

type SessionConfig struct {
	CartTTL     time.Duration `envconfig:"BOUTIQUE_SESSION_CART_TTL" default:"720h"`
	WishlistTTL time.Duration `envconfig:"BOUTIQUE_SESSION_WISHLIST_TTL" default:"2160h"`
}

// ShippingConfig overrides the built-in rate defaults; the rate table itself
// ships with the binary and is immutable at runtime.
type ShippingConfig struct {
	FreeThreshold  string `envconfig:"BOUTIQUE_SHIPPING_FREE_THRESHOLD" default:"500"`
	FallbackCost   string `envconfig:"BOUTIQUE_SHIPPING_FALLBACK_COST" default:"99"`
	FallbackWindow string `envconfig:"BOUTIQUE_SHIPPING_FALLBACK_WINDOW" default:"3-5 días"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BOUTIQUE_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID       string `envconfig:"BOUTIQUE_GCP_PROJECT_ID"`
	CredentialsJSON string `envconfig:"BOUTIQUE_GCP_CREDENTIALS_JSON"`
}

type PubSubConfig struct {
	OrderAlertsTopic string `envconfig:"BOUTIQUE_PUBSUB_ORDER_ALERTS_TOPIC" default:"boutique-order-alerts"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"BOUTIQUE_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"BOUTIQUE_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"BOUTIQUE_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

type MailConfig struct {
	FromAddress string `envconfig:"BOUTIQUE_MAIL_FROM" default:"hola@gorravana.mx"`
}

type CronConfig struct {
	Interval            time.Duration `envconfig:"BOUTIQUE_CRON_INTERVAL" default:"24h"`
	LockTTL             time.Duration `envconfig:"BOUTIQUE_CRON_LOCK_TTL" default:"25h"`
	OutboxRetentionDays int           `envconfig:"BOUTIQUE_CRON_OUTBOX_RETENTION_DAYS" default:"14"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = "file:boutique.db?_pragma=foreign_keys(1)"
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
