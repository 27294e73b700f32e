package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Policy PolicyConfig
	Invite InviteConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Notify NotifyConfig
}

type PolicyConfig struct {
	// RealmPattern is the case-insensitive allow-pattern realms must match.
	RealmPattern string `env:"REALM_PATTERN, default=.*(track|swiftly).*"`
	// StrictGroupJoin applies the management role check to the legacy
	// hello group-join endpoint, which historically had none.
	StrictGroupJoin bool `env:"STRICT_GROUP_JOIN, default=false"`
}

type InviteConfig struct {
	// DedupTTL suppresses repeated invitations to the same e-mail and
	// organization. Zero disables deduplication.
	DedupTTL time.Duration `env:"INVITE_DEDUP_TTL, default=1h"`
	// JoinTokenSecret signs org-join tokens on registration links.
	JoinTokenSecret string `env:"INVITE_JOIN_TOKEN_SECRET"`
	// JoinTokenTTL bounds how long a registration link stays valid.
	JoinTokenTTL time.Duration `env:"INVITE_JOIN_TOKEN_TTL, default=72h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=userservice"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type NotifyConfig struct {
	// WebhookURL is the base URL of the platform notification dispatcher.
	WebhookURL string        `env:"NOTIFY_WEBHOOK_URL"`
	Timeout    time.Duration `env:"NOTIFY_TIMEOUT, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
