package config

import "time"

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"fern-api"`
	Port                          int      `env:"PORT" env-default:"3000"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10"`
	MaxHeaderBytes                int      `env:"HTTP_SERVER_MAX_HEADER_BYTES" env-default:"64000"` // 64KB
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST,PUT,DELETE"`
	StartupMaxAttempts            int      `env:"STARTUP_MAX_ATTEMPTS" env-default:"5"`

	// Tracing
	TracingEndpoint string `env:"TRACING_ENDPOINT" env-default:""`
	TracingInsecure bool   `env:"TRACING_INSECURE" env-default:"true"`

	// Database driver
	DatabaseDriver string `env:"DB_DRIVER" env-default:"postgres"`
	// Database host
	DatabaseHost string `env:"DB_HOST" env-default:""`
	// Database port
	DatabasePort string `env:"DB_PORT" env-default:"5432"`
	// Database user
	DatabaseUserName string `env:"DB_USER_NAME" env-default:""`
	// Database user password
	DatabasePassword string `env:"DB_PASSWORD" env-default:""`
	// Database name
	DatabaseName string `env:"DB_NAME" env-default:"fern"`
	// Database SSL Mode
	DatabaseSSLMode string `env:"DB_SSL_MODE" env-default:"disable"`
	// Max Open Conns
	DatabaseMaxOpenConns int `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	// Max Idle Conns
	DatabaseMaxIdleConns int `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	// Conn Max Lifetime
	DatabaseConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"10s"`
	// Migration Folder Path
	DatabaseMigrationFolderPath string `env:"DB_MIGRATION_FOLDER_PATH" env-default:"db/pg"`

	// Redis
	RedisHost      string        `env:"REDIS_HOST" env-default:""`
	RedisPort      int           `env:"REDIS_PORT" env-default:"6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD" env-default:""`
	RedisDB        int           `env:"REDIS_DB" env-default:"0"`
	SearchCacheTTL time.Duration `env:"SEARCH_CACHE_TTL" env-default:"5m"`

	// Search backend
	SearchEndpoint string        `env:"SEARCH_ENDPOINT" env-default:""`
	SearchAPIKey   string        `env:"SEARCH_API_KEY" env-default:""`
	SearchTimeout  time.Duration `env:"SEARCH_TIMEOUT" env-default:"5s"`

	// Kafka Producer
	KafkaBrokers      []string `env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	KafkaClickTopic   string   `env:"KAFKA_CLICK_TOPIC" env-default:"affiliate-clicks"`
	KafkaBatchSize    int      `env:"KAFKA_BATCH_SIZE" env-default:"100"`
	KafkaBatchTimeout int      `env:"KAFKA_BATCH_TIMEOUT_MS" env-default:"100"`
	KafkaRequiredAcks int      `env:"KAFKA_REQUIRED_ACKS" env-default:"1"`

	// Affiliate links
	AffiliateDefaultLandingURL string `env:"AFFILIATE_DEFAULT_LANDING_URL" env-default:""`

	// Boost tiers
	BoostTierRefreshInterval time.Duration `env:"BOOST_TIER_REFRESH_INTERVAL" env-default:"5m"`
}
