package config

import (
	"fmt"
	"log"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	OpenAI   OpenAIConfig
	Assembly AssemblyAIConfig
	Analysis AnalysisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"interview_analyzer"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration for the embedding cache.
// Leave Host empty to fall back to the in-process cache.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:""`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	TTLHours int    `envconfig:"REDIS_EMBEDDING_TTL_HOURS" default:"24"`
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"interview-recordings"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// OpenAIConfig holds the embedding collaborator configuration
type OpenAIConfig struct {
	APIKey         string `envconfig:"OPENAI_API_KEY" default:""`
	BaseURL        string `envconfig:"OPENAI_API_URL" default:""`
	EmbeddingModel string `envconfig:"OPENAI_EMBEDDING_MODEL" default:"text-embedding-3-small"`
	MaxRetries     int    `envconfig:"OPENAI_MAX_RETRIES" default:"3" validate:"gte=0"`
}

// AssemblyAIConfig holds the transcription collaborator configuration
type AssemblyAIConfig struct {
	APIKey string `envconfig:"ASSEMBLYAI_API_KEY" default:""`
}

// AnalysisConfig carries every analysis tunable in one validated structure
// so thresholds can be adjusted without code edits.
type AnalysisConfig struct {
	// Chunking / sectioning
	ChunkDuration float64 `envconfig:"ANALYSIS_CHUNK_DURATION" default:"30" validate:"gt=0"`
	SnippetLength int     `envconfig:"ANALYSIS_SNIPPET_LENGTH" default:"100" validate:"gt=0"`

	// Redundancy
	RedundancyThreshold float64 `envconfig:"ANALYSIS_REDUNDANCY_THRESHOLD" default:"0.85" validate:"gt=0,lte=1"`

	// Speech patterns
	MinPauseDuration float64 `envconfig:"ANALYSIS_MIN_PAUSE_DURATION" default:"0.5" validate:"gt=0"`

	// Scoring weights, must sum to 1.0 (checked in Validate)
	WeightRelevance float64 `envconfig:"ANALYSIS_WEIGHT_RELEVANCE" default:"0.40" validate:"gte=0,lte=1"`
	WeightStability float64 `envconfig:"ANALYSIS_WEIGHT_STABILITY" default:"0.30" validate:"gte=0,lte=1"`
	WeightPace      float64 `envconfig:"ANALYSIS_WEIGHT_PACE" default:"0.15" validate:"gte=0,lte=1"`
	WeightClarity   float64 `envconfig:"ANALYSIS_WEIGHT_CLARITY" default:"0.15" validate:"gte=0,lte=1"`

	// Pace benchmarks
	IdealWPMMin       float64 `envconfig:"ANALYSIS_IDEAL_WPM_MIN" default:"120" validate:"gt=0"`
	IdealWPMMax       float64 `envconfig:"ANALYSIS_IDEAL_WPM_MAX" default:"160" validate:"gtfield=IdealWPMMin"`
	PacePenaltyPerWPM float64 `envconfig:"ANALYSIS_PACE_PENALTY_PER_WPM" default:"0.02" validate:"gt=0"`

	// Clarity benchmarks (fillers per minute)
	IdealFillersPerMin float64 `envconfig:"ANALYSIS_IDEAL_FILLERS_PER_MIN" default:"2" validate:"gte=0"`
	MaxFillersPerMin   float64 `envconfig:"ANALYSIS_MAX_FILLERS_PER_MIN" default:"10" validate:"gtfield=IdealFillersPerMin"`

	// Prosody extraction
	FrameLength        int     `envconfig:"ANALYSIS_FRAME_LENGTH" default:"2048" validate:"gt=0"`
	HopLength          int     `envconfig:"ANALYSIS_HOP_LENGTH" default:"512" validate:"gt=0"`
	PitchMinHz         float64 `envconfig:"ANALYSIS_PITCH_MIN_HZ" default:"50" validate:"gt=0"`
	PitchMaxHz         float64 `envconfig:"ANALYSIS_PITCH_MAX_HZ" default:"500" validate:"gtfield=PitchMinHz"`
	StabilityThreshold float64 `envconfig:"ANALYSIS_STABILITY_THRESHOLD" default:"0.7" validate:"gt=0,lte=1"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sum := c.Analysis.WeightRelevance + c.Analysis.WeightStability +
		c.Analysis.WeightPace + c.Analysis.WeightClarity
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("analysis weights must sum to 1.0, got %.4f", sum)
	}

	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
