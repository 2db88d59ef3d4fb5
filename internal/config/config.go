package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// PathEnv names the optional YAML config file
const PathEnv = "SHIFTTRADE_CONFIG_PATH"

type Config struct {
	GRPC     GRPCConfig     `yaml:"grpc"`
	Import   ImportConfig   `yaml:"import"`
	Database DatabaseConfig `yaml:"database"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Log      LogConfig      `yaml:"log"`
}

type GRPCConfig struct {
	ListenAddr     string `yaml:"listen_addr" env:"GRPC_LISTEN_ADDR" env-default:":8080"`
	APIToken       string `yaml:"api_token" env:"API_TOKEN"`
	MaxUploadBytes int    `yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES" env-default:"10485760"`
}

type ImportConfig struct {
	WorkbookMode string `yaml:"workbook_mode" env:"IMPORT_WORKBOOK_MODE" env-default:"fixed"`
	TextMode     string `yaml:"text_mode" env:"IMPORT_TEXT_MODE" env-default:"fuzzy"`
}

// DatabaseConfig enables the import audit log when DSN is set
type DatabaseConfig struct {
	DSN            string `yaml:"dsn" env:"DB_CONN_STR"`
	SkipMigrations bool   `yaml:"skip_migrations" env:"DB_SKIP_MIGRATIONS"`
}

// KafkaConfig enables import events when Brokers is non-empty
type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"shifttrade.imports"`
}

// MetricsConfig enables the /metrics endpoint when ListenAddr is set
type MetricsConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"METRICS_LISTEN_ADDR" env-default:":9090"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Load reads path (when non-empty) and then the environment, which wins
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad loads the config from PathEnv and the environment or exits
func MustLoad() *Config {
	cfg, err := Load(os.Getenv(PathEnv))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	return cfg
}

func (c *Config) Validate() error {
	var errs []error

	if c.GRPC.ListenAddr == "" {
		errs = append(errs, errors.New("grpc.listen_addr is required"))
	}
	if c.GRPC.APIToken == "" {
		errs = append(errs, errors.New("grpc.api_token is required"))
	}
	if c.GRPC.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("grpc.max_upload_bytes must be positive, got %d", c.GRPC.MaxUploadBytes))
	}
	if !domain.ColumnMode(c.Import.WorkbookMode).Valid() {
		errs = append(errs, fmt.Errorf("import.workbook_mode %q must be fixed or fuzzy", c.Import.WorkbookMode))
	}
	if !domain.ColumnMode(c.Import.TextMode).Valid() {
		errs = append(errs, fmt.Errorf("import.text_mode %q must be fixed or fuzzy", c.Import.TextMode))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("kafka.topic is required when brokers are set"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be json or text", c.Log.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel parses Level as a slog level name
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q is not a valid level", l.Level)
	}
	return level, nil
}

// NewLogger builds the process logger from the log section
func (l LogConfig) NewLogger() *slog.Logger {
	level, _ := l.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(l.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
