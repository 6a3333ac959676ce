package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultDataURL is the published location of the storm database archive.
const DefaultDataURL = "https://d396qusza40orc.cloudfront.net/repdata%2Fdata%2FStormData.csv.bz2"

// Config holds all generator settings, populated from environment variables.
// Every key has a working default, so a bare run needs no environment at all.
type Config struct {
	DataURL         string
	DataDir         string
	ReportDir       string
	TopN            int
	DownloadTimeout time.Duration
	LogLevel        string
	LogFormat       string

	// Optional Kafka publishing of per-category aggregates.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string

	// Optional Pushgateway endpoint for run metrics.
	MetricsPushURL string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	downloadTimeout, err := parseDownloadTimeout()
	if err != nil {
		return nil, err
	}

	topN, err := parseTopN()
	if err != nil {
		return nil, err
	}

	kafkaEnabled := false
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		DataURL:         envOrDefault("DATA_URL", DefaultDataURL),
		DataDir:         envOrDefault("DATA_DIR", "data"),
		ReportDir:       envOrDefault("REPORT_DIR", "reports"),
		TopN:            topN,
		DownloadTimeout: downloadTimeout,
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),

		KafkaEnabled: kafkaEnabled,
		KafkaBrokers: parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "storm-impact-aggregates"),

		MetricsPushURL: os.Getenv("METRICS_PUSH_URL"),
	}

	if cfg.DataURL == "" {
		return nil, errors.New("DATA_URL is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_TOPIC is not set")
	}

	return cfg, nil
}

// DataPath is the local location of the decompressed dataset.
func (c *Config) DataPath() string {
	return filepath.Join(c.DataDir, "StormData.csv")
}

func parseDownloadTimeout() (time.Duration, error) {
	s := envOrDefault("DOWNLOAD_TIMEOUT", "10m")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid DOWNLOAD_TIMEOUT")
	}
	return d, nil
}

func parseTopN() (int, error) {
	s := envOrDefault("TOP_N", "5")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid TOP_N")
	}
	return n, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
