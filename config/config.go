package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendAuto        = "auto"
	BackendOnnx        = "onnx"
	BackendRekognition = "rekognition"
	BackendNone        = "none"
)

type ClassifierConfig struct {
	Backend       string
	ModelPath     string
	LabelsPath    string
	OnnxLib       string
	InputName     string
	OutputName    string
	TopK          int
	MinConfidence float64
	CacheTTL      time.Duration
}

type ArchiveConfig struct {
	Bucket    string
	Prefix    string
	PublicURL string
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

func (d DatabaseConfig) Enabled() bool { return d.Host != "" }

type Config struct {
	Env            string
	LogLevel       string
	Port           int
	APIKey         string
	FoodDBPath     string
	MaxUploadBytes int64
	AWSRegion      string
	Classifier     ClassifierConfig
	Archive        ArchiveConfig
	Database       DatabaseConfig
}

// key -> env var names, in lookup order
var envBindings = map[string][]string{
	"env":                       {"APP_ENV"},
	"log_level":                 {"LOG_LEVEL"},
	"port":                      {"PORT"},
	"api_key":                   {"VANITYOS_API_KEY"},
	"food_db_path":              {"VANITYOS_FOOD_DB_PATH"},
	"max_upload_bytes":          {"VANITYOS_MAX_UPLOAD_BYTES"},
	"aws_region":                {"AWS_REGION"},
	"classifier.backend":        {"VANITYOS_CLASSIFIER"},
	"classifier.model_path":     {"VANITYOS_MODEL_PATH"},
	"classifier.labels_path":    {"VANITYOS_LABELS_PATH"},
	"classifier.onnx_lib":       {"VANITYOS_ONNX_LIB"},
	"classifier.input_name":     {"VANITYOS_MODEL_INPUT"},
	"classifier.output_name":    {"VANITYOS_MODEL_OUTPUT"},
	"classifier.top_k":          {"VANITYOS_TOP_K"},
	"classifier.min_confidence": {"VANITYOS_MIN_CONFIDENCE"},
	"classifier.cache_ttl":      {"VANITYOS_CACHE_TTL"},
	"archive.bucket":            {"S3_BUCKET"},
	"archive.prefix":            {"S3_PREFIX"},
	"archive.public_url":        {"CLOUDFRONT_URL"},
	"database.host":             {"DB_HOST"},
	"database.user":             {"DB_USER"},
	"database.password":         {"DB_PASSWORD"},
	"database.name":             {"DB_NAME"},
	"database.port":             {"DB_PORT"},
	"database.sslmode":          {"DB_SSLMODE"},
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", 8080)
	v.SetDefault("max_upload_bytes", 10<<20)
	v.SetDefault("classifier.backend", BackendAuto)
	v.SetDefault("classifier.model_path", "ml/out/vanityos.onnx")
	v.SetDefault("classifier.labels_path", "ml/out/labels.json")
	v.SetDefault("classifier.input_name", "input")
	v.SetDefault("classifier.output_name", "output")
	v.SetDefault("classifier.top_k", 3)
	v.SetDefault("classifier.min_confidence", 50.0)
	v.SetDefault("classifier.cache_ttl", 10*time.Minute)
	v.SetDefault("archive.prefix", "scans")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")

	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
}

// LoadDotEnv loads .env into the process environment when present.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

// Load reads the resolved settings from v and validates them.
func Load(v *viper.Viper) (*Config, error) {
	c := &Config{
		Env:            v.GetString("env"),
		LogLevel:       v.GetString("log_level"),
		Port:           v.GetInt("port"),
		APIKey:         strings.TrimSpace(v.GetString("api_key")),
		FoodDBPath:     v.GetString("food_db_path"),
		MaxUploadBytes: v.GetInt64("max_upload_bytes"),
		AWSRegion:      v.GetString("aws_region"),
		Classifier: ClassifierConfig{
			Backend:       strings.ToLower(v.GetString("classifier.backend")),
			ModelPath:     v.GetString("classifier.model_path"),
			LabelsPath:    v.GetString("classifier.labels_path"),
			OnnxLib:       v.GetString("classifier.onnx_lib"),
			InputName:     v.GetString("classifier.input_name"),
			OutputName:    v.GetString("classifier.output_name"),
			TopK:          v.GetInt("classifier.top_k"),
			MinConfidence: v.GetFloat64("classifier.min_confidence"),
			CacheTTL:      v.GetDuration("classifier.cache_ttl"),
		},
		Archive: ArchiveConfig{
			Bucket:    v.GetString("archive.bucket"),
			Prefix:    v.GetString("archive.prefix"),
			PublicURL: v.GetString("archive.public_url"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			Name:     v.GetString("database.name"),
			Port:     v.GetString("database.port"),
			SSLMode:  v.GetString("database.sslmode"),
		},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("VANITYOS_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.Classifier.TopK <= 0 {
		return fmt.Errorf("top k must be positive, got %d", c.Classifier.TopK)
	}
	if c.Classifier.MinConfidence < 0 || c.Classifier.MinConfidence > 100 {
		return fmt.Errorf("min confidence %.1f outside 0-100", c.Classifier.MinConfidence)
	}
	switch c.Classifier.Backend {
	case BackendAuto, BackendOnnx, BackendRekognition, BackendNone:
	default:
		return fmt.Errorf("unknown classifier backend %q", c.Classifier.Backend)
	}
	if c.Classifier.Backend == BackendRekognition && c.AWSRegion == "" {
		return errors.New("rekognition backend requires AWS_REGION")
	}
	return nil
}

func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }
