package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries the process-wide settings resolved once at startup.
type Config struct {
	ListenAddr     string
	FaceEngineAddr string
	DatabaseDSN    string
	RedisAddr      string

	// Face analysis model configuration. Embeddings are only comparable
	// when produced by the same (model, detector) pair.
	ModelName       string
	DetectorBackend string
	DistanceMetric  string

	// ThresholdFallback is used when the calibration lookup against the
	// face-analysis service fails. It has no default and must be set per
	// deployment.
	ThresholdFallback float64

	// GatePolicy selects the face-presence rule applied to both the
	// document front and the selfie: "exactly_one" or "at_least_one".
	GatePolicy string

	MaxImageDimension int
	JPEGQuality       int

	PipelineTimeout time.Duration
	WorkDir         string

	JWTSecret   string
	JWTAudience string
}

// Load resolves configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		FaceEngineAddr:  getEnv("FACE_ENGINE_ADDR", "face-engine:50051"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=postgres user=postgres password=postgres dbname=idverify port=5432 sslmode=disable"),
		RedisAddr:       getEnv("REDIS_ADDR", "redis:6379"),
		ModelName:       getEnv("FACE_MODEL_NAME", "ArcFace"),
		DetectorBackend: getEnv("FACE_DETECTOR_BACKEND", "retinaface"),
		DistanceMetric:  getEnv("FACE_DISTANCE_METRIC", "cosine"),
		GatePolicy:      getEnv("FACE_GATE_POLICY", "exactly_one"),
		WorkDir:         getEnv("VERIFY_WORK_DIR", os.TempDir()),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTAudience:     os.Getenv("JWT_AUDIENCE"),
	}

	fallback := os.Getenv("FACE_THRESHOLD_FALLBACK")
	if fallback == "" {
		return nil, fmt.Errorf("FACE_THRESHOLD_FALLBACK must be set")
	}
	value, err := strconv.ParseFloat(fallback, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_THRESHOLD_FALLBACK %q: %w", fallback, err)
	}
	if value <= 0 {
		return nil, fmt.Errorf("FACE_THRESHOLD_FALLBACK must be positive, got %v", value)
	}
	cfg.ThresholdFallback = value

	if cfg.GatePolicy != "exactly_one" && cfg.GatePolicy != "at_least_one" {
		return nil, fmt.Errorf("invalid FACE_GATE_POLICY %q", cfg.GatePolicy)
	}

	if cfg.MaxImageDimension, err = getEnvInt("MAX_IMAGE_DIMENSION", 1024); err != nil {
		return nil, err
	}
	if cfg.MaxImageDimension < 64 {
		return nil, fmt.Errorf("MAX_IMAGE_DIMENSION too small: %d", cfg.MaxImageDimension)
	}
	if cfg.JPEGQuality, err = getEnvInt("JPEG_QUALITY", 80); err != nil {
		return nil, err
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return nil, fmt.Errorf("JPEG_QUALITY out of range: %d", cfg.JPEGQuality)
	}

	timeout := getEnv("PIPELINE_TIMEOUT", "30s")
	if cfg.PipelineTimeout, err = time.ParseDuration(timeout); err != nil {
		return nil, fmt.Errorf("invalid PIPELINE_TIMEOUT %q: %w", timeout, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return parsed, nil
}
