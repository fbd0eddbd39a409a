package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKey       string `yaml:"access_key"`
	SecretKey       string `yaml:"secret_key"`
	UsePathStyle    bool   `yaml:"use_path_style"`
	DisableChecksum bool   `yaml:"disable_checksum"`
}

type StorageConfig struct {
	// Backend selects the board store: "file" or "s3".
	Backend string   `yaml:"backend"`
	File    string   `yaml:"file"`
	S3      S3Config `yaml:"s3"`
}

type Config struct {
	Listen    string        `yaml:"listen"`
	StaticDir string        `yaml:"static_dir"`
	Storage   StorageConfig `yaml:"storage"`
}

// Load reads the yaml config file, then lets the environment (optionally
// seeded from .env) override individual values. A missing file yields the
// defaults: file-backed storage next to the binary, listening on :8080.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Listen:    ":8080",
		StaticDir: "static",
		Storage: StorageConfig{
			Backend: "file",
			File:    "boards.json",
		},
	}

	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}

	cfg.Listen = getEnv("KANBAN_LISTEN", cfg.Listen)
	cfg.StaticDir = getEnv("KANBAN_STATIC_DIR", cfg.StaticDir)
	cfg.Storage.Backend = getEnv("KANBAN_STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.File = getEnv("KANBAN_STORAGE_FILE", cfg.Storage.File)
	cfg.Storage.S3.Endpoint = getEnv("KANBAN_S3_ENDPOINT", cfg.Storage.S3.Endpoint)
	cfg.Storage.S3.Bucket = getEnv("KANBAN_S3_BUCKET", cfg.Storage.S3.Bucket)
	cfg.Storage.S3.Region = getEnv("KANBAN_S3_REGION", cfg.Storage.S3.Region)
	cfg.Storage.S3.AccessKey = getEnv("KANBAN_S3_ACCESS_KEY", cfg.Storage.S3.AccessKey)
	cfg.Storage.S3.SecretKey = getEnv("KANBAN_S3_SECRET_KEY", cfg.Storage.S3.SecretKey)

	switch cfg.Storage.Backend {
	case "file", "s3":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
