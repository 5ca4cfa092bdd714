package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 8080 {
		t.Fatalf("expected port 8080 got %d", cfg.API.Port)
	}
	if cfg.Mongo.Database != "job_app" {
		t.Fatalf("expected database job_app got %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.ConnectTimeout != 10*time.Second {
		t.Fatalf("expected 10s connect timeout got %s", cfg.Mongo.ConnectTimeout)
	}
	if cfg.Redis.Enabled() || cfg.MinIO.Enabled() {
		t.Fatalf("redis and minio should be disabled by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("RATE_LIMIT_WRITES_PER_MINUTE", "30")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_ACCESS_KEY_ID", "key")
	t.Setenv("MINIO_SECRET_ACCESS_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 9090 {
		t.Fatalf("expected port 9090 got %d", cfg.API.Port)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" {
		t.Fatalf("unexpected mongo uri %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.ConnectTimeout != 3*time.Second {
		t.Fatalf("expected 3s got %s", cfg.Mongo.ConnectTimeout)
	}
	if cfg.Redis.Addr() != "cache:6379" {
		t.Fatalf("unexpected redis addr %q", cfg.Redis.Addr())
	}
	if cfg.RateLimit.WritesPerMinute != 30 {
		t.Fatalf("expected 30 writes per minute got %d", cfg.RateLimit.WritesPerMinute)
	}
	if cfg.MinIO.PublicEndpoint != "http://minio:9000" {
		t.Fatalf("unexpected public endpoint %q", cfg.MinIO.PublicEndpoint)
	}
}

func TestLoad_RateLimitWithoutRedis(t *testing.T) {
	t.Setenv("RATE_LIMIT_WRITES_PER_MINUTE", "10")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when rate limit is set without redis")
	}
}

func TestLoad_MinIOMissingCredentials(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "minio:9000")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for minio without credentials")
	}
}
