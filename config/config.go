package config

import "os"

// Config carries everything the process needs at startup. It is built
// once in main and passed down explicitly so tests can construct their
// own instances.
type Config struct {
	MongoURI  string
	MongoDB   string
	JWTSecret []byte
	RedisAddr string
	Port      string
	StaticDir string
}

func Load() Config {
	cfg := Config{
		MongoURI:  getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:   getenv("MONGODB_DB", "brookside"),
		JWTSecret: []byte(getenv("JWT_SECRET", "brookside_dev_secret")),
		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),
		Port:      getenv("PORT", ":8080"),
		StaticDir: getenv("STATIC_DIR", "static/dist"),
	}
	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
