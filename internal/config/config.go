package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Access policy
	AdminUser  string // admin account name
	AdminPass  string // admin account password
	UnlockCode string // hidden quick-admin code, empty = disabled
	GuestQuota int    // admitted guest requests per IP per day

	// Content
	SeedFile    string // optional YAML file overriding the default links table
	AltLoginURL string // URL encoded into the alternate-channel login QR

	// Location lookup for access-log rows
	GeoEndpoint string        // ip-api style endpoint, empty = lookups disabled
	GeoTimeout  time.Duration // hard timeout per lookup

	// Redis
	RedisAddr             string        // ex: "localhost:6379", empty = in-memory storage
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict admin endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("PORTAL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("PORTAL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("PORTAL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PORTAL_PRETTY_LOG", true),

		// Access policy
		AdminUser:  getenv("PORTAL_ADMIN_USER", "pmlaogao"),
		AdminPass:  getenv("PORTAL_ADMIN_PASS", "011348"),
		UnlockCode: getenv("PORTAL_UNLOCK_CODE", "Kill"),
		GuestQuota: getenvInt("PORTAL_GUEST_QUOTA", 5),

		// Content
		SeedFile:    getenv("PORTAL_SEED_FILE", ""),
		AltLoginURL: getenv("PORTAL_ALT_LOGIN_URL", "https://u.wechat.com/kBr-Pj6a0k4XqE-y"),

		// Location lookup
		GeoEndpoint: getenv("PORTAL_GEO_ENDPOINT", "http://ip-api.com/json"),
		GeoTimeout:  mustDuration("PORTAL_GEO_TIMEOUT", 800*time.Millisecond),

		// Redis settings
		RedisAddr:             getenv("PORTAL_REDIS_ADDR", ""),
		RedisUser:             getenv("PORTAL_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("PORTAL_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("PORTAL_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("PORTAL_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("PORTAL_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("PORTAL_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("PORTAL_TRUST_PROXY", true),
	}

	// Validate Redis password configuration
	if cfg.RedisAddr != "" && cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: PORTAL_REDIS_PASSWORD is required when PORTAL_REDIS_PASSWORD_REQUIRED=true")
	}

	if cfg.GuestQuota <= 0 {
		panic(fmt.Sprintf("❌ FATAL: PORTAL_GUEST_QUOTA must be > 0, got %d", cfg.GuestQuota))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.AdminPass = "***REDACTED***"
		cfgCopy.UnlockCode = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
