package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DBUrl         string
	TokenSecret   string
	TokenTTL      time.Duration
	AdminUser     string
	AdminPassword string
	LoginAttempts int
	LoginLockout  time.Duration
	Debug         bool
}

// ParseFlags reads configuration from command-line flags, with defaults
// taken from the environment (a .env file is loaded first, if present).
func ParseFlags() (cfg Config, err error) {
	_ = godotenv.Load()

	var host string
	flag.StringVar(&host, "host", envOr("VGS_HOST", "0.0.0.0"), "listen host name")
	var port uint
	flag.UintVar(&port, "port", envUintOr("VGS_PORT", 8080), "listen port number")
	flag.StringVar(&cfg.DBUrl, "db-url", os.Getenv("VGS_DB_URL"), "Postgres connection URL")
	flag.StringVar(&cfg.TokenSecret, "token-secret", os.Getenv("VGS_TOKEN_SECRET"), "secret key for token encryption and decryption")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", envUintOr("VGS_TOKEN_TTL", 1800), "access token TTL in seconds")
	flag.StringVar(&cfg.AdminUser, "admin-user", envOr("VGS_ADMIN_USER", "admin"), "bootstrap admin username")
	flag.StringVar(&cfg.AdminPassword, "admin-password", os.Getenv("VGS_ADMIN_PASSWORD"), "bootstrap admin password (set once, ignored afterwards)")
	var attempts uint
	flag.UintVar(&attempts, "login-attempts", envUintOr("VGS_LOGIN_ATTEMPTS", 5), "failed login attempts before lockout")
	var lockout uint
	flag.UintVar(&lockout, "login-lockout", envUintOr("VGS_LOGIN_LOCKOUT", 900), "login lockout duration in seconds")
	flag.BoolVar(&cfg.Debug, "debug", os.Getenv("VGS_DEBUG") == "true", "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second
	cfg.LoginAttempts = int(attempts)
	cfg.LoginLockout = time.Duration(lockout) * time.Second

	if cfg.DBUrl == "" {
		err = errors.New("missing parameter -db-url")
		return
	}
	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUintOr(key string, fallback uint) uint {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(n)
		}
	}
	return fallback
}
