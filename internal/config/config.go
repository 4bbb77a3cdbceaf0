package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Mode string

const (
	// ModePractice runs against the bundled local practice daemon.
	ModePractice Mode = "practice"
	// ModeOnline runs against the hosted platform API.
	ModeOnline Mode = "online"
)

type Config struct {
	Mode Mode

	// client side
	APIBaseURL     string
	CallTimeout    time.Duration
	AdvanceDelay   time.Duration
	TokenCachePath string

	// optional IdP sign-in instead of the platform's own endpoint
	EnableIdP      bool
	IdPClientID    string
	IdPSecret      string
	IdPTokenURL    string

	// practice daemon
	HTTPAddr           string
	DBDriver           string
	DBDSN              string
	AuthSecret         string
	CORSOrigins        []string
	QuestionsPerLesson int
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModePractice
	}
	base := envOr("API_BASE_URL", "http://localhost:8080/api/v1")
	if mode == ModeOnline {
		base = envOr("API_BASE_URL", "https://api.astrolearn.dev/api/v1")
	}
	return Config{
		Mode:           mode,
		APIBaseURL:     base,
		CallTimeout:    envDuration("CALL_TIMEOUT", 15*time.Second),
		AdvanceDelay:   envDuration("ADVANCE_DELAY", 1500*time.Millisecond),
		TokenCachePath: envOr("TOKEN_CACHE_PATH", ""),

		EnableIdP:   envBool("ENABLE_IDP", false),
		IdPClientID: os.Getenv("IDP_CLIENT_ID"),
		IdPSecret:   os.Getenv("IDP_CLIENT_SECRET"),
		IdPTokenURL: os.Getenv("IDP_TOKEN_URL"),

		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		DBDriver:           envOr("DB_DRIVER", "sqlite"),
		DBDSN:              envOr("DB_DSN", ""),
		AuthSecret:         envOr("AUTH_SECRET", "dev-secret-change-me"),
		CORSOrigins:        csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		QuestionsPerLesson: envInt("QUESTIONS_PER_LESSON", 5),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
