package config

import (
	"os"
	"strings"
)

// Env holds all startup-time configuration. It is read once in main and
// passed down; nothing in here is mutated after boot, including the site
// branding applied to receipts and logs.
type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	CORSAllowedOrigins []string

	SiteName    string
	ReceiptLogo string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:     getenv("APP_ADDR", ":8080"),
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:      getenv("DB_USER", "root"),
		DBPass:      strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:      getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:      getenv("DB_NAME", "quicktransit"),
		JWTSecret:   getenv("JWT_SECRET", "super-secret-key-change-me"),
		SiteName:    getenv("SITE_NAME", "Quick Transit Bus Booking System"),
		ReceiptLogo: getenv("RECEIPT_LOGO", "static/logo/logo.jpeg"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	} else {
		env.CORSAllowedOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return env
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
