package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/optimus-events/event-registration/api"
	"github.com/optimus-events/event-registration/registration"
)

type Config struct {
	Env  api.Environment
	Host string
	Port string

	DynamoTable    string
	DynamoEndpoint string

	// CheckoutStore is "dynamo" or "redis".
	CheckoutStore string
	RedisURL      string

	NatsURL string

	RazorpayKeyID          string
	RazorpayKeySecret      string
	RazorpaySecretParam    string
	VerifyPaymentSignature bool
	MerchantName           string
	CheckoutTTL            time.Duration

	GoogleClientID string
	CookieDomain   string
	AllowedOrigins []string

	EmailFrom string
}

func loadConfig() Config {
	return Config{
		Env:  api.ParseEnvironment(getEnvOrDefault("ENV", "LOCAL")),
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		Port: getEnvOrDefault("PORT", "8080"),

		DynamoTable:    getEnvOrDefault("DYNAMO_TABLE", "event-registration"),
		DynamoEndpoint: getEnvOrDefault("DYNAMO_ENDPOINT", "localhost:8000"),

		CheckoutStore: getEnvOrDefault("CHECKOUT_STORE", "dynamo"),
		RedisURL:      getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),

		NatsURL: getEnvOrDefault("NATS_URL", ""),

		RazorpayKeyID:          getEnvOrDefault("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:      getEnvOrDefault("RAZORPAY_KEY_SECRET", ""),
		RazorpaySecretParam:    getEnvOrDefault("RAZORPAY_KEY_SECRET_PARAM", "/event-registration/razorpay-key-secret"),
		VerifyPaymentSignature: getEnvAsBool("VERIFY_PAYMENT_SIGNATURE", false),
		MerchantName:           getEnvOrDefault("MERCHANT_NAME", "Event Registration"),
		CheckoutTTL:            getEnvAsDuration("CHECKOUT_TTL", registration.DefaultCheckoutTTL),

		GoogleClientID: getEnvOrDefault("GOOGLE_CLIENT_ID", ""),
		CookieDomain:   getEnvOrDefault("COOKIE_DOMAIN", ""),
		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "")),

		EmailFrom: getEnvOrDefault("EMAIL_FROM", "Event Registration <no-reply@localhost>"),
	}
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	v, err := strconv.ParseBool(getEnvOrDefault(key, ""))
	if err != nil {
		return defaultVal
	}
	return v
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnvOrDefault(key, ""))
	if err != nil {
		return defaultVal
	}
	return v
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
