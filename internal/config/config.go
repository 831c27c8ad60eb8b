package config

import "os"

type Config struct {
	StripeSecretKey string
	Currency        string
	RedisURL        string
	KafkaBrokers    string
	JaegerEndpoint  string
	Port            string
}

func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "usd"
	}

	return &Config{
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:        currency,
		RedisURL:        os.Getenv("REDIS_URL"),
		KafkaBrokers:    os.Getenv("KAFKA_BROKERS"),
		JaegerEndpoint:  os.Getenv("JAEGER_ENDPOINT"),
		Port:            port,
	}
}
