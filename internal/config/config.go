package config

import (
	"os"
	"strconv"
)

type ServiceConfig struct {
	Name         string
	Port         int
	DatabaseDSN  string
	MigrationDir string
}

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
}

type SMSConfig struct {
	MessageURL string
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

type Config struct {
	Product        ServiceConfig
	Order          ServiceConfig
	Mail           MailConfig
	SMS            SMSConfig
	FrontendOrigin string
}

// FromEnv populates a Config with defaults that can be overridden via
// environment variables.
func FromEnv() Config {
	smsSID := getEnv("SMS_ACCOUNT_SID", "")

	return Config{
		Product: ServiceConfig{
			Name:         "product",
			Port:         getEnvInt("PRODUCT_PORT", 8080),
			DatabaseDSN:  getEnv("PRODUCT_MYSQL_DSN", "root:root@tcp(localhost:3306)/storefront_product?parseTime=true"),
			MigrationDir: getEnv("PRODUCT_MIGRATION_DIR", "migration/product"),
		},
		Order: ServiceConfig{
			Name:         "order",
			Port:         getEnvInt("ORDER_PORT", 8081),
			DatabaseDSN:  getEnv("ORDER_MYSQL_DSN", "root:root@tcp(localhost:3306)/storefront_order?parseTime=true"),
			MigrationDir: getEnv("ORDER_MIGRATION_DIR", "migration/order"),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", "orders@lainecomfort.example"),
			To:       getEnv("MAIL_TO", "lainecomfortdeco@gmail.com"),
		},
		SMS: SMSConfig{
			MessageURL: getEnv("SMS_MESSAGE_URL", "https://api.twilio.com/2010-04-01/Accounts/"+smsSID+"/Messages.json"),
			AccountSID: smsSID,
			AuthToken:  getEnv("SMS_AUTH_TOKEN", ""),
			From:       getEnv("SMS_FROM", ""),
			To:         getEnv("SMS_TO", "+21698383991"),
		},
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:4200"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
