package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RedisAddr     string
	RedisPassword string
	SQLitePath    string
	JWTSecret     string
	ServerPort    string

	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	MailFrom     string
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	return &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "reserva-salas.db"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),

		MailHost:     getEnv("MAIL_SMTP_HOST", "smtp.gmail.com"),
		MailPort:     getEnvInt("MAIL_SMTP_PORT", 587),
		MailUser:     getEnv("MAIL_SMTP_USER", ""),
		MailPassword: getEnv("MAIL_SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "reservas@ifteca.edu.br"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
