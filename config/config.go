package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	Mail     MailConfig     `yaml:"mail"`
	Verify   VerifyConfig   `yaml:"verify"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address" env:"HTTP_ADDRESS" env-default:":3001"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env-default:"disable"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	NotificationsTopic string   `yaml:"notifications_topic" env-default:"reservation_notifications"`
	GroupID            string   `yaml:"group_id" env-default:"reservation-notifier"`
}

type AuthConfig struct {
	AccessSecret  string `yaml:"access_secret" env:"SECRET_KEY"`
	RefreshSecret string `yaml:"refresh_secret" env:"SECRET_KEY_REFRESH"`
}

type MailConfig struct {
	Host     string `yaml:"host" env-default:"smtp.gmail.com"`
	Port     int    `yaml:"port" env-default:"465"`
	Username string `yaml:"username" env:"EMAIL_EMAIL"`
	Password string `yaml:"password" env:"EMAIL_PASS"`
	From     string `yaml:"from"`
	To       string `yaml:"to" env:"EMAIL_TO"`
}

type VerifyConfig struct {
	RecaptchaSecret string `yaml:"recaptcha_secret" env:"RECAPTCHA_SECRET_KEY"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}
