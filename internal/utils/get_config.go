package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`
	AppEnv  string `yaml:"APP_ENV"`

	// Account promoted to administrator at startup
	AdminEmail string `yaml:"ADMIN_EMAIL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Tokens for email verification and password reset links
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`

	// Session store
	RedisAddr          string `yaml:"REDIS_ADDR"`
	RedisPassword      string `yaml:"REDIS_PASSWORD"`
	SessionIdleMinutes int    `yaml:"SESSION_IDLE_MINUTES"`
}

var config Config

// configKeys maps every supported key to its field so that environment
// variables can override values read from config.yaml.
func configKeys(c *Config) map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"APP_URL":            &c.AppURL,
		"APP_ENV":            &c.AppEnv,
		"ADMIN_EMAIL":        &c.AdminEmail,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"JWT_SECRET":         &c.JWTSecret,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_S3_ENDPOINT":    &c.AWSS3Endpoint,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
		"REDIS_ADDR":         &c.RedisAddr,
		"REDIS_PASSWORD":     &c.RedisPassword,
	}
}

func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	for key, field := range configKeys(&config) {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*field = value
		}
	}
	if value, ok := os.LookupEnv("SESSION_IDLE_MINUTES"); ok {
		if minutes, err := strconv.Atoi(value); err == nil {
			config.SessionIdleMinutes = minutes
		}
	}

	if config.AppPort == "" {
		config.AppPort = "8080"
	}
	if config.AppEnv == "" {
		config.AppEnv = "dev"
	}
	if config.SessionIdleMinutes <= 0 {
		config.SessionIdleMinutes = 30
	}
}

func GetConfig(key string) string {
	if key == "SESSION_IDLE_MINUTES" {
		return strconv.Itoa(config.SessionIdleMinutes)
	}
	if field, ok := configKeys(&config)[key]; ok {
		return *field
	}
	return ""
}

func GetSessionIdleMinutes() int {
	return config.SessionIdleMinutes
}
