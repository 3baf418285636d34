package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type LDAPConfig struct {
	Server       string        `env:"SERVER" envDefault:"ldap://localhost:389"`
	BindCN       string        `env:"BIND_CN"`
	BindPassword string        `env:"BIND_PASSWORD"`
	UserCN       string        `env:"USER_CN"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type SMTPConfig struct {
	Host    string        `env:"HOST" envDefault:"localhost"`
	Port    int           `env:"PORT" envDefault:"587"`
	User    string        `env:"USER"`
	Pass    string        `env:"PASS"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type MailConfig struct {
	Domain      string `env:"DOMAIN" envDefault:"neuland-ingolstadt.de"`
	FromName    string `env:"FROM_NAME" envDefault:"Neuland Ingolstadt e.V."`
	FromAddress string `env:"FROM_ADDRESS" envDefault:"noreply@neuland-ingolstadt.de"`
	Subject     string `env:"SUBJECT" envDefault:"Willkommen bei Neuland Ingolstadt"`
}

type OtlpConfig struct {
	Endpoint string `env:"ENDPOINT" envDefault:"localhost:4317"`
	Insecure bool   `env:"INSECURE" envDefault:"false"`
}

type OtelConfig struct {
	Disable      bool       `env:"DISABLE" envDefault:"false"`
	OtlpExporter OtlpConfig `envPrefix:"EXPORTER_OTLP_"`
}

type Config struct {
	Environment   string     `env:"ENVIRONMENT" envDefault:"development"`
	Port          string     `env:"PORT" envDefault:"3000"`
	AdminPassword string     `env:"ADMIN_PASSWORD"`
	TemplateDir   string     `env:"TEMPLATE_DIR" envDefault:"templates"`
	LDAP          LDAPConfig `envPrefix:"LDAP_"`
	SMTP          SMTPConfig `envPrefix:"SMTP_"`
	Mail          MailConfig `envPrefix:"MAIL_"`
	Otel          OtelConfig `envPrefix:"OTEL_"`
}

var AppConfig Config

func loadEnv(filename string) error {
	err := godotenv.Load(filename)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading file %s: %w", filename, err)
}

func init() {
	var err error
	var errs error

	environment := getEnv("ENVIRONMENT", "development")
	if environment != "" {
		file := ".env." + environment + ".local"
		err = loadEnv(file)
		if err != nil {
			errs = errors.Join(
				errs,
				fmt.Errorf("error loading %s: %w", file, err),
			)
		}
	}

	err = loadEnv(".env.local")
	if err != nil {
		errs = errors.Join(
			errs,
			fmt.Errorf("error loading .env.local: %w", err),
		)
	}

	err = loadEnv(".env")
	if err != nil {
		errs = errors.Join(
			errs,
			fmt.Errorf("error loading .env: %w", err),
		)
	}

	err = env.Parse(&AppConfig)
	if err != nil {
		errs = errors.Join(
			errs,
			fmt.Errorf("error parsing env: %w", err),
		)
	}

	if errs != nil {
		panic(errs)
	}
}

func getEnv(key, fallback string) string {
	// returns value of associated env key
	value := os.Getenv(key)

	if value != "" {
		return value
	}

	return fallback
}

func IsProd() bool {
	return AppConfig.Environment == "production"
}
