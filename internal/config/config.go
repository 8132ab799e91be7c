package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	WiseAPIBaseURL string
	WiseAPIKey     string
	WiseCompanyID  string
	WiseFacilityID string
	WiseUser       string
	WiseTimeoutMs  int
	WisePageLimit  int
	WiseDaysAhead  int

	CustomerIDs     string
	WindowOverrides string

	OutputDir string

	SMTPServer        string
	SMTPPort          int
	SenderEmail       string
	SenderPassword    string
	DefaultRecipients string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		WiseAPIBaseURL: getEnv("WISE_API_BASE_URL", "https://wise.logisticsteam.com/v2/valleyview"),
		WiseAPIKey:     getEnv("WISE_API_KEY", ""),
		WiseCompanyID:  getEnv("WISE_COMPANY_ID", "ORG-1"),
		WiseFacilityID: getEnv("WISE_FACILITY_ID", "F1"),
		WiseUser:       getEnv("WISE_USER", ""),
		WiseTimeoutMs:  getEnvInt("WISE_TIMEOUT_MS", 30000),
		WisePageLimit:  getEnvInt("WISE_PAGE_LIMIT", 1000),
		WiseDaysAhead:  getEnvInt("WISE_DAYS_AHEAD", 1),

		CustomerIDs:     getEnv("WISE_CUSTOMER_IDS", ""),
		WindowOverrides: getEnv("WISE_WINDOW_OVERRIDES", "ORG-685351=appointment"),

		OutputDir: getEnv("OUTPUT_DIR", "./out"),

		SMTPServer:        getEnv("SMTP_SERVER", "smtp.office365.com"),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SenderEmail:       getEnv("SENDER_EMAIL", ""),
		SenderPassword:    getEnv("SENDER_PASSWORD", ""),
		DefaultRecipients: getEnv("DEFAULT_RECIPIENTS", ""),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
