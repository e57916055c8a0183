package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"overtime-tracker/internal/overtime"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
	CORSOrigins []string

	TelegramToken string
	OwnerChatID   int64
	TelegramDebug bool

	CalendarFile  string
	StandardEnd   string
	TargetAverage float64

	LogLevel string
	LogFile  string
}

// EnvFile is the dotenv file read by GetConfig.
var EnvFile = ".env"

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		instance = Load(EnvFile)
	})

	return instance
}

// Load reads the dotenv file, if present, and then the environment.
func Load(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logrus.Warnf("error loading env file %s: %s", envFile, err.Error())
		}
	}

	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", "overtime.db"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":5001"),
		CORSOrigins:   getEnvAsList("CORS_ORIGINS", []string{"*"}),
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		OwnerChatID:   getEnvAsInt("OWNER_CHAT_ID", 0),
		TelegramDebug: getEnvAsBool("TELEGRAM_DEBUG", false),
		CalendarFile:  getEnv("CALENDAR_FILE", ""),
		StandardEnd:   getEnv("STANDARD_END", overtime.DefaultStandardEnd),
		TargetAverage: getEnvAsFloat("TARGET_AVERAGE", 1.5),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if _, ok := overtime.ParseClock(c.StandardEnd); !ok {
		return fmt.Errorf("STANDARD_END must be HH:MM, got %q", c.StandardEnd)
	}
	if c.TargetAverage < 0 {
		return fmt.Errorf("TARGET_AVERAGE must not be negative, got %v", c.TargetAverage)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

func (c *Config) ValidateBot() error {
	if c.TelegramToken == "" {
		return errors.New("could not get bot token")
	}
	if c.OwnerChatID == 0 {
		return errors.New("could not get owner chat id")
	}
	return nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsList(name string, defaultVal []string) []string {
	valStr := strings.TrimSpace(getEnv(name, ""))
	if valStr == "" {
		return defaultVal
	}

	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
