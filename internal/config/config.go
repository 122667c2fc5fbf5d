package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cfg struct {
	BackOffice BackOffice
	Browser    Browser
	Database   Database
	Logger     Logger
	Migrations Migrations
}

type BackOffice struct {
	URL            string
	MonitoringPath string
}

type Browser struct {
	Driver          string
	Engine          string
	Display         string
	Headless        bool
	UserDataDir     string
	BrowsersPath    string
	SlowMo          time.Duration
	Timeout         time.Duration
	NavigateTimeout time.Duration
	WaitUntil       string
}

type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Enabled reports whether a journal database is configured.
func (d Database) Enabled() bool {
	return d.Host != ""
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

func (d Database) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type Migrations struct {
	Path string
}

type Logger struct {
	Env   string
	Level string
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		BackOffice: BackOffice{
			URL:            os.Getenv("BO_URL"),
			MonitoringPath: env("BO_MONITORING_PATH", "index.php?controller=AdminMonitoring"),
		},
		Browser: Browser{
			Driver:          strings.ToLower(env("BROWSER_DRIVER", "playwright")),
			Engine:          strings.ToLower(env("PW_ENGINE", "chromium")),
			Display:         os.Getenv("DISPLAY"),
			Headless:        envBool("PW_HEADLESS", true),
			UserDataDir:     os.Getenv("PW_USER_DATA_DIR"),
			BrowsersPath:    os.Getenv("PLAYWRIGHT_BROWSERS_PATH"),
			SlowMo:          envMillis("PW_SLOW_MO_MS", 0),
			Timeout:         envMillis("BROWSER_TIMEOUT_MS", 30000),
			NavigateTimeout: envMillis("BROWSER_NAVIGATE_TIMEOUT_MS", 60000),
			WaitUntil:       strings.ToLower(env("PW_WAIT_UNTIL", "load")),
		},
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     env("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
		},
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
		},
		Migrations: Migrations{
			Path: env("MIGRATIONS_PATH", "file://migrations"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Cfg) validate() error {
	switch c.Browser.Driver {
	case "playwright", "chromedp":
	default:
		return fmt.Errorf("BROWSER_DRIVER must be playwright or chromedp, got %q", c.Browser.Driver)
	}
	switch c.Browser.Engine {
	case "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("PW_ENGINE must be chromium, firefox or webkit, got %q", c.Browser.Engine)
	}
	switch c.Browser.WaitUntil {
	case "load", "domcontentloaded", "networkidle":
	default:
		return fmt.Errorf("PW_WAIT_UNTIL must be load, domcontentloaded or networkidle, got %q", c.Browser.WaitUntil)
	}
	return nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envMillis(key string, defaultValue int) time.Duration {
	return time.Duration(envInt(key, defaultValue)) * time.Millisecond
}

func envBool(key string, defaultValue bool) bool {
	v := strings.ToLower(os.Getenv(key))
	switch v {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}
