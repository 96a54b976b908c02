package devops

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFileName = "staffdesk.yaml"

// Config is the client-side runtime configuration. The API base URL is the
// only required value; it points the client at the remote StaffDesk server.
type Config struct {
	APIBaseURL  string `yaml:"api_base_url"`
	LogLevel    string `yaml:"log_level"`
	PageSize    int    `yaml:"page_size"`
	DownloadDir string `yaml:"download_dir"`
}

var (
	once    sync.Once
	cfg     Config
	loadErr error
)

// Load reads configuration once per process: .env, then a yaml file under
// the user config dir, then environment variables (env wins).
func Load() (Config, error) {
	once.Do(func() {
		_ = godotenv.Load()

		var raw []byte
		if dir, err := os.UserConfigDir(); err == nil {
			raw, _ = os.ReadFile(filepath.Join(dir, "staffdesk", configFileName))
		}

		cfg, loadErr = Parse(raw, os.Getenv)
	})

	return cfg, loadErr
}

// Parse builds a Config from optional yaml bytes and an env lookup. Split
// out of Load so tests can exercise precedence without touching the process
// environment or the sync.Once.
func Parse(yamlRaw []byte, getenv func(string) string) (Config, error) {
	c := Config{
		LogLevel:    "info",
		PageSize:    8,
		DownloadDir: ".",
	}

	if len(yamlRaw) > 0 {
		if err := yaml.Unmarshal(yamlRaw, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", configFileName, err)
		}
	}

	if v := getenv("STAFFDESK_API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := getenv("STAFFDESK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("STAFFDESK_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c, fmt.Errorf("invalid STAFFDESK_PAGE_SIZE: %q", v)
		}
		c.PageSize = n
	}
	if v := getenv("STAFFDESK_DOWNLOAD_DIR"); v != "" {
		c.DownloadDir = v
	}

	if c.APIBaseURL == "" {
		return c, fmt.Errorf("api base url not configured (set STAFFDESK_API_BASE_URL)")
	}

	return c, nil
}
