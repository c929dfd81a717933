package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Site holds the profile page metadata rendered into the template.
type Site struct {
	Title       string
	Owner       string
	Description string
	PageID      string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Likes struct {
		TopN int
	}
	Site            Site
	InsecureCookies bool
}

// Load reads config from environment (LINKS_ prefix) and optional links.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LINKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("links")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("likes.top_n", 10)
	v.SetDefault("insecure_cookies", false)
	v.SetDefault("site.title", "Links")
	v.SetDefault("site.owner", "")
	v.SetDefault("site.description", "Personal portfolio and links")
	v.SetDefault("site.page_id", "home")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Likes.TopN = v.GetInt("likes.top_n")
	cfg.Site.Title = v.GetString("site.title")
	cfg.Site.Owner = v.GetString("site.owner")
	cfg.Site.Description = v.GetString("site.description")
	cfg.Site.PageID = v.GetString("site.page_id")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("LINKS_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("LINKS_DB_DSN is required")
	}
	if cfg.Likes.TopN <= 0 {
		return nil, fmt.Errorf("LINKS_LIKES_TOP_N must be positive")
	}

	return cfg, nil
}
