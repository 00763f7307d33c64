// Package config loads server configuration from a .env file and the
// environment.
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Export ExportConfig
	Store  StoreConfig
	CORS   CORSConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

// ExportConfig tunes the PDF export pipeline.
type ExportConfig struct {
	ChromePath   string
	NoSandbox    bool
	AutoDownload bool
	Timeout      time.Duration
	AssetTimeout time.Duration
	RenderScale  float64
	JPEGQuality  int
}

type StoreConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "quotegen-server")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("EXPORT_CHROME_PATH", "")
	viper.SetDefault("EXPORT_NO_SANDBOX", false)
	viper.SetDefault("EXPORT_AUTO_DOWNLOAD", false)
	viper.SetDefault("EXPORT_TIMEOUT_SECONDS", 60)
	viper.SetDefault("EXPORT_ASSET_TIMEOUT_SECONDS", 8)
	viper.SetDefault("EXPORT_RENDER_SCALE", 2.0)
	viper.SetDefault("EXPORT_JPEG_QUALITY", 98)
	viper.SetDefault("STORE_PATH", "./quotegen.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	return &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
			Port: viper.GetString("APP_PORT"),
		},
		Export: ExportConfig{
			ChromePath:   viper.GetString("EXPORT_CHROME_PATH"),
			NoSandbox:    viper.GetBool("EXPORT_NO_SANDBOX"),
			AutoDownload: viper.GetBool("EXPORT_AUTO_DOWNLOAD"),
			Timeout:      time.Duration(viper.GetInt("EXPORT_TIMEOUT_SECONDS")) * time.Second,
			AssetTimeout: time.Duration(viper.GetInt("EXPORT_ASSET_TIMEOUT_SECONDS")) * time.Second,
			RenderScale:  viper.GetFloat64("EXPORT_RENDER_SCALE"),
			JPEGQuality:  viper.GetInt("EXPORT_JPEG_QUALITY"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
	}
}
