package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Every field can be overridden from the
// environment; a .env file in the working directory is loaded first if present.
type Config struct {
	Port       string `envconfig:"PORT" default:"3000"`
	DataDir    string `envconfig:"DATA_DIR" default:"./data"`
	UploadsDir string `envconfig:"UPLOADS_DIR" default:"./uploads"`
	PublicDir  string `envconfig:"PUBLIC_DIR" default:"./public"`
	BackupDir  string `envconfig:"BACKUP_DIR" default:"./backup/uploads"`

	// Telegram bot credentials. The defaults mirror the values shipped in the
	// original deployment; set BOT_TOKEN and CHAT_ID to rotate them.
	BotToken string `envconfig:"BOT_TOKEN" default:"8291119939:AAHodtowSjgnCcTN256ZIVCZUKMNuesxovQ"`
	ChatID   string `envconfig:"CHAT_ID" default:"7372428049"`

	LogFile string `envconfig:"LOG_FILE"`
	LogMode string `envconfig:"LOG_MODE" default:"development"`
}

// Load reads .env (optional) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
