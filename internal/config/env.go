// internal/config/env.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// HostConfig настройки окна и процесса. Игровые правила сюда не входят.
type HostConfig struct {
	ScreenWidth  int    `env:"TD_SCREEN_WIDTH" envDefault:"1280"`
	ScreenHeight int    `env:"TD_SCREEN_HEIGHT" envDefault:"720"`
	WindowTitle  string `env:"TD_WINDOW_TITLE" envDefault:"Thermal TD"`
	Seed         int64  `env:"TD_SEED" envDefault:"0"`         // 0: сид от текущего времени
	LogLevel     string `env:"TD_LOG_LEVEL" envDefault:"info"` // debug|info|warn|error
	PprofAddr    string `env:"TD_PPROF_ADDR"`                  // пусто: pprof выключен
}

// LoadHostConfig читает настройки из окружения
func LoadHostConfig() (HostConfig, error) {
	var cfg HostConfig
	if err := env.Parse(&cfg); err != nil {
		return HostConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return HostConfig{}, fmt.Errorf("invalid screen size %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	return cfg, nil
}
