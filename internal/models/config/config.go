package config

import "time"

// AppConfig глобальная конфигурация приложения
var AppConfig *Config

// Config основной конфиг
type Config struct {
	Environment string         `yaml:"environment"`
	Bot         BotConfig      `yaml:"bot"`
	Database    DatabaseConfig `yaml:"database"`
	School      SchoolConfig   `yaml:"school"`
}

type BotConfig struct {
	Token    string  `yaml:"token"`
	Debug    bool    `yaml:"debug"`
	AdminIDs []int64 `yaml:"admin_ids"` // ID администраторов, которым разрешено менять расписание
}

// SchoolConfig - часовой пояс школы, в котором определяется "текущий урок"
type SchoolConfig struct {
	Timezone string `yaml:"timezone"`
}

func (c SchoolConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c BotConfig) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
