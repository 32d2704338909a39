package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/golangdaddy/grimeshine/pkg/run"
)

// Load sets default values for every gameplay tunable and merges an optional
// grimeshine.cfg.json from configDir on top. A missing config file is fine;
// the defaults are a complete configuration on their own.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("savePath", "grimeshine.db")

	viper.SetDefault("canvas.width", 1280)
	viper.SetDefault("canvas.height", 720)

	viper.SetDefault("player.speed", 300)
	viper.SetDefault("player.size", 100)
	viper.SetDefault("player.interactionRange", 120)

	viper.SetDefault("level.baseTime", 60)
	viper.SetDefault("level.minTime", 30)
	viper.SetDefault("level.timeDecreasePerLevel", 5)
	viper.SetDefault("level.completeThreshold", 0.5)
	viper.SetDefault("level.eventChance", 0.3)

	viper.SetDefault("cars.base", 5)
	viper.SetDefault("cars.perLevel", 2)
	viper.SetDefault("cars.specialBaseChance", 0.1)
	viper.SetDefault("cars.specialChancePerLevel", 0.05)

	viper.SetConfigName("grimeshine.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// LogLevel returns the configured zerolog level name.
func LogLevel() string {
	return viper.GetString("logLevel")
}

// SavePath returns the path of the SQLite save database.
func SavePath() string {
	return viper.GetString("savePath")
}

// Game assembles the gameplay tunables for the run engine.
func Game() run.Config {
	return run.Config{
		CanvasWidth:           viper.GetFloat64("canvas.width"),
		CanvasHeight:          viper.GetFloat64("canvas.height"),
		PlayerSpeed:           viper.GetFloat64("player.speed"),
		PlayerSize:            viper.GetFloat64("player.size"),
		InteractionRange:      viper.GetFloat64("player.interactionRange"),
		BaseTime:              viper.GetInt("level.baseTime"),
		MinTime:               viper.GetInt("level.minTime"),
		TimeDecreasePerLevel:  viper.GetInt("level.timeDecreasePerLevel"),
		CompleteThreshold:     viper.GetFloat64("level.completeThreshold"),
		BaseCars:              viper.GetInt("cars.base"),
		CarsPerLevel:          viper.GetInt("cars.perLevel"),
		SpecialBaseChance:     viper.GetFloat64("cars.specialBaseChance"),
		SpecialChancePerLevel: viper.GetFloat64("cars.specialChancePerLevel"),
		EventChance:           viper.GetFloat64("level.eventChance"),
	}
}
