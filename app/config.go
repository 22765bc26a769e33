package app

import (
	"os"

	"github.com/spf13/viper"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/models"
)

// Defaults reproduce the behavior of the original hard-coded constants.
const (
	DefaultRootPath   = "//gameserver/minecraft/saves"
	DefaultStatsDir   = "stats"
	DefaultPattern    = "*.json"
	DefaultTargetStat = "minecraft:lantern"
	DefaultGroupLimit = 1000
)

func LoadConfig(path string) (*models.AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("scan.root_path", DefaultRootPath)
	v.SetDefault("scan.stats_dir", DefaultStatsDir)
	v.SetDefault("scan.file_pattern", DefaultPattern)
	v.SetDefault("scan.limit_enabled", false)
	v.SetDefault("scan.limit_count", 25)
	v.SetDefault("scan.log_dir", "")
	v.SetDefault("report.target_stat", DefaultTargetStat)
	v.SetDefault("report.group_limit", DefaultGroupLimit)
	v.SetDefault("server.port", 8080)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults apply.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
