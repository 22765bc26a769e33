package models

type ScanConfig struct {
	RootPath     string `mapstructure:"root_path"`
	StatsDirName string `mapstructure:"stats_dir"`
	FilePattern  string `mapstructure:"file_pattern"`
	LimitEnabled bool   `mapstructure:"limit_enabled"`
	LimitCount   int    `mapstructure:"limit_count"`
	LogDir       string `mapstructure:"log_dir"` // empty = console only
}

type ReportConfig struct {
	TargetStat string `mapstructure:"target_stat"`
	GroupLimit int    `mapstructure:"group_limit"` // rows kept per group, 0 = unlimited
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AppConfig struct {
	Scan   ScanConfig   `mapstructure:"scan"`
	Report ReportConfig `mapstructure:"report"`
	Server ServerConfig `mapstructure:"server"`
}
