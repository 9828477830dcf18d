package config

const (
	defaultConfigPath         = "~/.config/sourcehub/config.toml"
	defaultDataDir            = "~/.local/share/sourcehub"
	defaultLogDir             = "~/.local/share/sourcehub/logs"
	defaultOfficialTimeout    = 10
	defaultDraftDBFile        = "drafts.db"
	defaultExportFile         = "sources.json"
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
	defaultSort               = "relevance"
	officialURLEnv            = "SOURCEHUB_OFFICIAL_URL"
	maxOfficialTimeoutSeconds = 300
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Official: Official{
			TimeoutSeconds: defaultOfficialTimeout,
		},
		Draft: Draft{
			DBFile:     defaultDraftDBFile,
			ExportFile: defaultExportFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Display: Display{
			DefaultSort: defaultSort,
		},
	}
}
