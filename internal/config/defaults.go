package config

const (
	defaultDataDir           = "~/.local/share/clausecheck/data"
	defaultInboxDir          = "~/.local/share/clausecheck/inbox"
	defaultLogDir            = "~/.local/share/clausecheck/logs"
	defaultAPIBind           = "127.0.0.1:7519"
	defaultRequirementsPath  = "~/.config/clausecheck/requirements.json"
	defaultTopK              = 50
	defaultQueuePollInterval = 5
	defaultHeartbeatInterval = 15
	defaultHeartbeatTimeout  = 120
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:  defaultDataDir,
			InboxDir: defaultInboxDir,
			LogDir:   defaultLogDir,
			APIBind:  defaultAPIBind,
		},
		Review: Review{
			RequirementsPath: defaultRequirementsPath,
			TopK:             defaultTopK,
		},
		Workflow: Workflow{
			QueuePollInterval: defaultQueuePollInterval,
			HeartbeatInterval: defaultHeartbeatInterval,
			HeartbeatTimeout:  defaultHeartbeatTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
