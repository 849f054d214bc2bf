package installer

// Settings is written to <runtime>/.env by the save step.
type Settings struct {
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	OperatorID    int64  `env:"RELAY_OPERATOR_ID"`
	ServiceName   string `env:"RELAY_SERVICE_NAME"`
	SessionStore  string `env:"RELAY_SESSION_STORE"`
	Debug         bool   `env:"RELAY_DEBUG"`
}

type InstallState struct {
	Settings Settings
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
