package config

import (
	"os"

	"github.com/jinzhu/configor"
)

// Command prefixes whose output is expected to be UTF-8 regardless of the
// console code page.
var defaultNetworkCommands = []string{
	"curl",
	"wget",
}

// Config - Application configuration
type Config struct {
	Debug bool   `yaml:"debug" default:"false" env:"DEBUG"`
	Log   string `yaml:"log" env:"LOG_PATH"`

	CommandExec struct {
		// DefaultWorkingDir is used when a request does not name one.
		DefaultWorkingDir string `yaml:"default_working_dir" env:"SANDBOX_PATH"`
		// ConsoleEncoding is the IANA name of the console code page used
		// to decode child process output.
		ConsoleEncoding string `yaml:"console_encoding" default:"GBK" env:"CONSOLE_ENCODING"`
		// NetworkCommands lists command names that prefer UTF-8 decoding.
		NetworkCommands []string `yaml:"network_commands"`
		// Environment is applied to every spawned command.
		Environment map[string]string `yaml:"environment"`
	} `yaml:"command_exec"`
}

// LoadConfig - Load configuration file
func LoadConfig(path string) (*Config, error) {
	// デフォルト値を設定したConfigを作成
	cfg := &Config{}
	cfg.CommandExec.NetworkCommands = defaultNetworkCommands

	loader := configor.New(&configor.Config{
		Debug:      false,
		Verbose:    false,
		Silent:     true,
		AutoReload: false,
	})

	// 設定ファイルから読み込み（存在する場合はデフォルト値を上書き）
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return cfg, loader.Load(cfg, path)
		}
	}

	// 設定ファイルが無い場合はデフォルト値と環境変数のみ
	return cfg, loader.Load(cfg)
}
