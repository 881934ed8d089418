package purge

import (
	"strings"
	"time"
)

const (
	configurationUsernameKeySuffixConstant    = ".username"
	configurationDeleteDelayKeySuffixConstant = ".delete_delay"
	configurationJournalPathKeySuffixConstant = ".journal_path"
	defaultDeleteDelayConstant                = 500 * time.Millisecond
	defaultJournalPathConstant                = "~/.reponuke.log"
)

// CommandConfiguration captures persistent settings for the purge command.
type CommandConfiguration struct {
	Username    string        `mapstructure:"username"`
	DeleteDelay time.Duration `mapstructure:"delete_delay"`
	JournalPath string        `mapstructure:"journal_path"`
}

// DefaultCommandConfiguration returns baseline configuration values for the purge command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Username:    "",
		DeleteDelay: defaultDeleteDelayConstant,
		JournalPath: defaultJournalPathConstant,
	}
}

// DefaultConfigurationValues expresses the baseline configuration as loader defaults under the given key prefix.
func DefaultConfigurationValues(keyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		keyPrefix + configurationUsernameKeySuffixConstant:    defaults.Username,
		keyPrefix + configurationDeleteDelayKeySuffixConstant: defaults.DeleteDelay.String(),
		keyPrefix + configurationJournalPathKeySuffixConstant: defaults.JournalPath,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Username = strings.TrimSpace(configuration.Username)
	sanitized.JournalPath = strings.TrimSpace(configuration.JournalPath)
	if len(sanitized.JournalPath) == 0 {
		sanitized.JournalPath = defaultJournalPathConstant
	}
	if sanitized.DeleteDelay < 0 {
		sanitized.DeleteDelay = defaultDeleteDelayConstant
	}

	return sanitized
}
