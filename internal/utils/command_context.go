package utils

import "context"

type commandContextKey string

const configurationFilePathContextKeyConstant commandContextKey = "configuration_file_path"

// CommandContextAccessor stores and retrieves command metadata on a context.
type CommandContextAccessor struct{}

// NewCommandContextAccessor creates a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the resolved configuration file path to the context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath retrieves the configuration file path stored on the context.
func (accessor CommandContextAccessor) ConfigurationFilePath(sourceContext context.Context) (string, bool) {
	storedValue := sourceContext.Value(configurationFilePathContextKeyConstant)
	configurationFilePath, conversionSucceeded := storedValue.(string)
	if !conversionSucceeded || len(configurationFilePath) == 0 {
		return "", false
	}
	return configurationFilePath, true
}
