package purge

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aaron-official/repo-nuke/internal/execshell"
	"github.com/aaron-official/repo-nuke/internal/githubcli"
	"github.com/aaron-official/repo-nuke/internal/ui"
	"github.com/aaron-official/repo-nuke/internal/utils"
	pathutils "github.com/aaron-official/repo-nuke/internal/utils/path"
)

const (
	commandUseConstant              = "purge [repositories...]"
	commandShortDescriptionConstant = "Delete GitHub repositories in bulk"
	commandLongDescriptionConstant  = `Delete GitHub repositories in bulk through the gh CLI.

Targets come from positional arguments, a plain-text list file, a JSON
batch file, or an interactive picker when no targets are supplied.
Each target is validated before a typed confirmation gate and a paced
deletion pass.

Examples:
  reponuke purge repo1 repo2 repo3
  reponuke purge --file repos.txt
  reponuke purge --config repos.json
  reponuke purge --username john-doe repo1 repo2
  reponuke purge --interactive
  reponuke purge --dry-run repo1 repo2`

	flagUsernameNameConstant           = "username"
	flagUsernameShorthandConstant      = "u"
	flagUsernameDescriptionConstant    = "GitHub username owning the repositories"
	flagFileNameConstant               = "file"
	flagFileShorthandConstant          = "f"
	flagFileDescriptionConstant        = "read the repository list from a file"
	flagConfigNameConstant             = "config"
	flagConfigShorthandConstant        = "c"
	flagConfigDescriptionConstant      = "use a JSON batch configuration file"
	flagAutoConfirmNameConstant        = "auto-confirm"
	flagAutoConfirmShorthandConstant   = "a"
	flagAutoConfirmDescriptionConstant = "skip the confirmation prompt (dangerous)"
	flagVerboseNameConstant            = "verbose"
	flagVerboseShorthandConstant       = "v"
	flagVerboseDescriptionConstant     = "enable verbose output"
	flagDryRunNameConstant             = "dry-run"
	flagDryRunShorthandConstant        = "d"
	flagDryRunDescriptionConstant      = "show what would be deleted without deleting"
	flagInteractiveNameConstant        = "interactive"
	flagInteractiveDescriptionConstant = "select repositories interactively"
	flagDeleteDelayNameConstant        = "delete-delay"
	flagDeleteDelayDescriptionConstant = "pause between successive deletions"

	configurationFileInUseTemplateConstant = "Using configuration file: %s\n"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies persisted purge configuration.
type ConfigurationProvider func() CommandConfiguration

// HumanReadableLoggingProvider reports whether console-formatted progress output is enabled.
type HumanReadableLoggingProvider func() bool

// CommandBuilder assembles the purge cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        ConfigurationProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	GitHubOperator               GitHubOperator
	Prompter                     LinePrompter
	Journal                      Journal
	Sleeper                      Sleeper
	CommandEventsObserver        execshell.CommandEventObserver
}

// Build constructs the cobra command for the purge workflow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	command.Flags().StringP(flagUsernameNameConstant, flagUsernameShorthandConstant, "", flagUsernameDescriptionConstant)
	command.Flags().StringP(flagFileNameConstant, flagFileShorthandConstant, "", flagFileDescriptionConstant)
	command.Flags().StringP(flagConfigNameConstant, flagConfigShorthandConstant, "", flagConfigDescriptionConstant)
	command.Flags().BoolP(flagAutoConfirmNameConstant, flagAutoConfirmShorthandConstant, false, flagAutoConfirmDescriptionConstant)
	command.Flags().BoolP(flagVerboseNameConstant, flagVerboseShorthandConstant, false, flagVerboseDescriptionConstant)
	command.Flags().BoolP(flagDryRunNameConstant, flagDryRunShorthandConstant, false, flagDryRunDescriptionConstant)
	command.Flags().Bool(flagInteractiveNameConstant, false, flagInteractiveDescriptionConstant)
	command.Flags().Duration(flagDeleteDelayNameConstant, defaultDeleteDelayConstant, flagDeleteDelayDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	options := builder.parseOptions(command, arguments, configuration)

	if options.Verbose {
		if configurationFilePath, pathAvailable := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); pathAvailable {
			fmt.Fprintf(command.OutOrStdout(), configurationFileInUseTemplateConstant, configurationFilePath)
		}
	}

	logger := builder.resolveLogger()

	githubOperator, operatorError := builder.resolveGitHubOperator(command, logger)
	if operatorError != nil {
		return operatorError
	}

	journalPath := pathutils.NewHomeExpander().Expand(configuration.JournalPath)

	prompter := builder.resolvePrompter(command)
	journal := builder.resolveJournal(journalPath)

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	errorWriter := utils.NewFlushingWriter(command.ErrOrStderr())

	service, serviceError := NewService(githubOperator, prompter, journal, builder.Sleeper, outputWriter, errorWriter, journalPath)
	if serviceError != nil {
		return serviceError
	}

	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string, configuration CommandConfiguration) CommandOptions {
	usernameFlag, _ := command.Flags().GetString(flagUsernameNameConstant)
	fileFlag, _ := command.Flags().GetString(flagFileNameConstant)
	configFlag, _ := command.Flags().GetString(flagConfigNameConstant)
	autoConfirmFlag, _ := command.Flags().GetBool(flagAutoConfirmNameConstant)
	verboseFlag, _ := command.Flags().GetBool(flagVerboseNameConstant)
	dryRunFlag, _ := command.Flags().GetBool(flagDryRunNameConstant)
	interactiveFlag, _ := command.Flags().GetBool(flagInteractiveNameConstant)
	deleteDelayFlag, _ := command.Flags().GetDuration(flagDeleteDelayNameConstant)

	if !command.Flags().Changed(flagUsernameNameConstant) {
		usernameFlag = configuration.Username
	}
	if !command.Flags().Changed(flagDeleteDelayNameConstant) {
		deleteDelayFlag = configuration.DeleteDelay
	}

	homeExpander := pathutils.NewHomeExpander()

	return CommandOptions{
		Username:        usernameFlag,
		Repositories:    append([]string{}, arguments...),
		ListFilePath:    expandOptionalPath(homeExpander, fileFlag),
		BatchConfigPath: expandOptionalPath(homeExpander, configFlag),
		AutoConfirm:     autoConfirmFlag,
		Verbose:         verboseFlag,
		DryRun:          dryRunFlag,
		Interactive:     interactiveFlag,
		DeleteDelay:     deleteDelayFlag,
	}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().sanitize()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveGitHubOperator(command *cobra.Command, logger *zap.Logger) (GitHubOperator, error) {
	if builder.GitHubOperator != nil {
		return builder.GitHubOperator, nil
	}

	commandObserver := builder.CommandEventsObserver
	if commandObserver == nil && builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		commandObserver = ui.NewConsoleCommandEventLogger(command.OutOrStdout())
	}

	var shellExecutor *execshell.ShellExecutor
	var executorError error
	if commandObserver != nil {
		shellExecutor, executorError = execshell.NewShellExecutorWithObserver(logger, execshell.NewOSCommandRunner(), commandObserver)
	} else {
		shellExecutor, executorError = execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
	}
	if executorError != nil {
		return nil, executorError
	}

	githubClient, clientError := githubcli.NewClient(shellExecutor)
	if clientError != nil {
		return nil, clientError
	}
	return githubClient, nil
}

func (builder *CommandBuilder) resolvePrompter(command *cobra.Command) LinePrompter {
	if builder.Prompter != nil {
		return builder.Prompter
	}
	return NewIOLinePrompter(command.InOrStdin(), command.OutOrStdout())
}

func (builder *CommandBuilder) resolveJournal(journalPath string) Journal {
	if builder.Journal != nil {
		return builder.Journal
	}
	return NewFileJournal(journalPath, SystemClock{})
}

func expandOptionalPath(homeExpander *pathutils.HomeExpander, candidatePath string) string {
	if len(candidatePath) == 0 {
		return ""
	}
	if expandedPath := homeExpander.Expand(candidatePath); len(expandedPath) > 0 {
		return expandedPath
	}
	return candidatePath
}
