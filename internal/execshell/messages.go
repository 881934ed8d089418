package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	githubVersionFlagConstant               = "--version"
	githubAuthSubcommandNameConstant        = "auth"
	githubAuthStatusSubcommandNameConstant  = "status"
	githubAuthRefreshSubcommandNameConstant = "refresh"
	githubAPISubcommandNameConstant         = "api"
	githubUserEndpointNameConstant          = "user"
	githubRepoSubcommandNameConstant        = "repo"
	githubRepoListSubcommandNameConstant    = "list"
	githubRepoViewSubcommandNameConstant    = "view"
	githubRepoDeleteSubcommandNameConstant  = "delete"
	githubScopeFlagConstant                 = "-s"
)

const (
	githubVersionStartMessageConstant                 = "Checking GitHub CLI availability"
	githubVersionSuccessMessageConstant               = "GitHub CLI is available"
	githubVersionFailureTemplateConstant              = "GitHub CLI availability check failed (exit code %d%s)"
	githubVersionExecutionFailureTemplateConstant     = "GitHub CLI could not be invoked: %s"
	githubAuthStatusStartMessageConstant              = "Checking GitHub authentication status"
	githubAuthStatusSuccessMessageConstant            = "GitHub authentication confirmed"
	githubAuthStatusFailureTemplateConstant           = "GitHub authentication check failed (exit code %d%s)"
	githubAuthStatusExecutionFailureTemplateConstant  = "Unable to check GitHub authentication: %s"
	githubAuthRefreshStartTemplateConstant            = "Requesting token scope %s"
	githubAuthRefreshSuccessTemplateConstant          = "Token scope %s granted"
	githubAuthRefreshFailureTemplateConstant          = "Token scope %s request failed (exit code %d%s)"
	githubAuthRefreshExecutionFailureTemplateConstant = "Unable to request token scope %s: %s"
	githubUserLookupStartMessageConstant              = "Resolving authenticated GitHub identity"
	githubUserLookupSuccessMessageConstant            = "Resolved authenticated GitHub identity"
	githubUserLookupFailureTemplateConstant           = "Failed to resolve authenticated GitHub identity (exit code %d%s)"
	githubUserLookupExecutionFailureTemplateConstant  = "Unable to resolve authenticated GitHub identity: %s"
	githubRepoListStartTemplateConstant               = "Listing repositories owned by %s"
	githubRepoListSuccessTemplateConstant             = "Listed repositories owned by %s"
	githubRepoListFailureTemplateConstant             = "Failed to list repositories owned by %s (exit code %d%s)"
	githubRepoListExecutionFailureTemplateConstant    = "Unable to list repositories owned by %s: %s"
	githubRepoViewStartTemplateConstant               = "Checking repository %s"
	githubRepoViewSuccessTemplateConstant             = "Repository %s is accessible"
	githubRepoViewFailureTemplateConstant             = "Repository %s is not accessible (exit code %d%s)"
	githubRepoViewExecutionFailureTemplateConstant    = "Unable to check repository %s: %s"
	githubRepoDeleteStartTemplateConstant             = "Deleting repository %s"
	githubRepoDeleteSuccessTemplateConstant           = "Deleted repository %s"
	githubRepoDeleteFailureTemplateConstant           = "Failed to delete repository %s (exit code %d%s)"
	githubRepoDeleteExecutionFailureTemplateConstant  = "Unable to delete repository %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGitHub || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	primaryArgument := strings.TrimSpace(command.Details.Arguments[0])
	switch primaryArgument {
	case githubVersionFlagConstant:
		return formatter.describeVersionMessage(command, result, failure, stage)
	case githubAuthSubcommandNameConstant:
		return formatter.describeAuthMessage(command, result, failure, stage)
	case githubAPISubcommandNameConstant:
		return formatter.describeAPIMessage(command, result, failure, stage)
	case githubRepoSubcommandNameConstant:
		return formatter.describeRepoMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeVersionMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch stage {
	case messageStageStart:
		return githubVersionStartMessageConstant
	case messageStageSuccess:
		return githubVersionSuccessMessageConstant
	case messageStageFailure:
		return fmt.Sprintf(githubVersionFailureTemplateConstant, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(githubVersionExecutionFailureTemplateConstant, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeAuthMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < 2 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(arguments[1])
	switch subcommand {
	case githubAuthStatusSubcommandNameConstant:
		switch stage {
		case messageStageStart:
			return githubAuthStatusStartMessageConstant
		case messageStageSuccess:
			return githubAuthStatusSuccessMessageConstant
		case messageStageFailure:
			return fmt.Sprintf(githubAuthStatusFailureTemplateConstant, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(githubAuthStatusExecutionFailureTemplateConstant, formatter.describeFailure(failure))
		}
	case githubAuthRefreshSubcommandNameConstant:
		scopeName := formatter.ensureValue(findFlagValue(arguments, githubScopeFlagConstant))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(githubAuthRefreshStartTemplateConstant, scopeName)
		case messageStageSuccess:
			return fmt.Sprintf(githubAuthRefreshSuccessTemplateConstant, scopeName)
		case messageStageFailure:
			return fmt.Sprintf(githubAuthRefreshFailureTemplateConstant, scopeName, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(githubAuthRefreshExecutionFailureTemplateConstant, scopeName, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeAPIMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < 2 || strings.TrimSpace(arguments[1]) != githubUserEndpointNameConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch stage {
	case messageStageStart:
		return githubUserLookupStartMessageConstant
	case messageStageSuccess:
		return githubUserLookupSuccessMessageConstant
	case messageStageFailure:
		return fmt.Sprintf(githubUserLookupFailureTemplateConstant, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(githubUserLookupExecutionFailureTemplateConstant, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeRepoMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < 3 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(arguments[1])
	target := formatter.ensureValue(strings.TrimSpace(arguments[2]))

	var startTemplate, successTemplate, failureTemplate, executionFailureTemplate string
	switch subcommand {
	case githubRepoListSubcommandNameConstant:
		startTemplate = githubRepoListStartTemplateConstant
		successTemplate = githubRepoListSuccessTemplateConstant
		failureTemplate = githubRepoListFailureTemplateConstant
		executionFailureTemplate = githubRepoListExecutionFailureTemplateConstant
	case githubRepoViewSubcommandNameConstant:
		startTemplate = githubRepoViewStartTemplateConstant
		successTemplate = githubRepoViewSuccessTemplateConstant
		failureTemplate = githubRepoViewFailureTemplateConstant
		executionFailureTemplate = githubRepoViewExecutionFailureTemplateConstant
	case githubRepoDeleteSubcommandNameConstant:
		startTemplate = githubRepoDeleteStartTemplateConstant
		successTemplate = githubRepoDeleteSuccessTemplateConstant
		failureTemplate = githubRepoDeleteFailureTemplateConstant
		executionFailureTemplate = githubRepoDeleteExecutionFailureTemplateConstant
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, target)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, target)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, target, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(executionFailureTemplate, target, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func findFlagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}
