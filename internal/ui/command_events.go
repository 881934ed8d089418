package ui

import (
	"fmt"
	"io"

	"github.com/aaron-official/repo-nuke/internal/execshell"
)

const consoleEventLineTemplateConstant = "%s\n"

// ConsoleCommandEventLogger prints command lifecycle messages to a writer for human consumption.
type ConsoleCommandEventLogger struct {
	outputWriter io.Writer
	formatter    execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger creates a ConsoleCommandEventLogger targeting the provided writer.
func NewConsoleCommandEventLogger(outputWriter io.Writer) *ConsoleCommandEventLogger {
	return &ConsoleCommandEventLogger{outputWriter: outputWriter, formatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted prints the start-of-command message.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	eventLogger.printLine(eventLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted prints the success or failure message for a finished command.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if result.ExitCode == 0 {
		eventLogger.printLine(eventLogger.formatter.BuildSuccessMessage(command))
		return
	}
	eventLogger.printLine(eventLogger.formatter.BuildFailureMessage(command, result))
}

// CommandExecutionFailed prints the message describing a command that could not run.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	eventLogger.printLine(eventLogger.formatter.BuildExecutionFailureMessage(command, failure))
}

func (eventLogger *ConsoleCommandEventLogger) printLine(message string) {
	if eventLogger.outputWriter == nil || len(message) == 0 {
		return
	}
	fmt.Fprintf(eventLogger.outputWriter, consoleEventLineTemplateConstant, message)
}
