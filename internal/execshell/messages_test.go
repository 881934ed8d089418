package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForRepoDeleteNamesRepository(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGitHub,
		Details: CommandDetails{
			Arguments: []string{"repo", "delete", "octocat/spoon-knife", "--yes"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Deleting repository octocat/spoon-knife", message)
}

func TestBuildFailureMessageForRepoViewIncludesExitCodeAndStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGitHub,
		Details: CommandDetails{
			Arguments: []string{"repo", "view", "octocat/missing"},
		},
	}
	result := ExecutionResult{ExitCode: 1, StandardError: "GraphQL: Could not resolve"}

	message := formatter.BuildFailureMessage(command, result)

	require.Equal(t, "Repository octocat/missing is not accessible (exit code 1: GraphQL: Could not resolve)", message)
}

func TestBuildStartedMessageForAuthRefreshNamesScope(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGitHub,
		Details: CommandDetails{
			Arguments: []string{"auth", "refresh", "-h", "github.com", "-s", "delete_repo"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Requesting token scope delete_repo", message)
}

func TestBuildSuccessMessageForUnknownCommandUsesGenericLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGitHub,
		Details: CommandDetails{
			Arguments: []string{"gist", "list"},
		},
	}

	message := formatter.BuildSuccessMessage(command)

	require.Equal(t, "Completed gh gist list", message)
}
