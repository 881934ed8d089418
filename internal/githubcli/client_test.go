package githubcli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aaron-official/repo-nuke/internal/execshell"
	"github.com/aaron-official/repo-nuke/internal/githubcli"
)

const (
	testOwnerNameConstant      = "octocat"
	testRepositoryNameConstant = "octocat/spoon-knife"
)

type stubGitHubExecutor struct {
	executionResult  execshell.ExecutionResult
	executionError   error
	recordedCommands []execshell.CommandDetails
}

func (executor *stubGitHubExecutor) ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)
	return executor.executionResult, executor.executionError
}

func TestNewClientRequiresExecutor(testInstance *testing.T) {
	client, creationError := githubcli.NewClient(nil)
	require.Nil(testInstance, client)
	require.ErrorIs(testInstance, creationError, githubcli.ErrExecutorNotConfigured)
}

func TestClientCommandConstruction(testInstance *testing.T) {
	testCases := []struct {
		name              string
		invoke            func(client *githubcli.Client, executor *stubGitHubExecutor) error
		executionResult   execshell.ExecutionResult
		expectedArguments []string
	}{
		{
			name: "check_version",
			invoke: func(client *githubcli.Client, executor *stubGitHubExecutor) error {
				_, invokeError := client.CheckVersion(context.Background())
				return invokeError
			},
			executionResult:   execshell.ExecutionResult{StandardOutput: "gh version 2.62.0 (2024-11-14)\n"},
			expectedArguments: []string{"--version"},
		},
		{
			name: "check_auth_status",
			invoke: func(client *githubcli.Client, executor *stubGitHubExecutor) error {
				return client.CheckAuthStatus(context.Background())
			},
			expectedArguments: []string{"auth", "status"},
		},
		{
			name: "probe_token_scope",
			invoke: func(client *githubcli.Client, executor *stubGitHubExecutor) error {
				return client.ProbeTokenScope(context.Background())
			},
			expectedArguments: []string{"api", "user", "--silent"},
		},
		{
			name: "refresh_auth_scope",
			invoke: func(client *githubcli.Client, executor *stubGitHubExecutor) error {
				return client.RefreshAuthScope(context.Background(), "github.com", "delete_repo")
			},
			expectedArguments: []string{"auth", "refresh", "-h", "github.com", "-s", "delete_repo"},
		},
		{
			name: "current_user",
			invoke: func(client *githubcli.Client, executor *stubGitHubExecutor) error {
				_, invokeError := client.CurrentUser(context.Background())
				return invokeError
			},
			executionResult:   execshell.ExecutionResult{StandardOutput: "octocat\n"},
			expectedArguments: []string{"api", "user", "--jq", ".login"},
		},
		{
			name: "list_repositories",
			invoke: func(client *githubcli.Client, executor *stubGitHubExecutor) error {
				_, invokeError := client.ListRepositories(context.Background(), testOwnerNameConstant, 100)
				return invokeError
			},
			executionResult:   execshell.ExecutionResult{StandardOutput: "[]"},
			expectedArguments: []string{"repo", "list", "octocat", "--limit", "100", "--json", "name"},
		},
		{
			name: "repository_accessible",
			invoke: func(client *githubcli.Client, executor *stubGitHubExecutor) error {
				_, invokeError := client.RepositoryAccessible(context.Background(), testRepositoryNameConstant)
				return invokeError
			},
			expectedArguments: []string{"repo", "view", "octocat/spoon-knife"},
		},
		{
			name: "delete_repository",
			invoke: func(client *githubcli.Client, executor *stubGitHubExecutor) error {
				return client.DeleteRepository(context.Background(), testRepositoryNameConstant)
			},
			expectedArguments: []string{"repo", "delete", "octocat/spoon-knife", "--yes"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &stubGitHubExecutor{executionResult: testCase.executionResult}
			client, creationError := githubcli.NewClient(executor)
			require.NoError(testInstance, creationError)

			invokeError := testCase.invoke(client, executor)
			require.NoError(testInstance, invokeError)

			require.Len(testInstance, executor.recordedCommands, 1)
			require.Equal(testInstance, testCase.expectedArguments, executor.recordedCommands[0].Arguments)
		})
	}
}

func TestCurrentUserTrimsOutput(testInstance *testing.T) {
	executor := &stubGitHubExecutor{executionResult: execshell.ExecutionResult{StandardOutput: "  octocat\n"}}
	client, creationError := githubcli.NewClient(executor)
	require.NoError(testInstance, creationError)

	login, lookupError := client.CurrentUser(context.Background())
	require.NoError(testInstance, lookupError)
	require.Equal(testInstance, "octocat", login)
}

func TestListRepositoriesDecodesNames(testInstance *testing.T) {
	executor := &stubGitHubExecutor{
		executionResult: execshell.ExecutionResult{
			StandardOutput: `[{"name":"alpha"},{"name":"beta"},{"name":""}]`,
		},
	}
	client, creationError := githubcli.NewClient(executor)
	require.NoError(testInstance, creationError)

	repositories, listError := client.ListRepositories(context.Background(), testOwnerNameConstant, 0)
	require.NoError(testInstance, listError)
	require.Equal(testInstance, []string{"alpha", "beta"}, repositories)
}

func TestListRepositoriesReportsDecodingFailures(testInstance *testing.T) {
	executor := &stubGitHubExecutor{executionResult: execshell.ExecutionResult{StandardOutput: "not json"}}
	client, creationError := githubcli.NewClient(executor)
	require.NoError(testInstance, creationError)

	repositories, listError := client.ListRepositories(context.Background(), testOwnerNameConstant, 0)
	require.Nil(testInstance, repositories)

	decodingError := githubcli.ResponseDecodingError{}
	require.ErrorAs(testInstance, listError, &decodingError)
}

func TestRepositoryAccessibleInterpretsExitCodes(testInstance *testing.T) {
	testCases := []struct {
		name           string
		executionError error
		expectedResult bool
		expectError    bool
	}{
		{
			name:           "accessible",
			executionError: nil,
			expectedResult: true,
		},
		{
			name: "missing_repository",
			executionError: execshell.CommandFailedError{
				Result: execshell.ExecutionResult{ExitCode: 1, StandardError: "Could not resolve"},
			},
			expectedResult: false,
		},
		{
			name:           "invocation_failure",
			executionError: execshell.CommandExecutionError{Cause: errors.New("binary missing")},
			expectedResult: false,
			expectError:    true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &stubGitHubExecutor{executionError: testCase.executionError}
			client, creationError := githubcli.NewClient(executor)
			require.NoError(testInstance, creationError)

			accessible, accessError := client.RepositoryAccessible(context.Background(), testRepositoryNameConstant)
			require.Equal(testInstance, testCase.expectedResult, accessible)
			if testCase.expectError {
				require.Error(testInstance, accessError)
			} else {
				require.NoError(testInstance, accessError)
			}
		})
	}
}

func TestClientValidatesRequiredInputs(testInstance *testing.T) {
	executor := &stubGitHubExecutor{}
	client, creationError := githubcli.NewClient(executor)
	require.NoError(testInstance, creationError)

	testCases := []struct {
		name   string
		invoke func() error
	}{
		{
			name: "refresh_requires_scope",
			invoke: func() error {
				return client.RefreshAuthScope(context.Background(), "github.com", " ")
			},
		},
		{
			name: "list_requires_owner",
			invoke: func() error {
				_, listError := client.ListRepositories(context.Background(), " ", 10)
				return listError
			},
		},
		{
			name: "delete_requires_repository",
			invoke: func() error {
				return client.DeleteRepository(context.Background(), "")
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			invalidInput := githubcli.InvalidInputError{}
			require.ErrorAs(testInstance, testCase.invoke(), &invalidInput)
			require.Empty(testInstance, executor.recordedCommands)
		})
	}
}
