package githubcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aaron-official/repo-nuke/internal/execshell"
)

const (
	versionFlagConstant                     = "--version"
	authSubcommandConstant                  = "auth"
	statusSubcommandConstant                = "status"
	refreshSubcommandConstant               = "refresh"
	apiSubcommandConstant                   = "api"
	userEndpointConstant                    = "user"
	silentFlagConstant                      = "--silent"
	jqFlagConstant                          = "--jq"
	loginQueryConstant                      = ".login"
	hostFlagConstant                        = "-h"
	scopeFlagConstant                       = "-s"
	repoSubcommandConstant                  = "repo"
	listSubcommandConstant                  = "list"
	viewSubcommandConstant                  = "view"
	deleteSubcommandConstant                = "delete"
	limitFlagConstant                       = "--limit"
	jsonFlagConstant                        = "--json"
	repoListJSONFieldsConstant              = "name"
	confirmDeletionFlagConstant             = "--yes"
	repositoryFieldNameConstant             = "repository"
	ownerFieldNameConstant                  = "owner"
	hostFieldNameConstant                   = "host"
	scopeFieldNameConstant                  = "scope"
	requiredValueMessageConstant            = "value required"
	executorNotConfiguredMessageConstant    = "github cli executor not configured"
	repositoryListLimitDefaultValueConstant = 100
	operationErrorMessageTemplateConstant   = "%s operation failed"
	operationErrorWithCauseTemplateConstant = "%s operation failed: %s"
	responseDecodingErrorTemplateConstant   = "%s response decoding failed: %s"
	invalidInputErrorTemplateConstant       = "%s: %s"
	versionOperationNameConstant            = OperationName("CheckVersion")
	authStatusOperationNameConstant         = OperationName("CheckAuthStatus")
	scopeProbeOperationNameConstant         = OperationName("ProbeTokenScope")
	refreshScopeOperationNameConstant       = OperationName("RefreshAuthScope")
	currentUserOperationNameConstant        = OperationName("CurrentUser")
	listRepositoriesOperationNameConstant   = OperationName("ListRepositories")
	repositoryViewOperationNameConstant     = OperationName("ViewRepository")
	deleteRepositoryOperationNameConstant   = OperationName("DeleteRepository")
)

// OperationName describes a named GitHub CLI workflow supported by the client.
type OperationName string

// GitHubCommandExecutor is the minimal interface required from execshell.ShellExecutor.
type GitHubCommandExecutor interface {
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Client coordinates GitHub CLI invocations through execshell.
type Client struct {
	executor GitHubCommandExecutor
}

var (
	// ErrExecutorNotConfigured indicates the client was constructed without an executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for GitHub CLI operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the operation failure.
func (operationError OperationError) Error() string {
	if operationError.Cause == nil {
		return fmt.Sprintf(operationErrorMessageTemplateConstant, operationError.Operation)
	}
	return fmt.Sprintf(operationErrorWithCauseTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// ResponseDecodingError indicates JSON decoding failures.
type ResponseDecodingError struct {
	Operation OperationName
	Cause     error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Operation, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// NewClient constructs a GitHub CLI client.
func NewClient(executor GitHubCommandExecutor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor}, nil
}

// CheckVersion verifies the gh binary is invocable and returns its banner line.
func (client *Client) CheckVersion(executionContext context.Context) (string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments: []string{versionFlagConstant},
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return "", OperationError{Operation: versionOperationNameConstant, Cause: executionError}
	}

	bannerLine, _, _ := strings.Cut(executionResult.StandardOutput, "\n")
	return strings.TrimSpace(bannerLine), nil
}

// CheckAuthStatus verifies an authenticated gh session exists.
func (client *Client) CheckAuthStatus(executionContext context.Context) error {
	commandDetails := execshell.CommandDetails{
		Arguments: []string{authSubcommandConstant, statusSubcommandConstant},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return OperationError{Operation: authStatusOperationNameConstant, Cause: executionError}
	}

	return nil
}

// ProbeTokenScope checks whether the current token can reach the authenticated user endpoint.
func (client *Client) ProbeTokenScope(executionContext context.Context) error {
	commandDetails := execshell.CommandDetails{
		Arguments: []string{apiSubcommandConstant, userEndpointConstant, silentFlagConstant},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return OperationError{Operation: scopeProbeOperationNameConstant, Cause: executionError}
	}

	return nil
}

// RefreshAuthScope requests an additional token scope via gh auth refresh.
func (client *Client) RefreshAuthScope(executionContext context.Context, host string, scope string) error {
	trimmedHost := strings.TrimSpace(host)
	if len(trimmedHost) == 0 {
		return InvalidInputError{FieldName: hostFieldNameConstant, Message: requiredValueMessageConstant}
	}

	trimmedScope := strings.TrimSpace(scope)
	if len(trimmedScope) == 0 {
		return InvalidInputError{FieldName: scopeFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			authSubcommandConstant,
			refreshSubcommandConstant,
			hostFlagConstant,
			trimmedHost,
			scopeFlagConstant,
			trimmedScope,
		},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return OperationError{Operation: refreshScopeOperationNameConstant, Cause: executionError}
	}

	return nil
}

// CurrentUser resolves the authenticated GitHub login name.
func (client *Client) CurrentUser(executionContext context.Context) (string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments: []string{apiSubcommandConstant, userEndpointConstant, jqFlagConstant, loginQueryConstant},
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return "", OperationError{Operation: currentUserOperationNameConstant, Cause: executionError}
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// ListRepositories enumerates repository names owned by the provided user using gh repo list.
func (client *Client) ListRepositories(executionContext context.Context, owner string, resultLimit int) ([]string, error) {
	trimmedOwner := strings.TrimSpace(owner)
	if len(trimmedOwner) == 0 {
		return nil, InvalidInputError{FieldName: ownerFieldNameConstant, Message: requiredValueMessageConstant}
	}

	if resultLimit <= 0 {
		resultLimit = repositoryListLimitDefaultValueConstant
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			repoSubcommandConstant,
			listSubcommandConstant,
			trimmedOwner,
			limitFlagConstant,
			strconv.Itoa(resultLimit),
			jsonFlagConstant,
			repoListJSONFieldsConstant,
		},
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return nil, OperationError{Operation: listRepositoriesOperationNameConstant, Cause: executionError}
	}

	var response []struct {
		Name string `json:"name"`
	}

	decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response)
	if decodingError != nil {
		return nil, ResponseDecodingError{Operation: listRepositoriesOperationNameConstant, Cause: decodingError}
	}

	repositoryNames := make([]string, 0, len(response))
	for _, repositoryEntry := range response {
		trimmedName := strings.TrimSpace(repositoryEntry.Name)
		if len(trimmedName) == 0 {
			continue
		}
		repositoryNames = append(repositoryNames, trimmedName)
	}

	return repositoryNames, nil
}

// RepositoryAccessible reports whether gh repo view succeeds for the repository.
// A non-zero gh exit code means the repository is missing or inaccessible and is
// not treated as an error; only invocation failures surface as errors.
func (client *Client) RepositoryAccessible(executionContext context.Context, repository string) (bool, error) {
	trimmedRepository := strings.TrimSpace(repository)
	if len(trimmedRepository) == 0 {
		return false, InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{repoSubcommandConstant, viewSubcommandConstant, trimmedRepository},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError == nil {
		return true, nil
	}

	commandFailure := execshell.CommandFailedError{}
	if errors.As(executionError, &commandFailure) {
		return false, nil
	}

	return false, OperationError{Operation: repositoryViewOperationNameConstant, Cause: executionError}
}

// DeleteRepository irreversibly deletes the repository using gh repo delete.
func (client *Client) DeleteRepository(executionContext context.Context, repository string) error {
	trimmedRepository := strings.TrimSpace(repository)
	if len(trimmedRepository) == 0 {
		return InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			repoSubcommandConstant,
			deleteSubcommandConstant,
			trimmedRepository,
			confirmDeletionFlagConstant,
		},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return OperationError{Operation: deleteRepositoryOperationNameConstant, Cause: executionError}
	}

	return nil
}
