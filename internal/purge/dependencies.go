package purge

import (
	"context"
	"time"
)

// GitHubOperator defines the external GitHub client operations the workflow depends on.
type GitHubOperator interface {
	// CheckVersion verifies the client binary is invocable and returns its version banner.
	CheckVersion(executionContext context.Context) (string, error)
	// CheckAuthStatus verifies an authenticated session exists.
	CheckAuthStatus(executionContext context.Context) error
	// ProbeTokenScope verifies the current token can reach the authenticated user endpoint.
	ProbeTokenScope(executionContext context.Context) error
	// RefreshAuthScope requests an additional token scope on the given host.
	RefreshAuthScope(executionContext context.Context, host string, scope string) error
	// CurrentUser resolves the authenticated account login.
	CurrentUser(executionContext context.Context) (string, error)
	// ListRepositories returns the names of repositories owned by the given account.
	ListRepositories(executionContext context.Context, owner string, resultLimit int) ([]string, error)
	// RepositoryAccessible reports whether the owner/name repository exists and is reachable.
	RepositoryAccessible(executionContext context.Context, repository string) (bool, error)
	// DeleteRepository irreversibly deletes the owner/name repository.
	DeleteRepository(executionContext context.Context, repository string) error
}

// LinePrompter reads a single line of operator input.
type LinePrompter interface {
	// PromptLine displays the prompt and returns the entered line without its
	// trailing newline. The boolean reports whether input was available;
	// false indicates the input stream ended before a line could be read.
	PromptLine(prompt string) (string, bool, error)
}

// Journal appends timestamped entries to the persistent operation log.
type Journal interface {
	Record(message string) error
}

// Sleeper pauses between successive deletions.
type Sleeper interface {
	Sleep(duration time.Duration)
}

// SystemSleeper implements Sleeper using time.Sleep.
type SystemSleeper struct{}

// Sleep pauses the calling goroutine for the requested duration.
func (SystemSleeper) Sleep(duration time.Duration) {
	time.Sleep(duration)
}
