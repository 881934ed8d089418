package purge

import (
	"errors"
	"fmt"
)

const (
	githubHostConstant              = "github.com"
	deleteScopeConstant             = "delete_repo"
	repositoryListLimitConstant     = 100
	allSelectionTokenConstant       = "all"
	confirmationPhraseConstant      = "DELETE"
	ownerRepositoryTemplateConstant = "%s/%s"
)

const (
	toolBannerMessageConstant          = "RepoNuke - Bulk GitHub Repository Deletion Tool"
	toolBannerSeparatorConstant        = "======================================"
	sessionStartJournalMessageConstant = "Starting repository purge session"

	githubCLIMissingMessageConstant = "GitHub CLI (gh) is not installed!"
	installHintHeaderConstant       = "Please install it first:"
	installHintWindowsConstant      = "  Windows: winget install --id GitHub.cli"
	installHintMacOSConstant        = "  macOS: brew install gh"
	installHintLinuxConstant        = "  Linux: sudo apt install gh"

	authCheckingMessageConstant     = "Checking GitHub authentication..."
	notAuthenticatedMessageConstant = "Not authenticated with GitHub!"
	loginHintMessageConstant        = "Please run: gh auth login"
	scopeCheckingMessageConstant    = "Checking delete permissions..."
	scopeFailedMessageConstant      = "Failed to get delete permissions!"
	scopeHintMessageConstant        = "Please run: gh auth refresh -h github.com -s delete_repo"
	authVerifiedMessageConstant     = "Authentication verified"

	usernameResolveFailedMessageConstant = "Could not determine GitHub username"
	usingUsernameTemplateConstant        = "Using GitHub username: %s\n"

	batchConfigLoadedTemplateConstant = "Loaded configuration from %s\n"
	listFileLoadedTemplateConstant    = "Loaded %d repositories from %s\n"

	fetchingRepositoriesMessageConstant      = "Fetching your repositories..."
	interactiveHeaderMessageConstant         = "Interactive Repository Selection"
	availableRepositoriesMessageConstant     = "Available repositories:"
	noRepositoriesForUserTemplateConstant    = "No repositories found for user: %s\n"
	repositoryListingRowTemplateConstant     = "%3d) %s\n"
	selectionPromptMessageConstant           = "Enter repository numbers to delete (space-separated, e.g., 1 3 5):"
	selectionAllHintMessageConstant          = "Or enter 'all' to select all repositories"
	skippingInvalidSelectionTemplateConstant = "Skipping invalid selection: %s\n"
	noSelectionMessageConstant               = "No repositories selected. Exiting."

	noRepositoriesSpecifiedMessageConstant = "No repositories specified for deletion."

	startingBatchMessageConstant           = "Starting batch deletion process..."
	totalRepositoriesTemplateConstant      = "Total repositories to delete: %d\n"
	inaccessibleRepositoryTemplateConstant = "Repository not found or inaccessible: %s\n"
	noValidRepositoriesMessageConstant     = "No valid repositories found to delete"
	repositoriesToDeleteHeaderConstant     = "Repositories to be deleted:"
	repositoryListItemTemplateConstant     = "  - %s\n"
	irreversibleWarningMessageConstant     = "WARNING: This action is IRREVERSIBLE!"
	backupWarningMessageConstant           = "Make sure you have backups of important code!"
	confirmationPromptConstant             = "Are you absolutely sure? Type 'DELETE' to confirm: "
	operationCancelledMessageConstant      = "Operation cancelled."
	processingDeletionsMessageConstant     = "Processing deletions..."
	deletionProgressPrefixTemplateConstant = "[%d/%d] "
	dryRunWouldDeleteTemplateConstant      = "[DRY RUN] Would delete: %s\n"
	verboseDeletingTemplateConstant        = "Deleting repository: %s\n"
	deletionSucceededTemplateConstant      = "Successfully deleted: %s\n"
	deletionFailedTemplateConstant         = "Failed to delete: %s\n"

	journalSuccessTemplateConstant = "SUCCESS: Deleted repository %s"
	journalFailureTemplateConstant = "FAILED: Could not delete repository %s"
	journalSummaryTemplateConstant = "SUMMARY: Processed %d repositories, %d successful, %d failed"

	summaryHeaderMessageConstant   = "Deletion Summary:"
	summarySuccessTemplateConstant = "  Successfully processed: %d repositories\n"
	summaryFailureTemplateConstant = "  Failed to process: %d repositories\n"
	summaryTotalTemplateConstant   = "  Total processed: %d repositories\n"
	failuresHintTemplateConstant   = "Some operations failed. Check the log file: %s\n"
	batchCompletedMessageConstant  = "Batch deletion process completed!"
)

var (
	errGitHubCLIMissing      = errors.New("github cli is not installed")
	errNotAuthenticated      = errors.New("github authentication required")
	errScopeEscalationFailed = errors.New("delete_repo scope could not be granted")
	errNoValidRepositories   = errors.New("no valid repositories to delete")
)

func qualifiedRepositoryName(ownerName string, repositoryName string) string {
	return fmt.Sprintf(ownerRepositoryTemplateConstant, ownerName, repositoryName)
}
