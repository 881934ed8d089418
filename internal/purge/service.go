package purge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	newlineConstant = "\n"

	serviceGitHubOperatorRequiredMessageConstant = "github operator must be provided"
	servicePrompterRequiredMessageConstant       = "line prompter must be provided"
	serviceJournalRequiredMessageConstant        = "journal must be provided"
)

// Service drives the purge workflow from prerequisite checks through summary.
type Service struct {
	github       GitHubOperator
	prompter     LinePrompter
	journal      Journal
	sleeper      Sleeper
	outputWriter io.Writer
	errorWriter  io.Writer
	journalPath  string
}

// NewService constructs a Service using the provided dependencies.
func NewService(githubOperator GitHubOperator, prompter LinePrompter, journal Journal, sleeper Sleeper, outputWriter io.Writer, errorWriter io.Writer, journalPath string) (*Service, error) {
	if githubOperator == nil {
		return nil, errors.New(serviceGitHubOperatorRequiredMessageConstant)
	}
	if prompter == nil {
		return nil, errors.New(servicePrompterRequiredMessageConstant)
	}
	if journal == nil {
		return nil, errors.New(serviceJournalRequiredMessageConstant)
	}
	if sleeper == nil {
		sleeper = SystemSleeper{}
	}
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	if errorWriter == nil {
		errorWriter = io.Discard
	}

	return &Service{
		github:       githubOperator,
		prompter:     prompter,
		journal:      journal,
		sleeper:      sleeper,
		outputWriter: outputWriter,
		errorWriter:  errorWriter,
		journalPath:  journalPath,
	}, nil
}

// Run executes the purge workflow according to the provided options.
// Operator cancellation (declined confirmation, empty selection, closed
// input) returns nil so the process exits zero; only precondition failures
// surface as errors.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	service.printLine(toolBannerMessageConstant)
	service.printLine(toolBannerSeparatorConstant)
	service.recordJournal(sessionStartJournalMessageConstant)

	if prerequisiteError := service.checkPrerequisites(executionContext); prerequisiteError != nil {
		return prerequisiteError
	}

	username := service.resolveUsername(executionContext, options.Username)

	username, targetRepositories, resolutionCancelled, resolutionError := service.resolveTargets(executionContext, username, options)
	if resolutionError != nil {
		return resolutionError
	}
	if resolutionCancelled {
		return nil
	}
	if len(targetRepositories) == 0 {
		service.printLine(noRepositoriesSpecifiedMessageConstant)
		return nil
	}

	outcome := BatchOutcome{}
	service.printLine(startingBatchMessageConstant)
	service.printf(totalRepositoriesTemplateConstant, len(targetRepositories))
	service.printBlankLine()

	validRepositories := service.validateRepositories(executionContext, username, targetRepositories, &outcome)
	if len(validRepositories) == 0 {
		service.printLine(noValidRepositoriesMessageConstant)
		return errNoValidRepositories
	}

	confirmed, confirmationError := service.confirmDeletion(username, validRepositories, options)
	if confirmationError != nil {
		return confirmationError
	}
	if !confirmed {
		return nil
	}

	if executionError := service.executeDeletions(executionContext, username, validRepositories, options, &outcome); executionError != nil {
		return executionError
	}

	service.reportSummary(outcome, options)
	return nil
}

// checkPrerequisites verifies the external client is installed, the session
// is authenticated, and the deletion scope is available, escalating scope
// once before giving up.
func (service *Service) checkPrerequisites(executionContext context.Context) error {
	if _, versionError := service.github.CheckVersion(executionContext); versionError != nil {
		service.printErrorLine(githubCLIMissingMessageConstant)
		service.printErrorLine(installHintHeaderConstant)
		service.printErrorLine(installHintWindowsConstant)
		service.printErrorLine(installHintMacOSConstant)
		service.printErrorLine(installHintLinuxConstant)
		return errGitHubCLIMissing
	}

	service.printLine(authCheckingMessageConstant)
	if authError := service.github.CheckAuthStatus(executionContext); authError != nil {
		service.printErrorLine(notAuthenticatedMessageConstant)
		service.printErrorLine(loginHintMessageConstant)
		return errNotAuthenticated
	}

	if scopeError := service.github.ProbeTokenScope(executionContext); scopeError != nil {
		service.printLine(scopeCheckingMessageConstant)
		if refreshError := service.github.RefreshAuthScope(executionContext, githubHostConstant, deleteScopeConstant); refreshError != nil {
			service.printErrorLine(scopeFailedMessageConstant)
			service.printErrorLine(scopeHintMessageConstant)
			return errScopeEscalationFailed
		}
	}

	service.printLine(authVerifiedMessageConstant)
	return nil
}

// resolveUsername returns the explicit username when supplied, otherwise the
// authenticated identity. Lookup failure is reported but not fatal; later
// validation simply fails against the empty owner.
func (service *Service) resolveUsername(executionContext context.Context, explicitUsername string) string {
	username := strings.TrimSpace(explicitUsername)
	if len(username) == 0 {
		resolvedUsername, lookupError := service.github.CurrentUser(executionContext)
		if lookupError != nil {
			service.printErrorLine(usernameResolveFailedMessageConstant)
		} else {
			username = resolvedUsername
		}
	}
	service.printf(usingUsernameTemplateConstant, username)
	return username
}

// resolveTargets layers the four input sources: JSON batch config, list
// file, positional arguments, then the interactive picker when the list is
// still empty or explicitly requested. The returned username reflects a
// batch-config override when present.
func (service *Service) resolveTargets(executionContext context.Context, username string, options CommandOptions) (string, []string, bool, error) {
	targetRepositories := []string{}

	if len(options.BatchConfigPath) > 0 {
		batchConfig, configError := LoadBatchConfig(options.BatchConfigPath)
		if configError != nil {
			return username, nil, false, configError
		}
		if len(strings.TrimSpace(batchConfig.Username)) > 0 {
			username = strings.TrimSpace(batchConfig.Username)
		}
		if len(batchConfig.Repositories) > 0 {
			targetRepositories = batchConfig.Repositories
		}
		service.printf(batchConfigLoadedTemplateConstant, options.BatchConfigPath)
	}

	if len(options.ListFilePath) > 0 {
		listedRepositories, listError := LoadRepositoryListFile(options.ListFilePath)
		if listError != nil {
			return username, nil, false, listError
		}
		targetRepositories = listedRepositories
		service.printf(listFileLoadedTemplateConstant, len(listedRepositories), options.ListFilePath)
	}

	targetRepositories = append(targetRepositories, options.Repositories...)

	if options.Interactive || len(targetRepositories) == 0 {
		selectedRepositories, selectionCancelled, selectionError := service.selectInteractively(executionContext, username)
		if selectionError != nil {
			return username, nil, false, selectionError
		}
		if selectionCancelled {
			return username, nil, true, nil
		}
		targetRepositories = selectedRepositories
	}

	return username, targetRepositories, false, nil
}

// validateRepositories keeps candidates that exist and are accessible,
// counting the rest as failures without stopping the batch. Order is
// preserved and duplicates are not collapsed.
func (service *Service) validateRepositories(executionContext context.Context, username string, targetRepositories []string, outcome *BatchOutcome) []string {
	validRepositories := make([]string, 0, len(targetRepositories))
	for _, repositoryName := range targetRepositories {
		qualifiedName := qualifiedRepositoryName(username, repositoryName)
		accessible, accessError := service.github.RepositoryAccessible(executionContext, qualifiedName)
		if accessError != nil {
			accessible = false
		}
		if accessible {
			validRepositories = append(validRepositories, repositoryName)
			continue
		}
		service.printf(inaccessibleRepositoryTemplateConstant, qualifiedName)
		outcome.FailedDeletions++
	}
	return validRepositories
}

// confirmDeletion lists the validated repositories and requires the exact
// confirmation phrase unless auto-confirm is set. Any other input, or a
// closed input stream, cancels the run.
func (service *Service) confirmDeletion(username string, validRepositories []string, options CommandOptions) (bool, error) {
	if options.AutoConfirm {
		return true, nil
	}

	service.printLine(repositoriesToDeleteHeaderConstant)
	for _, repositoryName := range validRepositories {
		service.printf(repositoryListItemTemplateConstant, qualifiedRepositoryName(username, repositoryName))
	}
	service.printBlankLine()

	if !options.DryRun {
		service.printLine(irreversibleWarningMessageConstant)
		service.printLine(backupWarningMessageConstant)
		service.printBlankLine()
	}

	confirmationInput, inputAvailable, promptError := service.prompter.PromptLine(confirmationPromptConstant)
	if promptError != nil {
		return false, promptError
	}
	if !inputAvailable || confirmationInput != confirmationPhraseConstant {
		service.printLine(operationCancelledMessageConstant)
		return false, nil
	}

	return true, nil
}

// executeDeletions deletes each validated repository in order, pacing with
// the configured delay. A cancelled context stops the batch between
// repositories.
func (service *Service) executeDeletions(executionContext context.Context, username string, validRepositories []string, options CommandOptions, outcome *BatchOutcome) error {
	service.printBlankLine()
	service.printLine(processingDeletionsMessageConstant)

	for repositoryIndex, repositoryName := range validRepositories {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		service.printf(deletionProgressPrefixTemplateConstant, repositoryIndex+1, len(validRepositories))
		qualifiedName := qualifiedRepositoryName(username, repositoryName)

		if options.DryRun {
			service.printf(dryRunWouldDeleteTemplateConstant, qualifiedName)
			outcome.SuccessfulDeletions++
			service.sleeper.Sleep(options.DeleteDelay)
			continue
		}

		if options.Verbose {
			service.printf(verboseDeletingTemplateConstant, qualifiedName)
		}

		if deletionError := service.github.DeleteRepository(executionContext, qualifiedName); deletionError != nil {
			service.printf(deletionFailedTemplateConstant, qualifiedName)
			service.recordJournal(fmt.Sprintf(journalFailureTemplateConstant, qualifiedName))
			outcome.FailedDeletions++
		} else {
			service.printf(deletionSucceededTemplateConstant, qualifiedName)
			service.recordJournal(fmt.Sprintf(journalSuccessTemplateConstant, qualifiedName))
			outcome.SuccessfulDeletions++
		}

		service.sleeper.Sleep(options.DeleteDelay)
	}

	return nil
}

// reportSummary prints aggregate counts and appends the summary journal line
// outside dry-run mode. Failures are reported, not propagated.
func (service *Service) reportSummary(outcome BatchOutcome, options CommandOptions) {
	service.printBlankLine()
	service.printLine(summaryHeaderMessageConstant)
	service.printf(summarySuccessTemplateConstant, outcome.SuccessfulDeletions)
	service.printf(summaryFailureTemplateConstant, outcome.FailedDeletions)
	service.printf(summaryTotalTemplateConstant, outcome.TotalProcessed())

	if !options.DryRun {
		service.recordJournal(fmt.Sprintf(journalSummaryTemplateConstant, outcome.TotalProcessed(), outcome.SuccessfulDeletions, outcome.FailedDeletions))
	}

	if outcome.FailedDeletions > 0 {
		service.printBlankLine()
		service.printf(failuresHintTemplateConstant, service.journalPath)
	}

	service.printLine(batchCompletedMessageConstant)
}

func (service *Service) printLine(message string) {
	fmt.Fprint(service.outputWriter, message+newlineConstant)
}

func (service *Service) printErrorLine(message string) {
	fmt.Fprint(service.errorWriter, message+newlineConstant)
}

func (service *Service) printf(template string, arguments ...any) {
	fmt.Fprintf(service.outputWriter, template, arguments...)
}

func (service *Service) printBlankLine() {
	fmt.Fprint(service.outputWriter, newlineConstant)
}

func (service *Service) recordJournal(message string) {
	if recordError := service.journal.Record(message); recordError != nil {
		service.printErrorLine(recordError.Error())
	}
}
