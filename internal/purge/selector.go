package purge

import (
	"context"
	"strconv"
	"strings"
)

// selectInteractively fetches the user's repositories and prompts for a
// numbered selection. The boolean reports cancellation: an empty listing,
// empty selection, or closed input stream ends the run without error.
func (service *Service) selectInteractively(executionContext context.Context, username string) ([]string, bool, error) {
	service.printLine(interactiveHeaderMessageConstant)
	service.printLine(availableRepositoriesMessageConstant)
	service.printLine(fetchingRepositoriesMessageConstant)

	availableRepositories, listingError := service.github.ListRepositories(executionContext, username, repositoryListLimitConstant)
	if listingError != nil {
		availableRepositories = nil
	}

	if len(availableRepositories) == 0 {
		service.printf(noRepositoriesForUserTemplateConstant, username)
		return nil, true, nil
	}

	service.printBlankLine()
	for listingIndex, repositoryName := range availableRepositories {
		service.printf(repositoryListingRowTemplateConstant, listingIndex+1, repositoryName)
	}
	service.printBlankLine()
	service.printLine(selectionPromptMessageConstant)
	service.printLine(selectionAllHintMessageConstant)

	selectionInput, inputAvailable, promptError := service.prompter.PromptLine("")
	if promptError != nil {
		return nil, false, promptError
	}
	if !inputAvailable {
		service.printLine(operationCancelledMessageConstant)
		return nil, true, nil
	}

	selectedRepositories := resolveSelection(service, strings.TrimSpace(selectionInput), availableRepositories)
	if len(selectedRepositories) == 0 {
		service.printLine(noSelectionMessageConstant)
		return nil, true, nil
	}

	return selectedRepositories, false, nil
}

// resolveSelection interprets the selection line: the literal token "all"
// (case-insensitive) selects every listed repository, otherwise each
// space-separated token is a 1-based index. Out-of-range or non-numeric
// tokens are skipped with a warning.
func resolveSelection(service *Service, selectionInput string, availableRepositories []string) []string {
	if strings.EqualFold(selectionInput, allSelectionTokenConstant) {
		return availableRepositories
	}

	selectedRepositories := []string{}
	for _, selectionToken := range strings.Fields(selectionInput) {
		selectedNumber, parseError := strconv.Atoi(selectionToken)
		if parseError != nil || selectedNumber < 1 || selectedNumber > len(availableRepositories) {
			service.printf(skippingInvalidSelectionTemplateConstant, selectionToken)
			continue
		}
		selectedRepositories = append(selectedRepositories, availableRepositories[selectedNumber-1])
	}
	return selectedRepositories
}
