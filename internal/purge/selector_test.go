package purge_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aaron-official/repo-nuke/internal/purge"
)

func TestInteractiveSelection(testInstance *testing.T) {
	listedRepositories := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	testCases := []struct {
		name              string
		selectionInput    string
		closedStream      bool
		expectedDeletions []string
		expectedWarnings  []string
		expectCancelled   bool
	}{
		{
			name:              "all_selects_everything_in_order",
			selectionInput:    "all",
			expectedDeletions: []string{"octocat/alpha", "octocat/beta", "octocat/gamma", "octocat/delta", "octocat/epsilon"},
		},
		{
			name:              "all_is_case_insensitive",
			selectionInput:    "ALL",
			expectedDeletions: []string{"octocat/alpha", "octocat/beta", "octocat/gamma", "octocat/delta", "octocat/epsilon"},
		},
		{
			name:              "indices_with_invalid_tokens",
			selectionInput:    "1 3 99 abc",
			expectedDeletions: []string{"octocat/alpha", "octocat/gamma"},
			expectedWarnings:  []string{"Skipping invalid selection: 99", "Skipping invalid selection: abc"},
		},
		{
			name:            "empty_selection_cancels",
			selectionInput:  "",
			expectCancelled: true,
		},
		{
			name:            "closed_stream_cancels",
			closedStream:    true,
			expectCancelled: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			operator := &fakeGitHubOperator{
				currentUser:            resolvedUsernameConstant,
				listedRepositories:     listedRepositories,
				accessibleRepositories: accessibleSet(testCase.expectedDeletions...),
			}
			prompter := &scriptedPrompter{closedStream: testCase.closedStream}
			if !testCase.closedStream {
				prompter.responses = []string{testCase.selectionInput, confirmationPhraseConstant}
			}
			journal := &recordingJournal{}
			sleeper := &countingSleeper{}
			outputBuffer := &bytes.Buffer{}

			service := newServiceForTest(subtestInstance, operator, prompter, journal, sleeper, outputBuffer)
			runError := service.Run(context.Background(), purge.CommandOptions{Interactive: true})

			require.NoError(subtestInstance, runError)
			renderedOutput := outputBuffer.String()
			if testCase.expectCancelled {
				require.Empty(subtestInstance, operator.deletedRepositories)
				return
			}
			require.Equal(subtestInstance, testCase.expectedDeletions, operator.deletedRepositories)
			for _, expectedWarning := range testCase.expectedWarnings {
				require.Contains(subtestInstance, renderedOutput, expectedWarning)
			}
		})
	}
}

func TestInteractivePickerUsedWhenNoTargetsResolved(testInstance *testing.T) {
	operator := &fakeGitHubOperator{
		currentUser:            resolvedUsernameConstant,
		listedRepositories:     []string{"alpha"},
		accessibleRepositories: accessibleSet("octocat/alpha"),
	}
	prompter := &scriptedPrompter{responses: []string{"1", confirmationPhraseConstant}}
	journal := &recordingJournal{}
	sleeper := &countingSleeper{}
	outputBuffer := &bytes.Buffer{}

	service := newServiceForTest(testInstance, operator, prompter, journal, sleeper, outputBuffer)
	runError := service.Run(context.Background(), purge.CommandOptions{})

	require.NoError(testInstance, runError)
	require.Contains(testInstance, outputBuffer.String(), "  1) alpha")
	require.Equal(testInstance, []string{"octocat/alpha"}, operator.deletedRepositories)
}

func TestInteractivePickerEmptyListingExitsNeutrally(testInstance *testing.T) {
	operator := &fakeGitHubOperator{currentUser: resolvedUsernameConstant}
	prompter := &scriptedPrompter{}
	journal := &recordingJournal{}
	sleeper := &countingSleeper{}
	outputBuffer := &bytes.Buffer{}

	service := newServiceForTest(testInstance, operator, prompter, journal, sleeper, outputBuffer)
	runError := service.Run(context.Background(), purge.CommandOptions{Interactive: true})

	require.NoError(testInstance, runError)
	require.Contains(testInstance, outputBuffer.String(), "No repositories found for user: octocat")
	require.Empty(testInstance, prompter.promptsReceived)
	require.Empty(testInstance, operator.deletedRepositories)
}
