package purge_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aaron-official/repo-nuke/internal/purge"
)

func TestIOLinePrompter(testInstance *testing.T) {
	testCases := []struct {
		name             string
		input            string
		expectedResponse string
		expectAvailable  bool
	}{
		{
			name:             "plain_line",
			input:            "DELETE\n",
			expectedResponse: "DELETE",
			expectAvailable:  true,
		},
		{
			name:             "windows_line_ending",
			input:            "DELETE\r\n",
			expectedResponse: "DELETE",
			expectAvailable:  true,
		},
		{
			name:             "line_without_trailing_newline",
			input:            "all",
			expectedResponse: "all",
			expectAvailable:  true,
		},
		{
			name:             "interior_whitespace_preserved",
			input:            "1 3 99 abc\n",
			expectedResponse: "1 3 99 abc",
			expectAvailable:  true,
		},
		{
			name:            "closed_stream",
			input:           "",
			expectAvailable: false,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			prompter := purge.NewIOLinePrompter(strings.NewReader(testCase.input), outputBuffer)

			response, inputAvailable, promptError := prompter.PromptLine("confirm: ")
			require.NoError(subtestInstance, promptError)
			require.Equal(subtestInstance, "confirm: ", outputBuffer.String())
			require.Equal(subtestInstance, testCase.expectAvailable, inputAvailable)
			if testCase.expectAvailable {
				require.Equal(subtestInstance, testCase.expectedResponse, response)
			}
		})
	}
}
