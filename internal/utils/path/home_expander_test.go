package path_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/aaron-official/repo-nuke/internal/utils/path"
)

const (
	bareTildeTestCaseNameConstant     = "bare_tilde"
	tildePrefixTestCaseNameConstant   = "tilde_prefix"
	absolutePathTestCaseNameConstant  = "absolute_path_unchanged"
	relativePathTestCaseNameConstant  = "relative_path_unchanged"
	embeddedTildeTestCaseNameConstant = "embedded_tilde_unchanged"
	journalRelativePathConstant       = ".reponuke.log"
	absoluteSamplePathConstant        = "/var/log/reponuke.log"
	relativeSamplePathConstant        = "logs/reponuke.log"
	embeddedTildeSamplePathConstant   = "/tmp/~backup/file"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	homeDirectory, homeError := os.UserHomeDir()
	require.NoError(testInstance, homeError)

	testCases := []struct {
		name          string
		candidatePath string
		expectedPath  string
	}{
		{
			name:          bareTildeTestCaseNameConstant,
			candidatePath: "~",
			expectedPath:  homeDirectory,
		},
		{
			name:          tildePrefixTestCaseNameConstant,
			candidatePath: "~/" + journalRelativePathConstant,
			expectedPath:  filepath.Join(homeDirectory, journalRelativePathConstant),
		},
		{
			name:          absolutePathTestCaseNameConstant,
			candidatePath: absoluteSamplePathConstant,
			expectedPath:  absoluteSamplePathConstant,
		},
		{
			name:          relativePathTestCaseNameConstant,
			candidatePath: relativeSamplePathConstant,
			expectedPath:  relativeSamplePathConstant,
		},
		{
			name:          embeddedTildeTestCaseNameConstant,
			candidatePath: embeddedTildeSamplePathConstant,
			expectedPath:  embeddedTildeSamplePathConstant,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			homeExpander := pathutils.NewHomeExpander()
			expandedPath := homeExpander.Expand(testCase.candidatePath)
			require.Equal(subtestInstance, testCase.expectedPath, expandedPath)
		})
	}
}
