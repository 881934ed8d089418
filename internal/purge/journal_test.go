package purge_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aaron-official/repo-nuke/internal/purge"
)

type fixedClock struct {
	moment time.Time
}

func (clock fixedClock) Now() time.Time {
	return clock.moment
}

func TestFileJournalRecord(testInstance *testing.T) {
	journalPath := filepath.Join(testInstance.TempDir(), "journal.log")
	clock := fixedClock{moment: time.Date(2026, time.August, 30, 14, 5, 9, 0, time.UTC)}

	journal := purge.NewFileJournal(journalPath, clock)
	require.NoError(testInstance, journal.Record("SUCCESS: Deleted repository octocat/alpha"))
	require.NoError(testInstance, journal.Record("SUMMARY: Processed 1 repositories, 1 successful, 0 failed"))

	journalContent, readError := os.ReadFile(journalPath)
	require.NoError(testInstance, readError)
	expectedContent := "2026-08-30 14:05:09 - SUCCESS: Deleted repository octocat/alpha\n" +
		"2026-08-30 14:05:09 - SUMMARY: Processed 1 repositories, 1 successful, 0 failed\n"
	require.Equal(testInstance, expectedContent, string(journalContent))
}

func TestFileJournalAppendsAcrossInstances(testInstance *testing.T) {
	journalPath := filepath.Join(testInstance.TempDir(), "journal.log")
	clock := fixedClock{moment: time.Date(2026, time.August, 30, 14, 5, 9, 0, time.UTC)}

	firstJournal := purge.NewFileJournal(journalPath, clock)
	require.NoError(testInstance, firstJournal.Record("first"))

	secondJournal := purge.NewFileJournal(journalPath, clock)
	require.NoError(testInstance, secondJournal.Record("second"))

	journalContent, readError := os.ReadFile(journalPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "2026-08-30 14:05:09 - first\n2026-08-30 14:05:09 - second\n", string(journalContent))
}

func TestFileJournalUnwritablePath(testInstance *testing.T) {
	journalPath := filepath.Join(testInstance.TempDir(), "missing-directory", "journal.log")

	journal := purge.NewFileJournal(journalPath, nil)
	require.Error(testInstance, journal.Record("entry"))
}
