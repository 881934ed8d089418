package purge

import (
	"fmt"
	"os"
)

const (
	journalTimestampLayoutConstant    = "2006-01-02 15:04:05"
	journalLineTemplateConstant       = "%s - %s\n"
	journalFileModeConstant           = 0o644
	journalOpenErrorTemplateConstant  = "failed to open journal %s: %w"
	journalWriteErrorTemplateConstant = "failed to append journal entry: %w"
)

// FileJournal appends timestamped entries to a log file, creating it on first use.
type FileJournal struct {
	filePath string
	clock    Clock
}

// NewFileJournal constructs a FileJournal writing to the provided path.
func NewFileJournal(filePath string, clock Clock) *FileJournal {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FileJournal{filePath: filePath, clock: clock}
}

// Record appends a single timestamped line to the journal file.
func (journal *FileJournal) Record(message string) error {
	journalFile, openError := os.OpenFile(journal.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, journalFileModeConstant)
	if openError != nil {
		return fmt.Errorf(journalOpenErrorTemplateConstant, journal.filePath, openError)
	}
	defer journalFile.Close()

	timestamp := journal.clock.Now().Format(journalTimestampLayoutConstant)
	_, writeError := fmt.Fprintf(journalFile, journalLineTemplateConstant, timestamp, message)
	if writeError != nil {
		return fmt.Errorf(journalWriteErrorTemplateConstant, writeError)
	}
	return nil
}
