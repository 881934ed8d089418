package purge

import (
	"bufio"
	"io"
	"strings"
)

// IOLinePrompter reads operator responses from an io.Reader.
type IOLinePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOLinePrompter constructs a prompter from the provided reader and writer.
func NewIOLinePrompter(input io.Reader, output io.Writer) *IOLinePrompter {
	return &IOLinePrompter{reader: bufio.NewReader(input), writer: output}
}

// PromptLine writes the prompt and returns the next input line without its
// trailing newline. The boolean is false when the stream ends before any
// input arrives, which callers treat as a cancelled prompt.
func (prompter *IOLinePrompter) PromptLine(prompt string) (string, bool, error) {
	if prompter.writer != nil {
		if _, writeError := io.WriteString(prompter.writer, prompt); writeError != nil {
			return "", false, writeError
		}
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return "", false, readError
	}
	if readError == io.EOF && len(response) == 0 {
		return "", false, nil
	}

	return strings.TrimSuffix(strings.TrimSuffix(response, "\n"), "\r"), true, nil
}
