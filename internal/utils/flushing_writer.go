package utils

import (
	"bufio"
	"io"
	"sync"
)

// FlushingWriter wraps a writer with a buffered writer that flushes after every write.
type FlushingWriter struct {
	bufferedWriter *bufio.Writer
	writeMutex     sync.Mutex
}

// NewFlushingWriter creates a FlushingWriter over the provided destination writer.
func NewFlushingWriter(destinationWriter io.Writer) *FlushingWriter {
	return &FlushingWriter{bufferedWriter: bufio.NewWriter(destinationWriter)}
}

// Write writes the payload and flushes the underlying buffer immediately.
func (writer *FlushingWriter) Write(payload []byte) (int, error) {
	writer.writeMutex.Lock()
	defer writer.writeMutex.Unlock()

	writtenBytes, writeError := writer.bufferedWriter.Write(payload)
	if writeError != nil {
		return writtenBytes, writeError
	}
	flushError := writer.bufferedWriter.Flush()
	if flushError != nil {
		return writtenBytes, flushError
	}
	return writtenBytes, nil
}
