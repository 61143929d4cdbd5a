// Package source ingests the candidate set from a line-oriented stream.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Stats summarises one ingestion pass.
type Stats struct {
	Lines   int
	Dropped int
}

// ReadLines reads r to end of stream and returns one candidate per line.
// Line terminators (\n or \r\n) are stripped and a final unterminated line is
// kept. Lines that are not valid UTF-8 are dropped rather than aborting the
// read. Any read error other than io.EOF is returned with the lines collected
// so far.
func ReadLines(r io.Reader) ([]string, Stats, error) {
	var (
		lines []string
		stats Stats
	)
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			stats.Lines++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if utf8.ValidString(line) {
				lines = append(lines, line)
			} else {
				stats.Dropped++
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, stats, nil
			}
			return lines, stats, fmt.Errorf("read candidates: %w", err)
		}
	}
}
