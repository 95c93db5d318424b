/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fasta.go
Description: FASTA ingestion for the Akaylee Fold CLI. Parses multi-record
FASTA text into (header, sequence) records and derives filesystem-safe
sequence identifiers for output files.
*/

package fasta

import (
	"bufio"
	"regexp"
	"strings"
)

// Record is one FASTA entry: the header text without the '>' marker and the
// concatenated, upper-cased sequence lines.
type Record struct {
	ID  string
	Seq string
}

// Parse reads FASTA text into records. Blank lines are skipped, sequence
// lines are upper-cased and concatenated across line breaks. Content before
// the first header is ignored.
func Parse(content string) []Record {
	var (
		records []Record
		header  string
		seq     strings.Builder
		open    bool
	)

	flush := func() {
		if open {
			records = append(records, Record{ID: header, Seq: seq.String()})
			seq.Reset()
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			header = strings.TrimSpace(line[1:])
			open = true
			continue
		}
		if open {
			seq.WriteString(strings.ToUpper(line))
		}
	}
	flush()

	return records
}

var unsafeID = regexp.MustCompile(`[^\w.-]`)

// SafeID converts a sequence identifier to a filesystem-safe string.
func SafeID(seqID string) string {
	return strings.Trim(unsafeID.ReplaceAllString(seqID, "_"), "_")
}
