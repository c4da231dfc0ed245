// Package orfio reads the FASTA-formatted nucleotide records the ORF
// finder scans, and writes its results back out the same way.
package orfio

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Record is one FASTA entry: a header line (without its leading '>')
// and its concatenated, whitespace-stripped sequence.
type Record struct {
	ID  string
	Seq string
}

var unwantedChars = regexp.MustCompile(`(?i)[^acgtu]`)

// ReadFASTA reads every record out of a FASTA file. Characters outside
// the strict [ACGTUacgtu] alphabet are dropped from the sequence body,
// leaving header-line handling as the caller's only IUPAC-awareness
// concern once records reach the ORF finder.
func ReadFASTA(path string) ([]Record, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("orfio: failed to open %s: %w", path, err)
	}

	lines := strings.Split(string(dat), "\n")

	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.TrimSpace(line[1:]))
		}
	}
	if len(headerIndices) == 0 {
		return nil, fmt.Errorf("orfio: %s contains no FASTA records", path)
	}

	records := make([]Record, len(headerIndices))
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seq := unwantedChars.ReplaceAllString(strings.Join(lines[headerIndex+1:nextLine], ""), "")
		records[i] = Record{ID: ids[i], Seq: seq}
	}
	return records, nil
}

// WriteFASTA writes records to path, wrapping each sequence at 70
// characters the way NCBI FASTA output does.
func WriteFASTA(path string, records []Record) error {
	var b strings.Builder
	for _, r := range records {
		b.WriteByte('>')
		b.WriteString(r.ID)
		b.WriteByte('\n')
		for i := 0; i < len(r.Seq); i += 70 {
			end := i + 70
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			b.WriteString(r.Seq[i:end])
			b.WriteByte('\n')
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("orfio: failed to write %s: %w", path, err)
	}
	return nil
}
