package orf

import (
	"fmt"
	"strconv"
	"strings"
)

const headerPrefix = "[Orf:"

// FormatHeader renders location as the persisted descriptor
// "[Orf: id, from, to, strand, hasIncompleteStart, hasIncompleteEnd]", the
// inverse of ParseHeader.
func FormatHeader(location SequenceLocation) string {
	return fmt.Sprintf("[Orf: %d, %d, %d, %d, %d, %d]",
		location.ID,
		location.From,
		location.To,
		int(location.Strand),
		boolToInt(location.HasIncompleteStart),
		boolToInt(location.HasIncompleteEnd),
	)
}

// ParseHeader decodes a SequenceLocation out of a line that somewhere
// contains a "[Orf: id, from, to, strand, hasIncompleteStart,
// hasIncompleteEnd]" descriptor. Any surrounding text (e.g. the rest of a
// FASTA header) is ignored. Fewer than five recognizable fields is fatal.
func ParseHeader(line string) (SequenceLocation, error) {
	start := strings.Index(line, headerPrefix)
	if start < 0 {
		return SequenceLocation{}, fmt.Errorf("orf: could not find Orf information in header %q", line)
	}

	rest := line[start+len(headerPrefix):]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return SequenceLocation{}, fmt.Errorf("orf: could not parse Orf header %q: missing closing ']'", line)
	}
	rest = rest[:end]

	fields := strings.Split(rest, ",")
	values := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			break
		}
		values = append(values, v)
	}

	if len(values) < 5 {
		return SequenceLocation{}, fmt.Errorf("orf: could not parse Orf %q: expected at least 5 fields, got %d", line, len(values))
	}

	loc := SequenceLocation{
		HasID:              true,
		ID:                 uint32(values[0]),
		From:               int(values[1]),
		To:                 int(values[2]),
		Strand:             Strand(values[3]),
		HasIncompleteStart: values[4] != 0,
	}
	if len(values) >= 6 {
		loc.HasIncompleteEnd = values[5] != 0
	}
	return loc, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
