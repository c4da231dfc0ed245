// Package taxdump reads the flat, pipe-delimited dump files NCBI ships in
// its taxonomy archive (nodes.dmp, names.dmp, merged.dmp).
package taxdump

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines reads path into memory and splits it into lines, the way
// internal/orfio reads a FASTA file elsewhere in this module. A trailing
// blank line from the file's final newline is dropped.
func ReadLines(path string) ([]string, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxdump: failed to open %s: %w", path, err)
	}

	lines := strings.Split(string(dat), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
