package taxonomy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dnakit/seqtax/internal/taxdump"
)

// LoadTree builds a Tree from an NCBI taxonomy dump directory's three
// standard files: nodesPath (nodes.dmp), namesPath (names.dmp) and
// mergedPath (merged.dmp).
func LoadTree(nodesPath, namesPath, mergedPath string) (*Tree, error) {
	nodeLines, err := taxdump.ReadLines(nodesPath)
	if err != nil {
		return nil, err
	}
	records, err := parseNodes(nodeLines)
	if err != nil {
		return nil, err
	}

	nameLines, err := taxdump.ReadLines(namesPath)
	if err != nil {
		return nil, err
	}
	names, err := parseNames(nameLines)
	if err != nil {
		return nil, err
	}

	mergedLines, err := taxdump.ReadLines(mergedPath)
	if err != nil {
		return nil, err
	}
	merged, err := parseMerged(mergedLines)
	if err != nil {
		return nil, err
	}

	return NewTree(records, merged, names)
}

// nodeRecord is one parsed row of nodes.dmp, in file order.
type nodeRecord struct {
	TaxID       TaxID
	ParentTaxID TaxID
	Rank        string
}

// splitByDelimiter mirrors the fixed-column splitting the dump files need:
// NCBI separates fields with "\t|\t", and only the first maxCols columns
// are returned; the rest of the line is dropped. When a line has no more
// than maxCols columns, its trailing "\t|" terminator stays attached to
// the final column, which callers trim themselves.
func splitByDelimiter(line, delimiter string, maxCols int) []string {
	var result []string
	prev := 0
	for i := 0; i < maxCols; i++ {
		pos := strings.Index(line[prev:], delimiter)
		if pos < 0 {
			result = append(result, line[prev:])
			return result
		}
		pos += prev
		result = append(result, line[prev:pos])
		prev = pos + len(delimiter)
	}
	return result
}

// parseNodes parses the taxID, parent taxID and rank columns out of every
// line of a nodes.dmp file, in file order.
func parseNodes(lines []string) ([]nodeRecord, error) {
	records := make([]nodeRecord, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		fields := splitByDelimiter(line, "\t|\t", 3)
		if len(fields) < 3 {
			return nil, fmt.Errorf("taxonomy: nodes line %d: expected at least 3 columns, got %d", i+1, len(fields))
		}

		taxID, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: nodes line %d: invalid taxID: %w", i+1, err)
		}
		parentTaxID, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: nodes line %d: invalid parent taxID: %w", i+1, err)
		}

		records = append(records, nodeRecord{
			TaxID:       TaxID(taxID),
			ParentTaxID: TaxID(parentTaxID),
			Rank:        strings.TrimSpace(fields[2]),
		})
	}
	return records, nil
}

// parseMerged parses the old-taxID -> merged-into-taxID pairs of a
// merged.dmp file.
func parseMerged(lines []string) (map[TaxID]TaxID, error) {
	merged := make(map[TaxID]TaxID, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		fields := splitByDelimiter(line, "\t|\t", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("taxonomy: merged line %d: expected 2 columns, got %d", i+1, len(fields))
		}

		oldID, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: merged line %d: invalid old taxID: %w", i+1, err)
		}
		newID, err := strconv.ParseInt(strings.TrimSpace(strings.TrimSuffix(fields[1], "|")), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: merged line %d: invalid merged taxID: %w", i+1, err)
		}

		merged[TaxID(oldID)] = TaxID(newID)
	}
	return merged, nil
}

// parseNames parses the taxID -> scientific name pairs of a names.dmp
// file. Every other name class (synonym, common name, ...) is ignored.
func parseNames(lines []string) (map[TaxID]string, error) {
	names := make(map[TaxID]string)
	for i, line := range lines {
		if line == "" || !strings.Contains(line, "scientific name") {
			continue
		}

		fields := splitByDelimiter(line, "\t|\t", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("taxonomy: names line %d: expected 2 columns, got %d", i+1, len(fields))
		}

		taxID, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: names line %d: invalid taxID: %w", i+1, err)
		}

		names[TaxID(taxID)] = strings.TrimSpace(fields[1])
	}
	return names, nil
}
