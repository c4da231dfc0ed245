package codontable

import "strings"

// CodonSet is a read-only set of 3-character codons. Every codon supplied
// at construction is duplicated with each 'T' rewritten to 'U', so lookups
// succeed regardless of whether the caller's sequence is spelled in DNA or
// RNA.
type CodonSet struct {
	codons map[string]struct{}
}

// NewCodonSet builds a CodonSet from the given codons, expanding each one
// with its RNA alias.
func NewCodonSet(codons []string) CodonSet {
	set := CodonSet{codons: make(map[string]struct{}, len(codons)*2)}
	for _, c := range codons {
		set.codons[c] = struct{}{}
		set.codons[strings.ReplaceAll(c, "T", "U")] = struct{}{}
	}
	return set
}

// Contains reports whether codon is a member of the set.
func (s CodonSet) Contains(codon string) bool {
	_, ok := s.codons[codon]
	return ok
}

// Tables holds the read-only start/stop codon sets for one genetic code,
// as built by NewTables.
type Tables struct {
	Stop  CodonSet
	Start CodonSet
}

// NewTables builds the stop and start codon sets for requestedGenCode.
// The stop set always comes from the provider. The start set comes from
// the provider only when useAllTableStarts is set; otherwise it is the
// single codon ATG, per the classical "ATG-only" ORF-finding convention.
func NewTables(provider Provider, requestedGenCode int, useAllTableStarts bool) (Tables, error) {
	stopCodons, err := provider.StopCodons(requestedGenCode)
	if err != nil {
		return Tables{}, err
	}

	var startCodons []string
	if useAllTableStarts {
		startCodons, err = provider.StartCodons(requestedGenCode)
		if err != nil {
			return Tables{}, err
		}
	} else {
		startCodons = []string{"ATG"}
	}

	return Tables{
		Stop:  NewCodonSet(stopCodons),
		Start: NewCodonSet(startCodons),
	}, nil
}
