package orf

import "github.com/dnakit/seqtax/internal/codontable"

// Finder owns a sequence buffer and a fixed codon table, and drives the
// scanner across both strands. One Finder is meant to be reused across
// many sequences via SetSequence; it must not be shared across goroutines
// while SetSequence is being called, since SetSequence replaces the
// buffers that View and FindAll read.
type Finder struct {
	buffer Buffer
	tables codontable.Tables
}

// NewFinder builds a Finder for the requested genetic code.
func NewFinder(provider codontable.Provider, geneticCode int, useAllTableStarts bool) (*Finder, error) {
	tables, err := codontable.NewTables(provider, geneticCode, useAllTableStarts)
	if err != nil {
		return nil, err
	}
	return &Finder{tables: tables}, nil
}

// SetSequence loads a new sequence into the finder, releasing whatever was
// held before. See Buffer.SetSequence for the validation rules.
func (f *Finder) SetSequence(seq []byte) error {
	return f.buffer.SetSequence(seq)
}

// View returns the raw bytes spanned by location.
func (f *Finder) View(location SequenceLocation) ([]byte, error) {
	return f.buffer.View(location)
}

// FindAll scans the forward and/or reverse-complement buffers, as
// selected by forwardFrames/reverseFrames, and returns every ORF that
// survives the length and gap filters.
func (f *Finder) FindAll(minLength, maxLength, maxGaps int, forwardFrames, reverseFrames FrameMask, startMode StartMode) []SequenceLocation {
	var results []SequenceLocation

	if forwardFrames != 0 {
		results = append(results, Scan(f.buffer.Strand(StrandPlus), f.tables, minLength, maxLength, maxGaps, forwardFrames, startMode, StrandPlus)...)
	}
	if reverseFrames != 0 {
		results = append(results, Scan(f.buffer.Strand(StrandMinus), f.tables, minLength, maxLength, maxGaps, reverseFrames, startMode, StrandMinus)...)
	}

	return results
}
