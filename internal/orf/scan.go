package orf

import "github.com/dnakit/seqtax/internal/codontable"

const numFrames = 3

// frameState is the per-phase bookkeeping the scanner threads through its
// single pass over the buffer. Three of these live side by side so that
// every byte is visited exactly once regardless of how many frames are
// selected.
type frameState struct {
	insideOrf     bool
	hasStartCodon bool
	from          int
	countGaps     int
	countLength   int
}

// Scan runs the three-interleaved-state-machine ORF scan over buffer,
// honoring frameMask, startMode, minLength/maxLength (in codons) and
// maxGaps. strand is stamped onto every emitted location; it does not
// affect which buffer is read — callers scan the reverse-complement
// buffer themselves by passing it in with strand = StrandMinus.
func Scan(buffer []byte, tables codontable.Tables, minLength, maxLength, maxGaps int, frameMask FrameMask, startMode StartMode, strand Strand) []SequenceLocation {
	length := len(buffer)
	var results []SequenceLocation

	frames := [numFrames]frameState{}
	for f := 0; f < numFrames; f++ {
		frames[f] = frameState{insideOrf: true, from: f}
	}

	if length < numFrames {
		return results
	}

	for i := 0; i <= length-numFrames; i += numFrames {
		for position := i; position < i+numFrames && position <= length-numFrames; position++ {
			phase := position % numFrames
			if !frameMask.Has(phase) {
				continue
			}

			state := &frames[phase]
			codon := buffer[position : position+numFrames]

			isLast := !isIncomplete(length, position) && isIncomplete(length, position+numFrames)

			var shouldStart bool
			switch startMode {
			case StartToStop:
				shouldStart = !state.insideOrf && tables.Start.Contains(string(codon))
			case AnyToStop:
				shouldStart = !state.insideOrf
			case LastStartToStop:
				shouldStart = tables.Start.Contains(string(codon))
			}

			if shouldStart && !isLast {
				state.insideOrf = true
				state.hasStartCodon = true
				state.from = position
				state.countGaps = 0
				state.countLength = 0
			}

			if state.insideOrf {
				state.countLength++
				if isGapOrN(codon) {
					state.countGaps++
				}
			}

			stop := tables.Stop.Contains(string(codon))
			if state.insideOrf && (stop || isLast) {
				state.insideOrf = false

				to := position
				if isLast {
					to = position + numFrames
				}

				if to == state.from {
					continue
				}

				if state.countGaps > maxGaps || state.countLength > maxLength || state.countLength <= minLength {
					continue
				}

				results = append(results, SequenceLocation{
					From:               state.from,
					To:                 to,
					HasIncompleteStart: !state.hasStartCodon,
					HasIncompleteEnd:   !stop,
					Strand:             strand,
				})
			}
		}
	}

	return results
}

// isIncomplete reports whether the codon starting at pos runs past the
// end of a buffer of the given length.
func isIncomplete(length, pos int) bool {
	return pos+numFrames > length
}

// isGapOrN reports whether any byte of codon is an explicit gap marker
// ('N') or lies outside the IUPAC alphabet entirely.
func isGapOrN(codon []byte) bool {
	for _, c := range codon {
		if c == 'N' || complement[c] == 0 {
			return true
		}
	}
	return false
}
