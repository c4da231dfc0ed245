package orf

import (
	"fmt"
)

// complement holds the IUPAC complement of every upper-case DNA/RNA
// letter. A zero byte marks a base with no defined complement.
var complement = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'U': 'A',
	'N': 'N', 'S': 'S', 'W': 'W',
	'R': 'Y', 'Y': 'R', 'K': 'M', 'M': 'K', 'B': 'V', 'D': 'H', 'H': 'D', 'V': 'B',
}

// Buffer owns the uppercased forward strand of a nucleotide sequence and
// its reverse complement. It is the finder's only mutable state: setting a
// new sequence releases whatever buffers it already held.
type Buffer struct {
	forward, reverse []byte
}

// SetSequence replaces the buffer's contents. Sequences shorter than 3
// bases, or containing any byte without a defined IUPAC complement, are
// rejected and leave the buffer empty.
func (b *Buffer) SetSequence(seq []byte) error {
	b.forward = nil
	b.reverse = nil

	if len(seq) < 3 {
		return fmt.Errorf("orf: sequence too short: %d bases, need at least 3", len(seq))
	}

	forward := make([]byte, len(seq))
	for i, c := range seq {
		forward[i] = toUpper(c)
	}

	reverse := make([]byte, len(forward))
	for i := range forward {
		c := complement[forward[len(forward)-1-i]]
		if c == 0 {
			return fmt.Errorf("orf: base %q at position %d has no defined complement", forward[len(forward)-1-i], len(forward)-1-i)
		}
		reverse[i] = c
	}

	b.forward = forward
	b.reverse = reverse
	return nil
}

// Len returns the length, in bases, of the held sequence, or 0 if none is
// held.
func (b *Buffer) Len() int {
	return len(b.forward)
}

// Strand returns the raw bytes for the requested strand, or nil if no
// sequence is held.
func (b *Buffer) Strand(s Strand) []byte {
	if s == StrandMinus {
		return b.reverse
	}
	return b.forward
}

// View returns the bytes covered by location, which must satisfy
// to > from and to <= Len().
func (b *Buffer) View(location SequenceLocation) ([]byte, error) {
	if location.To <= location.From {
		return nil, fmt.Errorf("orf: invalid location [%d, %d)", location.From, location.To)
	}
	buf := b.Strand(location.Strand)
	if buf == nil {
		return nil, fmt.Errorf("orf: no sequence loaded")
	}
	if location.To > len(buf) {
		return nil, fmt.Errorf("orf: location [%d, %d) exceeds buffer length %d", location.From, location.To, len(buf))
	}
	return buf[location.From:location.To], nil
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
