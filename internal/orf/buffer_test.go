package orf

import "testing"

func Test_Buffer_SetSequence_rejectsShortSequence(t *testing.T) {
	var b Buffer
	if err := b.SetSequence([]byte("AT")); err == nil {
		t.Fatal("SetSequence() error = nil, want error for a 2-base sequence")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after a rejected SetSequence", b.Len())
	}
}

func Test_Buffer_SetSequence_rejectsUndefinedBase(t *testing.T) {
	var b Buffer
	if err := b.SetSequence([]byte("ATGXAA")); err == nil {
		t.Fatal("SetSequence() error = nil, want error for base 'X'")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after a rejected SetSequence", b.Len())
	}
}

func Test_Buffer_SetSequence_upperCasesInput(t *testing.T) {
	var b Buffer
	if err := b.SetSequence([]byte("atgAAAtaa")); err != nil {
		t.Fatalf("SetSequence() error = %v", err)
	}
	if got, want := string(b.Strand(StrandPlus)), "ATGAAATAA"; got != want {
		t.Errorf("Strand(StrandPlus) = %q, want %q", got, want)
	}
}

func Test_Buffer_SetSequence_reverseComplement(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple DNA", "ATGC", "GCAT"},
		{"degenerate bases round-trip", "ACGTUNSWRYKMBDHV", "BDHVKMRYWSNAACGT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Buffer
			if err := b.SetSequence([]byte(tt.input)); err != nil {
				t.Fatalf("SetSequence() error = %v", err)
			}
			if got := string(b.Strand(StrandMinus)); got != tt.want {
				t.Errorf("Strand(StrandMinus) = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_Buffer_View(t *testing.T) {
	var b Buffer
	if err := b.SetSequence([]byte("ATGAAATAA")); err != nil {
		t.Fatalf("SetSequence() error = %v", err)
	}

	got, err := b.View(SequenceLocation{From: 0, To: 6, Strand: StrandPlus})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if string(got) != "ATGAAA" {
		t.Errorf("View() = %q, want %q", got, "ATGAAA")
	}

	if _, err := b.View(SequenceLocation{From: 0, To: 100, Strand: StrandPlus}); err == nil {
		t.Error("View() error = nil, want error for an out-of-range location")
	}
	if _, err := b.View(SequenceLocation{From: 3, To: 3, Strand: StrandPlus}); err == nil {
		t.Error("View() error = nil, want error for an empty location")
	}
}
