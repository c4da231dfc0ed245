package codontable

import "testing"

type fakeProvider struct {
	stop  []string
	start []string
}

func (f fakeProvider) StopCodons(int) ([]string, error)  { return f.stop, nil }
func (f fakeProvider) StartCodons(int) ([]string, error) { return f.start, nil }

func Test_NewCodonSet_containsRNAAlias(t *testing.T) {
	tests := []struct {
		name  string
		input string
		query string
		want  bool
	}{
		{"dna codon matches itself", "TAA", "TAA", true},
		{"dna codon matches rna alias", "TAA", "UAA", true},
		{"mismatched codon is absent", "TAA", "TAG", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewCodonSet([]string{tt.input})
			if got := set.Contains(tt.query); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func Test_NewTables_defaultStartIsATGOnly(t *testing.T) {
	provider := fakeProvider{
		stop:  []string{"TAA", "TAG", "TGA"},
		start: []string{"ATG", "GTG", "TTG"},
	}

	tables, err := NewTables(provider, 11, false)
	if err != nil {
		t.Fatalf("NewTables() error = %v", err)
	}
	if !tables.Start.Contains("ATG") {
		t.Errorf("expected default start set to contain ATG")
	}
	if tables.Start.Contains("GTG") {
		t.Errorf("expected default start set to exclude table-provided alternative starts")
	}
}

func Test_NewTables_useAllTableStarts(t *testing.T) {
	provider := fakeProvider{
		stop:  []string{"TAA", "TAG", "TGA"},
		start: []string{"ATG", "GTG", "TTG"},
	}

	tables, err := NewTables(provider, 11, true)
	if err != nil {
		t.Fatalf("NewTables() error = %v", err)
	}
	for _, c := range []string{"ATG", "GTG", "TTG"} {
		if !tables.Start.Contains(c) {
			t.Errorf("expected table-provided start set to contain %s", c)
		}
	}
}
