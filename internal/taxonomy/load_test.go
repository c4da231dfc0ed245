package taxonomy

import (
	"reflect"
	"testing"
)

func Test_parseNodes(t *testing.T) {
	lines := []string{
		"1\t|\t1\t|\tno rank\t|\t\t|\t8\t|\t0\t|\t1\t|\t0\t|\t0\t|\t0\t|\t0\t|\t0\t|\t\t|",
		"2\t|\t1\t|\tsuperkingdom\t|\t\t|\t0\t|\t0\t|\t11\t|\t0\t|\t0\t|\t0\t|\t0\t|\t0\t|\t\t|",
	}
	got, err := parseNodes(lines)
	if err != nil {
		t.Fatalf("parseNodes() error = %v", err)
	}
	want := []nodeRecord{
		{TaxID: 1, ParentTaxID: 1, Rank: "no rank"},
		{TaxID: 2, ParentTaxID: 1, Rank: "superkingdom"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseNodes() = %+v, want %+v", got, want)
	}
}

func Test_parseMerged(t *testing.T) {
	lines := []string{
		"100\t|\t2\t|",
		"101\t|\t3\t|",
	}
	got, err := parseMerged(lines)
	if err != nil {
		t.Fatalf("parseMerged() error = %v", err)
	}
	want := map[TaxID]TaxID{100: 2, 101: 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseMerged() = %+v, want %+v", got, want)
	}
}

func Test_parseNames_onlyScientificNames(t *testing.T) {
	lines := []string{
		"1\t|\troot\t|\t\t|\tscientific name\t|",
		"2\t|\tBacteria\t|\t\t|\tscientific name\t|",
		"2\t|\tbacteria (common)\t|\t\t|\tgenbank common name\t|",
	}
	got, err := parseNames(lines)
	if err != nil {
		t.Fatalf("parseNames() error = %v", err)
	}
	want := map[TaxID]string{1: "root", 2: "Bacteria"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseNames() = %+v, want %+v", got, want)
	}
}
