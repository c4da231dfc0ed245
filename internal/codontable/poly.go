package codontable

import (
	"fmt"

	"github.com/bebop/poly/synthesis/codon"
)

// PolyProvider backs Provider with github.com/bebop/poly's built-in NCBI
// translation tables, the same call other ORF finders in the wild use to
// avoid hand-maintaining codon lists per genetic code.
type PolyProvider struct{}

// NewPolyProvider returns the default, table-driven Provider.
func NewPolyProvider() PolyProvider {
	return PolyProvider{}
}

func newTranslationTable(geneticCode int) (table *codon.TranslationTable, err error) {
	defer func() {
		if r := recover(); r != nil {
			table, err = nil, fmt.Errorf("unsupported genetic code: %d", geneticCode)
		}
	}()
	return codon.NewTranslationTable(geneticCode), nil
}

func (PolyProvider) StopCodons(geneticCode int) ([]string, error) {
	table, err := newTranslationTable(geneticCode)
	if err != nil {
		return nil, err
	}
	return table.StopCodons, nil
}

func (PolyProvider) StartCodons(geneticCode int) ([]string, error) {
	table, err := newTranslationTable(geneticCode)
	if err != nil {
		return nil, err
	}
	return table.StartCodons, nil
}
