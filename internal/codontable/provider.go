// Package codontable resolves a genetic-code identifier to its start and
// stop codon sets, the way internal/blast resolves a database name to a
// BLAST index in the teacher.
package codontable

// Provider is the external collaborator that knows what a genetic-code
// table actually contains. The scanner in internal/orf only ever asks it
// for two things: which codons terminate an ORF and which ones may open
// one.
type Provider interface {
	// StopCodons returns the stop codons for the requested NCBI genetic
	// code, as 3-byte DNA strings.
	StopCodons(geneticCode int) ([]string, error)

	// StartCodons returns every start codon the table itself recognizes
	// for the requested genetic code. Used only when useAllTableStarts
	// is set; otherwise the caller substitutes ["ATG"].
	StartCodons(geneticCode int) ([]string, error)
}
