package taxonomy

// TaxID is an NCBI taxonomy identifier as it appears in the dump files.
// It is sparse: most integers in its range name no node at all.
type TaxID int32

// Node is one entry of the taxonomy tree, keyed internally by a dense
// index assigned in dump-file order. Children are recorded by TaxID, not
// by internal index, mirroring how the dump file itself links parent to
// child.
type Node struct {
	id          int
	TaxID       TaxID
	ParentTaxID TaxID
	Rank        string
	Name        string
	Children    []TaxID
}
