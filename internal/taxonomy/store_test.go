package taxonomy

import "testing"

// testTree builds a small synthetic taxonomy:
//
//	1 (root)
//	├── 2 (Bacteria, superkingdom)
//	│   └── 4 (Genus1, genus)
//	│       ├── 6 (Species6, species)
//	│       └── 7 (Species7, species)
//	└── 3 (Archaea, superkingdom)
//	    └── 5 (Species5, species)
//
// TaxID 100 is merged into TaxID 2.
func testTree(t *testing.T) *Tree {
	t.Helper()

	records := []nodeRecord{
		{TaxID: 1, ParentTaxID: 1, Rank: "no_rank"},
		{TaxID: 2, ParentTaxID: 1, Rank: "superkingdom"},
		{TaxID: 3, ParentTaxID: 1, Rank: "superkingdom"},
		{TaxID: 4, ParentTaxID: 2, Rank: "genus"},
		{TaxID: 5, ParentTaxID: 3, Rank: "species"},
		{TaxID: 6, ParentTaxID: 4, Rank: "species"},
		{TaxID: 7, ParentTaxID: 4, Rank: "species"},
	}
	names := map[TaxID]string{
		1: "root", 2: "Bacteria", 3: "Archaea", 4: "Genus1", 5: "Species5", 6: "Species6", 7: "Species7",
	}
	merged := map[TaxID]TaxID{100: 2}

	tree, err := NewTree(records, merged, names)
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}
	return tree
}

func Test_NewTree_rejectsMissingParent(t *testing.T) {
	records := []nodeRecord{
		{TaxID: 2, ParentTaxID: 1, Rank: "superkingdom"},
	}
	if _, err := NewTree(records, nil, nil); err == nil {
		t.Fatal("NewTree() error = nil, want error for a node whose parent is absent")
	}
}

func Test_NewTree_buildsChildren(t *testing.T) {
	tree := testTree(t)

	node, ok := tree.Node(4)
	if !ok {
		t.Fatal("Node(4) not found")
	}
	if len(node.Children) != 2 {
		t.Fatalf("Node(4).Children = %v, want 2 entries", node.Children)
	}
}

func Test_Tree_mergedAlias(t *testing.T) {
	tree := testTree(t)

	if !tree.NodeExists(100) {
		t.Fatal("NodeExists(100) = false, want true for a merged alias")
	}
	node, ok := tree.Node(100)
	if !ok {
		t.Fatal("Node(100) not found")
	}
	if node.TaxID != 2 {
		t.Errorf("Node(100).TaxID = %d, want 2 (the merge target)", node.TaxID)
	}
}

func Test_NewTree_rejectsNameForUnknownTaxon(t *testing.T) {
	records := []nodeRecord{
		{TaxID: 1, ParentTaxID: 1, Rank: "no_rank"},
	}
	names := map[TaxID]string{99: "ghost"}
	if _, err := NewTree(records, nil, names); err == nil {
		t.Fatal("NewTree() error = nil, want error for a name entry with no matching node")
	}
}
