package taxonomy

import "fmt"

const rootTaxID TaxID = 1

// buildEulerTour walks the tree depth-first from the root (TaxID 1),
// recording an Euler tour e (as internal node indices) and its parallel
// depth sequence l. h[id] is the index into e of id's first occurrence in
// the tour, which rangeMinimumQuery needs to turn two node indices into
// a query range.
func (t *Tree) buildEulerTour() error {
	if !t.nodeExists(rootTaxID) {
		return fmt.Errorf("taxonomy: root taxon %d not present in nodes", rootTaxID)
	}

	t.h = make([]int32, len(t.nodes))
	t.e = make([]int32, 0, len(t.nodes)*2)
	t.l = make([]int32, 0, len(t.nodes)*2)

	t.walk(rootTaxID, 0)

	return nil
}

func (t *Tree) walk(taxID TaxID, level int) {
	id := t.d[taxID]

	if t.h[id] == 0 {
		t.h[id] = int32(len(t.e))
	}

	t.e = append(t.e, id)
	t.l = append(t.l, int32(level))

	node := t.nodes[id]
	for _, childTaxID := range node.Children {
		t.walk(childTaxID, level+1)
	}

	t.e = append(t.e, t.d[node.ParentTaxID])
	t.l = append(t.l, int32(level-1))
}
