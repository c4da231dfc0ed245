package taxonomy

import "strings"

// lcaHelper returns the internal index of the lowest common ancestor of
// the two nodes at internal indices i and j. Internal index 0 doubles as
// a "no such node" sentinel, which only works because dump files place
// the root (TaxID 1) on the first line, giving it internal index 0 as
// well — the same coincidence the Euler tour's h array relies on.
func (t *Tree) lcaHelper(i, j int32) int32 {
	if i == 0 || j == 0 {
		return 0
	}
	if i == j {
		return i
	}

	v1, v2 := t.h[i], t.h[j]
	if v1 > v2 {
		v1, v2 = v2, v1
	}

	rmq := t.rangeMinimumQuery(int(v1), int(v2))
	return t.e[rmq]
}

// LCA returns the lowest common ancestor of taxonA and taxonB. If either
// taxon is absent from the tree, the other is returned unchanged — the
// ORF-calling and read-classification callers this serves would rather
// fall back to the one taxon they do know than fail the whole lookup.
func (t *Tree) LCA(taxonA, taxonB TaxID) TaxID {
	if !t.nodeExists(taxonA) {
		return taxonB
	}
	if !t.nodeExists(taxonB) {
		return taxonA
	}

	idxA := t.d[taxonA]
	idxB := t.d[taxonB]
	return t.nodes[t.lcaHelper(idxA, idxB)].TaxID
}

// LCAAll reduces taxa to their single lowest common ancestor, skipping
// any TaxID absent from the tree. ok is false if none of the taxa exist.
func (t *Tree) LCAAll(taxa []TaxID) (lca TaxID, ok bool) {
	i := 0
	for i < len(taxa) && !t.nodeExists(taxa[i]) {
		i++
	}
	if i == len(taxa) {
		return 0, false
	}

	reduced := t.d[taxa[i]]
	for i++; i < len(taxa); i++ {
		if !t.nodeExists(taxa[i]) {
			continue
		}
		reduced = t.lcaHelper(reduced, t.d[taxa[i]])
	}

	return t.nodes[reduced].TaxID, true
}

// IsAncestor reports whether ancestor is the same taxon as child, or a
// true ancestor of it. Equal TaxIDs always report true; otherwise a TaxID
// of 0 (no assignment) in either role, or an absent child or ancestor,
// reports false rather than erroring.
func (t *Tree) IsAncestor(ancestor, child TaxID) bool {
	if ancestor == child {
		return true
	}
	if ancestor == 0 || child == 0 {
		return false
	}
	if !t.nodeExists(child) || !t.nodeExists(ancestor) {
		return false
	}

	return t.lcaHelper(t.d[child], t.d[ancestor]) == t.d[ancestor]
}

// TaxLineage renders taxID's ancestor chain, root first, as
// semicolon-joined scientific names.
func (t *Tree) TaxLineage(taxID TaxID) (string, bool) {
	node, ok := t.node(taxID)
	if !ok {
		return "", false
	}

	var names []string
	for {
		names = append(names, node.Name)
		if node.ParentTaxID == node.TaxID {
			break
		}
		node, _ = t.node(node.ParentTaxID)
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ";"), true
}

// AllRanks walks taxID's ancestor chain and returns every named rank
// (skipping "no_rank") mapped to the name assigned at that rank. The
// root is always included regardless of its own rank.
func (t *Tree) AllRanks(taxID TaxID) (map[string]string, bool) {
	node, ok := t.node(taxID)
	if !ok {
		return nil, false
	}

	result := make(map[string]string)
	for {
		if node.TaxID == rootTaxID {
			result[node.Rank] = node.Name
			return result, true
		}
		if node.Rank != "no_rank" {
			result[node.Rank] = node.Name
		}
		node, _ = t.node(node.ParentTaxID)
	}
}

// AtRanks resolves taxID's name at each of the requested ranks. A rank
// finer than taxID's own rank resolves to "uc_<taxID's name>" (uc for
// "unclassified below"); a coarser rank with no recorded ancestor at
// that level resolves to "unknown".
func (t *Tree) AtRanks(taxID TaxID, ranks []string) ([]string, bool) {
	node, ok := t.node(taxID)
	if !ok {
		return nil, false
	}

	allRanks, _ := t.AllRanks(taxID)
	baseRankIndex := rankOrder[node.Rank]
	baseRank := "uc_" + node.Name

	result := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		if name, found := allRanks[rank]; found {
			result = append(result, name)
			continue
		}
		if rankOrder[rank] < baseRankIndex {
			result = append(result, baseRank)
			continue
		}
		result = append(result, "unknown")
	}
	return result, true
}

// CladeCounts sums taxonCounts over every node in the subtree rooted at
// root, inclusive, returning one running total per subtree root
// encountered along the way.
func (t *Tree) CladeCounts(taxonCounts map[TaxID]uint32, root TaxID) map[TaxID]uint32 {
	cladeCounts := make(map[TaxID]uint32)
	t.cladeSummation(taxonCounts, cladeCounts, root)
	return cladeCounts
}

func (t *Tree) cladeSummation(taxonCounts map[TaxID]uint32, cladeCounts map[TaxID]uint32, taxID TaxID) uint32 {
	count := taxonCounts[taxID]
	node, ok := t.node(taxID)
	if ok {
		for _, child := range node.Children {
			count += t.cladeSummation(taxonCounts, cladeCounts, child)
		}
	}
	cladeCounts[taxID] = count
	return count
}
