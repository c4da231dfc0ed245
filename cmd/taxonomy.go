package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dnakit/seqtax/config"
	"github.com/dnakit/seqtax/internal/taxonomy"
	"github.com/spf13/cobra"
)

// taxonomyCmd groups the NCBI taxonomy dump queries under one namespace.
var taxonomyCmd = &cobra.Command{
	Use:                        "taxonomy",
	Aliases:                    []string{"tax"},
	Short:                      "Query an NCBI taxonomy dump",
	SuggestionsMinimumDistance: 2,
	Long: `
Load an NCBI taxonomy dump (nodes.dmp, names.dmp, merged.dmp) once per
invocation and answer lowest-common-ancestor, ancestry, lineage, and
rank queries against it.`,
}

var lcaCmd = &cobra.Command{
	Use:   "lca [taxID] ... [taxIDN]",
	Short: "Print the lowest common ancestor of two or more taxa",
	Args:  cobra.MinimumNArgs(2),
	Run:   runLCA,
}

var isAncestorCmd = &cobra.Command{
	Use:   "is-ancestor [ancestorTaxID] [childTaxID]",
	Short: "Report whether one taxon is an ancestor of (or the same as) another",
	Args:  cobra.ExactArgs(2),
	Run:   runIsAncestor,
}

var lineageCmd = &cobra.Command{
	Use:   "lineage [taxID]",
	Short: "Print a taxon's root-first lineage of scientific names",
	Args:  cobra.ExactArgs(1),
	Run:   runLineage,
}

var ranksCmd = &cobra.Command{
	Use:   "ranks [taxID] [rank] ... [rankN]",
	Short: "Print a taxon's name at each of the requested ranks",
	Args:  cobra.MinimumNArgs(1),
	Run:   runRanks,
}

func init() {
	taxonomyCmd.PersistentFlags().String("nodes", "", "path to nodes.dmp")
	taxonomyCmd.PersistentFlags().String("names", "", "path to names.dmp")
	taxonomyCmd.PersistentFlags().String("merged", "", "path to merged.dmp")

	taxonomyCmd.AddCommand(lcaCmd)
	taxonomyCmd.AddCommand(isAncestorCmd)
	taxonomyCmd.AddCommand(lineageCmd)
	taxonomyCmd.AddCommand(ranksCmd)

	rootCmd.AddCommand(taxonomyCmd)
}

// loadTaxonomy builds a Tree from either --nodes/--names/--merged (if any
// of them were set) or the settings.yaml-configured taxonomy dump paths.
func loadTaxonomy(cmd *cobra.Command) *taxonomy.Tree {
	c := config.NewConfig()

	nodes, names, merged := c.Taxonomy.NodesPath, c.Taxonomy.NamesPath, c.Taxonomy.MergedPath
	if flags := cmd.Flags(); flags.Changed("nodes") || flags.Changed("names") || flags.Changed("merged") {
		nodes, _ = flags.GetString("nodes")
		names, _ = flags.GetString("names")
		merged, _ = flags.GetString("merged")
	}

	if nodes == "" || names == "" || merged == "" {
		cmd.Help()
		stderr.Fatalln("must configure taxonomy.nodes-path/names-path/merged-path (or pass --nodes/--names/--merged)")
	}

	tree, err := taxonomy.LoadTree(nodes, names, merged)
	if err != nil {
		stderr.Fatalln(err)
	}
	return tree
}

func parseTaxID(arg string) taxonomy.TaxID {
	id, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		stderr.Fatalf("invalid taxID %q: %v", arg, err)
	}
	return taxonomy.TaxID(id)
}

func runLCA(cmd *cobra.Command, args []string) {
	tree := loadTaxonomy(cmd)

	taxa := make([]taxonomy.TaxID, len(args))
	for i, arg := range args {
		taxa[i] = parseTaxID(arg)
	}

	lca, ok := tree.LCAAll(taxa)
	if !ok {
		stderr.Fatalln("none of the given taxIDs exist in the loaded taxonomy")
	}
	fmt.Println(int32(lca))
}

func runIsAncestor(cmd *cobra.Command, args []string) {
	tree := loadTaxonomy(cmd)
	ancestor, child := parseTaxID(args[0]), parseTaxID(args[1])
	fmt.Println(tree.IsAncestor(ancestor, child))
}

func runLineage(cmd *cobra.Command, args []string) {
	tree := loadTaxonomy(cmd)
	taxID := parseTaxID(args[0])

	lineage, ok := tree.TaxLineage(taxID)
	if !ok {
		stderr.Fatalf("taxID %d does not exist in the loaded taxonomy", taxID)
	}
	fmt.Println(lineage)
}

func runRanks(cmd *cobra.Command, args []string) {
	tree := loadTaxonomy(cmd)
	taxID := parseTaxID(args[0])
	ranks := args[1:]

	if len(ranks) == 0 {
		allRanks, ok := tree.AllRanks(taxID)
		if !ok {
			stderr.Fatalf("taxID %d does not exist in the loaded taxonomy", taxID)
		}
		for rank, name := range allRanks {
			fmt.Printf("%s\t%s\n", rank, name)
		}
		return
	}

	names, ok := tree.AtRanks(taxID, ranks)
	if !ok {
		stderr.Fatalf("taxID %d does not exist in the loaded taxonomy", taxID)
	}
	fmt.Println(strings.Join(names, "\t"))
}
