package cmd

import (
	"fmt"

	"github.com/dnakit/seqtax/config"
	"github.com/dnakit/seqtax/internal/codontable"
	"github.com/dnakit/seqtax/internal/orf"
	"github.com/dnakit/seqtax/internal/orfio"
	"github.com/spf13/cobra"
)

// orfCmd finds open reading frames in a FASTA file of nucleotide sequences.
var orfCmd = &cobra.Command{
	Use:                        "orf",
	Short:                      "Find open reading frames in a FASTA file",
	SuggestionsMinimumDistance: 2,
	Long: `
Scan every record of a nucleotide FASTA file for open reading frames,
using the requested genetic code, frames, and length/gap filters, and
write the matches out as a new FASTA file whose headers carry an
"[Orf: ...]" descriptor for each match's coordinates.`,
	Run: runOrf,
}

func init() {
	orfCmd.Flags().StringP("in", "i", "", "input FASTA file of nucleotide sequences")
	orfCmd.Flags().StringP("out", "o", "", "output FASTA file of ORF sequences")
	orfCmd.Flags().Int("genetic-code", 0, "NCBI genetic code table ID")
	orfCmd.Flags().Bool("use-all-table-starts", false, "accept every start codon the genetic code table recognizes, not just ATG")
	orfCmd.Flags().String("start-mode", "", "how a new ORF may open: start-to-stop, any-to-stop, or last-start-to-stop")
	orfCmd.Flags().Int("min-length", 0, "minimum ORF length, in codons (an ORF must be strictly longer)")
	orfCmd.Flags().Int("max-length", 0, "maximum ORF length, in codons")
	orfCmd.Flags().Int("max-gaps", 0, "maximum number of gap/N codons tolerated in an ORF")
	orfCmd.Flags().IntSlice("forward-frames", nil, "forward frames to scan (1, 2, and/or 3)")
	orfCmd.Flags().IntSlice("reverse-frames", nil, "reverse-complement frames to scan (1, 2, and/or 3)")

	rootCmd.AddCommand(orfCmd)
}

// applyORFFlags overrides c's settings.yaml-derived defaults with whatever
// flags the user actually passed on the command line, leaving the rest
// alone. Flags default to zero values that would otherwise collide with
// config's own defaults if merged unconditionally.
func applyORFFlags(cmd *cobra.Command, c *config.ORFConfig) {
	flags := cmd.Flags()
	if flags.Changed("genetic-code") {
		c.GeneticCode, _ = flags.GetInt("genetic-code")
	}
	if flags.Changed("use-all-table-starts") {
		c.UseAllTableStarts, _ = flags.GetBool("use-all-table-starts")
	}
	if flags.Changed("start-mode") {
		c.StartMode, _ = flags.GetString("start-mode")
	}
	if flags.Changed("min-length") {
		c.MinLength, _ = flags.GetInt("min-length")
	}
	if flags.Changed("max-length") {
		c.MaxLength, _ = flags.GetInt("max-length")
	}
	if flags.Changed("max-gaps") {
		c.MaxGaps, _ = flags.GetInt("max-gaps")
	}
	if flags.Changed("forward-frames") {
		c.ForwardFrames, _ = flags.GetIntSlice("forward-frames")
	}
	if flags.Changed("reverse-frames") {
		c.ReverseFrames, _ = flags.GetIntSlice("reverse-frames")
	}
}

func runOrf(cmd *cobra.Command, args []string) {
	c := config.NewConfig()
	applyORFFlags(cmd, &c.ORF)

	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		cmd.Help()
		stderr.Fatalln("must pass an input FASTA file with --in")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		cmd.Help()
		stderr.Fatalln("must pass an output FASTA file with --out")
	}

	startMode, err := parseStartMode(c.ORF.StartMode)
	if err != nil {
		stderr.Fatalln(err)
	}

	records, err := orfio.ReadFASTA(in)
	if err != nil {
		stderr.Fatalln(err)
	}

	finder, err := orf.NewFinder(codontable.NewPolyProvider(), c.ORF.GeneticCode, c.ORF.UseAllTableStarts)
	if err != nil {
		stderr.Fatalln(err)
	}

	forwardFrames := frameMask(c.ORF.ForwardFrames)
	reverseFrames := frameMask(c.ORF.ReverseFrames)

	var results []orfio.Record
	for _, record := range records {
		if err := finder.SetSequence([]byte(record.Seq)); err != nil {
			stderr.Fatalf("%s: %v", record.ID, err)
		}

		locations := finder.FindAll(c.ORF.MinLength, c.ORF.MaxLength, c.ORF.MaxGaps, forwardFrames, reverseFrames, startMode)
		for i, loc := range locations {
			loc.HasID = true
			loc.ID = uint32(i)

			seq, err := finder.View(loc)
			if err != nil {
				stderr.Fatalf("%s: %v", record.ID, err)
			}

			header := fmt.Sprintf("%s %s", record.ID, orf.FormatHeader(loc))
			results = append(results, orfio.Record{ID: header, Seq: string(seq)})
		}
	}

	if err := orfio.WriteFASTA(out, results); err != nil {
		stderr.Fatalln(err)
	}
}

// parseStartMode maps the human-readable --start-mode flag onto the
// scanner's internal enum.
func parseStartMode(mode string) (orf.StartMode, error) {
	switch mode {
	case "", "start-to-stop":
		return orf.StartToStop, nil
	case "any-to-stop":
		return orf.AnyToStop, nil
	case "last-start-to-stop":
		return orf.LastStartToStop, nil
	default:
		return 0, fmt.Errorf("orf: unrecognized start mode %q", mode)
	}
}

// frameMask converts a list of 1-indexed frame numbers into a FrameMask.
func frameMask(frames []int) orf.FrameMask {
	var mask orf.FrameMask
	for _, f := range frames {
		switch f {
		case 1:
			mask |= orf.Frame1
		case 2:
			mask |= orf.Frame2
		case 3:
			mask |= orf.Frame3
		}
	}
	return mask
}
