package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqanalyser-go/internal/chart"
	"github.com/aria-lang/seqanalyser-go/internal/stats"
	"github.com/aria-lang/seqanalyser-go/pkg/seqanalyser"
)

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report length, composition, GC window and search for one sequence",
		Long: `Loads a file and reports, for the selected sequence value, the same
outputs the web interface shows: dataset size, sequence length,
nucleotide composition, the highest-GC window and, when --search is
given, whether the query occurs in the sequence.

The first record is selected unless --value is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			value, _ := cmd.Flags().GetString("value")

			s, err := a.load(file)
			if err != nil {
				return err
			}
			if err := selectValue(s, value, cmd.Flags().Changed("value")); err != nil {
				return err
			}

			v, err := s.View()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, v.DatasetMessage)
			fmt.Fprintln(out, v.LengthMessage)
			fmt.Fprintf(out, "Composition: %s\n", v.Composition)
			fmt.Fprintln(out, v.GCWindowMessage)

			if cmd.Flags().Changed("search") {
				query, _ := cmd.Flags().GetString("search")
				fmt.Fprintln(out, s.Search(query).Message)
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "input file <CSV|FASTA|XLSX>")
	cmd.Flags().StringP("value", "s", "", "sequence value to select")
	cmd.Flags().StringP("search", "q", "", "subsequence to search for")
	return cmd
}

func (a *app) summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show dataset statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			histograms, _ := cmd.Flags().GetBool("histograms")

			s, err := a.load(file)
			if err != nil {
				return err
			}

			summary, err := stats.FromTable(s.Table())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			if histograms {
				fmt.Fprint(cmd.OutOrStdout(), summary.Histograms())
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "input file <CSV|FASTA|XLSX>")
	cmd.Flags().Bool("histograms", false, "also print GC and length histograms")
	return cmd
}

func (a *app) chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write the composition chart of one sequence as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			value, _ := cmd.Flags().GetString("value")
			outPath, _ := cmd.Flags().GetString("out")

			s, err := a.load(file)
			if err != nil {
				return err
			}
			if err := selectValue(s, value, cmd.Flags().Changed("value")); err != nil {
				return err
			}
			comp, err := s.Composition()
			if err != nil {
				return err
			}

			if outPath == "" {
				return chart.WriteCompositionSVG(cmd.OutOrStdout(), comp, chart.DefaultWidth, chart.DefaultHeight)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating file: %w", err)
			}
			defer f.Close()

			if err := chart.WriteCompositionSVG(f, comp, chart.DefaultWidth, chart.DefaultHeight); err != nil {
				return err
			}
			a.logger.Info("chart written", "path", outPath, "composition", comp.String())
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "input file <CSV|FASTA|XLSX>")
	cmd.Flags().StringP("value", "s", "", "sequence value to select")
	cmd.Flags().StringP("out", "o", "", "output SVG path (default stdout)")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset as FASTA",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			s, err := a.load(file)
			if err != nil {
				return err
			}
			return seqanalyser.WriteFASTA(cmd.OutOrStdout(), s.Table())
		},
	}

	cmd.Flags().StringP("file", "f", "", "input file <CSV|FASTA|XLSX>")
	return cmd
}
