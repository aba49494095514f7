package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/KaramelBytes/inflammation-cli/internal/models"
	"github.com/KaramelBytes/inflammation-cli/internal/parser"
	"github.com/KaramelBytes/inflammation-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	normOutputPath string
	normNames      []string
)

var normaliseCmd = &cobra.Command{
	Use:     "normalise <file>",
	Aliases: []string{"normalize"},
	Short:   "Scale each patient's readings by that patient's maximum",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		t, err := parser.LoadTable(args[0], parser.Options{Sheet: c.XLSXSheet})
		if err != nil {
			return err
		}
		norm, err := models.PatientNormalise(t)
		if err != nil {
			return err
		}

		var data []byte
		if len(normNames) > 0 {
			named, err := models.AttachNames(norm, normNames)
			if err != nil {
				return err
			}
			if data, err = utils.PrettyJSON(named); err != nil {
				return err
			}
			data = append(data, '\n')
		} else if data, err = tableCSV(norm); err != nil {
			return err
		}

		if normOutputPath == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := utils.SafeWriteFile(normOutputPath, data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote normalised table to %s\n", normOutputPath)
		return nil
	},
}

func tableCSV(t models.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rec := make([]string, 0, t.Columns())
	for _, row := range t {
		rec = rec[:0]
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func init() {
	rootCmd.AddCommand(normaliseCmd)
	normaliseCmd.Flags().StringVarP(&normOutputPath, "output", "o", "", "optional path to write the normalised table")
	normaliseCmd.Flags().StringSliceVar(&normNames, "names", nil, "patient names, one per row; emits named JSON datasets instead of CSV")
}
