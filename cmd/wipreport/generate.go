package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/ukaji3/wipreport-go/pkg/wipreport"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/models"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		outputDir string
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "generate [input.xlsx]",
		Short: "Generate a report from a timesheet workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd.OutOrStdout(), args[0], outputDir, save)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to write the report into")
	cmd.Flags().BoolVar(&save, "save", false, "Also save a copy into the configured save directory")
	return cmd
}

func (a *app) generate(out io.Writer, inputPath, outputDir string, save bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	report, err := wipreport.GenerateFile(inputPath, wipreport.Options{Logger: a.logger})
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	path, err := report.Save(outputDir)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(out, "Wrote %s (%s)\n", path, humanize.Bytes(uint64(len(report.Content))))
	fmt.Fprintf(out, "Rows: %s %d, %s %d, %s %d\n",
		models.SheetAll, len(report.Views.All.Rows),
		models.SheetExperis, len(report.Views.Experis.Rows),
		models.SheetManpower, len(report.Views.Manpower.Rows))

	for _, s := range report.Views.Skipped {
		fmt.Fprintf(out, "Skipped row %d: invalid week ending date %q\n", s.Row, s.Value)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", w)
	}

	if save {
		savedPath, err := report.Save(a.cfg.Report.SaveDir)
		if err != nil {
			fmt.Fprintf(out, "Warning: %v\n", err)
		} else {
			fmt.Fprintf(out, "Saved %s\n", savedPath)
		}
	}

	return nil
}
