package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrsinham/physioreport/cmd/physioreport/wizard"
	"github.com/mrsinham/physioreport/internal/comparison"
	"github.com/mrsinham/physioreport/internal/export"
	"github.com/mrsinham/physioreport/internal/lite"
	"github.com/mrsinham/physioreport/internal/render"
	"github.com/mrsinham/physioreport/internal/report"
	"github.com/mrsinham/physioreport/internal/textgen"
)

func addInputFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("input", "i", "", usage)
	_ = cmd.MarkFlagRequired("input")
}

func renderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report file as text, Markdown, HTML or terminal output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")
			name, _ := cmd.Flags().GetString("format")
			if name == "" {
				name = a.cfg.Render.Format
			}
			format, err := render.ParseFormat(name)
			if err != nil {
				return err
			}

			d, err := a.loadReport(input)
			if err != nil {
				return err
			}
			doc := a.assembler.Assemble(d)

			err = writeOutput(cmd, output, func(w io.Writer) error {
				if format == render.Terminal {
					_, err := io.WriteString(w, render.TerminalString(doc, a.cfg.Render.Width))
					return err
				}
				return render.Render(w, doc, format)
			})
			if err != nil {
				return fmt.Errorf("rendering report: %w", err)
			}
			a.log.Info("rendered report",
				zap.String("input", input),
				zap.String("format", string(format)),
				zap.Int("sections", len(doc.Sections)))
			return nil
		},
	}
	addInputFlag(cmd, "report YAML file")
	cmd.Flags().StringP("format", "f", "", "output format: text, markdown, html, terminal (default from config)")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "List advisory warnings for a report file",
		Long:  "validate runs presence and date checks. Warnings never block rendering, so the exit code is 0 whenever the file parses.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			d, err := report.Load(input)
			if err != nil {
				return err
			}

			warnings := report.Validate(d)
			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				fmt.Fprintln(out, "No warnings.")
			}
			for _, w := range warnings {
				fmt.Fprintln(out, w.String())
			}
			a.log.Info("validated report", zap.String("input", input), zap.Int("warnings", len(warnings)))
			return nil
		},
	}
	addInputFlag(cmd, "report YAML file")
	return cmd
}

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "List the changes between the initial and final assessments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			d, err := a.loadReport(input)
			if err != nil {
				return err
			}

			items := comparison.Compare(d.Initial, d.Final, textgen.PronounsFor(d.Patient.Sex))
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEL\tID\tCATEGORY\tTEXT")
			for _, it := range comparison.Apply(comparison.MergeOrder(d.Discharge.ItemOrder, items), items) {
				sel := ""
				if d.Discharge.IsSelected(it.ID) {
					sel = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", sel, it.ID, it.Category, it.Text)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			a.log.Info("compared assessments", zap.String("input", input), zap.Int("items", len(items)))
			return nil
		},
	}
	addInputFlag(cmd, "report YAML file")
	return cmd
}

func importLiteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-lite",
		Short: "Convert a lite JSON export into a report YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("reading lite file: %w", err)
			}
			l, err := lite.Parse(data)
			if err != nil {
				return err
			}
			d := lite.ToReportData(l)

			if output == "" || output == "-" {
				return report.Encode(cmd.OutOrStdout(), d)
			}
			if err := report.Save(d, output); err != nil {
				return err
			}
			a.log.Info("imported lite report",
				zap.String("input", input),
				zap.String("output", output),
				zap.String("location", string(d.Initial.Complaints.Location)))
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
			return nil
		},
	}
	addInputFlag(cmd, "lite JSON file")
	cmd.Flags().StringP("output", "o", "", "report YAML file (default stdout)")
	return cmd
}

func exportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a report to a spreadsheet or DICOM file",
	}
	cmd.AddCommand(exportXLSXCmd(a))
	cmd.AddCommand(exportDICOMCmd(a))
	return cmd
}

func exportXLSXCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Export the report text and tables to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")
			d, err := a.loadReport(input)
			if err != nil {
				return err
			}
			doc := a.assembler.Assemble(d)
			if err := writeOutput(cmd, output, func(w io.Writer) error { return export.WriteXLSX(w, doc) }); err != nil {
				return fmt.Errorf("exporting xlsx: %w", err)
			}
			a.logExport("xlsx", input, output)
			if output != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Workbook written to %s\n", output)
			}
			return nil
		},
	}
	addInputFlag(cmd, "report YAML file")
	cmd.Flags().StringP("output", "o", "", "workbook file, - for stdout")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func exportDICOMCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dicom",
		Short: "Export the report as a DICOM secondary capture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")
			tagSpecs, _ := cmd.Flags().GetStringArray("tag")
			overrides, err := export.ParseTagOverrides(tagSpecs)
			if err != nil {
				return err
			}
			d, err := a.loadReport(input)
			if err != nil {
				return err
			}
			doc := a.assembler.Assemble(d)
			meta := export.MetaFromReport(d, time.Now())
			meta.Overrides = overrides
			layout := export.PageLayout{Width: a.cfg.Export.PageWidth, Height: a.cfg.Export.PageHeight}
			if err := export.WriteDICOMFile(output, doc, meta, layout); err != nil {
				return fmt.Errorf("exporting dicom: %w", err)
			}
			a.logExport("dicom", input, output)
			fmt.Fprintf(cmd.OutOrStdout(), "DICOM written to %s\n", output)
			return nil
		},
	}
	addInputFlag(cmd, "report YAML file")
	cmd.Flags().StringP("output", "o", "", "DICOM file")
	cmd.Flags().StringArray("tag", nil, "header override as Name=Value, repeatable ("+strings.Join(export.HeaderTagNames(), ", ")+")")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) logExport(kind, input, output string) {
	fields := []zap.Field{zap.String("input", input), zap.String("output", output)}
	if info, err := os.Stat(output); err == nil {
		fields = append(fields, zap.String("size", humanize.Bytes(uint64(info.Size()))))
	}
	a.log.Info("exported "+kind, fields...)
}

func wizardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Edit a report interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			return wizard.Run(from, wizard.Options{
				Assembler: a.assembler,
				Width:     a.cfg.Render.Width,
			})
		},
	}
	cmd.Flags().String("from", "", "report YAML file to load")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "physioreport %s\n", version)
		},
	}
}

// writeOutput calls write with stdout when path is empty or "-", and with a
// newly created file otherwise.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return write(f)
}
