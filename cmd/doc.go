package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"intury/internal/document"
	"intury/internal/logger"
	"intury/pkg/models"
)

// maxFormFileBytes bounds the size of a form input file
const maxFormFileBytes = 1 << 20

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Fill in and render Czech business documents",
	Long: `Work with the five supported Czech business document types.

Each type configures its own form: cash receipts and simplified tax documents
have no buyer block, delivery notes carry no prices, and advance invoices add
an advance percentage.`,
}

var docTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported document types and their configuration",
	Args:  cobra.NoArgs,
	RunE:  runDocTypes,
}

var docFormCmd = &cobra.Command{
	Use:   "form [type]",
	Short: "Print the form layout configured for a document type",
	Long: `Print the fields of the form for a document type as JSON: which sections
and fields are visible, which are required, their labels and limits.

Hidden fields are never required.`,
	Example: `  # Show the advance invoice form
  intury doc form zalohova`,
	Args: cobra.ExactArgs(1),
	RunE: runDocForm,
}

var docGenerateCmd = &cobra.Command{
	Use:   "generate [type]",
	Short: "Validate a filled-in form and render the document",
	Long: `Read a filled-in form from a JSON file, validate it against the form
configured for the document type, and render the document.

The input file uses the keys printed by 'intury doc form'. Quantities and
prices accept both decimal comma and decimal point; unparseable numbers
count as zero.`,
	Example: `  # Render an invoice as JSON to stdout
  intury doc generate faktura --input form.json

  # Render a delivery note as text into a file
  intury doc generate dodaci -i form.json --format text -o dodaci.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runDocGenerate,
}

// DocumentTypeInfo is one entry of the 'doc types' listing
type DocumentTypeInfo struct {
	Type   document.Type       `json:"type"`
	Name   string              `json:"name"`
	Config document.TypeConfig `json:"config"`
}

func init() {
	rootCmd.AddCommand(docCmd)
	docCmd.AddCommand(docTypesCmd, docFormCmd, docGenerateCmd)

	docGenerateCmd.Flags().StringP("input", "i", "", "Path to the filled-in form (JSON)")
	docGenerateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	docGenerateCmd.Flags().StringP("format", "f", "json", "Output format: json or text")
	_ = docGenerateCmd.MarkFlagRequired("input")
}

func runDocTypes(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("doc")

	var out []DocumentTypeInfo
	for _, t := range document.Types() {
		cfg, _ := document.Lookup(t)
		out = append(out, DocumentTypeInfo{Type: t, Name: document.DisplayName(t), Config: cfg})
	}
	return writeJSON(cmd.OutOrStdout(), out, "", log)
}

func runDocForm(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("doc")

	t, err := document.ParseType(args[0])
	if err != nil {
		return handleDocumentError(err, log)
	}

	opts := documentOptions()
	layout, err := document.NewFormConfigurator(opts.AdvancePercent).Configure(t)
	if err != nil {
		return handleDocumentError(err, log)
	}
	return writeJSON(cmd.OutOrStdout(), layout, "", log)
}

func runDocGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("doc")

	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	format = strings.ToLower(format)
	if format != "json" && format != "text" {
		return fmt.Errorf("unsupported format %q: use json or text", format)
	}

	log.Info().
		Str("type", args[0]).
		Str("input", inputPath).
		Str("output", outputPath).
		Str("format", format).
		Msg("Starting document generation")

	t, err := document.ParseType(args[0])
	if err != nil {
		return handleDocumentError(err, log)
	}

	form, err := readFormInput(inputPath, log)
	if err != nil {
		return err
	}

	doc, err := generateDocument(t, form)
	if err != nil {
		return handleDocumentError(err, log)
	}

	if format == "text" {
		var buf bytes.Buffer
		if err := writeDocumentText(&buf, doc); err != nil {
			return fmt.Errorf("failed to render text output: %w", err)
		}
		return writeOutput(cmd.OutOrStdout(), buf.Bytes(), outputPath, log)
	}
	return writeJSON(cmd.OutOrStdout(), doc, outputPath, log)
}

// generateDocument runs one session from type selection to rendering
func generateDocument(t document.Type, form document.FormInput) (*models.Document, error) {
	session := document.NewSession(documentOptions())
	if _, err := session.Select(t); err != nil {
		return nil, err
	}
	return session.Submit(form)
}

// readFormInput loads and decodes the form JSON file
func readFormInput(path string, log zerolog.Logger) (document.FormInput, error) {
	var form document.FormInput

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Error().Str("file", path).Msg("Form input file not found")
			return form, fmt.Errorf("form input file not found: %s", path)
		}
		return form, fmt.Errorf("error accessing form input file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return form, fmt.Errorf("path is not a regular file: %s", path)
	}
	if info.Size() > maxFormFileBytes {
		log.Error().
			Str("file", path).
			Int64("size", info.Size()).
			Msg("Form input file exceeds maximum size limit")
		return form, fmt.Errorf("form input file too large (%d bytes)", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return form, fmt.Errorf("failed to read form input: %w", err)
	}
	if err := json.Unmarshal(data, &form); err != nil {
		log.Error().Err(err).Str("file", path).Msg("Form input is not valid JSON")
		return form, fmt.Errorf("form input is not valid JSON: %w", err)
	}
	return form, nil
}

// handleDocumentError provides user-friendly error messages for document failures
func handleDocumentError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("Document generation failed")

	switch {
	case errors.Is(err, document.ErrUnknownDocumentType):
		return fmt.Errorf("unknown document type. Run 'intury doc types' to list the supported types")
	case errors.Is(err, document.ErrValidationFailed):
		var b strings.Builder
		b.WriteString("the form is not valid:")
		for _, fe := range document.FieldErrors(err) {
			fmt.Fprintf(&b, "\n  %s: %s", fe.Field, fe.Message)
		}
		return errors.New(b.String())
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("document generation was canceled")
	default:
		return fmt.Errorf("document generation failed: %w", err)
	}
}

// writeDocumentText renders the document tree as plain text
func writeDocumentText(w io.Writer, doc *models.Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n\n", doc.Title)
	for _, row := range doc.Info {
		fmt.Fprintf(tw, "%s\t%s\n", row.Label, row.Value)
	}
	fmt.Fprintln(tw)

	for _, party := range doc.Parties {
		fmt.Fprintf(tw, "%s\n%s\n", party.Title, party.Name)
		for _, line := range party.Lines {
			fmt.Fprintln(tw, line)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintln(tw, doc.Items.Title)
	fmt.Fprintln(tw, strings.Join(doc.Items.Columns, "\t"))
	for _, row := range doc.Items.Rows {
		fmt.Fprintln(tw, strings.Join(row.Cells, "\t"))
	}
	fmt.Fprintln(tw)

	if doc.Totals != nil {
		for _, row := range doc.Totals.Rows {
			fmt.Fprintf(tw, "%s\t%s\n", row.Label, row.Value)
		}
		fmt.Fprintln(tw)
	}
	if doc.PaymentNote != "" {
		fmt.Fprintln(tw, doc.PaymentNote)
	}
	fmt.Fprintln(tw, doc.Footer)

	return tw.Flush()
}
