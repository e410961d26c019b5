package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"blockpad/internal/editor"
)

var exportHTML bool

var exportCmd = &cobra.Command{
	Use:   "export [doc-id]",
	Short: "Export a document as markdown or HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Create a document from a markdown file (or stdin with -)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "render HTML instead of markdown")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	doc, ok := documents.GetDocument(args[0])
	if !ok {
		return fmt.Errorf("document %s not found", args[0])
	}

	if exportHTML {
		html, err := editor.RenderHTML(doc)
		if err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		cmd.Println(html)
		return nil
	}
	cmd.Println(editor.ExportMarkdown(doc))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, ok := documents.ImportMarkdown(cmd.Context(), string(data))
	if !ok {
		return fmt.Errorf("import failed")
	}
	cmd.Printf("Imported %s (%s, %d blocks)\n", doc.ID, doc.Title, len(doc.Content))
	return nil
}
