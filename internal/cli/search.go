package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"blockpad/internal/service"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search documents by title and content",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	docs := documents.SearchDocuments(args[0])

	if searchJSON {
		summaries := make([]service.DocumentSummary, len(docs))
		for i, d := range docs {
			summaries[i] = service.Summarize(d)
		}
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No matches.")
		return nil
	}
	for _, d := range docs {
		cmd.Printf("%-36s  %s\n", d.ID, d.Title)
	}
	return nil
}
