package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"blockpad/internal/service"
)

var (
	listSort string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", service.SortByModified, "sort order: modified, title, created")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	docs := documents.ListDocuments()
	service.SortDocuments(docs, listSort)

	summaries := make([]service.DocumentSummary, len(docs))
	for i, d := range docs {
		summaries[i] = service.Summarize(d)
	}

	if listJSON {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(summaries) == 0 {
		cmd.Println("No documents.")
		return nil
	}
	for _, s := range summaries {
		star := " "
		if s.Starred {
			star = "*"
		}
		cmd.Printf("%s %-36s  %-30s  %5d words  %s\n", star, s.ID, truncate(s.Title, 30), s.WordCount, s.UpdatedAt)
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
