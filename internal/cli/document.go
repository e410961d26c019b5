package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNew,
}

var showCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Print a document's blocks",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var renameCmd = &cobra.Command{
	Use:   "rename [doc-id] [title]",
	Short: "Change a document's title",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var starCmd = &cobra.Command{
	Use:   "star [doc-id]",
	Short: "Toggle a document's star",
	Args:  cobra.ExactArgs(1),
	RunE:  runStar,
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(starCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	title := ""
	if len(args) > 0 {
		title = args[0]
	}
	doc, ok := documents.CreateDocument(cmd.Context(), title)
	if !ok {
		return fmt.Errorf("create document failed")
	}
	cmd.Printf("Created %s (%s)\n", doc.ID, doc.Title)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, ok := documents.GetDocument(args[0])
	if !ok {
		return fmt.Errorf("document %s not found", args[0])
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	id, title := args[0], strings.TrimSpace(args[1])
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if !documents.RenameDocument(cmd.Context(), id, title) {
		return fmt.Errorf("document %s not found", id)
	}
	cmd.Printf("Renamed %s to %q\n", id, title)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if !documents.DeleteDocument(cmd.Context(), args[0]) {
		return fmt.Errorf("delete %s failed", args[0])
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}

func runStar(cmd *cobra.Command, args []string) error {
	doc, ok := documents.ToggleStar(cmd.Context(), args[0])
	if !ok {
		return fmt.Errorf("document %s not found", args[0])
	}
	if doc.Starred {
		cmd.Printf("Starred %s\n", doc.ID)
	} else {
		cmd.Printf("Unstarred %s\n", doc.ID)
	}
	return nil
}
