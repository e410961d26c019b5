package cli

import (
	"github.com/spf13/cobra"

	"blockpad/internal/service"
)

var backupDir string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export every document to a directory of markdown files",
	Args:  cobra.NoArgs,
	RunE:  runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupDir, "dir", "", "backup directory (default from config)")
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, _ []string) error {
	dir := backupDir
	if dir == "" {
		dir = cfg.BackupDir
	}
	backup := service.NewBackupService(documents, dir, service.NopEmitter{})
	n, err := backup.RunBackup(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Wrote %d file(s) to %s\n", n, dir)
	return nil
}
