package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"blockpad/internal/logger"
	"blockpad/internal/service"
	"blockpad/internal/storage"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve documents to AI agents over MCP on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	stop, err := startServices(cmd.Context())
	if err != nil {
		return err
	}
	defer stop()

	if err := newMCPServer().ServeStdio(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// startServices brings up the long-running pieces around the MCP
// server: debounced autosave for block edits, the scheduled backup,
// and the on-disk store watcher. The returned stop function flushes
// and tears them all down.
func startServices(ctx context.Context) (func(), error) {
	saver := service.NewAutosaver(store, time.Duration(cfg.AutosaveDelayMS)*time.Millisecond)
	documents.SetAutosaver(saver)

	backup := service.NewBackupService(documents, cfg.BackupDir, service.LogEmitter{})
	if err := backup.Start(ctx, cfg.BackupSchedule); err != nil {
		documents.SetAutosaver(nil)
		saver.Close()
		return nil, err
	}

	// Only the blob backend has a file another process can rewrite.
	var watcher *service.StoreWatcher
	if bs, ok := store.(*storage.BlobStore); ok {
		w, err := service.NewStoreWatcher(bs.Path(), service.LogEmitter{})
		if err != nil {
			logger.Sugar.Warnw("store watcher unavailable", "error", err)
		} else {
			watcher = w
		}
	}

	return func() {
		if watcher != nil {
			watcher.Close()
		}
		backup.Stop()
		documents.SetAutosaver(nil)
		saver.Close()
	}, nil
}
