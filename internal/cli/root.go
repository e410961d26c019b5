package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"blockpad/internal/config"
	"blockpad/internal/domain"
	"blockpad/internal/logger"
	mcpserver "blockpad/internal/mcp"
	"blockpad/internal/service"
	"blockpad/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Root command — shared flags and service wiring
// ─────────────────────────────────────────────────────────────

var (
	flagConfig  string
	flagDataDir string
	flagBackend string
	flagVerbose bool
)

// Package-level services, wired by initServices before any RunE.
// Tests swap these for mocks.
var (
	cfg        config.Config
	store      domain.DocumentStore
	documents  *service.DocumentService
	assistant  *service.AssistantService
	closeStore func()
)

var rootCmd = &cobra.Command{
	Use:   "blockpad",
	Short: "Block-based document editor",
	Long: `blockpad manages block-structured documents: create, edit,
search, and export them as markdown or HTML. Run "blockpad mcp" to
expose the same operations to AI agents over MCP.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	PersistentPostRun: func(*cobra.Command, []string) {
		if closeStore != nil {
			closeStore()
			closeStore = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.blockpad/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "override data directory")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: blob, sqlite, memory")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initServices(cmd *cobra.Command, _ []string) error {
	// Tests inject their own services; don't overwrite them.
	if documents != nil {
		return nil
	}

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	logger.Init(level)

	store, closeStore, err = openStore(cfg)
	if err != nil {
		return err
	}
	documents = service.NewDocumentService(store, service.NopEmitter{})
	assistant = service.NewAssistantService(0)
	return nil
}

func openStore(cfg config.Config) (domain.DocumentStore, func(), error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := storage.OpenDB(filepath.Join(cfg.DataDir, "blockpad.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return storage.NewSQLiteStore(db), func() { db.Close() }, nil
	case config.BackendMemory:
		return storage.NewMemoryStore(), func() {}, nil
	default:
		s, err := storage.NewBlobStore(filepath.Join(cfg.DataDir, "documents.json"))
		if err != nil {
			return nil, nil, fmt.Errorf("open blob store: %w", err)
		}
		return s, func() {}, nil
	}
}

func newMCPServer() *mcpserver.Server {
	return mcpserver.New(mcpserver.Deps{
		Documents: documents,
		Assistant: assistant,
	})
}
