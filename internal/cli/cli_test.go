package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockpad/internal/config"
	"blockpad/internal/service"
	"blockpad/internal/storage"
)

// setupTestServices wires the package-level services to an in-memory
// store so commands run without touching the filesystem.
func setupTestServices(t *testing.T) func() {
	t.Helper()
	oldCfg, oldStore, oldDocs, oldAssistant := cfg, store, documents, assistant

	cfg = config.Default()
	cfg.Backend = config.BackendMemory
	cfg.BackupDir = t.TempDir()
	store = storage.NewMemoryStore()
	documents = service.NewDocumentService(store, service.NopEmitter{})
	assistant = service.NewAssistantService(1)

	return func() {
		cfg, store, documents, assistant = oldCfg, oldStore, oldDocs, oldAssistant
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "blockpad", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "new", "show", "export", "import", "search", "delete", "rename", "star", "backup", "mcp"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "data-dir", "backend", "verbose"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestNewCmd_CreatesDocument(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "new", "Meeting Notes")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
	assert.Contains(t, out, "Meeting Notes")

	assert.Len(t, documents.ListDocuments(), 1)
}

func TestListCmd_ShowsDocuments(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	doc, _ := documents.CreateDocument(context.Background(), "Visible Title")

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, doc.ID)
	assert.Contains(t, out, "Visible Title")
}

func TestListCmd_EmptyStore(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents.")
}

func TestShowCmd_UnknownID(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestExportCmd_Markdown(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	doc, _ := documents.CreateDocument(context.Background(), "Export Me")

	out, err := execute(t, "export", doc.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "# Export Me")
}

func TestExportCmd_HTML(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	doc, _ := documents.CreateDocument(context.Background(), "Export Me")

	out, err := execute(t, "export", "--html", doc.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	exportHTML = false
}

func TestSearchCmd_Matches(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	documents.CreateDocument(context.Background(), "Quarterly Roadmap")
	documents.CreateDocument(context.Background(), "Groceries")

	out, err := execute(t, "search", "roadmap")
	require.NoError(t, err)
	assert.Contains(t, out, "Quarterly Roadmap")
	assert.NotContains(t, out, "Groceries")
}

func TestRenameAndDeleteCmds(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	ctx := context.Background()

	doc, _ := documents.CreateDocument(ctx, "Old Title")

	_, err := execute(t, "rename", doc.ID, "New Title")
	require.NoError(t, err)
	got, _ := documents.GetDocument(doc.ID)
	assert.Equal(t, "New Title", got.Title)

	_, err = execute(t, "delete", doc.ID)
	require.NoError(t, err)
	_, ok := documents.GetDocument(doc.ID)
	assert.False(t, ok)
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	s := strings.Repeat("é", 40)
	got := truncate(s, 30)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 30, len([]rune(got)))
	assert.Equal(t, strings.Repeat("é", 29)+"…", got)

	assert.Equal(t, "short", truncate("short", 30))
}

func TestStartServices_WiresAutosaveAndBackup(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	ctx := context.Background()

	cfg.AutosaveDelayMS = 60_000
	cfg.BackupSchedule = "@hourly"

	stop, err := startServices(ctx)
	require.NoError(t, err)

	doc, _ := documents.CreateDocument(ctx, "Draft")
	got, ok := documents.InsertBlock(ctx, doc.ID, "", "- item")
	require.True(t, ok)
	assert.Len(t, got.Content, 3)

	// The edit is debounced: the store still holds the pre-edit copy,
	// but service reads see the queued snapshot.
	raw, _ := store.Get(doc.ID)
	assert.Len(t, raw.Content, 2)
	seen, _ := documents.GetDocument(doc.ID)
	assert.Len(t, seen.Content, 3)

	// Shutdown flushes the pending edit and detaches the autosaver.
	stop()
	raw, _ = store.Get(doc.ID)
	assert.Len(t, raw.Content, 3)

	got, ok = documents.InsertBlock(ctx, doc.ID, "", "after shutdown")
	require.True(t, ok)
	raw, _ = store.Get(doc.ID)
	assert.Len(t, raw.Content, len(got.Content), "post-shutdown edits must write through")
}

func TestStartServices_RejectsBadBackupSchedule(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	cfg.BackupSchedule = "not a cron expr"
	_, err := startServices(context.Background())
	require.Error(t, err)
}

func TestBackupCmd_WritesFiles(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	documents.CreateDocument(context.Background(), "Backed Up")

	out, err := execute(t, "backup")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 file(s)")
}
