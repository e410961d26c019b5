package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/cron/v3"

	"blockpad/internal/editor"
	"blockpad/internal/logger"
)

// ─────────────────────────────────────────────────────────────
// Backup Service — scheduled markdown exports
// ─────────────────────────────────────────────────────────────

// DefaultBackupSchedule runs the export once an hour.
const DefaultBackupSchedule = "@hourly"

// BackupService periodically exports every document to a directory of
// markdown files. Backups are plain files on purpose: they stay
// readable even if the store format changes.
type BackupService struct {
	docs    *DocumentService
	emitter EventEmitter
	dir     string
	sched   *cron.Cron
}

// NewBackupService creates a BackupService writing into dir.
func NewBackupService(docs *DocumentService, dir string, emitter EventEmitter) *BackupService {
	if emitter == nil {
		emitter = NopEmitter{}
	}
	return &BackupService{docs: docs, emitter: emitter, dir: dir}
}

// Start schedules RunBackup on the given cron expression. An empty
// expression falls back to DefaultBackupSchedule.
func (s *BackupService) Start(ctx context.Context, schedule string) error {
	if schedule == "" {
		schedule = DefaultBackupSchedule
	}
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if n, err := s.RunBackup(ctx); err != nil {
			logger.Sugar.Errorw("scheduled backup failed", "error", err)
		} else {
			logger.Sugar.Infow("scheduled backup done", "documents", n)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}
	c.Start()
	s.sched = c
	return nil
}

// Stop halts the schedule. A never-started service is a no-op.
func (s *BackupService) Stop() {
	if s.sched != nil {
		s.sched.Stop()
		s.sched = nil
	}
}

// RunBackup exports every document to <dir>/<slug>-<id>.md and
// returns how many files were written.
func (s *BackupService) RunBackup(ctx context.Context) (int, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return 0, fmt.Errorf("create backup dir: %w", err)
	}

	docs := s.docs.ListDocuments()
	written := 0
	for _, doc := range docs {
		name := fmt.Sprintf("%s-%s.md", slugify(doc.Title), doc.ID)
		path := filepath.Join(s.dir, name)
		if err := os.WriteFile(path, []byte(editor.ExportMarkdown(doc)+"\n"), 0644); err != nil {
			return written, fmt.Errorf("write backup %s: %w", name, err)
		}
		written++
	}

	s.emitter.Emit(ctx, EventBackupDone, written)
	return written, nil
}

// slugify reduces a title to a short filesystem-safe prefix.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "document"
	}
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return slug
}
