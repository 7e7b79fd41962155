package commands

import (
	"context"
	"errors"
	"strings"

	"filegen/internal/domain"
	"filegen/internal/ports"
)

type fakeParser struct {
	entries  []domain.Entry
	warnings []string
	err      error
	got      string
}

func (p *fakeParser) Parse(content string) ([]domain.Entry, error) {
	p.got = content
	return p.entries, p.err
}

func (p *fakeParser) Warnings() []string {
	return p.warnings
}

type fakeWriter struct {
	calls []ports.WriteOptions
	stats *domain.GenerationStats
	err   error
}

func (w *fakeWriter) Write(ctx context.Context, entries []domain.Entry, opts ports.WriteOptions) (*domain.GenerationStats, error) {
	w.calls = append(w.calls, opts)
	if w.err != nil {
		return nil, w.err
	}
	if w.stats != nil {
		return w.stats, nil
	}
	dirs, files := domain.CountKinds(entries)
	return &domain.GenerationStats{DirectoriesCreated: dirs, FilesCreated: files}, nil
}

type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (c *fakeConfirmer) ConfirmOverwrite(conflicts []string) (bool, error) {
	c.asked = conflicts
	return c.answer, nil
}

type fakeHistory struct {
	runs []domain.GenerationRun
	err  error
}

func (h *fakeHistory) Open(path string) error { return nil }
func (h *fakeHistory) Close() error           { return nil }

func (h *fakeHistory) Record(run *domain.GenerationRun) (int64, error) {
	if h.err != nil {
		return 0, h.err
	}
	run.ID = int64(len(h.runs) + 1)
	h.runs = append(h.runs, *run)
	return run.ID, nil
}

func (h *fakeHistory) List(limit int) ([]domain.GenerationRun, error) {
	if h.err != nil {
		return nil, h.err
	}
	if limit < len(h.runs) {
		return h.runs[:limit], nil
	}
	return h.runs, nil
}

var errBoom = errors.New("boom")

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
