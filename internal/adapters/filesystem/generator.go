package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"filegen/internal/application"
	"filegen/internal/domain"
	"filegen/internal/ports"
)

// Generator implements ports.StructureWriter on the local filesystem
type Generator struct {
	dirPerm   os.FileMode
	filePerm  os.FileMode
	execGlobs []string
	logger    ports.Logger
}

// Ensure Generator implements StructureWriter
var _ ports.StructureWriter = (*Generator)(nil)

// Option configures a Generator
type Option func(*Generator)

// WithDirPerm sets the permission bits for new directories
func WithDirPerm(perm os.FileMode) Option {
	return func(g *Generator) {
		g.dirPerm = perm
	}
}

// WithFilePerm sets the permission bits for new files
func WithFilePerm(perm os.FileMode) Option {
	return func(g *Generator) {
		g.filePerm = perm
	}
}

// WithExecGlobs marks files whose relative path matches one of the globs as executable
func WithExecGlobs(globs ...string) Option {
	return func(g *Generator) {
		g.execGlobs = append(g.execGlobs, globs...)
	}
}

// WithLogger reports each created or skipped path
func WithLogger(logger ports.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a new filesystem generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		dirPerm:  0755,
		filePerm: 0644,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Write creates the output root, then every directory, then every file.
// Existing files are skipped unless opts.Force is set.
func (g *Generator) Write(ctx context.Context, entries []domain.Entry, opts ports.WriteOptions) (*domain.GenerationStats, error) {
	root := application.ExpandHome(opts.OutputDir)
	stats := &domain.GenerationStats{}

	if !opts.DryRun {
		if err := os.MkdirAll(root, g.dirPerm); err != nil {
			return nil, &application.GenerationError{Path: root, Err: err}
		}
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := g.ensureDir(root, e, opts, stats); err != nil {
			g.fail(stats, "Failed to create directory %s: %v", e.Path, err)
		}
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := g.ensureFile(root, e, opts, stats); err != nil {
			g.fail(stats, "Failed to create file %s: %v", e.Path, err)
		}
	}

	return stats, nil
}

func (g *Generator) ensureDir(root string, e domain.Entry, opts ports.WriteOptions, stats *domain.GenerationStats) error {
	target, err := SafeJoin(root, e.Path)
	if err != nil {
		return err
	}

	info, err := os.Lstat(target)
	switch {
	case err == nil && info.IsDir():
		g.debug("  [DIR] %s (exists)", e.Path)
		return nil

	case err == nil:
		return fmt.Errorf("a file already exists at %s", target)

	case os.IsNotExist(err):
		if !opts.DryRun {
			if err := os.MkdirAll(target, g.dirPerm); err != nil {
				return err
			}
		}
		stats.DirectoriesCreated++
		g.debug("  [DIR] %s", e.Path)
		return nil

	default:
		return err
	}
}

func (g *Generator) ensureFile(root string, e domain.Entry, opts ports.WriteOptions, stats *domain.GenerationStats) error {
	target, err := SafeJoin(root, e.Path)
	if err != nil {
		return err
	}

	info, err := os.Lstat(target)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("a directory already exists at %s", target)

	case err == nil && !opts.Force:
		stats.FilesSkipped++
		if g.logger != nil {
			g.logger.Warn("  [SKIP] %s (already exists)", e.Path)
		}
		return nil

	case err != nil && !os.IsNotExist(err):
		return err
	}

	if !opts.DryRun {
		if err := os.MkdirAll(filepath.Dir(target), g.dirPerm); err != nil {
			return err
		}
		mode := g.fileMode(e.Path)
		if err := os.WriteFile(target, []byte(e.Content), mode); err != nil {
			return err
		}
		if mode != g.filePerm {
			if err := os.Chmod(target, mode); err != nil {
				return err
			}
		}
	}

	stats.FilesCreated++
	stats.Written = append(stats.Written, e.Path)
	g.debug("  [FILE] %s", e.Path)
	return nil
}

// fileMode picks the permission bits for a relative path
func (g *Generator) fileMode(rel string) os.FileMode {
	for _, pattern := range g.execGlobs {
		pattern = filepath.ToSlash(pattern)
		if ok, _ := filepath.Match(pattern, rel); ok {
			return 0755
		}
		if ok, _ := filepath.Match(pattern, domain.BaseName(rel)); ok && !strings.Contains(pattern, "/") {
			return 0755
		}
	}
	return g.filePerm
}

func (g *Generator) fail(stats *domain.GenerationStats, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	stats.Errors = append(stats.Errors, msg)
	if g.logger != nil {
		g.logger.Error("  [ERROR] %s", msg)
	}
}

func (g *Generator) debug(format string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(format, args...)
	}
}

// SafeJoin joins a forward-slash relative path onto root and refuses
// results that would land outside root
func SafeJoin(root, rel string) (string, error) {
	cleanRoot := filepath.Clean(root)
	target := filepath.Join(cleanRoot, filepath.FromSlash(rel))

	r, err := filepath.Rel(cleanRoot, target)
	if err != nil {
		return "", err
	}
	r = filepath.ToSlash(r)
	if r == ".." || strings.HasPrefix(r, "../") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("path escapes the output directory: %s", rel)
	}
	return target, nil
}
