package reconciler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

// FileResultWriter persists resolved blocks as <outputRoot>/out/<block hash>.
// A result is written once; an existing file is never replaced.
type FileResultWriter struct {
	dir string
}

// NewFileResultWriter creates a writer under outputRoot.
func NewFileResultWriter(outputRoot string) *FileResultWriter {
	return &FileResultWriter{dir: filepath.Join(outputRoot, outputDirName)}
}

// Path returns where the result for block is stored.
func (w *FileResultWriter) Path(block model.ResolvedBlock) string {
	return filepath.Join(w.dir, block.BlockHash.String())
}

// Write stores the block hash followed by one resolved transaction hash per
// line. The content goes to a temporary file first and is published with a
// hard link, which fails if the target exists.
func (w *FileResultWriter) Write(ctx context.Context, block model.ResolvedBlock) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", w.dir, err)
	}

	target := w.Path(block)
	if exists, err := fileExists(target); err != nil {
		return err
	} else if exists {
		return duplicateResult(target)
	}

	tmp, err := os.CreateTemp(w.dir, "."+block.BlockHash.String()+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp result: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if err := writeResult(tmp, block); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp result %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp result %s: %w", tmpPath, err)
	}

	if err := publish(tmpPath, target); err != nil {
		return err
	}
	return syncDir(w.dir)
}

func writeResult(f *os.File, block model.ResolvedBlock) error {
	buf := bufio.NewWriter(f)
	if _, err := fmt.Fprintln(buf, block.BlockHash.String()); err != nil {
		return err
	}
	for _, tx := range block.ResolvedTxHashes {
		if _, err := fmt.Fprintln(buf, tx.String()); err != nil {
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

func publish(tmpPath, target string) error {
	err := os.Link(tmpPath, target)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		return duplicateResult(target)
	}

	// Filesystems without hard links fall back to an existence-checked rename.
	if exists, statErr := fileExists(target); statErr != nil {
		return statErr
	} else if exists {
		return duplicateResult(target)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("publish result %s: %w", target, err)
	}
	return nil
}

// syncDir flushes the directory entry of a published result.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open output dir %s: %w", dir, err)
	}
	defer d.Close()

	if err := d.Sync(); err != nil {
		return fmt.Errorf("sync output dir %s: %w", dir, err)
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

func duplicateResult(target string) error {
	return fmt.Errorf("%w: %s already exists", model.ErrDuplicateResult, target)
}
