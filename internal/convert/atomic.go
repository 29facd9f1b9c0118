package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/csv2lua/pkg/types"
)

// outputMode is the permission of a written table file.
const outputMode = 0o644

// writeOutput writes data to path the way opening it for writing would.
// Symlinks are followed, so the link stays and its target is replaced.
// Existing targets that are not regular files, such as devices and pipes,
// and dangling symlinks are written in place. Everything else goes through
// writeFileAtomic.
func writeOutput(path string, data []byte) error {
	target, err := filepath.EvalSymlinks(path)
	switch {
	case err == nil:
		info, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("%w: stat %s: %w", types.ErrOutput, target, err)
		}
		if !info.Mode().IsRegular() {
			return writeFileInPlace(target, data)
		}
		return writeFileAtomic(target, data)
	case errors.Is(err, os.ErrNotExist):
		if info, lerr := os.Lstat(path); lerr == nil && info.Mode()&os.ModeSymlink != 0 {
			return writeFileInPlace(path, data)
		}
		return writeFileAtomic(path, data)
	default:
		return fmt.Errorf("%w: resolving %s: %w", types.ErrOutput, path, err)
	}
}

// writeFileInPlace truncates path, creating it if needed, and writes data.
func writeFileInPlace(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputMode)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", types.ErrOutput, path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing %s: %w", types.ErrOutput, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", types.ErrOutput, path, err)
	}
	return nil
}

// writeFileAtomic replaces path with data using the temp-file, fsync,
// rename pattern. On failure the destination is left as it was. Every
// error wraps types.ErrOutput.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".csv2lua-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file for %s: %w", types.ErrOutput, path, err)
	}
	tmpName := tmp.Name()

	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s %s: %w", types.ErrOutput, step, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("writing", err)
	}
	if err := tmp.Chmod(outputMode); err != nil {
		return fail("setting mode of", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file for %s: %w", types.ErrOutput, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming temp file to %s: %w", types.ErrOutput, path, err)
	}
	return nil
}
