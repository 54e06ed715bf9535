package afemit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/autofit/afstyle"
)

// Emitter serializes a style table.
type Emitter interface {
	Emit(w io.Writer, t *afstyle.Table) error
}

// ByName returns an emitter for a format name, either "go" or "yaml".
// pkg is the package name for Go source output.
func ByName(format, pkg string) (Emitter, error) {
	switch strings.ToLower(format) {
	case "go":
		return GoSource{Package: pkg}, nil
	case "yaml", "yml":
		return YAML{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// Render validates t and serializes it to memory.
func Render(e Emitter, t *afstyle.Table) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to emit invalid table: %w", err)
	}
	var buf bytes.Buffer
	if err := e.Emit(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile validates t, serializes it and writes the result to path.
//
// Output is first written to a temporary file in the directory of path,
// which then replaces path. If anything fails, path is left untouched and
// the temporary file is removed. Errors are not retried.
//
// If path exists and is not a regular file, e.g. a device or a symbolic
// link, it is never replaced. Output is written through it instead.
func WriteFile(path string, e Emitter, t *afstyle.Table) (err error) {
	data, err := Render(e, t)
	if err != nil {
		return err
	}
	if fi, lerr := os.Lstat(path); lerr == nil && !fi.Mode().IsRegular() {
		return writeThrough(path, data)
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("cannot create output for %s: %w", path, err)
	}
	tmp, closed := f.Name(), false
	defer func() {
		if !closed {
			f.Close()
		}
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	closed = true
	if err = f.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	tracer().Infof("wrote %d bytes to %s", len(data), path)
	return nil
}

// writeThrough writes data to an existing path without replacing it.
func writeThrough(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	tracer().Infof("wrote %d bytes to %s", len(data), path)
	return nil
}
