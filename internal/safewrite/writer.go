// Package safewrite writes report files without ever replacing an existing
// file. When the target name is taken, a timestamped sibling name is used.
package safewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	DefaultTimestampFormat = "%Y%m%d_%H%M%S"

	// maxAttempts bounds the numeric suffixes tried after the timestamped name.
	maxAttempts = 10000

	createFlags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
)

// Writer creates files on fs. Path selection relies on exclusive create, so
// an existing file is never truncated even if it appears concurrently.
type Writer struct {
	fs    afero.Fs
	clock clockwork.Clock
	stamp *strftime.Strftime
}

type Option func(*Writer) error

func WithClock(clock clockwork.Clock) Option {
	return func(w *Writer) error {
		w.clock = clock
		return nil
	}
}

// WithTimestampFormat sets the strftime pattern of the conflict suffix.
func WithTimestampFormat(pattern string) Option {
	return func(w *Writer) error {
		stamp, err := strftime.New(pattern)
		if err != nil {
			return errors.Wrapf(err, "invalid timestamp format %q", pattern)
		}
		w.stamp = stamp
		return nil
	}
}

func New(fs afero.Fs, opts ...Option) (*Writer, error) {
	stamp, err := strftime.New(DefaultTimestampFormat)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	w := &Writer{fs: fs, clock: clockwork.NewRealClock(), stamp: stamp}
	for _, o := range opts {
		if err := o(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Write stores content at path, or at "<stem>_<timestamp><ext>" (then
// "<stem>_<timestamp>_<n><ext>") when path already exists. It returns the
// path actually written.
func (w *Writer) Write(path, content string) (string, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrapf(err, "cannot create directory %s", dir)
		}
	}

	ok, err := w.create(path, content)
	if err != nil {
		return "", err
	}
	if ok {
		return path, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	ts := w.stamp.FormatString(w.clock.Now())

	candidate := fmt.Sprintf("%s_%s%s", stem, ts, ext)
	for n := 1; n <= maxAttempts; n++ {
		ok, err := w.create(candidate, content)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%s_%d%s", stem, ts, n, ext)
	}
	return "", errors.Errorf("no free file name for %s after %d attempts", path, maxAttempts)
}

// create writes a new file. It reports false without error when the path
// is already taken.
func (w *Writer) create(path, content string) (bool, error) {
	f, err := w.fs.OpenFile(path, createFlags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "cannot create %s", path)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return false, errors.Wrapf(err, "cannot write %s", path)
	}
	if err := f.Close(); err != nil {
		return false, errors.Wrapf(err, "cannot close %s", path)
	}
	return true, nil
}
