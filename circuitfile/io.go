package circuitfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// MaxFileBytes caps the decoded size of a circuit file. Lesson circuits are
// a few kilobytes; the cap keeps a small .zst from expanding without bound.
const MaxFileBytes = 1 << 20

// maxWindow is the largest window zstd.NewWriter picks at any level.
const maxWindow = 8 << 20

// Compressed reports whether path names a zstd-compressed circuit file.
func Compressed(path string) bool { return strings.HasSuffix(path, ".zst") }

// Load reads and parses a circuit file. Paths ending in ".zst" are
// decompressed with zstd first. Files decoding to more than MaxFileBytes
// fail with ErrTooLarge.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if Compressed(path) {
		dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxWindow(maxWindow))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	raw, err := io.ReadAll(io.LimitReader(r, MaxFileBytes+1))
	if errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrTooLarge, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(raw) > MaxFileBytes {
		return nil, fmt.Errorf("%s: %w: over %d bytes", path, ErrTooLarge, MaxFileBytes)
	}
	cf, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cf, nil
}

// Save encodes f as YAML and writes it to path, compressing when the path
// ends in ".zst".
func Save(path string, f *File) error {
	data, err := Encode(f)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if !Compressed(path) {
		if _, err := out.Write(data); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	}

	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = out.Close()
		return err
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		_ = out.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

var fileExts = []string{".yaml", ".yml", ".json", ".yaml.zst", ".yml.zst", ".json.zst"}

// IsCircuitFile reports whether name has a recognised circuit file extension.
func IsCircuitFile(name string) bool {
	for _, ext := range fileExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// LoadDir loads every circuit file directly inside dir, ordered by file name.
// The first failing file aborts the load.
func LoadDir(dir string) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && IsCircuitFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]*File, 0, len(names))
	for _, name := range names {
		f, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}
