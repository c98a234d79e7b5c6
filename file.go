package synperm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/tikz/synperm/pdb"
)

const (
	gzipExt = ".gz"
	zstdExt = ".zst"
)

// Stem returns the file name of path without compression suffix and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{gzipExt, zstdExt} {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadPDB reads a structure file, decompressing .gz and .zst files.
func LoadPDB(path string) (*pdb.PDB, error) {
	raw, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("load PDB: %w", err)
	}

	p := pdb.NewPDBFromRaw(raw)
	p.ID = Stem(path)
	p.LocalPath = path
	return p, nil
}

func read(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file
	switch filepath.Ext(path) {
	case gzipExt:
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	case zstdExt:
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		defer zr.Close()
		reader = zr
	}

	return io.ReadAll(reader)
}

// write creates filePath and writes data, closing the file on every path.
func write(filePath string, data []byte) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = file.Write(data)
	return err
}

// requireDir returns an error unless path is an existing directory.
func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
