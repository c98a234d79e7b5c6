package synperm

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/tikz/synperm/topology"
)

// SheetHeader is the header row of a sequence sheet.
var SheetHeader = []string{"pdb", "sequence", "topology"}

// WriteSheet writes one CSV row per *.pdb file in dir, with the file stem,
// its one-letter sequence and its topology label from table.
// Files that cannot be read or parsed are logged and skipped.
// It returns the number of rows written.
func WriteSheet(w io.Writer, dir string, table topology.Table, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.pdb"))
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", dir, err)
	}
	logger.Info("found PDB files", "count", len(paths), "dir", dir)

	cw := csv.NewWriter(w)
	if err := cw.Write(SheetHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	var rows int
	for _, path := range paths {
		structure, err := LoadPDB(path)
		if err != nil {
			logger.Error("skip file", "pdb", Stem(path), "err", err)
			continue
		}
		seq, err := structure.Sequence()
		if err != nil {
			logger.Error("skip file", "pdb", structure.ID, "err", err)
			continue
		}

		label := table.Lookup(filepath.Base(path))
		if err := cw.Write([]string{structure.ID, seq, label}); err != nil {
			return rows, fmt.Errorf("write row %s: %w", structure.ID, err)
		}
		rows++

		logLabel := label
		if logLabel == "" {
			logLabel = "N/A"
		}
		logger.Info("processed", "pdb", structure.ID, "residues", len(seq), "topology", logLabel)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("flush sheet: %w", err)
	}
	return rows, nil
}
