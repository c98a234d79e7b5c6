package pdb

import (
	"fmt"
)

// PDB represents a single structure file as an ordered stream of records.
type PDB struct {
	ID      string   // file name without extension
	Records []Record // all lines of the file, verbatim

	LocalPath string // local path the structure was read from
}

// NewPDBFromRaw constructs a new instance from raw bytes.
func NewPDBFromRaw(raw []byte) *PDB {
	return &PDB{Records: SplitRecords(raw)}
}

// Boundaries counts the records of each residue of chain.
func (pdb *PDB) Boundaries(chain string) *BoundaryMap {
	return ExtractBoundaries(pdb.Records, chain)
}

// Permutations generates every residue-aligned circular permutation of chain.
func (pdb *PDB) Permutations(chain string) ([]Permutation, error) {
	perms, err := Permute(pdb.Records, pdb.Boundaries(chain))
	if err != nil {
		return nil, fmt.Errorf("permute %s: %w", pdb.ID, err)
	}
	return perms, nil
}

// Sequence returns the one-letter aminoacid sequence of the structure.
func (pdb *PDB) Sequence() (string, error) {
	seq, err := Sequence(pdb.Records)
	if err != nil {
		return "", fmt.Errorf("sequence %s: %w", pdb.ID, err)
	}
	return seq, nil
}
