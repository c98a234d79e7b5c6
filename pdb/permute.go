package pdb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoResidues is returned when no record matched the chain token.
	ErrNoResidues = errors.New("no residue records")

	// ErrOffsetRange is returned when an offset is larger than the records it rotates.
	ErrOffsetRange = errors.New("offset out of range")
)

// Permutation is one circular permutation of a structure.
type Permutation struct {
	Index   int      // permutation number, 0 for the largest offset
	Offset  int      // records moved from the end to the front
	Records []Record // the whole permuted record stream

	// Aligned is false when the cut falls inside a residue's records.
	Aligned bool
}

// Rotate moves the last offset records to the front.
// The result is a new slice; records is not modified.
func Rotate(records []Record, offset int) ([]Record, error) {
	if offset < 0 || offset > len(records) {
		return nil, fmt.Errorf("%d of %d records: %w", offset, len(records), ErrOffsetRange)
	}

	cut := len(records) - offset
	rotated := make([]Record, 0, len(records))
	rotated = append(rotated, records[cut:]...)
	rotated = append(rotated, records[:cut]...)
	return rotated, nil
}

// Permute generates one permutation per offset of the boundary map.
//
// Only the records up to the last matched one are rotated. Records after it,
// such as TER and END, stay at the end of every permutation. Permutations are
// numbered from len(offsets)-1 for the smallest offset down to 0 for the largest.
func Permute(records []Record, m *BoundaryMap) ([]Permutation, error) {
	if m.Len() == 0 {
		return nil, fmt.Errorf("chain %s: %w", m.Chain, ErrNoResidues)
	}
	if m.End > len(records) {
		return nil, fmt.Errorf("boundary map ends at record %d of %d: %w", m.End, len(records), ErrOffsetRange)
	}

	body, footer := records[:m.End], records[m.End:]
	offsets := m.Offsets()

	perms := make([]Permutation, 0, len(offsets))
	index := len(offsets) - 1
	for _, offset := range offsets {
		rotated, err := Rotate(body, offset)
		if err != nil {
			return nil, fmt.Errorf("permutation %d: %w", index, err)
		}

		perms = append(perms, Permutation{
			Index:   index,
			Offset:  offset,
			Records: append(rotated, footer...),
			Aligned: aligned(body, len(body)-offset, m.Chain),
		})
		index--
	}

	return perms, nil
}

// aligned reports whether cutting records at position cut keeps every residue whole.
func aligned(records []Record, cut int, chain string) bool {
	before, ok := lastResidue(records[:cut], chain)
	if !ok {
		return true
	}
	for match := range Matched(records[cut:], chain) {
		return match.Residue != before
	}
	return true
}

func lastResidue(records []Record, chain string) (int, bool) {
	for i := len(records) - 1; i >= 0; i-- {
		if residue, ok := records[i].ResidueNumber(chain); ok {
			return residue, true
		}
	}
	return 0, false
}

// FileName returns the file name of the permutation for a structure stem.
func (p Permutation) FileName(stem string) string {
	return fmt.Sprintf("%s_permutation_%d.pdb", stem, p.Index)
}

// Bytes returns the permuted PDB text.
func (p Permutation) Bytes() []byte {
	var b strings.Builder
	for _, record := range p.Records {
		b.WriteString(string(record))
	}
	return []byte(b.String())
}
