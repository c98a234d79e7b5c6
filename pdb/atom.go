package pdb

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// ErrShortRecord is returned when a record is too short to hold a fixed-width column.
var ErrShortRecord = errors.New("record too short")

// Record is a single line of a PDB file.
// It is kept verbatim, including its line terminator, so that writing the
// records back reproduces the original bytes.
type Record string

// SplitRecords splits raw PDB text into records, keeping line terminators.
// A final line without a terminator is kept as is.
func SplitRecords(raw []byte) []Record {
	if len(raw) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(raw), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	records := make([]Record, len(lines))
	for i, line := range lines {
		records[i] = Record(line)
	}
	return records
}

// ResidueNumber reports the residue number of the record for the given chain token.
// The record is split on whitespace, and the token right after the first token
// equal to chain must be made only of decimal digits.
func (r Record) ResidueNumber(chain string) (int, bool) {
	tokens := strings.Fields(string(r))

	i := slices.Index(tokens, chain)
	if i < 0 || i == len(tokens)-1 {
		return 0, false
	}

	number := tokens[i+1]
	if !isDigits(number) {
		return 0, false
	}

	n, err := strconv.Atoi(number)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Match is a record attributed to a residue of the designated chain.
type Match struct {
	Position int // index of the record in the stream
	Residue  int // residue number
}

// Matched yields, in stream order, the records attributed to a residue of chain.
// Records failing the token rule are skipped.
func Matched(records []Record, chain string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for i, record := range records {
			residue, ok := record.ResidueNumber(chain)
			if !ok {
				continue
			}
			if !yield(Match{Position: i, Residue: residue}) {
				return
			}
		}
	}
}

// Fixed-width columns, as in
// https://www.wwpdb.org/documentation/file-format-content/format23/sect9.html#ATOM
func (r Record) column(start, end int) (string, error) {
	if len(r) < end {
		return "", fmt.Errorf("columns %d-%d: %w", start+1, end, ErrShortRecord)
	}
	return strings.TrimSpace(string(r[start:end])), nil
}

// RecordName returns the record type, e.g. ATOM or HETATM.
func (r Record) RecordName() string {
	if len(r) < 6 {
		return strings.TrimSpace(string(r))
	}
	return strings.TrimSpace(string(r[0:6]))
}

// IsAtom reports whether the line is an ATOM record.
func (r Record) IsAtom() bool {
	return strings.HasPrefix(string(r), "ATOM")
}

// AtomName returns the atom name, e.g. CA. Short records have an empty name.
func (r Record) AtomName() string {
	if len(r) <= 12 {
		return ""
	}
	end := min(len(r), 16)
	return strings.TrimSpace(string(r[12:end]))
}

// ResidueName returns the three-letter residue name.
func (r Record) ResidueName() (string, error) {
	return r.column(17, 20)
}

// SequenceNumber parses the residue sequence number column.
func (r Record) SequenceNumber() (int64, error) {
	field, err := r.column(22, 26)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("residue number %q: %w", field, err)
	}
	return n, nil
}
