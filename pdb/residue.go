package pdb

import (
	"fmt"
	"strings"
)

var residueNames = [...][3]string{
	{"Alanine", "Ala", "A"},
	{"Arginine", "Arg", "R"},
	{"Asparagine", "Asn", "N"},
	{"Aspartic acid", "Asp", "D"},
	{"Cysteine", "Cys", "C"},
	{"Glutamic acid", "Glu", "E"},
	{"Glutamine", "Gln", "Q"},
	{"Glycine", "Gly", "G"},
	{"Histidine", "His", "H"},
	{"Isoleucine", "Ile", "I"},
	{"Leucine", "Leu", "L"},
	{"Lysine", "Lys", "K"},
	{"Methionine", "Met", "M"},
	{"Phenylalanine", "Phe", "F"},
	{"Proline", "Pro", "P"},
	{"Serine", "Ser", "S"},
	{"Threonine", "Thr", "T"},
	{"Tryptophan", "Trp", "W"},
	{"Tyrosine", "Tyr", "Y"},
	{"Valine", "Val", "V"},
}

// representativeAtom is the atom whose records stand for a whole residue in a sequence.
const representativeAtom = "CA"

// IsAminoacid returns true if the given letter is an aminoacid, false otherwise.
func IsAminoacid(letter string) bool {
	for _, res := range residueNames {
		if res[2] == letter {
			return true
		}
	}
	return false
}

// AminoacidNames receives a name and returns all the possible representations as strings.
// The name is case-insensitive and can be either a full aminoacid name, one or three letter abbreviation.
// Unknown names are returned as is, with "Unk" and "X" abbreviations.
func AminoacidNames(input string) (string, string, string) {
	for _, res := range residueNames {
		for _, n := range res {
			if strings.EqualFold(n, input) {
				return res[0], res[1], res[2]
			}
		}
	}

	return input, "Unk", "X"
}

// Sequence extracts the one-letter sequence of the structure from its CA ATOM records.
// A record repeating the residue number of the previous CA record is skipped;
// a number reappearing after a different one is not. Non-standard residues are left out.
func Sequence(records []Record) (string, error) {
	var seq strings.Builder
	var prev int64
	var seen bool

	for i, record := range records {
		if !record.IsAtom() || record.AtomName() != representativeAtom {
			continue
		}

		name, err := record.ResidueName()
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		number, err := record.SequenceNumber()
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}

		if seen && number == prev {
			continue
		}
		prev, seen = number, true

		// Three letter names only; "A" is also the one letter code of alanine.
		if len(name) != 3 {
			continue
		}
		_, _, abbrv1 := AminoacidNames(name)
		if abbrv1 == "X" {
			continue
		}
		seq.WriteString(abbrv1)
	}

	return seq.String(), nil
}
