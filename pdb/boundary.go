package pdb

// DefaultChain is the chain token used when none is configured.
const DefaultChain = "A"

// BoundaryMap holds the number of records of each residue of a chain,
// in the order residue numbers are first seen.
type BoundaryMap struct {
	Chain    string
	Residues []int       // residue numbers, first-seen order
	Counts   map[int]int // residue number to record count

	// Fragmented lists residue numbers seen again after a different one.
	// Their records are still counted under the first group, so offsets
	// computed from this map can cut through a residue.
	Fragmented []int

	// End is one past the position of the last matched record.
	End int
}

// ExtractBoundaries scans the records once and counts the records of each residue of chain.
func ExtractBoundaries(records []Record, chain string) *BoundaryMap {
	m := &BoundaryMap{
		Chain:  chain,
		Counts: make(map[int]int),
	}

	flagged := make(map[int]bool)
	last, started := 0, false
	for match := range Matched(records, chain) {
		count, seen := m.Counts[match.Residue]
		switch {
		case !seen:
			m.Residues = append(m.Residues, match.Residue)
		case started && last != match.Residue && !flagged[match.Residue]:
			flagged[match.Residue] = true
			m.Fragmented = append(m.Fragmented, match.Residue)
		}

		m.Counts[match.Residue] = count + 1
		m.End = match.Position + 1
		last, started = match.Residue, true
	}

	return m
}

// Len returns the number of distinct residues.
func (m *BoundaryMap) Len() int {
	return len(m.Residues)
}

// Total returns the number of matched records.
func (m *BoundaryMap) Total() int {
	var total int
	for _, count := range m.Counts {
		total += count
	}
	return total
}

// Offsets returns the running sum of the residue counts, last residue first.
// Each offset is the number of trailing records moved to the front by one rotation.
func (m *BoundaryMap) Offsets() []int {
	offsets := make([]int, 0, len(m.Residues))

	var sum int
	for i := len(m.Residues) - 1; i >= 0; i-- {
		sum += m.Counts[m.Residues[i]]
		offsets = append(offsets, sum)
	}
	return offsets
}
