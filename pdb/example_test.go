package pdb_test

import (
	"fmt"

	"github.com/tikz/synperm/pdb"
)

func ExamplePermute() {
	raw := []byte(`HEADER    EXAMPLE
ATOM      1  N   GLY A   1      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  CA  GLY A   1      11.639   6.071  -5.147  1.00  0.00           C
ATOM      3  N   SER A   2       9.287   7.310  -4.540  1.00  0.00           N
ATOM      4  CA  SER A   2       8.519   7.527  -3.319  1.00  0.00           C
ATOM      5  CB  SER A   2       7.047   7.761  -3.648  1.00  0.00           C
END
`)
	records := pdb.SplitRecords(raw)
	m := pdb.ExtractBoundaries(records, pdb.DefaultChain)
	fmt.Println("offsets:", m.Offsets())

	perms, err := pdb.Permute(records, m)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, perm := range perms {
		fmt.Printf("%s moves %d records, starts with %q\n",
			perm.FileName("example"), perm.Offset, string(perm.Records[0][:11]))
	}

	seq, _ := pdb.Sequence(records)
	fmt.Println("sequence:", seq)

	// Output:
	// offsets: [3 5]
	// example_permutation_1.pdb moves 3 records, starts with "ATOM      3"
	// example_permutation_0.pdb moves 5 records, starts with "ATOM      1"
	// sequence: GS
}
