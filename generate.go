// Package synperm generates residue-aligned circular permutations of PDB
// structures and writes them as numbered PDB files.
package synperm

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/tikz/synperm/pdb"
)

// ErrOutputDir is returned when the output directory does not exist.
var ErrOutputDir = errors.New("output directory not found")

// Options configures a Generate run.
type Options struct {
	Chain    string       // chain token, pdb.DefaultChain if empty
	Manifest bool         // also write <stem>_permutations.json
	Logger   *slog.Logger // slog.Default() if nil
}

// Artifact describes one permutation file.
type Artifact struct {
	Index   int    `json:"index"`
	Offset  int    `json:"offset"`
	File    string `json:"file"`
	Records int    `json:"records"`
	Aligned bool   `json:"aligned"`
	Digest  string `json:"blake3,omitempty"`

	Err error `json:"-"` // write error, nil on success
}

// Result holds the outcome of a Generate run.
type Result struct {
	Input      string
	Stem       string
	Boundaries *pdb.BoundaryMap
	Artifacts  []Artifact
}

// Written returns the number of artifacts written successfully.
func (r *Result) Written() int {
	var n int
	for _, a := range r.Artifacts {
		if a.Err == nil {
			n++
		}
	}
	return n
}

// Generate writes every circular permutation of the structure at inputPath
// into outputDir, which must already exist.
//
// A failure writing one permutation does not stop the others; the returned
// Result lists every attempt and the error joins the individual failures.
func Generate(inputPath, outputDir string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	chain := opts.Chain
	if chain == "" {
		chain = pdb.DefaultChain
	}

	if err := requireDir(outputDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	structure, err := LoadPDB(inputPath)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Input:      inputPath,
		Stem:       structure.ID,
		Boundaries: structure.Boundaries(chain),
	}
	logger = logger.With("pdb", structure.ID)

	if len(res.Boundaries.Fragmented) > 0 {
		logger.Warn("residue numbers reappear after other residues; their records are grouped together",
			"chain", chain, "residues", res.Boundaries.Fragmented)
	}

	perms, err := pdb.Permute(structure.Records, res.Boundaries)
	if err != nil {
		return res, fmt.Errorf("permute %s: %w", structure.ID, err)
	}

	var errs []error
	for _, perm := range perms {
		artifact := writePermutation(outputDir, structure.ID, perm)
		if artifact.Err != nil {
			logger.Error("write permutation", "index", perm.Index, "err", artifact.Err)
			errs = append(errs, artifact.Err)
		} else {
			logger.Debug("wrote permutation", "index", perm.Index, "offset", perm.Offset, "file", artifact.File)
		}
		if !perm.Aligned {
			logger.Warn("permutation cuts through a residue", "index", perm.Index, "offset", perm.Offset)
		}
		res.Artifacts = append(res.Artifacts, artifact)
	}

	if opts.Manifest {
		if err := writeManifest(outputDir, res); err != nil {
			logger.Error("write manifest", "err", err)
			errs = append(errs, err)
		}
	}

	logger.Info("generated permutations", "written", res.Written(), "total", len(perms))
	return res, errors.Join(errs...)
}

func writePermutation(outputDir, stem string, perm pdb.Permutation) Artifact {
	name := perm.FileName(stem)
	data := perm.Bytes()

	artifact := Artifact{
		Index:   perm.Index,
		Offset:  perm.Offset,
		File:    name,
		Records: len(perm.Records),
		Aligned: perm.Aligned,
	}

	if err := write(filepath.Join(outputDir, name), data); err != nil {
		artifact.Err = fmt.Errorf("permutation %d: %w", perm.Index, err)
		return artifact
	}
	artifact.Digest = digest(data)
	return artifact
}
