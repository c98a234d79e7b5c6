package synperm

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// Manifest lists the permutations written for one structure.
type Manifest struct {
	Input     string     `json:"input"`
	Chain     string     `json:"chain"`
	Residues  int        `json:"residues"`
	Records   int        `json:"matched_records"`
	Artifacts []Artifact `json:"artifacts"`
}

// ManifestName returns the manifest file name for a structure stem.
func ManifestName(stem string) string {
	return stem + "_permutations.json"
}

func digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func writeManifest(outputDir string, res *Result) error {
	manifest := Manifest{
		Input:    filepath.Base(res.Input),
		Chain:    res.Boundaries.Chain,
		Residues: res.Boundaries.Len(),
		Records:  res.Boundaries.Total(),
	}
	for _, a := range res.Artifacts {
		if a.Err == nil {
			manifest.Artifacts = append(manifest.Artifacts, a)
		}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	path := filepath.Join(outputDir, ManifestName(res.Stem))
	if err := write(path, append(data, '\n')); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by Generate.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return &manifest, nil
}
