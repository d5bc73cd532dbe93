package report

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file name of the course manifest.
const ManifestName = "course.yaml"

// Manifest is the machine-readable companion of index.html.
type Manifest struct {
	Course      string               `yaml:"course"`
	Assignments []AssignmentManifest `yaml:"assignments"`
}

// AssignmentManifest summarizes one assignment in the manifest.
type AssignmentManifest struct {
	Number      int      `yaml:"number"`
	Summary     string   `yaml:"summary"`
	Files       int      `yaml:"files"`
	Lines       int      `yaml:"lines"`
	Identifiers int      `yaml:"identifiers"`
	Languages   []string `yaml:"languages,omitempty"`
}

// BuildManifest derives the manifest for the summaries of courseDir.
func BuildManifest(courseDir string, sums []Summary) (Manifest, error) {
	entries, err := IndexEntries(courseDir, sums)
	if err != nil {
		return Manifest{}, err
	}
	m := Manifest{
		Course:      filepath.Base(courseDir),
		Assignments: make([]AssignmentManifest, 0, len(sums)),
	}
	for i, s := range sums {
		m.Assignments = append(m.Assignments, AssignmentManifest{
			Number:      s.Assignment,
			Summary:     entries[i].Href,
			Files:       len(s.Files),
			Lines:       s.TotalLines(),
			Identifiers: len(s.Identifiers),
			Languages:   s.Languages,
		})
	}
	return m, nil
}

// RenderManifest encodes m as YAML.
func RenderManifest(m Manifest) ([]byte, error) {
	b, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return b, nil
}
