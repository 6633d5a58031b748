package models

import "fmt"

// VerdictRecord is the acne-relevance bundle for a recognized food label.
type VerdictRecord struct {
	Label        string   `json:"label" yaml:"label"`
	Food         string   `json:"food" yaml:"food"`
	Rating       int      `json:"rating" yaml:"rating"`
	Category     string   `json:"category" yaml:"category"`
	Reasons      []string `json:"reasons" yaml:"reasons"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
}

func (v VerdictRecord) Validate() error {
	if v.Label == "" {
		return fmt.Errorf("verdict for %q has no label", v.Food)
	}
	if v.Rating < 0 || v.Rating > 100 {
		return fmt.Errorf("verdict %q: rating %d outside 0-100", v.Label, v.Rating)
	}
	return nil
}
