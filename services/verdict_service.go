package services

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ellekaen/VanityOS-Api/models"
	"github.com/ellekaen/VanityOS-Api/utils"
)

// UnrecognizedVerdict is returned when no database entry matches a label.
func UnrecognizedVerdict() models.VerdictRecord {
	return models.VerdictRecord{
		Label:    "unknown",
		Food:     "Unrecognized food",
		Rating:   50,
		Category: "Unknown",
		Reasons: []string{
			"This food is not in the acne food database yet",
			"Try a clearer photo with the food centred in frame",
		},
		Alternatives: []string{},
	}
}

// VerdictMatch is a verdict together with the prediction that produced it.
type VerdictMatch struct {
	models.VerdictRecord
	DetectedLabel string  `json:"detected_label"`
	Confidence    float64 `json:"confidence"`
	Recognized    bool    `json:"recognized"`
}

type verdictKey struct {
	key     string
	verdict int
}

// VerdictMapper maps classifier labels onto the acne food database.
type VerdictMapper struct {
	verdicts []models.VerdictRecord
	keys     []verdictKey
	exact    map[string]int
}

// ParseVerdicts decodes a YAML (or JSON) list of verdicts.
func ParseVerdicts(raw []byte) ([]models.VerdictRecord, error) {
	var out []models.VerdictRecord
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse acne food database: %w", err)
	}
	return out, nil
}

// LoadVerdictMapper reads the database from path, or uses fallback when path is empty.
func LoadVerdictMapper(path string, fallback []byte) (*VerdictMapper, error) {
	raw := fallback
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("acne food database: %w", err)
		}
		raw = b
	}
	verdicts, err := ParseVerdicts(raw)
	if err != nil {
		return nil, err
	}
	return NewVerdictMapper(verdicts)
}

func NewVerdictMapper(verdicts []models.VerdictRecord) (*VerdictMapper, error) {
	m := &VerdictMapper{
		verdicts: make([]models.VerdictRecord, len(verdicts)),
		exact:    make(map[string]int),
	}
	copy(m.verdicts, verdicts)

	for i, v := range m.verdicts {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if v.Food == "" {
			m.verdicts[i].Food = cases.Title(language.English).String(utils.NormalizeLabel(v.Label))
		}
		if m.verdicts[i].Reasons == nil {
			m.verdicts[i].Reasons = []string{}
		}
		if m.verdicts[i].Alternatives == nil {
			m.verdicts[i].Alternatives = []string{}
		}
		label := utils.NormalizeLabel(v.Label)
		if prev, dup := m.exact[label]; dup {
			return nil, fmt.Errorf("label %q defined twice (%q)", label, m.verdicts[prev].Label)
		}
		m.exact[label] = i
		m.keys = append(m.keys, verdictKey{key: label, verdict: i})
		if food := utils.NormalizeLabel(m.verdicts[i].Food); food != label {
			if _, taken := m.exact[food]; !taken {
				m.exact[food] = i
			}
		}
	}
	return m, nil
}

func (m *VerdictMapper) lookup(label string) (int, bool) {
	l := utils.NormalizeLabel(label)
	if l == "" {
		return 0, false
	}
	if i, ok := m.exact[l]; ok {
		return i, true
	}
	for _, k := range m.keys {
		if strings.Contains(l, k.key) || strings.Contains(k.key, l) {
			return k.verdict, true
		}
	}
	return 0, false
}

// MapVerdict returns the verdict for label, or UnrecognizedVerdict and false.
func (m *VerdictMapper) MapVerdict(label string) (models.VerdictRecord, bool) {
	if i, ok := m.lookup(label); ok {
		return m.verdicts[i], true
	}
	return UnrecognizedVerdict(), false
}

// Known reports whether label maps to a database entry.
func (m *VerdictMapper) Known(label string) bool {
	_, ok := m.lookup(label)
	return ok
}

// MatchPredictions tries each prediction in order and returns the first hit.
// With no hit the result is UnrecognizedVerdict carrying the top prediction.
func (m *VerdictMapper) MatchPredictions(preds []models.Prediction) VerdictMatch {
	for _, p := range preds {
		if v, ok := m.MapVerdict(p.Label); ok {
			return VerdictMatch{VerdictRecord: v, DetectedLabel: p.Label, Confidence: p.Confidence, Recognized: true}
		}
	}
	out := VerdictMatch{VerdictRecord: UnrecognizedVerdict()}
	if len(preds) > 0 {
		out.DetectedLabel = preds[0].Label
		out.Confidence = preds[0].Confidence
	}
	return out
}

func (m *VerdictMapper) All() []models.VerdictRecord {
	out := make([]models.VerdictRecord, len(m.verdicts))
	copy(out, m.verdicts)
	return out
}
