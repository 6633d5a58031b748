package models

import (
	"fmt"
	"strconv"
)

type SkinType string

const (
	SkinAll         SkinType = "all"
	SkinOily        SkinType = "oily"
	SkinDry         SkinType = "dry"
	SkinCombination SkinType = "combination"
	SkinNormal      SkinType = "normal"
	SkinSensitive   SkinType = "sensitive"
	SkinAcneProne   SkinType = "acne-prone"
	SkinMature      SkinType = "mature"
)

// Grade is a comedogenic rating on the 0–5 scale. Single values have Low == High.
type Grade struct {
	Low  float64 `json:"min"`
	High float64 `json:"max"`
}

func GradeOf(v float64) Grade { return Grade{Low: v, High: v} }

func GradeRange(low, high float64) Grade { return Grade{Low: low, High: high} }

// Validate enforces 0 <= Low <= High <= 5.
func (g Grade) Validate() error {
	if g.Low < 0 || g.High > 5 || g.Low > g.High {
		return fmt.Errorf("grade %s outside 0-5", g)
	}
	return nil
}

// String renders "4" or "2-3".
func (g Grade) String() string {
	lo := strconv.FormatFloat(g.Low, 'f', -1, 64)
	if g.Low == g.High {
		return lo
	}
	return lo + "-" + strconv.FormatFloat(g.High, 'f', -1, 64)
}

// IngredientRecord is one carrier oil/butter and the food names that map onto it.
type IngredientRecord struct {
	Name          string     `json:"name"`
	Aliases       []string   `json:"aliases,omitempty"`
	Grade         Grade      `json:"grade"`
	IsComedogenic bool       `json:"is_comedogenic"`
	Properties    string     `json:"properties"`
	Benefits      string     `json:"benefits"`
	SkinTypes     []SkinType `json:"skin_types"`
}
