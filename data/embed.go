package data

import _ "embed"

// AcneFoods is the built-in acne food database (YAML list of verdicts).
//
//go:embed acne_foods.yaml
var AcneFoods []byte
