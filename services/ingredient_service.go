package services

import (
	"fmt"
	"strings"

	"github.com/ellekaen/VanityOS-Api/models"
	"github.com/ellekaen/VanityOS-Api/utils"
)

type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchContains MatchKind = "contains"
)

type catalogKey struct {
	key    string // normalized
	record int
}

// IngredientCatalog is the read-only comedogenic table. Safe for concurrent use.
type IngredientCatalog struct {
	records []models.IngredientRecord
	keys    []catalogKey
	exact   map[string]int
}

// NewIngredientCatalog validates the records and indexes their names and aliases.
// Keys are tried in declaration order: each record's aliases, then its name.
func NewIngredientCatalog(records []models.IngredientRecord) (*IngredientCatalog, error) {
	c := &IngredientCatalog{
		records: make([]models.IngredientRecord, len(records)),
		exact:   make(map[string]int),
	}
	copy(c.records, records)

	for i, r := range c.records {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("ingredient #%d has no name", i)
		}
		if err := r.Grade.Validate(); err != nil {
			return nil, fmt.Errorf("ingredient %q: %w", r.Name, err)
		}
		names := append(append([]string{}, r.Aliases...), r.Name)
		for _, n := range names {
			k := utils.NormalizeName(n)
			if k == "" {
				return nil, fmt.Errorf("ingredient %q has a blank alias", r.Name)
			}
			if prev, dup := c.exact[k]; dup {
				return nil, fmt.Errorf("key %q used by both %q and %q", k, c.records[prev].Name, r.Name)
			}
			c.exact[k] = i
			c.keys = append(c.keys, catalogKey{key: k, record: i})
		}
	}
	return c, nil
}

// Lookup resolves a free-text query: exact key first, then the first key
// (in declaration order) that contains the query or is contained in it.
func (c *IngredientCatalog) Lookup(query string) (models.IngredientRecord, MatchKind, error) {
	q := utils.NormalizeName(query)
	if q == "" {
		return models.IngredientRecord{}, "", ErrIngredientNotFound
	}
	if i, ok := c.exact[q]; ok {
		return c.records[i], MatchExact, nil
	}
	for _, k := range c.keys {
		if strings.Contains(k.key, q) || strings.Contains(q, k.key) {
			return c.records[k.record], MatchContains, nil
		}
	}
	return models.IngredientRecord{}, "", fmt.Errorf("%q: %w", query, ErrIngredientNotFound)
}

// All returns the records in declaration order.
func (c *IngredientCatalog) All() []models.IngredientRecord {
	out := make([]models.IngredientRecord, len(c.records))
	copy(out, c.records)
	return out
}

func (c *IngredientCatalog) Len() int { return len(c.records) }
