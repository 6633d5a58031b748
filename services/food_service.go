package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ellekaen/VanityOS-Api/models"
)

// ImageArchive keeps a copy of analyzed photos.
type ImageArchive interface {
	Store(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// foodKeywords mark a generic classifier label as food.
var foodKeywords = []string{
	"food", "dish", "meal", "pasta", "salad", "soup", "fruit", "bread",
	"cake", "burger", "pizza", "noodles", "egg", "rice", "fish", "vegetable",
	"seafood", "drink", "coffee", "tea",
}

const notFoundNote = "Ingredient not found in database"

type FoodService struct {
	catalog    *IngredientCatalog
	verdicts   *VerdictMapper
	classifier Classifier
	archive    ImageArchive
	history    ScanHistory
	topK       int
	log        *zap.Logger
}

type FoodDeps struct {
	Catalog    *IngredientCatalog
	Verdicts   *VerdictMapper
	Classifier Classifier
	Archive    ImageArchive // optional
	History    ScanHistory  // optional
	TopK       int
	Log        *zap.Logger
}

func NewFoodService(d FoodDeps) *FoodService {
	s := &FoodService{
		catalog:    d.Catalog,
		verdicts:   d.Verdicts,
		classifier: d.Classifier,
		archive:    d.Archive,
		history:    d.History,
		topK:       d.TopK,
		log:        d.Log,
	}
	if s.history == nil {
		s.history = NoScanHistory{}
	}
	if s.classifier == nil {
		s.classifier = UnavailableClassifier{}
	}
	if s.topK <= 0 {
		s.topK = 3
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// IngredientAnalysis is the text lookup response. Pointer fields are null on a miss.
type IngredientAnalysis struct {
	Food              string            `json:"food"`
	MatchedIngredient string            `json:"matched_ingredient,omitempty"`
	IsComedogenic     *bool             `json:"is_comedogenic"`
	ComedogenicGrade  *string           `json:"comedogenic_grade"`
	GradeMin          *float64          `json:"grade_min"`
	GradeMax          *float64          `json:"grade_max"`
	ComedogenicNotes  string            `json:"comedogenic_notes"`
	Benefits          string            `json:"benefits,omitempty"`
	SkinTypes         []models.SkinType `json:"skin_types,omitempty"`
	Match             MatchKind         `json:"match,omitempty"`
}

// LookupIngredient answers "is this food comedogenic?". On a miss the analysis
// still carries the query and a note, alongside ErrIngredientNotFound.
func (s *FoodService) LookupIngredient(food string) (IngredientAnalysis, error) {
	rec, kind, err := s.catalog.Lookup(food)
	if err != nil {
		return IngredientAnalysis{Food: food, ComedogenicNotes: notFoundNote}, err
	}
	grade := rec.Grade.String()
	comedogenic := rec.IsComedogenic
	lo, hi := rec.Grade.Low, rec.Grade.High
	return IngredientAnalysis{
		Food:              food,
		MatchedIngredient: rec.Name,
		IsComedogenic:     &comedogenic,
		ComedogenicGrade:  &grade,
		GradeMin:          &lo,
		GradeMax:          &hi,
		ComedogenicNotes:  rec.Properties,
		Benefits:          rec.Benefits,
		SkinTypes:         rec.SkinTypes,
		Match:             kind,
	}, nil
}

// PhotoAnalysis is the acne verdict for an uploaded photo.
type PhotoAnalysis struct {
	ScanID string `json:"scan_id"`
	VerdictMatch
	Detected []string `json:"detected"`
	ImageURL string   `json:"image_url,omitempty"`
}

// AnalyzePhoto classifies the photo and maps the first matching prediction to a verdict.
// Unmatched photos get the default verdict, not an error.
func (s *FoodService) AnalyzePhoto(ctx context.Context, image []byte, contentType string) (*PhotoAnalysis, error) {
	preds, err := s.classifier.Classify(ctx, image, s.topK)
	if err != nil {
		return nil, err
	}

	match := s.verdicts.MatchPredictions(preds)
	out := &PhotoAnalysis{
		ScanID:       uuid.NewString(),
		VerdictMatch: match,
		Detected:     labelsOf(preds),
	}
	out.ImageURL = s.archiveImage(ctx, out.ScanID, image, contentType)

	s.record(ctx, &models.Scan{
		ScanID:        out.ScanID,
		Endpoint:      "analyze_food",
		DetectedLabel: match.DetectedLabel,
		Confidence:    match.Confidence,
		MatchedFood:   match.Food,
		Rating:        match.Rating,
		Recognized:    match.Recognized,
		ImageURL:      out.ImageURL,
	})

	s.log.Info("photo analyzed",
		zap.String("scan_id", out.ScanID),
		zap.String("label", match.DetectedLabel),
		zap.Float64("confidence", match.Confidence),
		zap.Bool("recognized", match.Recognized))
	return out, nil
}

// FoodDetection is the cheap "is this a food photo?" answer.
type FoodDetection struct {
	ScanID     string  `json:"scan_id"`
	Label      string  `json:"food_detected"`
	Confidence float64 `json:"confidence"`
	IsFood     bool    `json:"-"`
}

// DetectFood checks the top prediction against the food database and keyword list.
func (s *FoodService) DetectFood(ctx context.Context, image []byte) (*FoodDetection, error) {
	preds, err := s.classifier.Classify(ctx, image, 1)
	if err != nil {
		return nil, err
	}
	out := &FoodDetection{ScanID: uuid.NewString()}
	if len(preds) > 0 {
		out.Label = strings.ToLower(preds[0].Label)
		out.Confidence = preds[0].Confidence
		out.IsFood = s.IsFoodLabel(out.Label)
	}

	s.record(ctx, &models.Scan{
		ScanID:        out.ScanID,
		Endpoint:      "analyze_image",
		DetectedLabel: out.Label,
		Confidence:    out.Confidence,
		Recognized:    out.IsFood,
	})
	return out, nil
}

// IsFoodLabel reports whether a classifier label looks like food.
func (s *FoodService) IsFoodLabel(label string) bool {
	if label == "" {
		return false
	}
	if s.verdicts.Known(label) {
		return true
	}
	l := strings.ToLower(label)
	for _, kw := range foodKeywords {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

// RecentScans lists the scan history, newest first.
func (s *FoodService) RecentScans(ctx context.Context, limit int) ([]models.Scan, error) {
	return s.history.Recent(ctx, limit)
}

func (s *FoodService) ClassifierName() string { return s.classifier.Name() }
func (s *FoodService) ClassifierReady() bool  { return s.classifier.Ready() }

func (s *FoodService) archiveImage(ctx context.Context, key string, image []byte, contentType string) string {
	if s.archive == nil {
		return ""
	}
	url, err := s.archive.Store(ctx, key, image, contentType)
	if err != nil {
		s.log.Warn("image archive failed", zap.String("scan_id", key), zap.Error(err))
		return ""
	}
	return url
}

func (s *FoodService) record(ctx context.Context, scan *models.Scan) {
	if err := s.history.Record(ctx, scan); err != nil && !errors.Is(err, ErrHistoryDisabled) {
		s.log.Warn("scan history write failed", zap.String("scan_id", scan.ScanID), zap.Error(err))
	}
}

func labelsOf(preds []models.Prediction) []string {
	out := make([]string, 0, len(preds))
	for _, p := range preds {
		out = append(out, p.Label)
	}
	return out
}
