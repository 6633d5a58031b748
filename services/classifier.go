package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/ellekaen/VanityOS-Api/models"
)

// Classifier labels food photos. Implementations must be safe for concurrent use.
type Classifier interface {
	// Classify returns up to topK predictions, highest confidence first.
	// Errors wrap ErrInvalidImage or ErrModelUnavailable where applicable.
	Classify(ctx context.Context, image []byte, topK int) ([]models.Prediction, error)
	Name() string
	Ready() bool
}

// UnavailableClassifier stands in when no model could be loaded at startup.
type UnavailableClassifier struct {
	Reason error
}

func (u UnavailableClassifier) Classify(context.Context, []byte, int) ([]models.Prediction, error) {
	if u.Reason == nil {
		return nil, ErrModelUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, u.Reason)
}

func (UnavailableClassifier) Name() string { return "unavailable" }
func (UnavailableClassifier) Ready() bool  { return false }

// topPredictions pairs scores with labels and keeps the k best.
func topPredictions(scores []float32, labels []string, k int) []models.Prediction {
	n := len(scores)
	if len(labels) < n {
		n = len(labels)
	}
	preds := make([]models.Prediction, 0, n)
	for i := 0; i < n; i++ {
		preds = append(preds, models.Prediction{Label: labels[i], Confidence: float64(scores[i])})
	}
	sort.SliceStable(preds, func(i, j int) bool { return preds[i].Confidence > preds[j].Confidence })
	if k > 0 && len(preds) > k {
		preds = preds[:k]
	}
	return preds
}

// toProbabilities returns scores unchanged when they already form a
// distribution, otherwise applies softmax.
func toProbabilities(scores []float32) []float32 {
	if len(scores) == 0 {
		return scores
	}
	var sum float64
	isDist := true
	for _, s := range scores {
		if s < 0 || s > 1 {
			isDist = false
			break
		}
		sum += float64(s)
	}
	if isDist && math.Abs(sum-1) < 1e-3 {
		return scores
	}

	peak := scores[0]
	for _, s := range scores[1:] {
		if s > peak {
			peak = s
		}
	}
	out := make([]float32, len(scores))
	var total float64
	for i, s := range scores {
		e := math.Exp(float64(s - peak))
		out[i] = float32(e)
		total += e
	}
	for i := range out {
		out[i] = float32(float64(out[i]) / total)
	}
	return out
}
