package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ellekaen/VanityOS-Api/models"
)

// CachedClassifier memoizes predictions per image digest and topK.
type CachedClassifier struct {
	next  Classifier
	cache *gocache.Cache
}

// NewCachedClassifier wraps next. A ttl <= 0 returns next unchanged.
func NewCachedClassifier(next Classifier, ttl time.Duration) Classifier {
	if ttl <= 0 {
		return next
	}
	return &CachedClassifier{next: next, cache: gocache.New(ttl, 2*ttl)}
}

func cacheKey(image []byte, topK int) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:]) + ":" + strconv.Itoa(topK)
}

func (c *CachedClassifier) Classify(ctx context.Context, image []byte, topK int) ([]models.Prediction, error) {
	key := cacheKey(image, topK)
	if v, ok := c.cache.Get(key); ok {
		return clonePredictions(v.([]models.Prediction)), nil
	}
	preds, err := c.next.Classify(ctx, image, topK)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, clonePredictions(preds))
	return preds, nil
}

func (c *CachedClassifier) Name() string { return c.next.Name() }
func (c *CachedClassifier) Ready() bool  { return c.next.Ready() }

func clonePredictions(p []models.Prediction) []models.Prediction {
	out := make([]models.Prediction, len(p))
	copy(out, p)
	return out
}
