package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ellekaen/VanityOS-Api/config"
)

func TestNewClassifierFallsBackToUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.onnx")
	cases := map[string]config.ClassifierConfig{
		"auto without model or region": {Backend: config.BackendAuto, ModelPath: missing},
		"onnx with missing model":      {Backend: config.BackendOnnx, ModelPath: missing},
		"disabled":                     {Backend: config.BackendNone},
	}
	for name, cfg := range cases {
		c := NewClassifier(context.Background(), cfg, "", zap.NewNop())
		u, ok := c.(UnavailableClassifier)
		require.True(t, ok, name)
		assert.Error(t, u.Reason, name)
		assert.False(t, c.Ready(), name)

		_, err := c.Classify(context.Background(), []byte("x"), 1)
		assert.ErrorIs(t, err, ErrModelUnavailable, name)
	}
}

func TestNewClassifierRekognition(t *testing.T) {
	cfg := config.ClassifierConfig{
		Backend:       config.BackendAuto,
		ModelPath:     filepath.Join(t.TempDir(), "missing.onnx"),
		MinConfidence: 50,
		CacheTTL:      time.Minute,
	}
	c := NewClassifier(context.Background(), cfg, "us-east-1", zap.NewNop())
	assert.Equal(t, "rekognition", c.Name())
	assert.True(t, c.Ready())
	_, cached := c.(*CachedClassifier)
	assert.True(t, cached)
}
