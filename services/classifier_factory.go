package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ellekaen/VanityOS-Api/config"
	"github.com/ellekaen/VanityOS-Api/utils"
)

// NewClassifier picks the backend named in cfg. Load failures are logged and
// turned into an UnavailableClassifier so the API still serves text lookups.
func NewClassifier(ctx context.Context, cfg config.ClassifierConfig, awsRegion string, log *zap.Logger) Classifier {
	c, err := buildClassifier(ctx, cfg, awsRegion, log)
	if err != nil {
		log.Error("classifier unavailable", zap.String("backend", cfg.Backend), zap.Error(err))
		return UnavailableClassifier{Reason: err}
	}
	log.Info("classifier ready", zap.String("backend", c.Name()))
	return NewCachedClassifier(c, cfg.CacheTTL)
}

func buildClassifier(ctx context.Context, cfg config.ClassifierConfig, awsRegion string, log *zap.Logger) (Classifier, error) {
	backend := cfg.Backend
	if backend == config.BackendAuto || backend == "" {
		switch {
		case fileExists(cfg.ModelPath):
			backend = config.BackendOnnx
		case awsRegion != "":
			backend = config.BackendRekognition
		default:
			return nil, fmt.Errorf("no model at %s and AWS_REGION not set", cfg.ModelPath)
		}
	}

	switch backend {
	case config.BackendOnnx:
		return NewOnnxClassifier(OnnxConfig{
			ModelPath:  cfg.ModelPath,
			LabelsPath: cfg.LabelsPath,
			SharedLib:  cfg.OnnxLib,
			InputName:  cfg.InputName,
			OutputName: cfg.OutputName,
		}, log)
	case config.BackendRekognition:
		awsCfg, err := utils.LoadAWSConfig(ctx, awsRegion)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		return NewRekognitionService(utils.NewRekognitionClient(awsCfg), float32(cfg.MinConfidence)), nil
	case config.BackendNone:
		return nil, errors.New("classifier disabled by configuration")
	}
	return nil, fmt.Errorf("unknown classifier backend %q", backend)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
