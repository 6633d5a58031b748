package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
	"go.uber.org/zap"

	"github.com/ellekaen/VanityOS-Api/models"
	"github.com/ellekaen/VanityOS-Api/utils"
)

type OnnxConfig struct {
	ModelPath  string
	LabelsPath string
	SharedLib  string
	InputName  string
	OutputName string
	InputSize  int
}

// OnnxClassifier runs a local image model exported to ONNX.
type OnnxClassifier struct {
	session *ort.DynamicAdvancedSession
	labels  []string
	size    int
	log     *zap.Logger
}

var (
	ortInit    sync.Once
	ortInitErr error
)

// NewOnnxClassifier loads the runtime, the labels file and the model.
func NewOnnxClassifier(cfg OnnxConfig, log *zap.Logger) (*OnnxClassifier, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("model file not found at %s: %w", cfg.ModelPath, err)
	}
	labels, err := LoadLabels(cfg.LabelsPath)
	if err != nil {
		return nil, err
	}
	if cfg.InputName == "" {
		cfg.InputName = "input"
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "output"
	}
	if cfg.InputSize <= 0 {
		cfg.InputSize = utils.ModelInputSize
	}

	ortInit.Do(func() {
		if cfg.SharedLib != "" {
			ort.SetSharedLibraryPath(cfg.SharedLib)
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	if ortInitErr != nil {
		return nil, fmt.Errorf("init onnx runtime: %w", ortInitErr)
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName}, nil)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", cfg.ModelPath, err)
	}

	log.Info("onnx model loaded",
		zap.String("model", cfg.ModelPath),
		zap.Int("labels", len(labels)))

	return &OnnxClassifier{session: session, labels: labels, size: cfg.InputSize, log: log}, nil
}

func (o *OnnxClassifier) Name() string { return "onnx" }
func (o *OnnxClassifier) Ready() bool  { return o.session != nil }

func (o *OnnxClassifier) Classify(ctx context.Context, image []byte, topK int) ([]models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, _, err := utils.DecodeImage(image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	pixels := utils.ImageToTensor(img, o.size)

	input, err := ort.NewTensor(ort.NewShape(1, int64(o.size), int64(o.size), 3), pixels)
	if err != nil {
		return nil, fmt.Errorf("build input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(o.labels))))
	if err != nil {
		return nil, fmt.Errorf("build output tensor: %w", err)
	}
	defer output.Destroy()

	if err := o.session.Run([]ort.Value{input}, []ort.Value{output}); err != nil {
		return nil, fmt.Errorf("run model: %w", err)
	}
	return topPredictions(toProbabilities(output.GetData()), o.labels, topK), nil
}

// Close releases the session. The runtime environment stays up for the process.
func (o *OnnxClassifier) Close() error {
	if o.session == nil {
		return nil
	}
	err := o.session.Destroy()
	o.session = nil
	return err
}

// LoadLabels reads a labels file: either ["apple", ...] or {"0": "apple", ...}.
func LoadLabels(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("labels file not found at %s: %w", path, err)
	}
	return ParseLabels(raw)
}

func ParseLabels(raw []byte) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return nil, errors.New("labels file is empty")
		}
		return list, nil
	}

	var byIndex map[string]string
	if err := json.Unmarshal(raw, &byIndex); err != nil {
		return nil, fmt.Errorf("unexpected labels format: %w", err)
	}
	if len(byIndex) == 0 {
		return nil, errors.New("labels file is empty")
	}
	out := make([]string, len(byIndex))
	for i := range out {
		l, ok := byIndex[strconv.Itoa(i)]
		if !ok {
			return nil, fmt.Errorf("labels file missing index %d", i)
		}
		out[i] = l
	}
	return out, nil
}
