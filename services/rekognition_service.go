package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/ellekaen/VanityOS-Api/models"
	"github.com/ellekaen/VanityOS-Api/utils"
)

// DetectLabelsAPI is the slice of the Rekognition client we use.
type DetectLabelsAPI interface {
	DetectLabels(ctx context.Context, in *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// RekognitionService classifies photos with AWS Rekognition DetectLabels.
type RekognitionService struct {
	client        DetectLabelsAPI
	minConfidence float32
}

func NewRekognitionService(client DetectLabelsAPI, minConfidence float32) *RekognitionService {
	return &RekognitionService{client: client, minConfidence: minConfidence}
}

func (r *RekognitionService) Name() string { return "rekognition" }
func (r *RekognitionService) Ready() bool  { return r.client != nil }

// Classify returns the top labels, lowercased, confidence scaled to [0,1].
func (r *RekognitionService) Classify(ctx context.Context, image []byte, topK int) ([]models.Prediction, error) {
	if _, err := utils.CheckImage(image); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if topK <= 0 {
		topK = 5
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(int32(topK)),
		MinConfidence: aws.Float32(r.minConfidence),
	})
	if err != nil {
		return nil, fmt.Errorf("rekognition detect labels: %w", err)
	}

	preds := make([]models.Prediction, 0, len(out.Labels))
	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		var conf float64
		if l.Confidence != nil {
			conf = float64(*l.Confidence) / 100
		}
		preds = append(preds, models.Prediction{Label: strings.ToLower(*l.Name), Confidence: conf})
	}
	if len(preds) > topK {
		preds = preds[:topK]
	}
	return preds, nil
}
