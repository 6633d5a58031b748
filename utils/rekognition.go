// utils/rekognition.go
package utils

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
)

// LoadAWSConfig resolves credentials from the default chain for region.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		return aws.Config{}, errors.New("AWS_REGION not set")
	}
	return config.LoadDefaultConfig(ctx, config.WithRegion(region))
}

// NewRekognitionClient builds a Rekognition client from the shared AWS config.
func NewRekognitionClient(cfg aws.Config) *rekognition.Client {
	return rekognition.NewFromConfig(cfg)
}
