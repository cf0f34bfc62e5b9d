package utils

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

var rekClient *rekognition.Client

// must be called once at startup (e.g. in main.go)
func InitRekognition() {
	awsRegion := os.Getenv("AWS_REGION")
	if awsRegion == "" {
		log.Fatal("AWS_REGION not set")
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		log.Fatalf("unable to load AWS config: %v", err)
	}
	rekClient = rekognition.NewFromConfig(cfg)
}

// RekClient returns the initialized Rekognition client
func RekClient() *rekognition.Client {
	if rekClient == nil {
		InitRekognition()
	}
	return rekClient
}

// DetectModerationLabels screens an uploaded picture and returns the names
// of any moderation findings at or above 80% confidence.
func DetectModerationLabels(imageBytes []byte) ([]string, error) {
	out, err := RekClient().DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: imageBytes},
		MinConfidence: aws.Float32(80),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.ModerationLabels {
		if l.Name != nil {
			labels = append(labels, *l.Name)
		}
	}
	return labels, nil
}
