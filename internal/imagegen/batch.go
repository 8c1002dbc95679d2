package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"io.mapleapps.campquest/internal/camp"
)

// BatchResult tallies one image-generation run over the camp collection.
type BatchResult struct {
	Success int
	Failed  int
	Skipped int
	Errors  []string
}

// Generator calls the image service once per camp and writes the returned
// image URL back onto the camp document.
type Generator struct {
	httpClient *http.Client
	firestore  *firestore.Client
	logger     *zap.SugaredLogger
	endpoint   string
	// Delay between requests keeps the image service under its rate limit.
	Delay time.Duration
}

func NewGenerator(endpoint string, firestoreClient *firestore.Client, logger *zap.SugaredLogger) *Generator {
	return &Generator{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		firestore:  firestoreClient,
		logger:     logger,
		endpoint:   endpoint,
		Delay:      3 * time.Second,
	}
}

type generateRequest struct {
	CampID   string   `json:"campId"`
	CampName string   `json:"campName"`
	AgeRange string   `json:"ageRange"`
	Tags     []string `json:"tags"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Run generates an image for every record that has a name and age range.
// Records that already carry an image are regenerated; missing required
// fields skip the record. Failures are tallied, never fatal to the run.
func (g *Generator) Run(ctx context.Context, records []camp.CampRecord) BatchResult {
	var result BatchResult

	for i, record := range records {
		if record.Name == "" || record.AgeRange == "" {
			result.Skipped++
			continue
		}

		imageURL, err := g.generateOne(ctx, record)
		if err != nil {
			g.logger.Errorw("image generation failed", "camp", record.Name, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", record.Name, err))
			result.Failed++
		} else {
			if err := g.writeImageURL(ctx, record.CampID, imageURL); err != nil {
				g.logger.Errorw("failed to store image url", "camp", record.Name, "error", err)
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", record.Name, err))
				result.Failed++
			} else {
				result.Success++
			}
		}

		if i < len(records)-1 && g.Delay > 0 {
			select {
			case <-ctx.Done():
				return result
			case <-time.After(g.Delay):
			}
		}
	}

	g.logger.Infow("image generation batch finished",
		"success", result.Success,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)
	return result
}

func (g *Generator) generateOne(ctx context.Context, record camp.CampRecord) (string, error) {
	payload, err := json.Marshal(generateRequest{
		CampID:   record.CampID,
		CampName: record.Name,
		AgeRange: record.AgeRange,
		Tags:     record.Tags,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("image service returned %d: %s", resp.StatusCode, body)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode image service response: %w", err)
	}
	if decoded.ImageURL == "" {
		return "", fmt.Errorf("image service returned no image url")
	}
	return decoded.ImageURL, nil
}

func (g *Generator) writeImageURL(ctx context.Context, campID, imageURL string) error {
	if g.firestore == nil || campID == "" {
		return fmt.Errorf("no document to update")
	}
	_, err := g.firestore.Collection("camps").Doc(campID).Update(ctx, []firestore.Update{
		{Path: "image", Value: imageURL},
	})
	return err
}
