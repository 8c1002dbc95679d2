package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"io.mapleapps.campquest/internal/camp"
)

func TestRunSkipsRecordsMissingRequiredFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("image service should not be called")
	}))
	defer server.Close()

	g := NewGenerator(server.URL, nil, zap.NewNop().Sugar())
	g.Delay = 0

	result := g.Run(context.Background(), []camp.CampRecord{
		{CampID: "c1", AgeRange: "8-12"},
		{CampID: "c2", Name: "Camp Maple"},
	})

	assert.Equal(t, 2, result.Skipped)
	assert.Zero(t, result.Success)
	assert.Zero(t, result.Failed)
}

func TestRunTalliesServiceFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.CampName == "Broken Camp" {
			http.Error(w, "model unavailable", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(generateResponse{ImageURL: "https://img.example/" + req.CampID})
	}))
	defer server.Close()

	g := NewGenerator(server.URL, nil, zap.NewNop().Sugar())
	g.Delay = 0

	result := g.Run(context.Background(), []camp.CampRecord{
		{CampID: "c1", Name: "Broken Camp", AgeRange: "8-12"},
		{CampID: "c2", Name: "Fine Camp", AgeRange: "8-12"},
	})

	// The healthy camp still fails at the writeback step without Firestore,
	// so both land in Failed with distinct errors.
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Broken Camp")
}

func TestRunHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{ImageURL: "https://img.example/x"})
	}))
	defer server.Close()

	g := NewGenerator(server.URL, nil, zap.NewNop().Sugar())
	g.Delay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan BatchResult, 1)
	go func() {
		done <- g.Run(ctx, []camp.CampRecord{
			{CampID: "c1", Name: "A", AgeRange: "8-12"},
			{CampID: "c2", Name: "B", AgeRange: "8-12"},
		})
	}()

	select {
	case result := <-done:
		assert.LessOrEqual(t, result.Success+result.Failed, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop on cancelled context")
	}
}
