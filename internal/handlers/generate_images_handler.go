package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"io.mapleapps.campquest/internal/campstore"
	"io.mapleapps.campquest/internal/imagegen"
	genmodels "io.mapleapps.campquest/internal/models/generate_images"
)

type ImagesHandler struct {
	generator   *imagegen.Generator
	store       *campstore.Store
	logger      *zap.SugaredLogger
	cronManager *cron.Cron
}

// NewImagesHandler wires the image-generation batch as an admin endpoint
// and a nightly job.
func NewImagesHandler(generator *imagegen.Generator, store *campstore.Store, logger *zap.SugaredLogger) *ImagesHandler {
	c := cron.New(cron.WithLocation(time.UTC))

	h := &ImagesHandler{
		generator:   generator,
		store:       store,
		logger:      logger,
		cronManager: c,
	}

	// Nightly run at 03:00 UTC, when traffic is lowest
	if _, err := c.AddFunc("0 3 * * *", h.runNightlyBatch); err != nil {
		logger.Errorw("failed to schedule image batch", "error", err)
	}
	c.Start()

	return h
}

// Stop halts the scheduled batch; used during shutdown.
func (h *ImagesHandler) Stop() {
	h.cronManager.Stop()
}

func (h *ImagesHandler) runNightlyBatch() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	records := h.store.Records()
	h.logger.Infow("starting nightly image batch", "records", len(records))
	h.generator.Run(ctx, records)
}

// GenerateImages runs the batch on demand for the admin tooling.
func (h *ImagesHandler) GenerateImages(c *gin.Context) {
	records := h.store.Records()
	result := h.generator.Run(c.Request.Context(), records)

	response := genmodels.GenerateImagesResponse{
		Success: result.Success,
		Failed:  result.Failed,
		Skipped: result.Skipped,
		Errors:  result.Errors,
	}
	if response.Errors == nil {
		response.Errors = []string{}
	}

	c.JSON(http.StatusOK, response)
}
