package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mood-architect/affirm-api/internal/affirmation"
	"github.com/mood-architect/affirm-api/internal/config"
	"github.com/mood-architect/affirm-api/internal/logger"
)

// Generator produces an affirmation for validated user input.
type Generator interface {
	Generate(ctx context.Context, req *affirmation.Request) (string, error)
}

// AffirmationHandler serves POST /api/affirmation
type AffirmationHandler struct {
	generator Generator
	debug     bool
}

// NewAffirmationHandler creates the handler
func NewAffirmationHandler(generator Generator, cfg *config.Config) *AffirmationHandler {
	return &AffirmationHandler{
		generator: generator,
		debug:     cfg.Debug,
	}
}

type affirmationRequest struct {
	Name    string `json:"name" binding:"max=60"`
	Feeling string `json:"feeling" binding:"max=160"`
	Details string `json:"details" binding:"max=320"`
}

// Generate handles one affirmation request
func (h *AffirmationHandler) Generate(c *gin.Context) {
	var req affirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	feeling := strings.TrimSpace(req.Feeling)
	if name == "" || feeling == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Name and feeling are required."})
		return
	}

	text, err := h.generator.Generate(c.Request.Context(), &affirmation.Request{
		Name:    name,
		Feeling: feeling,
		Details: strings.TrimSpace(req.Details),
	})
	if err != nil {
		fields := logger.WithContext(c)
		fields["error"] = err.Error()

		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("Affirmation generation timed out", fields)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"detail": "The affirmation took too long to generate. Please try again.",
			})
			return
		}

		logger.Error("Affirmation generation failed", err, logger.WithContext(c))
		detail := "Could not generate affirmation. Please try again later."
		if h.debug {
			detail = fmt.Sprintf("AI error: %v", err)
		}
		c.JSON(http.StatusBadGateway, gin.H{"detail": detail})
		return
	}

	c.JSON(http.StatusOK, gin.H{"affirmation": text})
}
