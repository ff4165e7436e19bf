package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/web-toolbox/internal/shortener"
	"github.com/serroba/web-toolbox/internal/upstream"
	"go.uber.org/zap"
)

const (
	msgURLRequired       = "URL is required"
	msgInvalidURL        = "Invalid URL format"
	msgInvalidCodeFormat = "Custom code must be 3-20 characters long and contain only letters, numbers, hyphens, and underscores"
	msgCodeTaken         = "This custom code is already taken. Please choose another one."
	msgShortenFailed     = "Failed to shorten URL. Please try again later."
	msgCodeRequired      = "Short code is required"
	msgShortURLNotFound  = "Short URL not found"
	msgResolveFailed     = "Failed to resolve short URL"
)

// URLHandler handles URL shortening operations.
type URLHandler struct {
	service *shortener.Service
	metrics Recorder
	logger  *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(service *shortener.Service, metrics Recorder, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		service: service,
		metrics: metrics,
		logger:  logger,
	}
}

func (h *URLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	result, err := h.service.Shorten(ctx, shortener.ShortenInput{
		URL:        req.Body.URL,
		CustomCode: req.Body.CustomCode,
	})
	if err != nil {
		return nil, h.shortenError(ctx, err)
	}

	h.metrics.LinkCreated(result.Provider, result.IsCustom)
	h.metrics.ToolInvoked(toolURLShortener, outcomeSuccess)

	resp := &CreateShortURLResponse{}
	resp.Body.Success = true
	resp.Body.Data.OriginalURL = result.OriginalURL
	resp.Body.Data.ShortCode = string(result.Code)
	resp.Body.Data.ShortURL = result.Link
	resp.Body.Data.IsCustom = result.IsCustom
	resp.Body.Data.Provider = result.Provider

	return resp, nil
}

func (h *URLHandler) shortenError(ctx context.Context, err error) error {
	var message string

	switch {
	case errors.Is(err, shortener.ErrURLRequired):
		message = msgURLRequired
	case errors.Is(err, shortener.ErrInvalidURL):
		message = msgInvalidURL
	case errors.Is(err, shortener.ErrInvalidCodeFormat):
		message = msgInvalidCodeFormat
	case errors.Is(err, shortener.ErrCodeTaken):
		message = msgCodeTaken
	}

	if message != "" {
		h.metrics.ToolInvoked(toolURLShortener, outcomeInvalid)

		return huma.Error400BadRequest(message)
	}

	h.metrics.ToolInvoked(toolURLShortener, outcomeError)

	var upErr *upstream.Error

	fields := append(RequestMetaFromContext(ctx).fields(), zap.Error(err))
	if errors.As(err, &upErr) {
		fields = append(fields, zap.String("upstream", upErr.Service), zap.Bool("timeout", upErr.Timeout))
	}

	h.logger.Error("failed to shorten url", fields...)

	return huma.Error500InternalServerError(msgShortenFailed, err)
}

func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	destination, err := h.service.Resolve(ctx, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrCodeRequired):
			return nil, huma.Error400BadRequest(msgCodeRequired)
		case errors.Is(err, shortener.ErrNotFound):
			return nil, huma.Error404NotFound(msgShortURLNotFound)
		}

		h.logger.Error("failed to resolve short url",
			append(RequestMetaFromContext(ctx).fields(), zap.String("code", req.Code), zap.Error(err))...)

		return nil, huma.Error500InternalServerError(msgResolveFailed, err)
	}

	return &RedirectResponse{
		Status:   http.StatusFound,
		Location: destination,
	}, nil
}
