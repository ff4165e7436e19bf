package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/web-toolbox/internal/tools/jsonvalidator"
	"github.com/serroba/web-toolbox/internal/tools/markdown"
	"github.com/serroba/web-toolbox/internal/tools/palette"
	"github.com/serroba/web-toolbox/internal/tools/qrcode"
	"github.com/serroba/web-toolbox/internal/tools/textcompare"
	"go.uber.org/zap"
)

const (
	toolURLShortener    = "url-shortener"
	toolQRCode          = "qr-code"
	toolMarkdownPreview = "md-to-pdf"
	toolMarkdownPDF     = "md-to-pdf-download"
	toolJSONValidator   = "json-validator"
	toolTextComparer    = "text-comparer"
	toolColorPalette    = "color-palette"
)

// ToolsHandler serves the stateless tools.
type ToolsHandler struct {
	renderer markdown.Renderer
	metrics  Recorder
	logger   *zap.Logger
}

// NewToolsHandler creates a tools handler rendering PDFs with renderer.
func NewToolsHandler(renderer markdown.Renderer, metrics Recorder, logger *zap.Logger) *ToolsHandler {
	return &ToolsHandler{
		renderer: renderer,
		metrics:  metrics,
		logger:   logger,
	}
}

func (h *ToolsHandler) invalid(tool, message string) error {
	h.metrics.ToolInvoked(tool, outcomeInvalid)

	return huma.Error400BadRequest(message)
}

func (h *ToolsHandler) failed(ctx context.Context, tool, message string, err error) error {
	h.metrics.ToolInvoked(tool, outcomeError)
	h.logger.Error("tool failed", append(RequestMetaFromContext(ctx).fields(), zap.String("tool", tool), zap.Error(err))...)

	return huma.Error500InternalServerError(message, err)
}

func (h *ToolsHandler) QRCode(ctx context.Context, req *QRCodeRequest) (*QRCodeResponse, error) {
	if req.Body.Text == "" {
		return nil, h.invalid(toolQRCode, "Text is required")
	}

	dataURL, err := qrcode.Generate(req.Body.Text)
	if err != nil {
		return nil, h.failed(ctx, toolQRCode, "Failed to generate QR code", err)
	}

	h.metrics.ToolInvoked(toolQRCode, outcomeSuccess)

	resp := &QRCodeResponse{}
	resp.Body.Success = true
	resp.Body.Data.Text = req.Body.Text
	resp.Body.Data.QRCodeDataURL = dataURL

	return resp, nil
}

// MarkdownPreview returns the styled HTML page for printing on the client.
func (h *ToolsHandler) MarkdownPreview(ctx context.Context, req *MarkdownRequest) (*MarkdownPreviewResponse, error) {
	doc, err := h.convert(ctx, toolMarkdownPreview, req)
	if err != nil {
		return nil, err
	}

	h.metrics.ToolInvoked(toolMarkdownPreview, outcomeSuccess)

	resp := &MarkdownPreviewResponse{}
	resp.Body.Success = true
	resp.Body.Data.Filename = doc.Filename()
	resp.Body.Data.PDFDataURL = doc.DataURL()
	resp.Body.Data.Size = doc.Size()
	resp.Body.Data.HTML = doc.HTML
	resp.Body.Message = "HTML generated successfully - use browser print to PDF"

	return resp, nil
}

// MarkdownPDF renders the document to PDF server side.
func (h *ToolsHandler) MarkdownPDF(ctx context.Context, req *MarkdownRequest) (*MarkdownPDFResponse, error) {
	doc, err := h.convert(ctx, toolMarkdownPDF, req)
	if err != nil {
		return nil, err
	}

	pdf, err := h.renderer.Render(ctx, doc.HTML)
	if err != nil {
		return nil, h.failed(ctx, toolMarkdownPDF, "Failed to generate PDF", err)
	}

	h.metrics.ToolInvoked(toolMarkdownPDF, outcomeSuccess)

	return &MarkdownPDFResponse{
		ContentType:        "application/pdf",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", doc.Filename()),
		Body:               pdf,
	}, nil
}

func (h *ToolsHandler) convert(ctx context.Context, tool string, req *MarkdownRequest) (*markdown.Document, error) {
	doc, err := markdown.Convert(req.Body.Markdown, req.Body.Filename)
	if errors.Is(err, markdown.ErrMarkdownRequired) {
		return nil, h.invalid(tool, "Markdown content is required")
	}

	if err != nil {
		return nil, h.failed(ctx, tool, "Failed to process markdown. Please check your input.", err)
	}

	return doc, nil
}

// ValidateJSON reports syntax errors in the body rather than failing the request.
func (h *ToolsHandler) ValidateJSON(_ context.Context, req *JSONValidateRequest) (*JSONValidateResponse, error) {
	if req.Body.JSONText == "" {
		return nil, h.invalid(toolJSONValidator, "JSON text is required")
	}

	result := jsonvalidator.Validate(req.Body.JSONText)

	h.metrics.ToolInvoked(toolJSONValidator, outcomeSuccess)

	resp := &JSONValidateResponse{}
	resp.Body.Success = true
	resp.Body.Valid = result.Valid

	if result.Valid {
		resp.Body.Parsed = result.Parsed
		resp.Body.Formatted = result.Formatted
		resp.Body.Stats = result.Stats

		return resp, nil
	}

	resp.Body.Error = result.Error
	resp.Body.Position = &result.Position
	resp.Body.Line = &result.Line
	resp.Body.Column = &result.Column

	return resp, nil
}

func (h *ToolsHandler) CompareText(_ context.Context, req *TextCompareRequest) (*TextCompareResponse, error) {
	if req.Body.Text1 == "" || req.Body.Text2 == "" {
		return nil, h.invalid(toolTextComparer, "Both text inputs are required")
	}

	mode := textcompare.ParseMode(req.Body.CompareType)

	h.metrics.ToolInvoked(toolTextComparer, outcomeSuccess)

	resp := &TextCompareResponse{}
	resp.Body.Success = true
	resp.Body.CompareType = string(mode)
	resp.Body.Comparison = textcompare.Compare(req.Body.Text1, req.Body.Text2, mode)
	resp.Body.Stats = TextCompareStats{
		Text1Length: textcompare.Length(req.Body.Text1),
		Text2Length: textcompare.Length(req.Body.Text2),
		Similarity:  textcompare.Similarity(req.Body.Text1, req.Body.Text2),
	}

	return resp, nil
}

func (h *ToolsHandler) ColorPalette(ctx context.Context, req *ColorPaletteRequest) (*ColorPaletteResponse, error) {
	p, err := palette.Generate(req.Body.BaseColor, palette.ParseScheme(req.Body.PaletteType), req.Body.Count)

	switch {
	case errors.Is(err, palette.ErrColorRequired):
		return nil, h.invalid(toolColorPalette, "Base color is required")
	case errors.Is(err, palette.ErrInvalidColor):
		return nil, h.invalid(toolColorPalette, "Invalid color format")
	case errors.Is(err, palette.ErrInvalidCount):
		return nil, h.invalid(toolColorPalette, fmt.Sprintf("Count must be between %d and %d", palette.MinCount, palette.MaxCount))
	case err != nil:
		return nil, h.failed(ctx, toolColorPalette, "Failed to generate color palette. Please try again.", err)
	}

	h.metrics.ToolInvoked(toolColorPalette, outcomeSuccess)

	resp := &ColorPaletteResponse{}
	resp.Body.Success = true
	resp.Body.BaseColor = p.Base
	resp.Body.Palette = p.Colors
	resp.Body.PaletteType = string(p.Scheme)
	resp.Body.Count = len(p.Colors)

	return resp, nil
}

var catalogue = []Tool{
	{Name: "URL Shortener", Endpoint: "POST /tools/url-shortener", Description: "Shorten a URL, optionally under a custom code"},
	{Name: "Short URL Redirect", Endpoint: "GET /s/{code}", Description: "Redirect a short code to its destination"},
	{Name: "QR Code Generator", Endpoint: "POST /tools/qr-code", Description: "Encode text as a PNG QR code"},
	{Name: "Markdown to PDF", Endpoint: "POST /tools/md-to-pdf", Description: "Convert markdown to a printable HTML page"},
	{Name: "Markdown to PDF Download", Endpoint: "POST /tools/md-to-pdf-download", Description: "Convert markdown to a PDF file"},
	{Name: "JSON Validator", Endpoint: "POST /tools/json-validator", Description: "Validate, format and describe JSON"},
	{Name: "Text Comparer", Endpoint: "POST /tools/text-comparer", Description: "Compare two texts by line, word or character"},
	{Name: "Color Palette", Endpoint: "POST /tools/color-palette", Description: "Generate color harmonies from a base color"},
}

func (h *ToolsHandler) ListTools(_ context.Context, _ *struct{}) (*ToolsResponse, error) {
	resp := &ToolsResponse{}
	resp.Body.Success = true
	resp.Body.Message = "Web toolbox API is running"
	resp.Body.Tools = catalogue

	return resp, nil
}
