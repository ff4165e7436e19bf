package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the URL shortener and tool routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler, toolsHandler *ToolsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-short-url",
		Method:      http.MethodPost,
		Path:        "/tools/url-shortener",
		Summary:     "Create short URL",
		Description: "Shortens a URL, optionally under a caller-chosen custom code.",
		Tags:        []string{"URLs"},
	}, urlHandler.CreateShortURL)

	// Both the short path and the tools-prefixed path resolve codes.
	for id, path := range map[string]string{
		"redirect-short-url":       "/s/{code}",
		"redirect-tools-short-url": "/tools/s/{code}",
	} {
		huma.Register(api, huma.Operation{
			OperationID:   id,
			Method:        http.MethodGet,
			Path:          path,
			Summary:       "Redirect to original URL",
			Description:   "Redirects to the original URL associated with the short code.",
			Tags:          []string{"URLs"},
			DefaultStatus: http.StatusFound,
		}, urlHandler.Redirect)
	}

	huma.Register(api, huma.Operation{
		OperationID: "generate-qr-code",
		Method:      http.MethodPost,
		Path:        "/tools/qr-code",
		Summary:     "Generate QR code",
		Tags:        []string{"Tools"},
	}, toolsHandler.QRCode)

	huma.Register(api, huma.Operation{
		OperationID: "markdown-to-html",
		Method:      http.MethodPost,
		Path:        "/tools/md-to-pdf",
		Summary:     "Convert markdown to a printable page",
		Tags:        []string{"Tools"},
	}, toolsHandler.MarkdownPreview)

	huma.Register(api, huma.Operation{
		OperationID: "markdown-to-pdf",
		Method:      http.MethodPost,
		Path:        "/tools/md-to-pdf-download",
		Summary:     "Convert markdown to PDF",
		Tags:        []string{"Tools"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PDF document",
				Content: map[string]*huma.MediaType{
					"application/pdf": {Schema: &huma.Schema{Type: huma.TypeString, Format: "binary"}},
				},
			},
		},
	}, toolsHandler.MarkdownPDF)

	huma.Register(api, huma.Operation{
		OperationID: "validate-json",
		Method:      http.MethodPost,
		Path:        "/tools/json-validator",
		Summary:     "Validate JSON",
		Tags:        []string{"Tools"},
	}, toolsHandler.ValidateJSON)

	huma.Register(api, huma.Operation{
		OperationID: "compare-text",
		Method:      http.MethodPost,
		Path:        "/tools/text-comparer",
		Summary:     "Compare two texts",
		Tags:        []string{"Tools"},
	}, toolsHandler.CompareText)

	huma.Register(api, huma.Operation{
		OperationID: "generate-color-palette",
		Method:      http.MethodPost,
		Path:        "/tools/color-palette",
		Summary:     "Generate color palette",
		Tags:        []string{"Tools"},
	}, toolsHandler.ColorPalette)

	huma.Register(api, huma.Operation{
		OperationID: "list-tools",
		Method:      http.MethodGet,
		Path:        "/tools",
		Summary:     "List available tools",
		Tags:        []string{"Tools"},
	}, toolsHandler.ListTools)
}
