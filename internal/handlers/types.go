package handlers

import (
	"encoding/json"

	"github.com/serroba/web-toolbox/internal/tools/jsonvalidator"
	"github.com/serroba/web-toolbox/internal/tools/palette"
)

// CreateShortURLRequest is the request body for creating a short URL.
type CreateShortURLRequest struct {
	Body struct {
		URL        string `doc:"The URL to shorten"                   example:"https://example.com/very/long/path" json:"url,omitempty"`
		CustomCode string `doc:"Optional custom code (3-20 chars)" example:"my-link"                            json:"customCode,omitempty"`
	}
}

// CreateShortURLResponse is the response for a successfully created short URL.
type CreateShortURLResponse struct {
	Body struct {
		Success bool `json:"success"`
		Data    struct {
			OriginalURL string `doc:"The original URL"              example:"https://example.com/very/long/path" json:"originalUrl"`
			ShortCode   string `doc:"The short code"                example:"abc123"                             json:"shortCode"`
			ShortURL    string `doc:"The full short URL"            example:"http://localhost:8888/s/abc123"     json:"shortUrl"`
			IsCustom    bool   `doc:"Whether the code was chosen"   json:"isCustom"`
			Provider    string `doc:"Provider that assigned the code" example:"local"                          json:"provider"`
		} `json:"data"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"abc123" path:"code"`
}

// RedirectResponse is the redirect to the original URL.
type RedirectResponse struct {
	Status   int
	Location string `header:"Location"`
}

type QRCodeRequest struct {
	Body struct {
		Text string `doc:"Text or URL to encode" example:"https://example.com" json:"text,omitempty"`
	}
}

type QRCodeResponse struct {
	Body struct {
		Success bool `json:"success"`
		Data    struct {
			Text          string `json:"text"`
			QRCodeDataURL string `doc:"PNG image as a data URL" json:"qrCodeDataURL"`
		} `json:"data"`
	}
}

type MarkdownRequest struct {
	Body struct {
		Markdown string `doc:"Markdown source"                       example:"# Hello" json:"markdown,omitempty"`
		Filename string `doc:"Base name of the generated document" example:"notes"   json:"filename,omitempty"`
	}
}

type MarkdownPreviewResponse struct {
	Body struct {
		Success bool `json:"success"`
		Data    struct {
			Filename   string `json:"filename"`
			PDFDataURL string `doc:"Styled HTML page as a data URL" json:"pdfDataUrl"`
			Size       int    `json:"size"`
			HTML       string `json:"html"`
		} `json:"data"`
		Message string `json:"message"`
	}
}

type MarkdownPDFResponse struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type JSONValidateRequest struct {
	Body struct {
		JSONText string `doc:"JSON document to validate" example:"{\"a\": 1}" json:"jsonText,omitempty"`
	}
}

type JSONValidateResponse struct {
	Body struct {
		Success   bool                 `json:"success"`
		Valid     bool                 `json:"valid"`
		Parsed    json.RawMessage      `json:"parsed,omitempty"`
		Formatted string               `json:"formatted,omitempty"`
		Stats     *jsonvalidator.Stats `json:"stats,omitempty"`
		Error     string               `json:"error,omitempty"`
		Position  *int                 `doc:"0-based byte offset of the error" json:"position,omitempty"`
		Line      *int                 `json:"line,omitempty"`
		Column    *int                 `json:"column,omitempty"`
	}
}

type TextCompareRequest struct {
	Body struct {
		Text1       string `json:"text1,omitempty"`
		Text2       string `json:"text2,omitempty"`
		CompareType string `doc:"lines, words or characters" json:"compareType,omitempty"`
	}
}

type TextCompareStats struct {
	Text1Length int `json:"text1Length"`
	Text2Length int `json:"text2Length"`
	Similarity  int `doc:"Percentage of matching positions" json:"similarity"`
}

type TextCompareResponse struct {
	Body struct {
		Success     bool             `json:"success"`
		CompareType string           `json:"compareType"`
		Comparison  any              `json:"comparison"`
		Stats       TextCompareStats `json:"stats"`
	}
}

type ColorPaletteRequest struct {
	Body struct {
		BaseColor   string `doc:"#rrggbb, #rgb, rgb() or hsl()" example:"#3498db" json:"baseColor,omitempty"`
		PaletteType string `doc:"complementary, analogous, triadic, monochromatic or tetradic" json:"paletteType,omitempty"`
		Count       int    `doc:"Palette size for analogous and monochromatic" json:"count,omitempty"`
	}
}

type ColorPaletteResponse struct {
	Body struct {
		Success     bool            `json:"success"`
		BaseColor   palette.Color   `json:"baseColor"`
		Palette     []palette.Color `json:"palette"`
		PaletteType string          `json:"paletteType"`
		Count       int             `json:"count"`
	}
}

type Tool struct {
	Name        string `json:"name"`
	Endpoint    string `json:"endpoint"`
	Description string `json:"description"`
}

type ToolsResponse struct {
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Tools   []Tool `json:"tools"`
	}
}
