package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/serroba/web-toolbox/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCode(t *testing.T) {
	t.Run("returns a png data url", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/qr-code", map[string]any{"text": "https://example.com"})

		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[struct {
			Success bool `json:"success"`
			Data    struct {
				Text          string `json:"text"`
				QRCodeDataURL string `json:"qrCodeDataURL"`
			} `json:"data"`
		}](t, resp)
		assert.True(t, body.Success)
		assert.Equal(t, "https://example.com", body.Data.Text)
		assert.True(t, strings.HasPrefix(body.Data.QRCodeDataURL, "data:image/png;base64,"))
		assert.Equal(t, 1, env.metrics.tool("qr-code", "success"))
	})

	t.Run("requires text", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/qr-code", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Text is required", decode[envelope](t, resp).Error)
	})

	t.Run("fails for oversized text", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/qr-code", map[string]any{"text": strings.Repeat("x", 5000)})

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, "Failed to generate QR code", decode[envelope](t, resp).Error)
	})
}

func TestMarkdownPreview(t *testing.T) {
	t.Run("returns the styled page", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/md-to-pdf", map[string]any{"markdown": "# Hello", "filename": "notes"})

		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[struct {
			Success bool `json:"success"`
			Data    struct {
				Filename   string `json:"filename"`
				PDFDataURL string `json:"pdfDataUrl"`
				Size       int    `json:"size"`
				HTML       string `json:"html"`
			} `json:"data"`
			Message string `json:"message"`
		}](t, resp)
		assert.True(t, body.Success)
		assert.Equal(t, "notes.pdf", body.Data.Filename)
		assert.Contains(t, body.Data.HTML, "<h1>Hello</h1>")
		assert.Equal(t, len(body.Data.HTML), body.Data.Size)
		assert.True(t, strings.HasPrefix(body.Data.PDFDataURL, "data:text/html;base64,"))
		assert.NotEmpty(t, body.Message)
	})

	t.Run("requires markdown", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/md-to-pdf", map[string]any{"filename": "x"})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Markdown content is required", decode[envelope](t, resp).Error)
	})
}

func TestMarkdownPDF(t *testing.T) {
	t.Run("returns the rendered pdf as attachment", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/md-to-pdf-download", map[string]any{"markdown": "# Hello"})

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="document.pdf"`, resp.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.4 test", resp.Body.String())
	})

	t.Run("render timeouts are retryable failures", func(t *testing.T) {
		env := newTestEnv(t)
		env.renderer.err = upstream.Wrap("chrome", context.DeadlineExceeded)

		resp := env.api.Post("/tools/md-to-pdf-download", map[string]any{"markdown": "# Hello"})

		assert.Equal(t, http.StatusInternalServerError, resp.Code)

		body := decode[envelope](t, resp)
		assert.Equal(t, "Failed to generate PDF", body.Error)
		assert.True(t, body.Retryable)
		assert.Equal(t, 1, env.metrics.tool("md-to-pdf-download", "error"))
	})

	t.Run("requires markdown", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/md-to-pdf-download", map[string]any{"markdown": ""})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

type jsonValidateBody struct {
	Success   bool            `json:"success"`
	Valid     bool            `json:"valid"`
	Parsed    json.RawMessage `json:"parsed"`
	Formatted string          `json:"formatted"`
	Stats     *struct {
		Type   string `json:"type"`
		Size   int    `json:"size"`
		Keys   int    `json:"keys"`
		Levels int    `json:"levels"`
	} `json:"stats"`
	Error    string `json:"error"`
	Position *int   `json:"position"`
	Line     *int   `json:"line"`
	Column   *int   `json:"column"`
}

func TestValidateJSON(t *testing.T) {
	t.Run("describes a valid document", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/json-validator", map[string]any{"jsonText": `{"a": [1, 2]}`})

		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[jsonValidateBody](t, resp)
		assert.True(t, body.Success)
		assert.True(t, body.Valid)
		assert.JSONEq(t, `{"a":[1,2]}`, string(body.Parsed))
		require.NotNil(t, body.Stats)
		assert.Equal(t, "object", body.Stats.Type)
		assert.Equal(t, 2, body.Stats.Levels)
		assert.Nil(t, body.Position)
	})

	t.Run("locates syntax errors with a successful response", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/json-validator", map[string]any{"jsonText": `{bad json`})

		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[jsonValidateBody](t, resp)
		assert.True(t, body.Success)
		assert.False(t, body.Valid)
		assert.NotEmpty(t, body.Error)
		require.NotNil(t, body.Position)
		assert.Equal(t, 1, *body.Position)
		assert.Equal(t, 1, *body.Line)
		assert.Equal(t, 2, *body.Column)
		assert.Nil(t, body.Stats)
	})

	t.Run("requires text", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/json-validator", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "JSON text is required", decode[envelope](t, resp).Error)
	})
}

func TestCompareText(t *testing.T) {
	type compareBody struct {
		Success     bool             `json:"success"`
		CompareType string           `json:"compareType"`
		Comparison  []map[string]any `json:"comparison"`
		Stats       struct {
			Text1Length int `json:"text1Length"`
			Text2Length int `json:"text2Length"`
			Similarity  int `json:"similarity"`
		} `json:"stats"`
	}

	t.Run("compares lines by default", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/text-comparer", map[string]any{"text1": "a\nb", "text2": "a\nc\nd"})

		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[compareBody](t, resp)
		assert.Equal(t, "lines", body.CompareType)
		require.Len(t, body.Comparison, 3)
		assert.Equal(t, "equal", body.Comparison[0]["status"])
		assert.Equal(t, "different", body.Comparison[1]["status"])
		assert.Equal(t, "added", body.Comparison[2]["status"])
		assert.InDelta(t, 3, body.Comparison[2]["lineNumber"], 0)
		assert.Equal(t, 3, body.Stats.Text1Length)
		assert.Equal(t, 5, body.Stats.Text2Length)
		assert.Equal(t, 40, body.Stats.Similarity)
	})

	t.Run("compares words", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/text-comparer", map[string]any{"text1": "hello world", "text2": "hello there", "compareType": "words"})

		body := decode[compareBody](t, resp)
		assert.Equal(t, "words", body.CompareType)
		require.Len(t, body.Comparison, 2)
		assert.Equal(t, "world", body.Comparison[1]["word1"])
	})

	t.Run("unknown type falls back to lines", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/text-comparer", map[string]any{"text1": "x", "text2": "y", "compareType": "paragraphs"})

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "lines", decode[compareBody](t, resp).CompareType)
	})

	t.Run("requires both texts", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/text-comparer", map[string]any{"text1": "only one"})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Both text inputs are required", decode[envelope](t, resp).Error)
	})
}

func TestColorPalette(t *testing.T) {
	type paletteBody struct {
		Success   bool `json:"success"`
		BaseColor struct {
			Hex string `json:"hex"`
		} `json:"baseColor"`
		Palette []struct {
			ID  int    `json:"id"`
			Hex string `json:"hex"`
			CSS string `json:"css"`
			RGB struct {
				R int `json:"r"`
				G int `json:"g"`
				B int `json:"b"`
			} `json:"rgb"`
		} `json:"palette"`
		PaletteType string `json:"paletteType"`
		Count       int    `json:"count"`
	}

	t.Run("generates a complementary palette by default", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/color-palette", map[string]any{"baseColor": "#ff0000"})

		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[paletteBody](t, resp)
		assert.True(t, body.Success)
		assert.Equal(t, "#ff0000", body.BaseColor.Hex)
		assert.Equal(t, "complementary", body.PaletteType)
		assert.Equal(t, 2, body.Count)
		require.Len(t, body.Palette, 2)
		assert.Equal(t, "#00ffff", body.Palette[1].Hex)
		assert.Equal(t, 255, body.Palette[1].RGB.B)
		assert.Equal(t, 2, body.Palette[1].ID)
	})

	t.Run("honours count for monochromatic palettes", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.api.Post("/tools/color-palette", map[string]any{"baseColor": "rgb(52, 152, 219)", "paletteType": "monochromatic", "count": 7})

		body := decode[paletteBody](t, resp)
		assert.Equal(t, 7, body.Count)
		assert.Len(t, body.Palette, 7)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := map[string]struct {
			body    map[string]any
			message string
		}{
			"missing color": {map[string]any{}, "Base color is required"},
			"bad color":     {map[string]any{"baseColor": "blue-ish"}, "Invalid color format"},
			"bad count":     {map[string]any{"baseColor": "#123456", "count": 40}, "Count must be between 2 and 12"},
		}

		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				env := newTestEnv(t)

				resp := env.api.Post("/tools/color-palette", tc.body)

				assert.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Equal(t, tc.message, decode[envelope](t, resp).Error)
			})
		}
	})
}

func TestListTools(t *testing.T) {
	env := newTestEnv(t)

	resp := env.api.Get("/tools")

	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[struct {
		Success bool `json:"success"`
		Tools   []struct {
			Name     string `json:"name"`
			Endpoint string `json:"endpoint"`
		} `json:"tools"`
	}](t, resp)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Tools)

	endpoints := make([]string, 0, len(body.Tools))
	for _, tool := range body.Tools {
		endpoints = append(endpoints, tool.Endpoint)
	}

	assert.Contains(t, endpoints, "POST /tools/url-shortener")
	assert.Contains(t, endpoints, "POST /tools/color-palette")
}
