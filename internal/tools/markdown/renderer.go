package markdown

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/serroba/web-toolbox/internal/upstream"
	"go.uber.org/zap"
)

const rendererName = "chrome"

// Renderer turns an HTML page into a PDF.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// A4 in inches with 1cm margins.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
	margin      = 0.39
)

// ChromeRenderer prints pages with a headless Chrome started per render.
type ChromeRenderer struct {
	execPath string
	timeout  time.Duration
}

// NewChromeRenderer creates a renderer. An empty execPath lets chromedp locate Chrome.
func NewChromeRenderer(execPath string, timeout time.Duration) *ChromeRenderer {
	return &ChromeRenderer{
		execPath: execPath,
		timeout:  timeout,
	}
}

func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox, chromedp.DisableGPU)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte

	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}

			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			pdf = buf

			return err
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}

		return nil, upstream.Wrap(rendererName, err)
	}

	return pdf, nil
}

// Cache stores rendered PDFs by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// CachingRenderer serves repeated pages from a Cache. Cache failures are logged and
// fall through to the wrapped renderer.
type CachingRenderer struct {
	next   Renderer
	cache  Cache
	logger *zap.Logger
}

func NewCachingRenderer(next Renderer, cache Cache, logger *zap.Logger) *CachingRenderer {
	return &CachingRenderer{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (r *CachingRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	key := cacheKey(html)

	pdf, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("pdf cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return pdf, nil
	}

	pdf, err = r.next.Render(ctx, html)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, pdf); err != nil {
		r.logger.Warn("pdf cache write failed", zap.String("key", key), zap.Error(err))
	}

	return pdf, nil
}

func cacheKey(html string) string {
	sum := sha256.Sum256([]byte(html))

	return hex.EncodeToString(sum[:])
}
