package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const renderTimeout = 30 * time.Second

// ChromiumRenderer renders markdown documents through headless Chromium.
type ChromiumRenderer struct {
	chromePath string
}

// NewChromiumRenderer creates a renderer. An empty ChromePath falls back
// to well-known Chromium install locations.
func NewChromiumRenderer(cfg Config) *ChromiumRenderer {
	path := cfg.ChromePath
	if path == "" {
		path = detectChromePath()
	}
	return &ChromiumRenderer{chromePath: path}
}

// Render implements IRenderer.
func (r *ChromiumRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	htmlDoc, err := buildHTML(doc)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

func buildHTML(doc Document) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Table))
	if err := md.Convert([]byte(doc.Markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	var header strings.Builder
	if doc.Title != "" {
		header.WriteString("<h1 class='doc-title'>" + html.EscapeString(doc.Title) + "</h1>")
	}
	if doc.Subtitle != "" {
		header.WriteString("<div class='doc-subtitle'>" + html.EscapeString(doc.Subtitle) + "</div>")
	}
	if len(doc.Badges) > 0 {
		header.WriteString("<div class='doc-badges'>")
		for _, b := range doc.Badges {
			header.WriteString("<span class='doc-badge'>" + html.EscapeString(b) + "</span>")
		}
		header.WriteString("</div>")
	}

	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(doc.Title) + "</title>" +
		"<style>" + styleCSS + "</style></head><body>" +
		"<div class='doc-wrap'>" +
		"<div class='doc-header'>" + header.String() + "</div>" +
		"<div class='doc-body'>" + content.String() + "</div>" +
		"</div></body></html>", nil
}

const styleCSS = `
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
body{font-family:'Helvetica Neue',Arial,sans-serif;color:#1c1917;background:#fff;margin:0;padding:0.6rem;font-size:0.85rem;line-height:1.5;}
.doc-wrap{max-width:1000px;margin:0 auto;}
.doc-header{border-bottom:3px solid #1d4ed8;padding-bottom:0.6rem;margin-bottom:1rem;}
.doc-title{margin:0 0 0.2rem 0;font-size:1.5rem;color:#1e3a8a;}
.doc-subtitle{color:#44403c;font-size:0.85rem;}
.doc-badges{margin-top:0.5rem;}
.doc-badge{display:inline-block;background:#dbeafe;color:#1e3a8a;border:1px solid #93c5fd;border-radius:4px;padding:0.15rem 0.5rem;margin-right:0.4rem;font-size:0.7rem;font-weight:700;text-transform:uppercase;letter-spacing:0.03em;}
.doc-body h2{color:#1e3a8a;border-bottom:1px solid #e7e5e4;padding-bottom:0.2rem;margin-top:1.4rem;}
.doc-body h3{color:#1c1917;margin-top:1rem;}
.doc-body table{width:100% !important;border-collapse:collapse !important;border:1px solid #a8a29e !important;font-size:0.8rem !important;}
.doc-body th,.doc-body td{border:1px solid #a8a29e !important;padding:0.35rem 0.45rem !important;text-align:left !important;vertical-align:top !important;}
.doc-body thead th{background:#f1f5f9 !important;font-weight:700 !important;}
.doc-body a{color:#1d4ed8 !important;text-decoration:underline !important;}
@media print{ @page{size:auto;margin:12mm;} body{padding:0;} .doc-wrap{max-width:none;} }
`

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
