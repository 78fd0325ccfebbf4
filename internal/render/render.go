package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/strategy-cli/internal/model"
)

// Format is an output document format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatXLSX     Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatMarkdown, FormatHTML, FormatPDF, FormatXLSX}

// ParseFormat resolves a format name. "md" is accepted for markdown and an
// empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", eris.Errorf("render: unknown format %q", s)
}

// ContentType returns the MIME type of documents in format f.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Extension returns the file extension for format f, without the dot.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

// PDFPrinter prints an HTML document to PDF.
type PDFPrinter interface {
	Render(ctx context.Context, htmlDoc string) ([]byte, error)
}

// Renderer produces documents in any supported format. PDF output needs a
// PDFPrinter; the other formats are rendered in-process.
type Renderer struct {
	pdf PDFPrinter
}

// NewRenderer creates a Renderer. pdf may be nil when PDF output is not needed.
func NewRenderer(pdf PDFPrinter) *Renderer {
	return &Renderer{pdf: pdf}
}

// Basic renders a basic strategy.
func (r *Renderer) Basic(ctx context.Context, f Format, res *model.StrategyResult) ([]byte, error) {
	return r.render(ctx, f, document{
		title:    "Social Media Strategy for " + res.BusinessName,
		value:    res,
		markdown: func() string { return Markdown(res) },
		xlsx:     func(w *bytes.Buffer) error { return XLSX(w, res) },
	})
}

// Advanced renders an advanced 30-day plan.
func (r *Renderer) Advanced(ctx context.Context, f Format, res *model.AdvancedStrategyResult) ([]byte, error) {
	return r.render(ctx, f, document{
		title:    "30-Day Action Plan for " + res.BusinessName,
		value:    res,
		markdown: func() string { return AdvancedMarkdown(res) },
		xlsx:     func(w *bytes.Buffer) error { return AdvancedXLSX(w, res) },
	})
}

type document struct {
	title    string
	value    any
	markdown func() string
	xlsx     func(w *bytes.Buffer) error
}

func (r *Renderer) render(ctx context.Context, f Format, doc document) ([]byte, error) {
	switch f {
	case FormatJSON:
		out, err := json.MarshalIndent(doc.value, "", "  ")
		if err != nil {
			return nil, eris.Wrap(err, "render: marshal json")
		}
		return append(out, '\n'), nil

	case FormatMarkdown:
		return []byte(doc.markdown()), nil

	case FormatHTML, FormatPDF:
		page, err := HTML(doc.title, doc.markdown())
		if err != nil {
			return nil, err
		}
		if f == FormatHTML {
			return []byte(page), nil
		}
		if r.pdf == nil {
			return nil, eris.New("render: pdf output is not configured")
		}
		return r.pdf.Render(ctx, page)

	case FormatXLSX:
		var buf bytes.Buffer
		if err := doc.xlsx(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, eris.Errorf("render: unknown format %q", f)
}
