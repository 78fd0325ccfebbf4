package render

import (
	"bytes"
	"html"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const printCSS = `body{font-family:-apple-system,"Segoe UI",Helvetica,Arial,sans-serif;color:#1c1917;max-width:960px;margin:0 auto;padding:1.5rem;line-height:1.5;}` +
	`h1{color:#4f46e5;} h2{border-bottom:2px solid #e0e7ff;padding-bottom:0.25rem;margin-top:2rem;} ` +
	`table{width:100%;border-collapse:collapse;font-size:0.85rem;margin-bottom:1rem;} ` +
	`th,td{border:1px solid #d6d3d1;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;} ` +
	`thead th{background:#f1f5f9;} blockquote{border-left:4px solid #f59e0b;margin:0;padding:0.25rem 0.75rem;background:#fffbeb;} ` +
	`pre{background:#f5f5f4;padding:0.75rem;white-space:pre-wrap;} ` +
	`html,body,*{-webkit-print-color-adjust:exact;print-color-adjust:exact;} ` +
	`@media print{@page{size:A4;margin:12mm;} body{padding:0;max-width:none;} h2{break-after:avoid;}}`

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a Markdown document into a standalone, print-ready HTML page.
func HTML(title, markdown string) (string, error) {
	var content bytes.Buffer
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", eris.Wrap(err, "render: markdown convert")
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) + "</title>" +
		"<style>" + printCSS + "</style></head><body>" + content.String() + "</body></html>", nil
}
