package handler

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderNote 将备注按 Markdown 渲染并清洗，渲染失败时退回纯文本转义
func renderNote(note string) template.HTML {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(trimmed), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(trimmed))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
