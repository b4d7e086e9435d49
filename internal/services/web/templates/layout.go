package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/vestplan/vestplan/internal/services/web/routepath"
)

// Layout wraps page content in the shared document chrome. Child content
// is taken from the render context.
func Layout(page PageContext, title string, metaDescription string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if children == nil {
			children = templ.NopComponent
		}

		var head strings.Builder
		head.WriteString("<!doctype html>")
		head.WriteString(`<html lang="` + html.EscapeString(page.Lang) + `">`)
		head.WriteString("<head>")
		head.WriteString(`<meta charset="utf-8"/>`)
		head.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		head.WriteString(`<meta name="description" content="` + html.EscapeString(metaDescription) + `"/>`)
		head.WriteString("<title>" + html.EscapeString(title) + "</title>")
		head.WriteString(`<link rel="stylesheet" href="` + routepath.StaticPrefix + `app.css"/>`)
		head.WriteString("</head><body>")
		head.WriteString(`<header class="site-header"><a href="` + routepath.Root + `">` + html.EscapeString(page.AppName) + `</a></header>`)
		head.WriteString(`<main class="content">`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}

		if err := children.Render(ctx, w); err != nil {
			return err
		}

		var tail strings.Builder
		tail.WriteString("</main>")
		tail.WriteString(`<footer class="site-footer"><nav class="lang-nav">`)
		for _, option := range LanguageOptions(page) {
			class := "lang-link"
			if option.Active {
				class = "lang-link active"
			}
			tail.WriteString(`<a class="` + class + `" href="` + html.EscapeString(LanguageURL(page, option.Tag)) + `">` + html.EscapeString(option.Label) + `</a>`)
		}
		tail.WriteString("</nav></footer></body></html>")
		_, err := io.WriteString(w, tail.String())
		return err
	})
}
