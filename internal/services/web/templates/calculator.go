package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/vestplan/vestplan/internal/services/web/routepath"
)

// FormView models the calculator form.
type FormView struct {
	Heading      string
	Tagline      string
	EquityLabel  string
	EquityHint   string
	Submit       string
	EquityValue  string
	ErrorHeading string
	ErrorMessage string
}

// ResultRow is one label and value pair in the schedule summary.
type ResultRow struct {
	Label string
	Value string
}

// ResultView models the recommended schedule page.
type ResultView struct {
	Heading   string
	Summary   string
	Rows      []ResultRow
	BackLabel string
}

// FormPage renders the calculator form with optional error state.
func FormPage(view FormView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="card">`)
		b.WriteString("<h1>" + html.EscapeString(view.Heading) + "</h1>")
		if view.Tagline != "" {
			b.WriteString(`<p class="tagline">` + html.EscapeString(view.Tagline) + "</p>")
		}
		if view.ErrorMessage != "" {
			b.WriteString(`<div class="error" role="alert">`)
			if view.ErrorHeading != "" {
				b.WriteString("<strong>" + html.EscapeString(view.ErrorHeading) + "</strong> ")
			}
			b.WriteString(html.EscapeString(view.ErrorMessage))
			b.WriteString("</div>")
		}
		b.WriteString(`<form method="post" action="` + routepath.Calculate + `">`)
		b.WriteString(`<label for="set_equity">` + html.EscapeString(view.EquityLabel) + "</label>")
		b.WriteString(`<input type="text" id="set_equity" name="set_equity" inputmode="decimal" value="` + html.EscapeString(view.EquityValue) + `"/>`)
		if view.EquityHint != "" {
			b.WriteString(`<p class="hint">` + html.EscapeString(view.EquityHint) + "</p>")
		}
		b.WriteString(`<button type="submit">` + html.EscapeString(view.Submit) + "</button>")
		b.WriteString("</form></section>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ResultPage renders a recommended vesting schedule.
func ResultPage(view ResultView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="card">`)
		b.WriteString("<h1>" + html.EscapeString(view.Heading) + "</h1>")
		if view.Summary != "" {
			b.WriteString(`<p class="summary">` + html.EscapeString(view.Summary) + "</p>")
		}
		b.WriteString(`<dl class="schedule">`)
		for _, row := range view.Rows {
			b.WriteString("<dt>" + html.EscapeString(row.Label) + "</dt>")
			b.WriteString("<dd>" + html.EscapeString(row.Value) + "</dd>")
		}
		b.WriteString("</dl>")
		b.WriteString(`<a class="back" href="` + routepath.Root + `">` + html.EscapeString(view.BackLabel) + "</a>")
		b.WriteString("</section>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
