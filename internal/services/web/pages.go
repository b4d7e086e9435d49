package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	apperrors "github.com/vestplan/vestplan/internal/platform/errors"
	webi18n "github.com/vestplan/vestplan/internal/services/web/i18n"
	"github.com/vestplan/vestplan/internal/services/web/platform/httpx"
	"github.com/vestplan/vestplan/internal/services/web/routepath"
	webtemplates "github.com/vestplan/vestplan/internal/services/web/templates"
	"github.com/vestplan/vestplan/internal/split"
)

// handleHome renders the calculator form.
func (h *handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	printer, lang := localizer(w, r)
	pageCopy := webi18n.Calculator(webi18n.NormalizeTag(lang))
	h.writeFormPage(w, r, printer, lang, pageCopy, "", nil)
}

// handleCalculateForm computes a schedule from the submitted form and
// renders either the result page or the form with an error state.
func (h *handlers) handleCalculateForm(w http.ResponseWriter, r *http.Request) {
	printer, lang := localizer(w, r)
	pageCopy := webi18n.Calculator(webi18n.NormalizeTag(lang))

	if err := r.ParseForm(); err != nil {
		h.writeFormPage(w, r, printer, lang, pageCopy, "", apperrors.E(apperrors.KindInvalidInput, "invalid form body"))
		return
	}
	raw := strings.TrimSpace(r.PostFormValue("set_equity"))
	if raw == "" {
		h.writeFormPage(w, r, printer, lang, pageCopy, raw, apperrors.EK(apperrors.KindInvalidInput, "web.error.equity_required", "set_equity is required"))
		return
	}
	setEquity, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.writeFormPage(w, r, printer, lang, pageCopy, raw, apperrors.EK(apperrors.KindInvalidInput, "web.error.equity_not_number", "set_equity must be a number"))
		return
	}

	result, err := h.calc.Calculate(setEquity)
	if err != nil {
		h.writeFormPage(w, r, printer, lang, pageCopy, raw, err)
		return
	}

	view := resultView(printer, pageCopy, result)
	h.writePage(w, r, printer, lang, routepath.Root, pageCopy.ResultTitle, pageCopy.MetaDescription, http.StatusOK, webtemplates.ResultPage(view))
}

func (h *handlers) writeFormPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, pageCopy webi18n.CalculatorCopy, equityValue string, err error) {
	view := webtemplates.FormView{
		Heading:     pageCopy.FormHeading,
		Tagline:     pageCopy.Tagline,
		EquityLabel: pageCopy.EquityLabel,
		EquityHint:  pageCopy.EquityHint,
		Submit:      pageCopy.Submit,
		EquityValue: equityValue,
	}
	status := http.StatusOK
	if err != nil {
		view.ErrorHeading = pageCopy.ErrorHeading
		view.ErrorMessage = publicMessage(loc, err)
		status = apperrors.HTTPStatus(err)
	}
	h.writePage(w, r, loc, lang, routepath.Root, pageCopy.HomeTitle, pageCopy.MetaDescription, status, webtemplates.FormPage(view))
}

// writePage renders a page body inside the shared layout. currentPath
// feeds the layout's language links, so POST-only routes pass the form
// path instead of their own.
func (h *handlers) writePage(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, lang string, currentPath string, title string, metaDescription string, statusCode int, body templ.Component) {
	page := webtemplates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  currentPath,
		CurrentQuery: "",
		AppName:      h.appName,
	}
	if r != nil && r.URL != nil && r.URL.Path == currentPath {
		page.CurrentQuery = r.URL.RawQuery
	}
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var rendered bytes.Buffer
	if err := webtemplates.Layout(page, title, metaDescription).Render(ctx, &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	_ = httpx.WriteHTML(w, statusCode, rendered.String())
}

func resultView(loc *message.Printer, pageCopy webi18n.CalculatorCopy, result split.Result) webtemplates.ResultView {
	percent := fmt.Sprintf("%.1f%%", result.SetEquity*100)
	vestingYears := fmt.Sprintf("%.2f", result.VestingYears)
	vestingDays := strconv.Itoa(result.VestingDays)
	cliffYears := fmt.Sprintf("%.2f", result.CliffYears)
	cliffDays := strconv.Itoa(result.CliffDays)

	period := func(years string, days string) string {
		if loc != nil {
			return loc.Sprintf("result.period_value", years, days)
		}
		return fmt.Sprintf("%s years (%s days)", years, days)
	}
	summary := ""
	if loc != nil {
		summary = loc.Sprintf("result.summary", percent, vestingYears, vestingDays, cliffYears, cliffDays)
	}

	return webtemplates.ResultView{
		Heading: pageCopy.ResultHeading,
		Summary: summary,
		Rows: []webtemplates.ResultRow{
			{Label: pageCopy.EquityRow, Value: percent},
			{Label: pageCopy.ScoreRow, Value: fmt.Sprintf("%.2f", result.AvgScore)},
			{Label: pageCopy.RatioRow, Value: fmt.Sprintf("%.3f", result.AvgRatio)},
			{Label: pageCopy.VestingRow, Value: period(vestingYears, vestingDays)},
			{Label: pageCopy.CliffRow, Value: period(cliffYears, cliffDays)},
		},
		BackLabel: pageCopy.Back,
	}
}
