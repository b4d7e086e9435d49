package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Calculator page
	message.SetString(lang, "title.home", "Equity Split Calculator")
	message.SetString(lang, "meta.description", "Turn an equity offer into a vesting schedule with a fixed cliff.")
	message.SetString(lang, "home.tagline", "Turn an equity offer into a vesting schedule with a fixed cliff.")
	message.SetString(lang, "form.heading", "Calculate a split")
	message.SetString(lang, "form.equity_label", "Equity fraction")
	message.SetString(lang, "form.equity_hint", "Greater than 0 and at most 1, such as 0.3 for a 30%% offer.")
	message.SetString(lang, "form.submit", "Calculate")

	// Result page
	message.SetString(lang, "title.result", "Recommended Schedule")
	message.SetString(lang, "result.heading", "Recommended schedule")
	message.SetString(lang, "result.summary", "A %s equity offer vests over %s years (%s days) with a %s-year cliff (%s days).")
	message.SetString(lang, "result.equity_label", "Equity offered")
	message.SetString(lang, "result.score_label", "Offer score")
	message.SetString(lang, "result.ratio_label", "Schedule ratio")
	message.SetString(lang, "result.vesting_label", "Vesting period")
	message.SetString(lang, "result.cliff_label", "Cliff")
	message.SetString(lang, "result.period_value", "%s years (%s days)")
	message.SetString(lang, "result.back", "Calculate another split")

	// Error states
	message.SetString(lang, "error.heading", "Could not calculate")
	message.SetString(lang, "split.error.equity_not_finite", "set_equity must be a finite number")
	message.SetString(lang, "split.error.equity_too_low", "set_equity must be greater than 0")
	message.SetString(lang, "split.error.equity_too_high", "set_equity must be at most 1")
	message.SetString(lang, "web.error.equity_required", "set_equity is required")
	message.SetString(lang, "web.error.equity_not_number", "set_equity must be a number")
	message.SetString(lang, "web.error.invalid_json", "invalid json body")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}
