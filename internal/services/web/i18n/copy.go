package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vestplan/vestplan/internal/platform/branding"
)

// CalculatorCopy holds translatable copy for the calculator pages.
type CalculatorCopy struct {
	MetaDescription string
	HomeTitle       string
	Tagline         string
	FormHeading     string
	EquityLabel     string
	EquityHint      string
	Submit          string
	ResultTitle     string
	ResultHeading   string
	EquityRow       string
	ScoreRow        string
	RatioRow        string
	VestingRow      string
	CliffRow        string
	Back            string
	ErrorHeading    string
}

// Calculator returns localized calculator copy for the provided language tag.
func Calculator(tag language.Tag) CalculatorCopy {
	localizedTag := normalizeCopyTag(tag)
	loc := message.NewPrinter(localizedTag)

	homeTitle := localizeWithFallback(loc, "title.home", "Equity Split Calculator")
	resultTitle := localizeWithFallback(loc, "title.result", "Recommended Schedule")

	return CalculatorCopy{
		MetaDescription: localizeWithFallback(loc, "meta.description", "Turn an equity offer into a vesting schedule with a fixed cliff."),
		HomeTitle:       withProductSuffix(homeTitle),
		Tagline:         localizeWithFallback(loc, "home.tagline", "Turn an equity offer into a vesting schedule with a fixed cliff."),
		FormHeading:     localizeWithFallback(loc, "form.heading", "Calculate a split"),
		EquityLabel:     localizeWithFallback(loc, "form.equity_label", "Equity fraction"),
		EquityHint:      localizeWithFallback(loc, "form.equity_hint", "Greater than 0 and at most 1, such as 0.3 for a 30% offer."),
		Submit:          localizeWithFallback(loc, "form.submit", "Calculate"),
		ResultTitle:     withProductSuffix(resultTitle),
		ResultHeading:   localizeWithFallback(loc, "result.heading", "Recommended schedule"),
		EquityRow:       localizeWithFallback(loc, "result.equity_label", "Equity offered"),
		ScoreRow:        localizeWithFallback(loc, "result.score_label", "Offer score"),
		RatioRow:        localizeWithFallback(loc, "result.ratio_label", "Schedule ratio"),
		VestingRow:      localizeWithFallback(loc, "result.vesting_label", "Vesting period"),
		CliffRow:        localizeWithFallback(loc, "result.cliff_label", "Cliff"),
		Back:            localizeWithFallback(loc, "result.back", "Calculate another split"),
		ErrorHeading:    localizeWithFallback(loc, "error.heading", "Could not calculate"),
	}
}

func normalizeCopyTag(tag language.Tag) language.Tag {
	if tag == language.BrazilianPortuguese {
		return language.BrazilianPortuguese
	}
	base, _ := tag.Base()
	portugueseBase, _ := language.Portuguese.Base()
	if base == portugueseBase {
		return language.BrazilianPortuguese
	}
	return language.AmericanEnglish
}

func withProductSuffix(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return branding.AppName
	}
	return fmt.Sprintf("%s | %s", trimmed, branding.AppName)
}

func localizeWithFallback(loc *message.Printer, key string, fallback string, args ...any) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key, args...))
		if value != "" && value != key {
			return value
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(fallback, args...)
	}
	return fallback
}
