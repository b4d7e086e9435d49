package templates

import (
	"golang.org/x/text/language"

	webi18n "github.com/vestplan/vestplan/internal/services/web/i18n"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption = webi18n.LanguageOption

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	return webi18n.BuildLanguageOptions(webi18n.Supported(), page.Lang, func(tag language.Tag) string {
		return T(page.Loc, webi18n.LanguageKeyLabel(tag))
	})
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	return webi18n.LanguageURL(page.CurrentPath, page.CurrentQuery, tag)
}
