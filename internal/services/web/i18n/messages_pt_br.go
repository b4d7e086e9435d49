package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Calculator page
	message.SetString(lang, "title.home", "Calculadora de Divisão de Equity")
	message.SetString(lang, "meta.description", "Transforme uma oferta de equity em um cronograma de vesting com cliff fixo.")
	message.SetString(lang, "home.tagline", "Transforme uma oferta de equity em um cronograma de vesting com cliff fixo.")
	message.SetString(lang, "form.heading", "Calcular uma divisão")
	message.SetString(lang, "form.equity_label", "Fração de equity")
	message.SetString(lang, "form.equity_hint", "Maior que 0 e no máximo 1, como 0.3 para uma oferta de 30%%.")
	message.SetString(lang, "form.submit", "Calcular")

	// Result page
	message.SetString(lang, "title.result", "Cronograma Recomendado")
	message.SetString(lang, "result.heading", "Cronograma recomendado")
	message.SetString(lang, "result.summary", "Uma oferta de %s de equity adquire ao longo de %s anos (%s dias) com cliff de %s anos (%s dias).")
	message.SetString(lang, "result.equity_label", "Equity ofertada")
	message.SetString(lang, "result.score_label", "Pontuação da oferta")
	message.SetString(lang, "result.ratio_label", "Razão do cronograma")
	message.SetString(lang, "result.vesting_label", "Período de vesting")
	message.SetString(lang, "result.cliff_label", "Cliff")
	message.SetString(lang, "result.period_value", "%s anos (%s dias)")
	message.SetString(lang, "result.back", "Calcular outra divisão")

	// Error states
	message.SetString(lang, "error.heading", "Não foi possível calcular")
	message.SetString(lang, "split.error.equity_not_finite", "set_equity deve ser um número finito")
	message.SetString(lang, "split.error.equity_too_low", "set_equity deve ser maior que 0")
	message.SetString(lang, "split.error.equity_too_high", "set_equity deve ser no máximo 1")
	message.SetString(lang, "web.error.equity_required", "set_equity é obrigatório")
	message.SetString(lang, "web.error.equity_not_number", "set_equity deve ser um número")
	message.SetString(lang, "web.error.invalid_json", "corpo json inválido")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}
