// Package web owns the browser-facing split calculator and its JSON API.
//
// It renders the calculator form and result pages, localizes them through the
// i18n catalogs, and exposes the same calculation over POST /api/calculate so
// browser and programmatic clients share one vesting policy.
package web
