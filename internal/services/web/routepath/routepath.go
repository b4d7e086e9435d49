// Package routepath stores canonical HTTP paths for the web service.
package routepath

const (
	Root         = "/"
	Calculate    = "/calculate"
	Health       = "/up"
	APIPrefix    = "/api/"
	APICalculate = "/api/calculate"
	APIHealth    = "/api/health"
	StaticPrefix = "/static/"
)
