// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name shown in page titles and client-facing surfaces.
const AppName = "VestPlan"
