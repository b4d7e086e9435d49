package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vestplan/vestplan/internal/split"
)

// CalculateSplitInput represents the MCP tool input for a split calculation.
type CalculateSplitInput struct {
	SetEquity float64 `json:"set_equity" jsonschema:"equity fraction offered, greater than 0 and at most 1"`
}

// CalculateSplitResult represents the MCP tool output for a split calculation.
type CalculateSplitResult struct {
	SetEquity    float64 `json:"set_equity" jsonschema:"equity fraction used for the calculation"`
	AvgScore     float64 `json:"avg_score" jsonschema:"scaled offer score"`
	AvgRatio     float64 `json:"avg_ratio" jsonschema:"schedule compression ratio"`
	VestingDays  int     `json:"vesting_days" jsonschema:"total vesting period in days"`
	VestingYears float64 `json:"vesting_years" jsonschema:"total vesting period in years"`
	CliffDays    int     `json:"cliff_days" jsonschema:"cliff length in days"`
	CliffYears   float64 `json:"cliff_years" jsonschema:"cliff length in years"`
}

// VestingPolicyInput represents the MCP tool input for policy metadata.
type VestingPolicyInput struct{}

// VestingPolicyResult represents the MCP tool output for policy metadata.
type VestingPolicyResult struct {
	ScoreScale    float64 `json:"score_scale" jsonschema:"multiplier applied to the equity fraction"`
	FloorYears    float64 `json:"floor_years" jsonschema:"minimum vesting length in years"`
	SpanYears     float64 `json:"span_years" jsonschema:"additional vesting years scaled by the ratio"`
	CliffPeriods  int     `json:"cliff_periods" jsonschema:"number of cliff-sized periods in the vesting span"`
	CliffFraction float64 `json:"cliff_fraction" jsonschema:"cliff share of the vesting period"`
	DaysPerYear   int     `json:"days_per_year" jsonschema:"day count used for year conversions"`
}

// CalculateSplitTool defines the MCP tool schema for split calculations.
func CalculateSplitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calculate_split",
		Description: "Calculates a vesting schedule for an equity offer",
	}
}

// VestingPolicyTool defines the MCP tool schema for policy metadata.
func VestingPolicyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "vesting_policy",
		Description: "Describes the vesting policy behind the calculator",
	}
}

// CalculateSplitHandler executes a split calculation.
func CalculateSplitHandler(calc *split.Calculator) mcp.ToolHandlerFor[CalculateSplitInput, CalculateSplitResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CalculateSplitInput) (*mcp.CallToolResult, CalculateSplitResult, error) {
		result, err := calc.Calculate(input.SetEquity)
		if err != nil {
			return nil, CalculateSplitResult{}, fmt.Errorf("calculate split: %w", err)
		}

		return nil, CalculateSplitResult{
			SetEquity:    result.SetEquity,
			AvgScore:     result.AvgScore,
			AvgRatio:     result.AvgRatio,
			VestingDays:  result.VestingDays,
			VestingYears: result.VestingYears,
			CliffDays:    result.CliffDays,
			CliffYears:   result.CliffYears,
		}, nil
	}
}

// VestingPolicyHandler returns the calculator's policy coefficients.
func VestingPolicyHandler(calc *split.Calculator) mcp.ToolHandlerFor[VestingPolicyInput, VestingPolicyResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ VestingPolicyInput) (*mcp.CallToolResult, VestingPolicyResult, error) {
		if calc == nil {
			return nil, VestingPolicyResult{}, fmt.Errorf("calculator is not configured")
		}

		policy := calc.Policy()
		return nil, VestingPolicyResult{
			ScoreScale:    policy.ScoreScale,
			FloorYears:    policy.FloorYears,
			SpanYears:     policy.SpanYears,
			CliffPeriods:  policy.CliffPeriods,
			CliffFraction: policy.CliffFraction(),
			DaysPerYear:   split.DaysPerYear,
		}, nil
	}
}
