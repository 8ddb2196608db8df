package llm

// ModelCost holds per-million-token pricing for a model in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the default model of each provider.
var modelCosts = map[string]ModelCost{
	"meta-llama/llama-3-3-70b-instruct": {0.71, 0.71},
	"ibm/granite-3-8b-instruct":         {0.2, 0.2},

	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4-5": {3, 15},

	"gpt-4o":      {2.5, 10},
	"gpt-4o-mini": {0.15, 0.6},

	"gemini-2.5-flash": {0.3, 2.5},
	"gemini-2.5-pro":   {1.25, 10},

	"meta-llama/llama-3.3-70b-instruct": {0.13, 0.4},
}
