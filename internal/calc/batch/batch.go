package batch

import (
	"fmt"

	furnace "Smeltline/internal/calc/furnace"
)

type FurnaceBatchInput struct {
	Items []furnace.SessionRequest `json:"items"`
}

type FurnaceBatchResult struct {
	Results []furnace.Design `json:"results"`
}

// CalculateFurnace sizes a list of furnace cases in one call. Each item is
// independent; no session state is created.
func CalculateFurnace(in FurnaceBatchInput) (FurnaceBatchResult, error) {
	if len(in.Items) == 0 {
		return FurnaceBatchResult{}, fmt.Errorf("no items")
	}
	out := FurnaceBatchResult{Results: make([]furnace.Design, 0, len(in.Items))}
	for _, item := range in.Items {
		c, err := furnace.ResolveCoefficients(item)
		if err != nil {
			return FurnaceBatchResult{}, err
		}
		res, err := furnace.Size(item.Input, c)
		if err != nil {
			return FurnaceBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
