package entities

// CostOverrides carries user-adjusted figures into document rendering.
// Costs substitutes per component (unmatched components keep their stored
// value); Total, when non-nil, always takes precedence over any sum of
// overridden line items.
type CostOverrides struct {
	Costs map[string]float64
	Total *float64
}

// HasAny reports whether the overrides change anything at all.
func (o CostOverrides) HasAny() bool {
	return len(o.Costs) > 0 || o.Total != nil
}
