package roads2wrpp

// RequiredRule decides whether the solver must service an edge (REQUIRED) or
// may skip it (OPTIONAL). The exporter only renders the boolean it is given;
// coverage/route-filter semantics live entirely in the rule.
type RequiredRule func(edge Edge) bool

// ChinesePostmanRule - every edge must be serviced
func ChinesePostmanRule() RequiredRule {
	return func(edge Edge) bool {
		return true
	}
}

// WindyRuralRule - an edge must be serviced when it is route-required and,
// with the coverage filter enabled, not yet covered by imagery
func WindyRuralRule(coverageFilterEnabled bool) RequiredRule {
	return func(edge Edge) bool {
		if !edge.RouteRequired {
			return false
		}
		if coverageFilterEnabled && edge.Covered {
			return false
		}
		return true
	}
}

// RuleFor returns the required-rule instance matching the problem class of given policy
func RuleFor(graphType GraphType, coverageFilterEnabled bool) RequiredRule {
	if graphType.ProblemType() == PROBLEM_WINDY_RURAL_POSTMAN {
		return WindyRuralRule(coverageFilterEnabled)
	}
	return ChinesePostmanRule()
}
