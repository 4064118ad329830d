package boutiques

// numericConstraints is the frontend-lowered form of a Boutiques numeric
// input's bounds, folded per REDESIGN FLAG (i): integer exclusive bounds
// become inclusive via +/-1 at this stage; float exclusive bounds are kept
// as a flag for the IR's FloatBody to carry forward and the target provider
// to emit as a strict comparison.
//
// Grounded on _collect_constraints / _NumericConstraints
// (frontend/boutiques/core.go).
type numericConstraints struct {
	IntMin, IntMax           *int64
	FloatMin, FloatMax       *float64
	FloatMinExclusive        bool
	FloatMaxExclusive        bool
	ListLengthMin, ListLengthMax *int
}

func collectConstraints(raw map[string]any, isInteger, isFloat, isList bool) numericConstraints {
	var c numericConstraints

	minExclusive, _ := raw["exclusive-minimum"].(bool)
	maxExclusive, _ := raw["exclusive-maximum"].(bool)

	if isInteger || isFloat {
		if v, ok := numberField(raw, "minimum"); ok {
			if isInteger {
				iv := int64(v)
				if minExclusive {
					iv++
				}
				c.IntMin = &iv
			} else {
				fv := v
				c.FloatMin = &fv
				c.FloatMinExclusive = minExclusive
			}
		}
		if v, ok := numberField(raw, "maximum"); ok {
			if isInteger {
				iv := int64(v)
				if maxExclusive {
					iv--
				}
				c.IntMax = &iv
			} else {
				fv := v
				c.FloatMax = &fv
				c.FloatMaxExclusive = maxExclusive
			}
		}
	}

	if isList {
		if v, ok := intField(raw, "min-list-entries"); ok {
			c.ListLengthMin = &v
		}
		if v, ok := intField(raw, "max-list-entries"); ok {
			c.ListLengthMax = &v
		}
	}

	return c
}

// numberField reads a JSON-numeric field (decoded as float64 by
// encoding/json into `any`) out of a raw descriptor map.
func numberField(raw map[string]any, key string) (float64, bool) {
	v, present := raw[key]
	if !present || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func intField(raw map[string]any, key string) (int, bool) {
	v, ok := numberField(raw, key)
	if !ok {
		return 0, false
	}
	return int(v), true
}
