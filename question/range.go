package question

import (
	"fmt"
	"strings"
	"time"
)

// InRange reports whether a converted value satisfies the question's
// bounds and membership set. Absent clauses are vacuously true; Above and
// Below are exclusive. The value must already be converted — InRange never
// parses.
func (q *Question) InRange(value any) bool {
	if q.Above != nil {
		c, ok := compareValues(value, q.Above)
		if !ok || c <= 0 {
			return false
		}
	}
	if q.Below != nil {
		c, ok := compareValues(value, q.Below)
		if !ok || c >= 0 {
			return false
		}
	}
	if q.In != nil {
		member := false
		for _, m := range q.In {
			if c, ok := compareValues(value, m); ok && c == 0 {
				member = true
				break
			}
		}
		if !member {
			return false
		}
	}
	return true
}

// ExpectedRange renders the configured constraints as an English clause
// list for use in messages: one clause verbatim, two joined with " and ",
// three or more comma-joined with ", and " before the last.
func (q *Question) ExpectedRange() string {
	var clauses []string
	if q.Above != nil {
		clauses = append(clauses, fmt.Sprintf("above %v", q.Above))
	}
	if q.Below != nil {
		clauses = append(clauses, fmt.Sprintf("below %v", q.Below))
	}
	if q.In != nil {
		members := make([]string, len(q.In))
		for i, m := range q.In {
			members[i] = fmt.Sprintf("%v", m)
		}
		clauses = append(clauses, "included in ["+strings.Join(members, ", ")+"]")
	}
	return joinClauses(clauses)
}

// joinClauses joins English clauses per the rule in ExpectedRange.
func joinClauses(clauses []string) string {
	switch len(clauses) {
	case 0:
		return ""
	case 1:
		return clauses[0]
	case 2:
		return clauses[0] + " and " + clauses[1]
	}
	return strings.Join(clauses[:len(clauses)-1], ", ") + ", and " + clauses[len(clauses)-1]
}

// compareValues orders two converted values of like type. Numeric values
// mix freely by widening to float64, since a bound may be declared as an
// int against a Float question or vice versa. The second result is false
// when the values cannot be ordered.
func compareValues(a, b any) (int, bool) {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		}
		return 0, true
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case Symbol:
		bv, ok := b.(Symbol)
		if !ok {
			return 0, false
		}
		return strings.Compare(string(av), string(bv)), true
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case av.Before(bv):
			return -1, true
		case av.After(bv):
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// toFloat widens any supported numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
