// Package normalize turns raw sheet cells into display-ready values.
package normalize

import (
	"fmt"
	"math"
	"strconv"
)

// IsPresent reports whether a cell holds a usable value.
// Empty strings, nil, numeric zero, NaN and false are all absent.
// Whitespace-only strings count as present.
func IsPresent(cell interface{}) bool {
	switch v := cell.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case int64:
		return v != 0
	case int:
		return v != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	case bool:
		return v
	default:
		return true
	}
}

// Text returns the display string of a cell. Absent (nil) cells become "".
func Text(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
