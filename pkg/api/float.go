// pkg/api/float.go
package api

import (
	"encoding/json"
	"math"
)

// Float is a float64 whose NaN and ±Inf values encode to JSON as null.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}
