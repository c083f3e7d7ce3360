package coach

import "fmt"

// Series is the chart payload returned by the volume endpoint: date labels
// co-indexed 1:1 with daily volume values.
type Series struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// Validate enforces the co-indexing invariant.
func (s Series) Validate() error {
	if len(s.Labels) != len(s.Data) {
		return fmt.Errorf("series labels/data length mismatch: %d != %d", len(s.Labels), len(s.Data))
	}
	return nil
}
