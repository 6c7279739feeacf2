package render

import (
	"github.com/guptarohit/asciigraph"
)

// Plot draws values as an ASCII line chart of the given height.
func Plot(values []int, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data, asciigraph.Height(height), asciigraph.Caption(caption))
}
