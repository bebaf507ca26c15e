package export

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rivermaze/drainage"
)

// Summarize computes aggregate statistics over heights and net.
func Summarize(heights []int64, net *drainage.Network) (Summary, error) {
	if len(heights) != net.Grid.Len() {
		return Summary{}, fmt.Errorf("%w: %d heights for %d cells", ErrLengthMismatch, len(heights), net.Grid.Len())
	}
	xs := make([]float64, len(heights))
	for i, h := range heights {
		xs[i] = float64(h)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	largest, _ := net.MaxArea()

	return Summary{
		Cells:       len(heights),
		RiverCells:  net.RiverCount(),
		Roots:       len(net.Roots()),
		MaxHeight:   floats.Max(xs),
		MeanHeight:  mean,
		StdDev:      std,
		LargestArea: largest,
	}, nil
}
