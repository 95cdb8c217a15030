package cbv

import "math"

// Align restricts and reorders the table to the target grid by exact
// cadence-number matching.
//
// The output has one row per grid cadence, in grid order. A grid cadence
// present in the table receives that row's amplitudes and gap flag; a grid
// cadence absent from the table receives NaN amplitudes with the gap flag
// set. Table rows without a counterpart in the grid are dropped silently.
// The input table is not modified.
func Align(t *Table, grid TargetGrid) (*Table, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}

	byCadence := make(map[int]int, t.Len())
	for i, c := range t.cadence {
		byCadence[c] = i
	}

	out := t.emptyLike(grid)

	for i, c := range grid.CadenceNumbers {
		src, ok := byCadence[c]
		if !ok {
			for k := range out.vectors {
				out.vectors[k][i] = math.NaN()
			}

			out.gaps[i] = true

			continue
		}

		for k := range out.vectors {
			out.vectors[k][i] = t.vectors[k][src]
		}

		out.gaps[i] = t.gaps[src]
		out.times[i] = t.times[src]
	}

	return out, nil
}
