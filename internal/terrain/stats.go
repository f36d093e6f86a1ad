package terrain

// Stats summarizes the values in a heightfield.
type Stats struct {
	Min, Max int
	Mean     float64
	// Nonzero counts cells that received any net elevation.
	Nonzero int
}

// Stats scans the field once and reports its range and mean.
func (f *HeightField) Stats() Stats {
	cells := f.grid.Cells()
	s := Stats{Min: cells[0], Max: cells[0]}
	sum := 0
	for _, v := range cells {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		if v != 0 {
			s.Nonzero++
		}
		sum += v
	}
	s.Mean = float64(sum) / float64(len(cells))
	return s
}
