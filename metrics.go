package region

// Stats is a snapshot of a region's usage.
type Stats struct {
	Allocated   int     // Bytes handed out, alignment padding included
	Remaining   int     // Headroom before exhaustion
	Capacity    int     // Reserved size in bytes
	Alignment   int     // Alignment of every returned address
	Utilization float64 // Allocated / Capacity (0.0-1.0)
	Released    bool
}

// Utilization returns the ratio of allocated bytes to capacity (0.0 to 1.0).
func (r *Region) Utilization() float64 {
	return float64(r.AllocatedBytes()) / float64(r.capacity)
}

// Stats returns a snapshot of region statistics.
func (r *Region) Stats() Stats {
	return Stats{
		Allocated:   r.AllocatedBytes(),
		Remaining:   r.Remaining(),
		Capacity:    r.Capacity(),
		Alignment:   r.Alignment(),
		Utilization: r.Utilization(),
		Released:    r.released,
	}
}
