package gol

// Partition is the half-open row range [Start, End) evaluated by one worker
type Partition struct {
	Start int
	End   int
}

// Len returns the number of rows in the partition.
func (p Partition) Len() int {
	return p.End - p.Start
}

// ComputePartitions splits size rows into threads contiguous ranges. Every range
// has size/threads rows except the last, which also takes the size%threads
// leftover rows. Callers must ensure 1 <= threads <= size.
func ComputePartitions(size, threads int) []Partition {
	rows := size / threads
	remainder := size % threads
	partitions := make([]Partition, threads)
	for i := 0; i != threads; i++ {
		partitions[i] = Partition{Start: i * rows, End: (i + 1) * rows}
	}
	partitions[threads-1].End += remainder
	return partitions
}
