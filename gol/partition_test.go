package gol

import "testing"

func TestComputePartitionsCoverBoard(t *testing.T) {
	for size := 1; size <= 40; size++ {
		for threads := 1; threads <= size; threads++ {
			partitions := ComputePartitions(size, threads)
			if len(partitions) != threads {
				t.Fatalf("ComputePartitions(%d, %d) returned %d partitions", size, threads, len(partitions))
			}
			next := 0
			for i, partition := range partitions {
				if partition.Start != next {
					t.Fatalf("ComputePartitions(%d, %d)[%d] starts at %d, want %d", size, threads, i, partition.Start, next)
				}
				want := size / threads
				if i == threads-1 {
					want += size % threads
				}
				if partition.Len() != want || partition.Len() == 0 {
					t.Fatalf("ComputePartitions(%d, %d)[%d] has %d rows, want %d", size, threads, i, partition.Len(), want)
				}
				next = partition.End
			}
			if next != size {
				t.Fatalf("ComputePartitions(%d, %d) ends at %d, want %d", size, threads, next, size)
			}
		}
	}
}

func TestComputePartitionsRemainderToLast(t *testing.T) {
	got := ComputePartitions(10, 4)
	want := []Partition{{0, 2}, {2, 4}, {4, 6}, {6, 10}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("partition %d = %v, want %v", i, got[i], want[i])
		}
	}
}
