package batch

// Partition splits runs into consecutive batch sizes of at most workers,
// remainder last. A zero-sized remainder is not emitted and workers < 1 is
// treated as 1.
//
//	Partition(10, 4) == [4 4 2]
//	Partition(8, 4)  == [4 4]
//	Partition(0, 4)  == []
func Partition(runs, workers int) []int {
	if workers < 1 {
		workers = 1
	}
	if runs <= 0 {
		return []int{}
	}

	sizes := make([]int, 0, (runs+workers-1)/workers)
	for left := runs; left > 0; left -= workers {
		sizes = append(sizes, min(left, workers))
	}
	return sizes
}
