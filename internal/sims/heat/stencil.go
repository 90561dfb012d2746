package heat

// StepInterior writes the Jacobi update of rows [rowFrom, rowTo) into dst,
// reading neighbors from src. Only interior cells are touched; rows and
// columns on the edge keep whatever dst already holds.
func StepInterior(src, dst []float64, n, rowFrom, rowTo int) {
	if rowFrom < 1 {
		rowFrom = 1
	}
	if rowTo > n-1 {
		rowTo = n - 1
	}
	for i := rowFrom; i < rowTo; i++ {
		base := i * n
		up := base - n
		down := base + n
		for j := 1; j < n-1; j++ {
			dst[base+j] = 0.25 * (src[up+j] + src[down+j] + src[base+j-1] + src[base+j+1])
		}
	}
}

// rowBlock is a half-open range of interior rows owned by one worker.
type rowBlock struct{ from, to int }

// partitionRows splits the interior rows [1, n-1) into at most workers
// contiguous, non-empty, disjoint blocks that cover every interior row.
func partitionRows(n, workers int) []rowBlock {
	if workers < 1 {
		workers = 1
	}
	start, end := 1, n-1
	total := end - start
	if total <= 0 {
		return nil
	}
	if workers > total {
		workers = total
	}
	chunk := total / workers
	extra := total % workers
	blocks := make([]rowBlock, 0, workers)
	from := start
	for w := 0; w < workers; w++ {
		size := chunk
		if w < extra {
			size++
		}
		blocks = append(blocks, rowBlock{from: from, to: from + size})
		from += size
	}
	return blocks
}
