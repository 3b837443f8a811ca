// Package chunk splits ordered candidate lists into fixed-size slices so that
// wide and tall report tables stay printable.
package chunk

// Chunk is a contiguous slice of the input plus its position within the full
// partition. Index is 1-based; Total is the number of chunks produced.
type Chunk[T any] struct {
	Items []T
	Index int
	Total int
}

// First reports whether this is the first chunk of the partition.
func (c Chunk[T]) First() bool {
	return c.Index == 1
}

// Last reports whether this is the final chunk of the partition.
func (c Chunk[T]) Last() bool {
	return c.Index == c.Total
}

// Split partitions items into chunks of at most maxPerChunk elements,
// preserving order. Every chunk except possibly the last is full, and no chunk
// is empty. Empty input (or a non-positive chunk size) produces no chunks;
// callers must then skip rendering entirely rather than draw an empty table.
func Split[T any](items []T, maxPerChunk int) []Chunk[T] {
	if len(items) == 0 || maxPerChunk <= 0 {
		return nil
	}

	total := (len(items) + maxPerChunk - 1) / maxPerChunk
	chunks := make([]Chunk[T], 0, total)
	for start := 0; start < len(items); start += maxPerChunk {
		end := start + maxPerChunk
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, Chunk[T]{
			Items: items[start:end],
			Index: len(chunks) + 1,
			Total: total,
		})
	}
	return chunks
}
