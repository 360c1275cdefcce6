// Package pad aligns ragged batches of sequences to a common width before
// they are handed to the model as rectangular tensors.
package pad

// Sequences pads every row of data with padID up to width, on the right by
// default or on the left when onLeft. When width <= 0 the longest row sets
// the width. Rows already at or past the width are copied unchanged, never
// truncated. The result shares no backing arrays with data.
func Sequences[T any](data [][]T, padID T, width int, onLeft bool) [][]T {
	if width <= 0 {
		width = MaxLen(data)
	}
	out := make([][]T, len(data))
	for i, row := range data {
		n := width - len(row)
		if n < 0 {
			n = 0
		}
		padded := make([]T, 0, len(row)+n)
		if onLeft {
			for j := 0; j < n; j++ {
				padded = append(padded, padID)
			}
			padded = append(padded, row...)
		} else {
			padded = append(padded, row...)
			for j := 0; j < n; j++ {
				padded = append(padded, padID)
			}
		}
		out[i] = padded
	}
	return out
}

// MaxLen returns the length of the longest row, 0 for an empty batch.
func MaxLen[T any](data [][]T) int {
	longest := 0
	for _, row := range data {
		if len(row) > longest {
			longest = len(row)
		}
	}
	return longest
}
