package pad

import (
	"reflect"
	"testing"
)

func TestSequencesRight(t *testing.T) {
	t.Parallel()

	in := [][]int{{1, 2, 3}, {4}, {}}
	got := Sequences(in, 0, 0, false)
	want := [][]int{{1, 2, 3}, {4, 0, 0}, {0, 0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("right pad: got %v want %v", got, want)
	}
}

func TestSequencesLeft(t *testing.T) {
	t.Parallel()

	in := [][]int{{1, 2, 3}, {4}}
	got := Sequences(in, 9, 0, true)
	want := [][]int{{1, 2, 3}, {9, 9, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("left pad: got %v want %v", got, want)
	}
}

func TestSequencesExplicitWidth(t *testing.T) {
	t.Parallel()

	in := [][]string{{"a"}, {"b", "c"}}
	got := Sequences(in, "<pad>", 4, false)
	want := [][]string{
		{"a", "<pad>", "<pad>", "<pad>"},
		{"b", "c", "<pad>", "<pad>"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("explicit width: got %v want %v", got, want)
	}
}

func TestSequencesNeverTruncates(t *testing.T) {
	t.Parallel()

	in := [][]int{{1, 2, 3, 4, 5}, {6}}
	got := Sequences(in, 0, 3, false)
	want := [][]int{{1, 2, 3, 4, 5}, {6, 0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("over-width row: got %v want %v", got, want)
	}
}

func TestSequencesDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	in := [][]int{{1, 2, 3}}
	got := Sequences(in, 0, 3, false)
	got[0][0] = 99
	if in[0][0] != 1 {
		t.Fatalf("input mutated: %v", in[0])
	}
}

func TestSequencesEmptyBatch(t *testing.T) {
	t.Parallel()

	got := Sequences([][]int{}, 0, 0, false)
	if len(got) != 0 {
		t.Fatalf("empty batch: got %v", got)
	}
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	if got := MaxLen([][]int{{1}, {1, 2, 3}, {}}); got != 3 {
		t.Fatalf("MaxLen: got %d want 3", got)
	}
	if got := MaxLen([][]int(nil)); got != 0 {
		t.Fatalf("MaxLen(nil): got %d want 0", got)
	}
}
