package lineio

import (
	"strings"
	"testing"
)

func readAll(t *testing.T, r *Reader) []Line {
	t.Helper()
	var out []Line
	for {
		line, ok, err := r.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		out = append(out, line)
	}
	return out
}

func TestReaderSplitsLines(t *testing.T) {
	r := New(strings.NewReader("one\ntwo\nthree"), DefaultConfig())
	lines := readAll(t, r)
	want := []Line{{"one", 1}, {"two", 2}, {"three", 3}}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, l := range lines {
		if l != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, l, want[i])
		}
	}
}

func TestReaderTrailingNewline(t *testing.T) {
	r := New(strings.NewReader("a\nb\n"), DefaultConfig())
	lines := readAll(t, r)
	want := []Line{{"a", 1}, {"b", 2}}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
}

func TestReaderCarriesOverAcrossChunkBoundary(t *testing.T) {
	// Force a chunk boundary in the middle of a line by using a tiny
	// chunk size, and verify no line is split across the boundary.
	input := "short\n" + strings.Repeat("x", 200) + "\nend"
	r := New(strings.NewReader(input), Config{ChunkSize: 16})
	lines := readAll(t, r)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	if lines[0].Text != "short" || lines[0].Number != 1 {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Text != strings.Repeat("x", 200) || lines[1].Number != 2 {
		t.Errorf("line 1 has wrong text or number: %+v", lines[1])
	}
	if lines[2].Text != "end" || lines[2].Number != 3 {
		t.Errorf("line 2 = %+v", lines[2])
	}
}

func TestReaderEmptyInput(t *testing.T) {
	r := New(strings.NewReader(""), DefaultConfig())
	lines := readAll(t, r)
	if len(lines) != 0 {
		t.Fatalf("got %d lines for empty input, want 0", len(lines))
	}
}

func TestFilteredReaderPreservesLineNumbers(t *testing.T) {
	r := New(strings.NewReader("skip\nkeep\nskip\nkeep"), DefaultConfig())
	f := NewFiltered(r, func(line string) bool { return line == "keep" })

	var got []Line
	for {
		line, ok, err := f.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, line)
	}

	want := []Line{{"keep", 2}, {"keep", 4}}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(got), len(want), got)
	}
	for i, l := range got {
		if l != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, l, want[i])
		}
	}
}
