package lineio

// Predicate reports whether a line should be yielded.
type Predicate func(line string) bool

// FilteredReader wraps a Reader with a Predicate, yielding only lines
// that pass while preserving each line's original (not re-numbered) line
// number.
type FilteredReader struct {
	r    *Reader
	pass Predicate
}

// NewFiltered returns a FilteredReader over r's output.
func NewFiltered(r *Reader, pass Predicate) *FilteredReader {
	return &FilteredReader{r: r, pass: pass}
}

// Next returns the next line for which pass returns true, or false once
// the underlying Reader is exhausted.
func (f *FilteredReader) Next() (Line, bool, error) {
	for {
		line, ok, err := f.r.Next()
		if err != nil {
			return Line{}, false, err
		}
		if !ok {
			return Line{}, false, nil
		}
		if f.pass == nil || f.pass(line.Text) {
			return line, true, nil
		}
	}
}
