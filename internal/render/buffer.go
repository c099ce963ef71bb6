package render

// buffer is an append-only output accumulator with the trailing-edge
// inspection the block layout rules need. Block separation decisions look
// at what was last written, so bytes.Buffer alone is not enough.
type buffer struct {
	b []byte
}

func (w *buffer) WriteString(s string) {
	w.b = append(w.b, s...)
}

func (w *buffer) WriteByte(c byte) {
	w.b = append(w.b, c)
}

func (w *buffer) WriteRune(r rune) {
	w.b = append(w.b, string(r)...)
}

func (w *buffer) Len() int {
	return len(w.b)
}

func (w *buffer) String() string {
	return string(w.b)
}

// Since returns everything written after position start.
func (w *buffer) Since(start int) string {
	if start < 0 || start > len(w.b) {
		return ""
	}
	return string(w.b[start:])
}

// Truncate discards everything written after position start.
func (w *buffer) Truncate(start int) {
	if start >= 0 && start <= len(w.b) {
		w.b = w.b[:start]
	}
}

func (w *buffer) EndsWith(s string) bool {
	if len(s) > len(w.b) {
		return false
	}
	return string(w.b[len(w.b)-len(s):]) == s
}

func (w *buffer) LastByte() (byte, bool) {
	if len(w.b) == 0 {
		return 0, false
	}
	return w.b[len(w.b)-1], true
}

// TrimTrailingSpaces removes trailing spaces and tabs, leaving newlines.
func (w *buffer) TrimTrailingSpaces() {
	for len(w.b) > 0 {
		c := w.b[len(w.b)-1]
		if c != ' ' && c != '\t' {
			break
		}
		w.b = w.b[:len(w.b)-1]
	}
}

// EndsWithAny reports whether the buffer ends with one of the suffixes.
func (w *buffer) EndsWithAny(suffixes ...string) bool {
	for _, s := range suffixes {
		if w.EndsWith(s) {
			return true
		}
	}
	return false
}

// ensureBlockSep makes the buffer end with a blank line so the next block
// element starts cleanly. A no-op on an empty buffer.
func (w *buffer) ensureBlockSep() {
	if w.Len() == 0 {
		return
	}
	w.TrimTrailingSpaces()
	if w.Len() == 0 || w.EndsWith("\n\n") {
		return
	}
	if w.EndsWith("\n") {
		w.WriteByte('\n')
		return
	}
	w.WriteString("\n\n")
}

// endsWithWhitespace reports whether the buffer ends with a space, tab or
// newline.
func (w *buffer) endsWithWhitespace() bool {
	c, ok := w.LastByte()
	if !ok {
		return false
	}
	return c == ' ' || c == '\t' || c == '\n'
}
