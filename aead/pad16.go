package aead

import "io"

// pad16 wraps a Reader so that, once the underlying reader reaches
// EOF, its output is padded with zero bytes up to the next multiple of
// 16 (RFC 8439's pad16). It also records the exact number of
// unpadded bytes it produced, needed later for the length suffix.
type pad16 struct {
	r         io.Reader
	bytesRead int
	fullLen   int
	atEOF     bool
}

func newPad16(r io.Reader) *pad16 {
	return &pad16{r: r}
}

// finished reports whether the reader has reached EOF and all padding
// has already been emitted.
func (p *pad16) finished() bool {
	return p.atEOF && p.bytesRead%16 == 0
}

// lenAtEOF returns the unpadded length and true once EOF has been
// observed, or 0, false beforehand.
func (p *pad16) lenAtEOF() (int, bool) {
	return p.fullLen, p.atEOF
}

func (p *pad16) Read(buf []byte) (int, error) {
	if !p.atEOF {
		n, err := p.r.Read(buf)
		p.bytesRead += n
		if err != nil && err != io.EOF {
			return n, err
		}
		if n > 0 {
			return n, nil
		}
		p.fullLen = p.bytesRead
		p.atEOF = true
	}

	padLeft := (16 - p.bytesRead%16) % 16
	if padLeft == 0 {
		return 0, nil
	}
	if padLeft > len(buf) {
		padLeft = len(buf)
	}
	for i := 0; i < padLeft; i++ {
		buf[i] = 0
	}
	p.bytesRead += padLeft
	return padLeft, nil
}
