package aead

import "encoding/binary"

// concatLen streams aad‖pad16(aad)‖input‖pad16(input)‖LE64(len aad)‖
// LE64(len input) — the exact byte sequence RFC 8439 authenticates —
// without ever buffering aad or input in memory.
type concatLen struct {
	aad   *pad16
	input *pad16
	lens  [16]byte
	pos   int
	lensReady bool
}

func newConcatLen(aad, input *pad16) *concatLen {
	return &concatLen{aad: aad, input: input, pos: -1}
}

func (c *concatLen) Read(buf []byte) (int, error) {
	n := 0
	var err error
	if !c.aad.finished() {
		n, err = c.aad.Read(buf)
		if err != nil {
			return n, err
		}
	}
	if n == 0 && !c.input.finished() {
		n, err = c.input.Read(buf)
		if err != nil {
			return n, err
		}
	}
	if n == 0 {
		if !c.lensReady {
			aadLen, _ := c.aad.lenAtEOF()
			inputLen, _ := c.input.lenAtEOF()
			binary.LittleEndian.PutUint64(c.lens[0:8], uint64(aadLen))
			binary.LittleEndian.PutUint64(c.lens[8:16], uint64(inputLen))
			c.pos = 0
			c.lensReady = true
		}
		if c.pos >= 16 {
			return 0, nil
		}
		n = copy(buf, c.lens[c.pos:])
		c.pos += n
	}
	return n, nil
}
