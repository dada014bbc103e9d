package keccak

import "fmt"

// rate and domain-separation parameters for each sponge flavor this
// package exposes, grounded on original_source/shake128/src/lib.rs:
// SHAKE uses the 4-bit suffix 1111, SHA3 uses the 2-bit suffix 01,
// both padded out to a full multi-rate pad10*1 byte.
const (
	shakeSuffix byte = 0x1f // 1111 || pad10*1 first bit, LSB-first packing
	sha3Suffix  byte = 0x06 // 01 || pad10*1 first bit, LSB-first packing
)

// Sponge implements the absorb/pad/permute/squeeze construction over a
// Keccak-f[1600] State for a fixed rate (in bytes) and domain
// separation suffix byte.
type Sponge struct {
	state    State
	rate     int
	suffix   byte
	buf      []byte // pending input, shorter than rate
	squeezed []byte // pending output not yet returned
	absorbed bool
}

// NewSponge returns a Sponge with the given rate in bytes (168 for
// SHAKE128, 136 for SHAKE256 and SHA3-256; see shake.go/sha3.go for
// the concrete constructors) and domain separation suffix.
func NewSponge(rateBytes int, suffix byte) *Sponge {
	return &Sponge{rate: rateBytes, suffix: suffix}
}

// Write absorbs more input. It is an error to call Write after the
// sponge has started squeezing output.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.absorbed {
		return 0, fmt.Errorf("keccak: write after squeeze has begun")
	}
	s.buf = append(s.buf, p...)
	for len(s.buf) >= s.rate {
		s.state.XORBytes(s.buf[:s.rate])
		s.state.Permute()
		s.buf = s.buf[s.rate:]
	}
	return len(p), nil
}

// finalize pads the remaining input block with the domain separation
// suffix and the pad10*1 rule, then absorbs it.
func (s *Sponge) finalize() {
	block := make([]byte, s.rate)
	copy(block, s.buf)
	block[len(s.buf)] ^= s.suffix
	block[s.rate-1] ^= 0x80
	s.state.XORBytes(block)
	s.state.Permute()
	s.buf = nil
	s.absorbed = true
}

// Read squeezes output, permuting the state for more output blocks as
// needed. The first call pads and absorbs any pending input.
func (s *Sponge) Read(p []byte) (int, error) {
	if !s.absorbed {
		s.finalize()
		s.squeezed = s.state.Bytes(s.rate)
	}
	n := 0
	for n < len(p) {
		if len(s.squeezed) == 0 {
			s.state.Permute()
			s.squeezed = s.state.Bytes(s.rate)
		}
		k := copy(p[n:], s.squeezed)
		s.squeezed = s.squeezed[k:]
		n += k
	}
	return n, nil
}

// Sum absorbs p, then squeezes outLen bytes and returns them; it does
// not mutate the sponge's persistent state beyond what Write/Read
// would.
func (s *Sponge) Sum(p []byte, outLen int) []byte {
	if len(p) > 0 {
		_, _ = s.Write(p)
	}
	out := make([]byte, outLen)
	_, _ = s.Read(out)
	return out
}
