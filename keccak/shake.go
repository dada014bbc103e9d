package keccak

// NewShake128 returns a SHAKE128 sponge (168-byte rate, 128-bit
// security strength), ready to absorb input via Write before any Read.
func NewShake128() *Sponge {
	return NewSponge(168, shakeSuffix)
}

// NewShake256 returns a SHAKE256 sponge (136-byte rate, 256-bit
// security strength).
func NewShake256() *Sponge {
	return NewSponge(136, shakeSuffix)
}

// Shake128 absorbs data and squeezes outLen bytes in one call, the
// common case when no streaming is needed.
func Shake128(data []byte, outLen int) []byte {
	return NewShake128().Sum(data, outLen)
}

// Shake256 absorbs data and squeezes outLen bytes in one call.
func Shake256(data []byte, outLen int) []byte {
	return NewShake256().Sum(data, outLen)
}
