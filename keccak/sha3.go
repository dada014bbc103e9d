package keccak

// The four standard SHA-3 instances, each a fixed-output-length sponge
// with rate = 200 - 2*securityBytes and the 01 domain suffix.

func NewSha3_224() *Sponge { return NewSponge(144, sha3Suffix) }
func NewSha3_256() *Sponge { return NewSponge(136, sha3Suffix) }
func NewSha3_384() *Sponge { return NewSponge(104, sha3Suffix) }
func NewSha3_512() *Sponge { return NewSponge(72, sha3Suffix) }

// Sha3_224 hashes data and returns a 28-byte digest.
func Sha3_224(data []byte) [28]byte {
	var out [28]byte
	copy(out[:], NewSha3_224().Sum(data, 28))
	return out
}

// Sha3_256 hashes data and returns a 32-byte digest.
func Sha3_256(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], NewSha3_256().Sum(data, 32))
	return out
}

// Sha3_384 hashes data and returns a 48-byte digest.
func Sha3_384(data []byte) [48]byte {
	var out [48]byte
	copy(out[:], NewSha3_384().Sum(data, 48))
	return out
}

// Sha3_512 hashes data and returns a 64-byte digest.
func Sha3_512(data []byte) [64]byte {
	var out [64]byte
	copy(out[:], NewSha3_512().Sum(data, 64))
	return out
}
