package kem

import "fmt"

// SerializedSecretKeyLen is the fixed on-disk length of a serialized
// SecretKey: sk ‖ s ‖ pk ‖ pkh.
const SerializedSecretKeyLen = 32 + 16 + 32 + 16

// Serialize encodes secret as 96 raw bytes: sk ‖ s ‖ pk ‖ pkh.
func (secret SecretKey) Serialize() [SerializedSecretKeyLen]byte {
	var out [SerializedSecretKeyLen]byte
	copy(out[0:32], secret.Sk[:])
	copy(out[32:48], secret.S[:])
	copy(out[48:80], secret.Pk[:])
	copy(out[80:96], secret.Pkh[:])
	return out
}

// DeserializeSecretKey decodes a 96-byte secret key, rejecting any
// input whose length does not exactly match the fixed layout.
func DeserializeSecretKey(data []byte) (SecretKey, error) {
	if len(data) != SerializedSecretKeyLen {
		return SecretKey{}, fmt.Errorf("kem: secret key is %d bytes, want %d", len(data), SerializedSecretKeyLen)
	}
	var secret SecretKey
	copy(secret.Sk[:], data[0:32])
	copy(secret.S[:], data[32:48])
	copy(secret.Pk[:], data[48:80])
	copy(secret.Pkh[:], data[80:96])
	return secret, nil
}
