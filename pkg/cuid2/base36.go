package cuid2

import "math/big"

// encodeBase36 interprets data as a big-endian unsigned integer of arbitrary
// width and encodes it in base 36 using digits 0-9a-z. Empty and all-zero
// inputs both encode as "0". Consistent with big-integer semantics, leading
// zero bytes do not produce leading zero digits and the output length is not
// fixed; truncation is the caller's concern.
func encodeBase36(data []byte) string {
	if len(data) == 0 {
		return "0"
	}
	return new(big.Int).SetBytes(data).Text(36)
}
