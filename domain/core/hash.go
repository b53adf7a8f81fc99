package core

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"unicode/utf8"
)

// SeedHexPrefixLen is the number of leading hex digits of the digest
// that are parsed into the integer seed. 15 hex digits is a 60-bit
// budget, so the parsed seed always fits a non-negative int64.
//
// This width is the cross-platform contract of the system: hosts with
// a different safe integer width use a different prefix, so seeds
// derived from the same string on different platforms are expected to
// diverge. That divergence is documented and intentional.
const SeedHexPrefixLen = 15

// Digest represents the full hex digest of an input string.
// MD5 is used for its speed and uniform bit distribution, not for
// security; nothing here is a cryptographic guarantee.
type Digest string

// NewDigest hashes data and returns the 32-character hex digest.
func NewDigest(data []byte) Digest {
	sum := md5.Sum(data)
	return Digest(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (d Digest) String() string {
	return string(d)
}

// IsEmpty checks if the digest is empty
func (d Digest) IsEmpty() bool {
	return d == ""
}

// Seed parses the digest prefix as a base-16 integer.
func (d Digest) Seed() int64 {
	seed, err := strconv.ParseInt(string(d)[:SeedHexPrefixLen], 16, 64)
	if err != nil {
		// A hex digest prefix of SeedHexPrefixLen digits always parses.
		panic("core: malformed digest " + string(d))
	}
	return seed
}

// DeriveSeed maps a non-empty textual string to a deterministic
// non-negative seed and the full digest it was taken from. Pure
// function of its input: identical bytes always yield the same seed.
func DeriveSeed(input string) (int64, Digest, error) {
	if input == "" {
		return 0, "", ErrEmptyInput
	}
	if !utf8.ValidString(input) {
		return 0, "", ErrTypeMismatch
	}
	digest := NewDigest([]byte(input))
	return digest.Seed(), digest, nil
}
