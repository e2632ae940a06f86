package script

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the hash160 construction
)

// Hash sizes in bytes.
const (
	Hash160Size = ripemd160.Size
	HashSize    = chainhash.HashSize
)

// SHA256 returns sha256(b).
func SHA256(b []byte) []byte {
	return chainhash.HashB(b)
}

// DoubleSHA256 returns sha256(sha256(b)).
func DoubleSHA256(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

// Hash160 returns ripemd160(sha256(b)).
func Hash160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(chainhash.HashB(b))
	return h.Sum(nil)
}
