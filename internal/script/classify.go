package script

import (
	"errors"
	"fmt"
)

// ErrNonStandardScript is returned by Classify for scripts that match none
// of the standard output templates.
var ErrNonStandardScript = errors.New("non-standard script")

// Classify matches data against the standard output templates and returns
// the LockingScript it encodes. Data is copied; the result does not alias it.
func Classify(data []byte) (*LockingScript, error) {
	var (
		kind Kind
		hash []byte
	)

	switch {
	case isPubKeyHash(data):
		// OP_DUP OP_HASH160 <20> OP_EQUALVERIFY OP_CHECKSIG
		kind, hash = P2PKH, data[3:23]
	case isScriptHash(data):
		// OP_HASH160 <20> OP_EQUAL
		kind, hash = P2SH, data[2:22]
	case isWitness(data, OP_0, Hash160Size):
		kind, hash = P2WPKH, data[2:]
	case isWitness(data, OP_0, HashSize):
		kind, hash = P2WSH, data[2:]
	case isWitness(data, OP_1, HashSize):
		kind, hash = P2TR, data[2:]
	case isPubKey(data):
		kind, hash = P2PK, data[1:len(data)-1]
	default:
		return nil, fmt.Errorf("%w: %x", ErrNonStandardScript, data)
	}

	keyHash := make([]byte, len(hash))
	copy(keyHash, hash)
	return NewLockingScript(keyHash, Type(kind), NotSpendable()), nil
}

func isPubKeyHash(data []byte) bool {
	return len(data) == 25 &&
		data[0] == OP_DUP &&
		data[1] == OP_HASH160 &&
		data[2] == OP_DATA_20 &&
		data[23] == OP_EQUALVERIFY &&
		data[24] == OP_CHECKSIG
}

func isScriptHash(data []byte) bool {
	return len(data) == 23 &&
		data[0] == OP_HASH160 &&
		data[1] == OP_DATA_20 &&
		data[22] == OP_EQUAL
}

func isWitness(data []byte, version byte, size int) bool {
	return len(data) == size+2 &&
		data[0] == version &&
		int(data[1]) == size
}

// Valid pubkeys are either 33 or 65 bytes.
func isPubKey(data []byte) bool {
	switch len(data) {
	case 35:
		return data[0] == OP_DATA_33 && data[34] == OP_CHECKSIG
	case 67:
		return data[0] == OP_DATA_65 && data[66] == OP_CHECKSIG
	default:
		return false
	}
}
