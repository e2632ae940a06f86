package script

import "fmt"

// MaxMultiSigKeys is the largest key count expressible with OP_1..OP_16.
const MaxMultiSigKeys = 16

// MultiSig builds the redeem script
// OP_<required> <pubkey1> ... <pubkeyN> OP_<N> OP_CHECKMULTISIG.
// Keys are pushed in the given order.
func MultiSig(required int, pubKeys [][]byte) ([]byte, error) {
	n := len(pubKeys)
	if n == 0 || n > MaxMultiSigKeys {
		return nil, fmt.Errorf("multisig needs 1..%d public keys, got %d", MaxMultiSigKeys, n)
	}
	if required < 1 || required > n {
		return nil, fmt.Errorf("unable to generate multisig script with "+
			"%d required signatures when there are only %d public keys available", required, n)
	}

	out := PushSmallInt(byte(required))
	for i, key := range pubKeys {
		if len(key) != 33 && len(key) != 65 {
			return nil, fmt.Errorf("public key %d has invalid length %d", i, len(key))
		}
		out = append(out, PushData(key)...)
	}
	out = append(out, PushSmallInt(byte(n))...)
	return append(out, OP_CHECKMULTISIG), nil
}
