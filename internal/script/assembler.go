package script

import (
	"encoding/binary"
)

// PushData returns data prefixed with the shortest push opcode that fits its
// length. Lengths above 4294967295 cannot be pushed; data is then returned
// unmodified and the result is not a valid script.
func PushData(data []byte) []byte {
	n := len(data)
	switch {
	case n <= maxDirectPush:
		out := make([]byte, 0, 1+n)
		out = append(out, byte(n))
		return append(out, data...)
	case n <= maxPushData1:
		out := make([]byte, 0, 2+n)
		out = append(out, OP_PUSHDATA1, byte(n))
		return append(out, data...)
	case n <= maxPushData2:
		out := make([]byte, 3, 3+n)
		out[0] = OP_PUSHDATA2
		binary.LittleEndian.PutUint16(out[1:], uint16(n))
		return append(out, data...)
	case uint64(n) <= maxPushData4:
		out := make([]byte, 5, 5+n)
		out[0] = OP_PUSHDATA4
		binary.LittleEndian.PutUint32(out[1:], uint32(n))
		return append(out, data...)
	default:
		return data
	}
}

// PushSmallInt returns OP_0 for 0 and OP_1..OP_16 for 1..16. Values above 16
// have no small-int opcode and yield an empty slice.
func PushSmallInt(value byte) []byte {
	switch {
	case value == 0:
		return []byte{OP_0}
	case value <= 16:
		return []byte{smallIntBase + value}
	default:
		return []byte{}
	}
}

// PayToPubKey renders <pubkey> OP_CHECKSIG.
func PayToPubKey(pubKey []byte) []byte {
	out := PushData(pubKey)
	return append(out, OP_CHECKSIG)
}

// PayToPubKeyHash renders OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG.
func PayToPubKeyHash(keyHash []byte) []byte {
	out := []byte{OP_DUP, OP_HASH160}
	out = append(out, PushData(keyHash)...)
	return append(out, OP_EQUALVERIFY, OP_CHECKSIG)
}

// PayToScriptHash renders OP_HASH160 <hash> OP_EQUAL.
func PayToScriptHash(scriptHash []byte) []byte {
	out := []byte{OP_HASH160}
	out = append(out, PushData(scriptHash)...)
	return append(out, OP_EQUAL)
}

// PayToWitness renders <version> <program>.
func PayToWitness(version byte, program []byte) []byte {
	out := PushSmallInt(version)
	return append(out, PushData(program)...)
}

// Render assembles the locking script for kind. keyHash is the public key
// for P2PK, the witness program for the segwit kinds, and the hash160 for the
// legacy kinds. Unknown kinds render nothing.
func Render(kind Kind, keyHash []byte) []byte {
	switch kind {
	case P2PK:
		return PayToPubKey(keyHash)
	case P2PKH:
		return PayToPubKeyHash(keyHash)
	case P2SH:
		return PayToScriptHash(keyHash)
	case P2WPKH, P2WSH:
		return PayToWitness(WitnessV0, keyHash)
	case P2TR:
		return PayToWitness(WitnessV1, keyHash)
	default:
		return nil
	}
}
