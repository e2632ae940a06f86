package script

import "fmt"

// MaxCSVBlocks is the largest relative block timelock BIP-68 can express.
const MaxCSVBlocks = 0xffff

// HashTimeLock builds a hash time-locked redeem script, usable as the
// source of a P2WSH or P2SH address:
//
//	OP_IF
//	    OP_SHA256 <secret_hash> OP_EQUALVERIFY
//	    <receiver_pubkey> OP_CHECKSIG
//	OP_ELSE
//	    <timeout_blocks> OP_CHECKSEQUENCEVERIFY OP_DROP
//	    <sender_pubkey> OP_CHECKSIG
//	OP_ENDIF
//
// The receiver claims with the secret; the sender refunds once timeoutBlocks
// have passed since the output confirmed.
func HashTimeLock(secretHash, receiverPubKey, senderPubKey []byte, timeoutBlocks uint32) ([]byte, error) {
	if len(secretHash) != HashSize {
		return nil, fmt.Errorf("secret hash must be %d bytes, got %d", HashSize, len(secretHash))
	}
	if len(receiverPubKey) != 33 {
		return nil, fmt.Errorf("receiver pubkey must be 33 bytes (compressed), got %d", len(receiverPubKey))
	}
	if len(senderPubKey) != 33 {
		return nil, fmt.Errorf("sender pubkey must be 33 bytes (compressed), got %d", len(senderPubKey))
	}
	if timeoutBlocks == 0 {
		return nil, fmt.Errorf("timeout blocks must be greater than 0")
	}
	if timeoutBlocks > MaxCSVBlocks {
		return nil, fmt.Errorf("timeout blocks exceeds maximum CSV value (%d)", MaxCSVBlocks)
	}

	out := []byte{OP_IF, OP_SHA256}
	out = append(out, PushData(secretHash)...)
	out = append(out, OP_EQUALVERIFY)
	out = append(out, PushData(receiverPubKey)...)
	out = append(out, OP_CHECKSIG, OP_ELSE)
	out = append(out, pushInt(timeoutBlocks)...)
	out = append(out, OP_CHECKSEQUENCEVERIFY, OP_DROP)
	out = append(out, PushData(senderPubKey)...)
	return append(out, OP_CHECKSIG, OP_ENDIF), nil
}

// pushInt pushes a positive integer the way consensus minimal encoding
// requires: OP_1..OP_16 for small values, otherwise a little-endian script
// number with a zero pad byte when the top bit is set.
func pushInt(v uint32) []byte {
	if v <= 16 {
		return PushSmallInt(byte(v))
	}
	var num []byte
	for ; v > 0; v >>= 8 {
		num = append(num, byte(v))
	}
	if num[len(num)-1]&0x80 != 0 {
		num = append(num, 0x00)
	}
	return PushData(num)
}
