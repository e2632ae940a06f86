package address

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/internal/script"
)

const (
	checksumSize = 4

	// base58CheckSize is version(1) || hash160(20) || checksum(4).
	base58CheckSize = 1 + script.Hash160Size + checksumSize
)

// Base58Check encodes and decodes legacy P2PKH/P2SH addresses.
type Base58Check struct {
	pubKeyHashID byte
	scriptHashID byte
}

// NewBase58Check returns a codec for the chain's legacy version bytes.
func NewBase58Check(params *chain.Params) *Base58Check {
	return &Base58Check{
		pubKeyHashID: params.PubKeyHashAddrID,
		scriptHashID: params.ScriptHashAddrID,
	}
}

// Format implements Codec.
func (c *Base58Check) Format() chain.AddressFormat {
	return chain.FormatBase58Check
}

// Supports implements Codec.
func (c *Base58Check) Supports(kind script.Kind) bool {
	return kind == script.P2PKH || kind == script.P2SH
}

// Decode verifies the checksum and version byte of address and returns the
// P2PKH or P2SH script it pays to.
func (c *Base58Check) Decode(address string) (byte, *script.LockingScript, error) {
	decoded := base58.Decode(address)
	if len(decoded) != base58CheckSize {
		return 0, nil, fmt.Errorf("%w: decoded length %d, want %d", ErrWrongAddress, len(decoded), base58CheckSize)
	}

	payload := decoded[:base58CheckSize-checksumSize]
	version := payload[0]
	keyHash := clone(payload[1:])

	if !bytes.Equal(checksum(payload), decoded[base58CheckSize-checksumSize:]) {
		return 0, nil, ErrWrongChecksum
	}

	var kind script.Kind
	switch version {
	case c.pubKeyHashID:
		kind = script.P2PKH
	case c.scriptHashID:
		kind = script.P2SH
	default:
		return 0, nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedVersion, version)
	}

	return version, script.NewLockingScript(keyHash, script.Type(kind), script.NotSpendable()), nil
}

// Encode hashes source and returns its legacy address. For P2PKH source is
// a public key, hashed in the serialization given; for P2SH it is the
// redeem script.
func (c *Base58Check) Encode(source []byte, kind script.Kind) (string, *script.LockingScript, error) {
	var (
		scriptType script.ScriptType
		spendable  script.Spendable
	)
	source = clone(source)

	switch kind {
	case script.P2PKH:
		if _, err := parsePubKey(source); err != nil {
			return "", nil, err
		}
		scriptType = script.Type(script.P2PKH)
		spendable = script.FromPublicKey(source)
	case script.P2SH:
		scriptType = script.ScriptHashType(source)
		spendable = script.FromRedeemScript(source)
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedScriptType, kind)
	}

	keyHash := script.Hash160(source)
	return c.encode(keyHash, scriptType, spendable)
}

// EncodeHash returns the legacy address for a 20-byte hash.
func (c *Base58Check) EncodeHash(keyHash []byte, kind script.Kind) (string, *script.LockingScript, error) {
	if !c.Supports(kind) {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedScriptType, kind)
	}
	if err := checkHashLength(keyHash, kind); err != nil {
		return "", nil, err
	}
	return c.encode(clone(keyHash), script.Type(kind), script.NotSpendable())
}

func (c *Base58Check) encode(keyHash []byte, scriptType script.ScriptType, spendable script.Spendable) (string, *script.LockingScript, error) {
	version := c.pubKeyHashID
	if scriptType.Kind == script.P2SH {
		version = c.scriptHashID
	}

	raw := make([]byte, 0, base58CheckSize)
	raw = append(raw, version)
	raw = append(raw, keyHash...)
	raw = append(raw, checksum(raw)...)

	return base58.Encode(raw), script.NewLockingScript(keyHash, scriptType, spendable), nil
}

// checksum returns the first four bytes of sha256(sha256(payload)).
func checksum(payload []byte) []byte {
	return script.DoubleSHA256(payload)[:checksumSize]
}
