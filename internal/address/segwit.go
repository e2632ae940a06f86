package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/internal/script"
)

// Witness program size limits from BIP-141.
const (
	minWitnessProgram = 2
	maxWitnessProgram = 40
	maxWitnessVersion = 16
)

// SegWit encodes and decodes native segwit v0 addresses (P2WPKH and P2WSH).
type SegWit struct {
	hrp string
}

// NewSegWit returns a codec for the chain's bech32 prefix.
func NewSegWit(params *chain.Params) (*SegWit, error) {
	if !params.SupportsSegWit || params.Bech32HRP == "" {
		return nil, fmt.Errorf("%s has no segwit support", params)
	}
	return &SegWit{hrp: params.Bech32HRP}, nil
}

// Format implements Codec.
func (c *SegWit) Format() chain.AddressFormat {
	return chain.FormatSegWit
}

// Supports implements Codec.
func (c *SegWit) Supports(kind script.Kind) bool {
	return kind == script.P2WPKH || kind == script.P2WSH
}

// Prefix returns the human-readable part addresses must carry.
func (c *SegWit) Prefix() string {
	return c.hrp
}

// Decode validates the bech32 string, its prefix and the witness
// version/program pair, and returns the witness version with its script.
func (c *SegWit) Decode(address string) (byte, *script.LockingScript, error) {
	hrp, data, encoding, err := bech32.DecodeGeneric(address)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrWrongAddress, err)
	}
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("%w: empty data part", ErrWrongAddress)
	}

	version := data[0]
	if version > maxWitnessVersion {
		return 0, nil, fmt.Errorf("%w: witness version %d", ErrWrongAddress, version)
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrWrongAddress, err)
	}
	if len(program) < minWitnessProgram || len(program) > maxWitnessProgram {
		return 0, nil, fmt.Errorf("%w: witness program length %d", ErrWrongAddress, len(program))
	}

	// Structural checks come first: a malformed string is a wrong address
	// whatever its prefix.
	if hrp != c.hrp {
		return 0, nil, fmt.Errorf("%w: got %q, want %q", ErrWrongBech32Prefix, hrp, c.hrp)
	}

	// BIP-350: version 0 keeps the original bech32 checksum.
	if version != script.WitnessV0 || encoding != bech32.Version0 {
		return 0, nil, fmt.Errorf("%w: unsupported witness version %d", ErrWrongAddress, version)
	}

	var kind script.Kind
	switch len(program) {
	case script.Hash160Size:
		kind = script.P2WPKH
	case script.HashSize:
		kind = script.P2WSH
	default:
		return 0, nil, fmt.Errorf("%w: witness v0 program length %d", ErrWrongAddress, len(program))
	}

	return version, script.NewLockingScript(program, script.Type(kind), script.NotSpendable()), nil
}

// Encode derives the witness program from source and returns its address.
// For P2WPKH source is a public key, always hashed in compressed form; for
// P2WSH it is the witness script.
func (c *SegWit) Encode(source []byte, kind script.Kind) (string, *script.LockingScript, error) {
	var (
		program    []byte
		scriptType script.ScriptType
		spendable  script.Spendable
	)

	switch kind {
	case script.P2WPKH:
		key, err := parsePubKey(source)
		if err != nil {
			return "", nil, err
		}
		compressed := key.SerializeCompressed()
		program = script.Hash160(compressed)
		scriptType = script.Type(script.P2WPKH)
		spendable = script.FromPublicKey(compressed)
	case script.P2WSH:
		source = clone(source)
		program = script.SHA256(source)
		scriptType = script.WitnessScriptHashType(source)
		spendable = script.FromRedeemScript(source)
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedScriptType, kind)
	}

	return c.encode(program, scriptType, spendable)
}

// EncodeHash returns the address for a 20-byte (P2WPKH) or 32-byte (P2WSH)
// witness program.
func (c *SegWit) EncodeHash(keyHash []byte, kind script.Kind) (string, *script.LockingScript, error) {
	if !c.Supports(kind) {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedScriptType, kind)
	}
	if err := checkHashLength(keyHash, kind); err != nil {
		return "", nil, err
	}
	return c.encode(clone(keyHash), script.Type(kind), script.NotSpendable())
}

func (c *SegWit) encode(program []byte, scriptType script.ScriptType, spendable script.Spendable) (string, *script.LockingScript, error) {
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", nil, fmt.Errorf("failed to convert witness program: %w", err)
	}

	data := make([]byte, 0, 1+len(converted))
	data = append(data, script.WitnessV0)
	data = append(data, converted...)

	addr, err := bech32.Encode(c.hrp, data)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode bech32 address: %w", err)
	}

	return addr, script.NewLockingScript(program, scriptType, spendable), nil
}
