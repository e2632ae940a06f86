// Package address converts Base58Check and Bech32 segwit addresses into
// locking scripts and back.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/internal/script"
)

// Decoder turns an address into the locking script it pays to.
type Decoder interface {
	// Decode returns the address version (Base58Check version byte or
	// witness version) and the decoded script.
	Decode(address string) (byte, *script.LockingScript, error)
}

// Encoder turns a public key, redeem script or hash into an address.
type Encoder interface {
	// Encode hashes source (a public key or a redeem script, depending on
	// kind) and returns the address with its locking script.
	Encode(source []byte, kind script.Kind) (string, *script.LockingScript, error)

	// EncodeHash is Encode for callers that already hold the hash.
	EncodeHash(keyHash []byte, kind script.Kind) (string, *script.LockingScript, error)
}

// Codec is a Decoder and Encoder for one address format.
type Codec interface {
	Decoder
	Encoder

	// Format names the address format.
	Format() chain.AddressFormat

	// Supports reports whether the codec can encode kind.
	Supports(kind script.Kind) bool
}

// NewCodec builds the codec for format on the given chain.
func NewCodec(params *chain.Params, format chain.AddressFormat) (Codec, error) {
	switch format {
	case chain.FormatBase58Check:
		return NewBase58Check(params), nil
	case chain.FormatSegWit:
		return NewSegWit(params)
	default:
		return nil, fmt.Errorf("unknown address format %q", format)
	}
}

// NewCodecs builds the codecs for formats, in order. With no formats the
// chain's own AddressFormats are used.
func NewCodecs(params *chain.Params, formats ...chain.AddressFormat) ([]Codec, error) {
	if len(formats) == 0 {
		formats = params.AddressFormats
	}
	codecs := make([]Codec, 0, len(formats))
	for _, format := range formats {
		codec, err := NewCodec(params, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", params, err)
		}
		codecs = append(codecs, codec)
	}
	return codecs, nil
}

// PayToPubKey returns the P2PK locking script for pubKey. P2PK has no
// address form; KeyHash holds the public key itself.
func PayToPubKey(pubKey []byte) (*script.LockingScript, error) {
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	key := clone(pubKey)
	return script.NewLockingScript(key, script.Type(script.P2PK), script.FromPublicKey(key)), nil
}

// parsePubKey validates a serialized secp256k1 public key.
func parsePubKey(pubKey []byte) (*btcec.PublicKey, error) {
	key, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return key, nil
}

func checkHashLength(keyHash []byte, kind script.Kind) error {
	if want := kind.HashSize(); len(keyHash) != want {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidKeyHash, kind, want, len(keyHash))
	}
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
