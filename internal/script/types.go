// Package script defines locking-script types and renders them into canonical
// output script bytes.
package script

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Kind identifies the output script template.
type Kind uint8

const (
	P2PK   Kind = iota + 1 // Pay to public key
	P2PKH                  // Pay to public key hash (legacy 1...)
	P2SH                   // Pay to script hash (3...)
	P2WPKH                 // Pay to witness public key hash (bc1q..., 20 bytes)
	P2WSH                  // Pay to witness script hash (bc1q..., 32 bytes)
	P2TR                   // Taproot (bc1p...)
)

// String returns the lowercase template name.
func (k Kind) String() string {
	switch k {
	case P2PK:
		return "p2pk"
	case P2PKH:
		return "p2pkh"
	case P2SH:
		return "p2sh"
	case P2WPKH:
		return "p2wpkh"
	case P2WSH:
		return "p2wsh"
	case P2TR:
		return "p2tr"
	default:
		return "unknown"
	}
}

// ParseKind parses a template name such as "p2wpkh" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p2pk":
		return P2PK, nil
	case "p2pkh":
		return P2PKH, nil
	case "p2sh":
		return P2SH, nil
	case "p2wpkh":
		return P2WPKH, nil
	case "p2wsh":
		return P2WSH, nil
	case "p2tr":
		return P2TR, nil
	default:
		return 0, fmt.Errorf("unknown script type %q", s)
	}
}

// HashSize returns the expected key hash length for the kind, or 0 when
// the kind does not carry a fixed-size hash (P2PK carries the key itself).
func (k Kind) HashSize() int {
	switch k {
	case P2PKH, P2SH, P2WPKH:
		return Hash160Size
	case P2WSH, P2TR:
		return HashSize
	default:
		return 0
	}
}

// IsWitness reports whether the kind is a native segwit template.
func (k Kind) IsWitness() bool {
	return k == P2WPKH || k == P2WSH || k == P2TR
}

// ScriptType is a Kind plus the redeem script carried by P2SH and P2WSH.
// RedeemScript is kept for spending later and never used to render Data.
type ScriptType struct {
	Kind         Kind
	RedeemScript []byte
}

// Type returns a ScriptType without a redeem script.
func Type(kind Kind) ScriptType {
	return ScriptType{Kind: kind}
}

// ScriptHashType returns a P2SH ScriptType carrying redeemScript.
func ScriptHashType(redeemScript []byte) ScriptType {
	return ScriptType{Kind: P2SH, RedeemScript: redeemScript}
}

// WitnessScriptHashType returns a P2WSH ScriptType carrying redeemScript.
func WitnessScriptHashType(redeemScript []byte) ScriptType {
	return ScriptType{Kind: P2WSH, RedeemScript: redeemScript}
}

// Equal reports whether both the kind and the redeem script match.
func (t ScriptType) Equal(o ScriptType) bool {
	return t.Kind == o.Kind && bytes.Equal(t.RedeemScript, o.RedeemScript)
}

func (t ScriptType) String() string {
	return t.Kind.String()
}

// SpendableKind tells what produced a LockingScript.
type SpendableKind uint8

const (
	// SpendableNone means the script was decoded from an address and no
	// key material is known.
	SpendableNone SpendableKind = iota
	SpendablePublicKey
	SpendableRedeemScript
)

func (k SpendableKind) String() string {
	switch k {
	case SpendablePublicKey:
		return "public_key"
	case SpendableRedeemScript:
		return "redeem_script"
	default:
		return "none"
	}
}

// Spendable describes the material needed to spend an output later.
type Spendable struct {
	Kind SpendableKind
	Data []byte
}

// NotSpendable is the origin of every decoded script.
func NotSpendable() Spendable {
	return Spendable{Kind: SpendableNone}
}

// FromPublicKey tags a script built from a public key.
func FromPublicKey(pubKey []byte) Spendable {
	return Spendable{Kind: SpendablePublicKey, Data: pubKey}
}

// FromRedeemScript tags a script built from a redeem script.
func FromRedeemScript(redeemScript []byte) Spendable {
	return Spendable{Kind: SpendableRedeemScript, Data: redeemScript}
}

// Equal reports whether both kind and data match.
func (s Spendable) Equal(o Spendable) bool {
	return s.Kind == o.Kind && bytes.Equal(s.Data, o.Data)
}

// LockingScript is an output script together with the hash it commits to.
type LockingScript struct {
	// KeyHash is hash160 of the key or script for P2PKH/P2SH/P2WPKH, sha256
	// of the script for P2WSH, and the public key itself for P2PK.
	KeyHash []byte

	// Data is the assembled scriptPubKey.
	Data []byte

	Type      ScriptType
	Spendable Spendable
}

// NewLockingScript renders the script for (scriptType, keyHash).
func NewLockingScript(keyHash []byte, scriptType ScriptType, spendable Spendable) *LockingScript {
	return &LockingScript{
		KeyHash:   keyHash,
		Data:      Render(scriptType.Kind, keyHash),
		Type:      scriptType,
		Spendable: spendable,
	}
}

// Hex returns the script bytes as lowercase hex.
func (l *LockingScript) Hex() string {
	return hex.EncodeToString(l.Data)
}

// Equal reports value equality over every field.
func (l *LockingScript) Equal(o *LockingScript) bool {
	if l == nil || o == nil {
		return l == o
	}
	return bytes.Equal(l.KeyHash, o.KeyHash) &&
		bytes.Equal(l.Data, o.Data) &&
		l.Type.Equal(o.Type) &&
		l.Spendable.Equal(o.Spendable)
}
