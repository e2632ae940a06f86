package address

import (
	"bytes"
	"fmt"

	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/internal/script"
)

// EncodedAddress is an address together with the locking script it pays to.
type EncodedAddress struct {
	Format  chain.AddressFormat
	Address string
	Script  *script.LockingScript
}

// TwinScript returns the 1-of-2 multisig redeem script shared by a key pair.
// Both keys are compressed and sorted, so the result does not depend on
// argument order or key serialization.
func TwinScript(pubKey, pairPubKey []byte) ([]byte, error) {
	keys := make([][]byte, 0, 2)
	for _, raw := range [][]byte{pubKey, pairPubKey} {
		key, err := parsePubKey(raw)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key.SerializeCompressed())
	}
	if bytes.Compare(keys[0], keys[1]) > 0 {
		keys[0], keys[1] = keys[1], keys[0]
	}
	return script.MultiSig(1, keys)
}

// TwinAddresses returns the addresses of the shared 1-of-2 script in the
// chain's address format order: P2WSH for segwit, P2SH for base58check.
func TwinAddresses(params *chain.Params, pubKey, pairPubKey []byte) ([]EncodedAddress, error) {
	redeem, err := TwinScript(pubKey, pairPubKey)
	if err != nil {
		return nil, err
	}

	codecs, err := NewCodecs(params)
	if err != nil {
		return nil, err
	}

	out := make([]EncodedAddress, 0, len(codecs))
	for _, codec := range codecs {
		kind := script.P2SH
		if codec.Format() == chain.FormatSegWit {
			kind = script.P2WSH
		}
		addr, ls, err := codec.Encode(redeem, kind)
		if err != nil {
			return nil, fmt.Errorf("%s twin address: %w", kind, err)
		}
		out = append(out, EncodedAddress{Format: codec.Format(), Address: addr, Script: ls})
	}
	return out, nil
}
