package address

import (
	"fmt"

	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/internal/script"
)

// LockingScript tries decoders in order and returns the script from the
// first one that accepts address. Order matters: the first match wins even
// if a later decoder would also parse the string.
func LockingScript(address string, decoders ...Decoder) (*script.LockingScript, error) {
	for _, decoder := range decoders {
		_, ls, err := decoder.Decode(address)
		if err == nil {
			return ls, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLockingScriptNotFound, address)
}

// Resolver holds the ordered codecs of one chain.
type Resolver struct {
	params *chain.Params
	codecs []Codec
}

// NewResolver builds a resolver for params. formats overrides the chain's
// decoder priority when non-empty.
func NewResolver(params *chain.Params, formats ...chain.AddressFormat) (*Resolver, error) {
	codecs, err := NewCodecs(params, formats...)
	if err != nil {
		return nil, err
	}
	return &Resolver{params: params, codecs: codecs}, nil
}

// Params returns the chain parameters the resolver was built for.
func (r *Resolver) Params() *chain.Params {
	return r.params
}

// Codecs returns the codecs in decoding order.
func (r *Resolver) Codecs() []Codec {
	out := make([]Codec, len(r.codecs))
	copy(out, r.codecs)
	return out
}

// LockingScript decodes address with the chain's codecs in priority order.
func (r *Resolver) LockingScript(address string) (*script.LockingScript, error) {
	decoders := make([]Decoder, len(r.codecs))
	for i, c := range r.codecs {
		decoders[i] = c
	}
	return LockingScript(address, decoders...)
}

// Encode picks the first codec supporting kind and encodes source with it.
func (r *Resolver) Encode(source []byte, kind script.Kind) (string, *script.LockingScript, error) {
	codec, err := r.codecFor(kind)
	if err != nil {
		return "", nil, err
	}
	return codec.Encode(source, kind)
}

// EncodeHash picks the first codec supporting kind and encodes keyHash.
func (r *Resolver) EncodeHash(keyHash []byte, kind script.Kind) (string, *script.LockingScript, error) {
	codec, err := r.codecFor(kind)
	if err != nil {
		return "", nil, err
	}
	return codec.EncodeHash(keyHash, kind)
}

func (r *Resolver) codecFor(kind script.Kind) (Codec, error) {
	for _, c := range r.codecs {
		if c.Supports(kind) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedScriptType, kind, r.params)
}
