// Package chain defines address parameters for the supported Bitcoin-family
// networks. All chain-specific values are hardcoded here.
package chain

import (
	"fmt"
	"sort"
	"strings"
)

// Network represents mainnet or testnet.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// ParseNetwork parses "mainnet" or "testnet".
func ParseNetwork(s string) (Network, error) {
	switch Network(strings.ToLower(s)) {
	case Mainnet:
		return Mainnet, nil
	case Testnet:
		return Testnet, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

// AddressType represents the address encoding a wallet hands out by default.
type AddressType string

const (
	AddressP2PKH  AddressType = "p2pkh"  // Legacy (1...)
	AddressP2SH   AddressType = "p2sh"   // Script hash (3...)
	AddressP2WPKH AddressType = "p2wpkh" // Native SegWit (bc1q...)
	AddressP2WSH  AddressType = "p2wsh"  // SegWit script (bc1q...)
)

// AddressFormat names an address codec. A chain lists its formats in the
// order they are tried when decoding.
type AddressFormat string

const (
	FormatSegWit      AddressFormat = "segwit"      // Bech32 native segwit
	FormatBase58Check AddressFormat = "base58check" // Legacy version+hash+checksum
)

// ParseAddressFormat parses a codec name.
func ParseAddressFormat(s string) (AddressFormat, error) {
	switch AddressFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatSegWit:
		return FormatSegWit, nil
	case FormatBase58Check:
		return FormatBase58Check, nil
	default:
		return "", fmt.Errorf("unknown address format %q", s)
	}
}

// Params contains the address parameters for one chain on one network.
// Params are never mutated after registration.
type Params struct {
	// Identity
	Symbol  string  // BTC, LTC, etc.
	Name    string  // Bitcoin, Litecoin, etc.
	Network Network // mainnet or testnet

	// Base58Check version bytes
	PubKeyHashAddrID byte // Address prefix for P2PKH
	ScriptHashAddrID byte // Address prefix for P2SH

	// Bech32 human-readable prefix, empty when the chain has no SegWit
	Bech32HRP string

	// DustRelayFee is informational; the codecs never read it.
	DustRelayFee int64

	// Features
	SupportsSegWit bool

	// AddressFormats is the decoder priority for this chain.
	AddressFormats []AddressFormat

	// Default address type for this chain
	DefaultAddressType AddressType
}

// String returns "SYMBOL/network".
func (p *Params) String() string {
	return p.Symbol + "/" + string(p.Network)
}

// Validate checks the internal consistency of the parameters.
func (p *Params) Validate() error {
	if p.Symbol == "" {
		return fmt.Errorf("chain params: symbol is required")
	}
	if p.Network != Mainnet && p.Network != Testnet {
		return fmt.Errorf("%s: unknown network %q", p.Symbol, p.Network)
	}
	if p.PubKeyHashAddrID == p.ScriptHashAddrID {
		return fmt.Errorf("%s: p2pkh and p2sh version bytes must differ", p)
	}
	if p.SupportsSegWit {
		if p.Bech32HRP == "" {
			return fmt.Errorf("%s: segwit chain needs a bech32 prefix", p)
		}
		if p.Bech32HRP != strings.ToLower(p.Bech32HRP) {
			return fmt.Errorf("%s: bech32 prefix must be lowercase", p)
		}
	}
	if len(p.AddressFormats) == 0 {
		return fmt.Errorf("%s: at least one address format is required", p)
	}
	for _, f := range p.AddressFormats {
		if f == FormatSegWit && !p.SupportsSegWit {
			return fmt.Errorf("%s: segwit format listed but chain has no segwit", p)
		}
	}
	return nil
}

// Registry holds chain parameters indexed by symbol and network.
// It is filled once at startup and only read afterwards.
type Registry struct {
	chains map[string]map[Network]*Params
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{chains: make(map[string]map[Network]*Params)}
}

// DefaultRegistry returns a registry with every built-in chain.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	groups := [][]*Params{
		bitcoinParams(),
		litecoinParams(),
		dogecoinParams(),
		dashParams(),
		ravencoinParams(),
		bitcoinCashParams(),
	}
	for _, group := range groups {
		for _, p := range group {
			if err := r.Register(p); err != nil {
				panic(err)
			}
		}
	}
	return r
}

// Register adds chain params to the registry.
func (r *Registry) Register(params *Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	nets := r.chains[params.Symbol]
	if nets == nil {
		nets = make(map[Network]*Params)
		r.chains[params.Symbol] = nets
	}
	if _, exists := nets[params.Network]; exists {
		return fmt.Errorf("%s already registered", params)
	}
	nets[params.Network] = params
	return nil
}

// Get returns chain params for a symbol and network.
func (r *Registry) Get(symbol string, network Network) (*Params, bool) {
	nets, ok := r.chains[strings.ToUpper(symbol)]
	if !ok {
		return nil, false
	}
	params, ok := nets[network]
	return params, ok
}

// MustGet is like Get but panics when the chain is unknown.
func (r *Registry) MustGet(symbol string, network Network) *Params {
	params, ok := r.Get(symbol, network)
	if !ok {
		panic(fmt.Sprintf("chain %s/%s not registered", symbol, network))
	}
	return params
}

// List returns all registered chain symbols, sorted.
func (r *Registry) List() []string {
	symbols := make([]string, 0, len(r.chains))
	for symbol := range r.chains {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// ListSegWit returns the sorted symbols of chains with SegWit on network.
func (r *Registry) ListSegWit(network Network) []string {
	var symbols []string
	for symbol, nets := range r.chains {
		if params, ok := nets[network]; ok && params.SupportsSegWit {
			symbols = append(symbols, symbol)
		}
	}
	sort.Strings(symbols)
	return symbols
}

// IsSupported returns true if the chain is registered.
func (r *Registry) IsSupported(symbol string) bool {
	_, ok := r.chains[strings.ToUpper(symbol)]
	return ok
}

// segwitFirst is the decoder priority for chains with native SegWit.
func segwitFirst() []AddressFormat {
	return []AddressFormat{FormatSegWit, FormatBase58Check}
}

// legacyOnly is the decoder priority for chains without SegWit.
func legacyOnly() []AddressFormat {
	return []AddressFormat{FormatBase58Check}
}
