package address

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/internal/script"
)

func bech32Data(t *testing.T, version byte, program []byte) []byte {
	t.Helper()
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		t.Fatal(err)
	}
	return append([]byte{version}, converted...)
}

func TestSegWitDecodeP2WPKH(t *testing.T) {
	codec := mustSegWit(t, registry.MustGet("BTC", chain.Mainnet))

	for _, addr := range []string{bip173P2WPKH, strings.ToUpper(bip173P2WPKH)} {
		version, ls, err := codec.Decode(addr)
		if err != nil {
			t.Fatalf("Decode(%s): %v", addr, err)
		}
		if version != 0 {
			t.Errorf("version = %d, want 0", version)
		}
		if ls.Type.Kind != script.P2WPKH {
			t.Errorf("Kind = %s, want p2wpkh", ls.Type.Kind)
		}
		if want := "0014" + bip173Program; ls.Hex() != want {
			t.Errorf("script = %s, want %s", ls.Hex(), want)
		}
		if ls.Spendable.Kind != script.SpendableNone {
			t.Errorf("Spendable = %s, want none", ls.Spendable.Kind)
		}
	}
}

func TestSegWitEncodeP2WPKH(t *testing.T) {
	codec := mustSegWit(t, registry.MustGet("BTC", chain.Mainnet))
	pubKey := mustHex(t, generatorPubKey)

	addr, ls, err := codec.Encode(pubKey, script.P2WPKH)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if addr != bip173P2WPKH {
		t.Errorf("address = %s, want %s", addr, bip173P2WPKH)
	}
	if hex.EncodeToString(ls.KeyHash) != bip173Program {
		t.Errorf("program = %x, want %s", ls.KeyHash, bip173Program)
	}
	if !bytes.Equal(ls.Spendable.Data, pubKey) {
		t.Errorf("spendable = %x, want %x", ls.Spendable.Data, pubKey)
	}
}

func TestSegWitEncodeP2WSH(t *testing.T) {
	witnessScript := mustHex(t, "21"+generatorPubKey+"ac")

	tests := []struct {
		net  chain.Network
		want string
	}{
		{chain.Mainnet, bip173P2WSH},
		{chain.Testnet, bip173TestP2WSH},
	}

	for _, tt := range tests {
		t.Run(string(tt.net), func(t *testing.T) {
			codec := mustSegWit(t, registry.MustGet("BTC", tt.net))
			addr, ls, err := codec.Encode(witnessScript, script.P2WSH)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if addr != tt.want {
				t.Errorf("address = %s, want %s", addr, tt.want)
			}
			if want := "0020" + bip173WSHProg; ls.Hex() != want {
				t.Errorf("script = %s, want %s", ls.Hex(), want)
			}
			if !bytes.Equal(ls.Type.RedeemScript, witnessScript) {
				t.Error("ScriptType should carry the witness script")
			}
			if ls.Spendable.Kind != script.SpendableRedeemScript {
				t.Errorf("Spendable = %s, want redeem_script", ls.Spendable.Kind)
			}

			_, decoded, err := codec.Decode(addr)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if decoded.Type.Kind != script.P2WSH || !bytes.Equal(decoded.Data, ls.Data) {
				t.Errorf("decoded = %s %x, want p2wsh %x", decoded.Type.Kind, decoded.Data, ls.Data)
			}
		})
	}
}

func TestSegWitRoundTrip(t *testing.T) {
	for _, symbol := range registry.ListSegWit(chain.Mainnet) {
		for _, net := range []chain.Network{chain.Mainnet, chain.Testnet} {
			params := registry.MustGet(symbol, net)
			codec := mustSegWit(t, params)
			oracle := toChainCfgParams(params)

			t.Run(params.String(), func(t *testing.T) {
				pkh := script.Hash160(testKey(3).SerializeCompressed())
				addr, _, err := codec.EncodeHash(pkh, script.P2WPKH)
				if err != nil {
					t.Fatal(err)
				}
				want, err := btcutil.NewAddressWitnessPubKeyHash(pkh, oracle)
				if err != nil {
					t.Fatal(err)
				}
				if addr != want.EncodeAddress() {
					t.Errorf("p2wpkh = %s, want %s", addr, want.EncodeAddress())
				}
				if !strings.HasPrefix(addr, params.Bech32HRP+"1") {
					t.Errorf("address %s lacks prefix %s", addr, params.Bech32HRP)
				}

				wsh := script.SHA256([]byte("witness script"))
				addr, _, err = codec.EncodeHash(wsh, script.P2WSH)
				if err != nil {
					t.Fatal(err)
				}
				wantWSH, err := btcutil.NewAddressWitnessScriptHash(wsh, oracle)
				if err != nil {
					t.Fatal(err)
				}
				if addr != wantWSH.EncodeAddress() {
					t.Errorf("p2wsh = %s, want %s", addr, wantWSH.EncodeAddress())
				}

				_, ls, err := codec.Decode(addr)
				if err != nil {
					t.Fatalf("Decode: %v", err)
				}
				if !bytes.Equal(ls.KeyHash, wsh) || ls.Type.Kind != script.P2WSH {
					t.Errorf("round trip = %x %s", ls.KeyHash, ls.Type.Kind)
				}
			})
		}
	}
}

func TestSegWitPrefixIsolation(t *testing.T) {
	tests := []struct {
		name   string
		params *chain.Params
		addr   string
	}{
		{"testnet address on mainnet", registry.MustGet("BTC", chain.Mainnet), bip173TestP2WSH},
		{"mainnet address on testnet", registry.MustGet("BTC", chain.Testnet), bip173P2WSH},
		{"bitcoin address on litecoin", registry.MustGet("LTC", chain.Mainnet), bip173P2WPKH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := mustSegWit(t, tt.params).Decode(tt.addr)
			if !errors.Is(err, ErrWrongBech32Prefix) {
				t.Errorf("err = %v, want ErrWrongBech32Prefix", err)
			}
		})
	}
}

func TestSegWitDecodeErrors(t *testing.T) {
	codec := mustSegWit(t, registry.MustGet("BTC", chain.Mainnet))
	program20 := mustHex(t, bip173Program)

	taprootV0Checksum, err := bech32.Encode("bc", bech32Data(t, 1, bytes.Repeat([]byte{0x01}, 32)))
	if err != nil {
		t.Fatal(err)
	}
	v0Bech32m, err := bech32.EncodeM("bc", bech32Data(t, 0, program20))
	if err != nil {
		t.Fatal(err)
	}
	oddProgram, err := bech32.Encode("bc", bech32Data(t, 0, make([]byte, 25)))
	if err != nil {
		t.Fatal(err)
	}

	foreignOddProgram, err := bech32.Encode("ltc", bech32Data(t, 0, make([]byte, 25)))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"malformed with foreign prefix", foreignOddProgram},
		{"bad checksum", bip173P2WPKH[:len(bip173P2WPKH)-1] + "5"},
		{"mixed case", "bc1qW508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"},
		{"base58 address", wikiAddress},
		{"taproot", "bc1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqzk5jj0"},
		{"version 1 with bech32 checksum", taprootV0Checksum},
		{"version 0 with bech32m checksum", v0Bech32m},
		{"program length 25", oddProgram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ls, err := codec.Decode(tt.addr)
			if !errors.Is(err, ErrWrongAddress) {
				t.Errorf("err = %v, want ErrWrongAddress", err)
			}
			if ls != nil {
				t.Error("script should be nil on error")
			}
		})
	}
}

func TestSegWitEncodeErrors(t *testing.T) {
	codec := mustSegWit(t, registry.MustGet("BTC", chain.Mainnet))
	pubKey := mustHex(t, generatorPubKey)

	for _, kind := range []script.Kind{script.P2PKH, script.P2SH, script.P2TR, script.P2PK} {
		if _, _, err := codec.Encode(pubKey, kind); !errors.Is(err, ErrUnsupportedScriptType) {
			t.Errorf("Encode(%s) err = %v, want ErrUnsupportedScriptType", kind, err)
		}
	}
	if _, _, err := codec.Encode(make([]byte, 32), script.P2WPKH); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("Encode(32-byte key) err = %v, want ErrInvalidPublicKey", err)
	}
	if _, _, err := codec.EncodeHash(make([]byte, 20), script.P2WSH); !errors.Is(err, ErrInvalidKeyHash) {
		t.Errorf("EncodeHash(20 bytes, p2wsh) err = %v, want ErrInvalidKeyHash", err)
	}
}

func TestNewSegWitRequiresSupport(t *testing.T) {
	if _, err := NewSegWit(registry.MustGet("DOGE", chain.Mainnet)); err == nil {
		t.Error("expected error for a chain without segwit")
	}
	codec := mustSegWit(t, registry.MustGet("LTC", chain.Testnet))
	if codec.Prefix() != "tltc" {
		t.Errorf("Prefix = %s, want tltc", codec.Prefix())
	}
}
