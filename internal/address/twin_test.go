package address

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/internal/script"
)

func TestTwinAddresses(t *testing.T) {
	const (
		cardCompressed   = "0241dcd64b5f4a039fc339a16300a833a883b218909f2ebcaf3906651c76842c45"
		cardUncompressed = "0441dcd64b5f4a039fc339a16300a833a883b218909f2ebcaf3906651c76842c45e3d67e8d2947e6fee8b62d3d3b6a4d5f212da23e478dd69a2c6ccc851f300d80"
		pairCompressed   = "022a5741873b88c383a7cff4aa23792754b5d20248f1a24df1dac35641b3f97d89"
		pairUncompressed = "042a5741873b88c383a7cff4aa23792754b5d20248f1a24df1dac35641b3f97d8936d318d49fe06e3437e31568b338b340f4e6df5184e1ec5840f2b7f4596902ae"

		multisigKey1 = "04752a727e14bba5bd73b6714d72500f61ffd11026ad1196d2e1c54577cbeeac3d11fc68a64700f8d533f4e311964ea8fb3aa26c588295f2133868d69c3e628693"
		multisigKey2 = "04e3f3be3ce3d8284db3ba073ad0291040093d83c11a277b905d5555c9ec41073e103f4d9d299edea8285c51c3356a8681a545618c174251b984df841f49d2376f"
	)

	tests := []struct {
		name       string
		key, pair  string
		wantSegWit string
		wantLegacy string
	}{
		{"both uncompressed", cardUncompressed, pairUncompressed, "bc1q0u3heda6uhq7fulsqmw40heuh3e76nd9skxngv93uzz3z6xtpjmsrh88wh", "34DmpSKfsvqxgzVVhcEepeX3s67ai4ShPq"},
		{"uncompressed and compressed", cardUncompressed, pairCompressed, "bc1q0u3heda6uhq7fulsqmw40heuh3e76nd9skxngv93uzz3z6xtpjmsrh88wh", "34DmpSKfsvqxgzVVhcEepeX3s67ai4ShPq"},
		{"both compressed", cardCompressed, pairCompressed, "bc1q0u3heda6uhq7fulsqmw40heuh3e76nd9skxngv93uzz3z6xtpjmsrh88wh", "34DmpSKfsvqxgzVVhcEepeX3s67ai4ShPq"},
		{"compressed and uncompressed", cardCompressed, pairUncompressed, "bc1q0u3heda6uhq7fulsqmw40heuh3e76nd9skxngv93uzz3z6xtpjmsrh88wh", "34DmpSKfsvqxgzVVhcEepeX3s67ai4ShPq"},
		{"swapped order", pairCompressed, cardCompressed, "bc1q0u3heda6uhq7fulsqmw40heuh3e76nd9skxngv93uzz3z6xtpjmsrh88wh", "34DmpSKfsvqxgzVVhcEepeX3s67ai4ShPq"},
		{"multisig", multisigKey1, multisigKey2, "bc1qw9czf0m0eu0v5uhdqj9l4w9su3ca0pegzxxk947hrehma343qwusy4nf8c", "358vzrRZUDZ8DM5Zbz9oLqGr8voPYQqe56"},
		{"multisig reversed", multisigKey2, multisigKey1, "bc1qw9czf0m0eu0v5uhdqj9l4w9su3ca0pegzxxk947hrehma343qwusy4nf8c", "358vzrRZUDZ8DM5Zbz9oLqGr8voPYQqe56"},
	}

	params := registry.MustGet("BTC", chain.Mainnet)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addrs, err := TwinAddresses(params, mustHex(t, tt.key), mustHex(t, tt.pair))
			if err != nil {
				t.Fatalf("TwinAddresses: %v", err)
			}
			if len(addrs) != 2 {
				t.Fatalf("got %d addresses, want 2", len(addrs))
			}
			if addrs[0].Format != chain.FormatSegWit || addrs[0].Address != tt.wantSegWit {
				t.Errorf("segwit = %s %s, want %s", addrs[0].Format, addrs[0].Address, tt.wantSegWit)
			}
			if addrs[1].Format != chain.FormatBase58Check || addrs[1].Address != tt.wantLegacy {
				t.Errorf("legacy = %s %s, want %s", addrs[1].Format, addrs[1].Address, tt.wantLegacy)
			}
			if addrs[0].Script.Type.Kind != script.P2WSH || addrs[1].Script.Type.Kind != script.P2SH {
				t.Errorf("kinds = %s/%s, want p2wsh/p2sh", addrs[0].Script.Type.Kind, addrs[1].Script.Type.Kind)
			}
		})
	}
}

func TestTwinScriptSortsCompressedKeys(t *testing.T) {
	a := testKey(4)
	b := testKey(5)

	got, err := TwinScript(a.SerializeUncompressed(), b.SerializeCompressed())
	if err != nil {
		t.Fatal(err)
	}

	keys := [][]byte{a.SerializeCompressed(), b.SerializeCompressed()}
	if bytes.Compare(keys[0], keys[1]) > 0 {
		keys[0], keys[1] = keys[1], keys[0]
	}
	want, err := script.MultiSig(1, keys)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("TwinScript = %x, want %x", got, want)
	}
}

func TestTwinAddressesLegacyOnlyChain(t *testing.T) {
	addrs, err := TwinAddresses(registry.MustGet("DOGE", chain.Mainnet), testKey(4).SerializeCompressed(), testKey(5).SerializeCompressed())
	if err != nil {
		t.Fatal(err)
	}
	if len(addrs) != 1 || addrs[0].Script.Type.Kind != script.P2SH {
		t.Errorf("DOGE twin addresses = %+v, want a single p2sh", addrs)
	}
}

func TestTwinAddressesInvalidKey(t *testing.T) {
	_, err := TwinAddresses(registry.MustGet("BTC", chain.Mainnet), testKey(4).SerializeCompressed(), make([]byte, 32))
	if !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("err = %v, want ErrInvalidPublicKey", err)
	}
}
