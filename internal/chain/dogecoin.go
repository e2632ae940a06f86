package chain

func dogecoinParams() []*Params {
	return []*Params{
		{
			Symbol:  "DOGE",
			Name:    "Dogecoin",
			Network: Mainnet,

			// Mainnet address prefixes
			PubKeyHashAddrID: 0x1E, // D...
			ScriptHashAddrID: 0x16, // 9 or A
			Bech32HRP:        "",   // No SegWit

			DustRelayFee: 1000000,

			// DOGE does not support SegWit
			SupportsSegWit:     false,
			AddressFormats:     legacyOnly(),
			DefaultAddressType: AddressP2PKH,
		},
		{
			Symbol:  "DOGE",
			Name:    "Dogecoin Testnet",
			Network: Testnet,

			PubKeyHashAddrID: 0x71, // n...
			ScriptHashAddrID: 0xC4,
			Bech32HRP:        "",

			DustRelayFee: 1000000,

			SupportsSegWit:     false,
			AddressFormats:     legacyOnly(),
			DefaultAddressType: AddressP2PKH,
		},
	}
}
