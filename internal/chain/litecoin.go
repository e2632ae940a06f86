package chain

func litecoinParams() []*Params {
	return []*Params{
		{
			Symbol:  "LTC",
			Name:    "Litecoin",
			Network: Mainnet,

			// Mainnet address prefixes
			PubKeyHashAddrID: 0x30, // L...
			ScriptHashAddrID: 0x32, // M...
			Bech32HRP:        "ltc",

			DustRelayFee: 3000,

			SupportsSegWit:     true,
			AddressFormats:     segwitFirst(),
			DefaultAddressType: AddressP2WPKH,
		},
		{
			Symbol:  "LTC",
			Name:    "Litecoin Testnet",
			Network: Testnet,

			// Testnet address prefixes
			PubKeyHashAddrID: 0x6F, // m or n
			ScriptHashAddrID: 0x3A, // Q...
			Bech32HRP:        "tltc",

			DustRelayFee: 3000,

			SupportsSegWit:     true,
			AddressFormats:     segwitFirst(),
			DefaultAddressType: AddressP2WPKH,
		},
	}
}
