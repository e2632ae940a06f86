package chain

func bitcoinParams() []*Params {
	return []*Params{
		{
			Symbol:  "BTC",
			Name:    "Bitcoin",
			Network: Mainnet,

			// Mainnet address prefixes
			PubKeyHashAddrID: 0x00, // 1...
			ScriptHashAddrID: 0x05, // 3...
			Bech32HRP:        "bc",

			DustRelayFee: 3000,

			SupportsSegWit:     true,
			AddressFormats:     segwitFirst(),
			DefaultAddressType: AddressP2WPKH,
		},
		{
			Symbol:  "BTC",
			Name:    "Bitcoin Testnet",
			Network: Testnet,

			// Testnet address prefixes
			PubKeyHashAddrID: 0x6F, // m or n
			ScriptHashAddrID: 0xC4, // 2...
			Bech32HRP:        "tb",

			DustRelayFee: 3000,

			SupportsSegWit:     true,
			AddressFormats:     segwitFirst(),
			DefaultAddressType: AddressP2WPKH,
		},
	}
}
