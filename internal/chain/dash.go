package chain

func dashParams() []*Params {
	return []*Params{
		{
			Symbol:  "DASH",
			Name:    "Dash",
			Network: Mainnet,

			PubKeyHashAddrID: 0x4C, // X...
			ScriptHashAddrID: 0x10, // 7...

			DustRelayFee: 1000,

			SupportsSegWit:     false,
			AddressFormats:     legacyOnly(),
			DefaultAddressType: AddressP2PKH,
		},
		{
			Symbol:  "DASH",
			Name:    "Dash Testnet",
			Network: Testnet,

			PubKeyHashAddrID: 0x8C, // y...
			ScriptHashAddrID: 0x13, // 8 or 9

			DustRelayFee: 1000,

			SupportsSegWit:     false,
			AddressFormats:     legacyOnly(),
			DefaultAddressType: AddressP2PKH,
		},
	}
}
