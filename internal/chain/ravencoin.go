package chain

func ravencoinParams() []*Params {
	return []*Params{
		{
			Symbol:  "RVN",
			Name:    "Ravencoin",
			Network: Mainnet,

			PubKeyHashAddrID: 0x3C, // R...
			ScriptHashAddrID: 0x7A, // r...

			DustRelayFee: 1000,

			SupportsSegWit:     false,
			AddressFormats:     legacyOnly(),
			DefaultAddressType: AddressP2PKH,
		},
		{
			Symbol:  "RVN",
			Name:    "Ravencoin Testnet",
			Network: Testnet,

			PubKeyHashAddrID: 0x6F, // m or n
			ScriptHashAddrID: 0xC4, // 2...

			DustRelayFee: 1000,

			SupportsSegWit:     false,
			AddressFormats:     legacyOnly(),
			DefaultAddressType: AddressP2PKH,
		},
	}
}
