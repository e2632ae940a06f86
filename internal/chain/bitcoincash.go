package chain

// Bitcoin Cash shares Bitcoin's legacy version bytes. Only the legacy
// Base58Check form is handled here; CashAddr is a separate encoding.
func bitcoinCashParams() []*Params {
	return []*Params{
		{
			Symbol:  "BCH",
			Name:    "Bitcoin Cash",
			Network: Mainnet,

			PubKeyHashAddrID: 0x00, // 1...
			ScriptHashAddrID: 0x05, // 3...

			DustRelayFee: 1000,

			SupportsSegWit:     false,
			AddressFormats:     legacyOnly(),
			DefaultAddressType: AddressP2PKH,
		},
		{
			Symbol:  "BCH",
			Name:    "Bitcoin Cash Testnet",
			Network: Testnet,

			PubKeyHashAddrID: 0x6F,
			ScriptHashAddrID: 0xC4,

			DustRelayFee: 1000,

			SupportsSegWit:     false,
			AddressFormats:     legacyOnly(),
			DefaultAddressType: AddressP2PKH,
		},
	}
}
