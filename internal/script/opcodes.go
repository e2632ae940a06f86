package script

// Opcodes used by the standard output templates and redeem scripts.
const (
	OP_0             byte = 0x00
	OP_DATA_20       byte = 0x14
	OP_DATA_32       byte = 0x20
	OP_DATA_33       byte = 0x21
	OP_DATA_65       byte = 0x41
	OP_DATA_75       byte = 0x4b
	OP_PUSHDATA1     byte = 0x4c
	OP_PUSHDATA2     byte = 0x4d
	OP_PUSHDATA4     byte = 0x4e
	OP_1             byte = 0x51
	OP_16            byte = 0x60
	OP_IF            byte = 0x63
	OP_ELSE          byte = 0x67
	OP_ENDIF         byte = 0x68
	OP_DROP          byte = 0x75
	OP_DUP           byte = 0x76
	OP_EQUAL         byte = 0x87
	OP_EQUALVERIFY   byte = 0x88
	OP_SHA256        byte = 0xa8
	OP_HASH160       byte = 0xa9
	OP_CHECKSIG      byte = 0xac
	OP_CHECKMULTISIG byte = 0xae

	OP_CHECKSEQUENCEVERIFY byte = 0xb2
)

// smallIntBase is added to 1..16 to get OP_1..OP_16.
const smallIntBase byte = 0x50

// Witness versions handled by the assembler.
const (
	WitnessV0 byte = 0
	WitnessV1 byte = 1
)

// Push-data size boundaries.
const (
	maxDirectPush = 75
	maxPushData1  = 0xff
	maxPushData2  = 0xffff
	maxPushData4  = 0xffffffff
)
