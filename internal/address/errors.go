package address

import "errors"

// Decoding and encoding errors. All are input-validation failures; retrying
// with the same input yields the same error.
var (
	// ErrWrongAddress is returned for malformed Base58/Bech32 payloads, a
	// wrong decoded length, or an unknown witness version/program pair.
	ErrWrongAddress = errors.New("wrong address")

	// ErrWrongChecksum is returned when a Base58Check checksum mismatches.
	ErrWrongChecksum = errors.New("wrong checksum")

	// ErrWrongBech32Prefix is returned when the human-readable part does
	// not match the network.
	ErrWrongBech32Prefix = errors.New("wrong bech32 prefix")

	// ErrUnsupportedVersion is returned for a Base58Check version byte the
	// network does not define.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrUnsupportedScriptType is returned when a codec is asked to encode
	// a script type it does not handle.
	ErrUnsupportedScriptType = errors.New("unsupported script type")

	// ErrLockingScriptNotFound is returned when no decoder accepted the
	// address.
	ErrLockingScriptNotFound = errors.New("locking script not found")

	// ErrInvalidKeyHash is returned by EncodeHash for a hash of the wrong
	// length.
	ErrInvalidKeyHash = errors.New("invalid key hash")

	// ErrInvalidPublicKey is returned for bytes that are not a valid
	// secp256k1 public key.
	ErrInvalidPublicKey = errors.New("invalid public key")
)
