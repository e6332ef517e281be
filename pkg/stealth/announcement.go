package stealth

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rymnc/go-erc5564/internal/crypto/curves"
	"github.com/rymnc/go-erc5564/internal/crypto/hash2field"
)

// Announcement is the public record a sender publishes per transfer.
// It is immutable once created: every candidate recipient reads it,
// none mutates it.
type Announcement struct {
	// EphemeralPubKey is the canonical compressed encoding of R = r*G,
	// the sender's single-use public key.
	EphemeralPubKey []byte

	// StealthAddress is the derived one-time address.
	StealthAddress common.Address

	// ViewTag is a one-byte filter hint derived from the shared secret.
	// It is a scanning-cost optimization, not proof of ownership: a
	// match is wrong 1 time in 256 for unrelated keys.
	ViewTag byte
}

// addressFromPoint derives the on-chain address of a stealth public
// key: the trailing 20 bytes of keccak256 over its compressed encoding,
// the account-model address convention.
func addressFromPoint(p curves.Point) common.Address {
	h := hash2field.Keccak256(p.Bytes())
	return common.BytesToAddress(h[12:])
}
