package stealth

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rymnc/go-erc5564/internal/crypto/curves"
)

// metaAddressPrefix is the human-readable prefix of an encoded stealth
// meta-address, per the ERC-5564 address format.
const metaAddressPrefix = "st:eth:0x"

// KeyPair is a private scalar and its public point, Pub = Priv*G.
// The private component must never be written in plaintext to untrusted
// storage; that responsibility stays with the caller.
type KeyPair struct {
	Priv *big.Int
	Pub  curves.Point
}

// MetaAddress is the public half of a recipient's identity: the
// spending and viewing public keys. It is shareable and immutable.
type MetaAddress struct {
	SpendPub curves.Point
	ViewPub  curves.Point
}

// MetaKeyPair holds the recipient's private counterparts. The spending
// and viewing keys are independent so the viewing key can be delegated
// to a scanning service without granting spending authority.
type MetaKeyPair struct {
	SpendPriv *big.Int
	ViewPriv  *big.Int
}

// GenerateKeyPair samples a uniform private scalar and derives its
// public point.
func (s *Suite) GenerateKeyPair() (*KeyPair, error) {
	k, err := s.curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	return &KeyPair{Priv: k, Pub: s.curve.ScalarBaseMult(k)}, nil
}

// KeyPairFromPrivate rebuilds a key pair from an existing private
// scalar, reducing it into the curve's scalar field first.
func (s *Suite) KeyPairFromPrivate(priv *big.Int) *KeyPair {
	k := new(big.Int).Mod(priv, s.curve.Order())
	return &KeyPair{Priv: k, Pub: s.curve.ScalarBaseMult(k)}
}

// BuildMetaAddress pairs the public halves of two independent key
// pairs. It performs no computation beyond the pairing.
func BuildMetaAddress(spend, view *KeyPair) *MetaAddress {
	return &MetaAddress{SpendPub: spend.Pub, ViewPub: view.Pub}
}

// GenerateMetaKeyPair samples a fresh recipient identity: two
// independent key pairs and the meta-address assembled from them.
func (s *Suite) GenerateMetaKeyPair() (*MetaKeyPair, *MetaAddress, error) {
	spend, err := s.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	view, err := s.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	keys := &MetaKeyPair{SpendPriv: spend.Priv, ViewPriv: view.Priv}
	return keys, BuildMetaAddress(spend, view), nil
}

// EncodeMetaAddress renders the meta-address as
// "st:eth:0x<spendPub><viewPub>" with both points hex-encoded in their
// canonical compressed form.
func (s *Suite) EncodeMetaAddress(m *MetaAddress) string {
	return metaAddressPrefix +
		common.Bytes2Hex(m.SpendPub.Bytes()) +
		common.Bytes2Hex(m.ViewPub.Bytes())
}

// DecodeMetaAddress parses an encoded meta-address, validating both
// public keys against the suite's curve. Malformed strings and invalid
// points are reported as ErrInvalidMetaAddress.
func (s *Suite) DecodeMetaAddress(encoded string) (*MetaAddress, error) {
	if !strings.HasPrefix(encoded, metaAddressPrefix) {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidMetaAddress, metaAddressPrefix)
	}

	width := len(s.curve.BasePoint().Bytes())
	data := common.FromHex(encoded[len(metaAddressPrefix)-2:])
	if len(data) != 2*width {
		return nil, fmt.Errorf("%w: want %d key bytes, got %d",
			ErrInvalidMetaAddress, 2*width, len(data))
	}

	spend, err := s.curve.DecodePoint(data[:width])
	if err != nil {
		return nil, fmt.Errorf("%w: spending key: %v", ErrInvalidMetaAddress, err)
	}
	view, err := s.curve.DecodePoint(data[width:])
	if err != nil {
		return nil, fmt.Errorf("%w: viewing key: %v", ErrInvalidMetaAddress, err)
	}

	m := &MetaAddress{SpendPub: spend, ViewPub: view}
	if err := s.validateMetaAddress(m); err != nil {
		return nil, err
	}
	return m, nil
}

// validateMetaAddress rejects missing and identity public keys. Points
// that reached this type through DecodeMetaAddress or BuildMetaAddress
// are already known to be on the curve and in the right subgroup.
func (s *Suite) validateMetaAddress(m *MetaAddress) error {
	if m == nil || m.SpendPub == nil || m.ViewPub == nil {
		return fmt.Errorf("%w: missing public key", ErrInvalidMetaAddress)
	}
	if m.SpendPub.IsIdentity() || m.ViewPub.IsIdentity() {
		return fmt.Errorf("%w: identity public key", ErrInvalidMetaAddress)
	}
	return nil
}
