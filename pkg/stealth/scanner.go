package stealth

import (
	"context"
	"crypto/subtle"
	"math/big"
	"runtime"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/rymnc/go-erc5564/internal/crypto/curves"
	"github.com/rymnc/go-erc5564/internal/crypto/hash2field"
	"github.com/rymnc/go-erc5564/internal/crypto/zk/schnorr"
)

// Scanner recognizes announcements addressed to a recipient. Every
// method is a pure function of its inputs; a single Scanner is safe for
// concurrent use.
type Scanner struct {
	suite  *Suite
	domain []byte
}

// NewScanner returns a scanner for the suite. domainTag must match the
// generator's.
func NewScanner(s *Suite, domainTag []byte) *Scanner {
	return &Scanner{suite: s, domain: domainTag}
}

// Recovery is the proof of ownership of one announcement: the one-time
// address, the private key that controls it and the matching public key,
// with Priv*G == Pub and Address == the announcement's stealth address.
type Recovery struct {
	Address common.Address
	Priv    *big.Int
	Pub     curves.Point
}

// sharedPoint decodes the announcement's ephemeral key and computes the
// recipient-side Diffie-Hellman point S' = viewPriv * R.
func (sc *Scanner) sharedPoint(ann *Announcement, viewPriv *big.Int) (curves.Point, error) {
	R, err := sc.suite.curve.DecodePoint(ann.EphemeralPubKey)
	if err != nil {
		return nil, err
	}
	return R.ScalarMult(viewPriv), nil
}

// FastCheck recomputes the view tag from the announcement's ephemeral
// key and the viewing private key. A false result conclusively rejects
// the announcement; a true result is advisory only (1/256 of unrelated
// announcements collide) and must be confirmed with Recover.
func (sc *Scanner) FastCheck(ann *Announcement, viewPriv *big.Int) (bool, error) {
	shared, err := sc.sharedPoint(ann, viewPriv)
	if err != nil {
		return false, err
	}
	tag := hash2field.Tag(shared, sc.domain)
	return subtle.ConstantTimeByteEq(tag, ann.ViewTag) == 1, nil
}

// Recover re-derives the stealth address from the recipient's private
// keys. On a match it returns the recovery, including the derived
// private key spendPriv + s' mod n. It returns (nil, nil) when the
// address does not match — the announcement is someone else's, or the
// view tag match was a collision. The address comparison here is the
// only authoritative ownership check.
func (sc *Scanner) Recover(ann *Announcement, spendPriv, viewPriv *big.Int) (*Recovery, error) {
	shared, err := sc.sharedPoint(ann, viewPriv)
	if err != nil {
		return nil, err
	}

	curve := sc.suite.curve
	s := hash2field.DeriveScalar(curve, shared, sc.domain)
	stealthPub := curve.ScalarBaseMult(spendPriv).Add(curve.ScalarBaseMult(s))
	addr := addressFromPoint(stealthPub)

	if subtle.ConstantTimeCompare(addr[:], ann.StealthAddress[:]) != 1 {
		return nil, nil
	}

	priv := new(big.Int).Add(spendPriv, s)
	priv.Mod(priv, curve.Order())
	return &Recovery{Address: addr, Priv: priv, Pub: stealthPub}, nil
}

// Match pairs a recovered announcement with its index in the scanned
// batch.
type Match struct {
	Index    int
	Recovery *Recovery
}

// ScanBatch scans a slice of announcements concurrently. Announcements
// are independent, so the work is split across at most workers
// goroutines (GOMAXPROCS when workers <= 0). The first decode error
// aborts the batch; ctx cancellation stops it early.
func (sc *Scanner) ScanBatch(ctx context.Context, anns []*Announcement, keys *MetaKeyPair, workers int) ([]Match, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Recovery, len(anns))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, ann := range anns {
		i, ann := i, ann
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := sc.FastCheck(ann, keys.ViewPriv)
			if err != nil || !ok {
				return err
			}
			rec, err := sc.Recover(ann, keys.SpendPriv, keys.ViewPriv)
			if err != nil {
				return err
			}
			results[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]Match, 0)
	for i, rec := range results {
		if rec != nil {
			matches = append(matches, Match{Index: i, Recovery: rec})
		}
	}
	return matches, nil
}

// ProveOwnership produces a Schnorr proof of knowledge of the recovered
// private key, letting the recipient demonstrate ownership of the
// stealth address without revealing the key.
func (sc *Scanner) ProveOwnership(rec *Recovery) (*schnorr.Proof, error) {
	return schnorr.Prove(sc.suite.curve, rec.Priv, rec.Pub)
}

// VerifyOwnership checks a proof against a stealth public key.
func (sc *Scanner) VerifyOwnership(proof *schnorr.Proof, stealthPub curves.Point) bool {
	return proof.Verify(sc.suite.curve, stealthPub)
}
