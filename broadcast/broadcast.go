// Package broadcast adapts the Accumulator's WitnessUpdate and Update
// messages for transmission over a channel that Provers do not otherwise
// trust: the Accumulator operator signs each message with an ECDSA key
// before publishing it, and a Prover verifies the signature against the
// operator's public key before folding the message into its own state.
//
// This is adapted from the teacher library's signed package (ECDSA key
// handling plus MarshalSign/UnmarshalVerify over CBOR) and the key-pair
// shape of its revocation package's PrivateKey/PublicKey, which signs that
// library's own accumulator update messages the same way. The accumulator
// core itself (spec ยง5, ยง6.3) knows nothing about this: it has no
// networking or persistence built in, and broadcast authenticity is an
// ambient concern layered on top, not a property the core mutations
// themselves provide.
package broadcast

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"math/big"

	"github.com/go-errors/errors"

	"github.com/finitefield/ckaccum/accumulator"
	"github.com/finitefield/ckaccum/curve"
	"github.com/finitefield/ckaccum/wire"
)

// PrivateKey signs outgoing update broadcasts on the Accumulator operator's
// behalf. It is unrelated to the Accumulator's own secret scalar c; losing
// it lets an attacker forge update broadcasts, not recover c.
type PrivateKey struct {
	ECDSA *ecdsa.PrivateKey
}

// PublicKey verifies update broadcasts on a Prover's behalf.
type PublicKey struct {
	ECDSA *ecdsa.PublicKey
}

// GenerateKey produces a fresh broadcast signing keypair.
func GenerateKey() (*PrivateKey, *PublicKey, error) {
	sk, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return &PrivateKey{ECDSA: sk}, &PublicKey{ECDSA: &sk.PublicKey}, nil
}

// MarshalPublicKey and UnmarshalPublicKey move a PublicKey in and out of
// the standard PKIX encoding, for operators that need to hand it to Provers
// out of band.
func MarshalPublicKey(pk *PublicKey) ([]byte, error) {
	return x509.MarshalPKIXPublicKey(pk.ECDSA)
}

func UnmarshalPublicKey(bts []byte) (*PublicKey, error) {
	generic, err := x509.ParsePKIXPublicKey(bts)
	if err != nil {
		return nil, err
	}
	ecdsaKey, ok := generic.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("broadcast: not an ECDSA public key")
	}
	return &PublicKey{ECDSA: ecdsaKey}, nil
}

func MarshalPemPublicKey(pk *PublicKey) ([]byte, error) {
	bts, err := MarshalPublicKey(pk)
	if err != nil {
		return nil, errors.WrapPrefix(err, "broadcast: failed to serialize public key", 0)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: bts}), nil
}

// record is the wire-safe, CBOR-marshalable shadow of a WitnessUpdate or
// Update: Point/Scalar fields are opaque interfaces the accumulator package
// never asks to be marshalable, so broadcast re-encodes them through their
// Bytes() method instead of CBOR-tagging the interfaces directly.
type record struct {
	D          []byte
	Z, V, W, Q []byte
	I          *uint64
	HasV, HasW bool
}

func newRecordFromWitnessUpdate(u *accumulator.WitnessUpdate) *record {
	return &record{
		D: u.D, Z: u.Z.Bytes(), V: u.V.Bytes(), W: u.W.Bytes(), Q: u.Q.Bytes(), I: u.I,
		HasV: true, HasW: true,
	}
}

func newRecordFromUpdate(u *accumulator.Update) *record {
	return &record{D: u.D, Z: u.Z.Bytes(), Q: u.Q.Bytes(), I: u.I}
}

func (r *record) witnessUpdate(group curve.Group) (*accumulator.WitnessUpdate, error) {
	z, err := group.PointFromBytes(r.Z)
	if err != nil {
		return nil, err
	}
	v, err := group.PointFromBytes(r.V)
	if err != nil {
		return nil, err
	}
	w, err := group.PointFromBytes(r.W)
	if err != nil {
		return nil, err
	}
	q, err := group.PointFromBytes(r.Q)
	if err != nil {
		return nil, err
	}
	return &accumulator.WitnessUpdate{D: r.D, Z: z, V: v, W: w, Q: q, I: r.I}, nil
}

func (r *record) update(group curve.Group) (*accumulator.Update, error) {
	z, err := group.PointFromBytes(r.Z)
	if err != nil {
		return nil, err
	}
	q, err := group.PointFromBytes(r.Q)
	if err != nil {
		return nil, err
	}
	return &accumulator.Update{D: r.D, Z: z, Q: q, I: r.I}, nil
}

// Sign and Verify operate on raw bytes, same contract as the teacher's
// signed.Sign/signed.Verify.
func Sign(sk *PrivateKey, bts []byte) ([]byte, error) {
	hash := sha256.Sum256(bts)
	r, s, err := ecdsa.Sign(rand.Reader, sk.ECDSA, hash[:])
	if err != nil {
		return nil, err
	}
	return asn1.Marshal([]*big.Int{r, s})
}

func Verify(pk *PublicKey, bts []byte, signature []byte) error {
	ints := make([]*big.Int, 2)
	if _, err := asn1.Unmarshal(signature, &ints); err != nil {
		return err
	}
	hash := sha256.Sum256(bts)
	if !ecdsa.Verify(pk.ECDSA, hash[:], ints[0], ints[1]) {
		return errors.New("broadcast: signature is invalid")
	}
	return nil
}

type envelope struct {
	Msg, Sig []byte
}

// SignAdd signs the WitnessUpdate Accumulator.Add emitted, producing bytes
// suitable for publishing to Provers and later verified with VerifyAdd.
func SignAdd(sk *PrivateKey, u *accumulator.WitnessUpdate) ([]byte, error) {
	return signRecord(sk, newRecordFromWitnessUpdate(u))
}

// SignDel signs the Update Accumulator.Del emitted.
func SignDel(sk *PrivateKey, u *accumulator.Update) ([]byte, error) {
	return signRecord(sk, newRecordFromUpdate(u))
}

func signRecord(sk *PrivateKey, r *record) ([]byte, error) {
	bts, err := wire.Marshal(r)
	if err != nil {
		return nil, err
	}
	sig, err := Sign(sk, bts)
	if err != nil {
		return nil, err
	}
	return wire.Marshal(&envelope{Msg: bts, Sig: sig})
}

// VerifyAdd verifies a broadcast produced by SignAdd and decodes it back
// into a WitnessUpdate over group, suitable for Prover.Update.
func VerifyAdd(pk *PublicKey, group curve.Group, broadcast []byte) (*accumulator.WitnessUpdate, error) {
	r, err := verifyRecord(pk, broadcast)
	if err != nil {
		return nil, err
	}
	return r.witnessUpdate(group)
}

// VerifyDel verifies a broadcast produced by SignDel and decodes it back
// into an Update over group, suitable for Prover.Update.
func VerifyDel(pk *PublicKey, group curve.Group, broadcast []byte) (*accumulator.Update, error) {
	r, err := verifyRecord(pk, broadcast)
	if err != nil {
		return nil, err
	}
	return r.update(group)
}

func verifyRecord(pk *PublicKey, broadcast []byte) (*record, error) {
	var env envelope
	if err := wire.Unmarshal(broadcast, &env); err != nil {
		return nil, err
	}
	if err := Verify(pk, env.Msg, env.Sig); err != nil {
		return nil, err
	}
	var r record
	if err := wire.Unmarshal(env.Msg, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
