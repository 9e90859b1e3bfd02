package broadcast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finitefield/ckaccum/accumulator"
	"github.com/finitefield/ckaccum/curve"
	"github.com/finitefield/ckaccum/hashing"
)

func TestSignVerifyAdd_RoundTrips(t *testing.T) {
	sk, pk, err := GenerateKey()
	require.NoError(t, err)

	group := curve.NewSecp256k1()
	acc, err := accumulator.New(group, hashing.SHA256{}, nil)
	require.NoError(t, err)

	u, err := acc.Add([]byte("alice"))
	require.NoError(t, err)

	msg, err := SignAdd(sk, u)
	require.NoError(t, err)

	got, err := VerifyAdd(pk, group, msg)
	require.NoError(t, err)
	require.Equal(t, u.D, got.D)
	require.True(t, u.Z.Equal(got.Z))
	require.True(t, u.V.Equal(got.V))
	require.True(t, u.W.Equal(got.W))
	require.True(t, u.Q.Equal(got.Q))
	require.Equal(t, *u.I, *got.I)

	prover := accumulator.NewProver(group, hashing.SHA256{})
	require.NoError(t, prover.Update(got))
}

func TestSignVerifyDel_RoundTrips(t *testing.T) {
	sk, pk, err := GenerateKey()
	require.NoError(t, err)

	group := curve.NewSecp256k1()
	acc, err := accumulator.New(group, hashing.SHA256{}, nil)
	require.NoError(t, err)

	u, err := acc.Add([]byte("alice"))
	require.NoError(t, err)

	del, err := acc.Del(*u)
	require.NoError(t, err)

	msg, err := SignDel(sk, del)
	require.NoError(t, err)

	got, err := VerifyDel(pk, group, msg)
	require.NoError(t, err)
	require.Equal(t, del.D, got.D)
	require.True(t, del.Z.Equal(got.Z))
	require.True(t, del.Q.Equal(got.Q))
	require.Nil(t, got.I)
}

func TestVerifyAdd_RejectsTamperedBroadcast(t *testing.T) {
	sk, pk, err := GenerateKey()
	require.NoError(t, err)

	group := curve.NewSecp256k1()
	acc, err := accumulator.New(group, hashing.SHA256{}, nil)
	require.NoError(t, err)

	u, err := acc.Add([]byte("alice"))
	require.NoError(t, err)

	msg, err := SignAdd(sk, u)
	require.NoError(t, err)
	msg[len(msg)-1] ^= 0xFF

	_, err = VerifyAdd(pk, group, msg)
	require.Error(t, err)
}

func TestVerifyAdd_RejectsWrongKey(t *testing.T) {
	sk, _, err := GenerateKey()
	require.NoError(t, err)
	_, otherPk, err := GenerateKey()
	require.NoError(t, err)

	group := curve.NewSecp256k1()
	acc, err := accumulator.New(group, hashing.SHA256{}, nil)
	require.NoError(t, err)

	u, err := acc.Add([]byte("alice"))
	require.NoError(t, err)

	msg, err := SignAdd(sk, u)
	require.NoError(t, err)

	_, err = VerifyAdd(otherPk, group, msg)
	require.Error(t, err)
}

func TestMarshalUnmarshalPublicKey_RoundTrips(t *testing.T) {
	_, pk, err := GenerateKey()
	require.NoError(t, err)

	bts, err := MarshalPublicKey(pk)
	require.NoError(t, err)

	got, err := UnmarshalPublicKey(bts)
	require.NoError(t, err)
	require.True(t, pk.ECDSA.Equal(got.ECDSA))
}
