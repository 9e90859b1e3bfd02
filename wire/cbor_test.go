package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordDTO mirrors the byte-oriented shape hosts would actually put on a
// wire: every curve.Point/curve.Scalar field reduced to its Bytes() form.
// The accumulator package's own types hold interfaces, which this package
// deliberately does not try to decode into directly (decoding into an
// interface field requires the host to know the concrete curve.Group ahead
// of time); callers convert to/from a DTO like this one around Marshal and
// Unmarshal.
type recordDTO struct {
	D    []byte
	Z, V, W []byte
	Q    []byte
	I    *uint64
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	idx := uint64(3)
	in := recordDTO{
		D: []byte("element"),
		Z: []byte{0x02, 0x01, 0x02, 0x03},
		V: []byte{0x03, 0x04, 0x05, 0x06},
		W: []byte{0x02, 0x07, 0x08, 0x09},
		Q: []byte{0x02, 0x0a, 0x0b, 0x0c},
		I: &idx,
	}

	encoded, err := Marshal(in)
	require.NoError(t, err)

	var out recordDTO
	require.NoError(t, Unmarshal(encoded, &out))
	require.Equal(t, in.D, out.D)
	require.Equal(t, in.Z, out.Z)
	require.NotNil(t, out.I)
	require.Equal(t, *in.I, *out.I)
}

func TestEncoderDecoderStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Encode(recordDTO{D: []byte("a")}))
	require.NoError(t, enc.Encode(recordDTO{D: []byte("b")}))

	dec := NewDecoder(&buf)
	var first, second recordDTO
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	require.Equal(t, []byte("a"), first.D)
	require.Equal(t, []byte("b"), second.D)
}
