// Package wire provides optional deterministic CBOR encoding/decoding for
// hosts that want to put the accumulator package's records (WitnessUpdate,
// Update, Witness) on a wire or into storage. Those types hold curve.Point
// interface values, which this package does not encode or decode directly:
// hosts encode a byte-oriented copy of each record instead, with every point
// reduced to its Bytes() form, as the broadcast package does. No wire format
// is mandated by the spec (ยง6.3); this package exists because the ambient
// stack of the teacher library always carries a deterministic CBOR helper
// (privacybydesign-gabi's cbor package) wherever a record needs to cross a
// process boundary, even though the accumulator core itself never calls into
// this package.
package wire

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

const MaxArrayElements = 1024 * 64
const MaxMapPairs = 1024 * 64

var (
	encOptions = cbor.EncOptions{
		InfConvert:    cbor.InfConvertFloat16,
		IndefLength:   cbor.IndefLengthForbidden,
		NaNConvert:    cbor.NaNConvert7e00,
		ShortestFloat: cbor.ShortestFloat16,
		Sort:          cbor.SortCoreDeterministic,
		TagsMd:        cbor.TagsForbidden,
	}

	decOptions = cbor.DecOptions{
		IndefLength:       cbor.IndefLengthForbidden,
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements:  MaxArrayElements,
		MaxMapPairs:       MaxMapPairs,
		TagsMd:            cbor.TagsForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src into a deterministically CBOR-encoded byte slice.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}

// Unmarshal decodes CBOR in data into dst.
func Unmarshal(data []byte, dst interface{}) error {
	return decMode.Unmarshal(data, dst)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}
