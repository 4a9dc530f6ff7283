// Package codec provides the CBOR encoding used for vault values and peer
// payloads. Core Deterministic Encoding keeps the bytes of a record
// identical on every party, so converged vaults really are byte-equal.
package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var encMode cbor.EncMode
var decMode cbor.DecMode

func init() {
	var err error
	opts := cbor.CoreDetEncOptions()
	// The default epoch encoding truncates to whole seconds, which would
	// collapse version timestamps minted in the same second. RFC 3339 with
	// nanoseconds round-trips exactly and normalizes to UTC.
	opts.Time = cbor.TimeRFC3339Nano
	encMode, err = opts.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		// Only string map keys are used; any-typed targets decode as
		// map[string]any instead of the CBOR default map[any]any.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v. Unknown fields are ignored for
// forward compatibility.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
