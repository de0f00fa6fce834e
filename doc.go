package wireform

// Package wireform provides:
//
// - Bidirectional, composable value codecs between wire representations and typed values (Mapping/Codec)
// - A decode-outcome algebra distinct from booleans via DecodeResult (value/error/missing/multiple/invalid)
// - Structural combinators (list/set/vector/head/option), multipart assembly and WebSocket frame projection
// - Schema and validator propagation in lockstep through every transformation
//
// Design policy:
// - Keep only public APIs in the root package; schema descriptors live under schema/, validators under validate/.
// - Place serializer-backed codec instantiations (JSON/YAML/CBOR/MessagePack/XML) under codec/.
// - Codecs are immutable and pure: decode never mutates external state, encode is total over valid values,
//   and failures are reported through DecodeResult, never thrown across the codec boundary.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	ints := wireform.ListCodec(wireform.Int())
//	r := ints.Decode([]string{"1", "2", "3"})      // Value([1 2 3])
//	wire := ints.Encode([]int{4, 5})               // ["4" "5"]
//
//	bounded := wireform.Int().Validate(validate.Min(0, false))
//	bounded.Decode("-1")                           // InvalidValue(too_small)
