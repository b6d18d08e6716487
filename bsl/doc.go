// Package bsl decodes Bitcoin style wire records without copying them.
//
// Every record keeps the exact sub-slice of the input it was parsed from, so deserialisation
// is free and re-serialisation is returning Bytes(). Records alias the caller's buffer: the
// buffer must not be modified while records parsed from it are in use. Use Clone to take an
// owned copy of a record's bytes across an API boundary.
//
// All parsers share one contract: given a byte slice they consume a prefix of it and return a
// ParseResult holding the record, the number of bytes consumed and the unconsumed suffix. On
// failure they return the zero ParseResult and an error carrying one of the codes
// ERR_INSUFFICIENT_BYTES, ERR_INVALID_ENCODING or ERR_INVALID_TEXT. Nothing is retried.
//
// Count prefixed containers are exposed as Sequence[T]. The eager parse validates every element
// once. Elements are then re-derived on demand by Iter or All, which costs a second decode per
// element instead of an allocation per container.
//
// Parsing is pure: no logging, no I/O and no shared state, so any parser may be called
// concurrently over the same read only buffer.
package bsl
