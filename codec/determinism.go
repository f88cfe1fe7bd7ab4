package codec

import (
	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"

	"github.com/shaban/bytewire/wire"
)

// DeterminismKey seeds the SipHash ordering used by EncodeMapDeterministic
// and EncodeSetDeterministic. Two peers must agree on this key for their
// deterministic encodings of the same map to be byte-identical; it is not
// part of the wire format itself.
type DeterminismKey struct {
	K0, K1 uint64
}

// EncodeMapDeterministic writes m in ascending order of each key's SipHash
// under key, rather than Go's randomized map iteration order. Unlike
// EncodeMap, two calls over the same entries always produce the same
// bytes, at the cost of an allocation and a sort.
func EncodeMapDeterministic[K comparable, V any](out *wire.Output, m map[K]V, key DeterminismKey, encodeKey func(*wire.Output, K) error, encodeVal func(*wire.Output, V) error) error {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	hashed := hashKeys(keys, key, encodeKey)
	sortByHash(keys, hashed)

	if err := EncodeUint(out, uint(len(m))); err != nil {
		return &CollectionEncodeError[error, error]{BadLength: err, IsLength: true}
	}
	for i, k := range keys {
		if err := encodeKey(out, k); err != nil {
			return &CollectionEncodeError[error, error]{BadItem: &ItemEncodeError[int, error]{Index: i, Err: err}}
		}
		if err := encodeVal(out, m[k]); err != nil {
			return &CollectionEncodeError[error, error]{BadItem: &ItemEncodeError[int, error]{Index: i, Err: err}}
		}
	}
	return nil
}

// EncodeSetDeterministic writes s in ascending order of each member's
// SipHash under key, mirroring EncodeMapDeterministic.
func EncodeSetDeterministic[T comparable](out *wire.Output, s map[T]struct{}, key DeterminismKey, encodeElem func(*wire.Output, T) error) error {
	elems := make([]T, 0, len(s))
	for v := range s {
		elems = append(elems, v)
	}
	hashed := hashKeys(elems, key, encodeElem)
	sortByHash(elems, hashed)

	if err := EncodeUint(out, uint(len(s))); err != nil {
		return &CollectionEncodeError[error, error]{BadLength: err, IsLength: true}
	}
	for i, v := range elems {
		if err := encodeElem(out, v); err != nil {
			return &CollectionEncodeError[error, error]{BadItem: &ItemEncodeError[int, error]{Index: i, Err: err}}
		}
	}
	return nil
}

// hashKeys computes the SipHash-2-4 digest of each key's own encoded bytes,
// reusing encodeKey so the ordering stays consistent with the wire form
// the key will actually be written in.
func hashKeys[K any](keys []K, key DeterminismKey, encodeKey func(*wire.Output, K) error) []uint64 {
	hashed := make([]uint64, len(keys))
	for i, k := range keys {
		scratch := make([]byte, 0, 32)
		buf := growBuffer(scratch, 256)
		out := wire.NewOutput(buf)
		_ = encodeKey(out, k) // an error is ignored here: the hash covers the bytes written so far, and the encode pass that follows reports it
		hashed[i] = siphash.Hash(key.K0, key.K1, out.Bytes())
	}
	return hashed
}

func growBuffer(b []byte, n int) []byte {
	if cap(b) >= n {
		return b[:n]
	}
	return make([]byte, n)
}

func sortByHash[T any](elems []T, hashed []uint64) {
	idx := make([]int, len(elems))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) bool { return hashed[a] < hashed[b] })

	sortedElems := make([]T, len(elems))
	sortedHashed := make([]uint64, len(hashed))
	for i, j := range idx {
		sortedElems[i] = elems[j]
		sortedHashed[i] = hashed[j]
	}
	copy(elems, sortedElems)
	copy(hashed, sortedHashed)
}
