package codec

import "github.com/shaban/bytewire/wire"

// EncodeSlice writes s as a usize length prefix followed by each element,
// encoded in order by encodeElem. It serves Vec<T>, LinkedList<T>, VecDeque<T>
// and any other sequential Rust collection that lowers to a Go slice: they
// all share this exact wire shape.
func EncodeSlice[T any](out *wire.Output, s []T, encodeElem func(*wire.Output, T) error) error {
	if err := EncodeUint(out, uint(len(s))); err != nil {
		return &CollectionEncodeError[error, error]{BadLength: err, IsLength: true}
	}
	for i, v := range s {
		if err := encodeElem(out, v); err != nil {
			return &CollectionEncodeError[error, error]{BadItem: &ItemEncodeError[int, error]{Index: i, Err: err}}
		}
	}
	return nil
}

// DecodeSlice reads a usize length prefix followed by that many elements,
// each decoded by decodeElem.
func DecodeSlice[T any](in *wire.Input, decodeElem func(*wire.Input) (T, error)) ([]T, error) {
	n, err := DecodeUint(in)
	if err != nil {
		return nil, &CollectionDecodeError[error, error]{BadLength: err, IsLength: true}
	}
	s := make([]T, 0, n)
	for i := 0; i < int(n); i++ {
		v, err := decodeElem(in)
		if err != nil {
			return nil, &CollectionDecodeError[error, error]{BadItem: &ItemDecodeError[int, error]{Index: i, Err: err}}
		}
		s = append(s, v)
	}
	return s, nil
}

// EncodeArray writes a's elements in order, without any length prefix: a
// fixed-size Rust array's length is part of its type, known to both sides
// ahead of time, so nothing need travel on the wire to recover it.
func EncodeArray[T any](out *wire.Output, a []T, encodeElem func(*wire.Output, T) error) error {
	for i, v := range a {
		if err := encodeElem(out, v); err != nil {
			return &ItemEncodeError[int, error]{Index: i, Err: err}
		}
	}
	return nil
}

// DecodeArray reads exactly n elements into a newly allocated slice of
// length n, without reading any length prefix.
func DecodeArray[T any](in *wire.Input, n int, decodeElem func(*wire.Input) (T, error)) ([]T, error) {
	a := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := decodeElem(in)
		if err != nil {
			return nil, &ItemDecodeError[int, error]{Index: i, Err: err}
		}
		a[i] = v
	}
	return a, nil
}

// EncodeSet writes s as a usize length prefix followed by each member, in
// whatever order Go's map iteration yields. This matches HashSet's own
// unspecified iteration order; callers needing a stable wire form across
// runs should use EncodeSetDeterministic instead.
func EncodeSet[T comparable](out *wire.Output, s map[T]struct{}, encodeElem func(*wire.Output, T) error) error {
	if err := EncodeUint(out, uint(len(s))); err != nil {
		return &CollectionEncodeError[error, error]{BadLength: err, IsLength: true}
	}
	i := 0
	for v := range s {
		if err := encodeElem(out, v); err != nil {
			return &CollectionEncodeError[error, error]{BadItem: &ItemEncodeError[int, error]{Index: i, Err: err}}
		}
		i++
	}
	return nil
}

// DecodeSet reads a usize length prefix followed by that many members.
// A duplicate member silently collapses, exactly as inserting a duplicate
// into a HashSet would.
func DecodeSet[T comparable](in *wire.Input, decodeElem func(*wire.Input) (T, error)) (map[T]struct{}, error) {
	n, err := DecodeUint(in)
	if err != nil {
		return nil, &CollectionDecodeError[error, error]{BadLength: err, IsLength: true}
	}
	s := make(map[T]struct{}, n)
	for i := 0; i < int(n); i++ {
		v, err := decodeElem(in)
		if err != nil {
			return nil, &CollectionDecodeError[error, error]{BadItem: &ItemDecodeError[int, error]{Index: i, Err: err}}
		}
		s[v] = struct{}{}
	}
	return s, nil
}

// EncodeMap writes m as a usize length prefix followed by each (key, value)
// pair, in whatever order Go's map iteration yields. See EncodeSet for why
// that order is unspecified, and EncodeMapDeterministic for a stable
// alternative.
func EncodeMap[K comparable, V any](out *wire.Output, m map[K]V, encodeKey func(*wire.Output, K) error, encodeVal func(*wire.Output, V) error) error {
	if err := EncodeUint(out, uint(len(m))); err != nil {
		return &CollectionEncodeError[error, error]{BadLength: err, IsLength: true}
	}
	i := 0
	for k, v := range m {
		if err := encodeKey(out, k); err != nil {
			return &CollectionEncodeError[error, error]{BadItem: &ItemEncodeError[int, error]{Index: i, Err: err}}
		}
		if err := encodeVal(out, v); err != nil {
			return &CollectionEncodeError[error, error]{BadItem: &ItemEncodeError[int, error]{Index: i, Err: err}}
		}
		i++
	}
	return nil
}

// DecodeMap reads a usize length prefix followed by that many (key, value)
// pairs. A duplicate key overwrites its earlier value, exactly as inserting
// a duplicate key into a HashMap would.
func DecodeMap[K comparable, V any](in *wire.Input, decodeKey func(*wire.Input) (K, error), decodeVal func(*wire.Input) (V, error)) (map[K]V, error) {
	n, err := DecodeUint(in)
	if err != nil {
		return nil, &CollectionDecodeError[error, error]{BadLength: err, IsLength: true}
	}
	m := make(map[K]V, n)
	for i := 0; i < int(n); i++ {
		k, err := decodeKey(in)
		if err != nil {
			return nil, &CollectionDecodeError[error, error]{BadItem: &ItemDecodeError[int, error]{Index: i, Err: err}}
		}
		v, err := decodeVal(in)
		if err != nil {
			return nil, &CollectionDecodeError[error, error]{BadItem: &ItemDecodeError[int, error]{Index: i, Err: err}}
		}
		m[k] = v
	}
	return m, nil
}
