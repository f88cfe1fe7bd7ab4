package codec

import (
	"sync"

	"github.com/shaban/bytewire/wire"
)

// Box, Rc and Arc are all wire-transparent: Rust's heap/refcount wrappers
// add no bytes of their own, so a field of any of these types encodes and
// decodes exactly as its inner T would. EncodeBox/DecodeBox (and the Rc/Arc
// aliases below) exist only so generated code has a name to call for a
// boxed field without inlining the inner call itself.
func EncodeBox[T any](out *wire.Output, v T, encodeVal func(*wire.Output, T) error) error {
	return encodeVal(out, v)
}

// DecodeBox is the Box decode counterpart of EncodeBox.
func DecodeBox[T any](in *wire.Input, decodeVal func(*wire.Input) (T, error)) (T, error) {
	return decodeVal(in)
}

// EncodeRc is an alias of EncodeBox: Rc<T> shares Box<T>'s wire form.
func EncodeRc[T any](out *wire.Output, v T, encodeVal func(*wire.Output, T) error) error {
	return encodeVal(out, v)
}

// DecodeRc is an alias of DecodeBox: Rc<T> shares Box<T>'s wire form.
func DecodeRc[T any](in *wire.Input, decodeVal func(*wire.Input) (T, error)) (T, error) {
	return decodeVal(in)
}

// EncodeArc is an alias of EncodeBox: Arc<T> shares Box<T>'s wire form.
func EncodeArc[T any](out *wire.Output, v T, encodeVal func(*wire.Output, T) error) error {
	return encodeVal(out, v)
}

// DecodeArc is an alias of DecodeBox: Arc<T> shares Box<T>'s wire form.
func DecodeArc[T any](in *wire.Input, decodeVal func(*wire.Input) (T, error)) (T, error) {
	return decodeVal(in)
}

// EncodeCow writes either the borrowed or the owned form of a Cow[B], using
// owned's own Encode when present and borrowed's otherwise. Decode always
// produces the owned form, so Cow round-trips as B's owned representation
// regardless of which side originally encoded it.
func EncodeCow[B any](out *wire.Output, owned B, isOwned bool, borrowed B, encodeVal func(*wire.Output, B) error) error {
	if isOwned {
		return encodeVal(out, owned)
	}
	return encodeVal(out, borrowed)
}

// DecodeCow decodes the owned form O, which must know how to Borrow() into B.
func DecodeCow[B any, O DecodeBorrowed[B]](in *wire.Input, decodeOwned func(*wire.Input) (O, error)) (O, error) {
	return decodeOwned(in)
}

// Cell is the wire-transparent analogue of Rust's Cell<T>: Go has no
// aliasing rules to protect against, so Cell here is just a plain T with no
// synchronization at all.
type Cell[T any] struct {
	v T
}

// NewCell wraps v.
func NewCell[T any](v T) *Cell[T] { return &Cell[T]{v: v} }

// Get returns the current value.
func (c *Cell[T]) Get() T { return c.v }

// Set replaces the current value.
func (c *Cell[T]) Set(v T) { c.v = v }

// Encode writes the current value.
func (c *Cell[T]) Encode(out *wire.Output, encodeVal func(*wire.Output, T) error) error {
	return encodeVal(out, c.v)
}

// Decode reads a value into the cell.
func (c *Cell[T]) Decode(in *wire.Input, decodeVal func(*wire.Input) (T, error)) error {
	v, err := decodeVal(in)
	if err != nil {
		return err
	}
	c.v = v
	return nil
}

// Guarded is the Go rendering of Rust's RefCell<T>: runtime-checked
// interior mutability. Rust's RefCell panics on a conflicting borrow;
// Guarded instead uses a non-blocking try-lock so that Encode can report
// RefCellEncodeError.BadBorrow rather than panicking the caller. Guarded
// has no Decode method.
type Guarded[T any] struct {
	mu sync.Mutex
	v  T
}

// NewGuarded wraps v.
func NewGuarded[T any](v T) *Guarded[T] { return &Guarded[T]{v: v} }

// Encode acquires the guard, encodes the inner value, and releases it. If
// the guard is already held by a concurrent caller, it returns
// RefCellEncodeError in its BadBorrow state instead of blocking.
func (g *Guarded[T]) Encode(out *wire.Output, encodeVal func(*wire.Output, T) error) error {
	if !g.mu.TryLock() {
		return &RefCellEncodeError[error]{Kind: RefCellBadBorrow, BadBorrow: errAlreadyBorrowed}
	}
	defer g.mu.Unlock()
	if err := encodeVal(out, g.v); err != nil {
		return &RefCellEncodeError[error]{Kind: RefCellBadValue, BadValue: err}
	}
	return nil
}

var errAlreadyBorrowed = &guardedBorrowError{}

type guardedBorrowError struct{}

func (*guardedBorrowError) Error() string { return "already borrowed" }

// Mutex is the wire rendering of Rust's std::sync::Mutex<T>. Rust poisons a
// Mutex when a holder panics mid-access; Go's sync.Mutex has no such
// concept, so Encode instead recovers from a panic raised by encodeVal and
// reports it as RefCellEncodeError.BadValue, the closest analogue available.
type Mutex[T any] struct {
	mu sync.Mutex
	v  T
}

// NewMutex wraps v.
func NewMutex[T any](v T) *Mutex[T] { return &Mutex[T]{v: v} }

// Encode locks the mutex, encodes the inner value (recovering from any
// panic raised while doing so), and unlocks.
func (m *Mutex[T]) Encode(out *wire.Output, encodeVal func(*wire.Output, T) error) (encErr error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			encErr = &RefCellEncodeError[error]{Kind: RefCellBadValue, BadValue: panicToError(r)}
		}
	}()
	if err := encodeVal(out, m.v); err != nil {
		return &RefCellEncodeError[error]{Kind: RefCellBadValue, BadValue: err}
	}
	return nil
}

// Decode locks the mutex and decodes a new inner value.
func (m *Mutex[T]) Decode(in *wire.Input, decodeVal func(*wire.Input) (T, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, err := decodeVal(in)
	if err != nil {
		return err
	}
	m.v = v
	return nil
}

// RWMutex is the wire rendering of Rust's std::sync::RwLock<T>, taking a
// read lock for Encode and a write lock for Decode.
type RWMutex[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewRWMutex wraps v.
func NewRWMutex[T any](v T) *RWMutex[T] { return &RWMutex[T]{v: v} }

// Encode takes a read lock, encodes the inner value (recovering from any
// panic raised while doing so), and releases the lock.
func (m *RWMutex[T]) Encode(out *wire.Output, encodeVal func(*wire.Output, T) error) (encErr error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	defer func() {
		if r := recover(); r != nil {
			encErr = &RefCellEncodeError[error]{Kind: RefCellBadValue, BadValue: panicToError(r)}
		}
	}()
	if err := encodeVal(out, m.v); err != nil {
		return &RefCellEncodeError[error]{Kind: RefCellBadValue, BadValue: err}
	}
	return nil
}

// Decode takes a write lock and decodes a new inner value.
func (m *RWMutex[T]) Decode(in *wire.Input, decodeVal func(*wire.Input) (T, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, err := decodeVal(in)
	if err != nil {
		return err
	}
	m.v = v
	return nil
}

func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &panicValueError{v: r}
}

type panicValueError struct{ v any }

func (e *panicValueError) Error() string { return "panic during encode" }

// LazyCell is the wire rendering of Rust's LazyCell<T>: a value computed at
// most once, on first access. Encode forces initialization before writing.
type LazyCell[T any] struct {
	once sync.Once
	init func() T
	v    T
}

// NewLazyCell returns a LazyCell that computes its value with init on first
// use.
func NewLazyCell[T any](init func() T) *LazyCell[T] {
	return &LazyCell[T]{init: init}
}

// Get forces initialization if needed and returns the value.
func (l *LazyCell[T]) Get() T {
	l.once.Do(func() { l.v = l.init() })
	return l.v
}

// Encode forces initialization and writes the resulting value.
func (l *LazyCell[T]) Encode(out *wire.Output, encodeVal func(*wire.Output, T) error) error {
	return encodeVal(out, l.Get())
}

// LazyLock is the thread-safe analogue of LazyCell (mirroring Rust's
// LazyLock<T> over LazyCell<T>); in Go both reduce to sync.Once, so
// LazyLock is simply an alias.
type LazyLock[T any] = LazyCell[T]

// NewLazyLock returns a LazyLock that computes its value with init on
// first use.
func NewLazyLock[T any](init func() T) *LazyLock[T] {
	return NewLazyCell(init)
}

// Wrapping is the wire-transparent analogue of Rust's Wrapping<T>: its
// arithmetic wraps on overflow, but its wire form is identical to the bare
// integer it wraps.
type Wrapping[T Integer] struct {
	V T
}

// Encode writes the wrapped value using its underlying integer wire form.
func (w Wrapping[T]) Encode(out *wire.Output) error { return EncodeInteger(out, w.V) }

// Decode reads an integer into the wrapper.
func (w *Wrapping[T]) Decode(in *wire.Input) error {
	v, err := DecodeInteger[T](in)
	if err != nil {
		return err
	}
	w.V = v
	return nil
}

// Saturating is the wire-transparent analogue of Rust's Saturating<T>: its
// arithmetic clamps at the type's bounds, but its wire form is identical to
// the bare integer it wraps.
type Saturating[T Integer] struct {
	V T
}

// Encode writes the wrapped value using its underlying integer wire form.
func (s Saturating[T]) Encode(out *wire.Output) error { return EncodeInteger(out, s.V) }

// Decode reads an integer into the wrapper.
func (s *Saturating[T]) Decode(in *wire.Input) error {
	v, err := DecodeInteger[T](in)
	if err != nil {
		return err
	}
	s.V = v
	return nil
}
