/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package buffer

import (
	"bytes"
	"strconv"

	liberr "github.com/cpv-project/cpv-framework-sub001/errors"
)

// SharedString is a (pointer, length, shared-owner) view. The owner is nil
// for a static literal or a slice with no backing Buffer; otherwise it is
// the Buffer whose share-count keeps the bytes alive. Two SharedStrings
// compare equal iff their bytes are equal, regardless of owner.
type SharedString struct {
	data  []byte
	owner *Buffer
}

// FromString wraps a Go string with no owner. The caller is asserting the
// string's backing array outlives every use of the returned SharedString,
// which holds for string literals and anything else immutable for the
// program's lifetime.
func FromString(s string) SharedString {
	return SharedString{data: []byte(s)}
}

// FromBytes allocates one owning Buffer holding a copy of b and returns a
// SharedString view over its full range.
func FromBytes(b []byte) SharedString {
	buf := NewBuffer(b)
	buf.Share()
	return SharedString{data: buf.data, owner: buf}
}

// fromOwned returns a SharedString view of data[:], attributing ownership
// to owner without copying. owner must already hold a reference for this
// view (Share has been called).
func fromOwned(data []byte, owner *Buffer) SharedString {
	return SharedString{data: data, owner: owner}
}

// Empty reports whether the view has zero length.
func (s SharedString) Empty() bool {
	return len(s.data) == 0
}

// Len returns the number of bytes in the view.
func (s SharedString) Len() int {
	return len(s.data)
}

// Bytes returns the raw bytes of the view. The slice must not be retained
// past the lifetime of whatever keeps this SharedString's owner alive.
func (s SharedString) Bytes() []byte {
	return s.data
}

// String copies the view's bytes into a new Go string.
func (s SharedString) String() string {
	return string(s.data)
}

// Owner returns the Buffer backing this view, or nil if the view has no
// owner (a static literal or an unshared byte slice).
func (s SharedString) Owner() *Buffer {
	return s.owner
}

// Clone increments the owner's share-count (if any) and returns a new
// SharedString over the same bytes. It never copies the underlying data.
func (s SharedString) Clone() SharedString {
	if s.owner != nil {
		s.owner.Share()
	}
	return s
}

// Release drops the reference this view holds on its owner, if any. Call
// it exactly once per Clone/FromBytes-produced view when the view is done
// being used.
func (s SharedString) Release() {
	if s.owner != nil {
		s.owner.Release()
	}
}

// Slice returns a SharedString over data[low:high], sharing the same
// owner (and thus not copying bytes, and not itself taking an additional
// reference — it is a view derived from an existing live view, matching
// spec semantics that slicing produces a view over the same owner).
func (s SharedString) Slice(low, high int) SharedString {
	return SharedString{data: s.data[low:high], owner: s.owner}
}

// Equal reports whether two views hold identical bytes, independent of
// their owners.
func (s SharedString) Equal(o SharedString) bool {
	return bytes.Equal(s.data, o.data)
}

// EqualFold is a case-insensitive byte comparison, used throughout the
// HTTP parser for header name matching.
func (s SharedString) EqualFold(o SharedString) bool {
	return bytes.EqualFold(s.data, o.data)
}

// PointerIdentity returns an opaque value that is stable for as long as
// the view's backing array does not change identity. It is used by
// lazily-parsed caches (the request's URI and cookie jar) to detect when
// their source SharedString has been replaced and the cache must be
// invalidated, without comparing byte contents.
func (s SharedString) PointerIdentity() uintptr {
	if len(s.data) == 0 {
		return 0
	}
	return uintptr(unsafePointer(s.data))
}

// ParseInt parses the view as a base-10 signed integer. It fails with a
// ParseError on non-numeric input and performs no overflow bounds
// checking beyond what strconv.ParseInt itself enforces for the given bit
// size, per spec.
func (s SharedString) ParseInt() (int64, error) {
	v, err := strconv.ParseInt(s.String(), 10, 64)
	if err != nil {
		return 0, liberr.ParseError.Error(err)
	}
	return v, nil
}

// ParseUint parses the view as a base-10 unsigned integer. Same error
// behavior as ParseInt.
func (s SharedString) ParseUint() (uint64, error) {
	v, err := strconv.ParseUint(s.String(), 10, 64)
	if err != nil {
		return 0, liberr.ParseError.Error(err)
	}
	return v, nil
}

// ParseFloat parses the view as a 64-bit float. Same error behavior as
// ParseInt.
func (s SharedString) ParseFloat() (float64, error) {
	v, err := strconv.ParseFloat(s.String(), 64)
	if err != nil {
		return 0, liberr.ParseError.Error(err)
	}
	return v, nil
}
