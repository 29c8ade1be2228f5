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

package reusable

import (
	"reflect"

	liberr "github.com/cpv-project/cpv-framework-sub001/errors"
)

// InvalidCastCode is the error code a failed Cast returns, either because
// the erased value isn't of the requested type at all, or because its
// address moved across the erase/cast boundary (the Go stand-in for the
// multiple-inheritance offset check the spec describes: Go has no
// multiple inheritance, so in practice this only ever fires on a type
// mismatch, but the identity check is kept to mirror the contract).
const InvalidCastCode liberr.CodeError = liberr.MinPkgReusable

func init() {
	liberr.RegisterIdFctMessage(InvalidCastCode, func(code liberr.CodeError) string {
		if code == InvalidCastCode {
			return "invalid cast: address identity mismatch after type assertion"
		}
		return liberr.UnknownMessage
	})
}

// Erased is a type-erased handle value: a Reusable stored as any, plus
// the address it was erased from so a later Cast can verify identity.
type Erased struct {
	value any
	addr  uintptr
}

// Erase upcasts h's value to Erased, recording its address for the
// identity check a later Cast performs.
func Erase[T Reusable](h *Handle[T]) Erased {
	return Erased{value: h.value, addr: addressOf(h.value)}
}

// Cast downcasts e back to T, verifying both that the stored value
// actually is a T and that its address is unchanged from the one
// recorded at Erase time. It fails with InvalidCastCode on either
// mismatch.
func Cast[T Reusable](e Erased) (T, error) {
	var zero T

	v, ok := e.value.(T)
	if !ok {
		return zero, InvalidCastCode.Error(nil)
	}

	if addressOf(v) != e.addr {
		return zero, InvalidCastCode.Error(nil)
	}

	return v, nil
}

// addressOf returns the pointer address backing v if v holds a pointer,
// or zero otherwise (a value-receiver Reusable has no stable address to
// check, so the identity guard is a no-op for those).
func addressOf(v any) uintptr {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		return rv.Pointer()
	}
	return 0
}
