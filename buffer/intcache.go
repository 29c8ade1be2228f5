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

import "strconv"

// MaxConstantInteger bounds the shared static table FormatInt draws from.
// Most integer header values on this hot path (Content-Length of small
// bodies, status-adjacent counters) fall well under it; values above it
// fall back to an allocating strconv.Itoa.
const MaxConstantInteger = 999

var constantIntegers = buildConstantIntegers()

func buildConstantIntegers() [MaxConstantInteger + 1]string {
	var t [MaxConstantInteger + 1]string
	for i := range t {
		t[i] = strconv.Itoa(i)
	}
	return t
}

// FormatInt renders n as its decimal digits, reusing the shared static
// table for 0 <= n <= MaxConstantInteger and allocating via strconv.Itoa
// above that bound.
func FormatInt(n int) string {
	if n >= 0 && n <= MaxConstantInteger {
		return constantIntegers[n]
	}
	return strconv.Itoa(n)
}
