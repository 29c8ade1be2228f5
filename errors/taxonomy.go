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

package errors

// Cross-cutting error categories shared by every package in this module.
// These sit below MinPkgBuffer (100) so they never collide with a
// per-package code range.
const (
	ProtocolError CodeError = iota + 1
	IoError
	HandlerError
	LogicError
	OverflowError
	LengthError
	FormatError
	NotImplementedError
	FileSystemError
	ParseError
)

func init() {
	RegisterIdFctMessage(ProtocolError, taxonomyMessage)
}

func taxonomyMessage(code CodeError) string {
	switch code {
	case ProtocolError:
		return "protocol error"
	case IoError:
		return "i/o error"
	case HandlerError:
		return "handler error"
	case LogicError:
		return "logic error"
	case OverflowError:
		return "overflow"
	case LengthError:
		return "length error"
	case FormatError:
		return "format error"
	case NotImplementedError:
		return "not implemented"
	case FileSystemError:
		return "filesystem error"
	case ParseError:
		return "parse error"
	default:
		return UnknownMessage
	}
}
