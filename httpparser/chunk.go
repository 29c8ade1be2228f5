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

package httpparser

import (
	"bytes"
	"strconv"
	"strings"
)

type chunkState int

const (
	chunkStateSize chunkState = iota
	chunkStateData
	chunkStateDataCRLF
	chunkStateTrailer
	chunkStateDone
)

// maxChunkSizeLine bounds how many bytes of a chunk-size line (plus
// extensions) the decoder accumulates before giving up, guarding against
// a client that never sends the terminating LF.
const maxChunkSizeLine = 256

// ChunkDecoder decodes "chunked" transfer-encoded bodies incrementally:
// repeating <hex-size>\r\n<bytes>\r\n until a zero-size chunk, with
// trailer header lines (if any) ignored. It is independent of Parser
// because it runs after headers are complete, over bytes read well
// after HeadersDone, and resumes across partial reads the same way.
type ChunkDecoder struct {
	state     chunkState
	remaining int64
	sizeLine  []byte
}

// NewChunkDecoder returns a decoder positioned at the start of the first
// chunk's size line.
func NewChunkDecoder() *ChunkDecoder {
	return &ChunkDecoder{state: chunkStateSize}
}

// Done reports whether the terminal zero-size chunk (and its trailer
// section) has been fully consumed.
func (d *ChunkDecoder) Done() bool {
	return d.state == chunkStateDone
}

// Decode consumes as much of data as forms complete chunk framing,
// calling emit with each span of decoded payload bytes (views into data;
// callers that need to retain them past this call must copy). It
// returns the number of bytes of data consumed and whether the terminal
// chunk was reached.
func (d *ChunkDecoder) Decode(data []byte, emit func([]byte)) (consumed int, done bool, err error) {
	i := 0
	for i < len(data) {
		switch d.state {
		case chunkStateSize:
			nl := bytes.IndexByte(data[i:], '\n')
			if nl < 0 {
				d.sizeLine = append(d.sizeLine, data[i:]...)
				i = len(data)
				if len(d.sizeLine) > maxChunkSizeLine {
					return i, false, errInvalidChunkSize()
				}
				continue
			}
			line := append(d.sizeLine, data[i:i+nl]...)
			d.sizeLine = nil
			i += nl + 1

			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			if semi := bytes.IndexByte(line, ';'); semi >= 0 {
				line = line[:semi]
			}
			size, perr := strconv.ParseInt(strings.TrimSpace(string(line)), 16, 64)
			if perr != nil || size < 0 {
				return i, false, errInvalidChunkSize()
			}
			d.remaining = size
			if size == 0 {
				d.state = chunkStateTrailer
			} else {
				d.state = chunkStateData
			}

		case chunkStateData:
			n := int64(len(data) - i)
			if n > d.remaining {
				n = d.remaining
			}
			if n > 0 {
				emit(data[i : i+int(n)])
				i += int(n)
				d.remaining -= n
			}
			if d.remaining == 0 {
				d.state = chunkStateDataCRLF
			} else {
				return i, false, nil
			}

		case chunkStateDataCRLF:
			nl := bytes.IndexByte(data[i:], '\n')
			if nl < 0 {
				return len(data), false, nil
			}
			i += nl + 1
			d.state = chunkStateSize

		case chunkStateTrailer:
			nl := bytes.IndexByte(data[i:], '\n')
			if nl < 0 {
				return len(data), false, nil
			}
			line := data[i : i+nl]
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			i += nl + 1
			if len(line) == 0 {
				d.state = chunkStateDone
				return i, true, nil
			}
			// Otherwise it is a trailer header line; ignored per spec.

		case chunkStateDone:
			return i, true, nil
		}
	}
	return i, d.state == chunkStateDone, nil
}
