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

package pipeline

import (
	"strings"

	"github.com/cpv-project/cpv-framework-sub001/message"
)

// ParamKind is the closed set of places a handler parameter can be
// resolved from.
type ParamKind int

const (
	ParamPathFragment ParamKind = iota
	ParamQuery
	ParamHeader
	ParamForm
)

// Param is a strongly-typed parameter descriptor: one of
// PathFragment(index), Query(name), Header(name), or Form(name).
type Param struct {
	Kind  ParamKind
	Name  string
	Index int
}

// PathFragment addresses the i-th '/'-separated segment of the request
// path (0-based, leading/trailing slashes ignored).
func PathFragment(i int) Param {
	return Param{Kind: ParamPathFragment, Index: i}
}

// Query addresses a query-string parameter by name.
func Query(name string) Param {
	return Param{Kind: ParamQuery, Name: name}
}

// Header addresses a request header by name.
func Header(name string) Param {
	return Param{Kind: ParamHeader, Name: name}
}

// Form addresses an application/x-www-form-urlencoded body parameter by
// name. body must already hold the fully-read request body.
func Form(name string) Param {
	return Param{Kind: ParamForm, Name: name}
}

// Resolve looks up p against req (and, for Form, the already-read body),
// returning the empty string if absent.
func (p Param) Resolve(req *message.Request, body string) string {
	switch p.Kind {
	case ParamPathFragment:
		frags := pathFragments(req.ParsedURI().Path)
		if p.Index < 0 || p.Index >= len(frags) {
			return ""
		}
		return frags[p.Index]
	case ParamQuery:
		return req.ParsedURI().Get(p.Name)
	case ParamHeader:
		return req.Headers.Get(p.Name).String()
	case ParamForm:
		return message.Form(body, p.Name)
	default:
		return ""
	}
}

func pathFragments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
