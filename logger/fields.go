/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package logger

import "github.com/sirupsen/logrus"

// Fields carries custom key/value pairs attached to a log Entry.
type Fields map[string]interface{}

func NewFields() Fields {
	return make(Fields)
}

func (f Fields) Add(key string, val interface{}) Fields {
	if f == nil {
		f = NewFields()
	}
	f[key] = val
	return f
}

func (f Fields) Merge(o Fields) Fields {
	if f == nil {
		f = NewFields()
	}
	for k, v := range o {
		f[k] = v
	}
	return f
}

func (f Fields) Clean(keys ...string) Fields {
	if len(keys) == 0 {
		return NewFields()
	}
	for _, k := range keys {
		delete(f, k)
	}
	return f
}

func (f Fields) Logrus() logrus.Fields {
	out := make(logrus.Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
