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

// Package logger provides the leveled, structured logging collaborator
// consumed by the rest of this module. It wraps logrus the way the
// upstream library this package is adapted from does, trimmed to a
// single hook surface (stderr by default, optional rotated file via
// hookfile.go).
package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// FuncLog returns a Logger instance; used for lazy/deferred wiring into
// components that are constructed before the logger itself is ready.
type FuncLog func() Logger

// Logger is the leveled logger interface consumed by every other package in
// this module. Kept intentionally small: the backend (hooks, formatting,
// rotation) is this package's concern alone.
type Logger interface {
	SetLevel(lvl Level)
	GetLevel() Level

	Debug(message string, data interface{}, args ...interface{})
	Info(message string, data interface{}, args ...interface{})
	Notice(message string, data interface{}, args ...interface{})
	Warning(message string, data interface{}, args ...interface{})
	Error(message string, data interface{}, args ...interface{})
	Critical(message string, data interface{}, args ...interface{})
	Alert(message string, data interface{}, args ...interface{})
	Emergency(message string, data interface{}, args ...interface{})

	// Entry returns a mutable Entry for callers that need to attach fields
	// or multiple errors before logging (e.g. the 500-handler).
	Entry(lvl Level, message string, args ...interface{}) *Entry

	// CheckError logs err at lvlKO if non-nil, else at lvlOK if lvlOK is
	// not NilLevel. Returns whether an error was present.
	CheckError(lvlKO, lvlOK Level, message string, err ...error) bool

	SetFields(f Fields)
	GetFields() Fields

	// AddFileHook enables rotated file output in addition to stderr.
	AddFileHook(cfg FileConfig) error
}

type lgr struct {
	mu  sync.RWMutex
	lvl Level
	log *logrus.Logger
	fld Fields
}

// New returns a Logger writing to stderr at InfoLevel.
func New() Logger {
	l := &lgr{
		log: logrus.New(),
		fld: NewFields(),
	}
	l.SetLevel(InfoLevel)
	return l
}

func (l *lgr) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lvl = lvl
	l.log.SetLevel(lvl.Logrus())
}

func (l *lgr) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lvl
}

func (l *lgr) SetFields(f Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fld = f
}

func (l *lgr) GetFields() Fields {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fld
}

func (l *lgr) logger() *logrus.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.log
}

func (l *lgr) Entry(lvl Level, message string, args ...interface{}) *Entry {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &Entry{
		log:     l.logger,
		Time:    time.Now(),
		Level:   lvl,
		Message: message,
		Fields:  l.GetFields(),
	}
}

func (l *lgr) emit(lvl Level, message string, data interface{}, args ...interface{}) {
	e := l.Entry(lvl, message, args...)
	e.Data = data
	e.Log()
}

func (l *lgr) Debug(message string, data interface{}, args ...interface{}) {
	l.emit(DebugLevel, message, data, args...)
}

func (l *lgr) Info(message string, data interface{}, args ...interface{}) {
	l.emit(InfoLevel, message, data, args...)
}

func (l *lgr) Notice(message string, data interface{}, args ...interface{}) {
	l.emit(NoticeLevel, message, data, args...)
}

func (l *lgr) Warning(message string, data interface{}, args ...interface{}) {
	l.emit(WarningLevel, message, data, args...)
}

func (l *lgr) Error(message string, data interface{}, args ...interface{}) {
	l.emit(ErrorLevel, message, data, args...)
}

func (l *lgr) Critical(message string, data interface{}, args ...interface{}) {
	l.emit(CriticalLevel, message, data, args...)
}

func (l *lgr) Alert(message string, data interface{}, args ...interface{}) {
	l.emit(AlertLevel, message, data, args...)
}

func (l *lgr) Emergency(message string, data interface{}, args ...interface{}) {
	l.emit(EmergencyLevel, message, data, args...)
}

func (l *lgr) CheckError(lvlKO, lvlOK Level, message string, err ...error) bool {
	var found []error
	for _, e := range err {
		if e != nil {
			found = append(found, e)
		}
	}

	if len(found) == 0 {
		if lvlOK != NilLevel {
			l.Entry(lvlOK, message).Log()
		}
		return false
	}

	l.Entry(lvlKO, message).ErrorAdd(true, found...).Log()
	return true
}
