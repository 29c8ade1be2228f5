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

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is the RFC5424 severity scale, lowest value is most severe.
type Level uint8

const (
	EmergencyLevel Level = iota
	AlertLevel
	CriticalLevel
	ErrorLevel
	WarningLevel
	NoticeLevel
	InfoLevel
	DebugLevel
	// NilLevel disables logging for the entry; it cannot be used in SetLogLevel.
	NilLevel
)

// GetLevelListString returns the lowercase name of every usable level, emergency first.
func GetLevelListString() []string {
	return []string{
		strings.ToLower(EmergencyLevel.String()),
		strings.ToLower(AlertLevel.String()),
		strings.ToLower(CriticalLevel.String()),
		strings.ToLower(ErrorLevel.String()),
		strings.ToLower(WarningLevel.String()),
		strings.ToLower(NoticeLevel.String()),
		strings.ToLower(InfoLevel.String()),
		strings.ToLower(DebugLevel.String()),
	}
}

// GetLevelString maps a config string onto a Level, defaulting to InfoLevel when unmatched.
func GetLevelString(l string) Level {
	l = strings.ToLower(strings.TrimSpace(l))

	for _, lvl := range []Level{EmergencyLevel, AlertLevel, CriticalLevel, ErrorLevel, WarningLevel, NoticeLevel, InfoLevel, DebugLevel} {
		if strings.ToLower(lvl.String()) == l {
			return lvl
		}
	}

	return InfoLevel
}

// Uint8 returns the numeric severity, emergency=0 through debug=7.
func (l Level) Uint8() uint8 {
	return uint8(l)
}

func (l Level) String() string {
	//nolint exhaustive
	switch l {
	case EmergencyLevel:
		return "Emergency"
	case AlertLevel:
		return "Alert"
	case CriticalLevel:
		return "Critical"
	case ErrorLevel:
		return "Error"
	case WarningLevel:
		return "Warning"
	case NoticeLevel:
		return "Notice"
	case InfoLevel:
		return "Info"
	case DebugLevel:
		return "Debug"
	case NilLevel:
		return ""
	}

	return "unknown"
}

// Logrus maps the RFC5424 level onto the nearest logrus level; logrus has no
// Notice bucket, so Notice is folded into Info rather than silently dropped.
func (l Level) Logrus() logrus.Level {
	switch l {
	case EmergencyLevel:
		return logrus.PanicLevel
	case AlertLevel, CriticalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarningLevel:
		return logrus.WarnLevel
	case NoticeLevel, InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}
