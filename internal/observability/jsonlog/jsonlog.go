package jsonlog

import (
	"encoding/json"
	"io"
	"log"
	"maps"
	"time"
)

type Fields map[string]any

// Logger writes one JSON object per line: ts, level, msg, then the fields.
type Logger struct {
	base   *log.Logger
	fields Fields
	now    func() time.Time
}

func New(w io.Writer) *Logger {
	return &Logger{
		base: log.New(w, "", 0),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// With returns a child logger that adds fields to every record.
func (l *Logger) With(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	maps.Copy(merged, l.fields)
	maps.Copy(merged, fields)
	return &Logger{base: l.base, fields: merged, now: l.now}
}

func (l *Logger) Info(msg string, fields Fields) {
	l.emit("INFO", msg, fields)
}

func (l *Logger) Warn(msg string, fields Fields) {
	l.emit("WARN", msg, fields)
}

func (l *Logger) Error(msg string, fields Fields) {
	l.emit("ERROR", msg, fields)
}

func (l *Logger) emit(level, msg string, fields Fields) {
	m := make(map[string]any, 3+len(l.fields)+len(fields))
	maps.Copy(m, l.fields)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		m[k] = v
	}
	m["ts"] = l.now().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg

	b, err := json.Marshal(m)
	if err != nil {
		b, _ = json.Marshal(map[string]any{"level": "ERROR", "msg": "log marshal failed", "err": err.Error()})
	}
	l.base.Print(string(b))
}
