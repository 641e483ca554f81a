package server

import (
	"encoding/json"
	"io"
	"time"
)

// eventLog writes lifecycle events as JSON lines, in the same shape as the
// access log and the tracing setup messages.
type eventLog struct {
	w   io.Writer
	loc *time.Location
}

func (l *eventLog) info(msg string, fields map[string]any) {
	l.write("info", msg, fields)
}

func (l *eventLog) failure(msg string, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	l.write("error", msg, fields)
}

func (l *eventLog) write(level, msg string, fields map[string]any) {
	entry := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		entry[k] = v
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	entry["level"] = level
	entry["msg"] = msg

	if b, err := json.Marshal(entry); err == nil {
		_, _ = l.w.Write(append(b, '\n'))
	}
}
