package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// StructuredLog is one machine readable event: a typed JSON payload plus
// optional metadata.
type StructuredLog struct {
	Time     time.Time       `json:"time"`
	Module   string          `json:"module"`
	MsgType  string          `json:"msg_type"`
	MsgJSON  json.RawMessage `json:"json_encoded"`
	Metadata *string         `json:"metadata,omitempty"`
	Elapsed  uint32          `json:"elapsed,omitempty"`
}

var fieldOrder = []string{"time", "module", "msg_type", "json_encoded", "metadata", "elapsed"}

// Custom JSON marshaling to preserve field order and omit zero/empty values.
func (l StructuredLog) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	writeField := func(key string, val []byte) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, `"%s":`, key)
		buf.Write(val)
	}
	for _, f := range fieldOrder {
		switch f {
		case "time":
			b, _ := json.Marshal(l.Time)
			writeField(f, b)
		case "module":
			b, _ := json.Marshal(l.Module)
			writeField(f, b)
		case "msg_type":
			b, _ := json.Marshal(l.MsgType)
			writeField(f, b)
		case "json_encoded":
			msg := l.MsgJSON
			if msg == nil {
				msg = json.RawMessage("null")
			}
			writeField(f, msg)
		case "metadata":
			if l.Metadata != nil {
				b, _ := json.Marshal(*l.Metadata)
				writeField(f, b)
			}
		case "elapsed":
			if l.Elapsed != 0 {
				b, _ := json.Marshal(l.Elapsed)
				writeField(f, b)
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Structured logs msg as JSON at debug level when module is enabled. The kv
// pairs "metadata" and "elapsed" (microseconds) fill the optional fields.
func Structured(module string, msgType string, msg interface{}, kv ...interface{}) {
	if !isModuleEnabled(module) {
		return
	}
	msgJSON, err := json.Marshal(msg)
	if err != nil {
		Error(module, "Structured: Failed to marshal msg", "msg_type", msgType, "err", err)
		return
	}

	sl := StructuredLog{
		Time:    time.Now().UTC(),
		Module:  module,
		MsgType: msgType,
		MsgJSON: msgJSON,
	}
	kvMap := toMap(kv...)
	if meta, ok := kvMap["metadata"]; ok && meta != nil {
		s := fmt.Sprint(meta)
		sl.Metadata = &s
	}
	if v, ok := kvMap["elapsed"]; ok {
		sl.Elapsed = parseUint32(v)
	}

	b, err := json.Marshal(sl)
	if err != nil {
		Error(module, "Structured: Failed to marshal record", "msg_type", msgType, "err", err)
		return
	}
	Root().Write(slog.LevelDebug, module, msgType, "json", string(b))
}

func toMap(kv ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}

func parseUint32(v interface{}) uint32 {
	switch t := v.(type) {
	case int:
		return uint32(t)
	case int64:
		return uint32(t)
	case float64:
		return uint32(t)
	case uint32:
		return t
	case uint64:
		return uint32(t)
	case time.Duration:
		return uint32(t.Microseconds())
	case string:
		if n, err := strconv.ParseUint(t, 10, 32); err == nil {
			return uint32(n)
		}
	}
	return 0
}
