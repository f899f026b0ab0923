// Package models defines data structures used throughout the application.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Channel is the transport a conversation or send travels over.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
	ChannelVoice Channel = "voice"
)

// Valid reports whether c is one of the supported channels.
func (c Channel) Valid() bool {
	switch c {
	case ChannelSMS, ChannelEmail, ChannelVoice:
		return true
	}
	return false
}

// Vars holds merge variables. Stored as JSONB.
type Vars map[string]any

// Value implements driver.Valuer.
func (v Vars) Value() (driver.Value, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner.
func (v *Vars) Scan(src any) error {
	var data []byte
	switch s := src.(type) {
	case nil:
		*v = Vars{}
		return nil
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("unsupported vars source type %T", src)
	}

	out := Vars{}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode vars: %w", err)
	}
	*v = out
	return nil
}

// Merge returns a copy of v overlaid with override. Keys in override win.
func (v Vars) Merge(override Vars) Vars {
	out := make(Vars, len(v)+len(override))
	for k, val := range v {
		out[k] = val
	}
	for k, val := range override {
		out[k] = val
	}
	return out
}
