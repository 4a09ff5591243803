package rpc

import (
	"bytes"
	"encoding/json"

	"github.com/example/dayboard/internal/ports/primary"
)

// NullableString distinguishes an absent field from an explicit null.
// Absent leaves Set false; null sets Set with a nil Value.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked when the key is present.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// MarshalJSON encodes the value, or null when unset.
func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n NullableString) optional() primary.OptionalText {
	return primary.OptionalText{Set: n.Set, Value: n.Value}
}
