// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the remote interface and the CLI drive
// the application. Every request carries the caller's resolved user ID; rows
// owned by anyone else behave as if they do not exist.
package primary

// DeleteRequest identifies a row to delete on behalf of its owner.
type DeleteRequest struct {
	ID     int64
	UserID string
}

// DeleteResponse reports whether a row was actually removed.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// OptionalText is a nullable text field in an update request.
// Set=false leaves the field unchanged; Set=true with a nil Value clears it.
type OptionalText struct {
	Set   bool
	Value *string
}

// SetText returns an OptionalText that stores s.
func SetText(s string) OptionalText {
	return OptionalText{Set: true, Value: &s}
}

// ClearText returns an OptionalText that stores NULL.
func ClearText() OptionalText {
	return OptionalText{Set: true}
}
