package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidToken is returned by Decode for tokens it did not produce.
var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor is the opaque pagination state we encode/decode.
// ProfileID + UpdatedNano establish a stable keyset position. The timestamp
// keeps full precision: the keyset predicate compares it for equality with
// the stored column, so any rounding skips rows.
type Cursor struct {
	ProfileID   string `json:"profile_id"`
	UpdatedNano int64  `json:"updated_nano,omitempty"`
}

// After builds the cursor pointing just past the given row.
func After(profileID string, updatedAt time.Time) Cursor {
	return Cursor{ProfileID: profileID, UpdatedNano: updatedAt.UnixNano()}
}

// IsZero reports whether the cursor denotes the first page.
func (c Cursor) IsZero() bool {
	return c.ProfileID == "" || c.UpdatedNano <= 0
}

// Time returns the keyset timestamp.
func (c Cursor) Time() time.Time {
	return time.Unix(0, c.UpdatedNano).UTC()
}

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, ErrInvalidToken
	}
	return c, nil
}
