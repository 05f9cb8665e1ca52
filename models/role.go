package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidMessageRole is returned when a chat message carries a role other
// than "user" or "assistant".
var ErrInvalidMessageRole = errors.New("invalid message role")

// MessageRole is the author of a chat message. It is a closed set: only
// [RoleUser] and [RoleAssistant] can be encoded or decoded.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r MessageRole) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

func (r MessageRole) String() string {
	return string(r)
}

// ParseMessageRole converts s to a [MessageRole].
func ParseMessageRole(s string) (MessageRole, error) {
	r := MessageRole(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMessageRole, s)
	}
	return r, nil
}

func (r MessageRole) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMessageRole, string(r))
	}
	return json.Marshal(string(r))
}

func (r *MessageRole) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMessageRole, string(b))
	}

	parsed, err := ParseMessageRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
