package form

import (
	"encoding/json"
	"strings"
)

// Payload is the sanitised data assembled on a successful submit. The
// password never leaves the controller.
type Payload struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// PayloadFromState trims the public fields of s; an empty phone becomes nil.
func PayloadFromState(s State) Payload {
	p := Payload{
		Name:  strings.TrimSpace(s.Name),
		Email: strings.TrimSpace(s.Email),
	}
	if phone := strings.TrimSpace(s.Phone); phone != "" {
		p.Phone = &phone
	}
	return p
}

// PhoneValue returns the phone number or "" when absent.
func (p Payload) PhoneValue() string {
	if p.Phone == nil {
		return ""
	}
	return *p.Phone
}

// Map converts the payload into the generic JSON value shape.
func (p Payload) Map() (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
