package models

// Error is the backend's error payload. Some endpoints use "message" and
// some use "error"; Text returns whichever is set.
type Error struct {
	Message string `json:"message,omitempty"`
	Err     string `json:"error,omitempty"`
}

func (e Error) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err
}

type Message struct {
	Message string `json:"message"`
}
