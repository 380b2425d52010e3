package notice

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notice is a transient message shown to the user. A zero ExpiresAt means the
// notice is dismissed by the page itself.
type Notice struct {
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func Success(msg string) Notice {
	return Notice{Kind: KindSuccess, Message: msg}
}

func Error(msg string) Notice {
	return Notice{Kind: KindError, Message: msg}
}

func Info(msg string) Notice {
	return Notice{Kind: KindInfo, Message: msg}
}

func (n Notice) Until(t time.Time) Notice {
	n.ExpiresAt = t
	return n
}

func (n Notice) Visible(now time.Time) bool {
	if n.Message == "" {
		return false
	}
	return n.ExpiresAt.IsZero() || now.Before(n.ExpiresAt)
}

func (n Notice) RemainingMillis(now time.Time) int64 {
	if n.ExpiresAt.IsZero() || !now.Before(n.ExpiresAt) {
		return 0
	}
	return n.ExpiresAt.Sub(now).Milliseconds()
}

// Shorten caps the message at n runes.
func (n Notice) Shorten(limit int) Notice {
	n.Message = TruncateText(n.Message, limit)
	return n
}

// TruncateText keeps at most n runes of s, never splitting a character, and
// marks the cut with an ellipsis.
func TruncateText(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
