package mention

import (
	"context"
	"log/slog"
)

// Candidate is a member that can be mentioned.
type Candidate struct {
	Name        string // stable identifier
	DisplayName string
}

// Query is a candidate lookup.
type Query struct {
	SearchKey string
}

// Provider looks up candidates. It is called at most once per debounce
// window; a call whose result is no longer wanted has its context cancelled.
type Provider interface {
	QueryMembers(ctx context.Context, q Query) ([]Candidate, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, q Query) ([]Candidate, error)

func (f ProviderFunc) QueryMembers(ctx context.Context, q Query) ([]Candidate, error) {
	return f(ctx, q)
}

// Notice is a non-fatal, user-facing message.
type Notice struct {
	Level   slog.Level
	Message string
	Err     error
}

// NoticeMsg delivers a Notice to the host program.
type NoticeMsg struct {
	Notice Notice
}
