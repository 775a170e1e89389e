package router

import (
	"strings"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/google/uuid"

	"styleboard/internal/store"
	"styleboard/internal/style"
)

type contextKey string

const (
	sessionPresetKey   contextKey = "styleboard-preset"
	sessionMetadataKey contextKey = "styleboard-session"
)

// Descriptor names one middleware so startup logs and tests can assert the
// chain order.
type Descriptor struct {
	Name       string
	Middleware wish.Middleware
}

// SessionMetadata identifies one SSH preview session.
type SessionMetadata struct {
	ID         string
	RemoteAddr string
	User       string
}

// DefaultChain wires the startup middleware chain in order: rate limiting,
// preset routing from the SSH username, and session metadata.
func DefaultChain(limitPerMinute, burst int, table *store.Store) []Descriptor {
	return []Descriptor{
		{Name: "rate-limit", Middleware: RateLimitMiddleware(limitPerMinute, burst)},
		{Name: "preset-routing", Middleware: presetRouting(table)},
		{Name: "session-metadata", Middleware: sessionMetadata()},
	}
}

// MiddlewareFromDescriptors strips descriptor names for wish registration.
func MiddlewareFromDescriptors(chain []Descriptor) []wish.Middleware {
	out := make([]wish.Middleware, 0, len(chain))
	for _, descriptor := range chain {
		out = append(out, descriptor.Middleware)
	}
	return out
}

// presetRouting picks the preview preset from the SSH username, so
// `ssh bigdark@host` lands on the BigDark preset. Unknown usernames fall back
// to default_style.
func presetRouting(table *store.Store) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			name := style.DefaultStyle
			user := strings.ToLower(strings.TrimSpace(s.User()))
			for _, preset := range table.List() {
				if strings.ToLower(preset.Name) == user {
					name = preset.Name
					break
				}
			}
			s.Context().SetValue(sessionPresetKey, name)
			next(s)
		}
	}
}

func sessionMetadata() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			meta := SessionMetadata{
				ID:   uuid.NewString(),
				User: s.User(),
			}
			if remote := s.RemoteAddr(); remote != nil {
				meta.RemoteAddr = remote.String()
			}
			s.Context().SetValue(sessionMetadataKey, meta)
			next(s)
		}
	}
}

// PresetNameFromSession returns the preset selected by presetRouting, or
// default_style when the middleware did not run.
func PresetNameFromSession(s ssh.Session) string {
	if name, ok := s.Context().Value(sessionPresetKey).(string); ok && name != "" {
		return name
	}
	return style.DefaultStyle
}

// MetadataFromSession returns the metadata attached by sessionMetadata.
func MetadataFromSession(s ssh.Session) (SessionMetadata, bool) {
	meta, ok := s.Context().Value(sessionMetadataKey).(SessionMetadata)
	return meta, ok
}
