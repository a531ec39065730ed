// Package session issues anonymous per-browser tokens that scope ratings and downloads.
// Tokens are identifiers, not credentials.
package session

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	prefix    = "user_"
	maxLength = 64
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

type Store interface {
	Get() (string, error)
	Set(id string) error
}

type Provider struct {
	store Store
	newID func() string
}

func NewProvider(store Store) *Provider {
	return &Provider{store: store, newID: NewID}
}

// GetOrCreate returns the persisted token, creating it on first use. It never fails: when the
// store is unusable an ephemeral token is returned instead.
func (p *Provider) GetOrCreate() string {
	id, err := p.store.Get()
	if err != nil {
		zap.L().Warn("session store unavailable, using ephemeral session", zap.Error(err))
		return p.newID()
	}
	if Valid(id) {
		return id
	}

	id = p.newID()
	if err := p.store.Set(id); err != nil {
		zap.L().Warn("can't persist session id", zap.Error(err))
	}
	return id
}

func NewID() string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

// Valid accepts any short printable token. Nothing more is checked.
func Valid(id string) bool {
	if id == "" || len(id) > maxLength {
		return false
	}
	for _, r := range id {
		if r <= ' ' || r > '~' {
			return false
		}
	}
	return true
}
