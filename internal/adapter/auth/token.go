package auth

import (
	"fmt"

	"github.com/jaevor/go-nanoid"

	"creatingtasks/internal/core/ports"
)

// APIKeyLength matches the auth_tokens.token_key column budget with room to spare.
const APIKeyLength = 40

// KeyGenerator produces opaque API keys for the "Authorization: Token" scheme.
type KeyGenerator struct {
	next func() string
}

var _ ports.TokenGenerator = (*KeyGenerator)(nil)

func NewKeyGenerator() (*KeyGenerator, error) {
	next, err := nanoid.Standard(APIKeyLength)
	if err != nil {
		return nil, fmt.Errorf("create key generator: %w", err)
	}
	return &KeyGenerator{next: next}, nil
}

func (g *KeyGenerator) NewToken() string {
	return g.next()
}
