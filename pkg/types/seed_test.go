package types

import (
	"testing"

	"github.com/aretw0/typeguard/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRegistry(t *testing.T) {
	r := registry.New(nil)

	require.NoError(t, RegisterBuiltins(r))
	require.NoError(t, RegisterExtended(r))

	// Canonical names and aliases resolve to the same validator.
	for _, name := range []string{"string", "s", "str", "number", "n", "integer", "int", "email", "uuid"} {
		assert.True(t, r.Has(name), "expected %q to be registered", name)
	}

	// Seeding twice collides on every name.
	assert.ErrorIs(t, RegisterBuiltins(r), registry.ErrAlreadyRegistered)
}
