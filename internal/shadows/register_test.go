package shadows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
	"github.com/mouse-blink/shadower/internal/platform"
)

func TestRegisterAll(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, RegisterAll(reg))

	assert.Equal(t, len(Catalog()), reg.Len())
	assert.Equal(t, []m.TypeID{
		platform.StatFsType,
		platform.UserManagerType,
		PrivateClassName,
	}, reg.Types())
}

func TestRegisterAll_TwiceConflicts(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, RegisterAll(reg))

	var conflict *domain.ConflictError
	require.ErrorAs(t, RegisterAll(reg), &conflict)
	assert.Equal(t, platform.StatFsType, conflict.Target)
}

func TestRegisterAll_SealedRegistry(t *testing.T) {
	reg := domain.NewRegistry()
	reg.Seal()

	require.ErrorIs(t, RegisterAll(reg), domain.ErrSealed)
}

func TestResetAll_ClearsEveryBuiltInHook(t *testing.T) {
	sb := newSandbox(t)
	RegisterStats("/data", 1, 1, 1)

	require.NoError(t, sb.Reset())
	require.NoError(t, sb.Reset())

	assert.Equal(t, Stats{}, lookupStats("/data"))
	assert.Equal(t, 2, sb.Hooks())
}
