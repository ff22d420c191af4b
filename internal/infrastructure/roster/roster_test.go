package roster_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slooze/commodity-admin/internal/domain"
	"github.com/slooze/commodity-admin/internal/domain/entity"
	"github.com/slooze/commodity-admin/internal/infrastructure/roster"
)

func TestNewBuiltin_ContieneAmbosRoles(t *testing.T) {
	r := roster.NewBuiltin()

	manager, err := r.FindByEmail("manager@slooze.com")
	require.NoError(t, err)
	require.NotNil(t, manager)
	assert.Equal(t, entity.RoleManager, manager.Role)

	keeper, err := r.FindByEmail("keeper@slooze.com")
	require.NoError(t, err)
	require.NotNil(t, keeper)
	assert.Equal(t, entity.RoleStorekeeper, keeper.Role)
}

func TestFindByEmail_Desconocido_DevuelveNilSinError(t *testing.T) {
	r := roster.NewBuiltin()
	account, err := r.FindByEmail("nadie@slooze.com")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestLoadFile_RosterValido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	raw := `[{"email":"jefa@acme.com","password":"s3creta","role":"manager"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	r, err := roster.LoadFile(path)
	require.NoError(t, err)

	account, err := r.FindByEmail("jefa@acme.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, entity.RoleManager, account.Role)
	assert.Len(t, r.All(), 1)
}

func TestLoadFile_RolDesconocido_Falla(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	raw := `[{"email":"x@acme.com","password":"p","role":"superadmin"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	_, err := roster.LoadFile(path)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}
