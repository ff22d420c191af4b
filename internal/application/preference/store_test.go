package preference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slooze/commodity-admin/internal/application/preference"
	"github.com/slooze/commodity-admin/internal/domain"
	"github.com/slooze/commodity-admin/internal/domain/entity"
	"github.com/slooze/commodity-admin/internal/infrastructure/storage"
)

// Precedencia de inicialización: persistido → sistema → light.
func TestInitialize_Precedencia(t *testing.T) {
	cases := []struct {
		name       string
		stored     string // vacío = sin clave
		systemDark bool
		want       entity.Theme
	}{
		{"persistido dark gana al sistema", "dark", false, entity.ThemeDark},
		{"persistido light gana al sistema", "light", true, entity.ThemeLight},
		{"sin persistido usa el sistema", "", true, entity.ThemeDark},
		{"sin persistido ni sistema → light", "", false, entity.ThemeLight},
		{"persistido inválido cae al sistema", "solarized", true, entity.ThemeDark},
		{"persistido inválido sin sistema → light", "blue", false, entity.ThemeLight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := storage.NewMemoryStore()
			if tc.stored != "" {
				kv.Seed(storage.KeyTheme, tc.stored)
			}
			store := preference.NewStore(kv, tc.systemDark, nil, nil)
			assert.Equal(t, tc.want, store.Initialize())
			assert.Equal(t, tc.want, store.Current())
		})
	}
}

// El valor resuelto en Initialize NO se persiste hasta el primer Toggle.
func TestInitialize_NoPersisteHastaElPrimerToggle(t *testing.T) {
	kv := storage.NewMemoryStore()
	store := preference.NewStore(kv, true, nil, nil)

	assert.Equal(t, entity.ThemeDark, store.Initialize())

	_, err := kv.Get(storage.KeyTheme)
	assert.ErrorIs(t, err, domain.ErrNotFound, "Initialize es read-through, no debe escribir")

	_, err = store.Toggle()
	require.NoError(t, err)
	raw, err := kv.Get(storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", raw)
}

// Dos toggles devuelven el tema original y dejan persistido el valor inicial.
func TestToggle_DobleToggleVuelveAlOriginal(t *testing.T) {
	kv := storage.NewMemoryStore()
	kv.Seed(storage.KeyTheme, "dark")
	store := preference.NewStore(kv, false, nil, nil)

	original := store.Initialize()
	require.Equal(t, entity.ThemeDark, original)

	first, err := store.Toggle()
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, first)

	second, err := store.Toggle()
	require.NoError(t, err)
	assert.Equal(t, original, second)

	raw, err := kv.Get(storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, string(original), raw, "el persistido tras el segundo toggle debe ser el valor previo al primero")
}

// El efecto visual se aplica en Initialize y en cada Toggle, con el valor vigente.
func TestApplier_RecibeElTemaVigente(t *testing.T) {
	kv := storage.NewMemoryStore()
	var applied []entity.Theme
	store := preference.NewStore(kv, false, func(th entity.Theme) {
		applied = append(applied, th)
	}, nil)

	store.Initialize()
	_, err := store.Toggle()
	require.NoError(t, err)
	_, err = store.Toggle()
	require.NoError(t, err)

	assert.Equal(t, []entity.Theme{entity.ThemeLight, entity.ThemeDark, entity.ThemeLight}, applied)
}

// Reinicializar tras un toggle reproduce el mismo estado sin volver a togglear.
func TestInitialize_ReproduceElEstadoTrasReinicio(t *testing.T) {
	kv := storage.NewMemoryStore()

	store := preference.NewStore(kv, false, nil, nil)
	store.Initialize()
	theme, err := store.Toggle()
	require.NoError(t, err)
	require.Equal(t, entity.ThemeDark, theme)

	// "Reinicio": un store nuevo sobre el mismo almacén.
	restarted := preference.NewStore(kv, false, nil, nil)
	assert.Equal(t, entity.ThemeDark, restarted.Initialize())
}
