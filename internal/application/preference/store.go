// Package preference contiene el PreferenceStore: la preferencia de tema
// light/dark con el contrato read-through / write-on-change.
package preference

import (
	"errors"
	"sync"

	"github.com/slooze/commodity-admin/internal/domain"
	"github.com/slooze/commodity-admin/internal/domain/entity"
	"github.com/slooze/commodity-admin/internal/infrastructure/storage"
	"github.com/slooze/commodity-admin/pkg/logger"
)

// Applier aplica el efecto visual global del tema (el marcador raíz que la
// capa de presentación usa para elegir paleta). Debe ser idempotente.
type Applier func(entity.Theme)

// Store posee la preferencia de tema del proceso.
type Store struct {
	mu          sync.Mutex
	kv          storage.KeyValue
	systemDark  bool
	apply       Applier
	log         *logger.Logger
	current     entity.Theme
	initialized bool
}

// NewStore construye el PreferenceStore. systemDark es la preferencia "del
// sistema", usada solo cuando no hay valor persistido. apply puede ser nil.
func NewStore(kv storage.KeyValue, systemDark bool, apply Applier, log *logger.Logger) *Store {
	if kv == nil {
		panic("preference: NewStore requiere un almacén no nulo")
	}
	if apply == nil {
		apply = func(entity.Theme) {}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, systemDark: systemDark, apply: apply, log: log}
}

// Initialize resuelve el tema inicial: valor persistido si es exactamente
// "light" o "dark", si no la preferencia del sistema, si no light. El valor
// resuelto NO se persiste hasta el primer Toggle explícito.
func (s *Store) Initialize() entity.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme := entity.ThemeLight
	if s.systemDark {
		theme = entity.ThemeDark
	}

	raw, err := s.kv.Get(storage.KeyTheme)
	switch {
	case err == nil && entity.ValidTheme(raw):
		theme = entity.Theme(raw)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		s.log.Warn().Err(err).Msg("tema: lectura del almacén falló, se usa el valor por defecto")
	}

	s.current = theme
	s.initialized = true
	s.apply(theme)
	return theme
}

// Toggle alterna light ⇄ dark, persiste el nuevo valor y aplica el efecto
// visual. Devuelve el tema resultante.
func (s *Store) Toggle() (entity.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		panic("preference: Toggle antes de Initialize")
	}

	next := s.current.Opposite()
	if err := s.kv.Set(storage.KeyTheme, string(next)); err != nil {
		return s.current, err
	}
	s.current = next
	s.apply(next)
	return next, nil
}

// Current devuelve el tema activo.
func (s *Store) Current() entity.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
