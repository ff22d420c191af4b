// Package session contiene el SessionStore: la identidad autenticada del
// proceso, su restauración desde el almacén clave-valor y el ciclo
// login/logout contra el roster fijo de cuentas.
package session

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/slooze/commodity-admin/internal/domain"
	"github.com/slooze/commodity-admin/internal/domain/entity"
	"github.com/slooze/commodity-admin/internal/domain/repository"
	"github.com/slooze/commodity-admin/internal/infrastructure/storage"
	"github.com/slooze/commodity-admin/pkg/logger"
)

// Store posee la identidad de sesión del proceso (a lo sumo una viva).
// Toda mutación pasa por Login/Logout; nadie más toca la clave persistida.
type Store struct {
	mu      sync.RWMutex
	kv      storage.KeyValue
	roster  repository.AccountRoster
	log     *logger.Logger
	current *entity.Identity
}

// NewStore construye el SessionStore. Dependencias nulas son un error de
// programación: se falla ruidosamente en el arranque, no en el primer uso.
func NewStore(kv storage.KeyValue, roster repository.AccountRoster, log *logger.Logger) *Store {
	if kv == nil || roster == nil {
		panic("session: NewStore requiere almacén y roster no nulos")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, roster: roster, log: log}
}

// Restore lee la identidad persistida y la adopta como sesión actual si pasa
// la validación de esquema (email no vacío y rol conocido). Estado persistido
// corrupto se degrada a "ausente": se elimina la clave y se devuelve nil.
// Nunca devuelve error; la corrupción no es un fallo funcional.
func (s *Store) Restore() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(storage.KeySession)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Err(err).Msg("sesión: lectura del almacén falló, se asume ausente")
		}
		s.current = nil
		return nil
	}

	identity, ok := decodeIdentity(raw)
	if !ok {
		// Nota diagnóstica para operadores; no es fatal.
		s.log.Warn().Str("key", storage.KeySession).Msg("sesión persistida inválida, se elimina")
		_ = s.kv.Remove(storage.KeySession)
		s.current = nil
		return nil
	}

	s.current = &identity
	return &identity
}

// Login normaliza el email (trim + minúsculas), busca coincidencia exacta de
// email y password en el roster y, si existe, fija y persiste la identidad.
// Sin coincidencia devuelve domain.ErrInvalidCredentials y el estado de la
// sesión queda intacto; nunca se fija una identidad parcial.
func (s *Store) Login(email, password string) (entity.Identity, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	account, err := s.roster.FindByEmail(normalized)
	if err != nil {
		return entity.Identity{}, err
	}
	if account == nil || account.Password != password {
		return entity.Identity{}, domain.ErrInvalidCredentials
	}

	identity := entity.Identity{Email: account.Email, Role: account.Role}
	raw, err := json.Marshal(identity)
	if err != nil {
		return entity.Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(storage.KeySession, string(raw)); err != nil {
		return entity.Identity{}, err
	}
	s.current = &identity

	s.log.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("sesión iniciada")
	return identity, nil
}

// Logout limpia la sesión actual y elimina la clave persistida.
// Es idempotente: sin sesión activa es un no-op, no un error.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.log.Info().Str("email", s.current.Email).Msg("sesión cerrada")
	}
	s.current = nil
	return s.kv.Remove(storage.KeySession)
}

// Current devuelve la identidad viva, o nil si no hay sesión.
// La copia devuelta no permite mutar el estado interno.
func (s *Store) Current() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// decodeIdentity valida el blob persistido contra el esquema esperado.
// Resultado tipado (identidad, ok): jamás una sonda de tipos en runtime.
func decodeIdentity(raw string) (entity.Identity, bool) {
	var identity entity.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return entity.Identity{}, false
	}
	if identity.Email == "" || !entity.ValidRole(string(identity.Role)) {
		return entity.Identity{}, false
	}
	return identity, true
}
