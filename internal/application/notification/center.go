// Package notification contiene el NotificationCenter: la cola ordenada de
// notificaciones efímeras con expiración automática por timer cancelable.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/slooze/commodity-admin/internal/domain/entity"
	"github.com/slooze/commodity-admin/pkg/logger"
)

// DefaultTTL tiempo de vida por defecto de una notificación.
const DefaultTTL = 4000 * time.Millisecond

// Input datos de una notificación antes de asignarle id.
type Input struct {
	Kind        string
	Title       string
	Description string
}

// Center posee la colección de notificaciones vivas. El orden de la lista es
// el orden de llegada; la expiración no reordena, solo elimina.
type Center struct {
	mu         sync.Mutex
	log        *logger.Logger
	defaultTTL time.Duration
	entries    []entity.Notification
	timers     map[string]*time.Timer
	closed     bool
}

// NewCenter construye el centro de notificaciones. ttl <= 0 usa DefaultTTL.
func NewCenter(defaultTTL time.Duration, log *logger.Logger) *Center {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Center{
		log:        log,
		defaultTTL: defaultTTL,
		timers:     make(map[string]*time.Timer),
	}
}

// Enqueue asigna un id fresco, agrega la notificación al final de la cola y
// programa su expiración tras ttl (o el TTL por defecto si ttl <= 0).
// Devuelve el id asignado; los ids nunca se reutilizan.
func (c *Center) Enqueue(in Input, ttl time.Duration) string {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	kind := in.Kind
	if !entity.ValidNotificationKind(kind) {
		kind = entity.NotificationInfo
	}

	n := entity.Notification{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       in.Title,
		Description: in.Description,
		TTL:         ttl,
		CreatedAt:   time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return n.ID
	}
	c.entries = append(c.entries, n)
	c.timers[n.ID] = time.AfterFunc(ttl, func() { c.expire(n.ID) })
	c.log.Debug().Str("id", n.ID).Str("kind", kind).Dur("ttl", ttl).Msg("notificación encolada")
	return n.ID
}

// Dismiss elimina la notificación por id inmediatamente y cancela su timer
// pendiente. Es un no-op si ya fue eliminada (por expiración o un Dismiss
// previo); expiración y descarte manual compiten sin riesgo.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

// expire es el callback del timer. Si la entrada ya no está (Dismiss ganó la
// carrera) no hace nada.
func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

// removeLocked elimina por id bajo el lock; camino único de eliminación.
func (c *Center) removeLocked(id string) {
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i, n := range c.entries {
		if n.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// List devuelve una instantánea de las notificaciones vivas en orden de
// llegada, con todo lo necesario para render sin lookups adicionales.
func (c *Center) List() []entity.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Notification, len(c.entries))
	copy(out, c.entries)
	return out
}

// Close detiene todos los timers pendientes y vacía la cola (teardown).
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.entries = nil
}
