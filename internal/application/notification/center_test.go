package notification_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slooze/commodity-admin/internal/application/notification"
	"github.com/slooze/commodity-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func ids(list []entity.Notification) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.ID)
	}
	return out
}

// waitRemoved espera (con margen) a que id desaparezca de la lista viva.
func waitRemoved(t *testing.T, c *notification.Center, id string, within time.Duration) {
	t.Helper()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		found := false
		for _, n := range c.List() {
			if n.ID == id {
				found = true
				break
			}
		}
		if !found {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("la notificación %s no expiró dentro de %v", id, within)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Enqueue / expiración
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: una notificación expira sola tras su TTL y desaparece de la lista.
func TestEnqueue_ExpiraTrasElTTL(t *testing.T) {
	c := notification.NewCenter(0, nil)
	defer c.Close()

	id := c.Enqueue(notification.Input{Kind: entity.NotificationSuccess, Title: "Signed out"}, 40*time.Millisecond)

	require.Len(t, c.List(), 1, "recién encolada debe estar viva")
	waitRemoved(t, c, id, 500*time.Millisecond)
	assert.Empty(t, c.List())
}

// Caso 2: Dismiss antes del TTL elimina de inmediato; la expiración posterior
// del timer es un no-op (no borra entradas ajenas ni falla).
func TestDismiss_GanaLaCarreraAlTimer(t *testing.T) {
	c := notification.NewCenter(0, nil)
	defer c.Close()

	id := c.Enqueue(notification.Input{Title: "efímera"}, 80*time.Millisecond)
	other := c.Enqueue(notification.Input{Title: "persistente"}, 10*time.Second)

	c.Dismiss(id)
	assert.Equal(t, []string{other}, ids(c.List()), "el dismiss debe eliminar solo esa entrada")

	// Dejar pasar el TTL original: el timer cancelado no debe tocar nada.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []string{other}, ids(c.List()))
}

// Caso 3: Dismiss dos veces (o de un id inexistente) es seguro.
func TestDismiss_Idempotente(t *testing.T) {
	c := notification.NewCenter(0, nil)
	defer c.Close()

	id := c.Enqueue(notification.Input{Title: "una"}, time.Second)
	c.Dismiss(id)
	c.Dismiss(id)
	c.Dismiss("id-que-no-existe")
	assert.Empty(t, c.List())
}

// Caso 4: con TTLs 50ms y 10ms encolados en ese orden, la segunda expira
// primero y la primera sigue viva hasta su propio plazo; mientras tanto la
// lista refleja el orden de llegada, no el de expiración.
func TestExpiracion_NoReordenaLaLista(t *testing.T) {
	c := notification.NewCenter(0, nil)
	defer c.Close()

	first := c.Enqueue(notification.Input{Title: "lenta"}, 120*time.Millisecond)
	second := c.Enqueue(notification.Input{Title: "rápida"}, 30*time.Millisecond)

	assert.Equal(t, []string{first, second}, ids(c.List()), "orden de llegada")

	waitRemoved(t, c, second, 500*time.Millisecond)
	assert.Equal(t, []string{first}, ids(c.List()), "la primera debe seguir viva tras expirar la segunda")

	waitRemoved(t, c, first, 500*time.Millisecond)
	assert.Empty(t, c.List())
}

// Caso 5: ids únicos en todo el proceso y kind desconocido degradado a info.
func TestEnqueue_IdsUnicosYKindPorDefecto(t *testing.T) {
	c := notification.NewCenter(0, nil)
	defer c.Close()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := c.Enqueue(notification.Input{Kind: "loquesea", Title: "n"}, time.Minute)
		require.False(t, seen[id], "id repetido: %s", id)
		seen[id] = true
	}
	for _, n := range c.List() {
		assert.Equal(t, entity.NotificationInfo, n.Kind)
	}
}

// Caso 6: ttl <= 0 usa el TTL por defecto del centro.
func TestEnqueue_TTLPorDefecto(t *testing.T) {
	c := notification.NewCenter(30*time.Millisecond, nil)
	defer c.Close()

	id := c.Enqueue(notification.Input{Title: "default"}, 0)
	waitRemoved(t, c, id, 500*time.Millisecond)
}

// Caso 7: Close detiene los timers y vacía la cola.
func TestClose_Teardown(t *testing.T) {
	c := notification.NewCenter(0, nil)
	c.Enqueue(notification.Input{Title: "a"}, time.Minute)
	c.Enqueue(notification.Input{Title: "b"}, time.Minute)

	c.Close()
	assert.Empty(t, c.List())
}
