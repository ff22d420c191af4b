package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slooze/commodity-admin/internal/application/dto"
)

// Encolar vía API, listar en orden de llegada y descartar (dos veces, sin error).
func TestNotifications_EncolarListarDescartar(t *testing.T) {
	env := buildTestApp(t)
	env.loginAs(t, "manager@slooze.com", "manager123")
	// Limpiar la notificación de "Signed in" para aislar el caso.
	for _, n := range env.center.List() {
		env.center.Dismiss(n.ID)
	}

	resp := doPostJSON(t, env.app, "/api/notifications", dto.CreateNotificationRequest{
		Kind: "success", Title: "primera", TTLMs: 60000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first dto.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	resp.Body.Close()

	resp = doPostJSON(t, env.app, "/api/notifications", dto.CreateNotificationRequest{
		Kind: "info", Title: "segunda", TTLMs: 60000,
	})
	resp.Body.Close()

	resp = doGet(t, env.app, "/api/notifications")
	var live []dto.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&live))
	resp.Body.Close()
	require.Len(t, live, 2)
	assert.Equal(t, "primera", live[0].Title, "orden de llegada")
	assert.Equal(t, "segunda", live[1].Title)

	// Descartar la primera; repetir el descarte debe seguir siendo 204.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/notifications/"+first.ID, nil)
		del, err := env.app.Test(req, -1)
		require.NoError(t, err)
		del.Body.Close()
		assert.Equal(t, http.StatusNoContent, del.StatusCode)
	}

	resp = doGet(t, env.app, "/api/notifications")
	live = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&live))
	resp.Body.Close()
	require.Len(t, live, 1)
	assert.Equal(t, "segunda", live[0].Title)
}

// Sin sesión, la API de notificaciones exige autenticación.
func TestNotifications_SinSesion_Retorna401(t *testing.T) {
	env := buildTestApp(t)

	resp := doGet(t, env.app, "/api/notifications")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Título obligatorio al encolar.
func TestNotifications_TituloObligatorio(t *testing.T) {
	env := buildTestApp(t)
	env.loginAs(t, "manager@slooze.com", "manager123")

	resp := doPostJSON(t, env.app, "/api/notifications", dto.CreateNotificationRequest{Kind: "info"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
