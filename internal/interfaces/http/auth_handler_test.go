package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slooze/commodity-admin/internal/application/dto"
	"github.com/slooze/commodity-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login / Logout / Me
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Login correcto devuelve la identidad y su destino inicial por rol.
func TestLogin_ManagerAterrizaEnDashboard(t *testing.T) {
	env := buildTestApp(t)

	resp := doPostJSON(t, env.app, "/api/auth/login", dto.LoginRequest{
		Email: "manager@slooze.com", Password: "manager123",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.IdentityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "manager@slooze.com", body.Email)
	assert.Equal(t, "manager", body.Role)
	assert.Equal(t, "/dashboard", body.Destination)
}

// Caso 1b: El storekeeper aterriza en productos.
func TestLogin_StorekeeperAterrizaEnProductos(t *testing.T) {
	env := buildTestApp(t)

	resp := doPostJSON(t, env.app, "/api/auth/login", dto.LoginRequest{
		Email: "keeper@slooze.com", Password: "keeper123",
	})
	defer resp.Body.Close()

	var body dto.IdentityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "/products", body.Destination)
}

// Caso 2: Credenciales inválidas → 401 INVALID_CREDENTIALS y sin sesión.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	env := buildTestApp(t)

	resp := doPostJSON(t, env.app, "/api/auth/login", dto.LoginRequest{
		Email: "manager@slooze.com", Password: "incorrecto",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_CREDENTIALS")
	assert.Nil(t, env.sessions.Current())
}

// Caso 3: Cuerpo incompleto → 400 VALIDATION.
func TestLogin_CuerpoIncompleto(t *testing.T) {
	env := buildTestApp(t)

	resp := doPostJSON(t, env.app, "/api/auth/login", dto.LoginRequest{Email: "manager@slooze.com"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Caso 4: Login y logout encolan sus notificaciones; logout repetido no duplica.
func TestAuth_NotificacionesDeLoginYLogout(t *testing.T) {
	env := buildTestApp(t)

	resp := doPostJSON(t, env.app, "/api/auth/login", dto.LoginRequest{
		Email: "manager@slooze.com", Password: "manager123",
	})
	resp.Body.Close()

	live := env.center.List()
	require.Len(t, live, 1)
	assert.Equal(t, entity.NotificationSuccess, live[0].Kind)
	assert.Equal(t, "Signed in", live[0].Title)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Logout sin sesión: idempotente, sin notificación nueva.
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	titles := []string{}
	for _, n := range env.center.List() {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"Signed in", "Signed out"}, titles)
}

// Caso 5: Me refleja la sesión viva y 401 cuando no la hay.
func TestMe_ConYSinSesion(t *testing.T) {
	env := buildTestApp(t)

	resp := doGet(t, env.app, "/api/auth/me")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env.loginAs(t, "keeper@slooze.com", "keeper123")
	resp = doGet(t, env.app, "/api/auth/me")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.IdentityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "keeper@slooze.com", body.Email)
	assert.Equal(t, "storekeeper", body.Role)
}
