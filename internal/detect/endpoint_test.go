package detect

import (
	"testing"

	"github.com/Sena-ops/repoxray/internal/model"
	"github.com/stretchr/testify/require"
)

func TestAPIEndpointsFlask(t *testing.T) {
	files := []string{"routes.py"}
	contents := map[string]string{
		"routes.py": "@app.route('/users')\ndef list_users():\n    pass\n",
	}

	got := APIEndpoints(files, contents)
	require.Equal(t, []model.APIEndpoint{
		{Method: "GET", Route: "/users", File: "routes.py", Framework: "Flask"},
	}, got)
}

func TestAPIEndpointsFlaskMethodsLookback(t *testing.T) {
	// o lookback inspeciona os 200 caracteres ANTES do match; um
	// methods=[...] na janela anterior sobrescreve o GET default
	files := []string{"routes.py"}
	contents := map[string]string{
		"routes.py": "@app.route('/items', methods=['POST'])\ndef create_item():\n    pass\n\n" +
			"@app.route('/users')\ndef list_users():\n    pass\n",
	}

	got := APIEndpoints(files, contents)
	require.Len(t, got, 2)

	// primeira rota: methods= está dentro do próprio match, fora da
	// janela de lookback → default GET
	require.Equal(t, "GET", got[0].Method)
	require.Equal(t, "/items", got[0].Route)

	// segunda rota: o methods=['POST'] da rota anterior cai na janela
	// de 200 caracteres — imprecisão observada, preservada
	require.Equal(t, "POST", got[1].Method)
	require.Equal(t, "/users", got[1].Route)
}

func TestAPIEndpointsExpress(t *testing.T) {
	files := []string{"api.js"}
	contents := map[string]string{
		"api.js": "router.post('/login', login)\napp.get('/health', ok)\n",
	}

	got := APIEndpoints(files, contents)
	require.Equal(t, []model.APIEndpoint{
		{Method: "POST", Route: "/login", File: "api.js", Framework: "Express"},
		{Method: "GET", Route: "/health", File: "api.js", Framework: "Express"},
	}, got)
}

func TestAPIEndpointsFastAPI(t *testing.T) {
	files := []string{"main.py"}
	contents := map[string]string{
		"main.py": "@router.delete('/items/{id}')\nasync def remove(id: int):\n    pass\n",
	}

	got := APIEndpoints(files, contents)
	require.Len(t, got, 1)
	require.Equal(t, "DELETE", got[0].Method)
	require.Equal(t, "/items/{id}", got[0].Route)
	require.Equal(t, "FastAPI", got[0].Framework)
}

func TestAPIEndpointsWrongLanguageIgnored(t *testing.T) {
	files := []string{"api.go"}
	contents := map[string]string{
		"api.go": `router.get("/users", handler)`,
	}

	require.Empty(t, APIEndpoints(files, contents))
}
