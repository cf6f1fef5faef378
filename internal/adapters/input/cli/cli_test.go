package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"hue-controller/internal/adapters/output/persistence"
	"hue-controller/internal/domain/model"
	"hue-controller/internal/domain/service"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeBridge serves the subset of the v1 API used by huectl.
type fakeBridge struct {
	mu     sync.Mutex
	user   string
	writes map[string][]map[string]interface{}
}

func newFakeBridge(t *testing.T, user string) (*fakeBridge, *httptest.Server) {
	fb := &fakeBridge{user: user, writes: make(map[string][]map[string]interface{})}
	prefix := "/api/" + user + "/lights"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == prefix:
			fmt.Fprint(w, `{
				"1": {"state": {"on": false, "bri": 10, "reachable": true}, "name": "Desk"},
				"2": {"state": {"on": false, "bri": 200, "reachable": true}, "name": "Computer"}
			}`)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, prefix+"/"):
			id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, prefix+"/"), "/state")
			body, _ := io.ReadAll(r.Body)
			var payload map[string]interface{}
			json.Unmarshal(body, &payload)
			fb.mu.Lock()
			fb.writes[id] = append(fb.writes[id], payload)
			fb.mu.Unlock()
			fmt.Fprintf(w, `[{"success":{"/lights/%s/state/on":true}}]`, id)
		case r.Method == http.MethodPost && strings.TrimSuffix(r.URL.Path, "/") == "/api":
			fmt.Fprintf(w, `[{"success":{"username":%q}}]`, user)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return fb, srv
}

func testSettings(t *testing.T, host, user string) model.Settings {
	return model.Settings{
		Bridge:          model.BridgeConfig{Host: host, Username: user, API: model.BridgeAPIV1},
		ReferenceLight:  model.DefaultReferenceLight,
		CredentialsFile: filepath.Join(t.TempDir(), "credentials.json"),
	}
}

func TestExecute_BrightnessIncrease(t *testing.T) {
	fb, srv := newFakeBridge(t, "testuser")

	err := Execute(context.Background(), testSettings(t, srv.URL, "testuser"), []string{"brightness", "increase"}, zap.NewNop())
	require.NoError(t, err)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, id := range []string{"1", "2"} {
		require.Len(t, fb.writes[id], 1)
		assert.Equal(t, float64(220), fb.writes[id][0]["bri"])
	}
}

func TestExecute_On(t *testing.T) {
	fb, srv := newFakeBridge(t, "testuser")

	err := Execute(context.Background(), testSettings(t, srv.URL, "testuser"), []string{"on"}, zap.NewNop())
	require.NoError(t, err)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	assert.Equal(t, true, fb.writes["1"][0]["on"])
	assert.Equal(t, true, fb.writes["2"][0]["on"])
}

func TestExecute_UnknownCommand(t *testing.T) {
	fb, srv := newFakeBridge(t, "testuser")
	core, logs := observer.New(zapcore.InfoLevel)

	err := Execute(context.Background(), testSettings(t, srv.URL, "testuser"), []string{"bogus"}, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("command has not been implemented").Len())

	fb.mu.Lock()
	defer fb.mu.Unlock()
	assert.Empty(t, fb.writes)
}

func TestExecute_UsesStoredCredentials(t *testing.T) {
	fb, srv := newFakeBridge(t, "stored")
	settings := testSettings(t, srv.URL, "")

	repo := persistence.NewJSONCredentialRepository(settings.CredentialsFile)
	creds := &model.Credentials{}
	creds.Set(srv.URL, "stored")
	require.NoError(t, repo.Save(context.Background(), creds))

	err := Execute(context.Background(), settings, []string{"off"}, zap.NewNop())
	require.NoError(t, err)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	assert.Equal(t, false, fb.writes["2"][0]["on"])
}

func TestExecute_PairsWhenNoUsername(t *testing.T) {
	_, srv := newFakeBridge(t, "paired")
	settings := testSettings(t, srv.URL, "")

	err := Execute(context.Background(), settings, []string{"on"}, zap.NewNop())
	require.NoError(t, err)

	creds, err := persistence.NewJSONCredentialRepository(settings.CredentialsFile).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "paired", creds.Username(srv.URL))
}

func TestExecute_MissingReferenceLight(t *testing.T) {
	_, srv := newFakeBridge(t, "testuser")
	settings := testSettings(t, srv.URL, "testuser")
	settings.ReferenceLight = "Kitchen"

	err := Execute(context.Background(), settings, []string{"on"}, zap.NewNop())
	assert.ErrorIs(t, err, service.ErrLightNotFound)
}

func TestNewLightPort(t *testing.T) {
	port, err := NewLightPort(model.BridgeConfig{Host: "10.0.0.2", Username: "u"}, zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, port)

	port, err = NewLightPort(model.BridgeConfig{Host: "10.0.0.2", Username: "u", API: model.BridgeAPIV2}, zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, port)

	_, err = NewLightPort(model.BridgeConfig{Host: "10.0.0.2", API: "v9"}, zap.NewNop())
	assert.Error(t, err)
}
