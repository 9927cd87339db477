package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hpn/ai-text-polisher/internal/client"
	"github.com/hpn/ai-text-polisher/internal/clipboard"
	"github.com/hpn/ai-text-polisher/internal/config"
	"github.com/hpn/ai-text-polisher/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// ============================================================================
// SETUP HELPERS
// ============================================================================

// setupMockProvider simulates an OpenAI-compatible endpoint that echoes the prompt.
func setupMockProvider(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided"}}`)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		prompt := gjson.GetBytes(raw, "messages.0.content").String()
		_, _ = fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, "  AI: "+prompt+"  ")
	}))
	t.Cleanup(srv.Close)
	return srv
}

type testApp struct {
	*app
	out        *bytes.Buffer
	clip       *clipboard.Memory
	configPath string
}

func newTestApp(t *testing.T, providerURL, key string) *testApp {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("api:\n  provider: openai\n  url: %q\n  key: %q\n  model: test-model\nnotifications:\n  enabled: false\n", providerURL, key)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out := &bytes.Buffer{}
	clip := &clipboard.Memory{}
	return &testApp{
		app: &app{
			stdin:      strings.NewReader(""),
			stdout:     out,
			stderr:     io.Discard,
			clip:       clip,
			httpClient: http.DefaultClient,
		},
		out:        out,
		clip:       clip,
		configPath: path,
	}
}

func (ta *testApp) execute(args ...string) error {
	cmd := newRootCmd(ta.app)
	cmd.SetArgs(append([]string{"--config", ta.configPath}, args...))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

// ============================================================================
// RUN
// ============================================================================

func TestRun_FromArgs(t *testing.T) {
	ta := newTestApp(t, setupMockProvider(t).URL, "sk-test")

	require.NoError(t, ta.execute("run", "--prompt", "Summarize: {text}", "hello", "world"))
	assert.Equal(t, "AI: Summarize: hello world\n", ta.out.String())
}

func TestRun_FromStdinWithAction(t *testing.T) {
	ta := newTestApp(t, setupMockProvider(t).URL, "sk-test")
	ta.stdin = strings.NewReader("helo wrld\n")

	require.NoError(t, ta.execute("run", "-a", "grammar"))

	grammar, ok := domain.DefaultActions().Find("grammar")
	require.True(t, ok)
	want := "AI: " + strings.Replace(grammar.Prompt, domain.PromptPlaceholder, "helo wrld\n", 1)
	assert.Equal(t, strings.TrimSpace(want)+"\n", ta.out.String())
}

func TestRun_ClipboardRoundTrip(t *testing.T) {
	ta := newTestApp(t, setupMockProvider(t).URL, "sk-test")
	require.NoError(t, ta.clip.Write("copied text"))

	require.NoError(t, ta.execute("run", "--from-clipboard", "--prompt", "Fix: {text}"))

	got, err := ta.clip.Read()
	require.NoError(t, err)
	assert.Equal(t, "AI: Fix: copied text", got)
}

func TestRun_Errors(t *testing.T) {
	srv := setupMockProvider(t)

	t.Run("no text", func(t *testing.T) {
		ta := newTestApp(t, srv.URL, "sk-test")
		ta.stdin = strings.NewReader("  \n")
		assert.ErrorIs(t, ta.execute("run"), errNoText)
	})

	t.Run("unknown action", func(t *testing.T) {
		ta := newTestApp(t, srv.URL, "sk-test")
		assert.ErrorIs(t, ta.execute("run", "-a", "missing", "hi"), domain.ErrActionNotFound)
	})

	t.Run("missing key", func(t *testing.T) {
		ta := newTestApp(t, srv.URL, "")
		err := ta.execute("run", "hi")
		assert.True(t, client.IsKind(err, client.KindMissingAPIKey))
		assert.Empty(t, ta.out.String())
	})

	t.Run("invalid key", func(t *testing.T) {
		ta := newTestApp(t, srv.URL, "sk-wrong")
		err := ta.execute("run", "hi")
		assert.True(t, client.IsKind(err, client.KindAuth))
		assert.Equal(t, client.MsgInvalidAPIKey, err.Error())
	})

	t.Run("bad log level flag", func(t *testing.T) {
		ta := newTestApp(t, srv.URL, "sk-test")
		err := ta.execute("--log-level", "loud", "run", "hi")
		assert.True(t, config.IsValidationError(err))
	})
}

// ============================================================================
// PING / PROVIDERS
// ============================================================================

func TestPing(t *testing.T) {
	srv := setupMockProvider(t)

	require.NoError(t, newTestApp(t, srv.URL, "sk-test").execute("ping"))

	err := newTestApp(t, srv.URL, "sk-wrong").execute("ping")
	assert.True(t, client.IsKind(err, client.KindAuth))
}

func TestProviders(t *testing.T) {
	ta := newTestApp(t, "http://unused.invalid", "sk-test")
	require.NoError(t, ta.execute("providers"))

	out := ta.out.String()
	for _, id := range []string{"openai", "azure", "anthropic", "gemini", "deepseek"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "*  openai")
}

// ============================================================================
// ACTIONS
// ============================================================================

func TestActions_EditAndPersist(t *testing.T) {
	ta := newTestApp(t, "http://unused.invalid", "sk-test")

	require.NoError(t, ta.execute("actions", "add", "--name", "Translate", "--prompt", "Translate to French: {text}"))
	require.NoError(t, ta.execute("actions", "update", "polish", "--name", "Polish It"))
	require.NoError(t, ta.execute("actions", "delete", "summarize"))

	cfg, err := config.Load(ta.configPath)
	require.NoError(t, err)
	require.Len(t, cfg.Actions, 5)

	polish, ok := cfg.Actions.Find("polish")
	require.True(t, ok)
	assert.Equal(t, "Polish It", polish.Name)

	_, ok = cfg.Actions.Find("summarize")
	assert.False(t, ok)

	last := cfg.Actions[len(cfg.Actions)-1]
	assert.True(t, strings.HasPrefix(last.ID, "action_"))
	assert.Equal(t, "Translate", last.Name)
	assert.Equal(t, "sk-test", cfg.API.Key, "other settings are preserved")

	ta.out.Reset()
	require.NoError(t, ta.execute("actions", "list"))
	assert.Contains(t, ta.out.String(), "Polish It")
	assert.NotContains(t, ta.out.String(), "summarize")

	require.NoError(t, ta.execute("actions", "reset"))
	cfg, err = config.Load(ta.configPath)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultActions(), cfg.Actions)
}

func TestActions_Rejections(t *testing.T) {
	ta := newTestApp(t, "http://unused.invalid", "sk-test")

	assert.ErrorIs(t, ta.execute("actions", "add", "--name", "X", "--prompt", "no placeholder"), errMissingPlaceholder)
	assert.ErrorIs(t, ta.execute("actions", "update", "nope", "--name", "Y"), domain.ErrActionNotFound)
	assert.ErrorIs(t, ta.execute("actions", "delete", "nope"), domain.ErrActionNotFound)
	assert.Error(t, ta.execute("actions", "update", "polish"))
}

// ============================================================================
// SERVE
// ============================================================================

func TestServeRouter_EndToEnd(t *testing.T) {
	ta := newTestApp(t, setupMockProvider(t).URL, "sk-test")
	require.NoError(t, ta.execute("providers"))

	router := ta.newRouter()
	req := httptest.NewRequest(http.MethodPost, "/v1/process",
		strings.NewReader(`{"action_id":"polish","text":"hi there"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(gjson.Get(w.Body.String(), "result").String(), "AI: "))
	assert.Equal(t, "openai", gjson.Get(w.Body.String(), "provider").String())
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "short", firstLine("short", 10))
	assert.Equal(t, "one ...", firstLine("one\ntwo", 10))
	assert.Equal(t, "abcdefg...", firstLine("abcdefghijklmnop", 10))
}
