package chatbot

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRulesComeFirst(t *testing.T) {
	bot := NewBot(nil)
	ctx := context.Background()

	cases := []struct {
		msg      string
		contains string
	}{
		{"When is the next match?", "[View Fixtures](/fixtures)"},
		{"show me the standings", "[View Points Table](/points)"},
		{"what's the live score", "[Live Match Updates](/live)"},
		{"which team is best", "Lucknow Super Giants (LSG)"},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			reply, err := bot.Respond(ctx, tc.msg)
			require.NoError(t, err)
			assert.Equal(t, SourceRules, reply.Source)
			assert.Contains(t, reply.Text, tc.contains)
		})
	}
}

func TestKnowledgeBase(t *testing.T) {
	bot := NewBot(nil)
	ctx := context.Background()

	reply, err := bot.Respond(ctx, "What is IPL?")
	require.NoError(t, err)
	assert.Equal(t, SourceKnowledge, reply.Source)
	assert.Contains(t, reply.Text, "Started in 2008")

	reply, _ = bot.Respond(ctx, "explain the rules")
	assert.Contains(t, reply.Text, "Cricket Basics")

	reply, _ = bot.Respond(ctx, "tell me about dhoni")
	assert.Contains(t, reply.Text, "Player Information")

	reply, _ = bot.Respond(ctx, "where can I watch")
	assert.Contains(t, reply.Text, "Disney+ Hotstar")

	reply, _ = bot.Respond(ctx, "hello")
	assert.Equal(t, helpReply, reply.Text)

	_, err = bot.Respond(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestHTTPBackendBrotliJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "br")
		bw := brotli.NewWriter(w)
		_ = json.NewEncoder(bw).Encode(map[string]string{"reply": "You asked: " + in.Message})
		_ = bw.Close()
	}))
	defer srv.Close()

	bot := NewBot(NewHTTPBackend(srv.URL, time.Second))
	reply, err := bot.Respond(context.Background(), "who bowls the best yorker")
	require.NoError(t, err)
	assert.Equal(t, SourceBackend, reply.Source)
	assert.Equal(t, "You asked: who bowls the best yorker", reply.Text)
}

func TestHTTPBackendGzipHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Encoding", "gzip")
		gw := gzip.NewWriter(w)
		_, _ = gw.Write([]byte(`<html><body><p>Hello <strong>fans</strong></p></body></html>`))
		_ = gw.Close()
	}))
	defer srv.Close()

	text, err := NewHTTPBackend(srv.URL, time.Second).Ask(context.Background(), "hi there")
	require.NoError(t, err)
	assert.Equal(t, "Hello **fans**", text)
}

func TestHTTPBackendLegacyResponseField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"response":"<p>Kohli averages <em>plenty</em></p>"}`))
	}))
	defer srv.Close()

	text, err := NewHTTPBackend(srv.URL, time.Second).Ask(context.Background(), "kohli average")
	require.NoError(t, err)
	assert.Equal(t, "Kohli averages *plenty*", text)
}

func TestBackendFailureFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	bot := NewBot(NewHTTPBackend(srv.URL, time.Second))
	reply, err := bot.Respond(context.Background(), "how to play cricket")
	require.NoError(t, err)
	assert.Equal(t, SourceKnowledge, reply.Source)
	assert.Contains(t, reply.Text, "Cricket Basics")
}

func TestChatEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterChatbotRoutes(r.Group("/api"), NewBot(nil))

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"message":"points table please"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"rules"`)

	assert.Equal(t, http.StatusBadRequest, post(`{}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"message":"   "}`).Code)
}
