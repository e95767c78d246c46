package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dungeon-master-be/pkg/narrator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientComplete(t *testing.T) {
	var gotPath string
	var gotBody []narrator.Message

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"role":"Assistant","content":"You stand at the gates of the keep."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	transcript := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "You are the dungeon master."},
		{Role: narrator.RoleUser, Content: "I approach the keep."},
	}

	reply, err := client.Complete(context.Background(), transcript)
	require.NoError(t, err)

	assert.Equal(t, "/api", gotPath)
	assert.Equal(t, transcript, gotBody, "transcript must be sent in chronological order")
	assert.Equal(t, narrator.RoleAssistant, reply.Role)
	assert.Equal(t, "You stand at the gates of the keep.", reply.Content)
}

func TestClientCompleteGenerationOptions(t *testing.T) {
	var gotQuery map[string][]string
	var gotBody []narrator.Message

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"role":"assistant","content":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	transcript := []narrator.Message{{Role: narrator.RoleUser, Content: "hello"}}

	_, err := client.Complete(context.Background(), transcript,
		narrator.WithTemperature(0.7),
		narrator.WithMaxTokens(256),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"0.7"}, gotQuery["temperature"])
	assert.Equal(t, []string{"256"}, gotQuery["max_tokens"])
	assert.Equal(t, transcript, gotBody, "options must not leak into the message array")
}

func TestClientCompleteNoOptionsOmitsQuery(t *testing.T) {
	var gotRawQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Write([]byte(`{"role":"assistant","content":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Complete(context.Background(), []narrator.Message{
		{Role: narrator.RoleUser, Content: "hello"},
	})
	require.NoError(t, err)

	assert.Empty(t, gotRawQuery)
}

func TestClientCompleteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream model unavailable"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Complete(context.Background(), []narrator.Message{
		{Role: narrator.RoleUser, Content: "hello"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream model unavailable", "non-2xx body is surfaced as text")
}

func TestClientCompleteUnrecognizedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Complete(context.Background(), []narrator.Message{
		{Role: narrator.RoleUser, Content: "hello"},
	})

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), ErrUnrecognizedReply.Error()))
}

func TestClientCompleteAcceptsAllShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"explicit", `{"role":"assistant","content":"a"}`, "a"},
		{"choices", `{"choices":[{"message":{"content":"b"}}]}`, "b"},
		{"bare message", `{"message":"c"}`, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			reply, err := client.Complete(context.Background(), []narrator.Message{
				{Role: narrator.RoleUser, Content: "hello"},
			})

			require.NoError(t, err)
			assert.Equal(t, narrator.RoleAssistant, reply.Role)
			assert.Equal(t, tt.want, reply.Content)
		})
	}
}
