package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

type mutableToken struct{ token string }

func (t *mutableToken) Token() string { return t.token }

func TestBearerHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Skill{})
	}))
	defer srv.Close()

	client := New(srv.URL, staticToken("tok123"))
	_, err := client.Skills().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestNoBearerHeaderWhenAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Skill{})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.Skills().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestTokenReadPerRequest(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]Skill{})
	}))
	defer srv.Close()

	source := &mutableToken{token: "old"}
	client := New(srv.URL, source)

	_, err := client.Skills().List(context.Background())
	require.NoError(t, err)

	// Simulates the token swap after a username change.
	source.token = "new"
	_, err = client.Skills().List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer old", "Bearer new"}, seen)
}

func TestProjectListVisibilityFilter(t *testing.T) {
	var gotQuery []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = append(gotQuery, r.URL.RawQuery)
		json.NewEncoder(w).Encode([]Project{})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	ctx := context.Background()

	_, err := client.Projects().List(ctx, nil)
	require.NoError(t, err)

	visible := true
	_, err = client.Projects().List(ctx, &visible)
	require.NoError(t, err)

	visible = false
	_, err = client.Projects().List(ctx, &visible)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "visible=true", "visible=false"}, gotQuery)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "unauthorized",
			"message": "Invalid username or password",
		})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.Auth().Login(context.Background(), "admin", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
	assert.True(t, IsAuthError(err))
}

func TestAPIErrorGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.Profile().Get(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
	assert.False(t, IsAuthError(err))
}

func TestSendMessageReturnsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jane", body["name"])
		assert.Equal(t, "hello there", body["message"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Message sent successfully",
			"id":      "m-42",
		})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	id, err := client.Messages().Send(context.Background(), "Jane", "jane@example.com", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "m-42", id)
}

func TestSetVisibilitySendsPatchBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	client := New(srv.URL, staticToken("tok"))
	err := client.Projects().SetVisibility(context.Background(), "p1", false)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/projects/p1/visibility", gotPath)
	assert.Equal(t, map[string]bool{"visible": false}, gotBody)
}
