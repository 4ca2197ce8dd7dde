package ragflow

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Register(t *testing.T) {
	var got map[string]string
	var gotCT, gotPath, gotMethod string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotCT = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = io.WriteString(w, `{"code":0,"message":"Bob, welcome aboard!"}`)
	}))
	defer ts.Close()

	res, err := NewClient(ts.URL+"/", ts.Client()).Register(context.Background(), "u2@example.com", "Bob", "ENC")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, RegisterPath, gotPath)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, map[string]string{"email": "u2@example.com", "nickname": "Bob", "password": "ENC"}, got)

	assert.True(t, res.OK())
	assert.Equal(t, "Bob, welcome aboard!", res.MessageOr("x"))
}

func TestClient_LoginReturnsAuthorization(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, LoginPath, r.URL.Path)
		w.Header().Set("Authorization", "session-123")
		_, _ = io.WriteString(w, `{"code":0,"message":"Welcome back!","data":{"nickname":"Bob"}}`)
	}))
	defer ts.Close()

	res, auth, err := NewClient(ts.URL, ts.Client()).Login(context.Background(), "u@x", "ENC")
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "session-123", auth)
}

func TestClient_NewTokenSendsHeaderWithoutBody(t *testing.T) {
	var gotAuth string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, NewTokenPath, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{"code":0,"message":"success","data":{"token":"ragflow-abc123"}}`)
	}))
	defer ts.Close()

	res, err := NewClient(ts.URL, ts.Client()).NewToken(context.Background(), "session-123")
	require.NoError(t, err)
	assert.Equal(t, "session-123", gotAuth)
	assert.Empty(t, gotBody)

	token, err := res.Token()
	require.NoError(t, err)
	assert.Equal(t, "ragflow-abc123", token)
}

func TestClient_ApplicationErrorIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":109,"message":"Email: u1@example.com is not registered!"}`)
	}))
	defer ts.Close()

	res, auth, err := NewClient(ts.URL, ts.Client()).Login(context.Background(), "u1@example.com", "ENC")
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, 109, res.Code)
	assert.Empty(t, auth)
}

func TestClient_MalformedResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"html", http.StatusBadGateway, "<html>bad gateway</html>"},
		{"no code", http.StatusOK, `{"message":"hi"}`},
		{"empty", http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer ts.Close()

			_, err := NewClient(ts.URL, ts.Client()).Register(context.Background(), "e", "n", "p")
			assert.ErrorIs(t, err, common.ErrMalformedResponse)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, _, err := NewClient(url, &http.Client{Timeout: time.Second}).Login(context.Background(), "e", "p")
	assert.Error(t, err)
}

func TestClient_ContextCancel(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(ts.URL, ts.Client()).Register(ctx, "e", "n", "p")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResponse_Token(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"missing", "", common.ErrEmptyToken},
		{"null", "null", common.ErrEmptyToken},
		{"empty token", `{"token":""}`, common.ErrEmptyToken},
		{"wrong shape", `["x"]`, common.ErrMalformedResponse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &Response{Data: json.RawMessage(tc.data)}
			_, err := r.Token()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResponse_MessageOr(t *testing.T) {
	msg := ""
	assert.Equal(t, "fallback", (&Response{}).MessageOr("fallback"))
	assert.Equal(t, "", (&Response{Message: &msg}).MessageOr("fallback"))
}
