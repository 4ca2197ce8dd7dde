// Package ragflowtest runs an in-memory stand-in for the RAGFlow user API.
// Passwords arrive downstream-encrypted and are decrypted with the test's
// private key, so a successful login proves the whole credential chain.
package ragflowtest

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/ragrelay/internal/cryptox/cryptoxtest"
	"github.com/dmitrijs2005/ragrelay/internal/server/ragflow"
	"github.com/google/uuid"
)

// RAGFlow application codes used by the fake.
const (
	CodeOperatingError      = 103
	CodeAuthenticationError = 109
	CodeUnauthorized        = 401
)

// DefaultToken is returned by new_token unless Token is changed.
const DefaultToken = "ragflow-abc123"

type user struct {
	nickname string
	password string
}

// Server is a RAGFlow fake backed by httptest.Server.
type Server struct {
	*httptest.Server

	priv *rsa.PrivateKey

	mu       sync.Mutex
	users    map[string]user
	sessions map[string]string
	token    string
	calls    map[string]int
}

// New starts a fake that decrypts passwords with priv. It is closed when the
// test ends.
func New(t testing.TB, priv *rsa.PrivateKey) *Server {
	t.Helper()

	s := &Server{
		priv:     priv,
		users:    make(map[string]user),
		sessions: make(map[string]string),
		token:    DefaultToken,
		calls:    make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ragflow.RegisterPath, s.register)
	mux.HandleFunc("POST "+ragflow.LoginPath, s.login)
	mux.HandleFunc("POST "+ragflow.NewTokenPath, s.newToken)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// SetToken changes the token handed out by new_token. An empty token makes
// the fake answer code 0 with no data.
func (s *Server) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Calls reports how many requests hit path.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// Password returns the plaintext password the fake stored for email.
func (s *Server) Password(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	return u.password, ok
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Nickname string `json:"nickname"`
		Password string `json:"password"`
	}
	if !s.decode(w, r, &in) {
		return
	}

	password, err := cryptoxtest.Decrypt(s.priv, in.Password)
	if err != nil {
		writeJSON(w, map[string]any{"code": CodeAuthenticationError, "message": "Fail to crypt password"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[in.Email]; ok {
		writeJSON(w, map[string]any{"code": CodeOperatingError, "message": fmt.Sprintf("Email: %s has already registered!", in.Email)})
		return
	}
	s.users[in.Email] = user{nickname: in.Nickname, password: password}
	writeJSON(w, map[string]any{"code": 0, "message": fmt.Sprintf("%s, welcome aboard!", in.Nickname)})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !s.decode(w, r, &in) {
		return
	}

	password, err := cryptoxtest.Decrypt(s.priv, in.Password)
	if err != nil {
		writeJSON(w, map[string]any{"code": CodeAuthenticationError, "message": "Fail to crypt password"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[in.Email]
	if !ok {
		writeJSON(w, map[string]any{"code": CodeAuthenticationError, "message": fmt.Sprintf("Email: %s is not registered!", in.Email)})
		return
	}
	if u.password != password {
		writeJSON(w, map[string]any{"code": CodeAuthenticationError, "message": "Email and password do not match!"})
		return
	}

	session := uuid.NewString()
	s.sessions[session] = in.Email
	w.Header().Set("Authorization", session)
	writeJSON(w, map[string]any{"code": 0, "message": "Welcome back!"})
}

func (s *Server) newToken(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[r.URL.Path]++

	if _, ok := s.sessions[r.Header.Get("Authorization")]; !ok {
		writeJSON(w, map[string]any{"code": CodeUnauthorized, "message": "Unauthorized"})
		return
	}
	if s.token == "" {
		writeJSON(w, map[string]any{"code": 0, "data": nil})
		return
	}
	writeJSON(w, map[string]any{"code": 0, "data": map[string]string{"token": s.token}})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, in any) bool {
	s.mu.Lock()
	s.calls[r.URL.Path]++
	s.mu.Unlock()

	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]any{"code": 400, "message": err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
