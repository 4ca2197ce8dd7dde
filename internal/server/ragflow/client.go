// Package ragflow is a small client for the RAGFlow user HTTP endpoints the
// relay forwards to: registration, login and API token issuance.
//
// Every endpoint answers with a JSON envelope {code, message, data}. A code
// of zero means success; any other value is an application error that the
// caller reports back verbatim. The envelope is decoded whatever the HTTP
// status is, because RAGFlow reports most failures with 200 and a non-zero
// code.
package ragflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/ragrelay/internal/common"
)

const (
	RegisterPath = "/v1/user/register"
	LoginPath    = "/v1/user/login"
	NewTokenPath = "/v1/system/new_token"
)

// maxBodySize caps the downstream response read.
const maxBodySize = 1 << 20

// Response is the RAGFlow JSON envelope.
type Response struct {
	Code    int
	Message *string
	Data    json.RawMessage
}

type envelope struct {
	Code    *int            `json:"code"`
	Message *string         `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// OK reports whether the downstream accepted the request.
func (r *Response) OK() bool {
	return r.Code == 0
}

// MessageOr returns the message field, or fallback when it was absent.
func (r *Response) MessageOr(fallback string) string {
	if r.Message == nil {
		return fallback
	}
	return *r.Message
}

// Token extracts data.token from a new_token response.
func (r *Response) Token() (string, error) {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return "", common.ErrEmptyToken
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return "", fmt.Errorf("%w: data: %v", common.ErrMalformedResponse, err)
	}
	if data.Token == "" {
		return "", common.ErrEmptyToken
	}
	return data.Token, nil
}

type registerRequest struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client talks to one RAGFlow deployment. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for baseURL (e.g. "http://ragflow:9380").
// httpClient carries the timeout and transport; nil means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Register creates a user account. password must already be the
// downstream-encrypted credential.
func (c *Client) Register(ctx context.Context, email, nickname, password string) (*Response, error) {
	res, _, err := c.post(ctx, RegisterPath, registerRequest{Email: email, Nickname: nickname, Password: password}, "")
	return res, err
}

// Login authenticates a user and returns the envelope together with the
// Authorization response header, which is empty when the downstream did not
// set it.
func (c *Client) Login(ctx context.Context, email, password string) (*Response, string, error) {
	res, header, err := c.post(ctx, LoginPath, loginRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, "", err
	}
	return res, header.Get(common.AuthorizationHeaderName), nil
}

// NewToken issues an API token for the session identified by authorization.
func (c *Client) NewToken(ctx context.Context, authorization string) (*Response, error) {
	res, _, err := c.post(ctx, NewTokenPath, nil, authorization)
	return res, err
}

func (c *Client) post(ctx context.Context, path string, in any, authorization string) (*Response, http.Header, error) {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, nil, err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set(common.AuthorizationHeaderName, authorization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, nil, fmt.Errorf("read %s response: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %s: %v", common.ErrMalformedResponse, path, resp.Status, err)
	}
	if env.Code == nil {
		return nil, nil, fmt.Errorf("%w: %s: %s: no code field", common.ErrMalformedResponse, path, resp.Status)
	}

	return &Response{Code: *env.Code, Message: env.Message, Data: env.Data}, resp.Header, nil
}
