// Package netx holds network probes used by the client tooling: a RAGFlow
// endpoint check and a plain TCP reachability check for the relay.
package netx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// EndpointTimeout bounds one endpoint probe.
	EndpointTimeout = 5 * time.Second
	// DialTimeout bounds one TCP reachability probe.
	DialTimeout = 2 * time.Second
)

// EndpointStatus is the outcome of probing one RAGFlow endpoint.
type EndpointStatus struct {
	URL        string
	HTTPStatus int
	Active     bool
	Detail     string
}

func (s EndpointStatus) String() string {
	if s.Active {
		return fmt.Sprintf("%s → Active (HTTP %d)", s.URL, s.HTTPStatus)
	}
	return fmt.Sprintf("%s → Invalid endpoint or error (HTTP %d) | %s", s.URL, s.HTTPStatus, s.Detail)
}

// CheckEndpoint GETs baseURL+endpoint and decides whether RAGFlow serves it.
//
// RAGFlow answers unknown routes with HTTP 200 and a JSON body whose message
// mentions NotFound, so the status code alone proves nothing. A JSON body is
// active when code is 0 or the message does not mention NotFound; any other
// body is active only with HTTP 200. An error means the endpoint could not be
// reached at all.
func CheckEndpoint(ctx context.Context, client *http.Client, baseURL, endpoint string) (EndpointStatus, error) {
	if client == nil {
		client = http.DefaultClient
	}

	url := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
	st := EndpointStatus{URL: url}

	ctx, cancel := context.WithTimeout(ctx, EndpointTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return st, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return st, fmt.Errorf("%s unreachable: %w", url, err)
	}
	defer resp.Body.Close()

	st.HTTPStatus = resp.StatusCode

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return st, fmt.Errorf("read %s: %w", url, err)
	}

	var body struct {
		Code    *int `json:"code"`
		Message any  `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		st.Active = resp.StatusCode == http.StatusOK
		st.Detail = "Non-JSON response"
		return st, nil
	}

	message := ""
	if body.Message != nil {
		message = fmt.Sprint(body.Message)
	}

	if (body.Code != nil && *body.Code == 0) || !strings.Contains(message, "NotFound") {
		st.Active = true
		return st, nil
	}

	st.Detail = message
	return st, nil
}

// DialCheck reports whether something accepts TCP connections on addr.
// A zero timeout means DialTimeout.
func DialCheck(ctx context.Context, addr string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DialTimeout
	}

	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("cannot connect to %s: %w", addr, err)
	}
	return conn.Close()
}
