// Package httpcall is the single request/response normalization routine
// shared by the gateway client and the forwarding proxy, so the two
// layers cannot diverge in error semantics.
package httpcall

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

// Result is one completed upstream exchange before policy
// interpretation. Body is the decoded JSON value; an empty or blank
// upstream body decodes to an empty object, never nil.
type Result struct {
	Status   int
	Raw      []byte
	Body     any
	ParseErr error
}

func (r Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Exchange issues the request and reads the full body. A network or
// read failure surfaces as *domain.TransportError; no response
// interpretation happens here beyond the JSON decode attempt.
func Exchange(client *http.Client, req *http.Request) (Result, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &domain.TransportError{Err: err}
	}

	result := Result{Status: resp.StatusCode, Raw: raw}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		result.Body = map[string]any{}
		return result, nil
	}
	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		result.ParseErr = err
		return result, nil
	}
	result.Body = decoded
	return result, nil
}

// Normalize applies the uniform response protocol: non-2xx fails with
// *domain.BackendError carrying the extracted message; a 2xx body that
// is non-empty but not JSON fails with *domain.MalformedResponseError;
// everything else yields the decoded body (an empty body is {}).
func (r Result) Normalize() (any, error) {
	if !r.OK() {
		return nil, &domain.BackendError{Status: r.Status, Message: Message(r.Raw, r.Status)}
	}
	if r.ParseErr != nil {
		return nil, &domain.MalformedResponseError{Body: string(r.Raw), Err: r.ParseErr}
	}
	return r.Body, nil
}

// Message extracts a human-readable error message from an upstream
// error body: the JSON message field, then error, then the raw text,
// then the HTTP status text, then a bare "HTTP <status>".
func Message(raw []byte, status int) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 {
		var payload any
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			if msg, ok := MessageField(payload); ok {
				return msg
			}
			return fmt.Sprintf("HTTP %d", status)
		}
		return string(trimmed)
	}
	if text := http.StatusText(status); text != "" {
		return fmt.Sprintf("HTTP %d: %s", status, text)
	}
	return fmt.Sprintf("HTTP %d", status)
}

// MessageField pulls the message field, then error, out of a decoded
// JSON error body. Both layers use this so the extraction order cannot
// diverge.
func MessageField(body any) (string, bool) {
	payload, ok := body.(map[string]any)
	if !ok {
		return "", false
	}
	if msg, ok := payload["message"].(string); ok && msg != "" {
		return msg, true
	}
	if msg, ok := payload["error"].(string); ok && msg != "" {
		return msg, true
	}
	return "", false
}
