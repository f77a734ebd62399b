package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// The response side of every call runs as a small state machine so the
// single-retry guarantee is visible in one place instead of being implied by
// nested callbacks:
//
//	initial ──2xx/other──▶ done
//	initial ──401,attempt 0──▶ refreshing
//	refreshing ──no refresh token / refresh failed──▶ failed (store cleared,
//	        original 401 surfaces)
//	refreshing ──refresh ok──▶ retried ──any outcome──▶ done
//
// A request that already retried never re-enters refreshing.
type pipelineState int

const (
	stateInitial pipelineState = iota
	stateRefreshing
	stateRetried
	stateDone
	stateFailed
)

// request is a replayable descriptor of one API call. The body is held as
// bytes, not a consumed reader, so the retry dispatch sends exactly the same
// payload.
type request struct {
	method string
	path   string
	body   []byte // JSON-encoded, nil for no body
}

// retryContext travels alongside a request through the pipeline instead of
// being flagged onto a shared request object. It is copied, never mutated in
// place, so an aliased descriptor can never smuggle a retry marker between
// calls.
type retryContext struct {
	attempt int // dispatches already performed for this descriptor
}

func (rc retryContext) retried() retryContext {
	return retryContext{attempt: rc.attempt + 1}
}

// send runs one request through the pipeline and returns the final response.
// Non-2xx responses are returned as responses, not errors; callers decide how
// to surface them. The exceptions are the refresh-failure paths, which
// resolve to the original 401 as an error after clearing the store.
func (c *Client) send(ctx context.Context, req request) (*http.Response, error) {
	var (
		rc    retryContext
		state = stateInitial

		resp     *http.Response
		finalErr error
	)

	for {
		switch state {
		case stateInitial:
			r, err := c.dispatch(ctx, req, rc)
			rc = rc.retried()
			if err != nil {
				finalErr = err
				state = stateFailed
				break
			}
			resp = r
			if r.StatusCode == http.StatusUnauthorized && rc.attempt == 1 {
				state = stateRefreshing
				break
			}
			state = stateDone

		case stateRefreshing:
			// Capture the original 401 before its body is gone; if the
			// refresh fails, this is what the caller receives, keeping
			// caller-side 401 handling uniform.
			originalErr := drainError(resp)

			refreshToken := c.creds.RefreshToken(ctx)
			if refreshToken == "" {
				c.clearSession(ctx, "missing refresh token")
				finalErr = originalErr
				state = stateFailed
				break
			}

			if err := c.refreshAccessToken(ctx, refreshToken); err != nil {
				c.clearSession(ctx, "refresh rejected")
				c.log(ctx).Info("token refresh failed",
					"path", req.path, "error", err)
				finalErr = originalErr
				state = stateFailed
				break
			}

			state = stateRetried

		case stateRetried:
			// Exactly one retry; its outcome is final whatever the status.
			r, err := c.dispatch(ctx, req, rc)
			rc = rc.retried()
			if err != nil {
				finalErr = err
				state = stateFailed
				break
			}
			resp = r
			state = stateDone

		case stateDone:
			return resp, nil

		case stateFailed:
			return nil, finalErr
		}
	}
}

// dispatch performs one HTTP exchange for the descriptor. The access token is
// read from the store at dispatch time, so a retry automatically picks up a
// freshly persisted token. An absent token does not block the request; the
// server rejects it if auth was required.
func (c *Client) dispatch(ctx context.Context, req request, rc retryContext) (*http.Response, error) {
	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.url(req.path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if token := c.creds.AccessToken(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if rc.attempt > 0 {
		c.log(ctx).Debug("retried request completed",
			"path", req.path, "status", resp.StatusCode)
	}
	return resp, nil
}

// refreshAccessToken exchanges the refresh token for a new access token and
// persists it. The refresh token itself and the cached profile are untouched.
// The refresh call is a plain dispatch: it never re-enters the pipeline.
func (c *Client) refreshAccessToken(ctx context.Context, refreshToken string) error {
	payload, err := json.Marshal(refreshRequest{Refresh: refreshToken})
	if err != nil {
		return fmt.Errorf("encode refresh request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.url("/auth/token/refresh"), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}

	var tokenResp refreshResponse
	if err := json.Unmarshal(bodyBytes, &tokenResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if tokenResp.Access == "" {
		return fmt.Errorf("refresh response missing access token")
	}

	return c.creds.SaveAccessToken(ctx, tokenResp.Access)
}

// clearSession wipes tokens and cached profile after a terminal auth failure.
// A failed clear is logged but not surfaced; the caller already has the
// original authentication error to deal with.
func (c *Client) clearSession(ctx context.Context, reason string) {
	if err := c.creds.Clear(ctx); err != nil {
		c.log(ctx).Error("failed to clear credentials",
			"reason", reason, "error", err)
		return
	}
	c.log(ctx).Info("session cleared", "reason", reason)
}

// drainError reads and closes a non-2xx response, converting it to *Error.
func drainError(resp *http.Response) error {
	defer resp.Body.Close()
	bodyBytes, _ := io.ReadAll(resp.Body)
	return parseErrorResponse(resp.StatusCode, bodyBytes)
}

// doJSON sends a request through the pipeline and decodes a 2xx JSON body
// into out (ignored when out is nil). Non-2xx responses become *Error.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	resp, err := c.send(ctx, request{method: method, path: path, body: payload})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
