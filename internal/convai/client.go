// Package convai mints signed conversation URLs from the conversational-AI
// voice vendor. The vendor owns STT, language generation, TTS and all
// conversation state; this client only fetches the short-lived websocket URL
// the telephony bridge connects to.
package convai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var httpClient = &http.Client{Timeout: 12 * time.Second}

type signedURLResponse struct {
	SignedURL string `json:"signed_url"`
	Message   string `json:"message,omitempty"`
}

// SignedURL fetches a short-lived signed websocket URL for a conversation
// with the given agent. Mock mode (USE_MOCK_CONVAI=true) returns a
// deterministic local URL.
func SignedURL(agentID string) (string, error) {
	if os.Getenv("USE_MOCK_CONVAI") == "true" {
		return "wss://mock.convai.invalid/conversation?agent_id=" + url.QueryEscape(agentID), nil
	}
	host := os.Getenv("CONVAI_URL")
	if host == "" {
		return "", errors.New("CONVAI_URL not set")
	}
	endpoint := strings.TrimRight(host, "/") + "/v1/convai/conversation/get-signed-url?agent_id=" + url.QueryEscape(agentID)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second
	var signed string
	var lastErr error
	op := func() error {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if key := os.Getenv("CONVAI_API_KEY"); key != "" {
			req.Header.Set("xi-api-key", key)
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("vendor error: status=%d body=%s", resp.StatusCode, raw)
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("signed url rejected: status=%d body=%s", resp.StatusCode, raw)
			return backoff.Permanent(lastErr)
		}
		var parsed signedURLResponse
		if err := json.Unmarshal(raw, &parsed); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, raw)
			return lastErr
		}
		if parsed.SignedURL == "" {
			lastErr = fmt.Errorf("empty signed url: %s", parsed.Message)
			return backoff.Permanent(lastErr)
		}
		signed = parsed.SignedURL
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		return "", lastErr
	}
	return signed, nil
}
