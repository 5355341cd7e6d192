// Package telephony is a thin client for the telephony vendor's REST API:
// place an outbound call bridged to the conversational-AI websocket, and
// fetch call status including answering machine detection. All signaling and
// audio stays vendor-side.
package telephony

import (
	"bytes"
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
	"github.com/google/uuid"

	"salesdialer-go/internal/logger"
)

var httpClient = &http.Client{Timeout: 12 * time.Second}

// CallInfo is the vendor's view of one call.
type CallInfo struct {
	CallID     string `json:"call_id"`
	Status     string `json:"status"`
	AnsweredBy string `json:"answered_by,omitempty"`
}

type placeCallRequest struct {
	To               string `json:"to"`
	From             string `json:"from"`
	ConversationURL  string `json:"conversation_url,omitempty"`
	MachineDetection bool   `json:"machine_detection"`
}

type callResponse struct {
	Sid        string `json:"sid"`
	Status     string `json:"status"`
	AnsweredBy string `json:"answered_by,omitempty"`
	Message    string `json:"message,omitempty"`
}

// PlaceCall asks the vendor to dial a prospect and bridge the answered call
// to conversationURL. Mock mode (USE_MOCK_TELEPHONY=true) returns a fake
// in-progress call for local runs without vendor credentials.
func PlaceCall(to, from, conversationURL string) (CallInfo, error) {
	if os.Getenv("USE_MOCK_TELEPHONY") == "true" {
		return CallInfo{CallID: "mock-" + uuid.New().String(), Status: "in-progress"}, nil
	}
	host := os.Getenv("TELEPHONY_URL")
	if host == "" {
		return CallInfo{}, errors.New("TELEPHONY_URL not set")
	}
	log := logger.New().WithField("module", "telephony")

	payload, _ := json.Marshal(placeCallRequest{
		To:               to,
		From:             from,
		ConversationURL:  conversationURL,
		MachineDetection: true,
	})
	var resp callResponse
	if err := doJSON(http.MethodPost, strings.TrimRight(host, "/")+"/calls", payload, &resp); err != nil {
		return CallInfo{}, err
	}
	if resp.Sid == "" {
		return CallInfo{}, fmt.Errorf("place call rejected: %s", resp.Message)
	}
	log.WithField("call_id", resp.Sid).WithField("status", resp.Status).Info("call placed")
	return CallInfo{CallID: resp.Sid, Status: resp.Status}, nil
}

// GetStatus fetches the vendor's view of a call, including the AMD result
// once available.
func GetStatus(callID string) (CallInfo, error) {
	if os.Getenv("USE_MOCK_TELEPHONY") == "true" {
		return CallInfo{CallID: callID, Status: "completed", AnsweredBy: "human"}, nil
	}
	host := os.Getenv("TELEPHONY_URL")
	if host == "" {
		return CallInfo{}, errors.New("TELEPHONY_URL not set")
	}
	var resp callResponse
	endpoint := strings.TrimRight(host, "/") + "/calls/" + url.PathEscape(callID)
	if err := doJSON(http.MethodGet, endpoint, nil, &resp); err != nil {
		return CallInfo{}, err
	}
	return CallInfo{CallID: resp.Sid, Status: resp.Status, AnsweredBy: resp.AnsweredBy}, nil
}

// doJSON sends one vendor request with exponential backoff. The request is
// rebuilt on every attempt so the body can be replayed; 5xx retries, 4xx is
// permanent.
func doJSON(method, endpoint string, body []byte, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second
	var lastErr error
	op := func() error {
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequest(method, endpoint, rd)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if key := os.Getenv("TELEPHONY_API_KEY"); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
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
			lastErr = fmt.Errorf("vendor rejected request: status=%d body=%s", resp.StatusCode, raw)
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, raw)
			return lastErr
		}
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		return lastErr
	}
	return nil
}
