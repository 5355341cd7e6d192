package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"salesdialer-go/internal/convai"
	"salesdialer-go/internal/leads"
	"salesdialer-go/internal/logger"
	"salesdialer-go/internal/objection"
	"salesdialer-go/internal/outcome"
	"salesdialer-go/internal/script"
	"salesdialer-go/internal/telephony"
	"salesdialer-go/internal/types"
)

const defaultOpeningScript = "Hi {first_name}, this is {agent_name}. I'm reaching out to {company} about {product}. Did I catch you at an okay time?"

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "salesdialer-go").Info("starting service")

	// load prospect list into memory; the objection endpoints work without it
	leadsPath := envOr("LEADS_PATH", "leads.xlsx")
	prospects, err := leads.Load(leadsPath)
	if err != nil {
		log.WithError(err).WithField("leads_path", leadsPath).Warn("prospect list unavailable, /leads/summary disabled")
	} else {
		log.WithField("total_leads", len(prospects)).Info("prospect list loaded")
	}

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// classify + respond in one shot (the orchestrator's hot path)
	mux.HandleFunc("/objection/handle", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "objection-handle")
		var in struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			reqLog.WithError(err).Warn("invalid body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		resp := objection.HandleObjection(in.Text)
		reqLog.WithField("category", string(resp.Category)).WithField("confidence", resp.Confidence).Info("objection handled")
		writeJSON(w, resp)
	})

	// classification only
	mux.HandleFunc("/objection/detect", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "objection-detect")
		var in struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			reqLog.WithError(err).Warn("invalid body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		det := objection.DetectObjection(in.Text)
		reqLog.WithField("category", string(det.Category)).Info("objection detected")
		writeJSON(w, det)
	})

	// catalog of categories and their trigger phrases
	mux.HandleFunc("/objection/types", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "objection-types").Info("catalog requested")
		type entry struct {
			Category objection.Category `json:"category"`
			Examples []string           `json:"examples,omitempty"`
		}
		var out []entry
		for _, cat := range objection.ListObjectionTypes() {
			out = append(out, entry{Category: cat, Examples: objection.ExamplePhrases(cat)})
		}
		writeJSON(w, out)
	})

	// positive-sentiment heuristic
	mux.HandleFunc("/interest", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "interest")
		var in struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			reqLog.WithError(err).Warn("invalid body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		sig := objection.DetectInterest(in.Text)
		reqLog.WithField("interested", sig.Interested).Info("interest scored")
		writeJSON(w, sig)
	})

	// personalize a call script for one lead
	mux.HandleFunc("/script/render", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "script-render")
		var in struct {
			Template  string     `json:"template"`
			Lead      types.Lead `json:"lead"`
			AgentName string     `json:"agent_name"`
			Product   string     `json:"product"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			reqLog.WithError(err).Warn("invalid body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		if in.Template == "" {
			in.Template = envOr("OPENING_SCRIPT", defaultOpeningScript)
		}
		rendered := script.Personalize(in.Template, in.Lead, in.AgentName, in.Product)
		reqLog.Info("script rendered")
		writeJSON(w, map[string]string{"script": rendered})
	})

	// classify a finished call
	mux.HandleFunc("/outcome", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "outcome")
		var in struct {
			Transcript string `json:"transcript"`
			Status     string `json:"status"`
			AnsweredBy string `json:"answered_by"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			reqLog.WithError(err).Warn("invalid body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		result := outcome.Classify(in.Transcript, in.Status, in.AnsweredBy)
		reqLog.WithField("outcome", string(result)).Info("call classified")
		writeJSON(w, map[string]string{"outcome": string(result)})
	})

	// dial a prospect: mint a signed conversation URL, then place the call
	mux.HandleFunc("/call", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "call")
		var lead types.Lead
		if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
			reqLog.WithError(err).Warn("invalid body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		if lead.Phone == "" {
			reqLog.Warn("missing phone")
			http.Error(w, "missing phone", http.StatusBadRequest)
			return
		}

		convURL, err := convai.SignedURL(os.Getenv("CONVAI_AGENT_ID"))
		if err != nil {
			reqLog.WithError(err).Error("signed url failed")
			http.Error(w, "conversation vendor unavailable", http.StatusBadGateway)
			return
		}
		info, err := telephony.PlaceCall(lead.Phone, envOr("CALLER_ID", ""), convURL)
		if err != nil {
			reqLog.WithError(err).Error("place call failed")
			http.Error(w, "telephony vendor unavailable", http.StatusBadGateway)
			return
		}
		opening := script.Personalize(envOr("OPENING_SCRIPT", defaultOpeningScript), lead, envOr("AGENT_NAME", "our sales team"), "")
		logger.New().WithCall(info.CallID).WithField("lead_phone", lead.Phone).Info("call placed")
		writeJSON(w, map[string]interface{}{
			"call_id":        info.CallID,
			"status":         info.Status,
			"opening_script": opening,
		})
	})

	// vendor call status plus a status-only outcome (voicemail / no answer)
	mux.HandleFunc("/call/status", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "call-status")
		callID := r.URL.Query().Get("call_id")
		if callID == "" {
			reqLog.Warn("missing call_id")
			http.Error(w, "missing call_id", http.StatusBadRequest)
			return
		}
		info, err := telephony.GetStatus(callID)
		if err != nil {
			reqLog.WithError(err).Error("status fetch failed")
			http.Error(w, "telephony vendor unavailable", http.StatusBadGateway)
			return
		}
		result := outcome.Classify("", info.Status, info.AnsweredBy)
		reqLog.WithField("status", info.Status).WithField("outcome", string(result)).Info("status fetched")
		writeJSON(w, map[string]interface{}{
			"call_id":     info.CallID,
			"status":      info.Status,
			"answered_by": info.AnsweredBy,
			"outcome":     string(result),
		})
	})

	// campaign overview over the loaded prospect list
	mux.HandleFunc("/leads/summary", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "leads-summary")
		if prospects == nil {
			reqLog.Warn("prospect list not loaded")
			http.Error(w, "prospect list unavailable", http.StatusServiceUnavailable)
			return
		}
		reqLog.Info("summary requested")
		writeJSON(w, leads.Summarize(prospects))
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
