// Package http exposes verification over a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/pipeline"
)

// Server wraps a Verifier behind an HTTP API
type Server struct {
	verifier *pipeline.Verifier
	verbose  bool
	httpSrv  *http.Server
}

// NewServer creates a new Server listening on addr
func NewServer(addr string, verifier *pipeline.Verifier, verbose bool) *Server {
	s := &Server{
		verifier: verifier,
		verbose:  verbose,
	}

	mux := http.NewServeMux()
	// Method-restricted registration compatible with Go toolchains older
	// than 1.22, where ServeMux patterns cannot carry an HTTP method.
	mux.HandleFunc("/verify", requireMethod(http.MethodPost, s.handleVerify))
	mux.HandleFunc("/healthz", requireMethod(http.MethodGet, s.handleHealth))

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.withRequestID(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// ListenAndServe blocks serving requests until Shutdown
func (s *Server) ListenAndServe() error {
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// verifyRequest accepts exactly one input field
type verifyRequest struct {
	Claim   string `json:"claim,omitempty"`
	URL     string `json:"url,omitempty"`
	OCRText string `json:"ocr_text,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body", RequestID: requestID})
		return
	}

	var report *model.VerificationReport
	var err error

	switch {
	case req.URL != "":
		report, err = s.verifier.VerifyURL(r.Context(), req.URL)
	case req.OCRText != "":
		report, err = s.verifier.VerifyImageText(r.Context(), req.OCRText)
	case req.Claim != "":
		report, err = s.verifier.VerifyText(r.Context(), req.Claim)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "one of claim, url, or ocr_text is required", RequestID: requestID})
		return
	}

	if err != nil {
		if s.verbose {
			fmt.Fprintf(os.Stderr, "[%s] verification failed: %v\n", requestID, err)
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "verification failed", RequestID: requestID})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireMethod mirrors the 405 behavior of Go 1.22+ method patterns.
func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

type contextKey string

const requestIDKey contextKey = "request_id"

// withRequestID tags every request with a UUID for log correlation
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)

		if s.verbose {
			fmt.Fprintf(os.Stderr, "[%s] %s %s\n", requestID, r.Method, r.URL.Path)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
