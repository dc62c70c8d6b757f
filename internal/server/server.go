package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/thelang/internal/config"
	"github.com/example/thelang/internal/text"
	"github.com/example/thelang/internal/translit"
	"github.com/example/thelang/internal/vocab"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// TextEncoder turns English text into "The" text.
type TextEncoder interface {
	EncodeText(text string) string
}

// Vocabulary is the dictionary behind the word API and the decoder.
type Vocabulary interface {
	WithPrefix(prefix string) []string
	Add(word string) (string, error)
	Index() *translit.Index
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes int
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes: 4096,
		logger:       slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes for the
// encode and decode endpoints.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	enc   TextEncoder
	vocab Vocabulary
	opts  options
	log   *slog.Logger
}

// NewHandler returns an http.Handler that serves /health, /api/words,
// POST /api/encode and POST /api/decode.
func NewHandler(enc TextEncoder, v Vocabulary, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		enc:   enc,
		vocab: v,
		opts:  opts,
		log:   opts.logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/api/words", h.handleWords)
	mux.HandleFunc("/api/encode", h.handleEncode)
	mux.HandleFunc("/api/decode", h.handleDecode)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type wordBody struct {
	Word string `json:"word"`
}

func (h *handler) handleWords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listWords(w, r)
	case http.MethodPost:
		h.addWord(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *handler) listWords(w http.ResponseWriter, r *http.Request) {
	words := h.vocab.WithPrefix(r.URL.Query().Get("prefix"))

	out := make([]wordBody, len(words))
	for i, word := range words {
		out[i] = wordBody{Word: word}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) addWord(w http.ResponseWriter, r *http.Request) {
	var req wordBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	word, err := h.vocab.Add(req.Word)
	switch {
	case err == nil:
		h.log.InfoContext(r.Context(), "word added", slog.String("word", word))
		writeJSON(w, http.StatusCreated, wordBody{Word: word})
	case errors.Is(err, vocab.ErrDuplicate):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, vocab.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "add word failed",
			slog.String("word", req.Word),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type translateRequest struct {
	Text    string `json:"text"`
	Discord bool   `json:"discord"`
}

type translateResponse struct {
	Text string `json:"text"`
}

// readText decodes and validates a translate request. It writes the error
// response itself and reports whether the handler should continue. The text
// is passed on exactly as sent; empty text is valid and translates to "".
func (h *handler) readText(w http.ResponseWriter, r *http.Request) (translateRequest, bool) {
	var req translateRequest

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return req, false
	}

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return req, false
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return req, false
	}

	if len(req.Text) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return req, false
	}

	return req, true
}

func (h *handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readText(w, r)
	if !ok {
		return
	}

	start := time.Now()
	out := h.enc.EncodeText(req.Text)
	if req.Discord {
		out = text.DiscordCopy(out, req.Text)
	}

	h.log.InfoContext(r.Context(), "text encoded",
		slog.Int("text_len", len(req.Text)),
		slog.Bool("discord", req.Discord),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	writeJSON(w, http.StatusOK, translateResponse{Text: out})
}

func (h *handler) handleDecode(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readText(w, r)
	if !ok {
		return
	}

	start := time.Now()
	ix := h.vocab.Index()
	out := translit.DecodeText(req.Text, ix)

	h.log.InfoContext(r.Context(), "text decoded",
		slog.Int("text_len", len(req.Text)),
		slog.Int("vocabulary", ix.Words()),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	writeJSON(w, http.StatusOK, translateResponse{Text: out})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	cfg             config.Config
	store           *vocab.Store
	shutdownTimeout time.Duration
}

func New(cfg config.Config, store *vocab.Store) *Server {
	timeout := 30 * time.Second
	if cfg.Server.ShutdownTimeout > 0 {
		timeout = time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	}

	return &Server{
		cfg:             cfg,
		store:           store,
		shutdownTimeout: timeout,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

func (s *Server) Start(ctx context.Context) error {
	if s.store == nil {
		return errors.New("server: no vocabulary store")
	}

	h := NewHandler(s.store.Encoder(), s.store,
		WithMaxTextBytes(s.cfg.Server.MaxTextBytes),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("listening",
		slog.String("addr", s.cfg.Server.ListenAddr),
		slog.Int("words", s.store.Count()),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

// CheckHealth reports an error unless the server at addr answers /health
// with 200 OK.
func CheckHealth(addr string) error {
	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %s", resp.Status)
	}
	return nil
}
