package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	h "hackhub/internal/delivery/http/helpers"
	"hackhub/internal/metrics"
)

const (
	// IdempotencyKeyHeader is the request header naming a client-chosen idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader is set to "true" on responses served from the cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"

	maxIdempotentBodyBytes = 1 << 20
)

// IdempotencyConfig holds configuration for the idempotency store.
type IdempotencyConfig struct {
	TTL     time.Duration // how long completed responses are replayed (default 24h)
	Cleanup time.Duration // cleanup interval (default 1h)
}

// IdempotencyStore remembers responses by idempotency key so a retried request is answered
// without running the handler again.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]*idempotencyEntry
	ttl     time.Duration
	stop    chan struct{}
	now     func() time.Time
}

type idempotencyEntry struct {
	status    int
	headers   http.Header
	body      []byte
	expiresAt time.Time
	inFlight  bool
	done      chan struct{}
}

// NewIdempotencyStore returns a store and starts its cleanup loop. Call Stop when done.
func NewIdempotencyStore(cfg IdempotencyConfig) *IdempotencyStore {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Cleanup <= 0 {
		cfg.Cleanup = time.Hour
	}
	s := &IdempotencyStore{
		entries: make(map[string]*idempotencyEntry),
		ttl:     cfg.TTL,
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	go s.cleanupLoop(cfg.Cleanup)
	return s
}

// Stop ends the cleanup loop.
func (s *IdempotencyStore) Stop() {
	close(s.stop)
}

func (s *IdempotencyStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stop:
			return
		}
	}
}

func (s *IdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, entry := range s.entries {
		if !entry.inFlight && entry.expiresAt.Before(now) {
			delete(s.entries, key)
		}
	}
}

// acquire returns either a completed entry to replay, or a fresh in-flight entry the caller
// now owns. Requests that find the key in flight wait for the owner to finish.
func (s *IdempotencyStore) acquire(r *http.Request, key string) (entry *idempotencyEntry, owner bool, ok bool) {
	for {
		s.mu.Lock()
		e, exists := s.entries[key]
		switch {
		case exists && e.inFlight:
			s.mu.Unlock()
			select {
			case <-e.done:
				continue
			case <-r.Context().Done():
				return nil, false, false
			}
		case exists && e.expiresAt.After(s.now()):
			s.mu.Unlock()
			return e, false, true
		}
		e = &idempotencyEntry{inFlight: true, done: make(chan struct{})}
		s.entries[key] = e
		s.mu.Unlock()
		return e, true, true
	}
}

// complete stores the captured response. Server errors and handlers that wrote nothing are
// forgotten so the client can retry.
func (s *IdempotencyStore) complete(key string, e *idempotencyEntry, rec *idempotencyResponseWriter) {
	if rec.status == 0 || rec.status >= http.StatusInternalServerError {
		s.forget(key, e)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e.status = rec.status
	e.headers = replayableHeaders(rec.Header())
	e.body = rec.body.Bytes()
	e.expiresAt = s.now().Add(s.ttl)
	e.inFlight = false
	close(e.done)
}

// replayableHeaders drops the per-request headers set by outer middleware.
func replayableHeaders(header http.Header) http.Header {
	out := header.Clone()
	out.Del(RequestIDHeader)
	out.Del("Vary")
	for k := range out {
		if strings.HasPrefix(k, "Access-Control-") {
			delete(out, k)
		}
	}
	return out
}

// forget drops an in-flight entry and wakes its waiters, which then run the handler themselves.
func (s *IdempotencyStore) forget(key string, e *idempotencyEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[key] == e {
		delete(s.entries, key)
	}
	e.inFlight = false
	close(e.done)
}

// idempotencyKey hashes the caller, the client key and the request fingerprint.
func idempotencyKey(userID, clientKey, method, path string, body []byte) string {
	sum := sha256.New()
	for _, part := range []string{userID, clientKey, method, path} {
		sum.Write([]byte(part))
		sum.Write([]byte{0})
	}
	sum.Write(body)
	return hex.EncodeToString(sum.Sum(nil))
}

type idempotencyResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *idempotencyResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *idempotencyResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency wraps a POST handler so that requests repeating an Idempotency-Key (same caller,
// path and body) get the first response replayed instead of running the handler again. Requests
// without the header pass through.
func Idempotency(store *IdempotencyStore) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			clientKey := r.Header.Get(IdempotencyKeyHeader)
			if clientKey == "" || (r.Method != http.MethodPost && r.Method != http.MethodPatch) {
				next(w, r)
				return
			}
			userID, _ := UserIDFromContext(r.Context())
			if userID == "" {
				userID = r.RemoteAddr
			}
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxIdempotentBodyBytes))
			if err != nil {
				h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "could not read request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			key := idempotencyKey(userID, clientKey, r.Method, r.URL.Path, body)
			entry, owner, ok := store.acquire(r, key)
			if !ok {
				return
			}
			if !owner {
				metrics.IdempotentReplays.Inc()
				for k, v := range entry.headers {
					w.Header()[k] = append([]string(nil), v...)
				}
				w.Header().Set(IdempotencyReplayedHeader, "true")
				w.WriteHeader(entry.status)
				_, _ = w.Write(entry.body)
				return
			}

			rec := &idempotencyResponseWriter{ResponseWriter: w}
			defer func() {
				if p := recover(); p != nil {
					store.forget(key, entry)
					panic(p)
				}
			}()
			next(rec, r)
			store.complete(key, entry, rec)
		}
	}
}
