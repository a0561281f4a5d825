package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/readiness-cli/internal/config"
	"github.com/sells-group/readiness-cli/internal/diagnostic"
	"github.com/sells-group/readiness-cli/internal/offer"
	"github.com/sells-group/readiness-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the evaluation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close() //nolint:errcheck

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(s, cfg.Server),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the API router with CORS and rate limiting.
func newRouter(s store.Store, serverCfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: serverCfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	if serverCfg.RatePerSecond > 0 {
		limiter := rate.NewLimiter(rate.Limit(serverCfg.RatePerSecond), serverCfg.RateBurst)
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if !limiter.Allow() {
					writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
					return
				}
				next.ServeHTTP(w, req)
			})
		})
	}

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1/evaluations", func(r chi.Router) {
		r.Post("/", handleCreateEvaluation(s))
		r.Get("/", handleListEvaluations(s))
		r.Get("/{id}", handleGetEvaluation(s))
	})

	return r
}

// handleCreateEvaluation scores a submitted offer and persists the result.
// The composite score is computed synchronously; an incomplete input gets a
// 422 with the failing field.
func handleCreateEvaluation(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var input offer.DiagnosticInput
		if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		eval, err := diagnostic.Evaluate(input.Normalized())
		if err != nil {
			if offer.IsValidation(err) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			zap.L().Error("evaluate failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "evaluation failed")
			return
		}

		rec, err := s.SaveEvaluation(req.Context(), eval)
		if err != nil {
			zap.L().Error("save evaluation failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "save failed")
			return
		}

		zap.L().Info("evaluation created",
			zap.String("id", rec.ID),
			zap.Int("alignment_score", rec.Score.AlignmentScore),
			zap.Bool("outbound_ready", rec.Score.OutboundReady),
		)
		writeJSON(w, http.StatusCreated, rec)
	}
}

func handleListEvaluations(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		filter := store.Filter{
			Label: diagnostic.ReadinessLabel(req.URL.Query().Get("label")),
		}
		if v := req.URL.Query().Get("ready"); v != "" {
			ready, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "ready must be a boolean")
				return
			}
			filter.Ready = &ready
		}
		if v := req.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
			filter.Limit = n
		}
		if v := req.URL.Query().Get("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "offset must be a non-negative integer")
				return
			}
			filter.Offset = n
		}

		records, err := s.ListEvaluations(req.Context(), filter)
		if err != nil {
			zap.L().Error("list evaluations failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "list failed")
			return
		}
		if records == nil {
			records = []store.Record{}
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func handleGetEvaluation(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")

		rec, err := s.GetEvaluation(req.Context(), id)
		if err != nil {
			zap.L().Error("get evaluation failed", zap.String("id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "get failed")
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, "evaluation not found")
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
