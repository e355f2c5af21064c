package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/courtdata/statline/internal/config"
	"github.com/courtdata/statline/internal/export"
	"github.com/courtdata/statline/internal/pipeline"
	"github.com/courtdata/statline/pkg/tabular"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stat sheet upload server",
	Long: `Serves the ranking pipeline over HTTP. POST a CSV or XLSX stat
sheet to /v1/rank and get the ranked records, batch summary, and validation
warnings back as JSON (or CSV with ?format=csv). Every request is its own
batch: nothing is shared or persisted between uploads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(cfg),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// newRouter builds the HTTP handler tree for the upload server.
func newRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSONStatus(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(rateLimit(limiter))
		r.Post("/rank", rankHandler(cfg))
	})

	return r
}

// requestLogger logs one line per request through the global zap logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// rateLimit rejects requests over the shared token bucket with 429.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rankHandler accepts a multipart stat sheet upload and runs one isolated
// pipeline batch over it.
func rankHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, cfg.Server.MaxUploadBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeJSONError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("upload exceeds %d bytes", cfg.Server.MaxUploadBytes))
				return
			}
			writeJSONError(w, http.StatusBadRequest, `multipart field "file" is required`)
			return
		}
		defer file.Close() //nolint:errcheck

		ext := filepath.Ext(header.Filename)
		if ext != ".csv" && ext != ".xlsx" {
			writeJSONError(w, http.StatusBadRequest,
				fmt.Sprintf("unsupported upload format %q: send .csv or .xlsx", ext))
			return
		}

		result, err := runUpload(file, header.Filename, ext, cfg.Scoring)
		if err != nil {
			status := http.StatusInternalServerError
			if pipeline.IsSchema(err) || tabular.IsEmptySource(err) {
				status = http.StatusUnprocessableEntity
			}
			writeJSONError(w, status, err.Error())
			return
		}

		if r.URL.Query().Get("format") == "csv" {
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename="ranked_players.csv"`)
			if err := export.WriteCSV(w, result.Records); err != nil {
				zap.L().Error("serve: write csv response", zap.Error(err))
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := export.WriteJSON(w, result); err != nil {
			zap.L().Error("serve: write json response", zap.Error(err))
		}
	}
}

// runUpload spools the upload to a temp file so the tabular readers can
// dispatch on its extension, then runs the pipeline. The spool file is
// removed before returning.
func runUpload(file io.Reader, name, ext string, scoring config.ScoringConfig) (*pipeline.Result, error) {
	tmp, err := os.CreateTemp("", "statline-upload-*"+ext)
	if err != nil {
		return nil, eris.Wrap(err, "serve: spool upload")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "serve: spool upload")
	}
	if err := tmp.Close(); err != nil {
		return nil, eris.Wrap(err, "serve: spool upload")
	}

	tbl, err := tabular.Read(tmp.Name(), tabular.Options{})
	if err != nil {
		return nil, err
	}
	tbl.Source = name // report the uploaded name, not the spool path

	return pipeline.Run(tbl, scoring)
}

func writeJSONStatus(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSONStatus(w, status, map[string]string{"error": msg})
}
