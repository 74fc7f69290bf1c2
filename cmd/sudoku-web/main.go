package main

import (
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	httpadapter "github.com/Shailsharma2604/Sudoku-Game/internal/adapters/http"
	"github.com/Shailsharma2604/Sudoku-Game/internal/generator"
	"github.com/Shailsharma2604/Sudoku-Game/internal/hint"
	"github.com/Shailsharma2604/Sudoku-Game/internal/infrastructure/storage"
	"github.com/Shailsharma2604/Sudoku-Game/internal/ports"
	"github.com/Shailsharma2604/Sudoku-Game/internal/solver"
	"github.com/Shailsharma2604/Sudoku-Game/internal/usecase"
	"github.com/Shailsharma2604/Sudoku-Game/internal/validator"
	"github.com/Shailsharma2604/Sudoku-Game/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "backtrack", "solver to use: backtrack|dlx")
	genKind := flag.String("generator", "random", "puzzle generator: random|unique")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "dlx":
		s = solver.NewDLXSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}

	// The unique carve leans on the solver's solution counter; the random
	// carve is fast and the default.
	var g ports.Generator
	switch strings.ToLower(strings.TrimSpace(*genKind)) {
	case "unique":
		g = generator.NewUniqueGenerator(s)
	default:
		g = generator.NewRandomGenerator()
	}

	// Wire providers → use cases → HTTP adapter
	v := validator.New()
	lb := storage.NewLeaderboard(filepath.Join(*persist, "leaderboard.json"))
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin, lb)
	h := httpadapter.New(uc, logger)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "solver", *solverKind, "generator", *genKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
