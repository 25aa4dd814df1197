package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/founditapp/foundit/internal/api"
	"github.com/founditapp/foundit/internal/config"
	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/notify"
	"github.com/founditapp/foundit/internal/photo"
	"github.com/founditapp/foundit/internal/store"
	"github.com/founditapp/foundit/internal/store/dynamostore"
	"github.com/founditapp/foundit/internal/store/filestore"
	"github.com/founditapp/foundit/internal/store/sqlitestore"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR goes
// to stderr. If logPath is non-empty, all levels are also written to that file.
// Returns a cleanup function that closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	stdoutW := io.Writer(os.Stdout)
	stderrW := io.Writer(os.Stderr)

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(os.Stdout, f)
		stderrW = io.MultiWriter(os.Stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

func main() {
	fs := flag.NewFlagSet("foundit", flag.ContinueOnError)

	var addr string
	fs.StringVar(&addr, "addr", "", "")
	fs.StringVar(&addr, "a", "", "")

	var envFile string
	fs.StringVar(&envFile, "env", ".env", "")
	fs.StringVar(&envFile, "e", ".env", "")

	var dataDir string
	fs.StringVar(&dataDir, "data", "", "")
	fs.StringVar(&dataDir, "d", "", "")

	var publicDir string
	fs.StringVar(&publicDir, "public", "", "")
	fs.StringVar(&publicDir, "p", "", "")

	var logPath string
	fs.StringVar(&logPath, "log", "", "")
	fs.StringVar(&logPath, "l", "", "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: foundit [flags]

Flags:
  -a, -addr <host:port>   listen address (default: FOUNDIT_ADDR or :8080)
  -d, -data <dir>         data directory for the file backend (default: FOUNDIT_DATA_DIR or data)
  -e, -env <path>         env file to load (default: .env)
  -p, -public <dir>       static site directory (default: FOUNDIT_PUBLIC_DIR or public)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	// Optionally also write to a log file.
	closeLog, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if publicDir != "" {
		cfg.PublicDir = publicDir
	}

	// Open the configured persistence backend.
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("store ready", "backend", cfg.Backend)

	// Bootstrap the admin credential document on first run.
	if err := ensureCredentials(context.Background(), st, cfg); err != nil {
		slog.Error("failed to bootstrap admin credentials", "error", err)
		os.Exit(1)
	}

	// Auto-generate JWT secret if not provided.
	if cfg.JWTSecret == "" {
		secret, err := generatePassword(32)
		if err != nil {
			slog.Error("failed to generate JWT secret", "error", err)
			os.Exit(1)
		}
		cfg.JWTSecret = secret
		slog.Info("JWT secret auto-generated (tokens will be invalidated on restart)")
	}

	photos, err := photo.NewStore(cfg.UploadDir)
	if err != nil {
		slog.Error("failed to set up photo storage", "error", err)
		os.Exit(1)
	}

	notifier := notify.New(cfg.SMTP)

	// Combine: API routes take priority, uploads and the static site
	// handle the rest.
	router := api.NewRouter(st, photos, notifier, cfg.JWTSecret)

	mux := http.NewServeMux()
	mux.Handle("/api/", router)
	mux.Handle("/metrics", router)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(photos.Dir()))))
	mux.Handle("/", http.FileServer(http.Dir(cfg.PublicDir)))

	handler := api.LoggingMiddleware(api.MetricsMiddleware(mux))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing store")
}

// openStore builds the persistence backend named by the configuration.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return filestore.New(cfg.DataDir)
	case config.BackendSQLite:
		return sqlitestore.New(cfg.DBPath)
	case config.BackendDynamo:
		return dynamostore.New(context.Background(), cfg.AWSRegion, cfg.TableName)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// ensureCredentials creates the admin credential document on first run. A
// configured password is used as-is; otherwise one is generated and printed
// once.
func ensureCredentials(ctx context.Context, st store.Store, cfg *config.Config) error {
	creds, err := st.Credentials().Get(ctx)
	if err != nil {
		return err
	}
	if creds != nil {
		return nil
	}

	password := cfg.AdminPassword
	generated := false
	if password == "" {
		password, err = generatePassword(16)
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := st.Credentials().Set(ctx, &model.Credentials{
		Username:     cfg.AdminUser,
		PasswordHash: string(hash),
	}); err != nil {
		return err
	}

	fmt.Println("Admin account created:")
	fmt.Printf("  Username: %s\n", cfg.AdminUser)
	if generated {
		fmt.Printf("  Password: %s\n", password)
		fmt.Println()
		fmt.Println("Save this password, it cannot be recovered.")
	} else {
		fmt.Println("  Password: (from FOUNDIT_ADMIN_PASSWORD)")
	}
	return nil
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
