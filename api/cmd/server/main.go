package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"sampahkupilah/api/internal/classify"
	"sampahkupilah/api/internal/classify/gemini"
	"sampahkupilah/api/internal/classify/openai"
	"sampahkupilah/api/internal/config"
	"sampahkupilah/api/internal/gate"
	"sampahkupilah/api/internal/handle"
	"sampahkupilah/api/internal/store"
)

func main() {
	cfg := config.Load()
	cfg.WarnMissingInferenceKey()

	// --- Postgres (optional: without it the API runs, history is disabled) ---
	var db *sql.DB
	var repo *store.DetectionRepo
	if dsn := resolveDSN(); dsn != "" {
		var err error
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		repo = store.NewDetectionRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		log.Printf("db connected")
	} else {
		log.Printf("no DATABASE_URL: detection history disabled")
	}

	engines := &classify.Engines{
		OpenAI:  openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Gemini:  gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		Default: cfg.Engine,
	}

	// A typed-nil repo must not end up inside the interface value.
	var detections handle.DetectionStore
	if repo != nil {
		detections = repo
	}
	h := handle.New(engines, gate.New(gate.DefaultCooldown), detections)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("db: not ok\n" + err.Error()))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/classify", h.Classify)
	mux.HandleFunc("/v1/bins", h.Bins)
	mux.HandleFunc("/v1/history", h.History)

	addr := ":" + cfg.Port
	log.Printf("sampahkupilah server listening on %s (engine=%s)", addr, cfg.Engine)
	log.Fatal(http.ListenAndServe(addr, mux))
}

// resolveDSN prefers DATABASE_URL, then builds one from POSTGRES_* vars.
func resolveDSN() string {
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		return v
	}
	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	if host == "" {
		return ""
	}
	user := envDefault("POSTGRES_USER", "postgres")
	pass := os.Getenv("POSTGRES_PASSWORD")
	port := envDefault("POSTGRES_PORT", "5432")
	name := envDefault("POSTGRES_DB", "sampahkupilah")
	ssl := envDefault("POSTGRES_SSLMODE", "require")

	dsn := "postgres://" + user
	if pass != "" {
		dsn += ":" + pass
	}
	return dsn + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func envDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
