package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"music-insights-go/internal/actionable"
	"music-insights-go/internal/aggregator"
	"music-insights-go/internal/dataset"
	"music-insights-go/internal/logger"
	"music-insights-go/internal/processor"
	"music-insights-go/internal/similarity"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "music-insights-go").Info("starting service")

	// load the rating table once; everything downstream reads the snapshot
	dataSource := envOr("DATASET_PATH", "song_ratings.xlsx")
	log.WithField("dataset_path", dataSource).Info("resolving dataset")
	dataPath, err := dataset.Resolve(dataSource)
	if err != nil {
		log.WithError(err).Fatal("failed to resolve dataset")
	}
	rows, err := dataset.Load(dataPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load rating table")
	}
	summary := dataset.Summarize(rows)
	log.WithField("total_songs", summary.TotalSongs).
		WithField("users", len(summary.Users)).
		WithField("distinct_genres", summary.DistinctGenres).
		Info("rating table loaded")

	prefs := aggregator.Aggregate(rows)
	log.WithField("users_with_stats", len(prefs)).Info("genre preferences aggregated")

	defaultN := envOrInt("DEFAULT_SIMILAR_N", processor.DefaultSimilarN)
	defaultK := envOrInt("DEFAULT_EXCLUDE_K", processor.DefaultExcludeK)

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// dataset shape
	mux.HandleFunc("/summary", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "summary").Info("summary requested")
		writeJSON(w, summary)
	})

	// one user's aggregated genre stats
	mux.HandleFunc("/preferences", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "preferences")
		user := r.URL.Query().Get("user")
		if user == "" {
			reqLog.Warn("missing user")
			http.Error(w, "missing user", http.StatusBadRequest)
			return
		}
		userPrefs, ok := prefs[user]
		if !ok {
			reqLog.WithField("user", user).Warn("unknown user")
			http.Error(w, "unknown user", http.StatusNotFound)
			return
		}
		reqLog.WithField("user", user).Info("preferences requested")
		writeJSON(w, userPrefs)
	})

	// ranked similar users
	mux.HandleFunc("/similar", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "similar")
		user := r.URL.Query().Get("user")
		if user == "" {
			reqLog.Warn("missing user")
			http.Error(w, "missing user", http.StatusBadRequest)
			return
		}
		n := queryInt(r, "n", defaultN)
		reqLog.WithField("user", user).WithField("n", n).Info("similarity ranking requested")
		writeJSON(w, map[string]interface{}{
			"user":          user,
			"similar_users": similarity.RankSimilar(user, prefs, n),
		})
	})

	// full profile: similar users + next genre + action card
	mux.HandleFunc("/recommend", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "recommend")
		user := r.URL.Query().Get("user")
		if user == "" {
			reqLog.Warn("missing user")
			http.Error(w, "missing user", http.StatusBadRequest)
			return
		}
		n := queryInt(r, "n", defaultN)
		k := queryInt(r, "k", defaultK)
		reqLog = reqLog.WithField("user", user).WithField("n", n).WithField("k", k)

		start := time.Now()
		res := processor.Profile(user, prefs, n, k)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("profile computed")
		writeJSON(w, map[string]interface{}{
			"profile":     res,
			"action_card": actionable.Generate(res),
		})
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

func envOrInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
