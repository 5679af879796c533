package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/quizdeck/trivia-night-backend/internal/config"
	"github.com/quizdeck/trivia-night-backend/internal/session"
	"github.com/quizdeck/trivia-night-backend/internal/ws"
)

func SetupRoutes(sess *session.Session, cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(sess, log))
	r.Handle("/*", StaticHandler(cfg.StaticDir))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	})
	return c.Handler(r)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
