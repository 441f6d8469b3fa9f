package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"quizdoc/internal/quiz"
)

type Options struct {
	CORSOrigins []string
	// Timeout bounds each request; zero disables it.
	Timeout time.Duration
}

func NewRouter(quizzes quiz.Gateway, opts Options) http.Handler {
	api := NewAPI(quizzes)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.NotFound(writeNotFound)
	r.MethodNotAllowed(writeMethodNotAllowed)

	r.Get("/healthz", api.HandleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/test", api.HandleGetQuiz)
		r.Put("/test", api.HandleReplaceQuiz)
	})

	return r
}
