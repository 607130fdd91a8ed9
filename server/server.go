package server

import (
	"net/http"
	"os"

	"main/graph/resolvers"
	"main/middleware"
	"main/store"
	"main/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/graphql-go/handler"
)

// SetupRouter builds the HTTP router with the GraphQL endpoint
func SetupRouter() (*chi.Mux, error) {
	r := chi.NewRouter()

	// i18n initialization
	if err := utils.InitI18n(); err != nil {
		return nil, err
	}

	schema, err := resolvers.NewSchema()
	if err != nil {
		return nil, err
	}

	// Global CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestIDMiddleware)
		r.Use(middleware.LocaleMiddleware)
		r.Use(middleware.RequestLoggingMiddleware)
		r.Use(middleware.DatabaseMiddleware)

		// Playground только для не-продакшн окружения
		graphqlHandler := handler.New(&handler.Config{
			Schema:     &schema,
			Pretty:     os.Getenv("ENV") != "production",
			Playground: os.Getenv("ENV") != "production",
		})

		// Обработчик GraphQL запросов
		r.Handle("/query", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Store обязан быть в контексте запроса (кладется DatabaseMiddleware)
			if store.FromContext(r.Context()) == nil {
				utils.Logger.Error("Store not found in request context")
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			graphqlHandler.ServeHTTP(w, r)
		}))
	})

	return r, nil
}
