package middleware

import (
	"context"
	"net/http"
	"sync"

	"main/database"
	"main/store"
	"main/utils"

	"go.uber.org/zap"
)

var (
	// Global database client instance
	globalDBClient *database.Client
	globalStore    *store.Store
	dbClientOnce   sync.Once
	dbClientErr    error
)

// InitDatabaseClient initializes the global database client
// This should be called once; can be invoked from middleware lazily
func InitDatabaseClient(ctx context.Context) error {
	dbClientOnce.Do(func() {
		config := database.GetConfigFromEnv()
		globalDBClient, dbClientErr = database.NewClient(ctx, config)
		if dbClientErr != nil {
			utils.Logger.Error("Failed to initialize database client",
				zap.Error(dbClientErr),
			)
			return
		}
		globalStore = store.New(globalDBClient.DB())
		utils.Logger.Info("Database client initialized successfully")
	})
	return dbClientErr
}

// CloseDatabaseClient closes the global database client
// This should be called during application shutdown
func CloseDatabaseClient() error {
	if globalDBClient != nil {
		err := globalDBClient.Close()
		if err != nil {
			utils.Logger.Error("Failed to close database client",
				zap.Error(err),
			)
			return err
		}
		globalDBClient = nil
		globalStore = nil
	}
	return nil
}

// DatabaseMiddleware provides the store in request context
func DatabaseMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Lazily initialize the DB client on first request
		if globalStore == nil {
			if err := InitDatabaseClient(r.Context()); err != nil {
				utils.Logger.Error("Database client init failed",
					zap.Error(err),
				)
				http.Error(w, "Database not available", http.StatusServiceUnavailable)
				return
			}
		}

		// Add store to context
		ctx := store.NewContext(r.Context(), globalStore)

		// Call next handler with updated context
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
