// main.go
package main

import (
	"net/http"
	"os"
	"time"

	"learning_journal/pkg/logger"
	"learning_journal/pkg/template"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	serverAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "Multi-user learning journal web application",
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "learning_journal.db", "database path")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the journal web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			initDB(dbPath)
			template.InitRenderer("templates", "base.html")

			// Periodic cleanup of expired sessions and stale login attempts
			go func() {
				ticker := time.NewTicker(10 * time.Minute)
				defer ticker.Stop()
				for range ticker.C {
					cleanupExpiredSessions()
					cleanupOldLoginAttempts()
				}
			}()

			mux := http.NewServeMux()

			// Public routes
			mux.HandleFunc("/{$}", securityHeaders(indexHandler))
			mux.HandleFunc("/entries", securityHeaders(indexHandler))
			mux.HandleFunc("/register", securityHeaders(registerHandler))
			mux.HandleFunc("/login", securityHeaders(loginHandler))
			mux.HandleFunc("/logout", securityHeaders(logoutHandler))
			mux.HandleFunc("/entries/{id}", securityHeaders(detailHandler))
			mux.HandleFunc("/tags/{label}", securityHeaders(tagHandler))

			// Protected routes (require authentication)
			mux.HandleFunc("/entries/new", authMiddleware(newEntryHandler))
			mux.HandleFunc("/entries/{id}/edit", authMiddleware(editEntryHandler))
			mux.HandleFunc("/entries/{id}/delete", authMiddleware(deleteEntryHandler))

			// JSON API
			mux.HandleFunc("GET /api/entries", securityHeaders(apiListEntriesHandler))
			mux.HandleFunc("GET /api/entries/{id}", securityHeaders(apiGetEntryHandler))
			mux.HandleFunc("POST /api/entries", authMiddleware(apiCreateEntryHandler))
			mux.HandleFunc("PUT /api/entries/{id}", authMiddleware(apiUpdateEntryHandler))
			mux.HandleFunc("DELETE /api/entries/{id}", authMiddleware(apiDeleteEntryHandler))

			logger.Info("Starting server on %s", serverAddr)
			return http.ListenAndServe(serverAddr, mux)
		},
	}

	cmd.Flags().StringVar(&serverAddr, "addr", ":8000", "listen address")
	cmd.Flags().IntVar(&pageSize, "page-size", defaultPageSize, "entries per listing page")

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create a demo user with one journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			initDB(dbPath)

			user, err := createUser("testuser", "test@example.com", "password")
			if err != nil {
				return err
			}

			entry, err := createEntry(user, "test title", "This is a test entry.",
				"Here are some resources", 5, "testing")
			if err != nil {
				return err
			}

			logger.Info("Seeded user %q with entry %q", user.Username, entry.Title)
			return nil
		},
	}
}
