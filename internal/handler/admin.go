package handler

import (
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminHandler struct {
	db *pgxpool.Pool
}

func NewAdminHandler(db *pgxpool.Pool) *AdminHandler {
	return &AdminHandler{db: db}
}

// GetStats returns dashboard metrics for the admin panel.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	// Simple count queries
	var usersCount, domainsCount, subscribersCount, completedCount int
	var revenue float64

	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM users").Scan(&usersCount); err != nil {
		log.Printf("Failed to count users: %v", err)
	}
	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM domains").Scan(&domainsCount); err != nil {
		log.Printf("Failed to count domains: %v", err)
	}
	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM subscribers").Scan(&subscribersCount); err != nil {
		log.Printf("Failed to count subscribers: %v", err)
	}
	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM transactions WHERE status = 'completed'").Scan(&completedCount, &revenue); err != nil {
		log.Printf("Failed to aggregate transactions: %v", err)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"users":                 usersCount,
		"domains":               domainsCount,
		"subscribers":           subscribersCount,
		"completedTransactions": completedCount,
		"revenue":               revenue,
	})
}
