package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger confere se o banco de dados responde
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(database Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		databaseStatus := "disconnected"

		if database != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := database.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: database ping failed")
				databaseStatus = "error"
			} else {
				databaseStatus = "connected"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{
			"status":   "ok",
			"database": databaseStatus,
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
