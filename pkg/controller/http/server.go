package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/usecase"
	"github.com/secmon-lab/pairup/pkg/utils/async"
	"github.com/secmon-lab/pairup/pkg/utils/logging"
	"github.com/secmon-lab/pairup/pkg/utils/safe"
)

// New creates the HTTP control surface: a health endpoint and a manual
// pairing trigger for operators.
func New(uc *usecase.UseCases) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Post("/api/pairup", handlePairUp(uc))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, []byte("OK"))
}

// handlePairUp fires a pairing cycle in the background and returns the run
// reference immediately. The cycle outcome is only observable in logs; the
// caller cannot await it.
func handlePairUp(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runRef := types.NewRunID()

		async.Dispatch(r.Context(), func(ctx context.Context) error {
			count, err := uc.Matching.RunPairingCycle(ctx)
			if err != nil {
				return err
			}
			logging.From(ctx).Info("manual pairing cycle finished",
				"trigger_ref", runRef.String(), "pairs_notified", count)
			return nil
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":      "accepted",
			"trigger_ref": runRef.String(),
		})
	}
}
