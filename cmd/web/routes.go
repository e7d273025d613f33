package main

import (
	"database/sql"
	"errors"
	"io"
	"net/http"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/gametaverns/tournament-engine/internal/httputil"
	"github.com/gametaverns/tournament-engine/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type app struct {
	tournaments    *service.TournamentService
	participants   *service.ParticipantService
	matches        *service.MatchService
	metricsHandler http.Handler
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", a.metricsHandler)

	r.Route("/events/{eventID}", func(r chi.Router) {
		r.Get("/tournament", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			data, err := a.tournaments.GetTournamentData(r.Context(), eventID)
			if err != nil {
				writeServiceError(w, "Failed to get tournament", err)
				return
			}
			httputil.JSON(w, http.StatusOK, data)
		})

		r.Put("/tournament", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			var input service.ConfigInput
			if err := httputil.DecodeJSON(r, &input); err != nil {
				httputil.BadRequest(w, "Invalid tournament settings", err)
				return
			}
			cfg, err := a.tournaments.SaveConfig(r.Context(), eventID, input)
			if err != nil {
				writeServiceError(w, "Failed to save tournament settings", err)
				return
			}
			httputil.JSON(w, http.StatusOK, cfg)
		})

		r.Get("/tournament/standings", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			data, err := a.tournaments.GetTournamentData(r.Context(), eventID)
			if err != nil {
				writeServiceError(w, "Failed to get standings", err)
				return
			}
			httputil.JSON(w, http.StatusOK, data.Standings)
		})

		r.Post("/tournament/generate", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			matches, err := a.tournaments.GenerateBracket(r.Context(), eventID)
			if err != nil {
				writeServiceError(w, "Failed to generate bracket", err)
				return
			}
			httputil.JSON(w, http.StatusCreated, matches)
		})

		r.Post("/tournament/advance", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			cfg, err := a.tournaments.AdvanceRound(r.Context(), eventID)
			if err != nil {
				writeServiceError(w, "Failed to advance round", err)
				return
			}
			httputil.JSON(w, http.StatusOK, cfg)
		})

		r.Get("/players", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			participants, err := a.participants.ListParticipants(r.Context(), eventID)
			if err != nil {
				writeServiceError(w, "Failed to list players", err)
				return
			}
			httputil.JSON(w, http.StatusOK, participants)
		})

		r.Post("/players", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			var input service.ParticipantInput
			if err := httputil.DecodeJSON(r, &input); err != nil {
				httputil.BadRequest(w, "Invalid player", err)
				return
			}
			p, err := a.participants.AddParticipant(r.Context(), eventID, input)
			if err != nil {
				writeServiceError(w, "Failed to add player", err)
				return
			}
			httputil.JSON(w, http.StatusCreated, p)
		})

		// One player name per line, plain text
		r.Post("/players/import", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
			if err != nil {
				httputil.BadRequest(w, "Invalid roster", err)
				return
			}
			added, err := a.participants.ImportParticipants(r.Context(), eventID, string(body))
			if err != nil {
				writeServiceError(w, "Failed to import players", err)
				return
			}
			httputil.JSON(w, http.StatusCreated, added)
		})

		r.Delete("/players/{playerID}", func(w http.ResponseWriter, r *http.Request) {
			eventID, ok := uuidParam(w, r, "eventID")
			if !ok {
				return
			}
			playerID, ok := uuidParam(w, r, "playerID")
			if !ok {
				return
			}
			if err := a.participants.RemoveParticipant(r.Context(), eventID, playerID); err != nil {
				writeServiceError(w, "Failed to remove player", err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/matches/{id}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			matchID, ok := uuidParam(w, r, "id")
			if !ok {
				return
			}
			match, err := a.matches.GetMatch(r.Context(), matchID)
			if err != nil {
				writeServiceError(w, "Failed to get match", err)
				return
			}
			httputil.JSON(w, http.StatusOK, match)
		})

		r.Post("/result", func(w http.ResponseWriter, r *http.Request) {
			matchID, ok := uuidParam(w, r, "id")
			if !ok {
				return
			}
			var input service.ResultInput
			if err := httputil.DecodeJSON(r, &input); err != nil {
				httputil.BadRequest(w, "Invalid result", err)
				return
			}
			match, err := a.matches.RecordResult(r.Context(), matchID, input)
			if err != nil {
				writeServiceError(w, "Failed to record result", err)
				return
			}
			httputil.JSON(w, http.StatusOK, match)
		})

		r.Put("/schedule", func(w http.ResponseWriter, r *http.Request) {
			matchID, ok := uuidParam(w, r, "id")
			if !ok {
				return
			}
			var input service.ScheduleInput
			if err := httputil.DecodeJSON(r, &input); err != nil {
				httputil.BadRequest(w, "Invalid schedule", err)
				return
			}
			match, err := a.matches.ScheduleMatch(r.Context(), matchID, input)
			if err != nil {
				writeServiceError(w, "Failed to schedule match", err)
				return
			}
			httputil.JSON(w, http.StatusOK, match)
		})
	})

	return r
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httputil.BadRequest(w, "Invalid "+name, err)
		return uuid.Nil, false
	}
	return id, true
}

var conflictErrors = []error{
	service.ErrConflict,
	service.ErrRoundIncomplete,
	service.ErrTournamentInProgress,
	service.ErrTournamentNotStarted,
	service.ErrTournamentCompleted,
	bracket.ErrMatchNotReady,
	bracket.ErrInvalidTransition,
}

func writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		httputil.NotFound(w, "Not found", err)
	case service.IsValidationError(err):
		httputil.BadRequest(w, err.Error(), err)
	default:
		for _, target := range conflictErrors {
			if errors.Is(err, target) {
				httputil.Conflict(w, err.Error(), err)
				return
			}
		}
		httputil.InternalServerError(w, msg, err)
	}
}
