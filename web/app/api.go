package app

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/student-portal/pkg/handlers"
	"github.com/JaimeStill/student-portal/pkg/routing"
)

func (h *Handler) handleManifest(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.router.Manifest())
}

func (h *Handler) handleNamed(w http.ResponseWriter, r *http.Request) {
	route, err := h.router.Named(r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, statusFor(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.router.Describe(route))
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("location query parameter required"))
		return
	}

	route, err := h.router.Resolve(location)
	if err != nil {
		handlers.RespondError(w, h.logger, statusFor(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.router.Describe(route))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, routing.ErrNoMatch), errors.Is(err, routing.ErrUnknownName):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
