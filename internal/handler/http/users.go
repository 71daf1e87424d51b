package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-chi/chi/v5"
)

const maxRequestBodySize = 1 << 20

// createUserRequest mirrors [models.NewUser] with pointer fields so that an
// absent or null field can be told apart from an empty string.
type createUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

func (c createUserRequest) toNewUser() (models.NewUser, error) {
	if c.FirstName == nil || c.LastName == nil || c.Email == nil {
		return models.NewUser{}, fmt.Errorf("%w: first_name, last_name and email are required", ErrInvalidRequestBody)
	}

	return models.NewUser{
		FirstName: *c.FirstName,
		LastName:  *c.LastName,
		Email:     *c.Email,
	}, nil
}

// listUsers handles GET /users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

// getUser handles GET /users/{id}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromRequest(r)
	if err != nil {
		loggerFrom(r).Debug().Err(err).Msg("unroutable user id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

// createUser handles POST /users and answers 201 with the number of rows
// inserted.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
		loggerFrom(r).Debug().Err(err).Msg("error decoding request body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	newUser, err := req.toNewUser()
	if err != nil {
		loggerFrom(r).Debug().Err(err).Msg("incomplete request body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	affected, err := h.services.UserService.CreateUser(r.Context(), newUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, affected, http.StatusCreated)
}

// deleteUser handles DELETE /users/{id} and answers 200 with the number of
// rows removed, 0 for an absent id.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromRequest(r)
	if err != nil {
		loggerFrom(r).Debug().Err(err).Msg("unroutable user id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	affected, err := h.services.UserService.DeleteUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, affected, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		loggerFrom(r).Err(err).Msg("error writing response")
	}
}

// userIDFromRequest parses the {id} path segment. The route pattern only
// admits digits, so the remaining failure is an int64 overflow.
func userIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidUserID, raw, err)
	}

	return id, nil
}
