package main

import (
	"errors"
	"net/http"
	"strconv"

	"eightbitbar/internal/domain/users"

	"github.com/go-chi/chi/v5"
)

type userKey string

const userCtx userKey = "user"

func getUserFromContext(r *http.Request) *users.User {
	if user, ok := r.Context().Value(userCtx).(*users.User); ok {
		return user
	}
	return nil
}

// UpdateUserRole godoc
//
//	@Summary		Change a user's role
//	@Description	Promotes or demotes a user between customer, staff and admin
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/role [patch]
func (app *application) updateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload struct {
		Role string `json:"role" validate:"required,oneof=customer staff admin"`
	}
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	current := getUserFromContext(r)
	if current != nil && current.ID == userID {
		app.badRequestResponse(w, r, errors.New("cannot change your own role"))
		return
	}

	if err := app.store.Users.UpdateRole(r.Context(), userID, payload.Role); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"role": payload.Role})
}
