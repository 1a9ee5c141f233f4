package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eightbitbar/internal/domain/rooms"
	"eightbitbar/internal/slots"

	"github.com/go-chi/chi/v5"
)

// listRoomsHandler godoc
//
//	@Summary		List rooms
//	@Description	Lists active bookable rooms, optionally filtered by type (karaoke, n64, cafe)
//	@Tags			rooms
//	@Produce		json
//	@Param			type	query		string	false	"Room type filter"
//	@Success		200		{array}		rooms.Room
//	@Failure		500		{object}	error
//	@Router			/rooms [get]
func (app *application) listRoomsHandler(w http.ResponseWriter, r *http.Request) {
	filter := rooms.Filter{
		RoomType:   r.URL.Query().Get("type"),
		ActiveOnly: true,
	}

	out, err := app.store.Rooms.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if out == nil {
		out = []rooms.Room{}
	}

	app.jsonResponse(w, http.StatusOK, out)
}

// getRoomHandler godoc
//
//	@Summary		Get a room
//	@Description	Returns a room with its per-weekday availability configuration
//	@Tags			rooms
//	@Produce		json
//	@Param			roomID	path		int	true	"Room ID"
//	@Success		200		{object}	rooms.Room
//	@Failure		404		{object}	error
//	@Router			/rooms/{roomID} [get]
func (app *application) getRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	room, err := app.store.Rooms.GetByID(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, rooms.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, room)
}

type CreateRoomPayload struct {
	Name        string   `json:"name" validate:"required,max=100"`
	RoomType    string   `json:"room_type" validate:"required,oneof=karaoke n64 cafe"`
	Description string   `json:"description" validate:"max=2000"`
	MaxPeople   int      `json:"max_people" validate:"required,min=1,max=100"`
	PriceCents  int64    `json:"price_cents" validate:"min=0"`
	TimeSlots   []string `json:"time_slots" validate:"required,min=1,dive,timeslot"`
	WeekDays    []string `json:"week_days" validate:"dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

// createRoomHandler godoc
//
//	@Summary		Create a room
//	@Description	Creates a bookable room with its hourly slot labels
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateRoomPayload	true	"Room details"
//	@Success		201		{object}	rooms.Room
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/rooms [post]
func (app *application) createRoomHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateRoomPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	room := &rooms.Room{
		Name:       payload.Name,
		RoomType:   payload.RoomType,
		MaxPeople:  payload.MaxPeople,
		PriceCents: payload.PriceCents,
		TimeSlots:  payload.TimeSlots,
		WeekDays:   payload.WeekDays,
		IsActive:   true,
	}
	if payload.Description != "" {
		room.Description = &payload.Description
	}

	if err := app.store.Rooms.Create(r.Context(), room); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, room)
}

type UpdateRoomPayload struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	MaxPeople   *int     `json:"max_people" validate:"omitempty,min=1,max=100"`
	PriceCents  *int64   `json:"price_cents" validate:"omitempty,min=0"`
	TimeSlots   []string `json:"time_slots" validate:"omitempty,min=1,dive,timeslot"`
	WeekDays    []string `json:"week_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

// updateRoomHandler godoc
//
//	@Summary		Update a room
//	@Description	Patches room fields; absent fields stay unchanged
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			roomID	path		int					true	"Room ID"
//	@Param			payload	body		UpdateRoomPayload	true	"Fields to update"
//	@Success		200		{object}	rooms.Room
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/rooms/{roomID} [patch]
func (app *application) updateRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateRoomPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	fields := map[string]any{}
	if payload.Name != nil {
		fields["name"] = *payload.Name
	}
	if payload.Description != nil {
		fields["description"] = *payload.Description
	}
	if payload.MaxPeople != nil {
		fields["max_people"] = *payload.MaxPeople
	}
	if payload.PriceCents != nil {
		fields["price_cents"] = *payload.PriceCents
	}
	if payload.TimeSlots != nil {
		fields["time_slots"] = payload.TimeSlots
	}
	if payload.WeekDays != nil {
		fields["week_days"] = payload.WeekDays
	}
	if len(fields) == 0 {
		app.badRequestResponse(w, r, fmt.Errorf("no fields to update"))
		return
	}

	if err := app.store.Rooms.Update(r.Context(), roomID, fields); err != nil {
		if errors.Is(err, rooms.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	room, err := app.store.Rooms.GetByID(r.Context(), roomID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, room)
}

// setRoomActiveHandler godoc
//
//	@Summary		Activate or deactivate a room
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			roomID	path		int	true	"Room ID"
//	@Success		200		{object}	map[string]bool
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/rooms/{roomID}/active [patch]
func (app *application) setRoomActiveHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload struct {
		Active *bool `json:"active" validate:"required"`
	}
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Rooms.SetActive(r.Context(), roomID, *payload.Active); err != nil {
		if errors.Is(err, rooms.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]bool{"active": *payload.Active})
}

// uploadRoomPhotoHandler godoc
//
//	@Summary		Upload a room photo
//	@Description	Accepts a multipart file and stores it on Cloudinary
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			roomID	path		int		true	"Room ID"
//	@Param			photo	formData	file	true	"Photo file"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/rooms/{roomID}/photos [post]
func (app *application) uploadRoomPhotoHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("photo file is required: %w", err))
		return
	}
	defer file.Close()

	publicID := fmt.Sprintf("room_%d_image_%d", roomID, time.Now().UnixNano())
	url, err := app.uploadToCloudinaryWithID(file, publicID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Rooms.AddPhotoURL(r.Context(), roomID, url); err != nil {
		if errors.Is(err, rooms.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]string{"url": url})
}

// deleteRoomPhotoHandler godoc
//
//	@Summary		Delete a room photo
//	@Description	Removes the photo URL from the room and deletes the Cloudinary asset
//	@Tags			admin
//	@Produce		json
//	@Param			roomID		path	int		true	"Room ID"
//	@Param			photo_url	query	string	true	"Photo URL to remove"
//	@Success		204
//	@Failure		400	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/rooms/{roomID}/photos [delete]
func (app *application) deleteRoomPhotoHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	photoURL := r.URL.Query().Get("photo_url")
	if photoURL == "" {
		app.badRequestResponse(w, r, fmt.Errorf("missing photo_url"))
		return
	}

	if err := app.store.Rooms.RemovePhotoURL(r.Context(), roomID, photoURL); err != nil {
		if errors.Is(err, rooms.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.deletePhotoFromCloudinary(photoURL); err != nil {
		app.logger.Errorw("error deleting cloudinary asset", "url", photoURL, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

type ReplaceAvailabilityPayload struct {
	Days map[string][]string `json:"days" validate:"required"`
}

// replaceAvailabilityHandler godoc
//
//	@Summary		Replace a room's weekly availability
//	@Description	Swaps the per-weekday slot label configuration in one transaction
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			roomID	path		int							true	"Room ID"
//	@Param			payload	body		ReplaceAvailabilityPayload	true	"Weekday to slot labels"
//	@Success		200		{object}	map[string]int
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/rooms/{roomID}/availability [put]
func (app *application) replaceAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload ReplaceAvailabilityPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Labels are validated up front so a half-bad payload never lands.
	days := make([]rooms.DaySlots, 0, len(payload.Days))
	for day, labels := range payload.Days {
		if !validWeekday(day) {
			app.badRequestResponse(w, r, fmt.Errorf("invalid weekday %q", day))
			return
		}
		for _, label := range labels {
			if _, err := slots.ParseLabel(label); err != nil {
				app.badRequestResponse(w, r, fmt.Errorf("invalid slot label %q for %s: %w", label, day, err))
				return
			}
		}
		days = append(days, rooms.DaySlots{RoomID: roomID, DayOfWeek: day, TimeSlots: labels})
	}

	if err := app.store.Rooms.ReplaceAvailability(r.Context(), roomID, days); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]int{"days": len(days)})
}

func validWeekday(day string) bool {
	switch day {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}
