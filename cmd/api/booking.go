package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"eightbitbar/internal/domain/bookings"
	"eightbitbar/internal/domain/rooms"
	"eightbitbar/internal/mailer"
	"eightbitbar/internal/params"
	"eightbitbar/internal/slots"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AvailableTime pairs a bookable start label with the advertised end-of-use
// label for the requested duration.
type AvailableTime struct {
	Time    string `json:"time"`
	EndTime string `json:"end_time"`
}

// availableTimesHandler godoc
//
//	@Summary		Available start times
//	@Description	Lists the start labels a booking of the given duration could take on a date
//	@Tags			rooms
//	@Produce		json
//	@Param			roomID		path		int		true	"Room ID"
//	@Param			date		query		string	true	"Date (YYYY-MM-DD)"
//	@Param			duration	query		int		false	"Duration in hours (default 1)"
//	@Success		200			{array}		AvailableTime
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/rooms/{roomID}/available-times [get]
func (app *application) availableTimesHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	date := r.URL.Query().Get("date")
	if _, err := slots.DayName(date); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	duration := 1
	if ds := r.URL.Query().Get("duration"); ds != "" {
		duration, err = strconv.Atoi(ds)
		if err != nil || duration < 1 || duration > 12 {
			app.badRequestResponse(w, r, fmt.Errorf("duration must be between 1 and 12 hours"))
			return
		}
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
	if !room.IsActive {
		app.notFoundResponse(w, r, fmt.Errorf("room %d is not bookable", roomID))
		return
	}

	configured, err := slots.ConfiguredFor(room.Availability, room.TimeSlots, date)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	existing, err := app.store.Bookings.ListForRoomDate(r.Context(), roomID, date)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	labels, err := slots.AvailableSlots(configured, date, duration, existing, roomID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	out := make([]AvailableTime, 0, len(labels))
	for _, label := range labels {
		end, err := slots.EndLabel(label, duration, slots.DefaultCleanupMinutes)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		out = append(out, AvailableTime{Time: label, EndTime: end})
	}

	app.jsonResponse(w, http.StatusOK, out)
}

type CreateBookingPayload struct {
	Date          string  `json:"date" validate:"required,dateonly"`
	Time          string  `json:"time" validate:"required,timeslot"`
	DurationHours int     `json:"duration_hours" validate:"required,min=1,max=12"`
	Note          *string `json:"note" validate:"omitempty,max=500"`
}

// createBookingHandler godoc
//
//	@Summary		Book a room
//	@Description	Books a slot for the authenticated user; payment is settled at the counter or online afterwards
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			roomID	path		int						true	"Room ID"
//	@Param			payload	body		CreateBookingPayload	true	"Booking details"
//	@Success		201		{object}	bookings.Booking
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/rooms/{roomID}/bookings [post]
func (app *application) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload CreateBookingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
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
	if !room.IsActive {
		app.notFoundResponse(w, r, fmt.Errorf("room %d is not bookable", roomID))
		return
	}

	if err := app.checkSlotFree(r, room, payload.Date, payload.Time, payload.DurationHours); err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	booking := &bookings.Booking{
		RoomID:        roomID,
		UserID:        &user.ID,
		Date:          payload.Date,
		TimeLabel:     payload.Time,
		DurationHours: payload.DurationHours,
		Status:        slots.StatusConfirmed,
		TotalCents:    room.PriceCents * int64(payload.DurationHours),
		PaymentStatus: bookings.PaymentUnpaid,
		Note:          payload.Note,
	}

	if err := app.store.Bookings.Create(r.Context(), booking); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == bookings.ConflictConstraint {
			app.conflictResponse(w, r, fmt.Errorf("slot %s on %s is already booked", payload.Time, payload.Date))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.sendBookingConfirmation(user.FirstName, user.Email, room, booking)

	app.jsonResponse(w, http.StatusCreated, booking)
}

// checkSlotFree re-runs the availability check for a single requested slot.
// It is advisory; the unique index on active bookings is the real guard.
func (app *application) checkSlotFree(r *http.Request, room *rooms.Room, date, label string, duration int) error {
	configured, err := slots.ConfiguredFor(room.Availability, room.TimeSlots, date)
	if err != nil {
		return err
	}

	available, err := slots.AvailableSlots(configured, date, duration, nil, room.ID)
	if err != nil {
		return err
	}
	offered := false
	for _, l := range available {
		if l == label {
			offered = true
			break
		}
	}
	if !offered {
		return fmt.Errorf("slot %s is not offered on %s for %d hour(s)", label, date, duration)
	}

	existing, err := app.store.Bookings.ListForRoomDate(r.Context(), room.ID, date)
	if err != nil {
		return err
	}

	start, err := slots.ParseLabel(label)
	if err != nil {
		return err
	}
	candidate := slots.Interval{
		RoomID:      room.ID,
		Date:        date,
		StartMinute: start,
		EndMinute:   start + slots.MinuteOffset(duration*60),
	}
	blocked, err := slots.IsSlotBlocked(candidate, existing)
	if err != nil {
		return err
	}
	if blocked {
		return fmt.Errorf("slot %s on %s is already booked", label, date)
	}
	return nil
}

func (app *application) sendBookingConfirmation(name, email string, room *rooms.Room, booking *bookings.Booking) {
	endLabel, err := slots.EndLabel(booking.TimeLabel, booking.DurationHours, slots.DefaultCleanupMinutes)
	if err != nil {
		endLabel = ""
	}

	app.background(func() {
		data := map[string]any{
			"Name":           name,
			"RoomName":       room.Name,
			"Date":           booking.Date,
			"StartLabel":     booking.TimeLabel,
			"EndLabel":       endLabel,
			"DurationHours":  booking.DurationHours,
			"TotalFormatted": formatCents(booking.TotalCents),
		}
		if _, err := app.mailer.Send(mailer.BookingConfirmationTemplate, name, email, data); err != nil {
			app.logger.Errorw("error sending booking confirmation email", "email", email, "error", err)
		}
	})
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// myBookingsHandler godoc
//
//	@Summary		My bookings
//	@Tags			bookings
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Param			page	query		int		false	"Page"
//	@Param			limit	query		int		false	"Items per page"
//	@Success		200		{array}		bookings.UserBooking
//	@Security		ApiKeyAuth
//	@Router			/bookings/mine [get]
func (app *application) myBookingsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	p := params.ParsePagination(r.URL.Query())

	filter := bookings.Filter{Page: p.Page, Limit: p.Limit}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	out, err := app.store.Bookings.ListByUser(r.Context(), user.ID, filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if out == nil {
		out = []bookings.UserBooking{}
	}

	app.jsonResponse(w, http.StatusOK, out)
}

// cancelBookingHandler godoc
//
//	@Summary		Cancel my booking
//	@Tags			bookings
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	map[string]string
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/cancel [patch]
func (app *application) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner, err := app.store.Bookings.GetOwner(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	if owner == nil || *owner != user.ID {
		app.forbiddenResponse(w, r)
		return
	}

	if err := app.store.Bookings.UpdateStatus(r.Context(), bookingID, slots.StatusCancelled); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// dayBookingsHandler godoc
//
//	@Summary		Bookings calendar for a date
//	@Description	Returns every booking across all rooms on the given date
//	@Tags			admin
//	@Produce		json
//	@Param			date	query		string	true	"Date (YYYY-MM-DD)"
//	@Param			status	query		string	false	"Status filter"
//	@Success		200		{array}		bookings.DayBooking
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/bookings [get]
func (app *application) dayBookingsHandler(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := slots.DayName(date); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	out, err := app.store.Bookings.ListForDate(r.Context(), date, r.URL.Query().Get("status"))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if out == nil {
		out = []bookings.DayBooking{}
	}

	app.jsonResponse(w, http.StatusOK, out)
}

type StaffBookingPayload struct {
	RoomID        int64   `json:"room_id" validate:"required"`
	Date          string  `json:"date" validate:"required,dateonly"`
	Time          string  `json:"time" validate:"required,timeslot"`
	DurationHours int     `json:"duration_hours" validate:"required,min=1,max=12"`
	CustomerName  string  `json:"customer_name" validate:"required,max=100"`
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone *string `json:"customer_phone" validate:"omitempty,max=30"`
	Note          *string `json:"note" validate:"omitempty,max=500"`
}

// staffBookingHandler godoc
//
//	@Summary		Create a walk-in booking
//	@Description	Books a slot for a walk-in or phone customer without an account
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		StaffBookingPayload	true	"Booking details"
//	@Success		201		{object}	bookings.Booking
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/bookings [post]
func (app *application) staffBookingHandler(w http.ResponseWriter, r *http.Request) {
	var payload StaffBookingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	room, err := app.store.Rooms.GetByID(r.Context(), payload.RoomID)
	if err != nil {
		if errors.Is(err, rooms.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.checkSlotFree(r, room, payload.Date, payload.Time, payload.DurationHours); err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	booking := &bookings.Booking{
		RoomID:        payload.RoomID,
		Date:          payload.Date,
		TimeLabel:     payload.Time,
		DurationHours: payload.DurationHours,
		Status:        slots.StatusConfirmed,
		TotalCents:    room.PriceCents * int64(payload.DurationHours),
		PaymentStatus: bookings.PaymentUnpaid,
		CustomerName:  &payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		Note:          payload.Note,
	}

	if err := app.store.Bookings.Create(r.Context(), booking); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == bookings.ConflictConstraint {
			app.conflictResponse(w, r, fmt.Errorf("slot %s on %s is already booked", payload.Time, payload.Date))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if payload.CustomerEmail != nil {
		app.sendBookingConfirmation(payload.CustomerName, *payload.CustomerEmail, room, booking)
	}

	app.jsonResponse(w, http.StatusCreated, booking)
}

// updateBookingStatusHandler godoc
//
//	@Summary		Update booking status
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	map[string]string
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/bookings/{bookingID}/status [patch]
func (app *application) updateBookingStatusHandler(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload struct {
		Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	}
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Bookings.UpdateStatus(r.Context(), bookingID, payload.Status); err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"status": payload.Status})
}

// markBookingPaidHandler godoc
//
//	@Summary		Mark a booking paid
//	@Description	Records counter payment for a booking
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	map[string]string
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/bookings/{bookingID}/paid [patch]
func (app *application) markBookingPaidHandler(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload struct {
		Method string `json:"method" validate:"required,oneof=counter card cash"`
	}
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Bookings.MarkPaid(r.Context(), bookingID, payload.Method); err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"payment_status": bookings.PaymentPaid})
}
