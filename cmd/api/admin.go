package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"eightbitbar/internal/domain/orders"
	"eightbitbar/internal/domain/paymentsrepo"
	"eightbitbar/internal/params"

	"github.com/go-chi/chi/v5"
)

// adminDashboardHandler godoc
//
//	@Summary		Back office dashboard
//	@Description	Totals for users, rooms, bookings, revenue and the store in one payload
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	admindashboard.Overview
//	@Security		ApiKeyAuth
//	@Router			/admin/dashboard [get]
func (app *application) adminDashboardHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := app.store.Dashboard.GetOverview(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, overview)
}

// adminOrdersHandler godoc
//
//	@Summary		List all orders
//	@Tags			admin
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Param			page	query		int		false	"Page"
//	@Param			limit	query		int		false	"Items per page"
//	@Success		200		{object}	map[string]any
//	@Security		ApiKeyAuth
//	@Router			/admin/orders [get]
func (app *application) adminOrdersHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query())

	out, total, err := app.store.Sales.Orders.ListAll(r.Context(), r.URL.Query().Get("status"), p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)
	if out == nil {
		out = []orders.Order{}
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"orders":     out,
		"pagination": p,
	})
}

// adminOrderDetailHandler godoc
//
//	@Summary		Order detail
//	@Tags			admin
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{object}	orders.OrderDetail
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/orders/{orderID} [get]
func (app *application) adminOrderDetailHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.store.Sales.Orders.GetDetail(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, detail)
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/orders/{orderID}/status [patch]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload struct {
		Status string `json:"status" validate:"required,oneof=awaiting_payment placed completed cancelled"`
	}
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Sales.Orders.UpdateStatus(r.Context(), orderID, payload.Status); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"status": payload.Status})
}

// markOrderPaidHandler godoc
//
//	@Summary		Mark an order paid at the counter
//	@Description	Settles the due amount by hand and releases the linked cart
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{object}	map[string]string
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/orders/{orderID}/paid [patch]
func (app *application) markOrderPaidHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
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

	if _, err := app.store.Sales.Orders.GetByID(r.Context(), orderID); err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Sales.Orders.MarkPaid(r.Context(), orderID, payload.Method, time.Now()); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// An order that was waiting on an online payment may still hold its
	// cart; counter settlement releases it.
	if err := app.store.Sales.Carts.ConvertCheckoutCart(r.Context(), orderID); err != nil {
		app.logger.Errorw("error converting checkout cart", "order_id", orderID, "error", err)
	}

	// Pending gateway rows for the order are superseded: the counter row is
	// settled, anything else (an abandoned Stripe session) is closed out.
	if attempts, err := app.store.Sales.Payments.GetByOrderID(r.Context(), orderID); err != nil {
		app.logger.Errorw("error loading payment rows", "order_id", orderID, "error", err)
	} else {
		for _, p := range attempts {
			if p.Status != paymentsrepo.StatusPending {
				continue
			}
			if p.Provider == "counter" {
				err = app.store.Sales.Payments.MarkPaid(r.Context(), p.ID)
			} else {
				err = app.store.Sales.Payments.SetStatus(r.Context(), p.ID, paymentsrepo.StatusFailed)
			}
			if err != nil {
				app.logger.Errorw("error closing payment row", "payment_id", p.ID, "error", err)
			}
		}
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"payment_status": orders.PaymentPaid})
}

// adminPaymentsHandler godoc
//
//	@Summary		List gateway payments
//	@Tags			admin
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Param			since	query		string	false	"Lower time bound (RFC 3339)"
//	@Param			page	query		int		false	"Page"
//	@Param			limit	query		int		false	"Items per page"
//	@Success		200		{object}	map[string]any
//	@Security		ApiKeyAuth
//	@Router			/admin/payments [get]
func (app *application) adminPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query())

	var since *time.Time
	if s := r.URL.Query().Get("since"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		since = &t
	}

	out, total, err := app.store.Sales.Payments.List(r.Context(), r.URL.Query().Get("status"), since, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)
	if out == nil {
		out = []*paymentsrepo.Payment{}
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"payments":   out,
		"pagination": p,
	})
}

// adminPaymentDetailHandler godoc
//
//	@Summary		One gateway payment
//	@Tags			admin
//	@Produce		json
//	@Param			paymentID	path		int	true	"Payment ID"
//	@Success		200			{object}	paymentsrepo.Payment
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/payments/{paymentID} [get]
func (app *application) adminPaymentDetailHandler(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.ParseInt(chi.URLParam(r, "paymentID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	p, err := app.store.Sales.Payments.GetByID(r.Context(), paymentID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if p == nil {
		app.notFoundResponse(w, r, errors.New("payment not found"))
		return
	}

	app.jsonResponse(w, http.StatusOK, p)
}
