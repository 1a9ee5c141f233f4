package main

import (
	"errors"
	"net/http"
	"strconv"

	"eightbitbar/internal/domain/carts"
	"eightbitbar/internal/domain/giftcards"
	"eightbitbar/internal/domain/orders"
	"eightbitbar/internal/domain/paymentsrepo"
	"eightbitbar/internal/domain/storage"
	"eightbitbar/internal/params"
	"eightbitbar/internal/payments"

	"github.com/go-chi/chi/v5"
)

// getCartHandler godoc
//
//	@Summary		My cart
//	@Description	Returns the open cart with priced lines; an empty view when there is none
//	@Tags			store
//	@Produce		json
//	@Success		200	{object}	carts.CartView
//	@Security		ApiKeyAuth
//	@Router			/store/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	view, err := app.store.Sales.Carts.GetView(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if view == nil {
		view = &carts.CartView{Items: []carts.CartLine{}}
	}
	if view.Items == nil {
		view.Items = []carts.CartLine{}
	}

	app.jsonResponse(w, http.StatusOK, view)
}

type AddCartItemPayload struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1,max=50"`
}

// addCartItemHandler godoc
//
//	@Summary		Add an item to my cart
//	@Description	Upserts a product line on the active cart, snapshotting the current price
//	@Tags			store
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		AddCartItemPayload	true	"Item details"
//	@Success		200		{object}	carts.CartView
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/store/cart/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload AddCartItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Sales.Carts.AddItem(r.Context(), user.ID, payload.ProductID, payload.Quantity); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.store.Sales.Carts.GetView(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, view)
}

// updateCartItemHandler godoc
//
//	@Summary		Change an item's quantity
//	@Tags			store
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		int	true	"Cart item ID"
//	@Success		200		{object}	carts.CartView
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/store/cart/items/{itemID} [patch]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload struct {
		Quantity int `json:"quantity" validate:"required,min=1,max=50"`
	}
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Sales.Carts.UpdateItemQty(r.Context(), user.ID, itemID, payload.Quantity); err != nil {
		if errors.Is(err, carts.ErrItemNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	view, err := app.store.Sales.Carts.GetView(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, view)
}

// removeCartItemHandler godoc
//
//	@Summary		Remove an item from my cart
//	@Tags			store
//	@Produce		json
//	@Param			itemID	path	int	true	"Cart item ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/store/cart/items/{itemID} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Sales.Carts.RemoveItem(r.Context(), user.ID, itemID); err != nil {
		if errors.Is(err, carts.ErrItemNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clearCartHandler godoc
//
//	@Summary		Empty my cart
//	@Tags			store
//	@Produce		json
//	@Success		204
//	@Security		ApiKeyAuth
//	@Router			/store/cart [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := app.store.Sales.Carts.Clear(r.Context(), user.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type CheckoutPayload struct {
	Method       string  `json:"method" validate:"required,oneof=stripe counter"`
	GiftCardCode *string `json:"gift_card_code"`
}

// CheckoutResponse carries the created order and, for online payments with
// an amount still due, the hosted payment page URL.
type CheckoutResponse struct {
	Order      *orders.Order `json:"order"`
	PaymentURL string        `json:"payment_url,omitempty"`
}

// checkoutHandler godoc
//
//	@Summary		Check out my cart
//	@Description	Snapshots the cart into an order, applies an optional gift card, and starts payment. Counter orders are settled by staff; Stripe orders return a Checkout URL.
//	@Tags			store
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CheckoutPayload	true	"Checkout details"
//	@Success		201		{object}	CheckoutResponse
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/store/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	ctx := r.Context()

	var payload CheckoutPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var (
		order     *orders.Order
		paymentID int64
	)

	// Order creation, gift card draw-down and the payment row commit or
	// roll back as one unit.
	err := app.store.WithSalesTx(ctx, func(s *storage.SalesTx) error {
		tender := orders.Tender{}

		if payload.GiftCardCode != nil && *payload.GiftCardCode != "" {
			view, err := s.Carts.GetView(ctx, user.ID)
			if err != nil {
				return err
			}
			if view == nil || view.TotalCents <= 0 {
				return errors.New("cart is empty")
			}

			card, err := s.GiftCards.GetByCode(ctx, *payload.GiftCardCode)
			if err != nil {
				return err
			}
			if card.Status != giftcards.StatusActive || card.PaymentStatus != "paid" || card.BalanceCents <= 0 {
				return giftcards.ErrNotRedeemable
			}

			tender.GiftCardCents = min(card.BalanceCents, view.TotalCents)
			tender.GiftCardCode = &card.Code
		}

		var err error
		order, _, err = s.Orders.CreateFromCart(ctx, user.ID, payload.Method, tender)
		if err != nil {
			return err
		}

		if tender.GiftCardCents > 0 {
			if _, err := s.GiftCards.Redeem(ctx, *tender.GiftCardCode, tender.GiftCardCents, &order.ID); err != nil {
				return err
			}
		}

		if order.DueCents > 0 {
			p, err := s.Payments.Create(ctx, &paymentsrepo.Payment{
				OrderID:     order.ID,
				Provider:    payload.Method,
				AmountCents: order.DueCents,
			})
			if err != nil {
				return err
			}
			paymentID = p.ID
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, giftcards.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, giftcards.ErrNotRedeemable), errors.Is(err, giftcards.ErrInsufficientBalance):
			app.conflictResponse(w, r, err)
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	resp := CheckoutResponse{Order: order}

	// Every method with an amount due goes through its gateway: Stripe gets a
	// hosted Checkout page, the counter gateway records a till reference that
	// staff settle later.
	if order.DueCents > 0 {
		gw, err := app.paymentMgr.InitiatePayment(ctx, payload.Method, payments.PaymentRequest{
			TransactionID: order.OrderNumber,
			AmountCents:   order.DueCents,
			Currency:      "aud",
			ProductName:   "8-Bit Bar order " + order.OrderNumber,
			CustomerName:  user.FirstName,
			CustomerEmail: user.Email,
			Metadata: map[string]string{
				"kind":     "order",
				"order_id": strconv.FormatInt(order.ID, 10),
			},
		})
		if err != nil {
			// The order survives with payment_status failed so support can
			// see what happened; the cart re-opens for another attempt.
			if uerr := app.store.Sales.Carts.UnlockCheckoutCart(ctx, order.ID); uerr != nil {
				app.logger.Errorw("error unlocking cart after payment init failure", "order_id", order.ID, "error", uerr)
			}
			if ferr := app.store.Sales.Orders.MarkPaymentFailed(ctx, order.ID); ferr != nil {
				app.logger.Errorw("error marking payment failed", "order_id", order.ID, "error", ferr)
			}
			if serr := app.store.Sales.Payments.SetStatus(ctx, paymentID, paymentsrepo.StatusFailed); serr != nil {
				app.logger.Errorw("error marking payment row failed", "payment_id", paymentID, "error", serr)
			}
			app.internalServerError(w, r, err)
			return
		}

		if err := app.store.Sales.Payments.SetProviderRef(ctx, paymentID, gw.ProviderRef, gw.Data); err != nil {
			app.logger.Errorw("error storing provider ref", "payment_id", paymentID, "error", err)
		}

		resp.PaymentURL = gw.PaymentURL
	}

	app.jsonResponse(w, http.StatusCreated, resp)
}

// myOrdersHandler godoc
//
//	@Summary		My orders
//	@Tags			store
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Param			page	query		int		false	"Page"
//	@Param			limit	query		int		false	"Items per page"
//	@Success		200		{object}	map[string]any
//	@Security		ApiKeyAuth
//	@Router			/store/orders [get]
func (app *application) myOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	p := params.ParsePagination(r.URL.Query())

	out, total, err := app.store.Sales.Orders.ListByUser(r.Context(), user.ID, r.URL.Query().Get("status"), p.Limit, p.Offset)
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

// myOrderDetailHandler godoc
//
//	@Summary		One of my orders
//	@Tags			store
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{object}	orders.OrderDetail
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/store/orders/{orderID} [get]
func (app *application) myOrderDetailHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.store.Sales.Orders.GetDetailForUser(r.Context(), user.ID, orderID)
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
