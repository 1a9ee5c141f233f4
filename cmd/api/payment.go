package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"eightbitbar/internal/domain/orders"
	"eightbitbar/internal/domain/paymentsrepo"
	"eightbitbar/internal/domain/storage"
	"eightbitbar/internal/mailer"
	"eightbitbar/internal/payments"

	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v76"
)

const webhookMaxBodyBytes = 65536

// stripeWebhookHandler godoc
//
//	@Summary		Stripe webhook
//	@Description	Settles orders and activates gift cards when Stripe reports a completed checkout session. Authenticated by signature, idempotent on event id.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Success		200
//	@Failure		400	{object}	error
//	@Router			/payments/webhooks/stripe [post]
func (app *application) stripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, webhookMaxBodyBytes))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := app.stripeGateway.ConstructEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	fresh, err := app.store.Sales.Payments.MarkEventProcessed(r.Context(), "stripe", event.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !fresh {
		app.logger.Infow("skipping replayed stripe event", "event_id", event.ID)
		w.WriteHeader(http.StatusOK)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		if err := app.handleCheckoutCompleted(r, &sess); err != nil {
			app.internalServerError(w, r, err)
			return
		}

	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		if err := app.handleCheckoutExpired(r, &sess); err != nil {
			app.internalServerError(w, r, err)
			return
		}

	default:
		app.logger.Infow("ignoring stripe event", "type", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}

func (app *application) handleCheckoutCompleted(r *http.Request, sess *stripe.CheckoutSession) error {
	ctx := r.Context()

	switch sess.Metadata["kind"] {
	case "order":
		orderID, err := strconv.ParseInt(sess.Metadata["order_id"], 10, 64)
		if err != nil {
			app.logger.Errorw("stripe session with bad order_id metadata", "session_id", sess.ID)
			return nil
		}

		p, err := app.store.Sales.Payments.GetByProviderRef(ctx, "stripe", sess.ID)
		if err != nil {
			return err
		}
		var paymentID int64
		if p != nil {
			paymentID = p.ID
		}
		return app.settleOrderPayment(ctx, orderID, paymentID, "stripe")

	case "giftcard":
		cardID, err := strconv.ParseInt(sess.Metadata["gift_card_id"], 10, 64)
		if err != nil {
			app.logger.Errorw("stripe session with bad gift_card_id metadata", "session_id", sess.ID)
			return nil
		}

		if err := app.store.GiftCards.MarkPaid(ctx, cardID); err != nil {
			return err
		}
		app.sendGiftCardEmail(sess)
		return nil

	default:
		app.logger.Warnw("stripe session without routing metadata", "session_id", sess.ID)
		return nil
	}
}

func (app *application) handleCheckoutExpired(r *http.Request, sess *stripe.CheckoutSession) error {
	ctx := r.Context()

	if sess.Metadata["kind"] != "order" {
		return nil
	}
	orderID, err := strconv.ParseInt(sess.Metadata["order_id"], 10, 64)
	if err != nil {
		return nil
	}

	p, err := app.store.Sales.Payments.GetByProviderRef(ctx, "stripe", sess.ID)
	if err != nil {
		return err
	}
	var paymentID int64
	if p != nil {
		paymentID = p.ID
	}
	return app.failOrderPayment(ctx, orderID, paymentID)
}

// settleOrderPayment marks the order and its payment row paid and converts
// the linked cart, as one transaction. A paymentID of 0 means no gateway row
// exists for this settlement.
func (app *application) settleOrderPayment(ctx context.Context, orderID, paymentID int64, provider string) error {
	return app.store.WithSalesTx(ctx, func(s *storage.SalesTx) error {
		if err := s.Orders.MarkPaid(ctx, orderID, provider, time.Now()); err != nil {
			return err
		}
		if paymentID != 0 {
			if err := s.Payments.MarkPaid(ctx, paymentID); err != nil {
				return err
			}
		}
		return s.Carts.ConvertCheckoutCart(ctx, orderID)
	})
}

// failOrderPayment marks the order's payment failed and re-opens the cart so
// the customer can try again.
func (app *application) failOrderPayment(ctx context.Context, orderID, paymentID int64) error {
	return app.store.WithSalesTx(ctx, func(s *storage.SalesTx) error {
		if err := s.Orders.MarkPaymentFailed(ctx, orderID); err != nil {
			return err
		}
		if paymentID != 0 {
			if err := s.Payments.SetStatus(ctx, paymentID, paymentsrepo.StatusFailed); err != nil {
				return err
			}
		}
		return s.Carts.UnlockCheckoutCart(ctx, orderID)
	})
}

// OrderPaymentStatus is the payment poll response.
type OrderPaymentStatus struct {
	OrderID      int64   `json:"order_id"`
	Provider     string  `json:"provider"`
	ProviderRef  *string `json:"provider_ref,omitempty"`
	AmountCents  int64   `json:"amount_cents"`
	Status       string  `json:"status"`
	GatewayState string  `json:"gateway_state,omitempty"`
}

// orderPaymentStatusHandler godoc
//
//	@Summary		Payment status for one of my orders
//	@Description	Returns the latest payment attempt. A pending payment is re-checked with its gateway, so a missed webhook still settles the order.
//	@Tags			store
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{object}	OrderPaymentStatus
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/store/orders/{orderID}/payment [get]
func (app *application) orderPaymentStatusHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.store.Sales.Orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	if order.UserID != user.ID {
		app.notFoundResponse(w, r, orders.ErrNotFound)
		return
	}

	attempts, err := app.store.Sales.Payments.GetByOrderID(ctx, orderID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if len(attempts) == 0 {
		app.notFoundResponse(w, r, errors.New("no payment recorded for this order"))
		return
	}
	p := attempts[len(attempts)-1]

	out := OrderPaymentStatus{
		OrderID:     orderID,
		Provider:    p.Provider,
		ProviderRef: p.ProviderRef,
		AmountCents: p.AmountCents,
		Status:      p.Status,
	}

	if p.Status == paymentsrepo.StatusPending && p.ProviderRef != nil && *p.ProviderRef != "" {
		vr, err := app.paymentMgr.VerifyPayment(ctx, p.Provider, payments.PaymentVerifyRequest{ProviderRef: *p.ProviderRef})
		if err != nil {
			// The stored state still answers the poll.
			app.logger.Errorw("error verifying payment with gateway", "payment_id", p.ID, "error", err)
			app.jsonResponse(w, http.StatusOK, out)
			return
		}
		out.GatewayState = vr.State

		switch {
		case vr.Success:
			if err := app.settleOrderPayment(ctx, orderID, p.ID, p.Provider); err != nil {
				app.internalServerError(w, r, err)
				return
			}
			out.Status = paymentsrepo.StatusPaid
		case vr.Terminal:
			if err := app.failOrderPayment(ctx, orderID, p.ID); err != nil {
				app.internalServerError(w, r, err)
				return
			}
			out.Status = paymentsrepo.StatusFailed
		}
	}

	app.jsonResponse(w, http.StatusOK, out)
}

// sendGiftCardEmail delivers the code once the purchase is paid. Delivery
// failure is logged, not retried here; the code stays visible on the
// purchaser's account.
func (app *application) sendGiftCardEmail(sess *stripe.CheckoutSession) {
	card, err := app.store.GiftCards.GetByCode(context.Background(), sess.Metadata["code"])
	if err != nil {
		app.logger.Errorw("error loading gift card for email", "session_id", sess.ID, "error", err)
		return
	}

	purchaserName := ""
	email := ""
	if sess.CustomerDetails != nil {
		purchaserName = sess.CustomerDetails.Name
		email = sess.CustomerDetails.Email
	}
	if card.RecipientEmail != nil && *card.RecipientEmail != "" {
		email = *card.RecipientEmail
	}
	if email == "" {
		app.logger.Warnw("gift card paid but no email to deliver to", "gift_card_id", card.ID)
		return
	}

	message := ""
	if card.Message != nil {
		message = *card.Message
	}

	app.background(func() {
		data := map[string]any{
			"PurchaserName":    purchaserName,
			"Code":             card.Code,
			"BalanceFormatted": formatCents(card.BalanceCents),
			"Message":          message,
		}
		if _, err := app.mailer.Send(mailer.GiftCardTemplate, purchaserName, email, data); err != nil {
			app.logger.Errorw("error sending gift card email", "email", email, "error", err)
		}
	})
}
