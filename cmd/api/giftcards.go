package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"eightbitbar/internal/domain/giftcards"
	"eightbitbar/internal/params"
	"eightbitbar/internal/payments"

	"github.com/go-chi/chi/v5"
)

// GiftCardBalance is the public lookup view: balance only, no purchaser
// details.
type GiftCardBalance struct {
	Code         string `json:"code"`
	BalanceCents int64  `json:"balance_cents"`
	Status       string `json:"status"`
	Redeemable   bool   `json:"redeemable"`
}

// giftCardBalanceHandler godoc
//
//	@Summary		Gift card balance
//	@Description	Looks up a gift card's remaining balance by code
//	@Tags			gift-cards
//	@Produce		json
//	@Param			code	path		string	true	"Gift card code"
//	@Success		200		{object}	GiftCardBalance
//	@Failure		404		{object}	error
//	@Router			/gift-cards/{code}/balance [get]
func (app *application) giftCardBalanceHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	card, err := app.store.GiftCards.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, giftcards.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, GiftCardBalance{
		Code:         card.Code,
		BalanceCents: card.BalanceCents,
		Status:       card.Status,
		Redeemable:   card.Status == giftcards.StatusActive && card.PaymentStatus == "paid" && card.BalanceCents > 0,
	})
}

type PurchaseGiftCardPayload struct {
	AmountCents    int64   `json:"amount_cents" validate:"required,min=1000,max=50000"`
	RecipientEmail *string `json:"recipient_email" validate:"omitempty,email"`
	Message        *string `json:"message" validate:"omitempty,max=300"`
}

// PurchaseGiftCardResponse returns the pending card plus the hosted
// payment page to finish the purchase on.
type PurchaseGiftCardResponse struct {
	GiftCard   *giftcards.GiftCard `json:"gift_card"`
	PaymentURL string              `json:"payment_url"`
}

// purchaseGiftCardHandler godoc
//
//	@Summary		Buy a gift card
//	@Description	Creates an unpaid gift card and returns a Stripe Checkout URL; the card activates when the payment webhook lands
//	@Tags			gift-cards
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		PurchaseGiftCardPayload	true	"Gift card details"
//	@Success		201		{object}	PurchaseGiftCardResponse
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/gift-cards [post]
func (app *application) purchaseGiftCardHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload PurchaseGiftCardPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	code, err := app.giftCardCodes.Generate()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	card := &giftcards.GiftCard{
		Code:            code,
		InitialCents:    payload.AmountCents,
		Status:          giftcards.StatusActive,
		PurchaserUserID: &user.ID,
		RecipientEmail:  payload.RecipientEmail,
		Message:         payload.Message,
		PaymentStatus:   "unpaid",
	}
	// balance_cents mirrors initial_cents on insert
	card.BalanceCents = payload.AmountCents

	if err := app.store.GiftCards.Create(r.Context(), card); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp, err := app.paymentMgr.InitiatePayment(r.Context(), "stripe", payments.PaymentRequest{
		TransactionID: fmt.Sprintf("giftcard_%d", card.ID),
		AmountCents:   card.InitialCents,
		Currency:      "aud",
		ProductName:   "8-Bit Bar Gift Card",
		CustomerName:  user.FirstName,
		CustomerEmail: user.Email,
		Metadata: map[string]string{
			"kind":         "giftcard",
			"gift_card_id": strconv.FormatInt(card.ID, 10),
			"code":         card.Code,
		},
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, PurchaseGiftCardResponse{
		GiftCard:   card,
		PaymentURL: resp.PaymentURL,
	})
}

type RedeemGiftCardPayload struct {
	Code        string `json:"code" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"required,min=1"`
	OrderID     *int64 `json:"order_id"`
}

// redeemGiftCardHandler godoc
//
//	@Summary		Redeem a gift card at the counter
//	@Description	Draws an amount from a card, optionally against a POS order
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RedeemGiftCardPayload	true	"Redemption details"
//	@Success		200		{object}	giftcards.GiftCard
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/gift-cards/redeem [post]
func (app *application) redeemGiftCardHandler(w http.ResponseWriter, r *http.Request) {
	var payload RedeemGiftCardPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	card, err := app.store.GiftCards.Redeem(r.Context(), payload.Code, payload.AmountCents, payload.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, giftcards.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, giftcards.ErrInsufficientBalance), errors.Is(err, giftcards.ErrNotRedeemable):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.jsonResponse(w, http.StatusOK, card)
}

// adminGiftCardsHandler godoc
//
//	@Summary		List gift cards
//	@Tags			admin
//	@Produce		json
//	@Param			status	query		string	false	"Status filter (active, redeemed, void)"
//	@Param			page	query		int		false	"Page"
//	@Param			limit	query		int		false	"Items per page"
//	@Success		200		{object}	map[string]any
//	@Security		ApiKeyAuth
//	@Router			/admin/gift-cards [get]
func (app *application) adminGiftCardsHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query())

	cards, total, err := app.store.GiftCards.List(r.Context(), r.URL.Query().Get("status"), p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)
	if cards == nil {
		cards = []giftcards.GiftCard{}
	}

	liability, err := app.store.GiftCards.OutstandingLiabilityCents(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"gift_cards":                  cards,
		"outstanding_liability_cents": liability,
		"pagination":                  p,
	})
}

// giftCardRedemptionsHandler godoc
//
//	@Summary		Gift card redemption history
//	@Tags			admin
//	@Produce		json
//	@Param			cardID	path		int	true	"Gift card ID"
//	@Success		200		{array}		giftcards.Redemption
//	@Security		ApiKeyAuth
//	@Router			/admin/gift-cards/{cardID}/redemptions [get]
func (app *application) giftCardRedemptionsHandler(w http.ResponseWriter, r *http.Request) {
	cardID, err := strconv.ParseInt(chi.URLParam(r, "cardID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	out, err := app.store.GiftCards.Redemptions(r.Context(), cardID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if out == nil {
		out = []giftcards.Redemption{}
	}

	app.jsonResponse(w, http.StatusOK, out)
}

// voidGiftCardHandler godoc
//
//	@Summary		Void a gift card
//	@Description	Cancels a card so its remaining balance can no longer be spent
//	@Tags			admin
//	@Produce		json
//	@Param			cardID	path		int	true	"Gift card ID"
//	@Success		200		{object}	map[string]string
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/gift-cards/{cardID}/void [patch]
func (app *application) voidGiftCardHandler(w http.ResponseWriter, r *http.Request) {
	cardID, err := strconv.ParseInt(chi.URLParam(r, "cardID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.GiftCards.Void(r.Context(), cardID); err != nil {
		if errors.Is(err, giftcards.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"status": giftcards.StatusVoid})
}
