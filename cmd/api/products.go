package main

import (
	"errors"
	"net/http"
	"strconv"

	"eightbitbar/internal/domain/products"
	"eightbitbar/internal/params"

	"github.com/go-chi/chi/v5"
)

// listProductsHandler godoc
//
//	@Summary		List menu products
//	@Description	Lists the active café menu, optionally filtered by category
//	@Tags			store
//	@Produce		json
//	@Param			category	query		string	false	"Category filter (drink, food, merch)"
//	@Param			page		query		int		false	"Page"
//	@Param			limit		query		int		false	"Items per page"
//	@Success		200			{object}	map[string]any
//	@Router			/store/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query())

	out, total, err := app.store.Products.List(r.Context(), r.URL.Query().Get("category"), true, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)
	if out == nil {
		out = []products.Product{}
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"products":   out,
		"pagination": p,
	})
}

// getProductHandler godoc
//
//	@Summary		Get a product
//	@Tags			store
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	products.Product
//	@Failure		404			{object}	error
//	@Router			/store/products/{productID} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.store.Products.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, product)
}

type CreateProductPayload struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Category    string  `json:"category" validate:"required,oneof=drink food merch"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	PriceCents  int64   `json:"price_cents" validate:"required,min=1"`
}

// createProductHandler godoc
//
//	@Summary		Create a product
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateProductPayload	true	"Product details"
//	@Success		201		{object}	products.Product
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product := &products.Product{
		Name:        payload.Name,
		Category:    payload.Category,
		Description: payload.Description,
		PriceCents:  payload.PriceCents,
		IsActive:    true,
	}

	if err := app.store.Products.Create(r.Context(), product); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, product)
}

type UpdateProductPayload struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Category    *string `json:"category" validate:"omitempty,oneof=drink food merch"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	PriceCents  *int64  `json:"price_cents" validate:"omitempty,min=1"`
}

// updateProductHandler godoc
//
//	@Summary		Update a product
//	@Description	Patches product fields; in-flight carts keep their snapshotted prices
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"Product ID"
//	@Param			payload		body		UpdateProductPayload	true	"Fields to update"
//	@Success		200			{object}	products.Product
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products/{productID} [patch]
func (app *application) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.store.Products.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if payload.Name != nil {
		product.Name = *payload.Name
	}
	if payload.Category != nil {
		product.Category = *payload.Category
	}
	if payload.Description != nil {
		product.Description = payload.Description
	}
	if payload.PriceCents != nil {
		product.PriceCents = *payload.PriceCents
	}

	if err := app.store.Products.Update(r.Context(), product); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, product)
}

// setProductActiveHandler godoc
//
//	@Summary		Activate or deactivate a product
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	map[string]bool
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products/{productID}/active [patch]
func (app *application) setProductActiveHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
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

	if err := app.store.Products.SetActive(r.Context(), productID, *payload.Active); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]bool{"active": *payload.Active})
}
