package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/api/responses"
	"github.com/gorravana/boutique-backend/api/validators"
	"github.com/gorravana/boutique-backend/internal/catalog"
	"github.com/gorravana/boutique-backend/pkg/logger"
)

type productPayload struct {
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	Name          string           `json:"name" validate:"required,max=150"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         int              `json:"stock" validate:"min=0"`
	Colors        []string         `json:"colors,omitempty" validate:"max=20,dive,max=40"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	GalleryURLs   []string         `json:"gallery_urls,omitempty" validate:"max=12,dive,url"`
	FreeShipping  bool             `json:"free_shipping"`
	IsActive      bool             `json:"is_active"`
	IsFeatured    bool             `json:"is_featured"`
}

type productUpdatePayload struct {
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=150"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         *int             `json:"stock,omitempty" validate:"omitempty,min=0"`
	Colors        *[]string        `json:"colors,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	GalleryURLs   *[]string        `json:"gallery_urls,omitempty"`
	FreeShipping  *bool            `json:"free_shipping,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	IsFeatured    *bool            `json:"is_featured,omitempty"`
}

func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.CreateProduct(r.Context(), catalog.CreateProductInput{
			CategoryID:    payload.CategoryID,
			Name:          payload.Name,
			Description:   payload.Description,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Stock:         payload.Stock,
			Colors:        payload.Colors,
			ImageURL:      payload.ImageURL,
			GalleryURLs:   payload.GalleryURLs,
			FreeShipping:  payload.FreeShipping,
			IsActive:      payload.IsActive,
			IsFeatured:    payload.IsFeatured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload productUpdatePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.UpdateProduct(r.Context(), id, catalog.UpdateProductInput{
			CategoryID:    payload.CategoryID,
			Name:          payload.Name,
			Description:   payload.Description,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Stock:         payload.Stock,
			Colors:        payload.Colors,
			ImageURL:      payload.ImageURL,
			GalleryURLs:   payload.GalleryURLs,
			FreeShipping:  payload.FreeShipping,
			IsActive:      payload.IsActive,
			IsFeatured:    payload.IsFeatured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteByID(svc.DeleteProduct, "productId", logg)
}

type brandPayload struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Slug     string  `json:"slug" validate:"required,max=120,lowercase"`
	LogoURL  *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	IsActive bool    `json:"is_active"`
}

type brandUpdatePayload struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Slug     *string `json:"slug,omitempty" validate:"omitempty,max=120,lowercase"`
	LogoURL  *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func AdminCreateBrand(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload brandPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		brand, err := svc.CreateBrand(r.Context(), catalog.CreateBrandInput{
			Name:     payload.Name,
			Slug:     payload.Slug,
			LogoURL:  payload.LogoURL,
			IsActive: payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, brand)
	}
}

func AdminUpdateBrand(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "brandId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload brandUpdatePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		brand, err := svc.UpdateBrand(r.Context(), id, catalog.UpdateBrandInput{
			Name:     payload.Name,
			Slug:     payload.Slug,
			LogoURL:  payload.LogoURL,
			IsActive: payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, brand)
	}
}

func AdminDeleteBrand(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteByID(svc.DeleteBrand, "brandId", logg)
}

type brandItemPayload struct {
	BrandID       uuid.UUID        `json:"brand_id" validate:"required"`
	Name          string           `json:"name" validate:"required,max=150"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         int              `json:"stock" validate:"min=0"`
	Colors        []string         `json:"colors,omitempty" validate:"max=20,dive,max=40"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	ShippingCost  *decimal.Decimal `json:"shipping_cost,omitempty"`
	FreeShipping  bool             `json:"free_shipping"`
	IsActive      bool             `json:"is_active"`
}

type brandItemUpdatePayload struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=150"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         *int             `json:"stock,omitempty" validate:"omitempty,min=0"`
	Colors        *[]string        `json:"colors,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	ShippingCost  *decimal.Decimal `json:"shipping_cost,omitempty"`
	FreeShipping  *bool            `json:"free_shipping,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func AdminCreateBrandItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload brandItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.CreateBrandItem(r.Context(), catalog.CreateBrandItemInput{
			BrandID:       payload.BrandID,
			Name:          payload.Name,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Stock:         payload.Stock,
			Colors:        payload.Colors,
			ImageURL:      payload.ImageURL,
			ShippingCost:  payload.ShippingCost,
			FreeShipping:  payload.FreeShipping,
			IsActive:      payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

func AdminUpdateBrandItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload brandItemUpdatePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.UpdateBrandItem(r.Context(), id, catalog.UpdateBrandItemInput{
			Name:          payload.Name,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Stock:         payload.Stock,
			Colors:        payload.Colors,
			ImageURL:      payload.ImageURL,
			ShippingCost:  payload.ShippingCost,
			FreeShipping:  payload.FreeShipping,
			IsActive:      payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func AdminDeleteBrandItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteByID(svc.DeleteBrandItem, "itemId", logg)
}

type pinPayload struct {
	Name          string           `json:"name" validate:"required,max=150"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         int              `json:"stock" validate:"min=0"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive      bool             `json:"is_active"`
}

type pinUpdatePayload struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=150"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         *int             `json:"stock,omitempty" validate:"omitempty,min=0"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func AdminCreatePin(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload pinPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pin, err := svc.CreatePin(r.Context(), catalog.CreatePinInput{
			Name:          payload.Name,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Stock:         payload.Stock,
			ImageURL:      payload.ImageURL,
			IsActive:      payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, pin)
	}
}

func AdminUpdatePin(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "pinId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload pinUpdatePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pin, err := svc.UpdatePin(r.Context(), id, catalog.UpdatePinInput{
			Name:          payload.Name,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Stock:         payload.Stock,
			ImageURL:      payload.ImageURL,
			IsActive:      payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, pin)
	}
}

func AdminDeletePin(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteByID(svc.DeletePin, "pinId", logg)
}

type casePayload struct {
	Name          string           `json:"name" validate:"required,max=150"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         int              `json:"stock" validate:"min=0"`
	Capacity      *int             `json:"capacity,omitempty" validate:"omitempty,min=1"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive      bool             `json:"is_active"`
}

type caseUpdatePayload struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=150"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         *int             `json:"stock,omitempty" validate:"omitempty,min=0"`
	Capacity      *int             `json:"capacity,omitempty" validate:"omitempty,min=1"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func AdminCreateCase(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload casePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.CreateCase(r.Context(), catalog.CreateCaseInput{
			Name:          payload.Name,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Stock:         payload.Stock,
			Capacity:      payload.Capacity,
			ImageURL:      payload.ImageURL,
			IsActive:      payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminUpdateCase(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "caseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload caseUpdatePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.UpdateCase(r.Context(), id, catalog.UpdateCaseInput{
			Name:          payload.Name,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Stock:         payload.Stock,
			Capacity:      payload.Capacity,
			ImageURL:      payload.ImageURL,
			IsActive:      payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func AdminDeleteCase(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteByID(svc.DeleteCase, "caseId", logg)
}

type menuCategoryPayload struct {
	Name     string `json:"name" validate:"required,max=120"`
	Slug     string `json:"slug" validate:"required,max=120,lowercase"`
	Position int    `json:"position" validate:"min=0"`
	IsActive bool   `json:"is_active"`
}

type menuCategoryUpdatePayload struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Slug     *string `json:"slug,omitempty" validate:"omitempty,max=120,lowercase"`
	Position *int    `json:"position,omitempty" validate:"omitempty,min=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func AdminCreateMenuCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload menuCategoryPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category, err := svc.CreateMenuCategory(r.Context(), catalog.CreateMenuCategoryInput{
			Name:     payload.Name,
			Slug:     payload.Slug,
			Position: payload.Position,
			IsActive: payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

func AdminUpdateMenuCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "categoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload menuCategoryUpdatePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category, err := svc.UpdateMenuCategory(r.Context(), id, catalog.UpdateMenuCategoryInput{
			Name:     payload.Name,
			Slug:     payload.Slug,
			Position: payload.Position,
			IsActive: payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, category)
	}
}

func AdminDeleteMenuCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteByID(svc.DeleteMenuCategory, "categoryId", logg)
}

// AdminListProducts mirrors the public listing but includes inactive rows.
func AdminListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListProducts(r.Context(), catalog.ProductFilter{IncludeInactive: true})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

func AdminListBrands(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := svc.ListBrands(r.Context(), true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, brands)
	}
}

func AdminListPins(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pins, err := svc.ListPins(r.Context(), true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, pins)
	}
}

func AdminListCases(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cases, err := svc.ListCases(r.Context(), true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cases)
	}
}

func AdminListMenuCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListMenuCategories(r.Context(), true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

func deleteByID(fn func(ctx context.Context, id uuid.UUID) error, param string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, param)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := fn(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
