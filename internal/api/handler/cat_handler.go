package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/api/metrics"
	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

// catFileField is the multipart field carrying the cat image.
const catFileField = "cat"

// CatHandler handles cat CRUD, the geo query, and the admin routes.
type CatHandler struct {
	catService ports.CatService
	files      ports.FileStore
}

func NewCatHandler(catService ports.CatService, files ports.FileStore) *CatHandler {
	return &CatHandler{catService: catService, files: files}
}

// List returns every cat with the owner's profile joined in.
//
// @Summary      List all cats
// @Tags         cats
// @Produce      json
// @Success      200  {array}  catResponse
// @Router       /cats [get]
func (h *CatHandler) List(c echo.Context) error {
	cats, err := h.catService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatResponses(cats))
}

// Get returns a single cat by id.
//
// @Summary      Get a cat by id
// @Tags         cats
// @Produce      json
// @Param        id   path      string  true  "Cat id"
// @Success      200  {object}  catResponse
// @Failure      404  {object}  errorResponse
// @Router       /cats/{id} [get]
func (h *CatHandler) Get(c echo.Context) error {
	cat, err := h.catService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatResponse(cat))
}

// ListOwn returns the caller's own cats.
//
// @Summary      List the current user's cats
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  catResponse
// @Failure      401  {object}  errorResponse
// @Router       /cats/user [get]
func (h *CatHandler) ListOwn(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	cats, err := h.catService.ListByOwner(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatResponses(cats))
}

// GetByBoundingBox returns all cats inside the rectangle implied by the
// topRight and bottomLeft "lat,lng" corners.
//
// @Summary      Find cats inside a bounding box
// @Tags         cats
// @Produce      json
// @Param        topRight    query     string  true  "Top-right corner, lat,lng"
// @Param        bottomLeft  query     string  true  "Bottom-left corner, lat,lng"
// @Success      200  {array}   catResponse
// @Failure      400  {object}  errorResponse
// @Router       /cats/area [get]
func (h *CatHandler) GetByBoundingBox(c echo.Context) error {
	topRight := c.QueryParam("topRight")
	bottomLeft := c.QueryParam("bottomLeft")
	if topRight == "" || bottomLeft == "" {
		metrics.GeoQueriesTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: topRight and bottomLeft are required", domain.ErrInvalidInput)
	}

	cats, err := h.catService.FindWithinBounds(c.Request().Context(), topRight, bottomLeft)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			metrics.GeoQueriesTotal.WithLabelValues("invalid").Inc()
		} else {
			metrics.GeoQueriesTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.GeoQueriesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toCatResponses(cats))
}

// Create stores a new cat owned by the caller. The request is multipart: the
// image under the "cat" field, cat_name/weight/birthdate as form values, and
// the location attached to the context by the enrichment middleware.
//
// @Summary      Create a new cat
// @Tags         cats
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        cat        formData  file    true  "Cat image"
// @Param        cat_name   formData  string  true  "Name"
// @Param        weight     formData  number  true  "Weight"
// @Param        birthdate  formData  string  true  "Birthdate, YYYY-MM-DD"
// @Param        location   formData  string  true  "Pre-resolved lng,lat pair"
// @Success      201  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /cats [post]
func (h *CatHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	location, err := ctxCoords(c)
	if err != nil {
		return err
	}

	req := createCatRequest{
		CatName:   c.FormValue("cat_name"),
		Birthdate: c.FormValue("birthdate"),
	}
	if raw := c.FormValue("weight"); raw != "" {
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: weight %q is not a number", domain.ErrInvalidInput, raw)
		}
		req.Weight = weight
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	birthdate, err := time.Parse(birthdateLayout, req.Birthdate)
	if err != nil {
		return fmt.Errorf("%w: birthdate must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	fileHeader, err := c.FormFile(catFileField)
	if err != nil {
		return fmt.Errorf("%w: cat image file is required", domain.ErrInvalidInput)
	}
	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	filename, err := h.files.Save(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return err
	}
	metrics.UploadsTotal.Inc()

	cat, err := h.catService.Create(c.Request().Context(), principal, ports.CreateCatInput{
		CatName:   req.CatName,
		Weight:    req.Weight,
		Birthdate: birthdate,
		Filename:  filename,
		Location:  location,
	})
	if err != nil {
		// The record never materialised; drop the stored image so the
		// upload dir does not accumulate orphans.
		_ = h.files.Remove(c.Request().Context(), filename)
		return err
	}

	metrics.CatsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{
		Message: "cat created",
		Data:    toCatResponse(cat),
	})
}

// Update merges the supplied fields into a cat owned by the caller.
//
// @Summary      Update an owned cat
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Cat id"
// @Param        body  body      updateCatRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cats/{id} [put]
func (h *CatHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateCatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateCatInput{CatName: req.CatName, Weight: req.Weight}
	if req.Birthdate != nil {
		birthdate, err := time.Parse(birthdateLayout, *req.Birthdate)
		if err != nil {
			return fmt.Errorf("%w: birthdate must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		input.Birthdate = &birthdate
	}

	cat, err := h.catService.UpdateOwn(c.Request().Context(), principal, c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "cat updated",
		Data:    toCatResponse(cat),
	})
}

// Delete removes a cat owned by the caller and returns its prior state.
//
// @Summary      Delete an owned cat
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Cat id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cats/{id} [delete]
func (h *CatHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	cat, err := h.catService.DeleteOwn(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "cat deleted",
		Data:    toCatResponse(cat),
	})
}

// Transfer reassigns a cat to a new owner. Admin route.
//
// @Summary      Reassign a cat's owner
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Cat id"
// @Param        body  body      transferCatRequest  true  "New owner id"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cats/admin/{id} [put]
func (h *CatHandler) Transfer(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req transferCatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cat, err := h.catService.Transfer(c.Request().Context(), principal, c.Param("id"), req.Owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "cat owner updated",
		Data:    toCatResponse(cat),
	})
}

// AdminDelete removes any cat regardless of ownership. Admin route.
//
// @Summary      Delete any cat
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Cat id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cats/admin/{id} [delete]
func (h *CatHandler) AdminDelete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	cat, err := h.catService.DeleteAny(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "cat deleted",
		Data:    toCatResponse(cat),
	})
}
