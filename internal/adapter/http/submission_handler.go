package http

import (
	"net/http"

	subuc "dealership-ops-api/internal/usecase/submission"

	"github.com/labstack/echo/v4"
)

type SubmissionHandler struct{ uc *subuc.Usecase }

func NewSubmissionHandler(uc *subuc.Usecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

type createSubmissionReq struct {
	Make       string   `json:"make"       validate:"required"`
	Model      string   `json:"model"      validate:"required"`
	Year       *int     `json:"year"       validate:"required"`
	Kilometers *int     `json:"kilometers" validate:"required"`
	Price      *float64 `json:"price"      validate:"required,dec2"`

	Trim         *string  `json:"trim"`
	Location     *string  `json:"location"`
	Province     *string  `json:"province"`
	Color        *string  `json:"color"`
	Transmission *string  `json:"transmission"`
	FuelType     *string  `json:"fuel_type"`
	BodyType     *string  `json:"body_type"`
	Drivetrain   *string  `json:"drivetrain"`
	VIN          *string  `json:"vin"`
	ImageURLs    []string `json:"image_urls"`
	Notes        *string  `json:"notes"`
}

func (h *SubmissionHandler) Create(c echo.Context) error {
	actor, aerr := actorFromHeaders(c)
	if aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	var req createSubmissionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), actor.ID, subuc.CreateInput{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Kilometers:   req.Kilometers,
		Price:        req.Price,
		Trim:         req.Trim,
		Location:     req.Location,
		Province:     req.Province,
		Color:        req.Color,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		BodyType:     req.BodyType,
		Drivetrain:   req.Drivetrain,
		VIN:          req.VIN,
		ImageURLs:    req.ImageURLs,
		Notes:        req.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SubmissionHandler) ListAll(c echo.Context) error {
	if _, aerr := actorFromHeaders(c); aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	stage, serr := stageFilter(c)
	if serr != nil {
		return c.JSON(http.StatusBadRequest, serr)
	}
	rows, err := h.uc.ListAll(c.Request().Context(), stage)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"submissions": rows, "total": len(rows)})
}

func (h *SubmissionHandler) ListMine(c echo.Context) error {
	actor, aerr := actorFromHeaders(c)
	if aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	stage, serr := stageFilter(c)
	if serr != nil {
		return c.JSON(http.StatusBadRequest, serr)
	}
	rows, err := h.uc.ListMine(c.Request().Context(), actor.ID, stage)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"submissions": rows, "total": len(rows)})
}

func (h *SubmissionHandler) ListPending(c echo.Context) error {
	actor, aerr := actorFromHeaders(c)
	if aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	rows, err := h.uc.ListPendingForRole(c.Request().Context(), actor.Role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"submissions": rows, "total": len(rows)})
}

func (h *SubmissionHandler) Stats(c echo.Context) error {
	actor, aerr := actorFromHeaders(c)
	if aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	stats, err := h.uc.Stats(c.Request().Context(), actor)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *SubmissionHandler) GetWithHistory(c echo.Context) error {
	if _, aerr := actorFromHeaders(c); aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id"})
	}
	out, err := h.uc.GetWithHistory(c.Request().Context(), submissionID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
