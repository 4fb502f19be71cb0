package http

import (
	"net/http"

	domain "dealership-ops-api/internal/domain/submission"
	"dealership-ops-api/internal/usecase/review"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct{ uc *review.Usecase }

func NewReviewHandler(uc *review.Usecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type supervisorReviewReq struct {
	Action        string   `json:"action"         validate:"required,oneof=approve reject"`
	Comments      string   `json:"comments"`
	FlaggedFields []string `json:"flagged_fields"`
}

func (h *ReviewHandler) ReviewSupervisor(c echo.Context) error {
	actor, aerr := actorFromHeaders(c)
	if aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id"})
	}
	var req supervisorReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.ReviewSupervisor(c.Request().Context(), submissionID, actor,
		domain.Action(req.Action), req.Comments, req.FlaggedFields)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type managerReviewReq struct {
	Action   string `json:"action"   validate:"required,oneof=approve upload send_back reject"`
	Comments string `json:"comments"`
}

func (h *ReviewHandler) ReviewManager(c echo.Context) error {
	actor, aerr := actorFromHeaders(c)
	if aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id"})
	}
	var req managerReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.ReviewManager(c.Request().Context(), submissionID, actor,
		domain.Action(req.Action), req.Comments)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ReviewHandler) Resubmit(c echo.Context) error {
	actor, aerr := actorFromHeaders(c)
	if aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id"})
	}
	var req review.EditInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Resubmit(c.Request().Context(), submissionID, actor, req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type bulkActionReq struct {
	SubmissionIDs []string `json:"submission_ids" validate:"required,min=1,dive,hex32"`
	Action        string   `json:"action"         validate:"required,oneof=approve upload"`
	Comments      string   `json:"comments"`
}

func (h *ReviewHandler) BulkAction(c echo.Context) error {
	actor, aerr := actorFromHeaders(c)
	if aerr != nil {
		return c.JSON(http.StatusBadRequest, aerr)
	}
	var req bulkActionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.BulkManagerAction(c.Request().Context(), req.SubmissionIDs, actor,
		domain.Action(req.Action), req.Comments)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
