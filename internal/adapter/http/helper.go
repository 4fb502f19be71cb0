package http

import (
	"errors"
	"net/http"
	"strings"

	domain "dealership-ops-api/internal/domain/submission"

	"github.com/labstack/echo/v4"
)

// actorFromHeaders pulls the already-resolved identity off the request.
// Identity/session resolution happens upstream; this adapter only trusts the
// pair it is handed.
func actorFromHeaders(c echo.Context) (domain.Actor, *ErrorResponse) {
	id := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
	if !reHex32.MatchString(id) {
		return domain.Actor{}, &ErrorResponse{Error: "missing or invalid Ax-Actor-Id"}
	}
	role := domain.Role(strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Role")))
	switch role {
	case domain.RoleScraper, domain.RoleSupervisor, domain.RoleManager, domain.RoleAdmin:
	default:
		return domain.Actor{}, &ErrorResponse{Error: "missing or invalid Ax-Actor-Role"}
	}
	return domain.Actor{ID: id, Role: role}, nil
}

// writeDomainError maps core errors onto HTTP statuses.
func writeDomainError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: []FieldError{{Field: ve.Field, Message: ve.Message}}})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "submission not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidStage), errors.Is(err, domain.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// stageFilter parses an optional ?stage= query param.
func stageFilter(c echo.Context) (*domain.Stage, *ErrorResponse) {
	raw := strings.TrimSpace(c.QueryParam("stage"))
	if raw == "" {
		return nil, nil
	}
	st := domain.Stage(raw)
	switch st {
	case domain.StagePendingSupervisor, domain.StagePendingManager,
		domain.StageApproved, domain.StageRejected, domain.StageUploaded:
		return &st, nil
	}
	return nil, &ErrorResponse{Error: "invalid stage filter"}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
