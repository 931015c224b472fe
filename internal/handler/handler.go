package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/middleware"
	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/session"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// KeywordParam is the query parameter narrowing a fetched list
const KeywordParam = "q"

// currentPortal returns the portal of the signed-in student. Routes without Auth get nil.
func currentPortal(c *gin.Context) *viewstate.Portal {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return nil
	}
	return s.Portal
}

// respondError maps err to a status. The message of a failed view action wins over fallback.
func respondError(c *gin.Context, log *logger.Logger, fallback string, err error) {
	msg := fallback
	var actionErr *viewstate.ActionError
	if errors.As(err, &actionErr) {
		msg = actionErr.Message
	}

	entry := log.WithError(err).WithField("path", c.Request.URL.Path)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		entry.Warn("Record not found")
		utils.NotFoundResponse(c, msg, err)
	case errors.Is(err, models.ErrValidation):
		entry.Warn("Request rejected")
		utils.BadRequestResponse(c, msg, err)
	case errors.Is(err, session.ErrInvalidCredentials),
		errors.Is(err, session.ErrInvalidToken),
		errors.Is(err, session.ErrSessionExpired):
		entry.Warn("Unauthenticated request")
		utils.UnauthorizedResponse(c, msg, err)
	default:
		entry.Error("Request failed")
		utils.InternalServerErrorResponse(c, msg, err)
	}
}

// bindFilter reads a filter from the query string and applies the keyword parameter.
// A query that does not bind warns the student like any other invalid filter.
func bindFilter[F any](c *gin.Context, log *logger.Logger) (F, string, bool) {
	var f F
	if err := c.ShouldBindQuery(&f); err != nil {
		log.WithError(err).Error("Invalid query parameters")
		if p := currentPortal(c); p != nil {
			p.Toasts.Warning(viewstate.InvalidFilterMessage)
		}
		utils.BadRequestResponse(c, viewstate.InvalidFilterMessage, err)
		return f, "", false
	}
	return f, c.Query(KeywordParam), true
}

// respondPage writes one page of a list snapshot. Pages cut the narrowed items.
func respondPage[F, T any](c *gin.Context, message string, snap viewstate.ListSnapshot[F, T]) {
	page, limit := utils.GetPaginationParams(c)
	total := int64(len(snap.Items))
	snap.Items = utils.Paginate(snap.Items, page, limit)
	utils.PaginatedSuccessResponse(c, message, snap, page, limit, total)
}
