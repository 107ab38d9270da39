package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prpo-skupina4/optimizator-ms/internal/dto"
	internalmiddleware "github.com/prpo-skupina4/optimizator-ms/internal/middleware"
	"github.com/prpo-skupina4/optimizator-ms/internal/service"
	appErrors "github.com/prpo-skupina4/optimizator-ms/pkg/errors"
	"github.com/prpo-skupina4/optimizator-ms/pkg/response"
)

type timetableOptimizer interface {
	Optimize(ctx context.Context, req dto.OptimizeRequest) (*dto.OptimizeResponse, error)
	Export(ctx context.Context, req dto.OptimizeRequest, format string) ([]byte, string, error)
}

// OptimizeHandler exposes timetable optimization endpoints.
type OptimizeHandler struct {
	service timetableOptimizer
}

// NewOptimizeHandler constructs the handler.
func NewOptimizeHandler(svc *service.OptimizerService) *OptimizeHandler {
	return &OptimizeHandler{service: svc}
}

// Optimize godoc
// @Summary Compute an optimized timetable for a user
// @Description Assigns one exercise slot per requested activity so that no slots overlap and all stated requirements hold. Infeasible instances return an empty schedule with feasible=false.
// @Tags Timetables
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param payload body dto.OptimizeRequest true "Optimization payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /timetables/{userId}/optimize [post]
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}
	resp, err := h.service.Optimize(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Export godoc
// @Summary Export an optimized timetable as CSV or PDF
// @Description Runs the same optimization and streams the resulting timetable as a file. Infeasible instances cannot be exported and return 409.
// @Tags Timetables
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param userId path int true "User ID"
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Param payload body dto.OptimizeRequest true "Optimization payload"
// @Success 200 {file} file
// @Failure 409 {object} response.Envelope
// @Router /timetables/{userId}/export [post]
func (h *OptimizeHandler) Export(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.service.Export(c.Request.Context(), req, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=timetable-%d.%s", req.UserID, ext))
	c.Data(http.StatusOK, contentType, payload)
}

// bindRequest parses the path user id, decodes the body and enforces that the
// caller only optimizes their own timetable.
func (h *OptimizeHandler) bindRequest(c *gin.Context) (dto.OptimizeRequest, bool) {
	var req dto.OptimizeRequest

	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "userId must be a positive integer"))
		return req, false
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid optimization payload"))
		return req, false
	}

	if req.UserID != 0 && req.UserID != userID {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "userId in path and body do not match"))
		return req, false
	}
	req.UserID = userID

	if claims := internalmiddleware.CurrentClaims(c); claims != nil && claims.UserID != userID {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "cannot optimize another user's timetable"))
		return req, false
	}
	return req, true
}
