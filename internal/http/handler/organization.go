package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"adlot.app/inventory/internal/http/dto"
	"adlot.app/inventory/internal/service"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgService.Create(ctx, scopeFrom(ctx), service.CreateOrganizationInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			slog.InfoContext(ctx, "duplicate organization creation attempted", "email", req.Email)
			c.JSON(http.StatusConflict, gin.H{"error": "organization with this email already exists"})
			return
		}
		slog.ErrorContext(ctx, "failed to create organization", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create organization"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	orgs, err := h.orgService.List(ctx, scopeFrom(ctx))
	if err != nil {
		slog.ErrorContext(ctx, "failed to list organizations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list organizations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrganizationsResponse(orgs))
}
