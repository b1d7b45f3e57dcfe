package handlers_fiber

import (
	"net/http"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/mapper"
	api "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// GetLobbiesByCompany summarises lobbies per company.
func (h *Handler) GetLobbiesByCompany(c *fiber.Ctx, params api.GetLobbiesByCompanyParams) error {
	groups, err := h.uc.LobbiesByCompany(c.UserContext(), lo.FromPtr(params.SortBy), lo.FromPtr(params.SortOrder))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPICompanySummaries(groups))
}
