package handlers_fiber

import (
	"net/http"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/mapper"
	api "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostLobbyMembers adds a member: 201 when added, 200 when already on the roster.
func (h *Handler) PostLobbyMembers(c *fiber.Ctx, id string) error {
	var body api.PostLobbyMembersJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	roster, err := h.uc.AddMember(c.UserContext(), id, body.MemberId)
	if err != nil {
		return writeError(c, err)
	}

	status := http.StatusOK
	if roster.Changed {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(mapper.ToOAPIRoster(roster))
}

// DeleteLobbyMember removes a member; removing an absent member still succeeds.
func (h *Handler) DeleteLobbyMember(c *fiber.Ctx, id string, memberID string) error {
	roster, err := h.uc.RemoveMember(c.UserContext(), id, memberID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIRoster(roster))
}
