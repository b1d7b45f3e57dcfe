package handlers_fiber

import (
	"net/http"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/mapper"
	api "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetLobbies lists lobbies. Every query parameter is forwarded; unknown ones are ignored downstream.
func (h *Handler) GetLobbies(c *fiber.Ctx) error {
	lobbies, err := h.uc.ListLobbies(c.UserContext(), c.Queries())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPILobbies(lobbies))
}

// GetLobby returns a lobby by id.
func (h *Handler) GetLobby(c *fiber.Ctx, id string) error {
	lobby, err := h.uc.Lobby(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPILobby(*lobby))
}

// PostLobbies creates a lobby and responds with its new id.
func (h *Handler) PostLobbies(c *fiber.Ctx) error {
	var body api.PostLobbiesJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	lobby, err := h.uc.CreateLobby(c.UserContext(), mapper.FromOAPINewLobby(body))
	if err != nil {
		h.log.Infow("create lobby rejected", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(api.CreatedLobby{Id: lobby.ID})
}

// DeleteLobby removes a lobby by id.
func (h *Handler) DeleteLobby(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteLobby(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusOK)
}
