package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	api "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidIdentifier):
		status = http.StatusBadRequest
		code = api.INVALIDIDENTIFIER
		msg = err.Error()
	case errors.Is(err, entities.ErrLobbyNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "lobby not found"
	case errors.Is(err, entities.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
		code = api.STOREUNAVAILABLE
		msg = "store unavailable"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
