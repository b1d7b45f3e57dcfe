package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	api "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    api.ErrorResponseErrorCode
		message string
	}{
		{
			name:    "validation",
			err:     fmt.Errorf("%w: lobby must have a non-empty lobby name", entities.ErrInvalidArgument),
			status:  http.StatusBadRequest,
			code:    api.INVALIDARGUMENT,
			message: "invalid argument: lobby must have a non-empty lobby name",
		},
		{
			name:    "bad_id",
			err:     fmt.Errorf("%w: \"bad\" is not a valid lobby id", entities.ErrInvalidIdentifier),
			status:  http.StatusBadRequest,
			code:    api.INVALIDIDENTIFIER,
			message: "invalid identifier: \"bad\" is not a valid lobby id",
		},
		{
			name:    "not_found",
			err:     fmt.Errorf("%w: id abc", entities.ErrLobbyNotFound),
			status:  http.StatusNotFound,
			code:    api.NOTFOUND,
			message: "lobby not found",
		},
		{
			name:    "store_down",
			err:     fmt.Errorf("%w: connection refused", entities.ErrStoreUnavailable),
			status:  http.StatusServiceUnavailable,
			code:    api.STOREUNAVAILABLE,
			message: "store unavailable",
		},
		{
			name:    "unknown",
			err:     fmt.Errorf("boom"),
			status:  http.StatusInternalServerError,
			code:    api.INTERNAL,
			message: "internal error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}
