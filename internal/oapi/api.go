// Package oapi holds the HTTP contract of the lobby service: DTOs, the server interface and route registration.
package oapi

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponseErrorCode enumerates error codes.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	INVALIDARGUMENT   ErrorResponseErrorCode = "INVALID_ARGUMENT"
	INVALIDIDENTIFIER ErrorResponseErrorCode = "INVALID_IDENTIFIER"
	NOTFOUND          ErrorResponseErrorCode = "NOT_FOUND"
	STOREUNAVAILABLE  ErrorResponseErrorCode = "STORE_UNAVAILABLE"
	INTERNAL          ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Lobby defines model for Lobby.
type Lobby struct {
	Id        string   `json:"_id"`
	LobbyName string   `json:"lobbyName"`
	MemberIDs []string `json:"memberIDs"`
	Company   *string  `json:"company,omitempty"`
}

// NewLobby defines model for NewLobby. LobbyName is a pointer so an absent name can be told from an empty one.
type NewLobby struct {
	LobbyName *string  `json:"lobbyName"`
	MemberIDs []string `json:"memberIDs,omitempty"`
	Company   *string  `json:"company,omitempty"`
}

// CreatedLobby defines model for CreatedLobby.
type CreatedLobby struct {
	Id string `json:"id"`
}

// MemberRequest defines model for MemberRequest.
type MemberRequest struct {
	MemberId string `json:"memberId"`
}

// Roster defines model for Roster.
type Roster struct {
	Id        string   `json:"id"`
	MemberIDs []string `json:"memberIDs"`
}

// LobbyRef defines model for LobbyRef.
type LobbyRef struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// CompanySummary defines model for CompanySummary. A null company is the ungrouped bucket.
type CompanySummary struct {
	Company *string    `json:"company"`
	Count   int        `json:"count"`
	Lobbies []LobbyRef `json:"lobbies"`
}

// GetLobbiesByCompanyParams defines parameters for GetLobbiesByCompany.
type GetLobbiesByCompanyParams struct {
	SortBy    *string `query:"sortBy"`
	SortOrder *string `query:"sortOrder"`
}

// PostLobbiesJSONRequestBody defines body for PostLobbies for application/json ContentType.
type PostLobbiesJSONRequestBody = NewLobby

// PostLobbyMembersJSONRequestBody defines body for PostLobbyMembers for application/json ContentType.
type PostLobbyMembersJSONRequestBody = MemberRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List lobbies filtered by lobbyName/company and ordered by sortby/sortorder
	// (GET /api/lobbies)
	GetLobbies(c *fiber.Ctx) error
	// Create a lobby
	// (POST /api/lobbies)
	PostLobbies(c *fiber.Ctx) error
	// Get a lobby by id
	// (GET /api/lobbies/{id})
	GetLobby(c *fiber.Ctx, id string) error
	// Delete a lobby by id
	// (DELETE /api/lobbies/{id})
	DeleteLobby(c *fiber.Ctx, id string) error
	// Add a member to the lobby roster
	// (POST /api/lobbies/{id}/members)
	PostLobbyMembers(c *fiber.Ctx, id string) error
	// Remove a member from the lobby roster
	// (DELETE /api/lobbies/{id}/members/{memberId})
	DeleteLobbyMember(c *fiber.Ctx, id string, memberId string) error
	// Summarise lobbies per company
	// (GET /api/lobbiesByCompany)
	GetLobbiesByCompany(c *fiber.Ctx, params GetLobbiesByCompanyParams) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetLobbies operation middleware
func (siw *ServerInterfaceWrapper) GetLobbies(c *fiber.Ctx) error {
	return siw.Handler.GetLobbies(c)
}

// PostLobbies operation middleware
func (siw *ServerInterfaceWrapper) PostLobbies(c *fiber.Ctx) error {
	return siw.Handler.PostLobbies(c)
}

// GetLobby operation middleware
func (siw *ServerInterfaceWrapper) GetLobby(c *fiber.Ctx) error {
	return siw.Handler.GetLobby(c, c.Params("id"))
}

// DeleteLobby operation middleware
func (siw *ServerInterfaceWrapper) DeleteLobby(c *fiber.Ctx) error {
	return siw.Handler.DeleteLobby(c, c.Params("id"))
}

// PostLobbyMembers operation middleware
func (siw *ServerInterfaceWrapper) PostLobbyMembers(c *fiber.Ctx) error {
	return siw.Handler.PostLobbyMembers(c, c.Params("id"))
}

// DeleteLobbyMember operation middleware
func (siw *ServerInterfaceWrapper) DeleteLobbyMember(c *fiber.Ctx) error {
	return siw.Handler.DeleteLobbyMember(c, c.Params("id"), c.Params("memberId"))
}

// GetLobbiesByCompany operation middleware
func (siw *ServerInterfaceWrapper) GetLobbiesByCompany(c *fiber.Ctx) error {
	var params GetLobbiesByCompanyParams
	if err := c.QueryParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters: "+err.Error())
	}
	return siw.Handler.GetLobbiesByCompany(c, params)
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []fiber.Handler
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	for _, m := range options.Middlewares {
		router.Use(m)
	}

	router.Get(options.BaseURL+"/api/lobbies", wrapper.GetLobbies)
	router.Post(options.BaseURL+"/api/lobbies", wrapper.PostLobbies)
	router.Get(options.BaseURL+"/api/lobbies/:id", wrapper.GetLobby)
	router.Delete(options.BaseURL+"/api/lobbies/:id", wrapper.DeleteLobby)
	router.Post(options.BaseURL+"/api/lobbies/:id/members", wrapper.PostLobbyMembers)
	router.Delete(options.BaseURL+"/api/lobbies/:id/members/:memberId", wrapper.DeleteLobbyMember)
	router.Get(options.BaseURL+"/api/lobbiesByCompany", wrapper.GetLobbiesByCompany)
}
