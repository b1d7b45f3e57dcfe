// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	api "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/usecase"

	"go.uber.org/zap"
)

var _ api.ServerInterface = (*Handler)(nil)

// Handler implements oapi.ServerInterface using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}
