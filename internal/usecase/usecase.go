package usecase

import (
	"context"
	"time"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/repository"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	LobbyUsecaseInterface
	RosterUsecaseInterface
	CompanyUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
