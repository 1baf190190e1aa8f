package services

import (
	"context"

	"github.com/clubledger/backend/internal/dto"
)

// LedgerSvc exposes the signed, time-ordered cash projection of a project.
type LedgerSvc interface {
	GetLedger(ctx context.Context, projectID string) (*dto.LedgerResponse, error)
}
