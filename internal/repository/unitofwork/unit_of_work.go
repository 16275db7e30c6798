package unitofwork

import (
	"context"

	"mightyops-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ViolationNoteRepository() contract.ViolationNoteRepository
	EvaluationRepository() contract.EvaluationRepository
	CapitalRequestRepository() contract.CapitalRequestRepository
	MarketResearchRepository() contract.MarketResearchRepository
	StaffingCultureRepository() contract.StaffingCultureRepository
}
