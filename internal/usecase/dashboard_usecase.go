package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/usecase/interfaces"
)

const recentOperationsLimit = 5

// DashboardSummary aggregates the current month's operations plus the
// most recent ones regardless of date.

type DashboardSummary struct {
	TotalOperacoesMes int
	ValorTotalMes     float64
	OperacoesRecentes []entities.Operation
}

// IDashboardUseCase builds the landing-page summary.

type IDashboardUseCase interface {
	Summary(ctx context.Context, callerID string, isAdmin bool, now time.Time) (DashboardSummary, error)
}

type DashboardUseCase struct {
	operations interfaces.IOperationRepository
	profiles   interfaces.IProfileRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(operations interfaces.IOperationRepository, profiles interfaces.IProfileRepository) *DashboardUseCase {
	return &DashboardUseCase{operations: operations, profiles: profiles}
}

// Summary counts and sums the caller's operations created inside the
// current calendar month (everything for admins) and attaches the 5 most
// recent operations with their creator names. Query failures degrade to
// zeros/empty instead of failing the page; only a missing caller is an
// error.
func (u *DashboardUseCase) Summary(ctx context.Context, callerID string, isAdmin bool, now time.Time) (DashboardSummary, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return DashboardSummary{}, ErrNotAuthenticated
	}

	creator := callerID
	if isAdmin {
		creator = ""
	}

	firstDay, lastDay := monthWindow(now.UTC())

	summary := DashboardSummary{OperacoesRecentes: []entities.Operation{}}

	monthOps, err := u.operations.ListByPeriod(ctx, creator, firstDay, lastDay)
	if err != nil {
		log.Printf("[dashboard][usecase] month query failed created_by=%q err=%v", creator, err)
	} else {
		summary.TotalOperacoesMes = len(monthOps)
		for _, op := range monthOps {
			summary.ValorTotalMes += op.QuantoPrecisa
		}
	}

	recent, err := u.operations.ListRecent(ctx, creator, recentOperationsLimit)
	if err != nil {
		log.Printf("[dashboard][usecase] recent query failed created_by=%q err=%v", creator, err)
		return summary, nil
	}

	names := map[string]string{}
	for i := range recent {
		recent[i].CreatorFullName = u.creatorName(ctx, names, recent[i].CreatedBy)
	}
	summary.OperacoesRecentes = recent

	return summary, nil
}

func (u *DashboardUseCase) creatorName(ctx context.Context, cache map[string]string, creatorID string) string {
	if name, ok := cache[creatorID]; ok {
		return name
	}
	name := "N/A"
	profile, err := u.profiles.GetByID(ctx, creatorID)
	if err != nil {
		log.Printf("[dashboard][usecase] profile lookup failed id=%s err=%v", creatorID, err)
	} else if profile.FullName != "" {
		name = profile.FullName
	}
	cache[creatorID] = name
	return name
}

// monthWindow returns the inclusive [first day, last day] bounds of the
// month containing t, both at midnight UTC as the source system queried
// them.
func monthWindow(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}
