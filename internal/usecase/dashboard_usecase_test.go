package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"giro_backoffice/internal/domain/entities"
	mock_interfaces "giro_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	monthStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("not authenticated", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil)
		_, err := uc.Summary(context.Background(), " ", false, now)
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("regular user aggregates own month and recents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ops := mock_interfaces.NewMockIOperationRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewDashboardUseCase(ops, profiles)

		ops.EXPECT().ListByPeriod(gomock.Any(), "user-1", monthStart, monthEnd).Return([]entities.Operation{
			{ID: "op-1", QuantoPrecisa: 100000},
			{ID: "op-2", QuantoPrecisa: 50000.50},
		}, nil)
		ops.EXPECT().ListRecent(gomock.Any(), "user-1", 5).Return([]entities.Operation{
			{ID: "op-2", CreatedBy: "user-1"},
			{ID: "op-1", CreatedBy: "user-1"},
		}, nil)
		profiles.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Profile{ID: "user-1", FullName: "Maria Souza"}, nil)

		summary, err := uc.Summary(context.Background(), "user-1", false, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalOperacoesMes != 2 {
			t.Fatalf("expected 2 operations, got %d", summary.TotalOperacoesMes)
		}
		if summary.ValorTotalMes != 150000.50 {
			t.Fatalf("expected 150000.50, got %v", summary.ValorTotalMes)
		}
		if len(summary.OperacoesRecentes) != 2 {
			t.Fatalf("expected 2 recents, got %d", len(summary.OperacoesRecentes))
		}
		for _, op := range summary.OperacoesRecentes {
			if op.CreatorFullName != "Maria Souza" {
				t.Fatalf("expected resolved creator name, got %q", op.CreatorFullName)
			}
		}
	})

	t.Run("admin aggregates across all creators", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ops := mock_interfaces.NewMockIOperationRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewDashboardUseCase(ops, profiles)

		ops.EXPECT().ListByPeriod(gomock.Any(), "", monthStart, monthEnd).Return([]entities.Operation{{ID: "op-1", QuantoPrecisa: 1000}}, nil)
		ops.EXPECT().ListRecent(gomock.Any(), "", 5).Return([]entities.Operation{}, nil)

		summary, err := uc.Summary(context.Background(), "admin-1", true, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalOperacoesMes != 1 || summary.ValorTotalMes != 1000 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("empty month yields zeros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ops := mock_interfaces.NewMockIOperationRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewDashboardUseCase(ops, profiles)

		ops.EXPECT().ListByPeriod(gomock.Any(), "user-1", monthStart, monthEnd).Return([]entities.Operation{}, nil)
		ops.EXPECT().ListRecent(gomock.Any(), "user-1", 5).Return([]entities.Operation{}, nil)

		summary, err := uc.Summary(context.Background(), "user-1", false, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalOperacoesMes != 0 || summary.ValorTotalMes != 0 {
			t.Fatalf("expected zero summary, got %+v", summary)
		}
		if summary.OperacoesRecentes == nil || len(summary.OperacoesRecentes) != 0 {
			t.Fatalf("expected empty non-nil recents, got %+v", summary.OperacoesRecentes)
		}
	})

	t.Run("query failures degrade instead of erroring", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ops := mock_interfaces.NewMockIOperationRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewDashboardUseCase(ops, profiles)

		ops.EXPECT().ListByPeriod(gomock.Any(), "user-1", monthStart, monthEnd).Return(nil, errors.New("db"))
		ops.EXPECT().ListRecent(gomock.Any(), "user-1", 5).Return(nil, errors.New("db"))

		summary, err := uc.Summary(context.Background(), "user-1", false, now)
		if err != nil {
			t.Fatalf("expected degraded summary, got error %v", err)
		}
		if summary.TotalOperacoesMes != 0 || summary.ValorTotalMes != 0 || len(summary.OperacoesRecentes) != 0 {
			t.Fatalf("expected empty summary, got %+v", summary)
		}
	})

	t.Run("missing profile falls back to N/A", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ops := mock_interfaces.NewMockIOperationRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewDashboardUseCase(ops, profiles)

		ops.EXPECT().ListByPeriod(gomock.Any(), "", monthStart, monthEnd).Return([]entities.Operation{}, nil)
		ops.EXPECT().ListRecent(gomock.Any(), "", 5).Return([]entities.Operation{
			{ID: "op-1", CreatedBy: "ghost"},
			{ID: "op-2", CreatedBy: "ghost"},
		}, nil)
		// lookup happens once per creator thanks to the per-call cache
		profiles.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Profile{}, errors.New("not found")).Times(1)

		summary, err := uc.Summary(context.Background(), "admin-1", true, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, op := range summary.OperacoesRecentes {
			if op.CreatorFullName != "N/A" {
				t.Fatalf("expected N/A fallback, got %q", op.CreatorFullName)
			}
		}
	})
}

func TestMonthWindow(t *testing.T) {
	cases := []struct {
		name  string
		in    time.Time
		first time.Time
		last  time.Time
	}{
		{
			name:  "march",
			in:    time.Date(2026, time.March, 15, 23, 59, 59, 0, time.UTC),
			first: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap february",
			in:    time.Date(2028, time.February, 2, 0, 0, 0, 0, time.UTC),
			first: time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "december wraps the year",
			in:    time.Date(2026, time.December, 31, 12, 0, 0, 0, time.UTC),
			first: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := monthWindow(tc.in)
			if !first.Equal(tc.first) || !last.Equal(tc.last) {
				t.Fatalf("expected [%v, %v], got [%v, %v]", tc.first, tc.last, first, last)
			}
		})
	}
}
