package response

import (
	"giro_backoffice/internal/usecase"
)

// RecentOperationResponse is one row of the "Operações Recentes" table.
type RecentOperationResponse struct {
	ID          string `json:"id"`
	PagadorNome string `json:"pagador_nome"`
	Status      string `json:"status"`
	Responsavel string `json:"responsavel"`
}

type DashboardSummaryResponse struct {
	TotalOperacoesMes int                       `json:"total_operacoes_mes"`
	ValorTotalMes     float64                   `json:"valor_total_mes"`
	OperacoesRecentes []RecentOperationResponse `json:"operacoes_recentes"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardSummaryResponse {
	recent := make([]RecentOperationResponse, 0, len(s.OperacoesRecentes))
	for _, op := range s.OperacoesRecentes {
		responsavel := op.CreatorFullName
		if responsavel == "" {
			responsavel = "N/A"
		}
		recent = append(recent, RecentOperationResponse{
			ID:          op.ID,
			PagadorNome: op.PagadorNome,
			Status:      string(op.Status),
			Responsavel: responsavel,
		})
	}
	return DashboardSummaryResponse{
		TotalOperacoesMes: s.TotalOperacoesMes,
		ValorTotalMes:     s.ValorTotalMes,
		OperacoesRecentes: recent,
	}
}
