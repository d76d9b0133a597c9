package dto

import (
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the payload to create a ledger entry
// directly (as opposed to the ones derived from orders and inbound notes).
type CreateLedgerEntryRequest struct {
	Type        string          `json:"tipo" binding:"required,ledgertype"`
	Description string          `json:"descricao" binding:"required"`
	Amount      decimal.Decimal `json:"valor" binding:"required"`
	DueDate     *time.Time      `json:"data_vencimento"`
	Status      string          `json:"status" binding:"omitempty,ledgerstatus"`
	Category    string          `json:"categoria"`
	CustomerID  *int64          `json:"cliente_id"`
	SupplierID  *int64          `json:"fornecedor_id"`
	Notes       string          `json:"observacoes"`
}

// UpdateLedgerEntryRequest allows changing status and notes. The first
// transition to PAGO stamps the payment date.
type UpdateLedgerEntryRequest struct {
	Status *string `json:"status" binding:"omitempty,ledgerstatus"`
	Notes  *string `json:"observacoes"`
}

// ListLedgerEntriesRequest carries the optional query filters of the list
// endpoint.
type ListLedgerEntriesRequest struct {
	Type   string `form:"tipo" binding:"omitempty,ledgertype"`
	Status string `form:"status" binding:"omitempty,ledgerstatus"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	ID           int64           `json:"id"`
	Type         string          `json:"tipo"`
	Description  string          `json:"descricao"`
	Amount       decimal.Decimal `json:"valor"`
	EntryDate    time.Time       `json:"data_lancamento"`
	DueDate      *time.Time      `json:"data_vencimento"`
	PaymentDate  *time.Time      `json:"data_pagamento"`
	Status       string          `json:"status"`
	Category     string          `json:"categoria"`
	CustomerID   *int64          `json:"cliente_id"`
	CustomerName string          `json:"cliente_nome"`
	SupplierID   *int64          `json:"fornecedor_id"`
	SupplierName string          `json:"fornecedor_nome"`
	Notes        string          `json:"observacoes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:           e.ID,
		Type:         string(e.Type),
		Description:  e.Description,
		Amount:       e.Amount,
		EntryDate:    e.EntryDate,
		DueDate:      e.DueDate,
		PaymentDate:  e.PaymentDate,
		Status:       string(e.Status),
		Category:     e.Category,
		CustomerID:   e.CustomerID,
		CustomerName: e.CustomerName,
		SupplierID:   e.SupplierID,
		SupplierName: e.SupplierName,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToListLedgerEntryResponse converts a slice of ledger entries to response DTOs.
func ToListLedgerEntryResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}

// SummaryBucketResponse aggregates one ledger type by payment state.
type SummaryBucketResponse struct {
	Pending decimal.Decimal `json:"pendentes"`
	Paid    decimal.Decimal `json:"pagas"`
	Total   decimal.Decimal `json:"total"`
}

// FinancialSummaryResponse is the body of the financeiro/resumo endpoint.
type FinancialSummaryResponse struct {
	Revenues         SummaryBucketResponse `json:"receitas"`
	Expenses         SummaryBucketResponse `json:"despesas"`
	Balance          decimal.Decimal       `json:"saldo"`
	ProjectedBalance decimal.Decimal       `json:"saldo_previsto"`
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its DTO.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		Revenues: SummaryBucketResponse{
			Pending: s.Revenues.Pending,
			Paid:    s.Revenues.Paid,
			Total:   s.Revenues.Total,
		},
		Expenses: SummaryBucketResponse{
			Pending: s.Expenses.Pending,
			Paid:    s.Expenses.Paid,
			Total:   s.Expenses.Total,
		},
		Balance:          s.Balance,
		ProjectedBalance: s.ProjectedBalance,
	}
}
