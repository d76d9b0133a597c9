package dto

import (
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DocumentItemRequest is one line of a document creation payload. UnitPrice is
// optional for quotes, orders and outbound notes (the product's sale price is
// used when absent) and mandatory for inbound notes.
type DocumentItemRequest struct {
	ProductID int64            `json:"produto_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantidade" binding:"required"`
	UnitPrice *decimal.Decimal `json:"preco_unitario"`
}

// DocumentItemResponse is one line of a document in API responses.
type DocumentItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"produto_id"`
	ProductName string          `json:"produto_nome"`
	Quantity    decimal.Decimal `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"preco_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func toItemResponses(items []domain.DocumentItem) []DocumentItemResponse {
	res := make([]DocumentItemResponse, len(items))
	for i, it := range items {
		res[i] = DocumentItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		}
	}
	return res
}

// CreateQuoteRequest defines the payload to create a quote.
type CreateQuoteRequest struct {
	Number     string                `json:"numero" binding:"required"`
	CustomerID int64                 `json:"cliente_id" binding:"required"`
	ValidUntil *time.Time            `json:"data_validade"`
	Notes      string                `json:"observacoes"`
	Status     string                `json:"status"`
	Items      []DocumentItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// UpdateQuoteRequest allows changing only status and notes; lines and totals
// are immutable after creation.
type UpdateQuoteRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"observacoes"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	ID           int64                  `json:"id"`
	Number       string                 `json:"numero"`
	CustomerID   int64                  `json:"cliente_id"`
	CustomerName string                 `json:"cliente_nome"`
	QuoteDate    time.Time              `json:"data_orcamento"`
	ValidUntil   *time.Time             `json:"data_validade"`
	Total        decimal.Decimal        `json:"valor_total"`
	Notes        string                 `json:"observacoes"`
	Status       string                 `json:"status"`
	Items        []DocumentItemResponse `json:"itens"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ToQuoteResponse converts a domain.Quote to its response DTO.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		Number:       q.Number,
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
		QuoteDate:    q.QuoteDate,
		ValidUntil:   q.ValidUntil,
		Total:        q.Total,
		Notes:        q.Notes,
		Status:       string(q.Status),
		Items:        toItemResponses(q.Items),
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// ToListQuoteResponse converts a slice of quotes to response DTOs.
func ToListQuoteResponse(quotes []domain.Quote) []QuoteResponse {
	res := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		res[i] = ToQuoteResponse(&quotes[i])
	}
	return res
}

// CreateSalesOrderRequest defines the payload to create a sales order.
type CreateSalesOrderRequest struct {
	Number       string                `json:"numero" binding:"required"`
	CustomerID   int64                 `json:"cliente_id" binding:"required"`
	DeliveryDate *time.Time            `json:"data_entrega"`
	Notes        string                `json:"observacoes"`
	Status       string                `json:"status"`
	Items        []DocumentItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// UpdateSalesOrderRequest allows changing only status and notes.
type UpdateSalesOrderRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"observacoes"`
}

// SalesOrderResponse defines the data returned for a sales order.
type SalesOrderResponse struct {
	ID           int64                  `json:"id"`
	Number       string                 `json:"numero"`
	CustomerID   int64                  `json:"cliente_id"`
	CustomerName string                 `json:"cliente_nome"`
	OrderDate    time.Time              `json:"data_pedido"`
	DeliveryDate *time.Time             `json:"data_entrega"`
	Total        decimal.Decimal        `json:"valor_total"`
	Notes        string                 `json:"observacoes"`
	Status       string                 `json:"status"`
	Items        []DocumentItemResponse `json:"itens"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ToSalesOrderResponse converts a domain.SalesOrder to its response DTO.
func ToSalesOrderResponse(o *domain.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate,
		DeliveryDate: o.DeliveryDate,
		Total:        o.Total,
		Notes:        o.Notes,
		Status:       string(o.Status),
		Items:        toItemResponses(o.Items),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// ToListSalesOrderResponse converts a slice of orders to response DTOs.
func ToListSalesOrderResponse(orders []domain.SalesOrder) []SalesOrderResponse {
	res := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		res[i] = ToSalesOrderResponse(&orders[i])
	}
	return res
}

// CreateInboundNoteRequest defines the payload to create an inbound note.
// Line prices are mandatory here: they become the product's new cost price.
type CreateInboundNoteRequest struct {
	Number     string                   `json:"numero" binding:"required"`
	SupplierID int64                    `json:"fornecedor_id" binding:"required"`
	Notes      string                   `json:"observacoes"`
	Items      []InboundNoteItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// InboundNoteItemRequest is one line of an inbound note payload.
type InboundNoteItemRequest struct {
	ProductID int64           `json:"produto_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantidade" binding:"required"`
	UnitPrice decimal.Decimal `json:"preco_unitario" binding:"required"`
}

// InboundNoteResponse defines the data returned for an inbound note.
type InboundNoteResponse struct {
	ID           int64                  `json:"id"`
	Number       string                 `json:"numero"`
	SupplierID   int64                  `json:"fornecedor_id"`
	SupplierName string                 `json:"fornecedor_nome"`
	EntryDate    time.Time              `json:"data_entrada"`
	Total        decimal.Decimal        `json:"valor_total"`
	Notes        string                 `json:"observacoes"`
	Items        []DocumentItemResponse `json:"itens"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ToInboundNoteResponse converts a domain.InboundNote to its response DTO.
func ToInboundNoteResponse(n *domain.InboundNote) InboundNoteResponse {
	return InboundNoteResponse{
		ID:           n.ID,
		Number:       n.Number,
		SupplierID:   n.SupplierID,
		SupplierName: n.SupplierName,
		EntryDate:    n.EntryDate,
		Total:        n.Total,
		Notes:        n.Notes,
		Items:        toItemResponses(n.Items),
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

// ToListInboundNoteResponse converts a slice of inbound notes to response DTOs.
func ToListInboundNoteResponse(notes []domain.InboundNote) []InboundNoteResponse {
	res := make([]InboundNoteResponse, len(notes))
	for i := range notes {
		res[i] = ToInboundNoteResponse(&notes[i])
	}
	return res
}

// CreateOutboundNoteRequest defines the payload to create an outbound note.
type CreateOutboundNoteRequest struct {
	Number       string                `json:"numero" binding:"required"`
	CustomerID   int64                 `json:"cliente_id" binding:"required"`
	SalesOrderID *int64                `json:"pedido_venda_id"`
	Notes        string                `json:"observacoes"`
	Items        []DocumentItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// OutboundNoteResponse defines the data returned for an outbound note.
type OutboundNoteResponse struct {
	ID           int64                  `json:"id"`
	Number       string                 `json:"numero"`
	CustomerID   int64                  `json:"cliente_id"`
	CustomerName string                 `json:"cliente_nome"`
	SalesOrderID *int64                 `json:"pedido_venda_id"`
	ExitDate     time.Time              `json:"data_saida"`
	Total        decimal.Decimal        `json:"valor_total"`
	Notes        string                 `json:"observacoes"`
	Items        []DocumentItemResponse `json:"itens"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ToOutboundNoteResponse converts a domain.OutboundNote to its response DTO.
func ToOutboundNoteResponse(n *domain.OutboundNote) OutboundNoteResponse {
	return OutboundNoteResponse{
		ID:           n.ID,
		Number:       n.Number,
		CustomerID:   n.CustomerID,
		CustomerName: n.CustomerName,
		SalesOrderID: n.SalesOrderID,
		ExitDate:     n.ExitDate,
		Total:        n.Total,
		Notes:        n.Notes,
		Items:        toItemResponses(n.Items),
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

// ToListOutboundNoteResponse converts a slice of outbound notes to response DTOs.
func ToListOutboundNoteResponse(notes []domain.OutboundNote) []OutboundNoteResponse {
	res := make([]OutboundNoteResponse, len(notes))
	for i := range notes {
		res[i] = ToOutboundNoteResponse(&notes[i])
	}
	return res
}
