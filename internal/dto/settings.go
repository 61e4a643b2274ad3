package dto

import (
	"finance-hub/internal/models"
)

// SeedDemoDataResponse reports the records loaded by a demo seed
type SeedDemoDataResponse struct {
	Counts  models.RecordCounts `json:"counts"`
	Message string              `json:"message"`
}

// GenerateTransactionsRequest asks for count random transactions
type GenerateTransactionsRequest struct {
	Count int `json:"count" validate:"required,min=1,max=500"`
}

// GenerateTransactionsResponse lists the generated transactions
type GenerateTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	Message      string               `json:"message"`
}
