package services

import (
	"log"

	"github.com/declanhart/order-management-api/apperrors"
	"github.com/declanhart/order-management-api/models"
	"github.com/declanhart/order-management-api/repositories"
)

// InvoiceService provides read access to invoices
type InvoiceService struct {
	invoices repositories.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoices repositories.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoices: invoices}
}

// GetInvoiceByID returns a single invoice
func (s *InvoiceService) GetInvoiceByID(id uint) (*InvoiceResponse, *apperrors.Error) {
	invoice, err := s.invoices.GetByID(id)
	if err != nil {
		log.Printf("Failed to load invoice %d: %v", id, err)
		return nil, apperrors.Database("load invoice")
	}
	if invoice == nil {
		return nil, apperrors.ErrInvoiceNotFound
	}

	response := mapToInvoiceResponse(invoice)
	return &response, nil
}

// GetAllInvoices lists every invoice; the list may be empty
func (s *InvoiceService) GetAllInvoices() ([]InvoiceResponse, *apperrors.Error) {
	invoices, err := s.invoices.GetAll()
	if err != nil {
		log.Printf("Failed to load invoices: %v", err)
		return nil, apperrors.Database("load invoices")
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, mapToInvoiceResponse(&invoices[i]))
	}
	return responses, nil
}

func mapToInvoiceResponse(i *models.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          i.ID,
		OrderID:     i.OrderID,
		InvoiceDate: i.InvoiceDate,
		TotalAmount: i.TotalAmount,
	}
}
