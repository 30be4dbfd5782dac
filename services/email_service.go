package services

import (
	"log"
)

// EmailService notifies a customer that their order's status changed.
// Callers treat it as fire-and-forget; a failed send never fails the request.
type EmailService interface {
	SendOrderStatusChangeEmail(customerEmail string, orderID uint, newStatus string) error
}

// LogEmailService writes the notification to the application log instead of
// sending real mail. A production deployment would swap in an SMTP or
// provider-backed implementation behind the same interface.
type LogEmailService struct{}

// NewLogEmailService creates a log-backed email service
func NewLogEmailService() *LogEmailService {
	return &LogEmailService{}
}

// SendOrderStatusChangeEmail logs the notification that would be sent
func (s *LogEmailService) SendOrderStatusChangeEmail(customerEmail string, orderID uint, newStatus string) error {
	log.Printf("Email notification sent to %s - Order #%d status changed to %s",
		customerEmail, orderID, newStatus)
	return nil
}
