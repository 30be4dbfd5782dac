package services

import (
	"sync"
)

// SentEmail records one notification captured by the mock
type SentEmail struct {
	CustomerEmail string
	OrderID       uint
	NewStatus     string
}

// MockEmailService is a mock implementation of EmailService for testing.
// It records every notification instead of sending anything.
type MockEmailService struct {
	mu   sync.Mutex
	sent []SentEmail
	err  error
}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// FailWith makes every subsequent send return err
func (m *MockEmailService) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SendOrderStatusChangeEmail records the notification
func (m *MockEmailService) SendOrderStatusChangeEmail(customerEmail string, orderID uint, newStatus string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, SentEmail{
		CustomerEmail: customerEmail,
		OrderID:       orderID,
		NewStatus:     newStatus,
	})
	return nil
}

// Sent returns a copy of the recorded notifications
func (m *MockEmailService) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}
