package app

// MockEmailProvider discards every message. Used when SMTP is not configured
// and in tests.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, body string) error { return nil }
