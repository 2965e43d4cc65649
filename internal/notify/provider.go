package notify

// Provider sends notification email. Delivery is best-effort everywhere: a
// failed send is logged and never fails the request that triggered it.
type Provider interface {
	Send(to, subject, body string) error
}
