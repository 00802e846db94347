package email

// Mailer is the outbound email transport. Sending is best-effort; callers
// decide whether a failed send is fatal to the operation.
type Mailer interface {
	SendPlain(to []string, subject, body string) error
	SendHTML(to []string, subject, tmplName string, data map[string]string) error
}
