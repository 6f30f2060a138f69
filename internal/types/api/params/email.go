package params

// EmailAttachment is a file attached to an outgoing email
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// TransactionalEmailParams contains parameters for a single outgoing email
type TransactionalEmailParams struct {
	To          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	ReplyTo     string
	Headers     map[string]string
	Tags        map[string]string
	Attachments []EmailAttachment
}
