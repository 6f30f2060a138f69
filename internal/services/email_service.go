package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
)

type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailRetryConfig controls retries of failed sends.
type EmailRetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultEmailRetryConfig retries three times starting at half a second.
var DefaultEmailRetryConfig = EmailRetryConfig{
	MaxRetries:      3,
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
}

// EmailService sends transactional email through Resend
type EmailService struct {
	emails    resendEmails
	logger    *zap.Logger
	fromEmail string
	fromName  string
	retry     EmailRetryConfig
}

// NewEmailService creates a Resend backed email sender
func NewEmailService(apiKey, fromEmail, fromName string, logger *zap.Logger) *EmailService {
	httpClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: statusTransport{base: http.DefaultTransport},
	}
	client := resend.NewCustomClient(httpClient, apiKey)
	return newEmailService(client.Emails, fromEmail, fromName, logger, DefaultEmailRetryConfig)
}

func newEmailService(emails resendEmails, fromEmail, fromName string, logger *zap.Logger, retry EmailRetryConfig) *EmailService {
	return &EmailService{
		emails:    emails,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
		retry:     retry,
	}
}

// SendTransactionalEmail sends one email, retrying with exponential backoff.
func (s *EmailService) SendTransactionalEmail(ctx context.Context, p params.TransactionalEmailParams) error {
	if len(p.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	headers := map[string]string{"X-Entity-Ref-ID": uuid.New().String()}
	for k, v := range p.Headers {
		headers[k] = v
	}

	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      p.To,
		Subject: p.Subject,
		Html:    p.HTMLBody,
		Text:    p.TextBody,
		ReplyTo: p.ReplyTo,
		Headers: headers,
		Tags:    convertToResendTags(p.Tags),
	}
	for _, a := range p.Attachments {
		request.Attachments = append(request.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = s.retry.InitialInterval
	expBackoff.MaxInterval = s.retry.MaxInterval

	var sent *resend.SendEmailResponse
	attempt := 0
	operation := func() error {
		attempt++
		sendCtx, status := withStatusRecorder(ctx)
		var err error
		sent, err = s.emails.SendWithContext(sendCtx, request)
		if err == nil {
			return nil
		}
		retryable := isRetryableSend(ctx, err, *status)
		s.logger.Warn("email send attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("status", *status),
			zap.Bool("retryable", retryable),
			zap.String("subject", p.Subject),
			zap.Error(err))
		if !retryable {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, s.retry.MaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		s.logger.Error("failed to send transactional email",
			zap.Error(err),
			zap.Strings("to", p.To),
			zap.String("subject", p.Subject))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("transactional email sent",
		zap.String("email_id", sent.Id),
		zap.Strings("to", p.To),
		zap.String("subject", p.Subject))

	return nil
}

// isRetryableSend reports whether a failed send may succeed when repeated.
// status is the HTTP status Resend answered with, or 0 when no response
// arrived.
func isRetryableSend(ctx context.Context, err error, status int) bool {
	if ctx.Err() != nil {
		return false
	}
	var missing *resend.MissingRequiredFieldsError
	if errors.As(err, &missing) || errors.Is(err, resend.ErrFailedToCreateEmailsSendRequest) {
		return false
	}
	switch {
	case status == 0:
		return true
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
		return true
	case status >= 500:
		return true
	default:
		return false
	}
}

type statusKey struct{}

// withStatusRecorder returns a context under which statusTransport stores
// the response status of the request.
func withStatusRecorder(ctx context.Context) (context.Context, *int) {
	status := new(int)
	return context.WithValue(ctx, statusKey{}, status), status
}

func recordStatus(ctx context.Context, code int) {
	if status, ok := ctx.Value(statusKey{}).(*int); ok {
		*status = code
	}
}

// statusTransport records response codes, which the Resend client drops
// from its errors.
type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err == nil {
		recordStatus(req.Context(), resp.StatusCode)
	}
	return resp, err
}

func convertToResendTags(tags map[string]string) []resend.Tag {
	var resendTags []resend.Tag
	for name, value := range tags {
		resendTags = append(resendTags, resend.Tag{Name: name, Value: value})
	}
	return resendTags
}
