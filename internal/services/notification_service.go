package services

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	"sync"
	texttemplate "text/template"
	"time"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/interfaces"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

const qrCodeSize = 256

// NotificationConfig configures order notification emails
type NotificationConfig struct {
	// BaseURL is the storefront origin used in tracking links.
	BaseURL string
	// OwnerEmail receives a copy of every new order. Empty disables it.
	OwnerEmail   string
	SupportEmail string
}

// NotificationService emails customers and the store owner about orders
type NotificationService struct {
	queries db.Querier
	email   interfaces.EmailSender
	config  NotificationConfig
	logger  *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(queries db.Querier, email interfaces.EmailSender, config NotificationConfig) *NotificationService {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &NotificationService{
		queries: queries,
		email:   email,
		config:  config,
		logger:  logger.Log,
	}
}

// OrderEmailLine is one line item as shown in an email.
type OrderEmailLine struct {
	Name      string
	Quantity  int32
	UnitPrice string
	LineTotal string
}

// OrderEmailData is the template data of order emails.
type OrderEmailData struct {
	Lang           string
	Dir            string
	Text           emailText
	OrderNumber    string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	Address        string
	PaymentMethod  string
	Status         string
	PreviousStatus string
	Lines          []OrderEmailLine
	Subtotal       string
	Shipping       string
	Total          string
	Notes          string
	TrackingURL    string
	SupportEmail   string
	HasQRCode      bool
}

type emailText struct {
	ConfirmSubject string
	StatusSubject  string
	Greeting       string
	Thanks         string
	StatusIntro    string
	Track          string
	Subtotal       string
	Shipping       string
	Total          string
	Questions      string
	QRNote         string
}

var emailTexts = map[string]emailText{
	constants.EnglishLanguage: {
		ConfirmSubject: "Your ReachFood order %s is confirmed",
		StatusSubject:  "Update on your ReachFood order %s",
		Greeting:       "Hi",
		Thanks:         "Thank you for your order. We will contact you before delivery.",
		StatusIntro:    "Your order status is now",
		Track:          "Track your order",
		Subtotal:       "Subtotal",
		Shipping:       "Shipping",
		Total:          "Total",
		Questions:      "Questions? Reply to this email or write to",
		QRNote:         "Scan the attached QR code to open your order.",
	},
	constants.ArabicLanguage: {
		ConfirmSubject: "تم تأكيد طلبك %s من ReachFood",
		StatusSubject:  "تحديث على طلبك %s من ReachFood",
		Greeting:       "مرحباً",
		Thanks:         "شكراً لطلبك. سنتواصل معك قبل التوصيل.",
		StatusIntro:    "حالة طلبك الآن",
		Track:          "تتبع طلبك",
		Subtotal:       "المجموع الفرعي",
		Shipping:       "الشحن",
		Total:          "الإجمالي",
		Questions:      "لديك أسئلة؟ راسلنا على",
		QRNote:         "امسح رمز QR المرفق لفتح طلبك.",
	},
}

var customerHTMLTemplate = htmltemplate.Must(htmltemplate.New("customer").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #16a34a; color: white; padding: 20px; text-align: center; }
        table { width: 100%; border-collapse: collapse; }
        td { padding: 6px 0; border-bottom: 1px solid #eee; }
        .total td { font-weight: bold; border-bottom: none; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>{{.OrderNumber}}</h2></div>
        <p>{{.Text.Greeting}} {{.CustomerName}},</p>
        {{if .PreviousStatus}}<p>{{.Text.StatusIntro}}: <strong>{{.Status}}</strong></p>{{else}}<p>{{.Text.Thanks}}</p>{{end}}
        <table>
            {{range .Lines}}<tr><td>{{.Name}} &times; {{.Quantity}}</td><td>{{.LineTotal}}</td></tr>
            {{end}}<tr><td>{{.Text.Subtotal}}</td><td>{{.Subtotal}}</td></tr>
            <tr><td>{{.Text.Shipping}}</td><td>{{.Shipping}}</td></tr>
            <tr class="total"><td>{{.Text.Total}}</td><td>{{.Total}}</td></tr>
        </table>
        <p><a href="{{.TrackingURL}}">{{.Text.Track}}</a></p>
        {{if .HasQRCode}}<p>{{.Text.QRNote}}</p>{{end}}
        <div class="footer">{{.Text.Questions}} {{.SupportEmail}}</div>
    </div>
</body>
</html>`))

var customerTextTemplate = texttemplate.Must(texttemplate.New("customer").Parse(`{{.Text.Greeting}} {{.CustomerName}},

{{if .PreviousStatus}}{{.Text.StatusIntro}}: {{.Status}}{{else}}{{.Text.Thanks}}{{end}}

{{range .Lines}}{{.Name}} x {{.Quantity}}  {{.LineTotal}}
{{end}}
{{.Text.Subtotal}}: {{.Subtotal}}
{{.Text.Shipping}}: {{.Shipping}}
{{.Text.Total}}: {{.Total}}

{{.Text.Track}}: {{.TrackingURL}}

{{.Text.Questions}} {{.SupportEmail}}
`))

var ownerTextTemplate = texttemplate.Must(texttemplate.New("owner").Parse(`New order {{.OrderNumber}}

Customer: {{.CustomerName}} <{{.CustomerEmail}}>
Phone: {{.CustomerPhone}}
Address: {{.Address}}
Payment: {{.PaymentMethod}}

{{range .Lines}}{{.Name}} x {{.Quantity}} @ {{.UnitPrice}} = {{.LineTotal}}
{{end}}
Subtotal: {{.Subtotal}}
Shipping: {{.Shipping}}
Total: {{.Total}}
{{if .Notes}}
Notes: {{.Notes}}
{{end}}`))

// HandleOrderEvent sends the emails for one order event. Unknown event types
// are ignored.
func (s *NotificationService) HandleOrderEvent(ctx context.Context, event business.OrderEvent) error {
	switch event.Type {
	case constants.OrderCreatedEvent, constants.OrderStatusChangedEvent:
	default:
		s.logger.Warn("Ignoring unknown order event", zap.String("type", event.Type))
		return nil
	}

	order, err := s.queries.GetOrderByID(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", event.OrderNumber, err)
	}
	items, err := s.queries.ListOrderItems(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("failed to load items of order %s: %w", order.OrderNumber, err)
	}

	data := s.BuildEmailData(business.OrderDetails{Order: order, Items: items})

	if event.Type == constants.OrderStatusChangedEvent {
		data.PreviousStatus = event.PreviousStatus
		if data.PreviousStatus == "" {
			data.PreviousStatus = "-"
		}
		return s.sendCustomerEmail(ctx, data, fmt.Sprintf(data.Text.StatusSubject, order.OrderNumber), nil)
	}

	qr, err := qrcode.Encode(data.TrackingURL, qrcode.Medium, qrCodeSize)
	if err != nil {
		s.logger.Warn("Failed to render tracking QR code", zap.String("order_number", order.OrderNumber), zap.Error(err))
	} else {
		data.HasQRCode = true
	}

	if err := s.sendCustomerEmail(ctx, data, fmt.Sprintf(data.Text.ConfirmSubject, order.OrderNumber), qr); err != nil {
		return err
	}

	if s.config.OwnerEmail == "" {
		return nil
	}
	return s.sendOwnerEmail(ctx, data)
}

// BuildEmailData renders the amounts and links of an order for templates.
func (s *NotificationService) BuildEmailData(o business.OrderDetails) OrderEmailData {
	lang := o.Order.Language
	text, ok := emailTexts[lang]
	if !ok {
		lang = constants.EnglishLanguage
		text = emailTexts[lang]
	}
	dir := "ltr"
	if lang == constants.ArabicLanguage {
		dir = "rtl"
	}

	currency := o.Order.Currency
	lines := make([]OrderEmailLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, OrderEmailLine{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: helpers.FormatMoney(item.UnitPriceCents, currency),
			LineTotal: helpers.FormatMoney(item.LineTotalCents, currency),
		})
	}

	return OrderEmailData{
		Lang:          lang,
		Dir:           dir,
		Text:          text,
		OrderNumber:   o.Order.OrderNumber,
		CustomerName:  o.Order.CustomerName,
		CustomerEmail: o.Order.CustomerEmail,
		CustomerPhone: o.Order.CustomerPhone,
		Address:       fmt.Sprintf("%s, %s, %s", o.Order.ShippingAddress, o.Order.City, o.Order.Country),
		PaymentMethod: o.Order.PaymentMethod,
		Status:        o.Order.Status,
		Lines:         lines,
		Subtotal:      helpers.FormatMoney(o.Order.SubtotalCents, currency),
		Shipping:      helpers.FormatMoney(o.Order.ShippingCents, currency),
		Total:         helpers.FormatMoney(o.Order.TotalCents, currency),
		Notes:         helpers.TextOrEmpty(o.Order.Notes),
		TrackingURL:   s.TrackingURL(o.Order.OrderNumber, o.Order.CustomerEmail),
		SupportEmail:  s.config.SupportEmail,
	}
}

// TrackingURL links to the public order confirmation page.
func (s *NotificationService) TrackingURL(orderNumber, email string) string {
	return fmt.Sprintf("%s/orders/%s?%s", s.config.BaseURL, url.PathEscape(orderNumber), url.Values{"email": {email}}.Encode())
}

func (s *NotificationService) sendCustomerEmail(ctx context.Context, data OrderEmailData, subject string, qr []byte) error {
	var htmlBody bytes.Buffer
	if err := customerHTMLTemplate.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("failed to render customer email: %w", err)
	}
	var textBody bytes.Buffer
	if err := customerTextTemplate.Execute(&textBody, data); err != nil {
		return fmt.Errorf("failed to render customer email text: %w", err)
	}

	email := params.TransactionalEmailParams{
		To:       []string{data.CustomerEmail},
		Subject:  subject,
		HTMLBody: htmlBody.String(),
		TextBody: textBody.String(),
		ReplyTo:  s.config.SupportEmail,
		Tags: map[string]string{
			"category": "order",
			"status":   data.Status,
		},
	}
	if len(qr) > 0 {
		email.Attachments = []params.EmailAttachment{{Filename: "order-qr.png", Content: qr}}
	}

	return s.email.SendTransactionalEmail(ctx, email)
}

func (s *NotificationService) sendOwnerEmail(ctx context.Context, data OrderEmailData) error {
	var textBody bytes.Buffer
	if err := ownerTextTemplate.Execute(&textBody, data); err != nil {
		return fmt.Errorf("failed to render owner email: %w", err)
	}

	return s.email.SendTransactionalEmail(ctx, params.TransactionalEmailParams{
		To:       []string{s.config.OwnerEmail},
		Subject:  fmt.Sprintf("New order %s (%s)", data.OrderNumber, data.Total),
		TextBody: textBody.String(),
		ReplyTo:  data.CustomerEmail,
		Tags:     map[string]string{"category": "order_owner"},
	})
}

// InlineOrderEventPublisher hands events straight to a notification handler
// on a background goroutine. It is used when no queue is configured.
type InlineOrderEventPublisher struct {
	handler interfaces.NotificationService
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewInlineOrderEventPublisher creates a publisher that calls handler directly.
func NewInlineOrderEventPublisher(handler interfaces.NotificationService) *InlineOrderEventPublisher {
	return &InlineOrderEventPublisher{handler: handler, timeout: 30 * time.Second}
}

// PublishOrderEvent schedules the event and returns immediately.
func (p *InlineOrderEventPublisher) PublishOrderEvent(ctx context.Context, event business.OrderEvent) error {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()
		if err := p.handler.HandleOrderEvent(ctx, event); err != nil {
			logger.Log.Error("Inline order notification failed",
				zap.String("type", event.Type),
				zap.String("order_number", event.OrderNumber),
				zap.Error(err))
		}
	}()
	return nil
}

// Wait blocks until scheduled notifications finish.
func (p *InlineOrderEventPublisher) Wait() {
	p.wg.Wait()
}
