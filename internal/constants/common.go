package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	LocalEnvironment = "local"

	// Service name attached to structured logs
	ServiceName = "reachfood-api"

	// Order statuses
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	// Payment methods
	PaymentCOD            = "cod"
	PaymentCardOnDelivery = "card_on_delivery"
	PaymentBankTransfer   = "bank_transfer"

	// Subscription plans
	PlanWeekly   = "weekly"
	PlanBiweekly = "biweekly"
	PlanMonthly  = "monthly"

	// Subscription statuses and actions
	SubscriptionActive    = "active"
	SubscriptionPaused    = "paused"
	SubscriptionCancelled = "cancelled"
	PauseAction           = "pause"
	ResumeAction          = "resume"
	CancelAction          = "cancel"

	// Currencies
	USDCurrency = "USD"
	SARCurrency = "SAR"
	AEDCurrency = "AED"

	// AllCurrencies marks currency-independent daily metrics
	AllCurrencies = "ALL"

	// Languages
	EnglishLanguage = "en"
	ArabicLanguage  = "ar"

	// Order event types
	OrderCreatedEvent       = "order.created"
	OrderStatusChangedEvent = "order.status_changed"
)

// SupportedCurrencies lists the currencies products can be priced in.
var SupportedCurrencies = []string{USDCurrency, SARCurrency, AEDCurrency}

// PaymentMethods lists accepted payment methods.
var PaymentMethods = []string{PaymentCOD, PaymentCardOnDelivery, PaymentBankTransfer}

// SubscriptionPlans lists the delivery cadences offered.
var SubscriptionPlans = []string{PlanWeekly, PlanBiweekly, PlanMonthly}
