package domain

import (
	"errors"
)

var (
	MessageSuccessCreateTransaction = "transaction created successfully"
	MessageSuccessWebhook           = "webhook processed"

	MessageFailedCreateTransaction = "failed to create transaction"
	MessageFailedWebhook           = "failed to process webhook"

	ErrUserAlreadyPremium   = errors.New("user already has an active subscription")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrCreateSnapFailed     = errors.New("failed to create payment transaction")
	ErrWebhookOrderMismatch = errors.New("webhook order id unknown")
)

type (
	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	// MidtransNotificationRequest carries the subset of the payment
	// notification payload this service acts on.
	MidtransNotificationRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		FraudStatus       string `json:"fraud_status"`
	}
)
