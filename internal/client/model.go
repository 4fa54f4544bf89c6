package client

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoSubscription      = errors.New("no subscription")
	ErrNotPurchased        = errors.New("subscription is not in purchased state")
	ErrWrongPassword       = errors.New("old password is incorrect")
	ErrInvalidName         = errors.New("name cannot be empty")
	ErrInvalidAge          = errors.New("age must be between 1 and 119")
)

const (
	minEditAge = 0
	maxEditAge = 120
)

// InsufficientBalanceError carries the amounts for display.
type InsufficientBalanceError struct {
	Required  float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %.2f, available %.2f", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

type TxType string

const (
	TxTopUp               TxType = "topup"
	TxWithdrawal          TxType = "withdrawal"
	TxSubscriptionPayment TxType = "subscription_payment"
	TxBonus               TxType = "bonus"
)

// Transaction is one balance movement; Amount is negative for debits.
type Transaction struct {
	ID           uuid.UUID
	Type         TxType
	Amount       float64
	BalanceAfter float64
}

// Profile is a read-only snapshot of a client.
type Profile struct {
	Name    string
	Phone   string
	Age     int
	Balance float64

	Subscription *SubscriptionView
}

type SubscriptionView struct {
	Description    string
	Duration       int
	Price          float64
	State          string
	PurchaseDate   string
	ActivationDate string
	ExpirationDate string
}
