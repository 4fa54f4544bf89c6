package client

import (
	"fmt"
	"math"
	"strings"

	"fitzone/internal/subscription"
	"fitzone/internal/validation"

	"github.com/google/uuid"
)

// Client is a registered gym member. It exclusively owns at most one subscription.
type Client struct {
	name     string
	phone    string
	password string
	age      int
	balance  float64

	sub    subscription.Subscription
	ledger []Transaction
}

// New does not validate; registration rules live in the gym registry.
func New(name, phone, password string, age int) *Client {
	return &Client{name: name, phone: phone, password: password, age: age}
}

func (c *Client) Name() string { return c.name }
func (c *Client) Phone() string { return c.phone }
func (c *Client) Age() int { return c.age }
func (c *Client) Balance() float64 { return c.balance }

// Subscription returns the owned subscription, or nil.
func (c *Client) Subscription() subscription.Subscription {
	return c.sub
}

func (c *Client) Transactions() []Transaction {
	out := make([]Transaction, len(c.ledger))
	copy(out, c.ledger)
	return out
}

func (c *Client) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	c.name = name
	return nil
}

func (c *Client) SetAge(age int) error {
	if age <= minEditAge || age >= maxEditAge {
		return fmt.Errorf("%w: %d", ErrInvalidAge, age)
	}
	c.age = age
	return nil
}

func (c *Client) AddToBalance(amount float64) error {
	return c.credit(amount, TxTopUp)
}

// Credit adds a non-top-up amount such as a bonus.
func (c *Client) Credit(amount float64, txType TxType) error {
	return c.credit(amount, txType)
}

func (c *Client) credit(amount float64, txType TxType) error {
	if !validAmount(amount) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	c.balance += amount
	c.record(txType, amount)
	return nil
}

// DecreaseBalance succeeds only for 0 < amount <= balance.
func (c *Client) DecreaseBalance(amount float64) error {
	return c.debit(amount, TxWithdrawal)
}

func (c *Client) debit(amount float64, txType TxType) error {
	if !validAmount(amount) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	if amount > c.balance {
		return &InsufficientBalanceError{Required: amount, Available: c.balance}
	}
	c.balance -= amount
	c.record(txType, -amount)
	return nil
}

// validAmount rejects zero, negatives, NaN and infinities.
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}

func (c *Client) record(txType TxType, amount float64) {
	c.ledger = append(c.ledger, Transaction{
		ID:           uuid.New(),
		Type:         txType,
		Amount:       amount,
		BalanceAfter: c.balance,
	})
}

// PurchaseSubscription discards the current subscription and purchases sub on date.
// A malformed date leaves the client untouched.
func (c *Client) PurchaseSubscription(sub subscription.Subscription, date string) error {
	if sub == nil {
		return ErrNoSubscription
	}
	if !validation.ValidDate(date) {
		return fmt.Errorf("purchase date %q: %w", date, validation.ErrInvalidDate)
	}
	if err := sub.Purchase(date); err != nil {
		return err
	}
	c.sub = sub
	return nil
}

// ActivateSubscription charges the subscription price and activates it.
func (c *Client) ActivateSubscription(activation, expiration string) error {
	if c.sub == nil {
		return ErrNoSubscription
	}
	if c.sub.State() != subscription.StatePurchased {
		return fmt.Errorf("%w: %s", ErrNotPurchased, c.sub.State())
	}
	if !validation.ValidDate(activation) || !validation.ValidDate(expiration) {
		return fmt.Errorf("activation %q, expiration %q: %w", activation, expiration, validation.ErrInvalidDate)
	}

	price := c.sub.Price()
	if c.balance < price {
		return &InsufficientBalanceError{Required: price, Available: c.balance}
	}
	if err := c.debit(price, TxSubscriptionPayment); err != nil {
		return err
	}
	return c.sub.Activate(activation, expiration)
}

func (c *Client) VerifyPassword(candidate string) bool {
	return c.password == candidate
}

func (c *Client) ChangePassword(oldPassword, newPassword string) error {
	if !c.VerifyPassword(oldPassword) {
		return ErrWrongPassword
	}
	c.password = newPassword
	return nil
}

// Clone deep-copies the client; the copy never shares its subscription with c.
func (c *Client) Clone() *Client {
	cp := *c
	if c.sub != nil {
		cp.sub = c.sub.Copy()
	}
	cp.ledger = c.Transactions()
	return &cp
}

// SamePhone reports whether both clients carry the same identifier.
func (c *Client) SamePhone(other *Client) bool {
	return c.phone == other.phone
}

func (c *Client) Younger(other *Client) bool {
	return c.age < other.age
}

func (c *Client) String() string {
	return fmt.Sprintf("%s (%s) - %d years, balance: %.2f", c.name, c.phone, c.age, c.balance)
}

func (c *Client) Profile() Profile {
	p := Profile{
		Name:    c.name,
		Phone:   c.phone,
		Age:     c.age,
		Balance: c.balance,
	}
	if c.sub != nil {
		p.Subscription = &SubscriptionView{
			Description:    c.sub.Describe(),
			Duration:       c.sub.Duration(),
			Price:          c.sub.Price(),
			State:          c.sub.State().String(),
			PurchaseDate:   c.sub.PurchaseDate(),
			ActivationDate: c.sub.ActivationDate(),
			ExpirationDate: c.sub.ExpirationDate(),
		}
	}
	return p
}
