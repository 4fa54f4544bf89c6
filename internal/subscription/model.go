package subscription

import (
	"errors"
	"fmt"

	"fitzone/internal/validation"
)

type Kind string
type State int

const (
	KindFitness  Kind = "fitness"
	KindPool     Kind = "pool"
	KindCombined Kind = "combined"
)

const (
	StateUnpurchased State = iota
	StatePurchased
	StateActive
	StateExpired
)

const MaxDuration = 24

var (
	ErrInvalidDuration  = errors.New("duration must be between 1 and 24 months")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrInvalidExtension = errors.New("extension must add at least one month and stay within 24 months")
	ErrUnknownKind      = errors.New("unknown subscription kind")
)

func (s State) String() string {
	switch s {
	case StateUnpurchased:
		return "unpurchased"
	case StatePurchased:
		return "purchased"
	case StateActive:
		return "active"
	case StateExpired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindFitness, KindPool, KindCombined:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Subscription is one membership plan instance with its lifecycle.
type Subscription interface {
	Kind() Kind
	Duration() int
	Price() float64
	State() State
	PurchaseDate() string
	ActivationDate() string
	ExpirationDate() string

	Purchase(date string) error
	Activate(activation, expiration string) error
	Expire()
	IsActive() bool

	DiscountedPrice(percent float64) float64
	Describe() string
	Benefits() []string

	// Clone returns an Unpurchased instance with the same plan attributes.
	Clone() Subscription
	// Copy returns an independent instance carrying lifecycle state and dates too.
	Copy() Subscription
	// Extend returns a copy lengthened by months, priced pro rata.
	Extend(months int) (Subscription, error)

	String() string
}

// New builds a variant of the given kind with its default extras.
func New(kind Kind, duration int, price float64) (Subscription, error) {
	switch kind {
	case KindFitness:
		return NewFitness(duration, price)
	case KindPool:
		return NewPool(duration, price)
	case KindCombined:
		return NewCombined(duration, price)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Same reports whether a and b are the same kind of plan over the same number of months.
func Same(a, b Subscription) bool {
	return a.Kind() == b.Kind() && a.Duration() == b.Duration()
}

func Pricier(a, b Subscription) bool {
	return a.Price() > b.Price()
}

type base struct {
	kind     Kind
	duration int
	price    float64
	state    State

	purchasedOn string
	activatedOn string
	expiresOn   string
}

func newBase(kind Kind, duration int, price float64) (base, error) {
	if duration < 1 || duration > MaxDuration {
		return base{}, fmt.Errorf("%w: %d", ErrInvalidDuration, duration)
	}
	if price <= 0 {
		return base{}, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	return base{kind: kind, duration: duration, price: price, state: StateUnpurchased}, nil
}

func (b *base) Kind() Kind { return b.kind }
func (b *base) Duration() int { return b.duration }
func (b *base) Price() float64 { return b.price }
func (b *base) State() State { return b.state }
func (b *base) PurchaseDate() string { return b.purchasedOn }
func (b *base) ActivationDate() string { return b.activatedOn }
func (b *base) ExpirationDate() string { return b.expiresOn }

func (b *base) Purchase(date string) error {
	if !validation.ValidDate(date) {
		return fmt.Errorf("purchase date %q: %w", date, validation.ErrInvalidDate)
	}
	b.state = StatePurchased
	b.purchasedOn = date
	return nil
}

func (b *base) Activate(activation, expiration string) error {
	if !validation.ValidDate(activation) {
		return fmt.Errorf("activation date %q: %w", activation, validation.ErrInvalidDate)
	}
	if !validation.ValidDate(expiration) {
		return fmt.Errorf("expiration date %q: %w", expiration, validation.ErrInvalidDate)
	}
	b.state = StateActive
	b.activatedOn = activation
	b.expiresOn = expiration
	return nil
}

// Expire moves to Expired from any state, Unpurchased included.
func (b *base) Expire() {
	b.state = StateExpired
}

func (b *base) IsActive() bool {
	return b.state == StateActive
}

func (b *base) DiscountedPrice(percent float64) float64 {
	return b.price * (1 - percent/100)
}

// plan strips lifecycle state and dates.
func (b base) plan() base {
	return base{kind: b.kind, duration: b.duration, price: b.price, state: StateUnpurchased}
}

func (b base) extended(months int) (base, error) {
	if months < 1 || b.duration+months > MaxDuration {
		return base{}, fmt.Errorf("%w: %d + %d", ErrInvalidExtension, b.duration, months)
	}
	b.price += float64(months) * (b.price / float64(b.duration))
	b.duration += months
	return b, nil
}

func format(s Subscription) string {
	return fmt.Sprintf("%s (%d months, %.2f) - state: %s", s.Describe(), s.Duration(), s.Price(), s.State())
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
