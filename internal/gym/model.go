package gym

import (
	"errors"
	"fmt"

	"fitzone/internal/subscription"
	"fitzone/internal/validation"
)

var (
	ErrInvalidPhone    = validation.ErrInvalidPhone
	ErrPhoneTaken      = errors.New("phone number already registered")
	ErrRegistryFull    = errors.New("gym is at full capacity")
	ErrInvalidAge      = errors.New("age must be between 14 and 100")
	ErrInvalidName     = errors.New("name is required")
	ErrClientNotFound  = errors.New("client not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrIndexOutOfRange = errors.New("index out of range")
)

const (
	DefaultName      = "FitZone"
	DefaultCapacity  = 100
	DefaultBonusBase = 100.0
)

type RegisterRequest struct {
	Name     string `validate:"required"`
	Phone    string `validate:"phone"`
	Password string
	Age      int `validate:"gte=14,lte=100"`
}

// Options configures a registry; zero fields fall back to the defaults.
type Options struct {
	Name      string
	Capacity  int
	BonusBase float64
}

// Recommendation is what the engine suggests for one client. The plan itself is not kept.
type Recommendation struct {
	Kind        subscription.Kind
	Description string
	Duration    int
	Price       float64
	Benefits    []string
}

type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range, %d clients registered", e.Index, e.Count)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
