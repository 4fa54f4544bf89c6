package recommend

import (
	"fmt"

	"fitzone/internal/subscription"
)

const (
	poolAgeLimit    = 16
	fitnessAgeLimit = 30
)

// Offer is a read-only view of one template plan.
type Offer struct {
	Kind        subscription.Kind
	Description string
	Duration    int
	Price       float64
	Benefits    []string
}

// Engine owns the three template plans and hands out clones of them.
type Engine struct {
	templates []subscription.Subscription
}

func NewEngine() *Engine {
	return &Engine{
		templates: []subscription.Subscription{
			subscription.DefaultFitness(),
			subscription.DefaultPool(),
			subscription.DefaultCombined(),
		},
	}
}

// Recommend picks Pool under 16, Fitness from 16 to 29 and Combined from 30.
func (e *Engine) Recommend(age int) subscription.Subscription {
	kind := subscription.KindCombined
	switch {
	case age < poolAgeLimit:
		kind = subscription.KindPool
	case age < fitnessAgeLimit:
		kind = subscription.KindFitness
	}
	return e.template(kind).Clone()
}

func (e *Engine) Available() []Offer {
	offers := make([]Offer, 0, len(e.templates))
	for _, t := range e.templates {
		offers = append(offers, Offer{
			Kind:        t.Kind(),
			Description: t.Describe(),
			Duration:    t.Duration(),
			Price:       t.Price(),
			Benefits:    t.Benefits(),
		})
	}
	return offers
}

// Offer returns a purchasable clone of the named template.
func (e *Engine) Offer(kind subscription.Kind) (subscription.Subscription, error) {
	t := e.template(kind)
	if t == nil {
		return nil, fmt.Errorf("%w: %q", subscription.ErrUnknownKind, kind)
	}
	return t.Clone(), nil
}

// OfferFor returns a purchasable plan of the named kind spanning months,
// priced pro rata on the template's monthly rate.
func (e *Engine) OfferFor(kind subscription.Kind, months int) (subscription.Subscription, error) {
	sub, err := e.Offer(kind)
	if err != nil {
		return nil, err
	}
	if months < 1 || months > subscription.MaxDuration {
		return nil, fmt.Errorf("%w: %d", subscription.ErrInvalidDuration, months)
	}
	if months == sub.Duration() {
		return sub, nil
	}
	return sub.Extend(months - sub.Duration())
}

func (e *Engine) template(kind subscription.Kind) subscription.Subscription {
	for _, t := range e.templates {
		if t.Kind() == kind {
			return t
		}
	}
	return nil
}
