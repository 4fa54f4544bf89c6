package gym

import (
	"fmt"
	"strings"

	"fitzone/internal/client"
	"fitzone/internal/logger"
	"fitzone/internal/metrics"
	"fitzone/internal/recommend"
	"fitzone/internal/subscription"
	"fitzone/internal/validation"
)

type Service interface {
	Name() string
	Register(req RegisterRequest) (*client.Client, error)
	Authenticate(phone, password string) (*client.Client, error)
	Add(c *client.Client) error
	Clients() []client.Profile
	ApplyBonus(phone string, percent float64) (float64, error)
	RecommendFor(phone string) (Recommendation, error)
	Offers() []recommend.Offer
	Offer(kind subscription.Kind) (subscription.Subscription, error)
	OfferFor(kind subscription.Kind, months int) (subscription.Subscription, error)
	At(index int) (*client.Client, error)
	Find(phone string) (*client.Client, bool)
	Full() bool
	Count() int
}

type service struct {
	repo   Repository
	engine *recommend.Engine

	name      string
	capacity  int
	bonusBase float64
}

func NewService(repo Repository, engine *recommend.Engine, opts Options) Service {
	s := &service{
		repo:      repo,
		engine:    engine,
		name:      opts.Name,
		capacity:  opts.Capacity,
		bonusBase: opts.BonusBase,
	}
	if s.name == "" {
		s.name = DefaultName
	}
	if s.capacity <= 0 {
		s.capacity = DefaultCapacity
	}
	if s.bonusBase <= 0 {
		s.bonusBase = DefaultBonusBase
	}
	return s
}

func (s *service) Name() string {
	return s.name
}

// Register checks, in order: phone format, phone uniqueness, capacity, age and name.
func (s *service) Register(req RegisterRequest) (*client.Client, error) {
	req.Name = strings.TrimSpace(req.Name)

	invalid := map[string]validation.FieldError{}
	for _, fe := range validation.ValidateStruct(req) {
		invalid[fe.Field] = fe
	}

	if _, ok := invalid["Phone"]; ok {
		return nil, s.rejectRegistration("invalid_phone", fmt.Errorf("%w: %q", ErrInvalidPhone, req.Phone))
	}
	if _, found := s.Find(req.Phone); found {
		return nil, s.rejectRegistration("phone_taken", ErrPhoneTaken)
	}
	if s.Full() {
		return nil, s.rejectRegistration("full", ErrRegistryFull)
	}
	if fe, ok := invalid["Age"]; ok {
		return nil, s.rejectRegistration("invalid_age", fmt.Errorf("%w: %s", ErrInvalidAge, fe.Message))
	}
	if _, ok := invalid["Name"]; ok {
		return nil, s.rejectRegistration("invalid_name", ErrInvalidName)
	}

	c := client.New(req.Name, req.Phone, req.Password, req.Age)
	if err := s.repo.Append(c); err != nil {
		return nil, s.rejectRegistration("phone_taken", err)
	}

	metrics.RecordRegistration("success")
	metrics.SetClients(s.repo.Count())
	logger.Info("client registered", "phone", c.Phone(), "age", c.Age())
	return c, nil
}

func (s *service) rejectRegistration(result string, err error) error {
	metrics.RecordRegistration(result)
	logger.Debug("registration rejected", "reason", result, "error", err)
	return err
}

func (s *service) Authenticate(phone, password string) (*client.Client, error) {
	c, err := s.repo.FindByPhone(phone)
	if err != nil {
		metrics.RecordLogin("not_found")
		return nil, ErrClientNotFound
	}
	if !c.VerifyPassword(password) {
		metrics.RecordLogin("wrong_password")
		logger.Info("login failed", "phone", phone)
		return nil, ErrWrongPassword
	}
	metrics.RecordLogin("success")
	return c, nil
}

// Add appends an existing client, keeping the capacity and phone uniqueness rules.
func (s *service) Add(c *client.Client) error {
	if s.Full() {
		return ErrRegistryFull
	}
	if err := s.repo.Append(c); err != nil {
		return err
	}
	metrics.SetClients(s.repo.Count())
	return nil
}

func (s *service) Clients() []client.Profile {
	all := s.repo.All()
	out := make([]client.Profile, 0, len(all))
	for _, c := range all {
		out = append(out, c.Profile())
	}
	return out
}

// ApplyBonus credits bonusBase*percent/100 to the client; the client's own balance plays no part.
func (s *service) ApplyBonus(phone string, percent float64) (float64, error) {
	c, err := s.repo.FindByPhone(phone)
	if err != nil {
		return 0, ErrClientNotFound
	}

	bonus := s.bonusBase * (percent / 100)
	if err := c.Credit(bonus, client.TxBonus); err != nil {
		return 0, err
	}

	metrics.RecordBonus()
	logger.Info("bonus applied", "phone", phone, "amount", bonus)
	return bonus, nil
}

func (s *service) RecommendFor(phone string) (Recommendation, error) {
	c, err := s.repo.FindByPhone(phone)
	if err != nil {
		return Recommendation{}, ErrClientNotFound
	}

	sub := s.engine.Recommend(c.Age())
	metrics.RecordRecommendation(string(sub.Kind()))
	return Recommendation{
		Kind:        sub.Kind(),
		Description: sub.Describe(),
		Duration:    sub.Duration(),
		Price:       sub.Price(),
		Benefits:    sub.Benefits(),
	}, nil
}

func (s *service) Offers() []recommend.Offer {
	return s.engine.Available()
}

func (s *service) Offer(kind subscription.Kind) (subscription.Subscription, error) {
	return s.engine.Offer(kind)
}

func (s *service) OfferFor(kind subscription.Kind, months int) (subscription.Subscription, error) {
	return s.engine.OfferFor(kind, months)
}

func (s *service) At(index int) (*client.Client, error) {
	return s.repo.At(index)
}

func (s *service) Find(phone string) (*client.Client, bool) {
	c, err := s.repo.FindByPhone(phone)
	if err != nil {
		return nil, false
	}
	return c, true
}

func (s *service) Full() bool {
	return s.repo.Count() >= s.capacity
}

func (s *service) Count() int {
	return s.repo.Count()
}
