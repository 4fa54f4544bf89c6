package subscription

import "fmt"

// Fitness covers the gym floor.
type Fitness struct {
	base
	SaunaAccess     bool
	TrainerSessions int
}

func NewFitness(duration int, price float64) (*Fitness, error) {
	b, err := newBase(KindFitness, duration, price)
	if err != nil {
		return nil, err
	}
	return &Fitness{base: b, TrainerSessions: 2}, nil
}

func DefaultFitness() *Fitness {
	f, _ := NewFitness(1, 300)
	return f
}

func (f *Fitness) Describe() string { return "Fitness" }

func (f *Fitness) Benefits() []string {
	return []string{
		"Unlimited gym floor access",
		fmt.Sprintf("Personal trainer sessions: %d", f.TrainerSessions),
		"Sauna access: " + yesNo(f.SaunaAccess),
	}
}

func (f *Fitness) Clone() Subscription {
	c := *f
	c.base = f.base.plan()
	return &c
}

func (f *Fitness) Copy() Subscription {
	c := *f
	return &c
}

func (f *Fitness) Extend(months int) (Subscription, error) {
	b, err := f.base.extended(months)
	if err != nil {
		return nil, err
	}
	c := *f
	c.base = b
	return &c, nil
}

func (f *Fitness) String() string { return format(f) }

// Pool covers the swimming pool.
type Pool struct {
	base
	Lessons     int
	SaunaAccess bool
}

func NewPool(duration int, price float64) (*Pool, error) {
	b, err := newBase(KindPool, duration, price)
	if err != nil {
		return nil, err
	}
	return &Pool{base: b, Lessons: 4, SaunaAccess: true}, nil
}

func DefaultPool() *Pool {
	p, _ := NewPool(1, 250)
	return p
}

func (p *Pool) Describe() string { return "Pool" }

func (p *Pool) Benefits() []string {
	return []string{
		"Swimming pool access",
		fmt.Sprintf("Swimming lessons with an instructor: %d", p.Lessons),
		"Sauna access: " + yesNo(p.SaunaAccess),
	}
}

func (p *Pool) Clone() Subscription {
	c := *p
	c.base = p.base.plan()
	return &c
}

func (p *Pool) Copy() Subscription {
	c := *p
	return &c
}

func (p *Pool) Extend(months int) (Subscription, error) {
	b, err := p.base.extended(months)
	if err != nil {
		return nil, err
	}
	c := *p
	c.base = b
	return &c, nil
}

func (p *Pool) String() string { return format(p) }

// Combined covers both the gym floor and the pool.
type Combined struct {
	base
	SaunaAccess     bool
	TrainerSessions int
	PoolLessons     int
}

func NewCombined(duration int, price float64) (*Combined, error) {
	b, err := newBase(KindCombined, duration, price)
	if err != nil {
		return nil, err
	}
	return &Combined{base: b, SaunaAccess: true, TrainerSessions: 4, PoolLessons: 4}, nil
}

func DefaultCombined() *Combined {
	c, _ := NewCombined(1, 600)
	return c
}

func (c *Combined) Describe() string { return "Combined (Fitness + Pool)" }

func (c *Combined) Benefits() []string {
	return []string{
		"Unlimited gym floor and swimming pool access",
		fmt.Sprintf("Personal trainer sessions: %d", c.TrainerSessions),
		fmt.Sprintf("Swimming lessons with an instructor: %d", c.PoolLessons),
		"Sauna access: " + yesNo(c.SaunaAccess),
	}
}

func (c *Combined) Clone() Subscription {
	n := *c
	n.base = c.base.plan()
	return &n
}

func (c *Combined) Copy() Subscription {
	n := *c
	return &n
}

func (c *Combined) Extend(months int) (Subscription, error) {
	b, err := c.base.extended(months)
	if err != nil {
		return nil, err
	}
	n := *c
	n.base = b
	return &n, nil
}

func (c *Combined) String() string { return format(c) }
