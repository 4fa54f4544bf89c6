package gym

import "fitzone/internal/client"

type Repository interface {
	Append(c *client.Client) error
	FindByPhone(phone string) (*client.Client, error)
	At(index int) (*client.Client, error)
	All() []*client.Client
	Count() int
}
