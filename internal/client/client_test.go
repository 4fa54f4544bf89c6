package client

import (
	"errors"
	"math"
	"testing"

	"fitzone/internal/subscription"
	"fitzone/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return New("Ion Popescu", "069123456", "secret", 35)
}

func TestAddToBalance(t *testing.T) {
	c := newTestClient()

	require.NoError(t, c.AddToBalance(150))
	assert.Equal(t, 150.0, c.Balance())

	assert.ErrorIs(t, c.AddToBalance(0), ErrInvalidAmount)
	assert.ErrorIs(t, c.AddToBalance(-10), ErrInvalidAmount)
	assert.ErrorIs(t, c.AddToBalance(math.NaN()), ErrInvalidAmount)
	assert.ErrorIs(t, c.AddToBalance(math.Inf(1)), ErrInvalidAmount)
	assert.ErrorIs(t, c.AddToBalance(math.Inf(-1)), ErrInvalidAmount)
	assert.Equal(t, 150.0, c.Balance())
	assert.Len(t, c.Transactions(), 1)
}

func TestDecreaseBalance(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		wantErr     error
		wantBalance float64
	}{
		{"partial", 40, nil, 60},
		{"whole balance", 100, nil, 0},
		{"more than balance", 100.01, ErrInsufficientBalance, 100},
		{"zero", 0, ErrInvalidAmount, 100},
		{"negative", -5, ErrInvalidAmount, 100},
		{"not a number", math.NaN(), ErrInvalidAmount, 100},
		{"positive infinity", math.Inf(1), ErrInvalidAmount, 100},
		{"negative infinity", math.Inf(-1), ErrInvalidAmount, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient()
			require.NoError(t, c.AddToBalance(100))

			err := c.DecreaseBalance(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, c.Balance())
			assert.GreaterOrEqual(t, c.Balance(), 0.0)
		})
	}
}

func TestPurchaseSubscription(t *testing.T) {
	c := newTestClient()

	first := subscription.DefaultFitness()
	require.NoError(t, c.PurchaseSubscription(first, "2024-01-15"))
	assert.Same(t, first, c.Subscription())
	assert.Equal(t, subscription.StatePurchased, c.Subscription().State())

	second := subscription.DefaultPool()
	err := c.PurchaseSubscription(second, "15-01-2024")
	assert.ErrorIs(t, err, validation.ErrInvalidDate)
	assert.Same(t, first, c.Subscription())
	assert.Equal(t, subscription.StateUnpurchased, second.State())

	require.NoError(t, c.PurchaseSubscription(second, "2024-02-01"))
	assert.Same(t, second, c.Subscription())
	assert.Equal(t, "2024-02-01", c.Subscription().PurchaseDate())
}

func TestPurchaseSubscription_Nil(t *testing.T) {
	c := newTestClient()
	first := subscription.DefaultPool()
	require.NoError(t, c.PurchaseSubscription(first, "2024-01-15"))

	assert.ErrorIs(t, c.PurchaseSubscription(nil, "2024-02-01"), ErrNoSubscription)
	assert.Same(t, first, c.Subscription())
}

func TestActivateSubscription_NoSubscription(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.AddToBalance(1000))

	err := c.ActivateSubscription("2024-01-16", "2024-02-16")
	assert.ErrorIs(t, err, ErrNoSubscription)
	assert.Equal(t, 1000.0, c.Balance())
}

func TestActivateSubscription_NotPurchased(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.AddToBalance(1000))
	require.NoError(t, c.PurchaseSubscription(subscription.DefaultCombined(), "2024-01-15"))
	require.NoError(t, c.ActivateSubscription("2024-01-16", "2024-02-16"))

	err := c.ActivateSubscription("2024-03-01", "2024-04-01")
	assert.ErrorIs(t, err, ErrNotPurchased)
	assert.Equal(t, 400.0, c.Balance())
}

func TestActivateSubscription_DeductsPrice(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.AddToBalance(1000))
	require.NoError(t, c.PurchaseSubscription(subscription.DefaultCombined(), "2024-01-15"))

	require.NoError(t, c.ActivateSubscription("2024-01-16", "2024-02-16"))
	assert.Equal(t, 400.0, c.Balance())
	assert.True(t, c.Subscription().IsActive())
	assert.Equal(t, "2024-02-16", c.Subscription().ExpirationDate())
}

func TestActivateSubscription_InsufficientBalance(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.AddToBalance(500))
	require.NoError(t, c.PurchaseSubscription(subscription.DefaultCombined(), "2024-01-15"))

	err := c.ActivateSubscription("2024-01-16", "2024-02-16")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	var ibe *InsufficientBalanceError
	require.True(t, errors.As(err, &ibe))
	assert.Equal(t, 600.0, ibe.Required)
	assert.Equal(t, 500.0, ibe.Available)

	assert.Equal(t, 500.0, c.Balance())
	assert.Equal(t, subscription.StatePurchased, c.Subscription().State())
}

func TestActivateSubscription_BadDatesKeepBalance(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.AddToBalance(1000))
	require.NoError(t, c.PurchaseSubscription(subscription.DefaultFitness(), "2024-01-15"))

	err := c.ActivateSubscription("2024-01-16", "16-02-2024")
	assert.ErrorIs(t, err, validation.ErrInvalidDate)
	assert.Equal(t, 1000.0, c.Balance())
	assert.Equal(t, subscription.StatePurchased, c.Subscription().State())
}

func TestPassword(t *testing.T) {
	c := newTestClient()

	assert.True(t, c.VerifyPassword("secret"))
	assert.False(t, c.VerifyPassword("Secret"))

	assert.ErrorIs(t, c.ChangePassword("wrong", "new"), ErrWrongPassword)
	assert.True(t, c.VerifyPassword("secret"))

	require.NoError(t, c.ChangePassword("secret", "new"))
	assert.True(t, c.VerifyPassword("new"))
	assert.False(t, c.VerifyPassword("secret"))
}

func TestClone_DeepCopiesSubscription(t *testing.T) {
	orig := newTestClient()
	require.NoError(t, orig.AddToBalance(1000))
	require.NoError(t, orig.PurchaseSubscription(subscription.DefaultCombined(), "2024-01-15"))
	require.NoError(t, orig.ActivateSubscription("2024-01-16", "2024-02-16"))

	cp := orig.Clone()
	require.NotNil(t, cp.Subscription())
	assert.NotSame(t, orig.Subscription(), cp.Subscription())
	assert.Equal(t, subscription.StateActive, cp.Subscription().State())

	cp.Subscription().Expire()
	assert.Equal(t, subscription.StateExpired, cp.Subscription().State())
	assert.Equal(t, subscription.StateActive, orig.Subscription().State())

	require.NoError(t, cp.AddToBalance(50))
	assert.Equal(t, 400.0, orig.Balance())
	assert.Len(t, orig.Transactions(), 2)
	assert.Len(t, cp.Transactions(), 3)
}

func TestClone_WithoutSubscription(t *testing.T) {
	cp := newTestClient().Clone()
	assert.Nil(t, cp.Subscription())
	assert.Equal(t, "069123456", cp.Phone())
}

func TestTransactions(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.AddToBalance(700))
	require.NoError(t, c.Credit(20, TxBonus))
	require.NoError(t, c.DecreaseBalance(100))
	require.NoError(t, c.PurchaseSubscription(subscription.DefaultCombined(), "2024-01-15"))
	require.NoError(t, c.ActivateSubscription("2024-01-16", "2024-02-16"))

	txs := c.Transactions()
	require.Len(t, txs, 4)

	assert.Equal(t, TxTopUp, txs[0].Type)
	assert.Equal(t, 700.0, txs[0].BalanceAfter)
	assert.Equal(t, TxBonus, txs[1].Type)
	assert.Equal(t, TxWithdrawal, txs[2].Type)
	assert.Equal(t, -100.0, txs[2].Amount)
	assert.Equal(t, TxSubscriptionPayment, txs[3].Type)
	assert.Equal(t, -600.0, txs[3].Amount)
	assert.Equal(t, 20.0, txs[3].BalanceAfter)

	ids := map[string]bool{}
	for _, tx := range txs {
		ids[tx.ID.String()] = true
	}
	assert.Len(t, ids, 4)

	txs[0].Amount = 1
	assert.Equal(t, 700.0, c.Transactions()[0].Amount)
}

func TestSetNameAndAge(t *testing.T) {
	c := newTestClient()

	assert.ErrorIs(t, c.SetName("   "), ErrInvalidName)
	assert.Equal(t, "Ion Popescu", c.Name())
	require.NoError(t, c.SetName("Maria"))
	assert.Equal(t, "Maria", c.Name())

	assert.ErrorIs(t, c.SetAge(0), ErrInvalidAge)
	assert.ErrorIs(t, c.SetAge(120), ErrInvalidAge)
	assert.Equal(t, 35, c.Age())
	require.NoError(t, c.SetAge(119))
	assert.Equal(t, 119, c.Age())
}

func TestComparisons(t *testing.T) {
	a := New("A", "069000001", "x", 20)
	b := New("B", "069000001", "y", 40)
	other := New("C", "069000002", "z", 18)

	assert.True(t, a.SamePhone(b))
	assert.False(t, a.SamePhone(other))
	assert.True(t, a.Younger(b))
	assert.False(t, a.Younger(other))
}

func TestProfile(t *testing.T) {
	c := newTestClient()
	p := c.Profile()
	assert.Nil(t, p.Subscription)
	assert.Equal(t, "Ion Popescu", p.Name)

	require.NoError(t, c.PurchaseSubscription(subscription.DefaultPool(), "2024-01-15"))
	p = c.Profile()
	require.NotNil(t, p.Subscription)
	assert.Equal(t, "Pool", p.Subscription.Description)
	assert.Equal(t, "purchased", p.Subscription.State)
	assert.Equal(t, "2024-01-15", p.Subscription.PurchaseDate)

	assert.Equal(t, "Ion Popescu (069123456) - 35 years, balance: 0.00", c.String())
}
