package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fitzone/internal/client"
	"fitzone/internal/gym"
	"fitzone/internal/metrics"
	"fitzone/internal/subscription"
	"fitzone/internal/validation"
)

// Console is the interactive menu layer over a gym registry.
type Console struct {
	svc      gym.Service
	in       *bufio.Scanner
	out      io.Writer
	currency string
}

func New(svc gym.Service, in io.Reader, out io.Writer, currency string) *Console {
	return &Console{
		svc:      svc,
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
	}
}

// Run serves the main menu until the user exits or input ends.
func (c *Console) Run() error {
	for {
		c.println("\n========== " + strings.ToUpper(c.svc.Name()) + " ==========")
		c.println("1. Register new client")
		c.println("2. Log in")
		c.println("3. List all clients")
		c.println("4. Special offer (admin)")
		c.println("5. Subscription recommendation")
		c.println("6. Statistics")
		c.println("7. Exit")

		opt, err := c.promptInt("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch opt {
		case 1:
			err = c.register()
		case 2:
			err = c.login()
		case 3:
			c.listClients()
		case 4:
			err = c.specialOffer()
		case 5:
			err = c.recommend()
		case 6:
			err = c.statistics()
		case 7:
			c.println("Goodbye!")
			return nil
		default:
			c.println("Invalid option!")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (c *Console) register() error {
	name, err := c.prompt("Name: ")
	if err != nil {
		return err
	}
	phone, err := c.prompt("Phone: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Password: ")
	if err != nil {
		return err
	}
	age, err := c.promptInt("Age: ")
	if err != nil {
		return err
	}

	_, err = c.svc.Register(gym.RegisterRequest{Name: name, Phone: phone, Password: password, Age: age})
	if err != nil {
		c.fail(err)
		return nil
	}
	c.println("Client registered successfully!")
	return nil
}

func (c *Console) login() error {
	phone, err := c.prompt("Phone: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Password: ")
	if err != nil {
		return err
	}

	cl, err := c.svc.Authenticate(phone, password)
	if err != nil {
		c.fail(err)
		return nil
	}
	c.printf("Welcome, %s!\n", cl.Name())
	return c.clientMenu(cl)
}

func (c *Console) listClients() {
	profiles := c.svc.Clients()
	if len(profiles) == 0 {
		c.println("No registered clients.")
		return
	}
	c.println("\n=== CLIENTS ===")
	for i, p := range profiles {
		c.printf("%d. %s (%s) - %d years, balance: %.2f %s\n", i+1, p.Name, p.Phone, p.Age, p.Balance, c.currency)
	}
}

func (c *Console) specialOffer() error {
	phone, err := c.prompt("Client phone: ")
	if err != nil {
		return err
	}
	percent, err := c.promptFloat("Bonus percent: ")
	if err != nil {
		return err
	}

	bonus, err := c.svc.ApplyBonus(phone, percent)
	if err != nil {
		c.fail(err)
		return nil
	}
	cl, _ := c.svc.Find(phone)
	c.printf("Bonus applied: %.2f %s. New balance: %.2f %s\n", bonus, c.currency, cl.Balance(), c.currency)
	return nil
}

func (c *Console) recommend() error {
	phone, err := c.prompt("Client phone: ")
	if err != nil {
		return err
	}

	rec, err := c.svc.RecommendFor(phone)
	if err != nil {
		c.fail(err)
		return nil
	}
	c.printf("Recommended: %s (%d months, %.2f %s)\n", rec.Description, rec.Duration, rec.Price, c.currency)
	for _, b := range rec.Benefits {
		c.println("  - " + b)
	}
	return nil
}

func (c *Console) statistics() error {
	samples, err := metrics.Snapshot()
	if err != nil {
		c.fail(err)
		return nil
	}
	c.println("\n=== STATISTICS ===")
	for _, s := range samples {
		if s.Labels != "" {
			c.printf("%s{%s} %g\n", s.Name, s.Labels, s.Value)
			continue
		}
		c.printf("%s %g\n", s.Name, s.Value)
	}
	return nil
}

func (c *Console) clientMenu(cl *client.Client) error {
	for {
		c.println("\n========== CLIENT MENU ==========")
		c.println("1. View profile")
		c.println("2. Add balance")
		c.println("3. Purchase subscription")
		c.println("4. Activate subscription")
		c.println("5. Change password")
		c.println("6. Edit personal data")
		c.println("7. Transactions")
		c.println("8. Tools")
		c.println("9. Log out")

		opt, err := c.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch opt {
		case 1:
			c.profile(cl)
		case 2:
			err = c.addBalance(cl)
		case 3:
			err = c.purchase(cl)
		case 4:
			err = c.activate(cl)
		case 5:
			err = c.changePassword(cl)
		case 6:
			err = c.editPersonal(cl)
		case 7:
			c.transactions(cl)
		case 8:
			err = c.toolsMenu(cl)
		case 9:
			c.println("Logging out...")
			return nil
		default:
			c.println("Invalid option!")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) profile(cl *client.Client) {
	p := cl.Profile()
	c.println("\n========== PROFILE ==========")
	c.printf("Name: %s\nPhone: %s\nAge: %d\nBalance: %.2f %s\n", p.Name, p.Phone, p.Age, p.Balance, c.currency)
	if p.Subscription == nil {
		c.println("Subscription: none")
		return
	}
	s := p.Subscription
	c.printf("Subscription: %s, %d months, %.2f %s, state: %s\n", s.Description, s.Duration, s.Price, c.currency, s.State)
	if s.PurchaseDate != "" {
		c.println("   Purchased: " + s.PurchaseDate)
	}
	if s.ActivationDate != "" {
		c.println("   Activated: " + s.ActivationDate)
	}
	if s.ExpirationDate != "" {
		c.println("   Expires: " + s.ExpirationDate)
	}
}

func (c *Console) addBalance(cl *client.Client) error {
	amount, err := c.promptFloat("Amount: ")
	if err != nil {
		return err
	}
	if err := cl.AddToBalance(amount); err != nil {
		c.fail(err)
		return nil
	}
	metrics.RecordTopUp()
	c.printf("Balance added! Current balance: %.2f %s\n", cl.Balance(), c.currency)
	return nil
}

func (c *Console) purchase(cl *client.Client) error {
	offers := c.svc.Offers()
	c.println("\n========== AVAILABLE SUBSCRIPTIONS ==========")
	for i, o := range offers {
		c.printf("%d. %s - %d months - %.2f %s\n", i+1, o.Description, o.Duration, o.Price, c.currency)
	}

	choice, err := c.promptInt(fmt.Sprintf("Choose a subscription (1-%d): ", len(offers)))
	if err != nil {
		return err
	}
	if choice < 1 || choice > len(offers) {
		c.println("Invalid option!")
		return nil
	}

	months, err := c.promptInt(fmt.Sprintf("Months (1-%d): ", subscription.MaxDuration))
	if err != nil {
		return err
	}
	date, err := c.prompt("Purchase date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	sub, err := c.svc.OfferFor(offers[choice-1].Kind, months)
	if err != nil {
		c.fail(err)
		return nil
	}
	if err := cl.PurchaseSubscription(sub, date); err != nil {
		c.fail(err)
		return nil
	}
	metrics.RecordPurchase(string(sub.Kind()))
	c.printf("Subscription purchased successfully! %d months, %.2f %s\n", sub.Duration(), sub.Price(), c.currency)
	return nil
}

func (c *Console) activate(cl *client.Client) error {
	activation, err := c.prompt("Activation date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	expiration, err := c.prompt("Expiration date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	if err := cl.ActivateSubscription(activation, expiration); err != nil {
		c.fail(err)
		return nil
	}
	sub := cl.Subscription()
	metrics.RecordActivation(string(sub.Kind()))
	c.printf("Subscription activated! Charged: %.2f %s. Remaining balance: %.2f %s\n",
		sub.Price(), c.currency, cl.Balance(), c.currency)
	return nil
}

func (c *Console) changePassword(cl *client.Client) error {
	oldPassword, err := c.prompt("Old password: ")
	if err != nil {
		return err
	}
	newPassword, err := c.prompt("New password: ")
	if err != nil {
		return err
	}
	if err := cl.ChangePassword(oldPassword, newPassword); err != nil {
		c.fail(err)
		return nil
	}
	c.println("Password changed successfully!")
	return nil
}

func (c *Console) editPersonal(cl *client.Client) error {
	name, err := c.prompt("New name: ")
	if err != nil {
		return err
	}
	age, err := c.promptInt("New age: ")
	if err != nil {
		return err
	}
	if err := cl.SetName(name); err != nil {
		c.fail(err)
	}
	if err := cl.SetAge(age); err != nil {
		c.fail(err)
	}
	return nil
}

func (c *Console) transactions(cl *client.Client) {
	txs := cl.Transactions()
	if len(txs) == 0 {
		c.println("No transactions yet.")
		return
	}
	for _, tx := range txs {
		c.printf("%s  %-20s %+10.2f  balance %.2f\n", tx.ID.String()[:8], tx.Type, tx.Amount, tx.BalanceAfter)
	}
}

func (c *Console) toolsMenu(cl *client.Client) error {
	for {
		c.println("\n========== TOOLS ==========")
		c.println("1. Withdraw from balance")
		c.println("2. Preview subscription extension")
		c.println("3. Compare subscription with the Fitness plan")
		c.println("4. Client by index")
		c.println("5. Find client by phone")
		c.println("6. Client count")
		c.println("7. Back")

		opt, err := c.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch opt {
		case 1:
			err = c.withdraw(cl)
		case 2:
			err = c.extendPreview(cl)
		case 3:
			c.compare(cl)
		case 4:
			err = c.byIndex()
		case 5:
			err = c.byPhone()
		case 6:
			c.printf("Total clients: %d\n", c.svc.Count())
			if c.svc.Full() {
				c.println("The gym is full!")
			} else {
				c.println("There are places available.")
			}
		case 7:
			return nil
		default:
			c.println("Invalid option!")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) withdraw(cl *client.Client) error {
	amount, err := c.promptFloat("Amount: ")
	if err != nil {
		return err
	}
	if err := cl.DecreaseBalance(amount); err != nil {
		c.fail(err)
		return nil
	}
	c.printf("New balance: %.2f %s\n", cl.Balance(), c.currency)
	return nil
}

func (c *Console) extendPreview(cl *client.Client) error {
	sub := cl.Subscription()
	if sub == nil {
		c.fail(client.ErrNoSubscription)
		return nil
	}
	months, err := c.promptInt("Months to add: ")
	if err != nil {
		return err
	}
	ext, err := sub.Extend(months)
	if err != nil {
		c.fail(err)
		return nil
	}
	c.println("Extended subscription: " + ext.String())
	return nil
}

func (c *Console) compare(cl *client.Client) {
	sub := cl.Subscription()
	if sub == nil {
		c.fail(client.ErrNoSubscription)
		return
	}
	if subscription.Same(sub, subscription.DefaultFitness()) {
		c.println("The subscriptions are identical!")
		return
	}
	c.println("The subscriptions are different!")
}

func (c *Console) byIndex() error {
	idx, err := c.promptInt(fmt.Sprintf("Client index (0-%d): ", c.svc.Count()-1))
	if err != nil {
		return err
	}
	cl, err := c.svc.At(idx)
	if err != nil {
		c.fail(err)
		return nil
	}
	c.println("Client found: " + cl.String())
	return nil
}

func (c *Console) byPhone() error {
	phone, err := c.prompt("Phone: ")
	if err != nil {
		return err
	}
	cl, ok := c.svc.Find(phone)
	if !ok {
		c.fail(gym.ErrClientNotFound)
		return nil
	}
	c.println("Client found: " + cl.String())
	return nil
}

func (c *Console) fail(err error) {
	c.println(message(err, c.currency))
}

// message turns a core error into the line shown to the user.
func message(err error, currency string) string {
	var ibe *client.InsufficientBalanceError
	var ie *gym.IndexError

	switch {
	case errors.As(err, &ibe):
		return fmt.Sprintf("Insufficient balance! (%.2f / %.2f %s)", ibe.Available, ibe.Required, currency)
	case errors.As(err, &ie):
		return fmt.Sprintf("Error: invalid index %d (%d clients registered)", ie.Index, ie.Count)
	case errors.Is(err, validation.ErrInvalidDate):
		return "Invalid date format! (YYYY-MM-DD)"
	case errors.Is(err, gym.ErrInvalidPhone):
		return "Invalid phone number!"
	case errors.Is(err, gym.ErrPhoneTaken):
		return "Phone number already in use!"
	case errors.Is(err, gym.ErrRegistryFull):
		return "Maximum capacity reached!"
	case errors.Is(err, gym.ErrInvalidAge), errors.Is(err, client.ErrInvalidAge):
		return "Invalid age!"
	case errors.Is(err, gym.ErrInvalidName), errors.Is(err, client.ErrInvalidName):
		return "Invalid name!"
	case errors.Is(err, gym.ErrClientNotFound):
		return "Client not found!"
	case errors.Is(err, gym.ErrWrongPassword):
		return "Incorrect password!"
	case errors.Is(err, client.ErrWrongPassword):
		return "Old password is incorrect!"
	case errors.Is(err, client.ErrInvalidAmount):
		return "Invalid amount!"
	case errors.Is(err, client.ErrNoSubscription):
		return "You have no subscription!"
	case errors.Is(err, client.ErrNotPurchased):
		return "You have no purchased subscription to activate!"
	case errors.Is(err, subscription.ErrInvalidDuration):
		return "Invalid duration! A subscription lasts 1 to 24 months."
	case errors.Is(err, subscription.ErrInvalidExtension):
		return "Invalid extension! A subscription lasts at most 24 months."
	default:
		return "Error: " + err.Error()
	}
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptInt returns -1 for input that is not an integer so menus fall through to "invalid".
func (c *Console) promptInt(label string) (int, error) {
	s, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1, nil
	}
	return n, nil
}

func (c *Console) promptFloat(label string) (float64, error) {
	s, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, nil
	}
	return f, nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
