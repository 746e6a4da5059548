package entry

import (
	"context"

	"github.com/charmbracelet/log"
)

// Account is the read-only projection of a user account the workflow needs.
// At most one account per user is expected to carry IsDefault.
type Account struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

// AccountSource fetches all accounts belonging to a user.
type AccountSource interface {
	AccountsForUser(ctx context.Context, userID string) ([]Account, error)
}

// Resolver loads a user's accounts and seeds a controller with the default
// account. It runs once per form mount.
type Resolver struct {
	source AccountSource
	logger *log.Logger
}

func NewResolver(source AccountSource, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{source: source, logger: logger}
}

// Resolve fetches the accounts for userID and writes the default account's id
// into the controller, overwriting any value already present (including an
// edit-mode prefill). An empty userID or a fetch failure leaves the
// controller untouched; failures are logged and returned so the caller can
// degrade to an unselected account without blocking the form.
func (r *Resolver) Resolve(ctx context.Context, userID string, c *Controller) ([]Account, error) {
	if userID == "" {
		return nil, nil
	}

	accounts, err := r.source.AccountsForUser(ctx, userID)
	if err != nil {
		r.logger.Error("loading accounts", "user_id", userID, "error", err)
		return nil, err
	}

	// The form may already be torn down; drop the result instead of writing
	// into a dead controller.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if def, ok := DefaultAccount(accounts); ok {
		if err := c.SetField(FieldAccount, def.ID); err != nil {
			return accounts, err
		}
	}

	return accounts, nil
}

// DefaultAccount returns the first account flagged as default. Absence of a
// default is not an error; the form simply starts with no preselection.
func DefaultAccount(accounts []Account) (Account, bool) {
	for _, a := range accounts {
		if a.IsDefault {
			return a, true
		}
	}
	return Account{}, false
}
