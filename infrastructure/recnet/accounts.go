package recnet

import (
	"circuits-lab/domain"
	"circuits-lab/errors"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ResolveAccount looks an account up by numeric id, or by username otherwise.
func (c *Client) ResolveAccount(ctx context.Context, nameOrID string) (domain.Account, error) {
	var target string
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		target = fmt.Sprintf("%s/account/%d", c.endpoints.Accounts, id)
	} else {
		target = fmt.Sprintf("%s/account?%s", c.endpoints.Accounts, url.Values{"username": {nameOrID}}.Encode())
	}

	var account domain.Account
	resp, err := c.getJSON(ctx, target, &account)
	if err != nil {
		return domain.Account{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Account{}, fmt.Errorf("%w: %q", errors.ErrUserNotFound, nameOrID)
	}
	if err := c.validate.Struct(account); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %q", errors.ErrUserNotFound, nameOrID)
	}
	return account, nil
}
