package uaa

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/openkcm/uaa-client/pkg/utils/errs"
)

// maxQueryPages bounds the AllPages loop. The pagination contract trusts
// server-reported totals; the cap keeps a server that always claims more
// results than it delivers from spinning the client forever.
const maxQueryPages = 1000

var (
	ErrNotFound       = errors.New("resource not found")
	ErrChangePassword = errors.New("error changing user password")
	ErrChangeSecret   = errors.New("error changing client secret")
)

// AllPages fetches every page matching the query and returns the
// concatenated resources. Pages are fetched sequentially; the next offset is
// computed from the accumulated count, so a page reply that claims more
// results without carrying startIndex and itemsPerPage is an error.
func (c *Client) AllPages(ctx context.Context, rtype ResourceType, query Query) ([]Resource, error) {
	paged := Query{}
	for name, value := range query {
		paged[name] = value
	}

	paged["startIndex"] = 1

	all := []Resource{}

	for range maxQueryPages {
		page, err := c.QueryPage(ctx, rtype, paged)
		if err != nil {
			return nil, err
		}

		if len(page.Resources) == 0 {
			return all, nil
		}

		all = append(all, page.Resources...)

		if page.TotalResults == nil || *page.TotalResults <= len(all) {
			return all, nil
		}

		if page.StartIndex == nil || page.ItemsPerPage == nil {
			return nil, errs.Wrapf(ErrBadResponse,
				"incomplete pagination data while listing "+rtype.String()+" resources")
		}

		paged["startIndex"] = len(all) + 1
	}

	return nil, errs.Wrapf(ErrBadResponse,
		fmt.Sprintf("%s listing did not terminate after %d pages", rtype, maxQueryPages))
}

// IDs looks up resources by their human-readable names. The result may hold
// zero or more entries per name since filters are not guaranteed unique;
// each entry carries only the id and the name attribute.
func (c *Client) IDs(ctx context.Context, rtype ResourceType, names ...string) ([]Resource, error) {
	_, nameAttr, err := Resolve(rtype)
	if err != nil {
		return nil, err
	}

	comparisons := make([]FilterExpression, 0, len(names))
	for _, name := range names {
		comparisons = append(comparisons, FilterComparison{
			Attribute: nameAttr,
			Operator:  FilterOperatorEqual,
			Value:     name,
		})
	}

	var filter FilterExpression = FilterLogicalGroupOr{Expressions: comparisons}
	if len(comparisons) == 1 {
		filter = comparisons[0]
	}

	return c.AllPages(ctx, rtype, Query{
		"attributes": "id," + nameAttr,
		"filter":     filter.ToString(),
	})
}

// ID resolves a single name to a single identifier. Exactly one match with a
// non-null id is required; OAuth client registrations that omit the id field
// fall back to a case-insensitive match on client_id.
func (c *Client) ID(ctx context.Context, rtype ResourceType, name string) (string, error) {
	matches, err := c.IDs(ctx, rtype, name)
	if err != nil {
		return "", err
	}

	if len(matches) == 1 {
		if id := stringValue(matches[0]["id"]); id != "" {
			return id, nil
		}
	}

	if rtype == ResourceTypeClient {
		for _, match := range matches {
			clientID := stringValue(match["client_id"])
			if clientID != "" && strings.EqualFold(clientID, name) {
				if id := stringValue(match["id"]); id != "" {
					return id, nil
				}

				return clientID, nil
			}
		}
	}

	path, _, _ := Resolve(rtype)

	return "", errs.Wrapf(ErrNotFound,
		fmt.Sprintf("%s %q not found in %s%s", rtype, name, c.target, path))
}

// ChangePassword sets a new password for a user. The old password is
// included only when supplied; privileged tokens may omit it.
func (c *Client) ChangePassword(ctx context.Context, userID, newPassword, oldPassword string) (Resource, error) {
	body := Resource{"password": newPassword}
	if oldPassword != "" {
		body["oldPassword"] = oldPassword
	}

	path, _, err := Resolve(ResourceTypeUser)
	if err != nil {
		return nil, err
	}

	reply, err := c.putJSON(ctx, path+"/"+url.PathEscape(userID)+"/password", body, nil)
	if err != nil {
		return nil, errs.Wrap(ErrChangePassword, err)
	}

	return reply, nil
}

// ChangeSecret sets a new secret for an OAuth client registration. The old
// secret is included only when supplied.
func (c *Client) ChangeSecret(ctx context.Context, clientID, newSecret, oldSecret string) (Resource, error) {
	body := Resource{"secret": newSecret}
	if oldSecret != "" {
		body["oldSecret"] = oldSecret
	}

	path, _, err := Resolve(ResourceTypeClient)
	if err != nil {
		return nil, err
	}

	reply, err := c.putJSON(ctx, path+"/"+url.PathEscape(clientID)+"/secret", body, nil)
	if err != nil {
		return nil, errs.Wrap(ErrChangeSecret, err)
	}

	return reply, nil
}
