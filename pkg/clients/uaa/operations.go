package uaa

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/openkcm/uaa-client/pkg/utils/errs"
)

var (
	ErrBadResponse       = errors.New("invalid response from UAA")
	ErrMissingResourceID = errors.New("resource payload has no id")

	ErrCreateResource = errors.New("error creating UAA resource")
	ErrGetResource    = errors.New("error getting UAA resource")
	ErrUpdateResource = errors.New("error updating UAA resource")
	ErrDeleteResource = errors.New("error deleting UAA resource")
	ErrQueryResources = errors.New("error querying UAA resources")
)

// Query holds query-string parameters for list requests. Recognized keys are
// attributes, filter, startIndex, and count; nil-valued entries are dropped.
type Query map[string]any

// Add creates a resource of the given type. The reply includes the
// server-assigned id; for OAuth client registrations that only report a
// client_id, the id is synthesized from it.
func (c *Client) Add(ctx context.Context, rtype ResourceType, payload Resource) (Resource, error) {
	path, _, err := Resolve(rtype)
	if err != nil {
		return nil, err
	}

	reply, err := c.postJSON(ctx, path, normalizePayload(payload))
	if err != nil {
		return nil, errs.Wrap(ErrCreateResource, err)
	}

	reply = maskClientID(rtype, reply)

	if reply.ID() == "" {
		return nil, errs.Wrapf(ErrBadResponse, "no id returned by create request to "+c.target+path)
	}

	return reply, nil
}

// Get reads a resource by id.
func (c *Client) Get(ctx context.Context, rtype ResourceType, id string) (Resource, error) {
	path, _, err := Resolve(rtype)
	if err != nil {
		return nil, err
	}

	reply, err := c.getJSON(ctx, path+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, errs.Wrap(ErrGetResource, err)
	}

	return maskClientID(rtype, reply), nil
}

// Put replaces a resource. The payload must carry its own identifier (id,
// or client_id for OAuth client registrations). A meta.version value is sent
// as an If-Match precondition. Client-registration endpoints that reply with
// no content are papered over with a follow-up Get.
func (c *Client) Put(ctx context.Context, rtype ResourceType, payload Resource) (Resource, error) {
	path, _, err := Resolve(rtype)
	if err != nil {
		return nil, err
	}

	normalized := normalizePayload(payload)

	id := normalized.ID()
	if rtype != ResourceTypeClient {
		id = normalized.StringAttr("id")
	}

	if id == "" {
		return nil, errs.Wrapf(ErrMissingResourceID, "cannot update "+rtype.String())
	}

	var extraHeaders http.Header
	if version := metaVersion(normalized); version != "" {
		extraHeaders = http.Header{HeaderIfMatch: []string{version}}
	}

	reply, err := c.putJSON(ctx, path+"/"+url.PathEscape(id), normalized, extraHeaders)
	if err != nil {
		return nil, errs.Wrap(ErrUpdateResource, err)
	}

	if len(reply) == 0 && rtype == ResourceTypeClient {
		return c.Get(ctx, rtype, id)
	}

	return maskClientID(rtype, reply), nil
}

// Delete removes a resource by id.
func (c *Client) Delete(ctx context.Context, rtype ResourceType, id string) error {
	path, _, err := Resolve(rtype)
	if err != nil {
		return err
	}

	err = c.deleteJSON(ctx, path+"/"+url.PathEscape(id))
	if err != nil {
		return errs.Wrap(ErrDeleteResource, err)
	}

	return nil
}

// QueryPage issues a single list request. The attributes parameter is
// case-normalized entry-wise; other recognized parameters pass through.
// Client-registration listings arrive as a map keyed by id rather than the
// standard paged-list shape, and are reshaped into one.
func (c *Client) QueryPage(ctx context.Context, rtype ResourceType, query Query) (*Page, error) {
	path, _, err := Resolve(rtype)
	if err != nil {
		return nil, err
	}

	values := url.Values{}

	for name, value := range query {
		if value == nil {
			continue
		}

		name = canonicalAttribute(name)
		if name == "attributes" {
			values.Set(name, NormalizeAttributeList(fmt.Sprintf("%v", value)))
		} else {
			values.Set(name, fmt.Sprintf("%v", value))
		}
	}

	reply, err := c.getJSON(ctx, path, values)
	if err != nil {
		return nil, errs.Wrap(ErrQueryResources, err)
	}

	return pageFromReply(rtype, c.target+path, reply)
}

func pageFromReply(rtype ResourceType, location string, reply Resource) (*Page, error) {
	rawResources, hasResources := reply["resources"]

	list, isList := rawResources.([]any)
	if !isList {
		// The client-listing endpoint replies with a map keyed by id.
		if rtype != ResourceTypeClient || hasResources {
			return nil, errs.Wrapf(ErrBadResponse, "no resource list returned from "+location)
		}

		return &Page{Resources: clientMapResources(reply)}, nil
	}

	resources := make([]Resource, 0, len(list))

	for _, item := range list {
		attrs, ok := item.(map[string]any)
		if !ok {
			return nil, errs.Wrapf(ErrBadResponse, "malformed resource list entry from "+location)
		}

		resources = append(resources, Resource(attrs))
	}

	return &Page{
		Resources:    resources,
		TotalResults: intValue(reply["totalresults"]),
		StartIndex:   intValue(reply["startindex"]),
		ItemsPerPage: intValue(reply["itemsperpage"]),
	}, nil
}

func clientMapResources(reply Resource) []Resource {
	keys := make([]string, 0, len(reply))
	for k := range reply {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	resources := make([]Resource, 0, len(reply))

	for _, k := range keys {
		if attrs, ok := reply[k].(map[string]any); ok {
			resources = append(resources, Resource(attrs))
		}
	}

	return resources
}

func maskClientID(rtype ResourceType, reply Resource) Resource {
	if rtype != ResourceTypeClient || reply == nil {
		return reply
	}

	if stringValue(reply["id"]) == "" {
		if clientID := stringValue(reply["client_id"]); clientID != "" {
			reply["id"] = clientID
		}
	}

	return reply
}

func normalizePayload(payload Resource) Resource {
	normalized, _ := NormalizeAttributes(payload).(Resource)
	return normalized
}

func metaVersion(payload Resource) string {
	meta, ok := payload["meta"].(map[string]any)
	if !ok {
		return ""
	}

	version, ok := meta["version"]
	if !ok || version == nil {
		return ""
	}

	return fmt.Sprintf("%v", version)
}
