package uaa

import (
	"errors"
	"strings"

	"github.com/openkcm/uaa-client/pkg/utils/errs"
	"github.com/openkcm/uaa-client/pkg/utils/ptr"
)

var ErrUnknownResourceType = errors.New("unknown resource type")

// ResourceType identifies one of the four logical resource kinds the
// client manages. The set is closed; an out-of-range value never reaches
// the network layer.
type ResourceType int

const (
	ResourceTypeUser ResourceType = iota
	ResourceTypeGroup
	ResourceTypeClient
	ResourceTypeUserID
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeUser:
		return "user"
	case ResourceTypeGroup:
		return "group"
	case ResourceTypeClient:
		return "client"
	case ResourceTypeUserID:
		return "user_id"
	default:
		return "unknown"
	}
}

type resourceTypeInfo struct {
	path          string
	nameAttribute string
}

var resourceTypes = map[ResourceType]resourceTypeInfo{
	ResourceTypeUser:   {path: "/Users", nameAttribute: "userName"},
	ResourceTypeGroup:  {path: "/Groups", nameAttribute: "displayName"},
	ResourceTypeClient: {path: "/oauth/clients", nameAttribute: "client_id"},
	ResourceTypeUserID: {path: "/ids/Users", nameAttribute: "userName"},
}

// Resolve maps a resource type to its endpoint path and the attribute used
// for lookup by human-readable name.
func Resolve(rtype ResourceType) (string, string, error) {
	info, ok := resourceTypes[rtype]
	if !ok {
		return "", "", errs.Wrapf(ErrUnknownResourceType, rtype.String())
	}

	return info.path, info.nameAttribute, nil
}

// Resource is a single SCIM object (user, group, or OAuth client
// registration) as exchanged over the wire. Attribute values are arbitrary
// JSON-compatible data.
type Resource map[string]any

// ID returns the resource identifier, falling back to client_id for OAuth
// client registrations that omit the standard id field.
func (r Resource) ID() string {
	if id := stringValue(r["id"]); id != "" {
		return id
	}

	return stringValue(r["client_id"])
}

// StringAttr returns the named attribute as a string. The lookup tolerates
// attribute-name casing differences: the exact name is tried first, then the
// canonical form, then a case-insensitive scan.
func (r Resource) StringAttr(name string) string {
	if v, ok := r[name]; ok {
		return stringValue(v)
	}

	if v, ok := r[canonicalAttribute(name)]; ok {
		return stringValue(v)
	}

	for k, v := range r {
		if strings.EqualFold(k, name) {
			return stringValue(v)
		}
	}

	return ""
}

// Page is one bounded reply to a Query: a slice of the full result set plus
// whatever pagination metadata the server included. Absent metadata fields
// are nil.
type Page struct {
	Resources    []Resource
	TotalResults *int
	StartIndex   *int
	ItemsPerPage *int
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func intValue(v any) *int {
	switch n := v.(type) {
	case float64:
		return ptr.PointTo(int(n))
	case int:
		return ptr.PointTo(n)
	default:
		return nil
	}
}
