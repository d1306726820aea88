package uaa

import "strings"

// attributeCase maps lower-cased attribute names to the exact mixed-case
// form the server expects. The server is case-sensitive on attribute names;
// callers are not required to be.
var attributeCase = map[string]string{
	"username":          "userName",
	"familyname":        "familyName",
	"givenname":         "givenName",
	"middlename":        "middleName",
	"honorificprefix":   "honorificPrefix",
	"honorificsuffix":   "honorificSuffix",
	"displayname":       "displayName",
	"nickname":          "nickName",
	"profileurl":        "profileUrl",
	"streetaddress":     "streetAddress",
	"postalcode":        "postalCode",
	"usertype":          "userType",
	"preferredlanguage": "preferredLanguage",
	"x509certificates":  "x509Certificates",
	"lastmodified":      "lastModified",
	"externalid":        "externalId",
	"phonenumbers":      "phoneNumbers",
	"startindex":        "startIndex",
}

func canonicalAttribute(name string) string {
	lower := strings.ToLower(name)
	if canonical, ok := attributeCase[lower]; ok {
		return canonical
	}

	return lower
}

// NormalizeAttributes rewrites every mapping key at every nesting depth via
// the attribute case table. Unmatched keys are lower-cased, never dropped.
// Sequences are traversed element-wise; scalars pass through untouched.
// Idempotent.
func NormalizeAttributes(value any) any {
	switch v := value.(type) {
	case Resource:
		return Resource(normalizeMap(v))
	case map[string]any:
		return normalizeMap(v)
	case []any:
		normalized := make([]any, len(v))
		for i, item := range v {
			normalized[i] = NormalizeAttributes(item)
		}

		return normalized
	default:
		return value
	}
}

func normalizeMap(m map[string]any) map[string]any {
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		normalized[canonicalAttribute(k)] = NormalizeAttributes(v)
	}

	return normalized
}

// NormalizeAttributeList parses a comma or space separated attribute list,
// case-normalizes each entry, and re-joins them comma-separated.
func NormalizeAttributeList(list string) string {
	names := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' '
	})

	for i, name := range names {
		names[i] = canonicalAttribute(name)
	}

	return strings.Join(names, ",")
}
