package uaa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openkcm/uaa-client/pkg/clients/uaa"
)

func TestFilterExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    uaa.FilterExpression
		expected string
	}{
		{
			name:     "Null expression",
			input:    uaa.NullFilterExpression{},
			expected: "",
		},
		{
			name: "Equal operator",
			input: uaa.FilterComparison{
				Attribute: "userName",
				Operator:  uaa.FilterOperatorEqual,
				Value:     "jane",
			},
			expected: `userName eq "jane"`,
		},
		{
			name: "Starts-with operator",
			input: uaa.FilterComparison{
				Attribute: "displayName",
				Operator:  uaa.FilterOperatorStartsWith,
				Value:     "uaa.",
			},
			expected: `displayName sw "uaa."`,
		},
		{
			name: "Present operator takes no value",
			input: uaa.FilterComparison{
				Attribute: "externalId",
				Operator:  uaa.FilterOperatorPresent,
			},
			expected: `externalId pr`,
		},
		{
			name: "And group",
			input: uaa.FilterLogicalGroupAnd{
				Expressions: []uaa.FilterExpression{
					uaa.FilterComparison{
						Attribute: "userName",
						Operator:  uaa.FilterOperatorEqual,
						Value:     "jane",
					},
					uaa.FilterComparison{
						Attribute: "active",
						Operator:  uaa.FilterOperatorEqual,
						Value:     "true",
					},
				},
			},
			expected: `(userName eq "jane" and active eq "true")`,
		},
		{
			name: "Or group",
			input: uaa.FilterLogicalGroupOr{
				Expressions: []uaa.FilterExpression{
					uaa.FilterComparison{
						Attribute: "userName",
						Operator:  uaa.FilterOperatorEqual,
						Value:     "jane",
					},
					uaa.FilterComparison{
						Attribute: "userName",
						Operator:  uaa.FilterOperatorEqual,
						Value:     "joe",
					},
				},
			},
			expected: `(userName eq "jane" or userName eq "joe")`,
		},
		{
			name: "Not group",
			input: uaa.FilterLogicalGroupNot{
				Expression: uaa.FilterComparison{
					Attribute: "origin",
					Operator:  uaa.FilterOperatorEqual,
					Value:     "uaa",
				},
			},
			expected: `not origin eq "uaa"`,
		},
		{
			name: "Nested combination",
			input: uaa.FilterLogicalGroupAnd{
				Expressions: []uaa.FilterExpression{
					uaa.FilterComparison{
						Attribute: "active",
						Operator:  uaa.FilterOperatorEqual,
						Value:     "true",
					},
					uaa.FilterLogicalGroupOr{
						Expressions: []uaa.FilterExpression{
							uaa.FilterComparison{
								Attribute: "userName",
								Operator:  uaa.FilterOperatorEqual,
								Value:     "jane",
							},
							uaa.FilterComparison{
								Attribute: "userName",
								Operator:  uaa.FilterOperatorEqual,
								Value:     "joe",
							},
						},
					},
				},
			},
			expected: `(active eq "true" and (userName eq "jane" or userName eq "joe"))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.ToString())
		})
	}
}
