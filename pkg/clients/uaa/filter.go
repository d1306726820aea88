package uaa

import (
	"fmt"
	"strings"
)

type FilterOperator string

const (
	FilterOperatorEqual          FilterOperator = "eq"
	FilterOperatorContains       FilterOperator = "co"
	FilterOperatorStartsWith     FilterOperator = "sw"
	FilterOperatorPresent        FilterOperator = "pr"
	FilterOperatorGreaterThan    FilterOperator = "gt"
	FilterOperatorGreaterOrEqual FilterOperator = "ge"
	FilterOperatorLessThan       FilterOperator = "lt"
	FilterOperatorLessOrEqual    FilterOperator = "le"
)

// FilterExpression is a SCIM filter expression: a comparison or a logical
// combination of other expressions.
type FilterExpression interface {
	ToString() string
}

// NullFilterExpression is a placeholder for an empty/nil filter expression.
type NullFilterExpression struct{}

func (f NullFilterExpression) ToString() string {
	return ""
}

// FilterComparison compares a single attribute against a value. The present
// operator takes no value.
type FilterComparison struct {
	Attribute string
	Operator  FilterOperator
	Value     string
}

func (f FilterComparison) ToString() string {
	if f.Operator == FilterOperatorPresent {
		return fmt.Sprintf("%s %s", f.Attribute, f.Operator)
	}

	return fmt.Sprintf("%s %s \"%s\"", f.Attribute, f.Operator, f.Value)
}

// FilterLogicalGroupAnd joins filter expressions with a logical AND.
type FilterLogicalGroupAnd struct {
	Expressions []FilterExpression
}

func (f FilterLogicalGroupAnd) ToString() string {
	return joinExpressions(f.Expressions, " and ")
}

// FilterLogicalGroupOr joins filter expressions with a logical OR.
type FilterLogicalGroupOr struct {
	Expressions []FilterExpression
}

func (f FilterLogicalGroupOr) ToString() string {
	return joinExpressions(f.Expressions, " or ")
}

// FilterLogicalGroupNot negates a filter expression.
type FilterLogicalGroupNot struct {
	Expression FilterExpression
}

func (f FilterLogicalGroupNot) ToString() string {
	return "not " + f.Expression.ToString()
}

func joinExpressions(expressions []FilterExpression, separator string) string {
	exprStrings := make([]string, len(expressions))
	for i, expr := range expressions {
		exprStrings[i] = expr.ToString()
	}

	return fmt.Sprintf("(%s)", strings.Join(exprStrings, separator))
}
