package resolvers

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"main/utils"
)

const (
	takeDefault = 30
	takeMin     = 1
	takeMax     = 50
)

// idPattern matches identifiers made up entirely of decimal digits.
// No sign, no whitespace, no fractional part.
var idPattern = regexp.MustCompile(`^[0-9]+$`)

// parseID converts a caller-supplied identifier into a non-negative
// integer. Anything that is not a pure digit string is rejected, including
// values that overflow uint64.
func parseID(raw string) (uint, bool) {
	if !idPattern.MatchString(raw) {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// takeArg returns the validated page size. An omitted take defaults to 30;
// values outside [1, 50] fail with an error naming the value and the bounds.
func takeArg(ctx context.Context, args map[string]interface{}) (int, error) {
	take := takeDefault
	if v, ok := args["take"].(int); ok {
		take = v
	}

	if take < takeMin || take > takeMax {
		return 0, errors.New(utils.T(ctx, "error.take_out_of_range", utils.TemplateData{
			"Take": take,
			"Min":  takeMin,
			"Max":  takeMax,
		}))
	}

	return take, nil
}

// skipArg returns the requested offset. It is deliberately unvalidated;
// negative values are normalized at the store boundary.
func skipArg(args map[string]interface{}) int {
	skip, _ := args["skip"].(int)
	return skip
}

// linkNotFoundError is the single user-facing error for a comment aimed at
// a link that cannot be resolved. A malformed identifier and a valid but
// absent one produce the same message on purpose.
func linkNotFoundError(ctx context.Context, rawID string) error {
	return errors.New(utils.T(ctx, "error.link_not_found", utils.TemplateData{
		"LinkID": rawID,
	}))
}
