package traffic

import "fmt"

// InvalidInputError reports input that cannot be normalized or estimated:
// a raw record with no identity at all, or negative estimate assumptions.
// It is never raised for missing metrics; those default instead.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// NoDataError means the provider knows nothing about the domain (empty
// result set). This is distinct from a successful profile with zero
// visits: the former is "site unknown", the latter "site known but
// inactive", and callers show different messages for each.
type NoDataError struct {
	Domain string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no traffic data found for %s", e.Domain)
}
