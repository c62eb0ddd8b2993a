package domain

// MatchReason explains why an identity resolution did not produce a user.
type MatchReason string

const (
	// MatchReasonMissingJoinKey means the external profile carried no join
	// key. Terminal: retrying with the same profile cannot succeed.
	MatchReasonMissingJoinKey MatchReason = "MISSING_JOIN_KEY"

	// MatchReasonNoRecord means no internal record matches the join key.
	// A legitimate "user not recognized" outcome, not a system fault.
	MatchReasonNoRecord MatchReason = "NO_RECORD"

	// MatchReasonInternalError means the lookup itself failed, distinct
	// from NoRecord so monitoring can separate "denied" from "broken".
	MatchReasonInternalError MatchReason = "INTERNAL_ERROR"
)

// MatchResult is the outcome of resolving an external profile against the
// internal roster. Either Matched is true and User/MatchedFields are set,
// or Matched is false and Reason/Detail explain why.
type MatchResult struct {
	Matched       bool
	User          AuthenticatedUser
	MatchedFields []string

	Reason MatchReason
	Detail string
}

// Matched builds a successful result.
func Matched(user AuthenticatedUser, fields ...string) MatchResult {
	return MatchResult{Matched: true, User: user, MatchedFields: fields}
}

// NotMatched builds a failed result with the given reason.
func NotMatched(reason MatchReason, detail string) MatchResult {
	return MatchResult{Reason: reason, Detail: detail}
}
