package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslink/wpsgate/internal/gateway/domain"
	"github.com/campuslink/wpsgate/internal/gateway/store"
	"github.com/campuslink/wpsgate/pkg/wpsapi"
)

// joinKeyField is the platform-side name of the join key, used in match
// metadata and failure details.
const joinKeyField = "third_union_id"

// IdentityService resolves external platform profiles into internal users.
// Resolution is single-pass and idempotent for a given profile: exact
// equality on the join key, no fuzzy or partial matching, ever.
type IdentityService struct {
	Store store.Store
}

// Resolve maps profile onto exactly one internal contact, or reports a
// typed non-match. A missing join key is terminal; callers must not retry
// with the same profile.
func (s *IdentityService) Resolve(ctx context.Context, profile wpsapi.UserProfile) domain.MatchResult {
	if profile.ExternalUnionID == "" {
		return domain.NotMatched(
			domain.MatchReasonMissingJoinKey,
			joinKeyField+" missing, cannot resolve identity",
		)
	}

	contact, err := s.Store.Contacts().GetContactByUnionID(ctx, profile.ExternalUnionID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.NotMatched(
			domain.MatchReasonNoRecord,
			fmt.Sprintf("no internal record for %s", profile.ExternalUnionID),
		)
	}
	if err != nil {
		return domain.NotMatched(domain.MatchReasonInternalError, err.Error())
	}

	return domain.Matched(domain.AuthenticatedUser{
		ID:             contact.ID,
		DisplayName:    contact.DisplayName,
		UserType:       userTypeForRole(contact.Role),
		ExternalNumber: contact.ExternalNumber,
		OrgUnitName:    contact.OrgUnitName,
		MajorName:      contact.MajorName,
		ClassName:      contact.ClassName,
	}, joinKeyField)
}

// userTypeForRole maps the roster role attribute onto a user type. Only
// "teacher" is recognised; every other value means student.
func userTypeForRole(role string) domain.UserType {
	if role == "teacher" {
		return domain.UserTypeTeacher
	}
	return domain.UserTypeStudent
}
