package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campuslink/wpsgate/internal/gateway/domain"
	"github.com/campuslink/wpsgate/internal/gateway/store"
	"github.com/campuslink/wpsgate/pkg/wpsapi"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory store.Store for resolver tests.
type fakeStore struct {
	contacts *fakeContacts
}

func (s *fakeStore) Contacts() store.Contacts     { return s.contacts }
func (s *fakeStore) ApplyMigrations() error       { return nil }
func (s *fakeStore) Close() error                 { return nil }
func (s *fakeStore) Ping(_ context.Context) error { return nil }

type fakeContacts struct {
	records map[string]domain.Contact
	err     error
	lookups int
}

func (c *fakeContacts) GetContactByUnionID(_ context.Context, unionID string) (domain.Contact, error) {
	c.lookups++
	if c.err != nil {
		return domain.Contact{}, c.err
	}
	contact, ok := c.records[unionID]
	if !ok {
		return domain.Contact{}, store.ErrNotFound
	}
	return contact, nil
}

func (c *fakeContacts) CreateContact(_ context.Context, contact domain.Contact) error {
	if c.records == nil {
		c.records = make(map[string]domain.Contact)
	}
	c.records[contact.ExternalUnionID] = contact
	return nil
}

func (c *fakeContacts) DeleteContact(_ context.Context, _ string) error { return nil }

func (c *fakeContacts) IsEmpty(_ context.Context) (bool, error) {
	return len(c.records) == 0, nil
}

func newIdentityService(contacts *fakeContacts) *IdentityService {
	return &IdentityService{Store: &fakeStore{contacts: contacts}}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing join key denies without touching the store", func(t *testing.T) {
		contacts := &fakeContacts{}
		svc := newIdentityService(contacts)

		result := svc.Resolve(ctx, wpsapi.UserProfile{Nickname: "Ghost", OpenID: "OID9"})

		require.False(t, result.Matched)
		require.Equal(t, domain.MatchReasonMissingJoinKey, result.Reason)
		require.Contains(t, result.Detail, "third_union_id missing")
		require.Zero(t, contacts.lookups, "lookup collaborator must not be called")
	})

	t.Run("teacher record resolves to teacher user", func(t *testing.T) {
		svc := newIdentityService(&fakeContacts{records: map[string]domain.Contact{
			"T001": {
				ID:              "01HTEACH",
				DisplayName:     "Dr. Wu",
				Role:            "teacher",
				ExternalNumber:  "T001",
				ExternalUnionID: "T001",
				OrgUnitName:     "School of Science",
			},
		}})

		result := svc.Resolve(ctx, wpsapi.UserProfile{ExternalUnionID: "T001"})

		require.True(t, result.Matched)
		require.Equal(t, domain.UserTypeTeacher, result.User.UserType)
		require.Equal(t, "Dr. Wu", result.User.DisplayName)
		require.Equal(t, "T001", result.User.ExternalNumber)
		require.Equal(t, "School of Science", result.User.OrgUnitName)
		require.Equal(t, []string{"third_union_id"}, result.MatchedFields)
	})

	t.Run("any non-teacher role resolves to student", func(t *testing.T) {
		for _, role := range []string{"student", "undergraduate", "", "TEACHER"} {
			svc := newIdentityService(&fakeContacts{records: map[string]domain.Contact{
				"S1": {ID: "01HSTUD", DisplayName: "Sam", Role: role, ExternalUnionID: "S1"},
			}})

			result := svc.Resolve(ctx, wpsapi.UserProfile{ExternalUnionID: "S1"})
			require.True(t, result.Matched)
			require.Equal(t, domain.UserTypeStudent, result.User.UserType, "role %q", role)
		}
	})

	t.Run("no record denies with NO_RECORD", func(t *testing.T) {
		svc := newIdentityService(&fakeContacts{})

		result := svc.Resolve(ctx, wpsapi.UserProfile{ExternalUnionID: "S404"})

		require.False(t, result.Matched)
		require.Equal(t, domain.MatchReasonNoRecord, result.Reason)
		require.Contains(t, result.Detail, "S404")
	})

	t.Run("lookup failure is INTERNAL_ERROR, not NO_RECORD", func(t *testing.T) {
		svc := newIdentityService(&fakeContacts{err: errors.New("database is locked")})

		result := svc.Resolve(ctx, wpsapi.UserProfile{ExternalUnionID: "S1"})

		require.False(t, result.Matched)
		require.Equal(t, domain.MatchReasonInternalError, result.Reason)
		require.Contains(t, result.Detail, "database is locked")
	})

	t.Run("resolution is idempotent for a given profile", func(t *testing.T) {
		svc := newIdentityService(&fakeContacts{records: map[string]domain.Contact{
			"S12345": {
				ID:              "01HALICE",
				DisplayName:     "Alice Zhang",
				Role:            "student",
				ExternalNumber:  "S12345",
				ExternalUnionID: "S12345",
				MajorName:       "Physics",
				ClassName:       "2023-1",
			},
		}})
		profile := wpsapi.UserProfile{Nickname: "Alice", ExternalUnionID: "S12345"}

		first := svc.Resolve(ctx, profile)
		second := svc.Resolve(ctx, profile)
		require.Equal(t, first, second)
	})
}
