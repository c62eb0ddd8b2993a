package domain

import "time"

// UserType classifies an authenticated user's role in the application.
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeTeacher UserType = "teacher"
)

// Contact is an internal person record provisioned from the campus roster.
// ExternalUnionID is the join key the platform shares with us (a student or
// staff number) and is unique across all contacts.
type Contact struct {
	ID              string
	DisplayName     string
	Role            string // "teacher" or anything else, which means student
	ExternalNumber  string
	ExternalUnionID string
	OrgUnitName     string
	MajorName       string
	ClassName       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AuthenticatedUser is the role-tagged identity produced by a successful
// resolution. It is created fresh on every login and never cached; each
// login re-resolves from the roster.
type AuthenticatedUser struct {
	ID             string   `json:"id"`
	DisplayName    string   `json:"display_name"`
	UserType       UserType `json:"user_type"`
	ExternalNumber string   `json:"external_number"`
	OrgUnitName    string   `json:"org_unit_name,omitempty"`
	MajorName      string   `json:"major_name,omitempty"`
	ClassName      string   `json:"class_name,omitempty"`
}
