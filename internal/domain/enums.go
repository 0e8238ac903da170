package domain

// QuestionStatus is the lifecycle state of a question.
type QuestionStatus string

const (
	QuestionStatusOpen     QuestionStatus = "OPEN"
	QuestionStatusAnswered QuestionStatus = "ANSWERED"
	QuestionStatusClosed   QuestionStatus = "CLOSED"
)

func (s QuestionStatus) String() string { return string(s) }

func (s QuestionStatus) IsValid() bool {
	switch s {
	case QuestionStatusOpen, QuestionStatusAnswered, QuestionStatusClosed:
		return true
	}
	return false
}

// VoteDirection is the sign of a vote.
type VoteDirection string

const (
	VoteUp   VoteDirection = "UP"
	VoteDown VoteDirection = "DOWN"
)

func (d VoteDirection) String() string { return string(d) }

func (d VoteDirection) IsValid() bool {
	switch d {
	case VoteUp, VoteDown:
		return true
	}
	return false
}

// TargetKind identifies what a vote or a report points at.
type TargetKind string

const (
	TargetQuestion TargetKind = "QUESTION"
	TargetAnswer   TargetKind = "ANSWER"
)

func (k TargetKind) String() string { return string(k) }

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetQuestion, TargetAnswer:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeQuestion EntityType = "QUESTION"
	EntityTypeAnswer   EntityType = "ANSWER"
	EntityTypeVote     EntityType = "VOTE"
	EntityTypeReport   EntityType = "REPORT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeQuestion, EntityTypeAnswer, EntityTypeVote, EntityTypeReport:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate   AuditAction = "CREATE"
	AuditActionUpdate   AuditAction = "UPDATE"
	AuditActionDelete   AuditAction = "DELETE"
	AuditActionAccept   AuditAction = "ACCEPT"
	AuditActionUnaccept AuditAction = "UNACCEPT"
	AuditActionClose    AuditAction = "CLOSE"
	AuditActionReopen   AuditAction = "REOPEN"
	AuditActionBlind    AuditAction = "BLIND"
	AuditActionUnblind  AuditAction = "UNBLIND"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionAccept, AuditActionUnaccept, AuditActionClose, AuditActionReopen,
		AuditActionBlind, AuditActionUnblind:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
