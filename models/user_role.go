package models

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleDonor UserRole = "donor"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"  // заявка очікує модерації
	UserStatusApproved UserStatus = "approved" // підтверджений адміністратором
	UserStatusRejected UserStatus = "rejected" // заявку відхилено
	UserStatusBanned   UserStatus = "banned"   // обліковий запис заблоковано
)

type FeedbackStatus string

const (
	FeedbackStatusNew        FeedbackStatus = "new"
	FeedbackStatusInProgress FeedbackStatus = "in_progress"
	FeedbackStatusResolved   FeedbackStatus = "resolved"
	FeedbackStatusArchived   FeedbackStatus = "archived"
)

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackStatusNew, FeedbackStatusInProgress, FeedbackStatusResolved, FeedbackStatusArchived:
		return true
	}
	return false
}
