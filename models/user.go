package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	UserRoleVendor     UserRole = "vendor"
	UserRoleConsultant UserRole = "consultant"
	UserRoleAdmin      UserRole = "admin"
)

var RoleHierarchy = map[UserRole]int{
	UserRoleVendor:     1,
	UserRoleConsultant: 2,
	UserRoleAdmin:      3,
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

type User struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Email              string              `bson:"email" json:"email"`
	Password           string              `bson:"password" json:"-"`
	Role               UserRole            `bson:"role" json:"role"`
	FullName           string              `bson:"full_name" json:"full_name"`
	Company            string              `bson:"company,omitempty" json:"company,omitempty"`
	Status             UserStatus          `bson:"status" json:"status"`
	AssignedConsultant *primitive.ObjectID `bson:"assigned_consultant,omitempty" json:"assigned_consultant,omitempty"`
	AgreementPeriod    string              `bson:"agreement_period,omitempty" json:"agreement_period,omitempty"`
	PhoneNumber        string              `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	CreatedAt          time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `bson:"updated_at" json:"updated_at"`
}

func (u *User) HasHigherRole(role UserRole) bool {
	return RoleHierarchy[u.Role] > RoleHierarchy[role]
}

func (u *User) HasEqualOrHigherRole(role UserRole) bool {
	return RoleHierarchy[u.Role] >= RoleHierarchy[role]
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleVendor, UserRoleConsultant, UserRoleAdmin:
		return true
	default:
		return false
	}
}

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusPending:
		return true
	default:
		return false
	}
}
