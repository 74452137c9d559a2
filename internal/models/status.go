package models

// LifecycleStatus replaces the soft-delete boolean; retired records stay in
// place so that references and history remain intact.
type LifecycleStatus string

const (
	StatusActive  LifecycleStatus = "active"
	StatusRetired LifecycleStatus = "retired"
)

func (s LifecycleStatus) IsActive() bool {
	return s == StatusActive
}

type Availability string

const (
	AvailabilityInStock    Availability = "In Stock"
	AvailabilityOutOfStock Availability = "Out of Stock"
	AvailabilityLowStock   Availability = "Low Stock"
)

type Condition string

const (
	ConditionNew         Condition = "New"
	ConditionUsed        Condition = "Used"
	ConditionRefurbished Condition = "Refurbished"
)

type Role string

const (
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)
