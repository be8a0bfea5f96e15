package domain

import "time"

// FarmerStatus classifies a registered farmer account.
type FarmerStatus string

const (
	FarmerActive     FarmerStatus = "active"
	FarmerRestricted FarmerStatus = "restricted"
)

// FarmerUser is a registered farmer record. The schema carries it for the
// dashboard, but no editing operation mutates the collection.
type FarmerUser struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	District   string       `json:"district"`
	JoinedDate time.Time    `json:"joinedDate"`
	LastActive time.Time    `json:"lastActive"`
	Status     FarmerStatus `json:"status"`
}

// IsActive reports whether the farmer account is not restricted.
func (f *FarmerUser) IsActive() bool {
	return f != nil && f.Status == FarmerActive
}
