// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Asset is an aircraft or a simulator device in the user's fleet.
type Asset struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Registration   string    `json:"registration"`
	IsSimulator    bool      `json:"is_simulator"`
	Type           *string   `json:"type"`
	Model          *string   `json:"model"`
	Manufacturer   *string   `json:"manufacturer"`
	Category       *string   `json:"category"`
	EngineCount    *int      `json:"engine_count"`
	EngineType     *string   `json:"engine_type"`
	PassengerSeats *int      `json:"passenger_seats"`
	Operator       *string   `json:"operator"`
	Status         *string   `json:"status"`
	Note           *string   `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CrewMember is a person the user has flown with.
type CrewMember struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	LicenseNumber *string   `json:"license_number"`
	Company       *string   `json:"company"`
	CompanyID     *string   `json:"company_id"`
	Note          *string   `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListQuery describes a database-paginated search over fleet or crew.
type ListQuery struct {
	SearchQuery string `json:"searchQuery"`
	Page        int    `json:"page" validate:"min=1"`
	PageSize    int    `json:"pageSize" validate:"min=1,max=500"`
}

// WithDefaults fills zero values with the documented defaults.
func (q ListQuery) WithDefaults() ListQuery {
	if q.Page == 0 {
		q.Page = DefaultLogsPage
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultLogsPageSize
	}
	return q
}

// Range returns the zero-based offset and limit of the page. An offset that
// would not fit into a postgres bigint is clamped to math.MaxInt64.
func (q ListQuery) Range() (offset, limit uint64) {
	page := max(q.Page, 1)
	size := max(q.PageSize, 1)
	if page-1 > math.MaxInt64/size {
		return math.MaxInt64, uint64(size)
	}
	return uint64((page - 1) * size), uint64(size)
}

// FleetPage is one page of the fleet list.
type FleetPage struct {
	Fleet      []Asset `json:"fleet"`
	TotalCount int     `json:"totalCount"`
	HasMore    bool    `json:"hasMore"`
	Error      string  `json:"error,omitempty"`
}

// FleetGroup is one bucket of a grouped fleet list.
type FleetGroup struct {
	Key    string  `json:"key"`
	Assets []Asset `json:"assets"`
}

// CrewPage is one page of the crew list.
type CrewPage struct {
	Crew       []CrewMember `json:"crew"`
	TotalCount int          `json:"totalCount"`
	HasMore    bool         `json:"hasMore"`
	Error      string       `json:"error,omitempty"`
}

// CrewGroup is one bucket of the crew list grouped by initial.
type CrewGroup struct {
	Initial string       `json:"initial"`
	Crew    []CrewMember `json:"crew"`
}

// FormatName renders the member's name in the given order.
func (m CrewMember) FormatName(display NameDisplay) string {
	if display == NameDisplayLastFirst {
		return strings.TrimSpace(m.LastName + ", " + m.FirstName)
	}
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Initial is the upper-cased first letter of the name the list is sorted by,
// or "#" when that name is empty.
func (m CrewMember) Initial(display NameDisplay) string {
	name := m.FirstName
	if display == NameDisplayLastFirst {
		name = m.LastName
	}
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "#"
}
