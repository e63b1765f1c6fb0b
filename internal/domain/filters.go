package domain

import "time"

// Typed list filters. Every optional field is enumerated explicitly; a nil
// pointer or zero value means "no constraint".

type DropFilter struct {
	Search        string
	DropStatus    string
	FinanceStatus string
	StartDate     *time.Time
	EndDate       *time.Time
	Limit         int
	Offset        int
}

type PlayerFilter struct {
	Search string
	Role   string
	Active *bool
}

type ItemFilter struct {
	Search   string
	Category string
}

type BossFilter struct {
	Search string
}
