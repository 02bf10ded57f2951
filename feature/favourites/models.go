package favourites

import "time"

// TableName is the table holding favourite teams.
const TableName = "favourite_teams"

// Favourite is a team marked as favourite by an owner.
type Favourite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Owner     string    `gorm:"size:64;not null;uniqueIndex:idx_owner_team" json:"owner"`
	TeamID    string    `gorm:"size:32;not null;uniqueIndex:idx_owner_team" json:"team_id"`
	TeamName  string    `gorm:"size:255" json:"team_name"`
	League    string    `gorm:"size:255" json:"league,omitempty"`
	Badge     string    `gorm:"size:512" json:"badge,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the gorm table name.
func (Favourite) TableName() string {
	return TableName
}

// Columns lists the columns the Favourite model needs.
var Columns = []string{"id", "owner", "team_id", "team_name", "league", "badge", "created_at"}
