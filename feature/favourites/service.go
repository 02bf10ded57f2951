package favourites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sports-catalog/core/upstream"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrDisabled is returned when no database is configured.
var ErrDisabled = errors.New("favourites are disabled")

// ToggleResult reports the state of a team after a toggle.
type ToggleResult struct {
	TeamID    string     `json:"team_id"`
	Favourite bool       `json:"favourite"`
	Team      *Favourite `json:"team,omitempty"`
}

// Service stores favourite teams per owner.
type Service struct {
	db     *gorm.DB
	client upstream.Client
	logger *zap.Logger
}

// NewService creates a favourites service. db may be nil, which disables the feature.
func NewService(db *gorm.DB, client upstream.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, client: client, logger: logger}
}

// Enabled reports whether a database is configured.
func (s *Service) Enabled() bool {
	return s.db != nil
}

// Migrate creates or updates the favourites table.
func (s *Service) Migrate() error {
	if s.db == nil {
		return ErrDisabled
	}
	if err := s.db.AutoMigrate(&Favourite{}); err != nil {
		return fmt.Errorf("failed to migrate favourites: %w", err)
	}
	return nil
}

// List returns the favourites of owner, oldest first.
func (s *Service) List(ctx context.Context, owner string) ([]Favourite, error) {
	if s.db == nil {
		return nil, ErrDisabled
	}

	var favs []Favourite
	if err := s.db.WithContext(ctx).Where("owner = ?", owner).Order("id").Find(&favs).Error; err != nil {
		return nil, fmt.Errorf("failed to list favourites: %w", err)
	}
	return favs, nil
}

// Toggle removes teamID from the favourites of owner if present, otherwise looks the
// team up and adds it.
func (s *Service) Toggle(ctx context.Context, owner, teamID string) (ToggleResult, error) {
	if s.db == nil {
		return ToggleResult{}, ErrDisabled
	}
	teamID = strings.TrimSpace(teamID)
	db := s.db.WithContext(ctx)

	var existing Favourite
	res := db.Where("owner = ? AND team_id = ?", owner, teamID).Limit(1).Find(&existing)
	if res.Error != nil {
		return ToggleResult{}, fmt.Errorf("failed to find favourite: %w", res.Error)
	}

	if res.RowsAffected > 0 {
		if err := db.Delete(&Favourite{}, existing.ID).Error; err != nil {
			return ToggleResult{}, fmt.Errorf("failed to remove favourite: %w", err)
		}
		s.logger.Info("Favourite removed", zap.String("owner", owner), zap.String("team_id", teamID))
		return ToggleResult{TeamID: teamID, Favourite: false}, nil
	}

	team, err := s.client.FetchTeamByID(ctx, teamID)
	if err == nil && team == nil {
		err = upstream.ErrNotFound
	}
	if err != nil {
		return ToggleResult{}, fmt.Errorf("failed to fetch team %s: %w", teamID, err)
	}

	fav := Favourite{
		Owner:    owner,
		TeamID:   teamID,
		TeamName: team.Name,
		League:   team.League,
		Badge:    team.Badge,
	}
	if err := db.Create(&fav).Error; err != nil {
		return ToggleResult{}, fmt.Errorf("failed to add favourite: %w", err)
	}

	s.logger.Info("Favourite added", zap.String("owner", owner), zap.String("team_id", teamID))
	return ToggleResult{TeamID: teamID, Favourite: true, Team: &fav}, nil
}
