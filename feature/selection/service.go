package selection

import (
	"context"
	"errors"
	"fmt"

	"sports-catalog/core/aggregate"
	"sports-catalog/core/validation"

	"go.uber.org/zap"
)

// Selection is the league selection of one owner.
type Selection struct {
	Owner   string   `json:"owner"`
	Leagues []string `json:"leagues"`
	// Saved is false when Leagues are the configured defaults.
	Saved bool `json:"saved"`
}

// UpdateRequest is the body of PUT /selection.
type UpdateRequest struct {
	Leagues []string `json:"leagues" validate:"required,min=1,dive,required,max=100"`
}

// Service reads and writes league selections.
type Service struct {
	store      Store
	defaults   []string
	maxLeagues int
	logger     *zap.Logger
}

// NewService creates a selection service. defaults are returned to owners without a
// saved selection.
func NewService(store Store, defaults []string, maxLeagues int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:      store,
		defaults:   aggregate.CleanSources(defaults),
		maxLeagues: maxLeagues,
		logger:     logger,
	}
}

// Get returns the saved selection of owner, falling back to the defaults.
func (s *Service) Get(ctx context.Context, owner string) (Selection, error) {
	leagues, err := s.store.Read(ctx, owner)
	if errors.Is(err, ErrNotFound) {
		return Selection{Owner: owner, Leagues: s.defaults}, nil
	}
	if err != nil {
		return Selection{}, fmt.Errorf("failed to read selection: %w", err)
	}
	return Selection{Owner: owner, Leagues: leagues, Saved: true}, nil
}

// Set validates and saves a selection. League names are trimmed and repeats dropped.
func (s *Service) Set(ctx context.Context, owner string, req UpdateRequest) (Selection, error) {
	if err := validation.Struct(&req); err != nil {
		return Selection{}, err
	}

	leagues := aggregate.CleanSources(req.Leagues)
	if len(leagues) == 0 {
		return Selection{}, &validation.Error{Fields: []validation.FieldError{{
			Field:   "leagues",
			Tag:     "required",
			Message: "leagues must contain at least one non-blank name",
		}}}
	}
	if s.maxLeagues > 0 && len(leagues) > s.maxLeagues {
		return Selection{}, &validation.Error{Fields: []validation.FieldError{{
			Field:   "leagues",
			Tag:     "max",
			Param:   fmt.Sprint(s.maxLeagues),
			Message: fmt.Sprintf("leagues must contain at most %d items", s.maxLeagues),
		}}}
	}

	if err := s.store.Write(ctx, owner, leagues); err != nil {
		return Selection{}, fmt.Errorf("failed to write selection: %w", err)
	}

	s.logger.Info("Selection saved", zap.String("owner", owner), zap.Strings("leagues", leagues))
	return Selection{Owner: owner, Leagues: leagues, Saved: true}, nil
}
