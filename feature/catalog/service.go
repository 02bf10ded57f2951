package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sports-catalog/core/aggregate"
	"sports-catalog/core/metrics"
	"sports-catalog/core/upstream"
	"sports-catalog/feature/selection"

	"go.uber.org/zap"
)

var (
	// ErrUnknownKind is returned for kinds other than teams, players and matches.
	ErrUnknownKind = errors.New("unknown catalog kind")
	// ErrNoSession is returned when a session has never been reset.
	ErrNoSession = errors.New("no catalog session")
)

// SelectionReader reads the saved league selection of an owner.
type SelectionReader interface {
	Read(ctx context.Context, owner string) ([]string, error)
}

// Page is the visible window of one session.
type Page struct {
	Kind       string `json:"kind"`
	Generation uint64 `json:"generation"`
	Items      any    `json:"items"`
	Count      int    `json:"count"`
	Revealed   int    `json:"revealed"`
	Total      int    `json:"total"`
	Exhausted  bool   `json:"exhausted"`
	Query      string `json:"query,omitempty"`
}

// ResetResult describes a freshly reset session.
type ResetResult struct {
	Kind       string   `json:"kind"`
	Generation uint64   `json:"generation"`
	Leagues    []string `json:"leagues"`
	Teams      int      `json:"teams"`
}

// MoreResult is the outcome of a load-more request and the resulting window.
type MoreResult struct {
	Change aggregate.ViewChange `json:"change"`
	Page   Page                 `json:"page"`
}

type session struct {
	browser  browser
	leagues  []string
	lastUsed time.Time
}

// Service owns the browsing sessions. Each (owner, kind) pair has its own engine.
type Service struct {
	client    upstream.Client
	selection SelectionReader
	exporter  *Exporter
	cfg       Config
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]map[string]*session // kind -> owner -> session
}

// NewService creates a catalog service. selection and exporter may be nil.
func NewService(client upstream.Client, sel SelectionReader, exporter *Exporter, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	sessions := make(map[string]map[string]*session, len(Kinds))
	for _, kind := range Kinds {
		sessions[kind] = make(map[string]*session)
	}
	return &Service{
		client:    client,
		selection: sel,
		exporter:  exporter,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		sessions:  sessions,
	}
}

// ResolveSelection picks the leagues of a reset: the requested ones, else the saved
// selection of the owner, else the configured defaults.
func (s *Service) ResolveSelection(ctx context.Context, owner string, requested []string) []string {
	if leagues := aggregate.CleanSources(requested); len(leagues) > 0 {
		return leagues
	}

	if s.selection != nil {
		saved, err := s.selection.Read(ctx, owner)
		switch {
		case err == nil:
			if leagues := aggregate.CleanSources(saved); len(leagues) > 0 {
				return leagues
			}
		case !errors.Is(err, selection.ErrNotFound):
			s.logger.Warn("Failed to read saved selection", zap.String("owner", owner), zap.Error(err))
		}
	}

	return s.cfg.Leagues()
}

// Reset starts a new generation for the session of owner, creating it if needed.
func (s *Service) Reset(ctx context.Context, owner, kind string, leagues []string) (ResetResult, error) {
	sess, err := s.session(owner, kind, true)
	if err != nil {
		return ResetResult{}, err
	}

	leagues = s.ResolveSelection(ctx, owner, leagues)
	s.mu.Lock()
	sess.leagues = leagues
	s.mu.Unlock()

	gen := sess.browser.Reset(ctx, leagues)
	snap := sess.browser.Snapshot()

	s.logger.Info("Catalog session reset",
		zap.String("owner", owner),
		zap.String("kind", kind),
		zap.Uint64("generation", gen),
		zap.Strings("leagues", leagues),
		zap.Int("teams", snap.Entities),
	)

	return ResetResult{Kind: kind, Generation: gen, Leagues: leagues, Teams: snap.Entities}, nil
}

// More grows the visible window of a session. A session that was never reset is reset
// with the resolved selection first.
func (s *Service) More(ctx context.Context, owner, kind string) (MoreResult, error) {
	sess, err := s.session(owner, kind, false)
	if errors.Is(err, ErrNoSession) {
		if _, err := s.Reset(ctx, owner, kind, nil); err != nil {
			return MoreResult{}, err
		}
		sess, err = s.session(owner, kind, false)
	}
	if err != nil {
		return MoreResult{}, err
	}

	change := sess.browser.RequestMore(ctx)
	return MoreResult{Change: change, Page: s.page(kind, sess, "")}, nil
}

// Page returns the visible window of a session.
func (s *Service) Page(owner, kind string) (Page, error) {
	return s.Search(owner, kind, "")
}

// Search returns the visible records of a session whose display name contains query.
func (s *Service) Search(owner, kind, query string) (Page, error) {
	sess, err := s.session(owner, kind, false)
	if err != nil {
		return Page{}, err
	}
	return s.page(kind, sess, query), nil
}

// Enrich runs a synchronous enrichment pass on a session.
func (s *Service) Enrich(ctx context.Context, owner, kind string) (int, error) {
	sess, err := s.session(owner, kind, false)
	if err != nil {
		return 0, err
	}
	return sess.browser.Enrich(ctx), nil
}

// Export writes the visible window of a session to object storage.
func (s *Service) Export(ctx context.Context, owner, kind string) (ExportResult, error) {
	if s.exporter == nil {
		return ExportResult{}, ErrExportDisabled
	}
	page, err := s.Page(owner, kind)
	if err != nil {
		return ExportResult{}, err
	}
	return s.exporter.Export(ctx, owner, page)
}

// Exports lists the stored snapshots of a kind.
func (s *Service) Exports(ctx context.Context, kind string) ([]ExportInfo, error) {
	if s.exporter == nil {
		return nil, ErrExportDisabled
	}
	if !validKind(kind) {
		return nil, ErrUnknownKind
	}
	return s.exporter.List(ctx, kind)
}

// Exporter returns the snapshot exporter, or nil when exports are disabled.
func (s *Service) Exporter() *Exporter {
	return s.exporter
}

// Team looks up a single team.
func (s *Service) Team(ctx context.Context, id string) (*upstream.Team, error) {
	team, err := s.client.FetchTeamByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team %s: %w", id, err)
	}
	return team, nil
}

// Close waits for background enrichment of every session.
func (s *Service) Close() {
	s.mu.Lock()
	var browsers []browser
	for _, owners := range s.sessions {
		for _, sess := range owners {
			browsers = append(browsers, sess.browser)
		}
	}
	s.mu.Unlock()

	for _, b := range browsers {
		b.Wait()
	}
}

func (s *Service) page(kind string, sess *session, query string) Page {
	items, count := sess.browser.Visible(query)
	snap := sess.browser.Snapshot()
	return Page{
		Kind:       kind,
		Generation: snap.Generation,
		Items:      items,
		Count:      count,
		Revealed:   snap.Revealed,
		Total:      snap.Accumulated,
		Exhausted:  snap.Exhausted,
		Query:      query,
	}
}

// session returns the session of owner for kind, expiring idle ones first.
func (s *Service) session(owner, kind string, create bool) (*session, error) {
	if !validKind(kind) {
		return nil, ErrUnknownKind
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	owners := s.sessions[kind]
	s.expireLocked(kind, now)

	if sess, ok := owners[owner]; ok {
		sess.lastUsed = now
		return sess, nil
	}
	if !create {
		return nil, ErrNoSession
	}

	if len(owners) >= s.cfg.MaxSessions && s.cfg.MaxSessions > 0 {
		s.evictOldestLocked(kind)
	}

	b, err := newBrowser(kind, s.client, s.cfg, s.logger.With(zap.String("owner", owner)))
	if err != nil {
		return nil, err
	}
	sess := &session{browser: b, lastUsed: now}
	owners[owner] = sess
	metrics.ActiveSessions.WithLabelValues(kind).Set(float64(len(owners)))
	return sess, nil
}

func (s *Service) expireLocked(kind string, now time.Time) {
	ttl := s.cfg.SessionTTL()
	if ttl <= 0 {
		return
	}
	owners := s.sessions[kind]
	for owner, sess := range owners {
		if now.Sub(sess.lastUsed) > ttl {
			delete(owners, owner)
			s.logger.Debug("Catalog session expired", zap.String("owner", owner), zap.String("kind", kind))
		}
	}
	metrics.ActiveSessions.WithLabelValues(kind).Set(float64(len(owners)))
}

func (s *Service) evictOldestLocked(kind string) {
	owners := s.sessions[kind]
	var oldest string
	var oldestAt time.Time
	for owner, sess := range owners {
		if oldest == "" || sess.lastUsed.Before(oldestAt) {
			oldest, oldestAt = owner, sess.lastUsed
		}
	}
	if oldest != "" {
		delete(owners, oldest)
		s.logger.Debug("Catalog session evicted", zap.String("owner", oldest), zap.String("kind", kind))
	}
}

func validKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
