package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/healthdash/internal/analyze"
	"github.com/2beens/healthdash/internal/healthdata"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

var (
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	ErrInsightsFailed     = errors.New("failed to get AI insights")
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Data holds the three families, newest first.
type Data struct {
	Oura     []healthdata.OuraRecord     `json:"oura"`
	Withings []healthdata.WithingsRecord `json:"withings"`
	Running  []healthdata.RunningRecord  `json:"running"`
}

func (d Data) Families() healthdata.Families {
	return healthdata.NewFamilies(d.Oura, d.Withings, d.Running)
}

// State is the whole dashboard view state. It is only changed by the Store actions.
type State struct {
	Data
	Insight   *analyze.Analysis
	Loading   bool
	Analyzing bool
	Error     string
	Theme     Theme
}

type Store struct {
	mu     sync.Mutex
	state  State
	source dataSource
	now    func() time.Time
}

func NewStore(source dataSource) *Store {
	return &Store{
		source: source,
		now:    time.Now,
		state: State{
			Theme:   ThemeLight,
			Loading: true,
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FetchAll loads the three families in parallel. Oura and Withings failures
// end up in the state error (partial data is kept), while a running failure
// is replaced by fallback data. Returns the combined required-family errors.
func (s *Store) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.state.Loading = true
	s.mu.Unlock()

	var (
		g                 errgroup.Group
		oura              []healthdata.OuraRecord
		withings          []healthdata.WithingsRecord
		running           []healthdata.RunningRecord
		ouraErr, wthErr   error
		runningErr        error
		fetchStartedAtUTC = s.now().UTC()
	)

	g.Go(func() error {
		oura, ouraErr = s.source.FetchOura(ctx)
		return nil
	})
	g.Go(func() error {
		withings, wthErr = s.source.FetchWithings(ctx)
		return nil
	})
	g.Go(func() error {
		running, runningErr = s.source.FetchRunning(ctx)
		return nil
	})
	// the fetchers never fail the group, errors are handled per family below
	_ = g.Wait()

	if runningErr != nil {
		log.Warnf("fetch running data, using fallback data: %s", runningErr)
		running = FallbackRunning(fetchStartedAtUTC)
	}

	var err error
	if ouraErr != nil {
		err = multierr.Append(err, fmt.Errorf("fetch oura data: %w", ouraErr))
	}
	if wthErr != nil {
		err = multierr.Append(err, fmt.Errorf("fetch withings data: %w", wthErr))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ouraErr == nil {
		s.state.Oura = oura
	}
	if wthErr == nil {
		s.state.Withings = withings
	}
	s.state.Running = running
	s.state.Loading = false
	if err != nil {
		s.state.Error = err.Error()
	}

	return err
}

func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = msg
}

func (s *Store) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Theme == ThemeDark {
		s.state.Theme = ThemeLight
	} else {
		s.state.Theme = ThemeDark
	}
	return s.state.Theme
}

// GetInsights requests the generated analysis of the loaded data.
// Only one analysis can run at a time.
func (s *Store) GetInsights(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Analyzing {
		s.mu.Unlock()
		return ErrAnalysisInProgress
	}
	if !HasValidData(s.state.Oura, s.state.Withings) {
		s.mu.Unlock()
		return analyze.ErrMissingData
	}
	s.state.Analyzing = true
	s.state.Error = ""
	req := analyze.Request{
		OuraData:     s.state.Oura,
		WithingsData: s.state.Withings,
		RunningData:  s.state.Running,
	}
	s.mu.Unlock()

	analysis, err := s.source.Analyze(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Analyzing = false

	if err == nil && (analysis == nil || analysis.Response == "") {
		err = errors.New("empty analysis response")
	}
	if err != nil {
		log.Errorf("get insights: %s", err)
		s.state.Error = ErrInsightsFailed.Error()
		return fmt.Errorf("%w: %w", ErrInsightsFailed, err)
	}

	s.state.Insight = analysis
	return nil
}

// HasValidData reports whether both required families have at least one row.
func HasValidData(oura []healthdata.OuraRecord, withings []healthdata.WithingsRecord) bool {
	return len(oura) > 0 && len(withings) > 0
}
