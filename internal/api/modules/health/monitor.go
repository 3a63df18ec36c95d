package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	notionapi "github.com/dstotijn/go-notion"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DEFAULT_CHECK_SPEC is used when no HEALTH_CHECK_CRON is configured
const DEFAULT_CHECK_SPEC = "@every 5m"

// Checker is the part of the Notion API used to check reachability
type Checker interface {
	FindDatabaseByID(ctx context.Context, id string) (notionapi.Database, error)
}

// Status is the outcome of the latest check
type Status struct {
	Reachable bool      `json:"reachable"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}

// Monitor periodically checks that the records database can be reached
type Monitor struct {
	checker    Checker
	databaseID string
	timeout    time.Duration
	logger     zerolog.Logger
	cron       *cron.Cron

	status Status
	mutex  sync.RWMutex
}

// NewMonitor creates a monitor for the database with the given id
func NewMonitor(checker Checker, databaseID string, logger zerolog.Logger) *Monitor {
	return &Monitor{
		checker:    checker,
		databaseID: databaseID,
		timeout:    10 * time.Second,
		logger:     logger.With().Str("module", "health").Logger(),
		cron:       cron.New(),
	}
}

// Start runs a check immediately, then on every tick of spec
func (m *Monitor) Start(spec string) error {
	if spec == "" {
		spec = DEFAULT_CHECK_SPEC
	}

	if _, err := m.cron.AddFunc(spec, func() {
		m.Check(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid check schedule %q: %w", spec, err)
	}

	m.Check(context.Background())
	m.cron.Start()
	return nil
}

// Stop halts the check schedule
func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
}

// Check queries the database once and stores the result
func (m *Monitor) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	status := Status{Reachable: true, CheckedAt: time.Now().UTC()}
	if _, err := m.checker.FindDatabaseByID(ctx, m.databaseID); err != nil {
		status.Reachable = false
		status.Error = err.Error()
		m.logger.Warn().Err(err).Msg("records database unreachable")
	} else {
		m.logger.Debug().Msg("records database reachable")
	}

	m.mutex.Lock()
	m.status = status
	m.mutex.Unlock()

	return status
}

// Status returns the latest check result
func (m *Monitor) Status() Status {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.status
}
