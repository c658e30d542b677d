// Package rvm implements the session lifecycle of the single reverse vending
// machine: open on a matching QR code, accumulate deposit points, close on an
// explicit end, a conflicting start or an inactivity timeout, and reconcile
// the session's points into the wallet exactly once.
package rvm

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/myebiez/daur-cuan-app/internal/metrics"
	"github.com/myebiez/daur-cuan-app/internal/model"
	"github.com/myebiez/daur-cuan-app/internal/wallet"
)

var (
	ErrInvalidMachineID = errors.New("machine id mismatch")
	ErrSessionNotActive = errors.New("session not active")
	ErrInvalidAmount    = errors.New("invalid deposit amount")
)

// CloseReason labels why a session was reconciled and cleared.
type CloseReason string

const (
	CloseEnded   CloseReason = "ended"
	CloseForced  CloseReason = "forced"
	CloseTimeout CloseReason = "timeout"
)

type Options struct {
	MachineID        string
	InactivityWindow time.Duration

	Wallet *wallet.Store

	// Clock defaults to the system clock when nil.
	Clock Clock

	Logger zerolog.Logger

	// OnChange, when set, receives a snapshot after every state change. It is
	// invoked outside the manager's lock.
	OnChange func(Snapshot)
}

// Manager owns the machine lock state, the active session record and the
// inactivity timer. All operations are serialized through one mutex; the
// timer callback takes the same path, so no caller ever observes a partially
// updated state.
type Manager struct {
	mu sync.Mutex

	machineID string
	window    time.Duration
	clock     Clock
	wallet    *wallet.Store
	log       zerolog.Logger
	onChange  func(Snapshot)

	status  model.MachineStatus
	session *model.Session

	// timerGen invalidates scheduled fires: every rearm bumps the generation,
	// and a callback that wakes up with a stale generation is a no-op. This
	// resolves the race between an incoming operation and a timer that
	// already fired but has not taken the lock yet.
	timer    Timer
	timerGen uint64
}

type StartResult struct {
	SessionID string
	StartedAt int64
}

type EndResult struct {
	Closed      bool
	PointsAdded int64
	NewBalance  int64
}

type Snapshot struct {
	MachineID string
	Status    model.MachineStatus
	Session   *model.Session
}

func New(opts Options) *Manager {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock()
	}
	return &Manager{
		machineID: opts.MachineID,
		window:    opts.InactivityWindow,
		clock:     clock,
		wallet:    opts.Wallet,
		log:       opts.Logger,
		onChange:  opts.OnChange,
		status:    model.StatusLocked,
	}
}

// Start opens a new session when the claimed machine id matches. An already
// active session is force-closed first; its points are reconciled into the
// wallet before the new session begins at zero.
func (m *Manager) Start(claimedID string) (StartResult, error) {
	m.mu.Lock()

	if claimedID != m.machineID {
		m.mu.Unlock()
		m.log.Warn().Str("claimed_id", claimedID).Msg("session start rejected: unknown machine id")
		return StartResult{}, ErrInvalidMachineID
	}

	if m.session != nil {
		m.closeLocked(CloseForced)
	}

	now := m.clock.Now().UnixMilli()
	m.session = &model.Session{
		ID:             uuid.NewString(),
		StartedAt:      now,
		LastActivityAt: now,
	}
	m.status = model.StatusActive
	m.armLocked()

	result := StartResult{SessionID: m.session.ID, StartedAt: now}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	metrics.SessionsStartedTotal.Inc()
	metrics.MachineActive.Set(1)
	m.log.Info().Str("session_id", result.SessionID).Msg("session opened, machine unlocked")
	m.notify(snap)
	return result, nil
}

// Deposit adds points to the active session and rearms the inactivity timer.
func (m *Manager) Deposit(points int64) (int64, error) {
	if points <= 0 {
		return 0, ErrInvalidAmount
	}

	m.mu.Lock()

	if m.session == nil {
		m.mu.Unlock()
		return 0, ErrSessionNotActive
	}

	m.session.Points += points
	m.session.LastActivityAt = m.clock.Now().UnixMilli()
	m.armLocked()

	total := m.session.Points
	snap := m.snapshotLocked()
	m.mu.Unlock()

	metrics.DepositsTotal.Inc()
	m.log.Info().Int64("points", points).Int64("session_points", total).Msg("bottle deposit accepted")
	m.notify(snap)
	return total, nil
}

// End closes the active session and reconciles it. Calling End while locked
// is an idempotent no-op reporting zero points added.
func (m *Manager) End() EndResult {
	m.mu.Lock()

	if m.session == nil {
		balance := m.wallet.Balance()
		m.mu.Unlock()
		return EndResult{Closed: false, PointsAdded: 0, NewBalance: balance}
	}

	added := m.closeLocked(CloseEnded)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return EndResult{Closed: true, PointsAdded: added, NewBalance: m.wallet.Balance()}
}

// Snapshot returns a consistent copy of the machine state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{MachineID: m.machineID, Status: m.status}
	if m.session != nil {
		sess := *m.session
		snap.Session = &sess
	}
	return snap
}

// closeLocked disarms the timer, reconciles the session into the wallet and
// locks the machine. Reconciliation happens exactly once per session no
// matter which trigger closes it.
func (m *Manager) closeLocked(reason CloseReason) int64 {
	m.timerGen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}

	sess := m.session
	m.session = nil
	m.status = model.StatusLocked

	var added int64
	if sess != nil && sess.Points > 0 {
		m.wallet.CreditDeposit(sess.Points, m.clock.Now().UnixMilli())
		added = sess.Points
	}

	metrics.SessionsClosedTotal.WithLabelValues(string(reason)).Inc()
	metrics.MachineActive.Set(0)
	if sess != nil {
		m.log.Info().
			Str("session_id", sess.ID).
			Str("reason", string(reason)).
			Int64("points_added", added).
			Msg("session closed, machine locked")
	}
	return added
}

func (m *Manager) armLocked() {
	m.timerGen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.window <= 0 {
		return
	}
	gen := m.timerGen
	m.timer = m.clock.AfterFunc(m.window, func() { m.expire(gen) })
}

func (m *Manager) expire(gen uint64) {
	m.mu.Lock()

	if gen != m.timerGen || m.session == nil {
		// Superseded by a rearm or a close that won the race.
		m.mu.Unlock()
		return
	}

	m.closeLocked(CloseTimeout)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

func (m *Manager) notify(snap Snapshot) {
	if m.onChange != nil {
		m.onChange(snap)
	}
}
