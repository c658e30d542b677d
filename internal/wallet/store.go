// Package wallet holds the demo user's point balance and the append-only
// transaction ledger the balance is folded from.
package wallet

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/myebiez/daur-cuan-app/internal/metrics"
	"github.com/myebiez/daur-cuan-app/internal/model"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

const (
	depositLabel = "Setoran Mesin RVM"
	openingLabel = "Saldo Awal"
	redeemPrefix = "Tukar "
)

type Options struct {
	User model.User

	// OpeningPoints is seeded as an opening EARN entry so the
	// balance-equals-ledger-fold invariant holds from the first snapshot.
	OpeningPoints   int64
	OpeningAtMillis int64

	// PointsPerBottle converts machine-deposit points into the bottle
	// counter shown on the dashboard.
	PointsPerBottle int64
}

type Store struct {
	mu sync.RWMutex

	user            model.User
	points          int64
	bottles         int64
	history         []model.Transaction // newest first
	pointsPerBottle int64
}

type Snapshot struct {
	Points  int64               `json:"points"`
	Bottles int64               `json:"bottles"`
	History []model.Transaction `json:"history"`
}

func New(opts Options) *Store {
	s := &Store{
		user:            opts.User,
		history:         make([]model.Transaction, 0),
		pointsPerBottle: opts.PointsPerBottle,
	}
	if s.pointsPerBottle <= 0 {
		s.pointsPerBottle = 50
	}
	if opts.OpeningPoints > 0 {
		s.creditLocked(openingLabel, opts.OpeningPoints, opts.OpeningAtMillis, false)
	}
	return s
}

func (s *Store) creditLocked(label string, amount int64, nowMillis int64, countBottles bool) model.Transaction {
	tx := model.Transaction{
		ID:        uuid.NewString(),
		Kind:      model.KindEarn,
		Label:     label,
		Amount:    amount,
		Timestamp: nowMillis,
	}
	s.points += amount
	if countBottles {
		s.bottles += amount / s.pointsPerBottle
	}
	s.history = append([]model.Transaction{tx}, s.history...)
	return tx
}

// CreditDeposit folds a closed session's points into the wallet as one EARN
// entry. The caller guarantees amount > 0.
func (s *Store) CreditDeposit(amount int64, nowMillis int64) model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	metrics.PointsEarned.Add(float64(amount))
	return s.creditLocked(depositLabel, amount, nowMillis, true)
}

// Redeem exchanges points for the given payout method. Independent of the
// machine session state.
func (s *Store) Redeem(amount int64, method string, nowMillis int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if amount > s.points {
		return s.points, ErrInsufficientBalance
	}

	tx := model.Transaction{
		ID:        uuid.NewString(),
		Kind:      model.KindRedeem,
		Label:     redeemPrefix + method,
		Amount:    amount,
		Timestamp: nowMillis,
	}
	s.points -= amount
	s.history = append([]model.Transaction{tx}, s.history...)

	metrics.PointsRedeemed.Add(float64(amount))
	metrics.RedeemsTotal.WithLabelValues(method).Inc()
	return s.points, nil
}

func (s *Store) Balance() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points
}

// Profile returns the user record and a consistent wallet snapshot.
func (s *Store) Profile() (model.User, Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]model.Transaction, len(s.history))
	copy(history, s.history)
	return s.user, Snapshot{Points: s.points, Bottles: s.bottles, History: history}
}

func (s *Store) UpdateUser(name, email, avatar string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name != "" {
		s.user.Name = name
	}
	if email != "" {
		s.user.Email = email
	}
	if avatar != "" {
		s.user.Avatar = avatar
	}
	return s.user
}

func (s *Store) SetBankAccount(acc model.BankAccount) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.BankAccount = &acc
	return s.user
}
