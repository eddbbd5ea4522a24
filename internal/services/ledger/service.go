// Package ledger owns every money movement in a game session: between
// players, the bank, and the free-parking pool. Each transfer is a single
// atomic step; no partial state is observable between a debit and its
// matching credit, which keeps the cash-conservation invariant trivially
// true for every reachable state.
package ledger

import "github.com/magnate-game/magnate/internal/models"

// Service moves money between the session's accounts
type Service struct{}

// New creates a new ledger service
func New() *Service {
	return &Service{}
}

// PayFromBank credits the player from the bank, checking bank capacity
func (s *Service) PayFromBank(sess *models.Session, player *models.Player, amount int) error {
	if err := validate(sess, player, amount); err != nil {
		return err
	}
	if amount > sess.Bank {
		return ErrBankDepleted
	}

	sess.Bank -= amount
	player.Cash += amount
	return nil
}

// PayToBank debits the player in favour of the bank, checking solvency
func (s *Service) PayToBank(sess *models.Session, player *models.Player, amount int) error {
	if err := validate(sess, player, amount); err != nil {
		return err
	}
	if amount > player.Cash {
		return ErrInsufficientFunds
	}

	player.Cash -= amount
	sess.Bank += amount
	return nil
}

// PayFine debits the player into the free-parking pool
func (s *Service) PayFine(sess *models.Session, player *models.Player, amount int) error {
	if err := validate(sess, player, amount); err != nil {
		return err
	}
	if amount > player.Cash {
		return ErrInsufficientFunds
	}

	player.Cash -= amount
	sess.FreeParking += amount
	return nil
}

// Transfer moves cash between two players
func (s *Service) Transfer(sess *models.Session, from, to *models.Player, amount int) error {
	if err := validate(sess, from, amount); err != nil {
		return err
	}
	if to == nil {
		return ErrNilPlayer
	}
	if amount > from.Cash {
		return ErrInsufficientFunds
	}

	from.Cash -= amount
	to.Cash += amount
	return nil
}

// CollectFreeParking pays the whole pool out to the player and zeroes it
func (s *Service) CollectFreeParking(sess *models.Session, player *models.Player) (int, error) {
	if sess == nil {
		return 0, ErrNilSession
	}
	if player == nil {
		return 0, ErrNilPlayer
	}

	amount := sess.FreeParking
	sess.FreeParking = 0
	player.Cash += amount
	return amount, nil
}

// Seize moves the player's entire remaining cash to the bank. Used as the
// final step of a bankruptcy against the bank or the free-parking pool.
func (s *Service) Seize(sess *models.Session, player *models.Player) (int, error) {
	if sess == nil {
		return 0, ErrNilSession
	}
	if player == nil {
		return 0, ErrNilPlayer
	}

	amount := player.Cash
	player.Cash = 0
	sess.Bank += amount
	return amount, nil
}

// SeizeTo moves the player's entire remaining cash to a creditor player
func (s *Service) SeizeTo(sess *models.Session, player, creditor *models.Player) (int, error) {
	if sess == nil {
		return 0, ErrNilSession
	}
	if player == nil || creditor == nil {
		return 0, ErrNilPlayer
	}

	amount := player.Cash
	player.Cash = 0
	creditor.Cash += amount
	return amount, nil
}

func validate(sess *models.Session, player *models.Player, amount int) error {
	if sess == nil {
		return ErrNilSession
	}
	if player == nil {
		return ErrNilPlayer
	}
	if amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
