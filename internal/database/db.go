package database

import (
	"sync"

	"github.com/safar/dealhunter-api/internal/models"
)

// DB holds every collection the API serves. All access goes through
// WithTransaction, which serializes writers behind a single lock.
type DB struct {
	mu sync.RWMutex

	deals    []*models.Deal
	users    []*models.User
	orders   []*models.Order
	payments []*models.Payment
	sessions map[string]models.Session

	lastDealID int64
	lastUserID int64
	lastSeq    int64
}

func New() *DB {
	return &DB{
		sessions: make(map[string]models.Session),
	}
}

// Tx is a view over DB valid only inside a WithTransaction callback.
// Pointers returned by Tx methods must not escape the callback.
type Tx struct {
	db       *DB
	readOnly bool
}

func (tx *Tx) writable() error {
	if tx.readOnly {
		return ErrReadOnlyTx
	}
	return nil
}

func (tx *Tx) Deals() []*models.Deal {
	return tx.db.deals
}

func (tx *Tx) FindDeal(id int64) (*models.Deal, bool) {
	for _, d := range tx.db.deals {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// InsertDeal assigns the next deal id unless the deal already carries one
// above the counter, as seeded records do.
func (tx *Tx) InsertDeal(d *models.Deal) error {
	if err := tx.writable(); err != nil {
		return err
	}
	if d.ID > tx.db.lastDealID {
		tx.db.lastDealID = d.ID
	} else {
		tx.db.lastDealID++
		d.ID = tx.db.lastDealID
	}
	tx.db.deals = append(tx.db.deals, d)
	return nil
}

func (tx *Tx) Users() []*models.User {
	return tx.db.users
}

func (tx *Tx) FindUser(id int64) (*models.User, bool) {
	for _, u := range tx.db.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// FindUserByEmail expects an already lowercased email.
func (tx *Tx) FindUserByEmail(email string) (*models.User, bool) {
	for _, u := range tx.db.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

func (tx *Tx) InsertUser(u *models.User) error {
	if err := tx.writable(); err != nil {
		return err
	}
	tx.db.lastUserID++
	u.ID = tx.db.lastUserID
	tx.db.users = append(tx.db.users, u)
	return nil
}

func (tx *Tx) Orders() []*models.Order {
	return tx.db.orders
}

func (tx *Tx) FindOrder(id string) (*models.Order, bool) {
	for _, o := range tx.db.orders {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

func (tx *Tx) InsertOrder(o *models.Order) error {
	if err := tx.writable(); err != nil {
		return err
	}
	if _, exists := tx.FindOrder(o.ID); exists {
		return ErrDuplicateID
	}
	tx.db.lastSeq++
	o.Seq = tx.db.lastSeq
	tx.db.orders = append(tx.db.orders, o)
	return nil
}

func (tx *Tx) Payments() []*models.Payment {
	return tx.db.payments
}

func (tx *Tx) InsertPayment(p *models.Payment) error {
	if err := tx.writable(); err != nil {
		return err
	}
	for _, existing := range tx.db.payments {
		if existing.ID == p.ID {
			return ErrDuplicateID
		}
	}
	tx.db.payments = append(tx.db.payments, p)
	return nil
}

func (tx *Tx) Session(token string) (models.Session, bool) {
	s, ok := tx.db.sessions[token]
	return s, ok
}

func (tx *Tx) PutSession(token string, s models.Session) error {
	if err := tx.writable(); err != nil {
		return err
	}
	if _, exists := tx.db.sessions[token]; exists {
		return ErrDuplicateID
	}
	tx.db.sessions[token] = s
	return nil
}

func (tx *Tx) DeleteSession(token string) error {
	if err := tx.writable(); err != nil {
		return err
	}
	delete(tx.db.sessions, token)
	return nil
}

func (tx *Tx) SessionCount() int {
	return len(tx.db.sessions)
}
