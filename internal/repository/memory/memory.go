// Package memory provides process-local repository implementations backed
// by mutex-guarded maps. Each entity kind advances its own identifier
// counter under the same lock as the insert, so two concurrent creates can
// never observe the same id.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// Stores bundles one in-memory repository per entity kind.
type Stores struct {
	Users         *UserStore
	Documents     *DocumentStore
	Orders        *OrderStore
	Residents     *ResidentStore
	Notifications *NotificationStore
	Activities    *ActivityStore
}

// New returns a fresh set of empty in-memory stores.
func New() *Stores {
	return &Stores{
		Users:         &UserStore{records: make(map[int64]model.User)},
		Documents:     &DocumentStore{records: make(map[int64]model.Document)},
		Orders:        &OrderStore{records: make(map[int64]model.Order)},
		Residents:     &ResidentStore{records: make(map[int64]model.Resident)},
		Notifications: &NotificationStore{records: make(map[int64]model.Notification)},
		Activities:    &ActivityStore{records: make(map[int64]model.Activity)},
	}
}

// UserStore is the in-memory repository.UserRepository.
type UserStore struct {
	mu      sync.Mutex
	records map[int64]model.User
	nextID  int64
}

var _ repository.UserRepository = (*UserStore)(nil)

func (s *UserStore) Create(_ context.Context, u *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	out := *u
	out.ID = s.nextID
	out.CreatedAt = time.Now().UTC()
	s.records[out.ID] = out
	return &out, nil
}

func (s *UserStore) FindByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.records {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// DocumentStore is the in-memory repository.DocumentRepository.
type DocumentStore struct {
	mu      sync.Mutex
	records map[int64]model.Document
	nextID  int64
}

var _ repository.DocumentRepository = (*DocumentStore)(nil)

func (s *DocumentStore) Create(_ context.Context, d *model.Document) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	out := *d
	out.ID = s.nextID
	out.UploadedAt = time.Now().UTC()
	s.records[out.ID] = out
	return &out, nil
}

func (s *DocumentStore) FindByID(_ context.Context, id int64) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (s *DocumentStore) ListByUser(_ context.Context, userID int64) ([]model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Document, 0)
	for _, d := range s.records {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *DocumentStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return repository.ErrNotFound
	}
	// The counter is never rewound, deleted ids are not reused.
	delete(s.records, id)
	return nil
}

// OrderStore is the in-memory repository.OrderRepository.
type OrderStore struct {
	mu      sync.Mutex
	records map[int64]model.Order
	nextID  int64
}

var _ repository.OrderRepository = (*OrderStore)(nil)

func (s *OrderStore) Create(_ context.Context, o *model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	out := *o
	out.ID = s.nextID
	now := time.Now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.records[out.ID] = out
	return &out, nil
}

func (s *OrderStore) FindByID(_ context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (s *OrderStore) FindByOrderID(_ context.Context, orderID string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.records {
		if o.OrderID == orderID {
			o := o
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *OrderStore) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0)
	for _, o := range s.records {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *OrderStore) UpdateStatus(_ context.Context, id int64, status string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	s.records[id] = o
	return &o, nil
}

// ResidentStore is the in-memory repository.ResidentRepository.
type ResidentStore struct {
	mu      sync.Mutex
	records map[int64]model.Resident
	nextID  int64
}

var _ repository.ResidentRepository = (*ResidentStore)(nil)

func (s *ResidentStore) Create(_ context.Context, r *model.Resident) (*model.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	out := *r
	out.ID = s.nextID
	s.records[out.ID] = out
	return &out, nil
}

func (s *ResidentStore) FindByID(_ context.Context, id int64) (*model.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (s *ResidentStore) List(_ context.Context, source string) ([]model.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Resident, 0)
	for _, r := range s.records {
		if source == "" || r.Source == source {
			out = append(out, r)
		}
	}
	return out, nil
}

// NotificationStore is the in-memory repository.NotificationRepository.
type NotificationStore struct {
	mu      sync.Mutex
	records map[int64]model.Notification
	nextID  int64
}

var _ repository.NotificationRepository = (*NotificationStore)(nil)

func (s *NotificationStore) Create(_ context.Context, n *model.Notification) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	out := *n
	out.ID = s.nextID
	out.IsRead = false
	out.CreatedAt = time.Now().UTC()
	s.records[out.ID] = out
	return &out, nil
}

func (s *NotificationStore) ListByUser(_ context.Context, userID int64) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, 0)
	for _, n := range s.records {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *NotificationStore) MarkRead(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.records[id]
	if !ok {
		return repository.ErrNotFound
	}
	n.IsRead = true
	s.records[id] = n
	return nil
}

// ActivityStore is the in-memory repository.ActivityRepository.
type ActivityStore struct {
	mu      sync.Mutex
	records map[int64]model.Activity
	nextID  int64
}

var _ repository.ActivityRepository = (*ActivityStore)(nil)

func (s *ActivityStore) Create(_ context.Context, a *model.Activity) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	out := *a
	out.ID = s.nextID
	out.CreatedAt = time.Now().UTC()
	s.records[out.ID] = out
	return &out, nil
}

func (s *ActivityStore) ListByUser(_ context.Context, userID int64) ([]model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Activity, 0)
	for _, a := range s.records {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	// Newest first; ids are assigned in creation order so they break
	// timestamp ties from the same clock tick.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
