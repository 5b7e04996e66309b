// Package memory holds map-backed repositories. They back the service in
// tests and local runs without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

// Store implements every repository interface over one set of maps.
type Store struct {
	mu sync.RWMutex

	nextID int

	users      map[int]*domain.User
	profiles   map[int]*domain.Profile
	education  map[int]*domain.Education
	careers    map[int]*domain.Career
	families   map[int]*domain.Family
	prefs      map[int]*domain.Preference
	horoscopes map[int]*domain.Horoscope
	interests  map[int]*domain.Interest

	// profile insertion order, for deterministic pools
	profileOrder []int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:      map[int]*domain.User{},
		profiles:   map[int]*domain.Profile{},
		education:  map[int]*domain.Education{},
		careers:    map[int]*domain.Career{},
		families:   map[int]*domain.Family{},
		prefs:      map[int]*domain.Preference{},
		horoscopes: map[int]*domain.Horoscope{},
		interests:  map[int]*domain.Interest{},
		now:        time.Now,
	}
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

func (s *Store) Users() repository.UserRepository             { return userRepo{s} }
func (s *Store) Profiles() repository.ProfileRepository       { return profileRepo{s} }
func (s *Store) Preferences() repository.PreferenceRepository { return preferenceRepo{s} }
func (s *Store) Horoscopes() repository.HoroscopeRepository   { return horoscopeRepo{s} }
func (s *Store) Interests() repository.InterestRepository     { return interestRepo{s} }
func (s *Store) CompleteProfiles() repository.CompleteProfileReader {
	return completeProfileReader{s}
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	user.ID = r.s.id()
	user.CreatedAt = r.s.now()
	r.s.users[user.ID] = clone(user)
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clone(u), nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r userRepo) UpdateProfileComplete(_ context.Context, userID int, isComplete bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsProfileComplete = isComplete
	return nil
}

type profileRepo struct{ s *Store }

func (r profileRepo) Upsert(_ context.Context, p *domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	if old, ok := r.s.profiles[p.UserID]; ok {
		p.ID = old.ID
		p.CreatedAt = old.CreatedAt
	} else {
		p.ID = r.s.id()
		p.CreatedAt = now
		r.s.profileOrder = append(r.s.profileOrder, p.UserID)
	}
	p.UpdatedAt = now
	r.s.profiles[p.UserID] = clone(p)
	return nil
}

func (r profileRepo) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return clone(p), nil
}

func (r profileRepo) UpsertEducation(_ context.Context, e *domain.Education) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if old, ok := r.s.education[e.UserID]; ok {
		e.ID = old.ID
	} else {
		e.ID = r.s.id()
	}
	r.s.education[e.UserID] = clone(e)
	return nil
}

func (r profileRepo) GetEducation(_ context.Context, userID int) (*domain.Education, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.education[userID]
	if !ok {
		return nil, domain.ErrEducationNotFound
	}
	return clone(e), nil
}

func (r profileRepo) UpsertCareer(_ context.Context, c *domain.Career) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if old, ok := r.s.careers[c.UserID]; ok {
		c.ID = old.ID
	} else {
		c.ID = r.s.id()
	}
	r.s.careers[c.UserID] = clone(c)
	return nil
}

func (r profileRepo) GetCareer(_ context.Context, userID int) (*domain.Career, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.careers[userID]
	if !ok {
		return nil, domain.ErrCareerNotFound
	}
	return clone(c), nil
}

func (r profileRepo) UpsertFamily(_ context.Context, f *domain.Family) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if old, ok := r.s.families[f.UserID]; ok {
		f.ID = old.ID
	} else {
		f.ID = r.s.id()
	}
	r.s.families[f.UserID] = clone(f)
	return nil
}

func (r profileRepo) GetFamily(_ context.Context, userID int) (*domain.Family, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.families[userID]
	if !ok {
		return nil, domain.ErrFamilyNotFound
	}
	return clone(f), nil
}

type preferenceRepo struct{ s *Store }

func (r preferenceRepo) Upsert(_ context.Context, p *domain.Preference) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if old, ok := r.s.prefs[p.UserID]; ok {
		p.ID = old.ID
	} else {
		p.ID = r.s.id()
	}
	p.UpdatedAt = r.s.now()
	r.s.prefs[p.UserID] = clone(p)
	return nil
}

func (r preferenceRepo) GetByUserID(_ context.Context, userID int) (*domain.Preference, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.prefs[userID]
	if !ok {
		return nil, domain.ErrPreferencesNotFound
	}
	return clone(p), nil
}

type horoscopeRepo struct{ s *Store }

func (r horoscopeRepo) Upsert(_ context.Context, h *domain.Horoscope) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if old, ok := r.s.horoscopes[h.UserID]; ok {
		h.ID = old.ID
	} else {
		h.ID = r.s.id()
	}
	h.UpdatedAt = r.s.now()
	r.s.horoscopes[h.UserID] = clone(h)
	return nil
}

func (r horoscopeRepo) GetByUserID(_ context.Context, userID int) (*domain.Horoscope, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	h, ok := r.s.horoscopes[userID]
	if !ok {
		return nil, domain.ErrHoroscopeNotFound
	}
	return clone(h), nil
}

type interestRepo struct{ s *Store }

func (r interestRepo) Create(_ context.Context, i *domain.Interest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.interests {
		if existing.SenderID == i.SenderID && existing.ReceiverID == i.ReceiverID {
			return domain.ErrInterestAlreadySent
		}
	}
	now := r.s.now()
	i.ID = r.s.id()
	i.CreatedAt = now
	i.UpdatedAt = now
	r.s.interests[i.ID] = clone(i)
	return nil
}

func (r interestRepo) GetByID(_ context.Context, id int) (*domain.Interest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.interests[id]
	if !ok {
		return nil, domain.ErrInterestNotFound
	}
	return clone(i), nil
}

func (r interestRepo) GetBySenderAndReceiver(_ context.Context, senderID, receiverID int) (*domain.Interest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, i := range r.s.interests {
		if i.SenderID == senderID && i.ReceiverID == receiverID {
			return clone(i), nil
		}
	}
	return nil, domain.ErrInterestNotFound
}

func (r interestRepo) UpdateStatus(_ context.Context, id int, status domain.InterestStatus) (*domain.Interest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.interests[id]
	if !ok {
		return nil, domain.ErrInterestNotFound
	}
	if i.Status != domain.InterestPending {
		return nil, domain.ErrInterestNotPending
	}
	i.Status = status
	i.UpdatedAt = r.s.now()
	return clone(i), nil
}

func (r interestRepo) ListBySender(_ context.Context, senderID int) ([]*domain.Interest, error) {
	return r.list(func(i *domain.Interest) bool { return i.SenderID == senderID }), nil
}

func (r interestRepo) ListByReceiver(_ context.Context, receiverID int) ([]*domain.Interest, error) {
	return r.list(func(i *domain.Interest) bool { return i.ReceiverID == receiverID }), nil
}

// list returns matches newest first.
func (r interestRepo) list(keep func(*domain.Interest) bool) []*domain.Interest {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*domain.Interest{}
	for _, i := range r.s.interests {
		if keep(i) {
			out = append(out, clone(i))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return out
}

type completeProfileReader struct{ s *Store }

func (r completeProfileReader) GetCompleteProfile(_ context.Context, userID int) (*domain.CompleteProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.assemble(userID), nil
}

func (r completeProfileReader) GetAllCompleteProfiles(_ context.Context) ([]*domain.CompleteProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.CompleteProfile, 0, len(r.s.profileOrder))
	for _, userID := range r.s.profileOrder {
		out = append(out, r.assemble(userID))
	}
	return out, nil
}

// assemble expects the read lock to be held.
func (r completeProfileReader) assemble(userID int) *domain.CompleteProfile {
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil
	}
	return &domain.CompleteProfile{
		UserID:      userID,
		Profile:     clone(p),
		Education:   clone(r.s.education[userID]),
		Career:      clone(r.s.careers[userID]),
		Family:      clone(r.s.families[userID]),
		Preferences: clone(r.s.prefs[userID]),
		Horoscope:   clone(r.s.horoscopes[userID]),
	}
}
