package tests

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/session"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory Session Store ───────────────────────────────────────────────────

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]session.Session)}
}

func (s *memSessionStore) Create(_ context.Context, userID uuid.UUID, role session.Role, pending bool) (string, error) {
	buf := make([]byte, 16)
	rand.Read(buf)
	token := hex.EncodeToString(buf)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session.Session{UserID: userID, Role: role, PendingAccessCode: pending}
	return token, nil
}

func (s *memSessionStore) Get(_ context.Context, token string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *memSessionStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// ── Collaborator Repository Stub ──────────────────────────────────────────────

type stubCollaboratorRepo struct {
	mu      sync.Mutex
	byBadge map[string]*model.Collaborator
}

func newStubCollaboratorRepo() *stubCollaboratorRepo {
	return &stubCollaboratorRepo{byBadge: make(map[string]*model.Collaborator)}
}

func (r *stubCollaboratorRepo) Create(_ context.Context, c *model.Collaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byBadge[c.BadgeNumber]; exists {
		return gorm.ErrDuplicatedKey
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.byBadge[c.BadgeNumber] = c
	return nil
}

func (r *stubCollaboratorRepo) FindByBadge(_ context.Context, badge string) (*model.Collaborator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byBadge[badge]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCollaboratorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Collaborator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byBadge {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCollaboratorRepo) List(_ context.Context) ([]model.Collaborator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Collaborator, 0, len(r.byBadge))
	for _, c := range r.byBadge {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCollaboratorRepo) ListActive(_ context.Context) ([]model.Collaborator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Collaborator, 0, len(r.byBadge))
	for _, c := range r.byBadge {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCollaboratorRepo) Update(_ context.Context, c *model.Collaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byBadge[c.BadgeNumber] = c
	return nil
}

func (r *stubCollaboratorRepo) SetAccessCode(_ context.Context, id uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byBadge {
		if c.ID == id {
			// Mirrors the guarded UPDATE: only the first writer wins
			if c.AccessCodeHash != nil {
				return repository.ErrAccessCodeAlreadySet
			}
			c.AccessCodeHash = &hash
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCollaboratorRepo) ResetAccessCode(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byBadge {
		if c.ID == id {
			c.AccessCodeHash = nil
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCollaboratorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byBadge {
		if c.ID == id {
			c.IsActive = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCollaboratorRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byBadge {
		if c.ID == id {
			c.IsActive = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Admin Repository Stub ─────────────────────────────────────────────────────

type stubAdminRepo struct {
	mu     sync.Mutex
	byName map[string]*model.Administrator
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{byName: make(map[string]*model.Administrator)}
}

func (r *stubAdminRepo) Create(_ context.Context, a *model.Administrator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[a.Username]; exists {
		return gorm.ErrDuplicatedKey
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.byName[a.Username] = a
	return nil
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*model.Administrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byName[username]
	if !ok || !a.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Administrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byName {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) List(_ context.Context) ([]model.Administrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Administrator, 0, len(r.byName))
	for _, a := range r.byName {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAdminRepo) Update(_ context.Context, a *model.Administrator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[a.Username] = a
	return nil
}

func (r *stubAdminRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byName {
		if a.ID == id {
			a.IsActive = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byName {
		if a.ID == id {
			a.IsActive = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Leave Request Repository Stub ─────────────────────────────────────────────

type stubLeaveRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*model.LeaveRequest
}

func newStubLeaveRepo() *stubLeaveRepo {
	return &stubLeaveRepo{requests: make(map[uuid.UUID]*model.LeaveRequest)}
}

func (r *stubLeaveRepo) Create(_ context.Context, lr *model.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lr.ID == uuid.Nil {
		lr.ID = uuid.New()
	}
	lr.CreatedAt = time.Now()
	r.requests[lr.ID] = lr
	return nil
}

func (r *stubLeaveRepo) FindByID(_ context.Context, id uuid.UUID) (*model.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lr, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return lr, nil
}

func (r *stubLeaveRepo) ListByCollaborator(_ context.Context, id uuid.UUID) ([]model.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LeaveRequest
	for _, lr := range r.requests {
		if lr.CollaboratorID == id {
			out = append(out, *lr)
		}
	}
	return out, nil
}

func (r *stubLeaveRepo) ListPending(_ context.Context) ([]model.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LeaveRequest
	for _, lr := range r.requests {
		if lr.Status == model.LeaveStatusPending {
			out = append(out, *lr)
		}
	}
	return out, nil
}

func (r *stubLeaveRepo) List(_ context.Context) ([]model.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LeaveRequest
	for _, lr := range r.requests {
		out = append(out, *lr)
	}
	return out, nil
}

func (r *stubLeaveRepo) Update(_ context.Context, lr *model.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[lr.ID] = lr
	return nil
}

func (r *stubLeaveRepo) CountPending(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, lr := range r.requests {
		if lr.Status == model.LeaveStatusPending {
			n++
		}
	}
	return n, nil
}

// ── Notification Repository Stub ──────────────────────────────────────────────

type stubNotificationRepo struct {
	mu            sync.Mutex
	notifications map[uuid.UUID]*model.Notification
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[uuid.UUID]*model.Notification)}
}

func (r *stubNotificationRepo) CreateBatch(_ context.Context, ns []model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range ns {
		n := ns[i]
		if n.ID == uuid.Nil {
			n.ID = uuid.New()
		}
		n.CreatedAt = time.Now()
		r.notifications[n.ID] = &n
	}
	return nil
}

func (r *stubNotificationRepo) ListForCollaborator(_ context.Context, id uuid.UUID) ([]model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Notification
	for _, n := range r.notifications {
		if n.CollaboratorID != nil && *n.CollaboratorID == id {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) ListForAdmin(_ context.Context, id uuid.UUID) ([]model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Notification
	for _, n := range r.notifications {
		if n.AdminID != nil && *n.AdminID == id {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkReadForCollaborator(_ context.Context, owner uuid.UUID, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for _, id := range ids {
		n, ok := r.notifications[id]
		if ok && n.CollaboratorID != nil && *n.CollaboratorID == owner {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (r *stubNotificationRepo) MarkReadForAdmin(_ context.Context, owner uuid.UUID, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for _, id := range ids {
		n, ok := r.notifications[id]
		if ok && n.AdminID != nil && *n.AdminID == owner {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

// ── Banner Repository Stub ────────────────────────────────────────────────────

type stubBannerRepo struct {
	mu      sync.Mutex
	banners []model.InfoBanner
	fail    error // when set, every read fails
}

func (r *stubBannerRepo) Create(_ context.Context, b *model.InfoBanner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.banners = append(r.banners, *b)
	return nil
}

func (r *stubBannerRepo) ListActive(_ context.Context) ([]model.InfoBanner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	var out []model.InfoBanner
	for _, b := range r.banners {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBannerRepo) List(_ context.Context) ([]model.InfoBanner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	return append([]model.InfoBanner(nil), r.banners...), nil
}

func (r *stubBannerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InfoBanner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.banners {
		if r.banners[i].ID == id {
			return &r.banners[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBannerRepo) Update(_ context.Context, b *model.InfoBanner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.banners {
		if r.banners[i].ID == b.ID {
			r.banners[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubBannerRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.banners {
		if r.banners[i].ID == id {
			r.banners = append(r.banners[:i], r.banners[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Time Entry Repository Stub ────────────────────────────────────────────────

type stubTimeEntryRepo struct {
	mu      sync.Mutex
	entries []model.TimeEntry
	collabs *stubCollaboratorRepo
}

func (r *stubTimeEntryRepo) CreateWithBalance(ctx context.Context, e *model.TimeEntry) error {
	r.mu.Lock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	r.entries = append(r.entries, *e)
	r.mu.Unlock()

	if r.collabs != nil {
		c, err := r.collabs.FindByID(ctx, e.CollaboratorID)
		if err != nil {
			return err
		}
		c.BalanceHours = c.BalanceHours.Add(e.BalanceHours)
	}
	return nil
}

func (r *stubTimeEntryRepo) ListByCollaborator(_ context.Context, id uuid.UUID) ([]model.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.TimeEntry
	for _, e := range r.entries {
		if e.CollaboratorID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

// ── Announcement Repository Stub ──────────────────────────────────────────────

type stubAnnouncementRepo struct {
	mu            sync.Mutex
	announcements []model.Announcement
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	r.announcements = append(r.announcements, *a)
	return nil
}

func (r *stubAnnouncementRepo) List(_ context.Context) ([]model.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Announcement(nil), r.announcements...), nil
}

// ── E-mail Dispatcher Fake ────────────────────────────────────────────────────

type fakeDispatcher struct {
	mu   sync.Mutex
	sent []worker.NotifyEmailPayload
}

func (d *fakeDispatcher) EnqueueNotifyEmail(_ context.Context, p worker.NotifyEmailPayload) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, p)
	return nil
}
