package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	dbm "cargocal/internal/models/db_models"
	"cargocal/internal/repositories"
	mem "cargocal/pkg/memcache"
)

// memStore backs the fake repositories with plain maps so service
// behavior can be tested without a database.
type memStore struct {
	calendars  map[uuid.UUID]*dbm.Calendar
	events     map[uuid.UUID]*dbm.CalendarEvent
	days       []dbm.EventDay
	charges    map[uuid.UUID]*dbm.EventCharge
	tracking   []dbm.ChargeTracking
	activities map[uuid.UUID]*dbm.Activity
	accounts   map[uuid.UUID]*dbm.Account
	colors     []dbm.UserColorConfig
}

func newMemStore() *memStore {
	return &memStore{
		calendars:  make(map[uuid.UUID]*dbm.Calendar),
		events:     make(map[uuid.UUID]*dbm.CalendarEvent),
		charges:    make(map[uuid.UUID]*dbm.EventCharge),
		activities: make(map[uuid.UUID]*dbm.Activity),
		accounts:   make(map[uuid.UUID]*dbm.Account),
	}
}

func (s *memStore) newID() uuid.UUID { return uuid.New() }

func (s *memStore) addAccount(name, role string) uuid.UUID {
	id := s.newID()
	s.accounts[id] = &dbm.Account{
		BaseModel: dbm.BaseModel{ID: id},
		Name:      name,
		Email:     name + "@cargocal.test",
		Role:      role,
	}
	return id
}

func (s *memStore) addActivity(name string) uuid.UUID {
	id := s.newID()
	s.activities[id] = &dbm.Activity{BaseModel: dbm.BaseModel{ID: id}, Name: name}
	return id
}

func (s *memStore) createCharge(calendarID, eventID, userID, actorID uuid.UUID, now time.Time) *dbm.EventCharge {
	charge := &dbm.EventCharge{
		BaseModel:       dbm.BaseModel{ID: s.newID()},
		CalendarID:      calendarID,
		CalendarEventID: eventID,
		UserID:          userID,
		Status:          dbm.ChargePending,
		AssignedAt:      now,
	}
	s.charges[charge.ID] = charge
	s.tracking = append(s.tracking, dbm.ChargeTracking{
		BaseModel:             dbm.BaseModel{ID: s.newID()},
		CalendarEventChargeID: charge.ID,
		FromStatus:            nil,
		ToStatus:              dbm.ChargePending,
		ChangedAt:             now,
		ChangedBy:             actorID,
	})
	return charge
}

// hydrate fills the preloaded associations the way the gorm repository
// would: sorted days, all charges including removed ones.
func (s *memStore) hydrate(event *dbm.CalendarEvent) *dbm.CalendarEvent {
	out := *event
	out.Days = nil
	out.Charges = nil
	for _, d := range s.days {
		if d.CalendarEventID == event.ID {
			out.Days = append(out.Days, d)
		}
	}
	sort.Slice(out.Days, func(i, j int) bool { return out.Days[i].Date.Before(out.Days[j].Date) })
	for _, c := range s.charges {
		if c.CalendarEventID == event.ID {
			out.Charges = append(out.Charges, *c)
		}
	}
	sort.Slice(out.Charges, func(i, j int) bool { return out.Charges[i].AssignedAt.Before(out.Charges[j].AssignedAt) })
	if event.ActivityID != nil {
		if a, ok := s.activities[*event.ActivityID]; ok {
			out.Activity = a
		}
	}
	return &out
}

type fakeEventRepo struct{ s *memStore }

func (r *fakeEventRepo) CreateEvent(_ context.Context, event *dbm.CalendarEvent, days []time.Time, responsibleIDs []uuid.UUID, actorID uuid.UUID) error {
	if event.ID == uuid.Nil {
		event.ID = r.s.newID()
	}
	r.s.events[event.ID] = event
	for _, d := range days {
		r.s.days = append(r.s.days, dbm.EventDay{
			BaseModel:       dbm.BaseModel{ID: r.s.newID()},
			CalendarID:      event.CalendarID,
			CalendarEventID: event.ID,
			Date:            d,
		})
	}
	now := time.Now()
	for _, userID := range responsibleIDs {
		r.s.createCharge(event.CalendarID, event.ID, userID, actorID, now)
		now = now.Add(time.Millisecond)
	}
	return nil
}

func (r *fakeEventRepo) GetEventByID(_ context.Context, eventID uuid.UUID) (*dbm.CalendarEvent, error) {
	event, ok := r.s.events[eventID]
	if !ok {
		return nil, nil
	}
	return r.s.hydrate(event), nil
}

func (r *fakeEventRepo) GetEventScoped(_ context.Context, eventID uuid.UUID, ownerID *uuid.UUID) (*dbm.CalendarEvent, error) {
	event, ok := r.s.events[eventID]
	if !ok {
		return nil, nil
	}
	if ownerID != nil {
		cal := r.s.calendars[event.CalendarID]
		if cal == nil || cal.UserID != *ownerID {
			return nil, nil
		}
	}
	return r.s.hydrate(event), nil
}

func (r *fakeEventRepo) ListEvents(_ context.Context, f repositories.EventFilter) ([]dbm.CalendarEvent, error) {
	var out []dbm.CalendarEvent
	for _, event := range r.s.events {
		h := r.s.hydrate(event)
		if !r.matches(h, f) {
			continue
		}
		out = append(out, *h)
	}
	return out, nil
}

func (r *fakeEventRepo) matches(event *dbm.CalendarEvent, f repositories.EventFilter) bool {
	if len(f.CalendarIDs) > 0 {
		found := false
		for _, id := range f.CalendarIDs {
			if event.CalendarID == id {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if f.VisibleToUserID != nil {
		cal := r.s.calendars[event.CalendarID]
		visible := cal != nil && cal.UserID == *f.VisibleToUserID
		if !visible && !holdsActiveCharge(event, *f.VisibleToUserID) {
			return false
		}
	}
	if f.StartDate != nil && f.EndDate != nil {
		inWindow := false
		for _, d := range event.Days {
			if !d.Date.Before(*f.StartDate) && !d.Date.After(*f.EndDate) {
				inWindow = true
			}
		}
		if !inWindow {
			return false
		}
	}
	if f.ResponsibleUserID != nil && !holdsActiveCharge(event, *f.ResponsibleUserID) {
		return false
	}
	if f.ChargeHolderID != nil && !holdsActiveCharge(event, *f.ChargeHolderID) {
		return false
	}
	if f.Status != nil {
		found := false
		for i := range event.Charges {
			if event.Charges[i].Active() && event.Charges[i].Status == *f.Status {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if f.Priority != nil && event.Priority != *f.Priority {
		return false
	}
	return true
}

func holdsActiveCharge(event *dbm.CalendarEvent, userID uuid.UUID) bool {
	for i := range event.Charges {
		if event.Charges[i].Active() && event.Charges[i].UserID == userID {
			return true
		}
	}
	return false
}

func (r *fakeEventRepo) SaveEvent(_ context.Context, event *dbm.CalendarEvent, newDays []time.Time, newResponsibles *[]uuid.UUID, actorID uuid.UUID) error {
	stored := r.s.events[event.ID]
	*stored = *event

	if newDays != nil {
		kept := r.s.days[:0]
		for _, d := range r.s.days {
			if d.CalendarEventID != event.ID {
				kept = append(kept, d)
			}
		}
		r.s.days = kept
		for _, d := range newDays {
			r.s.days = append(r.s.days, dbm.EventDay{
				BaseModel:       dbm.BaseModel{ID: r.s.newID()},
				CalendarID:      event.CalendarID,
				CalendarEventID: event.ID,
				Date:            d,
			})
		}
	}

	if newResponsibles != nil {
		now := time.Now()
		for _, c := range r.s.charges {
			if c.CalendarEventID == event.ID && c.Active() {
				removedAt := now
				c.RemovedAt = &removedAt
			}
		}
		for _, userID := range *newResponsibles {
			r.s.createCharge(event.CalendarID, event.ID, userID, actorID, now)
			now = now.Add(time.Millisecond)
		}
	}
	return nil
}

func (r *fakeEventRepo) SoftDeleteEvent(_ context.Context, eventID uuid.UUID) error {
	delete(r.s.events, eventID)
	return nil
}

func (r *fakeEventRepo) CountEventsByActivity(_ context.Context, activityID uuid.UUID) (int64, error) {
	var n int64
	for _, event := range r.s.events {
		if event.ActivityID != nil && *event.ActivityID == activityID {
			n++
		}
	}
	return n, nil
}

type fakeChargeRepo struct{ s *memStore }

func (r *fakeChargeRepo) GetChargeByID(_ context.Context, chargeID uuid.UUID) (*dbm.EventCharge, error) {
	charge, ok := r.s.charges[chargeID]
	if !ok {
		return nil, nil
	}
	out := *charge
	return &out, nil
}

func (r *fakeChargeRepo) GetActiveCharge(_ context.Context, eventID, userID uuid.UUID) (*dbm.EventCharge, error) {
	for _, c := range r.s.charges {
		if c.CalendarEventID == eventID && c.UserID == userID && c.Active() {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeChargeRepo) CountActiveCharges(_ context.Context, eventID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.s.charges {
		if c.CalendarEventID == eventID && c.Active() {
			n++
		}
	}
	return n, nil
}

func (r *fakeChargeRepo) ListActiveChargesByEvent(_ context.Context, eventID uuid.UUID) ([]dbm.EventCharge, error) {
	var out []dbm.EventCharge
	for _, c := range r.s.charges {
		if c.CalendarEventID == eventID && c.Active() {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.Before(out[j].AssignedAt) })
	return out, nil
}

func (r *fakeChargeRepo) CreateCharge(_ context.Context, calendarID, eventID, userID, actorID uuid.UUID) (*dbm.EventCharge, error) {
	charge := r.s.createCharge(calendarID, eventID, userID, actorID, time.Now())
	out := *charge
	return &out, nil
}

func (r *fakeChargeRepo) UpdateChargeStatus(_ context.Context, charge *dbm.EventCharge, from, to dbm.ChargeStatus, changedBy uuid.UUID) error {
	stored := r.s.charges[charge.ID]
	stored.Status = to
	charge.Status = to
	fromCopy := from
	r.s.tracking = append(r.s.tracking, dbm.ChargeTracking{
		BaseModel:             dbm.BaseModel{ID: r.s.newID()},
		CalendarEventChargeID: charge.ID,
		FromStatus:            &fromCopy,
		ToStatus:              to,
		ChangedAt:             time.Now(),
		ChangedBy:             changedBy,
	})
	return nil
}

func (r *fakeChargeRepo) SoftRemoveCharge(_ context.Context, chargeID uuid.UUID) error {
	if c, ok := r.s.charges[chargeID]; ok {
		now := time.Now()
		c.RemovedAt = &now
	}
	return nil
}

func (r *fakeChargeRepo) ListTrackingByCharge(_ context.Context, chargeID uuid.UUID) ([]dbm.ChargeTracking, error) {
	var out []dbm.ChargeTracking
	for _, t := range r.s.tracking {
		if t.CalendarEventChargeID == chargeID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChangedAt.Before(out[j].ChangedAt) })
	return out, nil
}

func (r *fakeChargeRepo) ListTrackingByEvent(_ context.Context, eventID uuid.UUID) ([]dbm.ChargeTracking, error) {
	var out []dbm.ChargeTracking
	for _, t := range r.s.tracking {
		charge, ok := r.s.charges[t.CalendarEventChargeID]
		if ok && charge.CalendarEventID == eventID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChangedAt.Before(out[j].ChangedAt) })
	return out, nil
}

type fakeCalendarRepo struct{ s *memStore }

func (r *fakeCalendarRepo) GetOrCreateByOwner(_ context.Context, userID uuid.UUID) (*dbm.Calendar, error) {
	for _, cal := range r.s.calendars {
		if cal.UserID == userID {
			return cal, nil
		}
	}
	cal := &dbm.Calendar{BaseModel: dbm.BaseModel{ID: r.s.newID()}, UserID: userID}
	r.s.calendars[cal.ID] = cal
	return cal, nil
}

func (r *fakeCalendarRepo) GetByID(_ context.Context, calendarID uuid.UUID) (*dbm.Calendar, error) {
	cal, ok := r.s.calendars[calendarID]
	if !ok {
		return nil, nil
	}
	return cal, nil
}

func (r *fakeCalendarRepo) ListOwnedIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, cal := range r.s.calendars {
		if cal.UserID == userID {
			out = append(out, cal.ID)
		}
	}
	return out, nil
}

type fakeActivityRepo struct{ s *memStore }

func (r *fakeActivityRepo) CreateActivity(_ context.Context, activity *dbm.Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = r.s.newID()
	}
	r.s.activities[activity.ID] = activity
	return nil
}

func (r *fakeActivityRepo) UpdateActivity(_ context.Context, activity *dbm.Activity) error {
	r.s.activities[activity.ID] = activity
	return nil
}

func (r *fakeActivityRepo) DeleteActivity(_ context.Context, activityID uuid.UUID) error {
	delete(r.s.activities, activityID)
	return nil
}

func (r *fakeActivityRepo) GetActivityByID(_ context.Context, activityID uuid.UUID) (*dbm.Activity, error) {
	activity, ok := r.s.activities[activityID]
	if !ok {
		return nil, nil
	}
	return activity, nil
}

func (r *fakeActivityRepo) ListActivities(_ context.Context) ([]dbm.Activity, error) {
	var out []dbm.Activity
	for _, a := range r.s.activities {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeAccountRepo struct{ s *memStore }

func (r *fakeAccountRepo) InsertTx(account *dbm.Account, _ context.Context) error {
	if account.ID == uuid.Nil {
		account.ID = r.s.newID()
	}
	r.s.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*dbm.Account, error) {
	account, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (r *fakeAccountRepo) FindByIds(_ context.Context, ids []uuid.UUID) ([]dbm.Account, error) {
	var out []dbm.Account
	for _, id := range ids {
		if a, ok := r.s.accounts[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*dbm.Account, error) {
	for _, a := range r.s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) UpdatePassword(_ context.Context, email string, passwordHash string) error {
	for _, a := range r.s.accounts {
		if a.Email == email {
			a.PasswordHash = passwordHash
		}
	}
	return nil
}

type fakeColorRepo struct{ s *memStore }

func (r *fakeColorRepo) UpsertColor(_ context.Context, calendarID, userID uuid.UUID, colorCode string) error {
	for i := range r.s.colors {
		if r.s.colors[i].CalendarID == calendarID && r.s.colors[i].UserID == userID {
			r.s.colors[i].ColorCode = colorCode
			return nil
		}
	}
	r.s.colors = append(r.s.colors, dbm.UserColorConfig{
		BaseModel:  dbm.BaseModel{ID: r.s.newID()},
		CalendarID: calendarID,
		UserID:     userID,
		ColorCode:  colorCode,
	})
	return nil
}

func (r *fakeColorRepo) GetColor(_ context.Context, calendarID, userID uuid.UUID) (*dbm.UserColorConfig, error) {
	for i := range r.s.colors {
		if r.s.colors[i].CalendarID == calendarID && r.s.colors[i].UserID == userID {
			out := r.s.colors[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeColorRepo) GetAnyColorForUser(_ context.Context, userID uuid.UUID) (*dbm.UserColorConfig, error) {
	for i := range r.s.colors {
		if r.s.colors[i].UserID == userID {
			out := r.s.colors[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeColorRepo) ListColorsByCalendar(_ context.Context, calendarID uuid.UUID) ([]dbm.UserColorConfig, error) {
	var out []dbm.UserColorConfig
	for i := range r.s.colors {
		if r.s.colors[i].CalendarID == calendarID {
			out = append(out, r.s.colors[i])
		}
	}
	return out, nil
}

// fakeMailService records outbound mail without sending anything.
type fakeMailService struct {
	assignments []string
	resets      []string
}

func (m *fakeMailService) SendAssignmentNotification(to, eventName, startDate, endDate string) error {
	m.assignments = append(m.assignments, to)
	return nil
}

func (m *fakeMailService) SendMailToResetPassword(to, token string) error {
	m.resets = append(m.resets, token)
	return nil
}

// testEnv wires the services under test against one shared memStore.
type testEnv struct {
	store    *memStore
	events   EventServiceInterface
	charges  ChargeServiceInterface
	tracking TrackingServiceInterface
	progress ProgressServiceInterface
	activity ActivityServiceInterface
	colors   ColorServiceInterface
	accounts AccountServiceInterface
	mail     *fakeMailService
	tokens   mem.ResetTokenStore
}

func newTestEnv() *testEnv {
	store := newMemStore()
	eventRepo := &fakeEventRepo{s: store}
	chargeRepo := &fakeChargeRepo{s: store}
	calendarRepo := &fakeCalendarRepo{s: store}
	activityRepo := &fakeActivityRepo{s: store}
	accountRepo := &fakeAccountRepo{s: store}
	colorRepo := &fakeColorRepo{s: store}
	mail := &fakeMailService{}
	tokens := mem.NewResetTokens()

	return &testEnv{
		store:    store,
		events:   NewEventService(eventRepo, calendarRepo, activityRepo),
		charges:  NewChargeService(chargeRepo, eventRepo),
		tracking: NewTrackingService(chargeRepo, eventRepo, accountRepo),
		progress: NewProgressService(eventRepo, colorRepo, accountRepo),
		activity: NewActivityService(activityRepo, eventRepo),
		colors:   NewColorService(colorRepo, calendarRepo),
		accounts: NewAccountService(accountRepo, mail, tokens),
		mail:     mail,
		tokens:   tokens,
	}
}
