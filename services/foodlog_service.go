package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Yolianaadel/NutriPlan-Website/models"
	"github.com/Yolianaadel/NutriPlan-Website/storage"
	"github.com/Yolianaadel/NutriPlan-Website/utils"

	"github.com/sirupsen/logrus"
)

// FoodLogService owns the persisted collection of logged entries. All
// mutation funnels through it; the mutex keeps each operation's
// read-modify-write cycle atomic.
type FoodLogService struct {
	mu    sync.Mutex
	store storage.KV
	clock utils.Clock
}

func NewFoodLogService(store storage.KV, clock utils.Clock) *FoodLogService {
	return &FoodLogService{store: store, clock: clock}
}

// GetAll returns every persisted entry. Absent or corrupt storage reads as
// an empty log; entries without an id or date are dropped.
func (s *FoodLogService) GetAll() []models.FoodLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load reads the persisted collection. Callers hold the mutex.
func (s *FoodLogService) load() []models.FoodLogEntry {
	raw, ok, err := s.store.Get(storage.FoodLogKey)
	if err != nil {
		logrus.WithError(err).Error("failed to read food log")
		return []models.FoodLogEntry{}
	}
	if !ok {
		return []models.FoodLogEntry{}
	}
	var entries []models.FoodLogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logrus.WithError(err).Error("corrupt food log, treating as empty")
		return []models.FoodLogEntry{}
	}
	valid := entries[:0]
	for _, e := range entries {
		if e.ID == "" || e.Date == "" {
			logrus.WithField("name", e.Name).Warn("dropping malformed food log entry")
			continue
		}
		valid = append(valid, e)
	}
	return valid
}

// save persists the collection. Callers hold the mutex. Write failures are
// surfaced, never swallowed.
func (s *FoodLogService) save(entries []models.FoodLogEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode food log: %w", err)
	}
	if err := s.store.Set(storage.FoodLogKey, raw); err != nil {
		return fmt.Errorf("failed to persist food log: %w", err)
	}
	return nil
}

// GetByDate returns the entries logged on date, comparing only the
// calendar-day part of each stored date.
func (s *FoodLogService) GetByDate(date string) []models.FoodLogEntry {
	all := s.GetAll()
	matched := make([]models.FoodLogEntry, 0, len(all))
	for _, e := range all {
		if utils.DatePart(e.Date) == date {
			matched = append(matched, e)
		}
	}
	return matched
}

// Add stamps the entry with the current calendar day and appends it.
// Callers cannot backdate entries.
func (s *FoodLogService) Add(entry models.FoodLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.Date = utils.DayKey(s.clock.Now())
	return s.save(append(s.load(), entry))
}

// Remove deletes the entry with the given id. Unknown ids are a no-op.
func (s *FoodLogService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.load()
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.save(kept)
}

// ClearDate deletes every entry logged on date, leaving other days intact.
func (s *FoodLogService) ClearDate(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.load()
	kept := entries[:0]
	for _, e := range entries {
		if utils.DatePart(e.Date) != date {
			kept = append(kept, e)
		}
	}
	return s.save(kept)
}
