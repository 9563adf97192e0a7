package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Yolianaadel/NutriPlan-Website/models"
	"github.com/Yolianaadel/NutriPlan-Website/storage"

	"github.com/sirupsen/logrus"
)

// GoalService persists the user's daily targets wholesale and keeps the
// loaded value cached for the aggregation engine. Absence or a parse
// failure reads as nil: no goals configured, not zero goals.
type GoalService struct {
	mu    sync.Mutex
	store storage.KV
	goals *models.Goals
}

func NewGoalService(store storage.KV) *GoalService {
	s := &GoalService{store: store}
	s.goals = s.load()
	return s
}

func (s *GoalService) load() *models.Goals {
	raw, ok, err := s.store.Get(storage.GoalsKey)
	if err != nil {
		logrus.WithError(err).Error("failed to read goals")
		return nil
	}
	if !ok {
		return nil
	}
	var goals models.Goals
	if err := json.Unmarshal(raw, &goals); err != nil {
		logrus.WithError(err).Error("corrupt goals, treating as unset")
		return nil
	}
	return &goals
}

// Goals returns the configured daily targets, or nil when none are set.
func (s *GoalService) Goals() *models.Goals {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.goals == nil {
		return nil
	}
	g := *s.goals
	return &g
}

// SetGoals replaces the daily targets wholesale.
func (s *GoalService) SetGoals(goals models.Goals) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}
	if err := s.store.Set(storage.GoalsKey, raw); err != nil {
		return fmt.Errorf("failed to persist goals: %w", err)
	}
	s.goals = &goals
	return nil
}
