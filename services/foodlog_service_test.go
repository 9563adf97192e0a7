package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Yolianaadel/NutriPlan-Website/models"
	"github.com/Yolianaadel/NutriPlan-Website/storage"
	"github.com/Yolianaadel/NutriPlan-Website/utils"
)

var testDay = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

var errDiskFull = errors.New("disk full")

// failingKV reads normally but refuses every write.
type failingKV struct {
	*storage.Memory
}

func (f *failingKV) Set(key string, value []byte) error { return errDiskFull }

func newTestLog(t *testing.T) (*FoodLogService, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	return NewFoodLogService(kv, utils.FixedClock{Time: testDay}), kv
}

func seedEntries(t *testing.T, kv *storage.Memory, entries []models.FoodLogEntry) {
	t.Helper()
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(storage.FoodLogKey, raw); err != nil {
		t.Fatal(err)
	}
}

func TestAddStampsCurrentDay(t *testing.T) {
	log, _ := newTestLog(t)

	entry := models.FoodLogEntry{
		ID:   "meal_1_1",
		Type: models.EntryTypeMeal,
		Name: "Casserole",
		Nutrition: models.NutritionProfile{
			Calories: 500, Protein: 30, Carbs: 40, Fat: 20,
		},
		Date: "1999-01-01", // callers cannot backdate
	}
	if err := log.Add(entry); err != nil {
		t.Fatalf("add: %v", err)
	}

	all := log.GetAll()
	if len(all) != 1 {
		t.Fatalf("got %d entries", len(all))
	}
	got := all[0]
	if got.Date != "2025-03-14" {
		t.Errorf("date not stamped: %q", got.Date)
	}
	if got.ID != entry.ID || got.Name != entry.Name || got.Nutrition != entry.Nutrition {
		t.Errorf("entry mutated on round-trip: %+v", got)
	}
}

func TestGetAllOnEmptyStorage(t *testing.T) {
	log, _ := newTestLog(t)
	if got := log.GetAll(); len(got) != 0 {
		t.Fatalf("expected empty log, got %v", got)
	}
}

func TestGetAllOnCorruptStorage(t *testing.T) {
	log, kv := newTestLog(t)
	if err := kv.Set(storage.FoodLogKey, []byte("{{not json")); err != nil {
		t.Fatal(err)
	}
	if got := log.GetAll(); len(got) != 0 {
		t.Fatalf("corrupt storage should read empty, got %v", got)
	}
}

func TestGetAllDropsMalformedEntries(t *testing.T) {
	log, kv := newTestLog(t)
	seedEntries(t, kv, []models.FoodLogEntry{
		{ID: "", Name: "no id", Date: "2025-03-14"},
		{ID: "ok", Name: "fine", Date: "2025-03-14"},
		{ID: "no-date", Name: "undated"},
	})
	all := log.GetAll()
	if len(all) != 1 || all[0].ID != "ok" {
		t.Fatalf("malformed entries not dropped: %v", all)
	}
}

func TestGetByDateMatchesDayPrefix(t *testing.T) {
	log, kv := newTestLog(t)
	seedEntries(t, kv, []models.FoodLogEntry{
		{ID: "a", Date: "2025-03-14"},
		{ID: "b", Date: "2025-03-14T18:45:00.000Z"},
		{ID: "c", Date: "2025-03-13"},
	})

	got := log.GetByDate("2025-03-14")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("prefix match wrong: %v", got)
	}
}

func TestRemove(t *testing.T) {
	log, kv := newTestLog(t)
	seedEntries(t, kv, []models.FoodLogEntry{
		{ID: "a", Date: "2025-03-14"},
		{ID: "b", Date: "2025-03-14"},
	})

	if err := log.Remove("a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got := log.GetByDate("2025-03-14")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("remove left %v", got)
	}

	// Unknown id is a no-op.
	if err := log.Remove("nope"); err != nil {
		t.Fatalf("remove unknown: %v", err)
	}
	if got := log.GetAll(); len(got) != 1 {
		t.Fatalf("remove of unknown id changed the log: %v", got)
	}
}

func TestWriteFailuresAreSurfaced(t *testing.T) {
	kv := &failingKV{Memory: storage.NewMemory()}
	seeded, err := json.Marshal([]models.FoodLogEntry{{ID: "a", Date: "2025-03-14"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Memory.Set(storage.FoodLogKey, seeded); err != nil {
		t.Fatal(err)
	}
	log := NewFoodLogService(kv, utils.FixedClock{Time: testDay})

	if err := log.Add(models.FoodLogEntry{ID: "b"}); !errors.Is(err, errDiskFull) {
		t.Errorf("Add swallowed the write failure: %v", err)
	}
	if err := log.Remove("a"); !errors.Is(err, errDiskFull) {
		t.Errorf("Remove swallowed the write failure: %v", err)
	}
	if err := log.ClearDate("2025-03-14"); !errors.Is(err, errDiskFull) {
		t.Errorf("ClearDate swallowed the write failure: %v", err)
	}
}

func TestClearDateLeavesOtherDays(t *testing.T) {
	log, kv := newTestLog(t)
	seedEntries(t, kv, []models.FoodLogEntry{
		{ID: "a", Date: "2025-03-13"},
		{ID: "b", Date: "2025-03-14"},
		{ID: "c", Date: "2025-03-14T09:00:00Z"},
		{ID: "d", Date: "2025-03-15"},
	})

	if err := log.ClearDate("2025-03-14"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all := log.GetAll()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "d" {
		t.Fatalf("adjacent days touched: %v", all)
	}
}
