package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindfuljournal/mindful/internal/constants"
	"github.com/mindfuljournal/mindful/internal/models"
	"github.com/mindfuljournal/mindful/internal/storage"
	"github.com/mindfuljournal/mindful/internal/validation"
)

var (
	// ErrEmptyText rejects reflections whose text is empty or whitespace.
	ErrEmptyText = errors.New("reflection text is empty")
	// ErrInvalidBackup signals an import document that failed shape validation.
	ErrInvalidBackup = errors.New("invalid backup document")
)

// Store owns the two persisted collections for the lifetime of a session:
// the reflections list and the day → record mapping. The in-memory copy is
// authoritative; the key-value substrate is overwritten after every
// mutation. Persistence failures are logged and otherwise ignored
// (fail-open), so a write that fails leaves memory and disk diverged
// until the next successful write.
//
// Store is not safe for concurrent use; callers drive it from a single
// goroutine, one operation at a time.
type Store struct {
	kv  storage.Provider
	log zerolog.Logger

	reflections []models.Reflection
	days        map[string]models.DailyRecord
	streak      int
	selectedDay string
}

// Input carries the caller-supplied fields of a new reflection. Everything
// else (id, title, date, timestamp) is derived at creation.
type Input struct {
	Text     string
	Category string
	Mood     models.Mood
}

func New(kv storage.Provider, log zerolog.Logger) *Store {
	return &Store{
		kv:          kv,
		log:         log,
		days:        make(map[string]models.DailyRecord),
		selectedDay: models.Today(),
	}
}

// Load reads both collections from the substrate. A missing or unparseable
// value for either key yields an empty collection for that key; only a
// substrate that cannot be opened at all fails the load.
func (s *Store) Load() error {
	if err := s.kv.Load(); err != nil {
		return err
	}

	s.reflections = nil
	if data, err := s.kv.Get(constants.KeyReflections); err == nil {
		var refs []models.Reflection
		if jsonErr := json.Unmarshal(data, &refs); jsonErr != nil {
			s.log.Warn().Err(jsonErr).Str("key", constants.KeyReflections).
				Msg("discarding unparseable reflections, starting empty")
		} else {
			s.reflections = refs
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.log.Warn().Err(err).Str("key", constants.KeyReflections).
			Msg("failed to read reflections, starting empty")
	}

	s.days = make(map[string]models.DailyRecord)
	if data, err := s.kv.Get(constants.KeySleepData); err == nil {
		var days map[string]models.DailyRecord
		if jsonErr := json.Unmarshal(data, &days); jsonErr != nil {
			s.log.Warn().Err(jsonErr).Str("key", constants.KeySleepData).
				Msg("discarding unparseable daily records, starting empty")
		} else if days != nil {
			s.days = days
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.log.Warn().Err(err).Str("key", constants.KeySleepData).
			Msg("failed to read daily records, starting empty")
	}

	sortReflections(s.reflections)
	s.recomputeStreak()
	return nil
}

// Close releases the underlying substrate.
func (s *Store) Close() error {
	return s.kv.Close()
}

// SelectDay changes the selected day. Viewing a day creates nothing; a
// record is materialized and persisted only when a ritual item is toggled
// or an insight is saved.
func (s *Store) SelectDay(day string) {
	s.selectedDay = day
}

// AddReflection creates and persists a new entry dated to the selected
// day. Empty or whitespace-only text is rejected with ErrEmptyText and no
// state change.
func (s *Store) AddReflection(in Input) (models.Reflection, error) {
	if isBlank(in.Text) {
		return models.Reflection{}, ErrEmptyText
	}

	category := in.Category
	if category == "" {
		category = constants.Categories[0]
	}

	ref := models.Reflection{
		ID:        uuid.New().String(),
		Title:     models.DeriveTitle(in.Text),
		Text:      in.Text,
		Category:  category,
		Mood:      in.Mood,
		Date:      s.selectedDay,
		Timestamp: time.Now().UnixMilli(),
	}

	s.reflections = append([]models.Reflection{ref}, s.reflections...)
	s.persistReflections()
	s.recomputeStreak()
	return ref, nil
}

// DeleteReflection removes the entry with the given id. Deleting an absent
// id is a no-op, not an error. The streak is deliberately not recomputed:
// deleting a past entry does not erase the day's credit.
func (s *Store) DeleteReflection(id string) {
	kept := s.reflections[:0]
	for _, r := range s.reflections {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.reflections = kept
	s.persistReflections()
}

// ToggleRitualItem flips the completed flag of one item in the selected
// day's ritual, materializing the day's record from the default template
// first if needed. Returns false without persisting when the id is not in
// the day's list.
func (s *Store) ToggleRitualItem(id string) bool {
	rec, ok := s.days[s.selectedDay]
	if !ok {
		rec = models.DailyRecord{Ritual: constants.DefaultRitual()}
	}

	idx := -1
	for i, item := range rec.Ritual {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	rec.Ritual[idx].Completed = !rec.Ritual[idx].Completed
	s.days[s.selectedDay] = rec
	s.persistDays()
	s.recomputeStreak()
	return true
}

// SaveDailyInsight attaches the insight to the selected day's record,
// stamping it with the current instant and overwriting any prior insight
// wholesale. A day materialized here gets an empty ritual list, not the
// default template. The streak is unaffected.
func (s *Store) SaveDailyInsight(insight models.Insight) {
	rec, ok := s.days[s.selectedDay]
	if !ok {
		rec = models.DailyRecord{Ritual: []models.RitualItem{}}
	}

	insight.GeneratedAt = time.Now().UnixMilli()
	rec.DailyInsight = &insight
	s.days[s.selectedDay] = rec
	s.persistDays()
}

// Export serializes the full state to the backup document format. It is a
// pure read; writing the result somewhere is the caller's business.
func (s *Store) Export() ([]byte, error) {
	doc := models.Backup{
		Reflections: s.Reflections(),
		SleepData:   s.Days(),
		ExportedAt:  time.Now().Format(time.RFC3339),
		AppVersion:  constants.AppVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// Import merges a backup document into the current state. The document
// must pass shape validation or nothing changes. Merge policy: reflections
// whose id already exists are dropped (existing entry wins); daily records
// are overwritten per day by the incoming record (incoming wins). Both
// collections are persisted and the streak recomputed.
func (s *Store) Import(data []byte) error {
	result := validation.ValidateBackup(data)
	if !result.OK() {
		return fmt.Errorf("%w: %s", ErrInvalidBackup, result.Problems[0].Detail)
	}
	doc := result.Backup

	existing := make(map[string]struct{}, len(s.reflections))
	for _, r := range s.reflections {
		existing[r.ID] = struct{}{}
	}

	var incoming []models.Reflection
	for _, r := range doc.Reflections {
		if _, ok := existing[r.ID]; !ok {
			incoming = append(incoming, r)
		}
	}

	merged := make([]models.Reflection, 0, len(incoming)+len(s.reflections))
	merged = append(merged, incoming...)
	merged = append(merged, s.reflections...)
	sortReflections(merged)

	mergedDays := make(map[string]models.DailyRecord, len(s.days)+len(doc.SleepData))
	for day, rec := range s.days {
		mergedDays[day] = rec
	}
	for day, rec := range doc.SleepData {
		mergedDays[day] = rec
	}

	s.reflections = merged
	s.days = mergedDays
	s.persistReflections()
	s.persistDays()
	s.recomputeStreak()
	return nil
}

// Reflections returns a snapshot copy, newest first.
func (s *Store) Reflections() []models.Reflection {
	out := make([]models.Reflection, len(s.reflections))
	copy(out, s.reflections)
	return out
}

// ReflectionsForDay returns the snapshot filtered to one calendar day.
func (s *Store) ReflectionsForDay(day string) []models.Reflection {
	var out []models.Reflection
	for _, r := range s.reflections {
		if r.Date == day {
			out = append(out, r)
		}
	}
	return out
}

// Days returns a deep snapshot of the day → record mapping.
func (s *Store) Days() map[string]models.DailyRecord {
	out := make(map[string]models.DailyRecord, len(s.days))
	for day, rec := range s.days {
		out[day] = rec.Clone()
	}
	return out
}

// Day returns a snapshot of one day's record.
func (s *Store) Day(day string) (models.DailyRecord, bool) {
	rec, ok := s.days[day]
	if !ok {
		return models.DailyRecord{}, false
	}
	return rec.Clone(), true
}

// DayOrTemplate returns the day's record, or a fresh record built from the
// default ritual template when the day has never been touched. The
// template record is for display; it is not added to the store.
func (s *Store) DayOrTemplate(day string) models.DailyRecord {
	if rec, ok := s.days[day]; ok {
		return rec.Clone()
	}
	return models.DailyRecord{Ritual: constants.DefaultRitual()}
}

func (s *Store) Streak() int {
	return s.streak
}

func (s *Store) SelectedDay() string {
	return s.selectedDay
}

func (s *Store) persistReflections() {
	data, err := json.Marshal(s.reflections)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to serialize reflections")
		return
	}
	if err := s.kv.Set(constants.KeyReflections, data); err != nil {
		s.log.Error().Err(err).Str("key", constants.KeyReflections).
			Msg("failed to persist reflections")
	}
}

func (s *Store) persistDays() {
	data, err := json.Marshal(s.days)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to serialize daily records")
		return
	}
	if err := s.kv.Set(constants.KeySleepData, data); err != nil {
		s.log.Error().Err(err).Str("key", constants.KeySleepData).
			Msg("failed to persist daily records")
	}
}

func (s *Store) recomputeStreak() {
	s.streak = ComputeStreak(s.reflections, s.days, models.Today())
}

func sortReflections(refs []models.Reflection) {
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Timestamp > refs[j].Timestamp
	})
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
