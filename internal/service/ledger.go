package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/coach-cli/internal/model"
)

const SchemaVersion = 1

// Ledger owns all mutable coaching state: profile, phase override, food catalog,
// logged meals and weight history. It is not safe for concurrent use; the host
// serializes calls.
type Ledger struct {
	user          model.UserProfile
	phaseOverride *model.PhaseOverride
	foods         []model.FoodItem
	dailyMeals    map[string]model.DayMeals
	weightHistory []model.WeightSample

	now   func() time.Time
	newID func() string
}

type LedgerOption func(*Ledger)

// WithClock sets the clock used for "today" in weight samples and derived targets.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) { l.now = now }
}

func WithIDGenerator(gen func() string) LedgerOption {
	return func(l *Ledger) { l.newID = gen }
}

func NewLedger(opts ...LedgerOption) *Ledger {
	l := &Ledger{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(l)
	}
	l.Reset()
	return l
}

func defaultProfile() model.UserProfile {
	return model.UserProfile{ReverseWeek: 1}
}

// Reset wipes every piece of state back to a freshly constructed ledger.
func (l *Ledger) Reset() {
	l.user = defaultProfile()
	l.phaseOverride = nil
	l.foods = make([]model.FoodItem, 0)
	l.dailyMeals = map[string]model.DayMeals{}
	l.weightHistory = make([]model.WeightSample, 0)
}

func (l *Ledger) Profile() model.UserProfile {
	return l.user
}

type ProfileInput struct {
	Name                   *string
	BodyWeight             *float64
	MaintenanceCalories    *int
	EndHypertrophyCalories *int
	EndDeficitCalories     *int
	ReverseWeek            *int
}

// SetProfile merges the provided fields into the profile and marks setup complete.
// The profile is left untouched when a required field would be missing afterwards.
func (l *Ledger) SetProfile(in ProfileInput) error {
	next := l.user
	if in.Name != nil {
		next.Name = strings.TrimSpace(*in.Name)
	}
	if in.BodyWeight != nil {
		next.BodyWeight = *in.BodyWeight
	}
	if in.MaintenanceCalories != nil {
		next.MaintenanceCalories = *in.MaintenanceCalories
	}
	if in.EndHypertrophyCalories != nil {
		next.EndHypertrophyCalories = *in.EndHypertrophyCalories
	}
	if in.EndDeficitCalories != nil {
		next.EndDeficitCalories = *in.EndDeficitCalories
	}
	if in.ReverseWeek != nil {
		next.ReverseWeek = *in.ReverseWeek
	}

	if next.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if next.BodyWeight <= 0 {
		return fmt.Errorf("body weight must be > 0")
	}
	if next.MaintenanceCalories <= 0 {
		return fmt.Errorf("maintenance calories must be > 0")
	}
	if err := validateNonNegativeInt("end hypertrophy calories", next.EndHypertrophyCalories); err != nil {
		return err
	}
	if err := validateNonNegativeInt("end deficit calories", next.EndDeficitCalories); err != nil {
		return err
	}
	if next.ReverseWeek < 1 {
		return fmt.Errorf("reverse week must be >= 1")
	}
	next.SetupComplete = true
	l.user = next
	return nil
}

func (l *Ledger) IncrementReverseWeek() {
	if l.user.ReverseWeek < 1 {
		l.user.ReverseWeek = 1
	}
	l.user.ReverseWeek++
}

// SetPhaseOverride replaces date-based resolution. nil restores it.
func (l *Ledger) SetPhaseOverride(o *model.PhaseOverride) {
	if o == nil {
		l.phaseOverride = nil
		return
	}
	copied := *o
	l.phaseOverride = &copied
}

func (l *Ledger) PhaseOverride() *model.PhaseOverride {
	if l.phaseOverride == nil {
		return nil
	}
	copied := *l.phaseOverride
	return &copied
}

// CurrentPhase is recomputed on every call from the clock value and override.
func (l *Ledger) CurrentPhase(now time.Time) *model.Phase {
	return ResolvePhase(now, l.phaseOverride)
}

func (l *Ledger) CurrentMacros(now time.Time) (model.MacroTargets, bool) {
	return ComputeMacros(l.user, l.CurrentPhase(now))
}

func (l *Ledger) today() string {
	return l.now().Format(dateLayout)
}

// Snapshot returns a deep copy of the ledger state for persistence.
func (l *Ledger) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		SchemaVersion: SchemaVersion,
		User:          l.user,
		PhaseOverride: l.PhaseOverride(),
		Foods:         append(make([]model.FoodItem, 0, len(l.foods)), l.foods...),
		DailyMeals:    make(map[string]model.DayMeals, len(l.dailyMeals)),
		WeightHistory: append(make([]model.WeightSample, 0, len(l.weightHistory)), l.weightHistory...),
	}
	for date, day := range l.dailyMeals {
		snap.DailyMeals[date] = copyDayMeals(day)
	}
	now := l.now()
	if phase := l.CurrentPhase(now); phase != nil {
		snap.CurrentPhase = phase
		macros, _ := ComputeMacros(l.user, phase)
		snap.CurrentMacros = &macros
	}
	return snap
}

// FromSnapshot rebuilds a ledger. Derived fields in the snapshot are ignored.
func FromSnapshot(snap model.Snapshot, opts ...LedgerOption) (*Ledger, error) {
	version := snap.SchemaVersion
	if version == 0 {
		version = 1
	}
	if version > SchemaVersion {
		return nil, fmt.Errorf("unsupported ledger schema version %d (max %d)", snap.SchemaVersion, SchemaVersion)
	}
	l := NewLedger(opts...)
	l.user = snap.User
	if l.user.ReverseWeek < 1 {
		l.user.ReverseWeek = 1
	}
	l.SetPhaseOverride(snap.PhaseOverride)
	l.foods = append(l.foods, snap.Foods...)
	for date, day := range snap.DailyMeals {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("invalid meal date %q in snapshot (expected YYYY-MM-DD)", date)
		}
		if day.IsEmpty() {
			continue
		}
		l.dailyMeals[date] = copyDayMeals(day)
	}
	l.weightHistory = append(l.weightHistory, snap.WeightHistory...)
	return l, nil
}

func copyDayMeals(d model.DayMeals) model.DayMeals {
	out := model.DayMeals{}
	for _, slot := range model.MealSlots {
		out.SetEntries(slot, append(make([]model.MealEntry, 0, len(d.Entries(slot))), d.Entries(slot)...))
	}
	return out
}
