package themes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/goccy/go-json"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/storage"
)

// StateKey is the storage key under which the store persists its snapshot.
const StateKey = "theme-generator-state"

// MaxHistory bounds the number of history entries kept.
const MaxHistory = 10

// CurrentVariant selects the effective theme/layout pair in Select.
const CurrentVariant = "current"

const persistTimeout = 5 * time.Second

// Snapshot is a read-only copy of the store state.
type Snapshot struct {
	CurrentTheme  ThemeConfig    `json:"currentTheme"`
	CurrentLayout LayoutConfig   `json:"currentLayout"`
	PreviewTheme  *ThemeConfig   `json:"previewTheme,omitempty"`
	PreviewLayout *LayoutConfig  `json:"previewLayout,omitempty"`
	History       []HistoryEntry `json:"history"`
	CustomThemes  []ThemeConfig  `json:"customThemes"`
	CustomLayouts []LayoutConfig `json:"customLayouts"`
	Settings      Settings       `json:"settings"`
}

// persisted is the stored document. Every member is optional so partial
// documents only replace what they carry.
type persisted struct {
	CurrentTheme  *ThemeConfig   `json:"currentTheme,omitempty"`
	CurrentLayout *LayoutConfig  `json:"currentLayout,omitempty"`
	CustomThemes  []ThemeConfig  `json:"customThemes,omitempty"`
	CustomLayouts []LayoutConfig `json:"customLayouts,omitempty"`
	History       []HistoryEntry `json:"history,omitempty"`
	Settings      *Settings      `json:"settings,omitempty"`
}

// Store owns the presentation state. Readers get copies; every change
// replaces values instead of editing them. It is safe for concurrent use.
type Store struct {
	// saveMu orders commits with their saves; taken before mu.
	saveMu sync.Mutex

	mu            sync.RWMutex
	current       ThemeConfig
	currentLayout LayoutConfig
	preview       *ThemeConfig
	previewLayout *LayoutConfig
	history       []HistoryEntry
	customThemes  []ThemeConfig
	customLayouts []LayoutConfig
	settings      Settings
	presets       []Preset

	slot   storage.Slot
	logger *slog.Logger
	now    func() time.Time
	rng    *rand.Rand

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// Option customises a Store.
type Option func(*Store)

// WithSlot persists state through slot. Without it nothing is persisted.
func WithSlot(slot storage.Slot) Option {
	return func(s *Store) {
		s.slot = slot
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRand overrides the random source used by the generators.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithPresets replaces the built-in preset catalogue.
func WithPresets(presets []Preset) Option {
	return func(s *Store) {
		s.presets = make([]Preset, len(presets))
		for i, preset := range presets {
			s.presets[i] = preset.clone()
		}
	}
}

// NewStore builds a store seeded with defaults and loads the persisted
// snapshot once. Missing or unreadable state is logged and ignored.
func NewStore(ctx context.Context, opts ...Option) *Store {
	s := &Store{
		current:       DefaultTheme(),
		currentLayout: DefaultLayout(),
		settings:      DefaultSettings(),
		presets:       DefaultPresets(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	if s.slot == nil {
		return
	}
	data, err := s.slot.Load(ctx, StateKey)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("theme state load failed", slog.Any("error", err))
		return
	}
	var doc persisted
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("theme state is corrupt, using defaults", slog.Any("error", err))
		return
	}
	if doc.CurrentTheme != nil {
		s.current = *doc.CurrentTheme
	}
	if doc.CurrentLayout != nil {
		s.currentLayout = *doc.CurrentLayout
	}
	if doc.CustomThemes != nil {
		s.customThemes = doc.CustomThemes
	}
	if doc.CustomLayouts != nil {
		s.customLayouts = doc.CustomLayouts
	}
	if doc.History != nil {
		s.history = trimHistory(doc.History)
	}
	if doc.Settings != nil {
		s.settings = *doc.Settings
		if !s.settings.RandomizationLevel.Valid() {
			s.settings.RandomizationLevel = LevelModerate
		}
	}
	s.logger.Debug("theme state loaded", slog.String("theme", s.current.ID), slog.String("layout", s.currentLayout.ID))
}

// CurrentTheme returns the staged preview when present, else the committed
// theme.
func (s *Store) CurrentTheme() ThemeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.preview != nil {
		return *s.preview
	}
	return s.current
}

// CurrentLayout is CurrentTheme for layouts.
func (s *Store) CurrentLayout() LayoutConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.previewLayout != nil {
		return *s.previewLayout
	}
	return s.currentLayout
}

// SetTheme records the committed pair in history, commits t and drops a
// staged theme preview.
func (s *Store) SetTheme(t ThemeConfig) {
	s.commit(func() {
		s.pushHistory()
		s.current = t
		s.preview = nil
	})
	s.logger.Debug("theme set", slog.String("theme", t.ID))
}

func (s *Store) SetLayout(l LayoutConfig) {
	s.commit(func() {
		s.pushHistory()
		s.currentLayout = l
		s.previewLayout = nil
	})
	s.logger.Debug("layout set", slog.String("layout", l.ID))
}

// PreviewTheme stages t without committing it.
func (s *Store) PreviewTheme(t ThemeConfig) {
	s.stage(func() { s.preview = &t })
}

func (s *Store) PreviewLayout(l LayoutConfig) {
	s.stage(func() { s.previewLayout = &l })
}

// ApplyPreview commits whatever is staged, with a single history entry. It
// reports false when nothing was staged.
func (s *Store) ApplyPreview() bool {
	applied := false
	s.commitIf(func() bool {
		if s.preview == nil && s.previewLayout == nil {
			return false
		}
		s.pushHistory()
		if s.preview != nil {
			s.current = *s.preview
		}
		if s.previewLayout != nil {
			s.currentLayout = *s.previewLayout
		}
		s.preview, s.previewLayout = nil, nil
		applied = true
		return true
	})
	return applied
}

// CancelPreview discards staged values.
func (s *Store) CancelPreview() {
	s.stage(func() { s.preview, s.previewLayout = nil, nil })
}

// Presets returns the preset catalogue.
func (s *Store) Presets() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preset, len(s.presets))
	for i, preset := range s.presets {
		out[i] = preset.clone()
	}
	return out
}

func (s *Store) Preset(id string) (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FindPreset(s.presets, id)
}

// ApplyPreset commits the preset pair. Unknown ids change nothing.
func (s *Store) ApplyPreset(id string) bool {
	preset, ok := s.Preset(id)
	if !ok {
		return false
	}
	s.commit(func() {
		s.pushHistory()
		s.current, s.currentLayout = preset.Theme, preset.Layout
		s.preview, s.previewLayout = nil, nil
	})
	s.logger.Debug("preset applied", slog.String("preset", id))
	return true
}

// ResetToDefault commits the default pair.
func (s *Store) ResetToDefault() {
	s.commit(func() {
		s.pushHistory()
		s.current, s.currentLayout = DefaultTheme(), DefaultLayout()
		s.preview, s.previewLayout = nil, nil
	})
}

// RestoreFromHistory commits history entry i without recording a new
// entry. Out of range indexes change nothing.
func (s *Store) RestoreFromHistory(i int) bool {
	return s.commitIf(func() bool {
		if i < 0 || i >= len(s.history) {
			return false
		}
		entry := s.history[i]
		s.current, s.currentLayout = entry.Theme, entry.Layout
		s.preview, s.previewLayout = nil, nil
		return true
	})
}

// SaveCustomTheme appends t to the custom theme library.
func (s *Store) SaveCustomTheme(t ThemeConfig) {
	s.commit(func() {
		s.customThemes = append(append([]ThemeConfig{}, s.customThemes...), t)
	})
}

func (s *Store) SaveCustomLayout(l LayoutConfig) {
	s.commit(func() {
		s.customLayouts = append(append([]LayoutConfig{}, s.customLayouts...), l)
	})
}

// UpdateSettings applies patch and returns the resulting settings.
func (s *Store) UpdateSettings(patch SettingsPatch) Settings {
	var out Settings
	s.commit(func() {
		s.settings = patch.apply(s.settings)
		out = s.settings
	})
	return out
}

func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// GenerateRandomTheme generates a theme at the configured randomization
// level. With auto-apply it is committed, with preview mode it is staged,
// otherwise it is only returned.
func (s *Store) GenerateRandomTheme() ThemeConfig {
	s.mu.Lock()
	settings := s.settings
	t := GenerateRandomTheme(settings.RandomizationLevel, s.rng, s.now())
	s.mu.Unlock()

	switch {
	case settings.AutoApply:
		s.SetTheme(t)
	case settings.PreviewMode:
		s.PreviewTheme(t)
	}
	return t
}

func (s *Store) GenerateRandomLayout() LayoutConfig {
	s.mu.Lock()
	settings := s.settings
	l := GenerateRandomLayout(settings.RandomizationLevel, s.rng, s.now())
	s.mu.Unlock()

	switch {
	case settings.AutoApply:
		s.SetLayout(l)
	case settings.PreviewMode:
		s.PreviewLayout(l)
	}
	return l
}

// Snapshot copies the full state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// RendererConfig adapts the effective pair for renderers.
func (s *Store) RendererConfig() *theme.RendererConfig {
	return RendererConfig(s.CurrentTheme(), s.CurrentLayout())
}

// Select resolves a go-theme selection over the preset catalogue plus the
// effective pair, published as the CurrentVariant variant. An empty variant
// means CurrentVariant.
func (s *Store) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && name != ManifestName {
		return nil, fmt.Errorf("themes: unknown theme %q", name)
	}
	if variant == "" {
		variant = CurrentVariant
	}
	manifest := Manifest(s.Presets())
	manifest.Variants[CurrentVariant] = theme.Variant{Tokens: Tokens(s.CurrentTheme(), s.CurrentLayout())}
	if _, ok := manifest.Variants[variant]; !ok {
		return nil, fmt.Errorf("themes: unknown variant %q", variant)
	}
	return &theme.Selection{Theme: ManifestName, Variant: variant, Manifest: manifest}, nil
}

// Subscribe calls fn with a snapshot after every change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func(Snapshot))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		CurrentTheme:  s.current,
		CurrentLayout: s.currentLayout,
		History:       append([]HistoryEntry{}, s.history...),
		CustomThemes:  append([]ThemeConfig{}, s.customThemes...),
		CustomLayouts: append([]LayoutConfig{}, s.customLayouts...),
		Settings:      s.settings,
	}
	if s.preview != nil {
		t := *s.preview
		snap.PreviewTheme = &t
	}
	if s.previewLayout != nil {
		l := *s.previewLayout
		snap.PreviewLayout = &l
	}
	return snap
}

// pushHistory must run with mu held.
func (s *Store) pushHistory() {
	entry := HistoryEntry{Theme: s.current, Layout: s.currentLayout, Timestamp: s.now().UnixMilli()}
	s.history = trimHistory(append(append([]HistoryEntry{}, s.history...), entry))
}

func trimHistory(history []HistoryEntry) []HistoryEntry {
	if len(history) <= MaxHistory {
		return history
	}
	return append([]HistoryEntry{}, history[len(history)-MaxHistory:]...)
}

func (s *Store) commit(fn func()) {
	s.commitIf(func() bool {
		fn()
		return true
	})
}

// commitIf runs fn under the lock and, when it reports a change, persists
// and notifies.
func (s *Store) commitIf(fn func() bool) bool {
	s.saveMu.Lock()
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		s.saveMu.Unlock()
		return false
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	s.saveMu.Unlock()
	s.notify(snap)
	return true
}

// stage changes preview state only, which is never persisted.
func (s *Store) stage(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Store) persist(snap Snapshot) {
	if s.slot == nil || !snap.Settings.PersistSettings {
		return
	}
	data, err := json.Marshal(persisted{
		CurrentTheme:  &snap.CurrentTheme,
		CurrentLayout: &snap.CurrentLayout,
		CustomThemes:  snap.CustomThemes,
		CustomLayouts: snap.CustomLayouts,
		History:       snap.History,
		Settings:      &snap.Settings,
	})
	if err != nil {
		s.logger.Warn("theme state encode failed", slog.Any("error", err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.slot.Save(ctx, StateKey, data); err != nil {
		s.logger.Warn("theme state save failed", slog.Any("error", err))
	}
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
