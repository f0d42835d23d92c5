// Package theme keeps the active colour palette.
package theme

import (
	"errors"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/events"
	applog "spendwise/internal/log"
)

const (
	Light = "light"
	Dark  = "dark"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Palette is the set of styles the views render with.
type Palette struct {
	Name    string
	Header  lipgloss.Style
	Income  lipgloss.Style
	Expense lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Bar     lipgloss.Style
}

func palette(name, text, income, expense, muted, accent string) Palette {
	return Palette{
		Name:    name,
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Bold(true),
		Income:  lipgloss.NewStyle().Foreground(lipgloss.Color(income)),
		Expense: lipgloss.NewStyle().Foreground(lipgloss.Color(expense)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Bar:     lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
	}
}

// Builtin returns the light and dark palettes.
func Builtin() map[string]Palette {
	return map[string]Palette{
		Light: palette(Light, "#1e1e2e", "#2e7d32", "#c62828", "#6c6f85", "#1e66f5"),
		Dark:  palette(Dark, "#cdd6f4", "#a6e3a1", "#f38ba8", "#7f849c", "#89b4fa"),
	}
}

// Manager tracks the current theme.
type Manager struct {
	mu      sync.RWMutex
	themes  map[string]Palette
	current string
	bus     events.Publisher
	logger  *applog.Logger
}

// New selects initial, or Light when initial is unknown.
func New(themes map[string]Palette, initial string, bus events.Publisher, logger *applog.Logger) *Manager {
	if themes == nil {
		themes = Builtin()
	}
	if bus == nil {
		bus = events.Nop{}
	}
	if logger == nil {
		logger = applog.Discard()
	}
	if _, ok := themes[initial]; !ok {
		initial = Light
	}
	return &Manager{
		themes:  themes,
		current: initial,
		bus:     bus,
		logger:  logger.WithComponent(applog.ComponentTheme),
	}
}

// Apply switches to name and publishes ThemeChanged. Unknown names leave the
// current theme in place.
func (m *Manager) Apply(name string) error {
	m.mu.Lock()
	if _, ok := m.themes[name]; !ok {
		m.mu.Unlock()
		m.logger.Warn("Theme not found", applog.FieldTheme, name)
		return ErrUnknownTheme
	}
	changed := m.current != name
	m.current = name
	m.mu.Unlock()

	if changed {
		m.bus.Publish(events.Event{Topic: events.ThemeChanged, Value: name})
	}
	return nil
}

// Current returns the active theme name.
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Palette returns the active palette.
func (m *Manager) Palette() Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.themes[m.current]
}

// Available lists theme names in order.
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.themes))
	for name := range m.themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
