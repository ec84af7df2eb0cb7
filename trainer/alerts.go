package trainer

import (
	"slices"
	"time"
)

type (
	// Alerts is the queue of short-lived feedback messages shown to the
	// user. Every alert counts down its remaining duration as the frame driver
	// calls Update, and disappears when it runs out.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name     string
		Priority AlertPriority
		Message  string
		Duration time.Duration
	}

	AlertPriority int
)

const (
	None AlertPriority = iota
	Info
	Warning
	Error
)

const maxAlerts = 8

var DefaultAlertDuration = 2 * time.Second

// Update counts down the alerts by d and removes the expired ones. Returns
// true if there are still alerts to show, i.e. the display needs redrawing.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	j := 0
	for _, a := range m.alerts {
		a.Duration -= d
		if a.Duration > 0 {
			m.alerts[j] = a
			j++
		}
	}
	clear(m.alerts[j:])
	m.alerts = m.alerts[:j]
	return j > 0
}

// Iterate yields the alerts, newest first.
func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i := len(m.alerts) - 1; i >= 0; i-- {
		if !yield(len(m.alerts)-1-i, m.alerts[i]) {
			return
		}
	}
}

// Current returns the newest alert. Priority only decides how the stacked
// alerts are drawn.
func (m *Alerts) Current() (Alert, bool) {
	if len(m.alerts) == 0 {
		return Alert{}, false
	}
	return m.alerts[len(m.alerts)-1], true
}

// Remove drops the alert with the given name, if any.
func (m *Alerts) Remove(name string) {
	m.alerts = slices.DeleteFunc(m.alerts, func(a Alert) bool { return a.Name == name })
}

func (m *Alerts) Len() int { return len(m.alerts) }

func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Priority: priority,
		Message:  message,
		Duration: DefaultAlertDuration,
	})
}

func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: DefaultAlertDuration,
	})
}

// AddAlert queues an alert. A named alert replaces the previous alert with
// the same name, so repeated actions do not pile up messages.
func (m *Alerts) AddAlert(a Alert) {
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
				break
			}
		}
	}
	if len(m.alerts) >= maxAlerts {
		m.alerts = append(m.alerts[:0], m.alerts[1:]...)
	}
	m.alerts = append(m.alerts, a)
}
