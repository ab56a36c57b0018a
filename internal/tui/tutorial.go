package tui

import "strings"

type tutorialStep struct {
	title string
	lines []string
}

var tutorialSteps = []tutorialStep{
	{
		title: "Welcome to Sterling Club!",
		lines: []string{
			"This quick tour shows how to browse reservations and manage your account.",
			"Press ? at any time to restart it.",
		},
	},
	{
		title: "Step 1: Your dashboard",
		lines: []string{
			"Tabs across the top: reservations, members, rooms and rules.",
			"tab / shift+tab switches between them, ↑/↓ moves the cursor.",
		},
	},
	{
		title: "Step 2: Reservation details",
		lines: []string{
			"enter opens a reservation with its attendees and fees.",
			"x removes the selected attendee, d cancels the whole reservation.",
		},
	},
	{
		title: "Step 3: Understanding fees",
		lines: []string{
			"Some reservations carry fees from club rules (large parties, peak hours).",
			"The Rules tab lists every rule; the detail view shows the total.",
		},
	},
	{
		title: "Need help?",
		lines: []string{
			"r reloads everything from the club, y copies a reservation summary.",
			"You're all set. Press enter to get started.",
		},
	},
}

// tutorialModel is the first-run walkthrough.
type tutorialModel struct {
	visible bool
	step    int
}

func (m tutorialModel) last() bool {
	return m.step == len(tutorialSteps)-1
}

func (m *tutorialModel) start() {
	m.visible = true
	m.step = 0
}

// next advances and reports whether the walkthrough finished.
func (m *tutorialModel) next() bool {
	if m.last() {
		m.visible = false
		return true
	}
	m.step++
	return false
}

func (m *tutorialModel) prev() {
	if m.step > 0 {
		m.step--
	}
}

func (m tutorialModel) View() string {
	step := tutorialSteps[m.step]

	var b strings.Builder
	b.WriteString(titleStyle.Render(step.title))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(step.lines, "\n"))
	b.WriteString("\n\n")

	action := "→/enter: next"
	if m.last() {
		action = "enter: get started"
	}
	b.WriteString(helpStyle.Render(action + "  ←: back  esc: skip"))
	return overlayBoxStyle.Render(b.String())
}
