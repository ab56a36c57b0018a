package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/models"
)

// SignupModel is the registration screen: name, email, password and its
// confirmation. A successful signup also signs the user in, so the
// resulting [SignupResult] ends the login flow.
type SignupModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, auth service.AuthService) *SignupModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "name"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 254
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "repeat password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	return &SignupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(SignupResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			req := models.SignupRequest{
				Name:     strings.TrimSpace(m.inputs[0].Value()),
				Email:    strings.TrimSpace(m.inputs[1].Value()),
				Password: m.inputs[2].Value(),
			}
			if errMsg := validateSignup(req, m.inputs[3].Value()); errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func validateSignup(req models.SignupRequest, repeat string) string {
	switch {
	case req.Name == "" || req.Email == "" || req.Password == "":
		return "All fields are required"
	case !strings.Contains(req.Email, "@"):
		return "Enter a valid email"
	case req.Password != repeat:
		return "Passwords do not match"
	}
	return ""
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("Name             │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *SignupModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Signup(ctx, req)
		return SignupResult{User: user, Err: err}
	}
}

func (m *SignupModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
