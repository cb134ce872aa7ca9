package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTimeout = 2 * time.Second
	historyWidth  = 48
)

type verifyModel struct {
	ctx       context.Context
	verifier  service.ClientVerifyService
	buildInfo models.AppBuildInfo

	input   textinput.Model
	last    *models.VerificationResult
	history []models.VerificationResult
	idx     int
	loading bool
	status  string
	errMsg  string

	showBuildInfo bool
	serverVersion string
}

func newVerifyModel(ctx context.Context, verifier service.ClientVerifyService, buildInfo models.AppBuildInfo) verifyModel {
	input := textinput.New()
	input.Placeholder = "Product ID"
	input.CharLimit = 0
	input.Width = historyWidth
	input.Focus()

	return verifyModel{
		ctx:       ctx,
		verifier:  verifier,
		buildInfo: buildInfo,
		input:     input,
		history:   verifier.History(),
	}
}

func (m verifyModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadVersion())
}

func (m verifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		result := msg.result
		m.last = &result
		m.history = m.verifier.History()
		m.idx = 0
		m.errMsg = ""
		m.input.SetValue("")
		return m, nil
	case versionLoadedMsg:
		if msg.err == nil {
			m.serverVersion = msg.version.Version
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Clipboard unavailable: %v", msg.err)
			return m, nil
		}
		m.status = "Copied " + msg.productID
		return m, clearStatusAfter(statusTimeout)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m verifyModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.esc):
		m.input.SetValue("")
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, m.cmdVerify(m.input.Value())
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.history)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		if selected, ok := m.selected(); ok {
			return m, cmdCopy(selected.ProductID)
		}
		return m, nil
	case key.Matches(msg, keys.reuse):
		if selected, ok := m.selected(); ok {
			m.input.SetValue(selected.ProductID)
			m.input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m verifyModel) selected() (models.VerificationResult, bool) {
	if m.idx < 0 || m.idx >= len(m.history) {
		return models.VerificationResult{}, false
	}
	return m.history[m.idx], true
}

func (m verifyModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Checking the ledger...\n")
	case m.last != nil:
		b.WriteString(renderResult(*m.last))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\nHistory\n")
	if len(m.history) == 0 {
		b.WriteString(helpStyle.Render("  nothing verified yet"))
		b.WriteString("\n")
	}
	for i, r := range m.history {
		line := fmt.Sprintf("%-12s %s", statusLabel(r), fitText(r.ProductID, historyWidth))
		if i == m.idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("VERIFY PRODUCT", b.String(),
		"enter: verify  ↑/↓: history  tab: reuse  ctrl+y: copy id  f1: about  esc: clear")
}

func renderResult(r models.VerificationResult) string {
	if !r.Genuine() {
		return unregisteredStyle.Render("NOT REGISTERED") + "\n" +
			fmt.Sprintf("%q is not on the ledger.", r.ProductID)
	}

	return genuineStyle.Render("GENUINE") + "\n" +
		"Product:      " + r.ProductID + "\n" +
		"Name:         " + r.Name + "\n" +
		"Manufacturer: " + r.Manufacturer
}

func statusLabel(r models.VerificationResult) string {
	if r.Genuine() {
		return "genuine"
	}
	return "unregistered"
}

func (m verifyModel) cmdVerify(productID string) tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		result, err := verifier.Verify(ctx, productID)
		return verifyDoneMsg{result: result, err: err}
	}
}

func (m verifyModel) cmdLoadVersion() tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		version, err := verifier.ServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func cmdCopy(productID string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{productID: productID, err: clipboard.WriteAll(productID)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
