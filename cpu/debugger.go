package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"mos6502/mask"
)

// model is the bubbletea Elm-architecture model backing RunStepper: one
// CPU, stepped an instruction at a time by the user, with a memory window
// and register/flag status rendered around it.
type model struct {
	cpu    *CPU
	offset uint16 // not read by pageTable, which picks its rows from $0000 and from PC

	prevPC uint16
	steps  int
}

// Init is the first function bubbletea calls. Nothing to prime here: the
// caller is expected to have already loaded a program and reset the CPU.
func (m model) Init() tea.Cmd {
	return nil
}

// Update is called for every bubbletea message; "space" or "j" steps the
// CPU by one instruction, "q" quits.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			m.cpu.Step()
			m.steps++
		}
	}
	return m, nil
}

// renderPage renders 16 contiguous bytes as a hex line, highlighting the
// byte at the current PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	return fmt.Sprintf(`
PC: %04x (was %04x)
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
steps: %d
NV1B DIZC
%s
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.S,
		m.steps,
		mask.Bits(m.cpu.P),
	)
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	page := m.cpu.PC &^ 0x000f
	offsets := []uint16{0, 16, 32, page, page + 16, page + 32}
	for _, off := range offsets {
		rows = append(rows, m.renderPage(off))
	}
	return strings.Join(rows, "\n")
}

// View renders the full screen: a memory window, the register/flag status
// panel, and a dump of the opcode about to execute.
func (m model) View() string {
	next := opcodes[m.cpu.Read(m.cpu.PC)]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(next),
	)
}

// RunStepper starts an interactive terminal stepper over cpu: space/j
// executes one instruction, q quits. The caller is responsible for loading
// a program and calling Reset (or Init) beforehand.
func RunStepper(cpu *CPU) error {
	_, err := tea.NewProgram(model{cpu: cpu, prevPC: cpu.PC}).Run()
	return err
}
