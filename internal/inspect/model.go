package inspect

import (
	"HueKit/internal/color"
	"HueKit/internal/config"
	"HueKit/internal/console"
	"HueKit/internal/logger"
	"HueKit/internal/strutil"
	"HueKit/internal/version"
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Model is the bubbletea model of the interactive color inspector.
// The expression typed by the user is parsed on every keystroke.
type Model struct {
	ctx context.Context

	input string
	value *color.Value
	err   error

	// index into color.Formats
	format int

	// pinned background, nil when the value is shown on its own
	background *color.Value

	candidates  []*color.Value
	opts        color.ParseOptions
	swatchWidth int

	help  help.Model
	width int
}

// NewModel creates an inspector starting from the initial expression.
func NewModel(ctx context.Context, initial string, conf config.AppConfig) Model {
	candidates, err := conf.Candidates()
	if err != nil {
		candidates = nil
	}
	m := Model{
		ctx:         ctx,
		input:       initial,
		candidates:  candidates,
		opts:        conf.ParseOptions(),
		swatchWidth: conf.UI.SwatchWidth,
		help:        help.New(),
	}
	for i, f := range color.Formats {
		if f == conf.OutputFormat() {
			m.format = i
		}
	}
	if width := console.TerminalWidth(); width > 0 {
		m.width = width
		m.help.SetWidth(width)
	}
	m.parse()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.SetWidth(msg.Width)
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, logger.RecoverTUI(m.ctx, tea.Quit)
		case key.Matches(msg, Keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, Keys.NextFormat):
			m.format = (m.format + 1) % len(color.Formats)
		case key.Matches(msg, Keys.PrevFormat):
			m.format = (m.format + len(color.Formats) - 1) % len(color.Formats)
		case key.Matches(msg, Keys.Background):
			if m.background != nil {
				m.background = nil
			} else if m.value != nil {
				m.background = m.value
			}
		case key.Matches(msg, Keys.Clear):
			m.input = ""
			m.parse()
		case msg.String() == "backspace":
			if r := []rune(m.input); len(r) > 0 {
				m.input = string(r[:len(r)-1])
			}
			m.parse()
		default:
			if msg.Text != "" {
				m.input += msg.Text
				m.parse()
			}
		}
	}
	return m, nil
}

func (m *Model) parse() {
	if strings.TrimSpace(m.input) == "" {
		m.value, m.err = nil, nil
		return
	}
	m.value, m.err = color.NewWithOptions(m.input, m.opts)
}

// Value returns the parsed color, nil while the input does not parse.
func (m Model) Value() *color.Value {
	return m.value
}

// Format returns the format currently selected for output.
func (m Model) Format() color.Format {
	return color.Formats[m.format]
}

// Result returns the value rendered in the selected format, or "" when
// the input does not hold a valid color.
func (m Model) Result() string {
	if m.value == nil {
		return ""
	}
	return m.value.Format(m.Format())
}

func (m Model) View() tea.View {
	v := tea.NewView(m.ViewString())
	v.AltScreen = true
	return v
}

// ViewString renders the inspector without the tea.View wrapper.
func (m Model) ViewString() string {
	var lines []string
	lines = append(lines,
		console.Sprintf("{{_ApplicationName_}}%s{{|-|}} inspector", version.ApplicationName),
		"",
		fmt.Sprintf("> %s_", m.input),
		"",
	)

	switch {
	case m.err != nil:
		lines = append(lines, console.Sprintf("{{_Error_}}%v{{|-|}}", m.err))
	case m.value == nil:
		lines = append(lines, "Type a hex, rgb(a) or hsl(a) color.")
	default:
		lines = append(lines, m.details()...)
	}

	lines = append(lines, "", m.help.View(Keys))
	return strutil.Limit(strings.Join(lines, "\n"), m.width)
}

func (m Model) details() []string {
	var lines []string
	label := m.Result()

	if m.background != nil {
		lines = append(lines, console.Swatch(m.background, m.value, m.swatchWidth*2, label))
	} else {
		lines = append(lines, console.AutoSwatch(m.value, m.swatchWidth*2, label, m.candidates...))
	}
	lines = append(lines, "")

	for i, f := range color.Formats {
		marker := "  "
		if i == m.format {
			marker = "> "
		}
		lines = append(lines, console.Sprintf("%s{{_Format_}}%-5s{{|-|}} {{_Color_}}%s{{|-|}}", marker, f, m.value.Format(f)))
	}
	lines = append(lines, "", fmt.Sprintf("luminance  %.4f", m.value.Luminance()))

	if m.background != nil {
		lines = append(lines, m.contrastLine("background "+m.background.Hex(), m.background))
	} else {
		lines = append(lines,
			m.contrastLine("black", color.Black),
			m.contrastLine("white", color.White),
			console.Sprintf("foreground {{_Color_}}%s{{|-|}}", color.PickForeground(m.value, m.candidates...).Hex()),
		)
	}
	return lines
}

func (m Model) contrastLine(name string, other *color.Value) string {
	ratio := color.ContrastRatio(m.value, other)
	level := color.Grade(ratio)
	tag := "{{_Pass_}}"
	if level == color.LevelFail {
		tag = "{{_Fail_}}"
	}
	return console.Sprintf("vs %s {{_Ratio_}}%.2f:1{{|-|}} %s%s{{|-|}}", name, ratio, tag, level)
}
