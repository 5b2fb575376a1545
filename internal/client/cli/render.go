package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophdrive/internal/client/category"
	"github.com/dmitrijs2005/gophdrive/internal/client/format"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/client/theme"
)

const gridColumns = 3

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	border lipgloss.Color
	err    lipgloss.Color
	ok     lipgloss.Color
	tags   map[string]lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Light: {
		text: "#1f2937", muted: "#6b7280", border: "#d1d5db", err: "#b91c1c", ok: "#15803d",
		tags: map[string]lipgloss.Color{
			category.ColorRed: "#dc2626", category.ColorBlue: "#2563eb", category.ColorGreen: "#16a34a",
			category.ColorOrange: "#ea580c", category.ColorGray: "#4b5563", category.ColorPurple: "#9333ea",
			category.ColorPink: "#db2777", category.ColorYellow: "#ca8a04", category.ColorCyan: "#0891b2",
		},
	},
	theme.Evening: {
		text: "#e7e5e4", muted: "#a8a29e", border: "#57534e", err: "#fca5a5", ok: "#86efac",
		tags: map[string]lipgloss.Color{
			category.ColorRed: "#f87171", category.ColorBlue: "#93c5fd", category.ColorGreen: "#86efac",
			category.ColorOrange: "#fdba74", category.ColorGray: "#d6d3d1", category.ColorPurple: "#d8b4fe",
			category.ColorPink: "#f9a8d4", category.ColorYellow: "#fde047", category.ColorCyan: "#67e8f9",
		},
	},
	theme.Dark: {
		text: "#f9fafb", muted: "#9ca3af", border: "#374151", err: "#f87171", ok: "#4ade80",
		tags: map[string]lipgloss.Color{
			category.ColorRed: "#ef4444", category.ColorBlue: "#60a5fa", category.ColorGreen: "#4ade80",
			category.ColorOrange: "#fb923c", category.ColorGray: "#9ca3af", category.ColorPurple: "#c084fc",
			category.ColorPink: "#f472b6", category.ColorYellow: "#facc15", category.ColorCyan: "#22d3ee",
		},
	},
}

type styles struct {
	title lipgloss.Style
	text  lipgloss.Style
	muted lipgloss.Style
	err   lipgloss.Style
	ok    lipgloss.Style
	card  lipgloss.Style
	tags  map[string]lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[theme.Default]
	}

	tags := make(map[string]lipgloss.Style, len(p.tags))
	for tag, c := range p.tags {
		tags[tag] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}

	return styles{
		title: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		text:  lipgloss.NewStyle().Foreground(p.text),
		muted: lipgloss.NewStyle().Foreground(p.muted),
		err:   lipgloss.NewStyle().Foreground(p.err).Bold(true),
		ok:    lipgloss.NewStyle().Foreground(p.ok),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			Width(28),
		tags: tags,
	}
}

func (s styles) tag(info category.CategoryInfo) string {
	st, ok := s.tags[info.ColorTag]
	if !ok {
		st = s.muted
	}
	return st.Render(info.Category)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (s styles) renderCard(f *models.FileRecord, now time.Time) string {
	info := category.GetFileCategory(f.Type)
	body := strings.Join([]string{
		s.title.Render(truncate(f.Name, 24)),
		s.tag(info),
		s.muted.Render(format.FormatBytesDefault(f.Size) + " · " + format.FormatDate(f.CreatedAt, now)),
		s.muted.Render("id " + f.ID),
	}, "\n")
	return s.card.Render(body)
}

// renderGrid lays the files out as bordered cards, gridColumns per row.
func renderGrid(w io.Writer, s styles, files []*models.FileRecord, now time.Time) {
	for i := 0; i < len(files); i += gridColumns {
		end := min(i+gridColumns, len(files))
		cards := make([]string, 0, gridColumns)
		for _, f := range files[i:end] {
			cards = append(cards, s.renderCard(f, now))
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
}

// renderList prints one file per line: id, name, category, size, date.
func renderList(w io.Writer, s styles, files []*models.FileRecord, now time.Time) {
	for _, f := range files {
		info := category.GetFileCategory(f.Type)
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			s.muted.Render(fmt.Sprintf("%-36s", f.ID)),
			s.text.Render(fmt.Sprintf("%-30s", truncate(f.Name, 30))),
			lipgloss.NewStyle().Width(12).Render(s.tag(info)),
			s.muted.Render(fmt.Sprintf("%10s", format.FormatBytesDefault(f.Size))),
			s.muted.Render(format.FormatDate(f.CreatedAt, now)),
		)
	}
}
