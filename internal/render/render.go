// Package render draws a game snapshot as terminal text
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for the board dump
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Current   lipgloss.Style // the player to act
	Player    lipgloss.Style
	Points    lipgloss.Style
	Muted     lipgloss.Style
	Gold      lipgloss.Style
	Gems      [gem.NumColors]lipgloss.Style
}

// NewStyles creates the default palette bound to r
func NewStyles(r *lipgloss.Renderer) *Styles {
	s := &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		SubHeader: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Current: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Points: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Gold: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
	}
	palette := map[gem.Color]string{
		gem.Black: "#9E9E9E",
		gem.Blue:  "#74B9FF",
		gem.Green: "#04B575",
		gem.Red:   "#FF6B6B",
		gem.White: "#FAFAFA",
	}
	for c, hex := range palette {
		s.Gems[c] = r.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
	}
	return s
}

// Renderer formats snapshots for one output stream
type Renderer struct {
	styles *Styles
}

// New creates a renderer whose color profile follows w. noColor forces
// plain ASCII output.
func New(w io.Writer, noColor bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{styles: NewStyles(r)}
}

// Snapshot renders nobles, the tiers from 3 down to 1 with deck counts,
// the bank and every player
func (r *Renderer) Snapshot(s game.Snapshot) string {
	var sb strings.Builder
	st := r.styles

	title := fmt.Sprintf("Round %d", s.Round+1)
	if s.Phase == game.PhaseFinished {
		title = fmt.Sprintf("Finished after %d rounds", s.Round)
	}
	sb.WriteString(st.Header.Render(title))
	sb.WriteString(st.Muted.Render(fmt.Sprintf("  first to %d points", s.TargetScore)))
	sb.WriteString("\n\n")

	sb.WriteString(st.SubHeader.Render("Nobles"))
	sb.WriteString("\n")
	if len(s.Nobles) == 0 {
		sb.WriteString(st.Muted.Render("  none"))
		sb.WriteString("\n")
	}
	for _, n := range s.Nobles {
		fmt.Fprintf(&sb, "  %s\n", r.noble(n))
	}
	sb.WriteString("\n")

	for i := len(s.Tiers) - 1; i >= 0; i-- {
		tv := s.Tiers[i]
		sb.WriteString(st.SubHeader.Render(fmt.Sprintf("Tier %d", uint8(tv.Tier))))
		sb.WriteString(st.Muted.Render(fmt.Sprintf(" (%d)", tv.DeckRemaining)))
		sb.WriteString("\n")
		for _, c := range tv.Cards {
			fmt.Fprintf(&sb, "  %s\n", r.Card(c))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(st.SubHeader.Render("Bank"))
	fmt.Fprintf(&sb, " %s\n\n", r.purse(s.Bank))

	for _, p := range s.Players {
		sb.WriteString(r.player(p, p.Index == s.Current && s.Phase == game.PhaseInProgress))
	}
	return sb.String()
}

// Card renders one development card, e.g. "#12 red 1pt  cost 3K 2U"
func (r *Renderer) Card(c card.Card) string {
	st := r.styles
	points := st.Muted.Render("0pt")
	if c.Points > 0 {
		points = st.Points.Render(fmt.Sprintf("%dpt", c.Points))
	}
	return fmt.Sprintf("%s %s %s  cost %s",
		st.Muted.Render(fmt.Sprintf("#%-3d", c.ID)),
		r.color(c.Color, fmt.Sprintf("%-5s", c.Color)),
		points,
		r.cost(c.Cost))
}

func (r *Renderer) noble(n card.Noble) string {
	return fmt.Sprintf("%s %s  needs %s",
		r.styles.Muted.Render(fmt.Sprintf("N%-2d", n.ID)),
		r.styles.Points.Render(fmt.Sprintf("%dpt", n.Points())),
		r.cost(n.Cost))
}

func (r *Renderer) player(p game.PlayerState, current bool) string {
	st := r.styles
	var sb strings.Builder

	marker, name := "  ", st.Player.Render(p.Name)
	if current {
		marker, name = "> ", st.Current.Render(p.Name)
	}
	fmt.Fprintf(&sb, "%s%s %s\n", marker, name, st.Points.Render(fmt.Sprintf("%d points", p.Score)))
	fmt.Fprintf(&sb, "    tokens    %s\n", r.purse(p.Tokens))
	fmt.Fprintf(&sb, "    discounts %s\n", r.cost(p.Discounts))
	if len(p.Nobles) > 0 {
		ids := make([]string, len(p.Nobles))
		for i, n := range p.Nobles {
			ids[i] = fmt.Sprintf("N%d", n.ID)
		}
		fmt.Fprintf(&sb, "    nobles    %s\n", strings.Join(ids, " "))
	}
	for _, c := range p.Reserved {
		fmt.Fprintf(&sb, "    reserved  %s\n", r.Card(c))
	}
	return sb.String()
}

func (r *Renderer) purse(p gem.Purse) string {
	parts := make([]string, 0, gem.NumColors+1)
	for _, c := range gem.Colors {
		parts = append(parts, r.color(c, fmt.Sprintf("%s:%d", c, p.Colors[c])))
	}
	parts = append(parts, r.styles.Gold.Render(fmt.Sprintf("gold:%d", p.Gold)))
	return strings.Join(parts, " ")
}

func (r *Renderer) cost(c gem.Cost) string {
	if c.IsZero() {
		return r.styles.Muted.Render("-")
	}
	var parts []string
	for _, color := range gem.Colors {
		if c[color] > 0 {
			parts = append(parts, r.color(color, fmt.Sprintf("%d%s", c[color], color.Short())))
		}
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) color(c gem.Color, text string) string {
	return r.styles.Gems[c].Render(text)
}
