package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/abdidvp/inventory/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

// MenuOptions lists the console menu entries in display order. The option
// number is the index plus one.
var MenuOptions = []string{
	"Add product",
	"Find product",
	"List products",
	"Total inventory value",
	"Update price",
	"Update quantity",
	"Exit",
}

// Renderer formats inventory views for one output stream.
type Renderer struct {
	currency string

	headerStyle lipgloss.Style
	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	nameStyle   lipgloss.Style
	dimStyle    lipgloss.Style
	faintStyle  lipgloss.Style
	passStyle   lipgloss.Style
	valueStyle  lipgloss.Style
	errorStyle  lipgloss.Style
	warnStyle   lipgloss.Style
}

// NewRenderer builds a Renderer writing to w. ColorAuto defers to terminal
// detection on w; the other modes force a color profile.
func NewRenderer(w io.Writer, mode domain.ColorMode, currency string) *Renderer {
	lr := lipgloss.NewRenderer(w)
	switch mode {
	case domain.ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	case domain.ColorAlways:
		lr.SetColorProfile(termenv.TrueColor)
	}
	if currency == "" {
		currency = domain.DefaultConfig().Currency
	}

	return &Renderer{
		currency: currency,
		headerStyle: lr.NewStyle().
			Bold(true).
			Foreground(accent),
		boxStyle: lr.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2),
		titleStyle: lr.NewStyle().Bold(true).Foreground(fg),
		nameStyle:  lr.NewStyle().Bold(true).Foreground(fg),
		dimStyle:   lr.NewStyle().Foreground(dim),
		faintStyle: lr.NewStyle().Foreground(faint),
		passStyle:  lr.NewStyle().Foreground(success),
		valueStyle: lr.NewStyle().Bold(true).Foreground(success),
		errorStyle: lr.NewStyle().Foreground(danger).Bold(true),
		warnStyle:  lr.NewStyle().Foreground(warning),
	}
}

// Money formats an amount with the configured currency symbol and two decimals.
func (r *Renderer) Money(amount float64) string {
	return fmt.Sprintf("%s%.2f", r.currency, amount)
}

// Menu renders the boxed title and the numbered options.
func (r *Renderer) Menu() string {
	var b strings.Builder
	b.WriteString(r.boxStyle.Render(r.headerStyle.Render("Inventory System")))
	b.WriteString("\n")
	for i, opt := range MenuOptions {
		fmt.Fprintf(&b, "  %s %s\n", r.dimStyle.Render(fmt.Sprintf("%d.", i+1)), opt)
	}
	return b.String()
}

// Describe renders a single product on one line.
func (r *Renderer) Describe(p domain.ProductSnapshot) string {
	return fmt.Sprintf("Product: %s %s Price: %s %s Quantity: %d",
		r.nameStyle.Render(p.Name),
		r.faintStyle.Render("|"),
		r.Money(p.Price),
		r.faintStyle.Render("|"),
		p.Quantity,
	)
}

// Found renders a lookup hit.
func (r *Renderer) Found(p domain.ProductSnapshot) string {
	return "Found: " + r.Describe(p) + "\n"
}

// NotFound renders a lookup miss.
func (r *Renderer) NotFound() string {
	return r.warnStyle.Render("Product not found.") + "\n"
}

// ProductList renders the numbered product list, or an empty-state line.
func (r *Renderer) ProductList(products []domain.ProductSnapshot) string {
	if len(products) == 0 {
		return r.dimStyle.Render("No products in the inventory.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.titleStyle.Render("Products in the inventory"))
	b.WriteString("  ")
	b.WriteString(r.dimStyle.Render(fmt.Sprintf("(%d)", len(products))))
	b.WriteString("\n")
	b.WriteString(r.faintStyle.Render(strings.Repeat("─", 48)))
	b.WriteString("\n")
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Describe(p))
	}
	return b.String()
}

// Total renders the inventory value line.
func (r *Renderer) Total(total float64) string {
	return "Total inventory value: " + r.valueStyle.Render(r.Money(total)) + "\n"
}

// Added confirms a new product.
func (r *Renderer) Added(p domain.ProductSnapshot) string {
	return r.passStyle.Render(fmt.Sprintf("Product %q added to the inventory.", p.Name)) + "\n"
}

// Updated confirms a price or quantity change.
func (r *Renderer) Updated(p domain.ProductSnapshot) string {
	return r.passStyle.Render("Updated:") + " " + r.Describe(p) + "\n"
}

// Error renders a failure message.
func (r *Renderer) Error(err error) string {
	return r.errorStyle.Render("Error:") + " " + err.Error() + "\n"
}

// Notice renders a neutral status line.
func (r *Renderer) Notice(msg string) string {
	return r.dimStyle.Render(msg) + "\n"
}
