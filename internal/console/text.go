package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextRenderer writes view models as plain text tables. It is the terminal
// presentation surface; any richer UI implements Renderer the same way.
type TextRenderer struct {
	out io.Writer
}

func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out}
}

func (r *TextRenderer) RenderTable(tab Tab, table Table) {
	fmt.Fprintf(r.out, "\n[%s]\n", tab)
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		line := strings.Join(row.Cells, "\t")
		if len(row.Actions) > 0 {
			line += "\t(" + strings.Join(row.Actions, ", ") + ")"
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()
	fmt.Fprintf(r.out, "%d row(s)\n", len(table.Rows))
}

func (r *TextRenderer) RenderCards(tab Tab, cards []Card) {
	fmt.Fprintf(r.out, "\n[%s]\n", tab)
	for _, card := range cards {
		marker := " "
		if card.Unread {
			marker = "*"
		}
		fmt.Fprintf(r.out, "%s %s: %s (%s)\n", marker, card.Title, card.Body, card.Footer)
	}
	fmt.Fprintf(r.out, "%d notification(s)\n", len(cards))
}

func (r *TextRenderer) RenderOverview(overview Overview) {
	fmt.Fprintf(r.out, "\nProducts: %d  Sales: %d  Suppliers: %d  Low stock: %d\n",
		overview.TotalProducts, overview.TotalSales, overview.TotalSuppliers, overview.LowStockCount)
}

func (r *TextRenderer) RenderOptions(field string, options []Option) {
	fmt.Fprintf(r.out, "\n[%s options]\n", field)
	for _, option := range options {
		fmt.Fprintf(r.out, "  %s\t%s\n", option.Value, option.Label)
	}
}

func (r *TextRenderer) CloseModal(name string) {
	fmt.Fprintf(r.out, "closed %s form\n", name)
}

func (r *TextRenderer) ResetForm(name string) {
	fmt.Fprintf(r.out, "cleared %s form\n", name)
}

func (r *TextRenderer) ShowAlert(message string) {
	fmt.Fprintf(r.out, "! %s\n", message)
}

func (r *TextRenderer) ShowSuccess(message string) {
	fmt.Fprintf(r.out, "%s\n", message)
}

func (r *TextRenderer) ShowLoginError(message string) {
	fmt.Fprintf(r.out, "login error: %s\n", message)
}

func (r *TextRenderer) Navigate(target string) {
	fmt.Fprintf(r.out, "-> %s\n", target)
}

// TerminalPrompter asks yes/no questions on the terminal. Anything other
// than an explicit yes declines.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *TerminalPrompter) Confirm(message string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", message)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

var (
	_ Renderer = (*TextRenderer)(nil)
	_ Prompter = (*TerminalPrompter)(nil)
)
