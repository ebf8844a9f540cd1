package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/inventory/internal/adapters/outbound/tui"
	"github.com/abdidvp/inventory/internal/application"
	"github.com/abdidvp/inventory/internal/domain"
)

func newMenuCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive inventory menu",
		Long:  "Read commands from stdin: add, find and list products, update prices and quantities, and show the total inventory value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}
}

func runMenu(cmd *cobra.Command, opts *globalOptions) error {
	svc, err := openService(cmd, opts)
	if err != nil {
		return err
	}
	m := &menu{
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
		svc: svc,
		r:   newRenderer(cmd, svc),
	}
	return m.run()
}

// menu is the prompt loop driving one service.
// Input errors are printed and the loop continues; only I/O errors end it.
type menu struct {
	in  *bufio.Scanner
	out io.Writer
	svc *application.InventoryService
	r   *tui.Renderer
}

const (
	optAdd = iota + 1
	optFind
	optList
	optTotal
	optUpdatePrice
	optUpdateQuantity
	optExit
)

func (m *menu) run() error {
	for {
		fmt.Fprint(m.out, m.r.Menu())
		choice, ok := m.prompt(fmt.Sprintf("Choose an option (1-%d): ", optExit))
		if !ok {
			return m.in.Err()
		}

		var done bool
		switch parseOption(choice) {
		case optAdd:
			done = m.add()
		case optFind:
			done = m.find()
		case optList:
			fmt.Fprint(m.out, m.r.ProductList(m.svc.ListProducts()))
		case optTotal:
			fmt.Fprint(m.out, m.r.Total(m.svc.TotalValue()))
		case optUpdatePrice:
			done = m.updatePrice()
		case optUpdateQuantity:
			done = m.updateQuantity()
		case optExit:
			fmt.Fprint(m.out, m.r.Notice("Exiting the inventory system..."))
			return nil
		default:
			m.fail(fmt.Errorf("invalid option: enter a number from 1 to %d", optExit))
		}
		if done {
			return m.in.Err()
		}
		fmt.Fprintln(m.out)
	}
}

// parseOption returns the option number for choice, or 0 unless choice is
// exactly its canonical decimal form. "+1" and "01" are not options.
func parseOption(choice string) int {
	n, err := strconv.Atoi(choice)
	if err != nil || strconv.Itoa(n) != choice {
		return 0
	}
	return n
}

// prompt prints label and reads one trimmed line. It reports false once
// input is exhausted.
func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) fail(err error) {
	fmt.Fprint(m.out, m.r.Error(err))
}

// Each action returns true when input ran out mid-dialog.

func (m *menu) add() bool {
	name, ok := m.prompt("Product name: ")
	if !ok {
		return true
	}
	priceText, ok := m.prompt("Price: ")
	if !ok {
		return true
	}
	price, err := domain.ParsePrice(priceText)
	if err != nil {
		m.fail(err)
		return false
	}
	qtyText, ok := m.prompt("Quantity: ")
	if !ok {
		return true
	}
	qty, err := domain.ParseQuantity(qtyText)
	if err != nil {
		m.fail(err)
		return false
	}

	p, err := m.svc.AddProduct(name, price, qty)
	if err != nil {
		m.fail(err)
		return false
	}
	fmt.Fprint(m.out, m.r.Added(p))
	return false
}

func (m *menu) find() bool {
	name, ok := m.prompt("Name to search: ")
	if !ok {
		return true
	}
	p, found, err := m.svc.FindProduct(name)
	switch {
	case err != nil:
		m.fail(err)
	case !found:
		fmt.Fprint(m.out, m.r.NotFound())
	default:
		fmt.Fprint(m.out, m.r.Found(p))
	}
	return false
}

func (m *menu) updatePrice() bool {
	name, ok := m.prompt("Product name: ")
	if !ok {
		return true
	}
	priceText, ok := m.prompt("New price: ")
	if !ok {
		return true
	}
	price, err := domain.ParsePrice(priceText)
	if err != nil {
		m.fail(err)
		return false
	}
	p, err := m.svc.UpdatePrice(name, price)
	if err != nil {
		m.fail(err)
		return false
	}
	fmt.Fprint(m.out, m.r.Updated(p))
	return false
}

func (m *menu) updateQuantity() bool {
	name, ok := m.prompt("Product name: ")
	if !ok {
		return true
	}
	qtyText, ok := m.prompt("New quantity: ")
	if !ok {
		return true
	}
	qty, err := domain.ParseQuantity(qtyText)
	if err != nil {
		m.fail(err)
		return false
	}
	p, err := m.svc.UpdateQuantity(name, qty)
	if err != nil {
		m.fail(err)
		return false
	}
	fmt.Fprint(m.out, m.r.Updated(p))
	return false
}
