package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/knowledgebuddy/internal/checkout"
)

// terminalWidget shows the order and reads the gateway completion from the terminal.
// An empty line dismisses it.
type terminalWidget struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalWidget(in io.Reader, out io.Writer) *terminalWidget {
	return &terminalWidget{in: bufio.NewReader(in), out: out}
}

func (w *terminalWidget) Open(ctx context.Context, opts checkout.WidgetOptions) (*checkout.Completion, error) {
	fmt.Fprintf(w.out, "%s\n", opts.Name)
	fmt.Fprintf(w.out, "  %s\n", opts.Description)
	fmt.Fprintf(w.out, "  order:    %s\n", opts.OrderID)
	fmt.Fprintf(w.out, "  amount:   %s %s\n", formatMinor(opts.Amount), opts.Currency)
	fmt.Fprintf(w.out, "  key:      %s\n", opts.Key)
	fmt.Fprint(w.out, "Complete the payment, then enter \"<payment_id> <signature>\" (empty to cancel): ")

	type line struct {
		text string
		err  error
	}
	ch := make(chan line, 1)
	go func() {
		text, err := w.in.ReadString('\n')
		ch <- line{text, err}
	}()

	var l line
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case l = <-ch:
	}
	if l.err != nil && l.err != io.EOF {
		return nil, l.err
	}

	fields := strings.Fields(l.text)
	switch len(fields) {
	case 0:
		return nil, nil
	case 2:
		return &checkout.Completion{OrderID: opts.OrderID, PaymentID: fields[0], Signature: fields[1]}, nil
	default:
		return nil, fmt.Errorf("expected \"<payment_id> <signature>\", got %d fields", len(fields))
	}
}

func formatMinor(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}
