package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Console is a terminal stand-in for the spreadsheet UI.
type Console struct {
	mu    sync.Mutex
	in    *bufio.Reader
	out   io.Writer
	menus []Menu

	readOnce sync.Once
	lines    chan inputLine
}

type inputLine struct {
	text string
	err  error
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// AddMenu adds menu, replacing any menu with the same name.
func (c *Console) AddMenu(menu Menu) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, m := range c.menus {
		if m.Name == menu.Name {
			c.menus[i] = menu
			return
		}
	}
	c.menus = append(c.menus, menu)
}

func (c *Console) Menus() []Menu {
	c.mu.Lock()
	defer c.mu.Unlock()

	menus := make([]Menu, len(c.menus))
	copy(menus, c.menus)
	return menus
}

func (c *Console) menu(name string) (Menu, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.menus {
		if m.Name == name {
			return m, true
		}
	}
	return Menu{}, false
}

// Invoke runs the action bound to menuName > itemLabel.
func (c *Console) Invoke(ctx context.Context, menuName, itemLabel string) error {
	m, ok := c.menu(menuName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrMenuNotFound, menuName)
	}

	item, ok := m.Item(itemLabel)
	if !ok {
		return fmt.Errorf("%w: %q in %q", ErrItemNotFound, itemLabel, menuName)
	}

	return item.Action(ctx)
}

// readLine returns the next input line, or ctx's error once ctx is done.
// A single goroutine owns the reader so no line is lost between calls.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.readOnce.Do(func() {
		c.lines = make(chan inputLine)
		go func() {
			defer close(c.lines)
			for {
				text, err := c.in.ReadString('\n')
				c.lines <- inputLine{text: text, err: err}
				if err != nil {
					return
				}
			}
		}()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Alert prints text in a frame and blocks until the user presses Enter or
// ctx is done. EOF on input counts as dismissal.
func (c *Console) Alert(ctx context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	border := "+" + strings.Repeat("-", width+2) + "+"
	fmt.Fprintln(c.out, border)
	for _, l := range lines {
		fmt.Fprintf(c.out, "| %-*s |\n", width, l)
	}
	fmt.Fprintln(c.out, border)
	fmt.Fprint(c.out, "[OK] press Enter to dismiss ")

	_, err := c.readLine(ctx)
	fmt.Fprintln(c.out)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read dismissal: %w", err)
	}
	return nil
}

// Render prints the registered menus with numbered items.
func (c *Console) Render() {
	for _, m := range c.Menus() {
		fmt.Fprintf(c.out, "%s\n", m.Name)
		for i, item := range m.Items {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, item.Label)
		}
	}
}

// Loop renders the menus and runs the chosen item until the user enters
// "q", input ends, or ctx is done. Items are numbered across all menus.
func (c *Console) Loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.Render()
		fmt.Fprint(c.out, "Select an item (q to quit): ")

		line, readErr := c.readLine(ctx)
		if ctx.Err() != nil {
			fmt.Fprintln(c.out)
			return ctx.Err()
		}
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read selection: %w", readErr)
		}
		eof := readErr != nil

		choice := strings.TrimSpace(line)
		if choice == "q" || (choice == "" && eof) {
			return nil
		}

		menuName, label, ok := c.lookup(choice)
		if !ok {
			fmt.Fprintf(c.out, "Unknown selection %q\n", choice)
		} else if err := c.Invoke(ctx, menuName, label); err != nil {
			return err
		}

		if eof {
			return nil
		}
	}
}

func (c *Console) lookup(choice string) (string, string, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 {
		return "", "", false
	}

	for _, m := range c.Menus() {
		if n <= len(m.Items) {
			return m.Name, m.Items[n-1].Label, true
		}
		n -= len(m.Items)
	}
	return "", "", false
}
