package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"barky/internal/logger"
	"barky/internal/model"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// maxLineBytes bounds a single shell line; pasted notes can exceed bufio's 64 KiB default.
const maxLineBytes = 1 << 20

// Registry maps the words typed at the prompt to commands.
type Registry map[string]Command

// Names returns the registered command words in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Loop is the interactive shell: one command per line, `name key=value key="quoted value"`.
type Loop struct {
	Commands Registry
	In       io.Reader
	Out      io.Writer
	Prompt   string
	Log      logger.Logger
}

// Run processes lines until a command sets Terminate, input ends, or ctx is done.
// Command errors are printed and the loop carries on.
func (l *Loop) Run(ctx context.Context) error {
	log := l.Log
	if log == nil {
		log = logger.Nop()
	}

	sc := bufio.NewScanner(l.In)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.Prompt != "" {
			fmt.Fprint(l.Out, l.Prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}

		name, data, err := ParseLine(sc.Text())
		if err != nil {
			fmt.Fprintf(l.Out, "Error: %v\n", err)
			continue
		}
		if name == "" {
			continue
		}

		cmd, ok := l.Commands[name]
		if !ok {
			fmt.Fprintf(l.Out, "Unknown command %q. Available: %s\n", name, strings.Join(l.Commands.Names(), ", "))
			continue
		}

		res, err := cmd.Execute(ctx, data)
		if err != nil {
			log.Error("command_failed", logger.String("command", name), logger.Error(err))
			fmt.Fprintf(l.Out, "Error: %v\n", err)
			continue
		}
		Print(l.Out, res)
		if res.Terminate {
			return nil
		}
	}
}

// Print renders a result: its message, then any bookmarks as a table.
func Print(w io.Writer, res Result) {
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
	if res.Bookmarks != nil {
		printBookmarks(w, res.Bookmarks)
	}
}

func printBookmarks(w io.Writer, items []model.Bookmark) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tURL\tNOTES\tDATE ADDED")
	for _, b := range items {
		date := ""
		if !b.DateAdded.IsZero() {
			date = b.DateAdded.Format(time.DateTime)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.URL, b.Notes, date)
	}
	_ = tw.Flush()
}

// ParseLine splits a shell line into a command word and its key=value arguments.
// Values may be wrapped in double quotes to keep spaces; a bare word without '='
// becomes a key with an empty value.
func ParseLine(line string) (string, Data, error) {
	toks, err := tokenize(line)
	if err != nil {
		return "", nil, err
	}
	if len(toks) == 0 {
		return "", nil, nil
	}

	data := make(Data, len(toks)-1)
	for _, t := range toks[1:] {
		k, v, _ := strings.Cut(t, "=")
		data[k] = v
	}
	return toks[0], data, nil
}

func tokenize(line string) ([]string, error) {
	var (
		toks    []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				toks = append(toks, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, errUnterminatedQuote
	}
	if started {
		toks = append(toks, cur.String())
	}
	return toks, nil
}
