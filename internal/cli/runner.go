package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/idilsaglam/littlelemon/internal/config"
	"github.com/idilsaglam/littlelemon/internal/menu"
	"github.com/idilsaglam/littlelemon/internal/model"
	"github.com/idilsaglam/littlelemon/internal/server"
	"github.com/idilsaglam/littlelemon/internal/source"
	"github.com/idilsaglam/littlelemon/internal/status"
	"github.com/idilsaglam/littlelemon/internal/store"
	"github.com/idilsaglam/littlelemon/internal/tui"
	"github.com/idilsaglam/littlelemon/internal/ui"
)

// Options carry what the root command resolved.
type Options struct {
	Config config.Config
	Logger *zerolog.Logger
	Width  int // output width for plain listings; 0 means 60
}

type app struct {
	cfg      config.Config
	log      *zerolog.Logger
	store    store.Store
	resolver *source.Resolver
	width    int
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if len(args) == 0 {
		args = []string{"browse"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "browse", "ls", "search", "categories", "sync", "serve":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(ui.Err)
		PrintHelp()
		return 2
	}

	logger := opt.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	st, closeStore, err := openStore(opt.Config, logger)
	if err != nil {
		// The store is optional; carry on without the local tier.
		logger.Warn().Err(err).Msg("local store unavailable")
		st = nil
	}
	defer closeStore()

	ap := &app{
		cfg:      opt.Config,
		log:      logger,
		store:    st,
		resolver: newResolver(opt.Config, st, logger),
		width:    opt.Width,
	}
	if ap.width <= 0 {
		ap.width = 60
	}

	switch cmd {
	case "browse":
		return ap.doBrowse()
	case "ls":
		return ap.doList(ctx, a)
	case "search":
		return ap.doSearch(ctx, a)
	case "categories":
		return ap.doCategories(ctx)
	case "sync":
		return ap.doSync(ctx)
	default:
		return ap.doServe(ctx, a)
	}
}

func PrintHelp() {
	fmt.Fprint(ui.Out, `menu - browse the Little Lemon menu

Usage:
  menu [global flags] <subcommand> [args]

Subcommands:
  browse                       Interactive menu screen (default)
  ls [--flat] [-q text] [--hide cat]...
                               Print the menu grouped by category
  search <text...> [--offline] [--hide cat]...
                               Print items whose title contains text
  categories                   List categories with item counts
  sync                         Fetch the remote menu and save it locally
  serve [--addr :8081]         Serve the menu over HTTP

Examples:
  menu ls --hide Beverages
  menu search salad
  menu --store json search --offline hummus
`)
}

// -------------- subcommand impls ----------------

func (a *app) doBrowse() int {
	board := status.New(a.cfg.Status.TTL)
	if err := tui.Run(a.resolver.Resolve, board); err != nil {
		ui.Fail("browse: " + err.Error())
		return 1
	}
	return 0
}

func (a *app) resolve(ctx context.Context) (source.Result, bool) {
	res, err := a.resolver.Resolve(ctx)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return res, false
	}
	if msg := source.Summary(res); msg != "" {
		ui.Warn(msg)
	}
	return res, true
}

func (a *app) doList(ctx context.Context, args []string) int {
	fs := pflag.NewFlagSet("ls", pflag.ContinueOnError)
	fs.SetOutput(ui.Err)
	flat := fs.Bool("flat", false, "one line per item, no grouping")
	query := fs.StringP("query", "q", "", "only titles containing this text")
	hide := fs.StringArray("hide", nil, "unselect a category (repeatable)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	res, ok := a.resolve(ctx)
	if !ok {
		return 1
	}
	a.print(res, *query, *hide, *flat)
	return 0
}

func (a *app) doSearch(ctx context.Context, args []string) int {
	fs := pflag.NewFlagSet("search", pflag.ContinueOnError)
	fs.SetOutput(ui.Err)
	offline := fs.Bool("offline", false, "search the local store only")
	hide := fs.StringArray("hide", nil, "unselect a category (repeatable)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		ui.Fail("usage: menu search <text...>")
		return 2
	}

	if *offline {
		return a.searchOffline(ctx, query, *hide)
	}
	res, ok := a.resolve(ctx)
	if !ok {
		return 1
	}
	a.print(res, query, *hide, false)
	return 0
}

// searchOffline queries the local store directly, letting it filter when
// it implements store.Searcher.
func (a *app) searchOffline(ctx context.Context, query string, hide []string) int {
	if a.store == nil {
		ui.Fail("search: no local store configured")
		return 1
	}
	if err := a.store.CreateSchema(ctx); err != nil {
		ui.Fail("search: " + err.Error())
		return 1
	}
	var (
		items []model.MenuItem
		err   error
	)
	if s, ok := a.store.(store.Searcher); ok {
		items, err = s.Search(ctx, query, "")
	} else {
		items, err = a.store.ReadAll(ctx)
	}
	if err != nil {
		ui.Fail("search: " + err.Error())
		return 1
	}
	a.print(source.Result{Items: items, Source: model.SourceLocal}, query, hide, false)
	return 0
}

func (a *app) doCategories(ctx context.Context) int {
	res, ok := a.resolve(ctx)
	if !ok {
		return 1
	}
	t := ui.Current()
	for _, s := range menu.Project(res.Items) {
		fmt.Fprintf(ui.Out, "%s %s\n", s.Title, ui.C(t.Muted, fmt.Sprintf("(%d)", len(s.Items))))
	}
	return 0
}

func (a *app) doSync(ctx context.Context) int {
	if a.cfg.Remote.Disabled {
		ui.Fail("sync: remote source is disabled")
		return 2
	}
	res, err := a.resolver.Resolve(ctx)
	if err != nil {
		ui.Fail("sync: " + err.Error())
		return 1
	}
	if res.Source != model.SourceRemote {
		for _, at := range res.Attempts {
			if at.Source == model.SourceRemote && at.Err != nil {
				ui.Fail("sync: " + at.Err.Error())
			}
		}
		return 1
	}
	if res.PersistErr != nil {
		ui.Fail("sync: fetched but not saved: " + res.PersistErr.Error())
		return 1
	}
	if a.store == nil {
		ui.OK(fmt.Sprintf("fetched %d items (no local store configured)", len(res.Items)))
		return 0
	}
	ui.OK(fmt.Sprintf("saved %d items", len(res.Items)))
	return 0
}

func (a *app) doServe(ctx context.Context, args []string) int {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.SetOutput(ui.Err)
	addr := fs.String("addr", a.cfg.Serve.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := server.New(a.resolver.Resolve, a.log).Run(ctx, *addr); err != nil {
		ui.Fail("serve: " + err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

func (a *app) print(res source.Result, query string, hide []string, flat bool) {
	t := ui.Current()
	categories := menu.Categories(res.Items)
	sel := menu.Hide(menu.NewSelection(categories), hide...)
	filtered := menu.Filter(res.Items, query, sel)

	header := fmt.Sprintf("%s  %s  %s",
		ui.C(t.Title, "Little Lemon"),
		ui.C(t.Accent, "["+res.Source.String()+"]"),
		ui.C(t.Muted, fmt.Sprintf("%d of %d items", len(filtered), len(res.Items))),
	)

	lines := []string{header, ui.Chips(categories, sel)}
	if query != "" {
		lines = append(lines, ui.C(t.Muted, "search: "+query))
	}
	lines = append(lines, "")
	if flat {
		lines = append(lines, ui.FlatLines(filtered, a.width)...)
	} else {
		lines = append(lines, ui.SectionLines(menu.Project(filtered), a.width)...)
	}
	ui.Panel(lines)
}
