package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/adapter"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	api      adapter.BlogAPI
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.BlogAPI, out io.Writer, logger *logger.Logger) *App {
	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]command{
		"version":  {usage: "version", run: a.version},
		"register": {usage: "register -username NAME -email EMAIL -password PASSWORD", run: a.register},
		"login":    {usage: "login -email EMAIL -password PASSWORD", run: a.login},
		"profile":  {usage: "profile", run: a.profile},
		"list":     {usage: "list", run: a.list},
		"get":      {usage: "get ID", run: a.get},
		"create":   {usage: "create -title TITLE -content CONTENT", run: a.create},
		"update":   {usage: "update -title TITLE -content CONTENT ID", run: a.update},
		"delete":   {usage: "delete ID", run: a.delete},
	}
	return a
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, a.Usage())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], a.Usage())
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

// Usage lists every command.
func (a *App) Usage() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	return b.String()
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := newFlagSet("register")
	fs.StringVar(&req.Username, "username", "", "user name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) profile(ctx context.Context, _ []string) error {
	resp, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) list(ctx context.Context, _ []string) error {
	blogs, err := a.api.ListBlogs(ctx)
	if err != nil {
		return err
	}
	return a.print(blogs)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := blogID(args)
	if err != nil {
		return err
	}

	blog, err := a.api.GetBlog(ctx, id)
	if err != nil {
		return err
	}
	return a.print(blog)
}

func (a *App) create(ctx context.Context, args []string) error {
	req, _, err := parseBlogRequest("create", args)
	if err != nil {
		return err
	}

	blog, err := a.api.CreateBlog(ctx, req)
	if err != nil {
		return err
	}
	return a.print(blog)
}

func (a *App) update(ctx context.Context, args []string) error {
	req, rest, err := parseBlogRequest("update", args)
	if err != nil {
		return err
	}
	id, err := blogID(rest)
	if err != nil {
		return err
	}

	blog, err := a.api.UpdateBlog(ctx, id, req)
	if err != nil {
		return err
	}
	return a.print(blog)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := blogID(args)
	if err != nil {
		return err
	}

	msg, err := a.api.DeleteBlog(ctx, id)
	if err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: msg})
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseBlogRequest(name string, args []string) (models.BlogRequest, []string, error) {
	var req models.BlogRequest
	fs := newFlagSet(name)
	fs.StringVar(&req.Title, "title", "", "blog title")
	fs.StringVar(&req.Content, "content", "", "blog content")
	if err := fs.Parse(args); err != nil {
		return req, nil, err
	}
	return req, fs.Args(), nil
}

func blogID(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: blog id", ErrMissingArgument)
	}
	return args[0], nil
}
