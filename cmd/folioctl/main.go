// folioctl drives the folio API from the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rohits-web03/folio/pkg/client"
)

// Command defines the interface for all command implementations
type Command interface {
	Name() string
	Usage() string
	Description() string
	Execute(ctx context.Context, env *Env, args []string) error
}

// Env is what every command runs against.
type Env struct {
	Client    *client.Client
	Out       io.Writer
	Format    string
	TokenFile string
}

var commands = []Command{
	&LoginCommand{},
	&LogoutCommand{},
	&WhoAmICommand{},
	&PortfolioCommand{},
	&ResumeCommand{},
	&UsersCommand{},
	&ListCommand{},
	&AddSkillCommand{},
	&AddLinkCommand{},
	&DeleteCommand{},
	&CompletenessCommand{},
	&HelpCommand{},
}

func main() {
	log.SetFlags(0)

	baseURL := flag.String("url", envOr("FOLIO_URL", "http://localhost:8080"), "API base URL")
	format := flag.String("o", "yaml", "output format: yaml or json")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Usage = usage
	flag.Parse()

	if *format != "yaml" && *format != "json" {
		log.Fatalf("unknown output format %q", *format)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	cmd := findCommand(args[0])
	if cmd == nil {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokenFile := tokenPath()
	opts := []client.Option{client.WithTimeout(*timeout)}
	if tok := loadToken(tokenFile); tok != "" {
		opts = append(opts, client.WithToken(tok))
	}

	env := &Env{
		Client:    client.New(*baseURL, opts...),
		Out:       os.Stdout,
		Format:    *format,
		TokenFile: tokenFile,
	}

	if err := cmd.Execute(ctx, env, args[1:]); err != nil {
		if errors.Is(err, client.ErrUnauthenticated) {
			log.Fatalf("%s: not signed in, run `folioctl login` first", cmd.Name())
		}
		log.Fatalf("%s: %v", cmd.Name(), err)
	}
}

func findCommand(name string) Command {
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: folioctl [flags] <command> [args]\n\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(out, "  %-34s %s\n", strings.TrimSpace(cmd.Name()+" "+cmd.Usage()), cmd.Description())
	}
	fmt.Fprintf(out, "\nFlags:\n")
	flag.PrintDefaults()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// tokenPath is $FOLIO_TOKEN_FILE, or folio/token under the user config dir.
func tokenPath() string {
	if p := os.Getenv("FOLIO_TOKEN_FILE"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".folio-token"
	}
	return filepath.Join(dir, "folio", "token")
}

func loadToken(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func saveToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}
