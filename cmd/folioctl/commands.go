package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rohits-web03/folio/pkg/client"
)

func render(out io.Writer, format string, v any) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type LoginCommand struct{}

func (c *LoginCommand) Name() string        { return "login" }
func (c *LoginCommand) Usage() string       { return "<email|username> <password>" }
func (c *LoginCommand) Description() string { return "Sign in and remember the session" }

func (c *LoginCommand) Execute(ctx context.Context, env *Env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s %s", c.Name(), c.Usage())
	}
	user, err := env.Client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if err := saveToken(env.TokenFile, env.Client.Token()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	fmt.Fprintf(env.Out, "Signed in as %s\n", user.Username)
	return nil
}

type LogoutCommand struct{}

func (c *LogoutCommand) Name() string        { return "logout" }
func (c *LogoutCommand) Usage() string       { return "" }
func (c *LogoutCommand) Description() string { return "Forget the stored session" }

func (c *LogoutCommand) Execute(ctx context.Context, env *Env, args []string) error {
	err := env.Client.Logout(ctx)
	if rmErr := os.Remove(env.TokenFile); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		return rmErr
	}
	return err
}

type WhoAmICommand struct{}

func (c *WhoAmICommand) Name() string        { return "whoami" }
func (c *WhoAmICommand) Usage() string       { return "" }
func (c *WhoAmICommand) Description() string { return "Show the signed-in user" }

func (c *WhoAmICommand) Execute(ctx context.Context, env *Env, args []string) error {
	user, err := env.Client.Session(ctx)
	if err != nil {
		return err
	}
	return render(env.Out, env.Format, user)
}

type PortfolioCommand struct{}

func (c *PortfolioCommand) Name() string        { return "portfolio" }
func (c *PortfolioCommand) Usage() string       { return "<username>" }
func (c *PortfolioCommand) Description() string { return "Show a public portfolio" }

func (c *PortfolioCommand) Execute(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s %s", c.Name(), c.Usage())
	}
	p, err := env.Client.Portfolio(ctx, args[0])
	if err != nil {
		return err
	}
	return render(env.Out, env.Format, p)
}

type ResumeCommand struct{}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Usage() string       { return "<username>" }
func (c *ResumeCommand) Description() string { return "Print the Markdown resume" }

func (c *ResumeCommand) Execute(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s %s", c.Name(), c.Usage())
	}
	md, err := env.Client.Resume(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = io.WriteString(env.Out, md)
	return err
}

type UsersCommand struct{}

func (c *UsersCommand) Name() string        { return "users" }
func (c *UsersCommand) Usage() string       { return "" }
func (c *UsersCommand) Description() string { return "List registered users" }

func (c *UsersCommand) Execute(ctx context.Context, env *Env, args []string) error {
	cards, err := env.Client.Users(ctx)
	if err != nil {
		return err
	}
	return render(env.Out, env.Format, cards)
}

const entityNames = "experience|education|projects|links|socials|skills"

// listEntity loads one of the caller's collections.
func listEntity(ctx context.Context, c *client.Client, entity string) (any, error) {
	switch entity {
	case "experience", "experiences":
		return load(ctx, c.Experiences())
	case "education":
		return load(ctx, c.Education())
	case "projects":
		return load(ctx, c.Projects())
	case "links":
		return load(ctx, c.Links())
	case "socials":
		return load(ctx, c.Socials())
	case "skill", "skills":
		return load(ctx, c.Skills())
	}
	return nil, fmt.Errorf("unknown entity %q, want %s", entity, entityNames)
}

func load[T client.Entity](ctx context.Context, col *client.Collection[T]) ([]T, error) {
	if err := col.Load(ctx); err != nil {
		return nil, err
	}
	return col.Items(), nil
}

func deleteEntity(ctx context.Context, c *client.Client, entity, id string) error {
	switch entity {
	case "experience", "experiences":
		return c.Experiences().Delete(ctx, id)
	case "education":
		return c.Education().Delete(ctx, id)
	case "projects":
		return c.Projects().Delete(ctx, id)
	case "links":
		return c.Links().Delete(ctx, id)
	case "socials":
		return c.Socials().Delete(ctx, id)
	case "skill", "skills":
		return c.Skills().Delete(ctx, id)
	}
	return fmt.Errorf("unknown entity %q, want %s", entity, entityNames)
}

type ListCommand struct{}

func (c *ListCommand) Name() string        { return "list" }
func (c *ListCommand) Usage() string       { return "<" + entityNames + ">" }
func (c *ListCommand) Description() string { return "List your entries" }

func (c *ListCommand) Execute(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s %s", c.Name(), c.Usage())
	}
	items, err := listEntity(ctx, env.Client, args[0])
	if err != nil {
		return err
	}
	return render(env.Out, env.Format, items)
}

type AddSkillCommand struct{}

func (c *AddSkillCommand) Name() string        { return "add-skill" }
func (c *AddSkillCommand) Usage() string       { return "<name> [level]" }
func (c *AddSkillCommand) Description() string { return "Add a skill (beginner..expert)" }

func (c *AddSkillCommand) Execute(ctx context.Context, env *Env, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: %s %s", c.Name(), c.Usage())
	}
	skill := client.Skill{Name: args[0]}
	if len(args) == 2 {
		skill.Level = strings.ToUpper(args[1])
	}
	created, err := env.Client.Skills().Create(ctx, skill)
	if err != nil {
		return err
	}
	return render(env.Out, env.Format, created)
}

type AddLinkCommand struct{}

func (c *AddLinkCommand) Name() string        { return "add-link" }
func (c *AddLinkCommand) Usage() string       { return "<label> <url>" }
func (c *AddLinkCommand) Description() string { return "Add a link" }

func (c *AddLinkCommand) Execute(ctx context.Context, env *Env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s %s", c.Name(), c.Usage())
	}
	created, err := env.Client.Links().Create(ctx, client.Link{Label: args[0], URL: args[1]})
	if err != nil {
		return err
	}
	return render(env.Out, env.Format, created)
}

type DeleteCommand struct{}

func (c *DeleteCommand) Name() string        { return "delete" }
func (c *DeleteCommand) Usage() string       { return "<entity> <id>" }
func (c *DeleteCommand) Description() string { return "Delete one of your entries" }

func (c *DeleteCommand) Execute(ctx context.Context, env *Env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s %s", c.Name(), c.Usage())
	}
	if err := deleteEntity(ctx, env.Client, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Deleted %s %s\n", args[0], args[1])
	return nil
}

type CompletenessCommand struct{}

func (c *CompletenessCommand) Name() string        { return "completeness" }
func (c *CompletenessCommand) Usage() string       { return "" }
func (c *CompletenessCommand) Description() string { return "Show which profile fields are still empty" }

func (c *CompletenessCommand) Execute(ctx context.Context, env *Env, args []string) error {
	out, err := env.Client.Completeness(ctx)
	if err != nil {
		return err
	}
	return render(env.Out, env.Format, out)
}

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Usage() string       { return "" }
func (c *HelpCommand) Description() string { return "Show this help" }

func (c *HelpCommand) Execute(ctx context.Context, env *Env, args []string) error {
	usage()
	return nil
}
