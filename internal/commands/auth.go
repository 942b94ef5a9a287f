package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "exchange a Google identity token for a session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id-token", Usage: "Google identity token", Required: true},
			&cli.StringFlag{Name: "email", Usage: "address shown by whoami"},
		},
		Action: withRuntime(true, func(c *cli.Context, rt *runtime) error {
			if err := rt.svc.Auth.Login(c.Context, c.String("id-token"), c.String("email")); err != nil {
				return cli.Exit(fmt.Sprintf("login failed: %v", err), 1)
			}
			fmt.Fprintln(rt.out, "logged in")
			return nil
		}),
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "forget the stored session",
		Action: withRuntime(true, func(c *cli.Context, rt *runtime) error {
			if err := rt.svc.Auth.Logout(c.Context); err != nil {
				return cli.Exit(fmt.Sprintf("logout failed: %v", err), 1)
			}
			fmt.Fprintln(rt.out, "logged out")
			return nil
		}),
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the session state",
		Action: withRuntime(true, func(c *cli.Context, rt *runtime) error {
			fmt.Fprintf(rt.out, "state: %s\n", rt.svc.Auth.State())
			if email := rt.svc.Auth.Email(); email != "" {
				fmt.Fprintf(rt.out, "email: %s\n", email)
			}
			fmt.Fprintf(rt.out, "server: %s\n", rt.cfg.BaseURL)
			return nil
		}),
	}
}
