package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
)

func (a *app) newLoginCmd() *cobra.Command {
	var (
		username      string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader := bufio.NewReader(a.in)
			if strings.TrimSpace(username) == "" {
				line, err := prompt(reader, a.out, "Username: ")
				if err != nil {
					return fmt.Errorf("read username: %w", err)
				}
				username = line
			}

			password, err := a.password(reader, passwordStdin)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			username = strings.TrimSpace(username)
			if username == "" || password == "" {
				return errors.New(service.MsgMissingCredentials)
			}

			st, err := a.session.Login(cmd.Context(), username, password, true)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(a.out, "Signed in as %s\n", st.User.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted if omitted)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}

func (a *app) password(reader *bufio.Reader, fromStdin bool) (string, error) {
	if fromStdin {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	fmt.Fprint(a.out, "Password: ")
	pw, err := a.readPassword()
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func (a *app) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.session.Token(cmd.Context()) == "" {
				fmt.Fprintln(a.out, "Not signed in")
				return nil
			}
			a.session.Logout(cmd.Context())
			fmt.Fprintln(a.out, "Signed out")
			return nil
		},
	}
}

func (a *app) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(); err != nil {
				return err
			}
			st := a.session.State()
			if a.flagJSON {
				return writeJSON(a.out, st.User)
			}
			tw := newTable(a.out)
			fmt.Fprintf(tw, "Username\t%s\n", st.User.Username)
			fmt.Fprintf(tw, "Name\t%s\n", st.User.DisplayName())
			if st.User.Role != "" {
				fmt.Fprintf(tw, "Role\t%s\n", st.User.Role)
			}
			fmt.Fprintf(tw, "Session\t%s\n", st.Scope)
			return tw.Flush()
		},
	}
}

func (a *app) requireSignedIn() error {
	if !a.session.State().Authenticated() {
		return errNotSignedIn
	}
	return nil
}

// describe turns a service error into the message shown to the operator.
func describe(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsAuthorizationExpired(err):
		return errors.New("session expired; run `bagbank login` again")
	case apperrors.IsInvalidCredentials(err):
		return errors.New(apperrors.InvalidCredentialsMessage)
	}
	if fields := apperrors.GetFields(err); len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for k, v := range fields {
			parts = append(parts, k+": "+v)
		}
		return fmt.Errorf("%s (%s)", apperrors.UserMessage(err, "Invalid input"), strings.Join(sortedCopy(parts), "; "))
	}
	return errors.New(apperrors.UserMessage(err, err.Error()))
}

func prompt(reader *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
