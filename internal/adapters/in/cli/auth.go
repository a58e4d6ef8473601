package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/kestrel/internal/usecase/auth"
)

// newHashPasswordCmd creates the hash-password command.
func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Generate a bcrypt hash for a registry user",
		Long: `Prompt for a password and output its bcrypt hash.

Reference the hash in the config:

  auth:
    enabled: true
    users:
      - username: ci
        password_hash: "<hash>"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.ErrOrStderr(), os.Stdin)
			if err != nil {
				return err
			}
			return runHashPassword(cmd.OutOrStdout(), password)
		},
	}
}

// readPassword reads a password without echo, falling back to a plain line
// for non-terminal input.
func readPassword(prompt io.Writer, in *os.File) (string, error) {
	fmt.Fprint(prompt, "Enter password: ")
	defer fmt.Fprintln(prompt)

	if term.IsTerminal(int(in.Fd())) {
		passwordBytes, err := term.ReadPassword(int(in.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(passwordBytes), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runHashPassword(out io.Writer, password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return fmt.Errorf("failed to generate hash: %w", err)
	}

	fmt.Fprintln(out, hash)
	return nil
}
