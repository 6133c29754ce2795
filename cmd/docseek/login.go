package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nhath/docseek/internal/config"
)

var flagLoginDelete bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the hosted search API key in the system keyring",
	Long: `Reads the API key from the terminal (or stdin when piped) and saves it
in the system keyring. Flags and DOCSEEK_API_KEY still take precedence.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().BoolVar(&flagLoginDelete, "delete", false, "Remove the stored API key")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	store, err := config.NewKeyringStore()
	if err != nil {
		return err
	}

	if flagLoginDelete {
		if err := store.DeleteAPIKey(); err != nil {
			return fmt.Errorf("failed to remove api key: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
		return nil
	}

	key, err := promptAPIKey(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := store.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store api key: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "API key saved to keyring.")
	return nil
}

// promptAPIKey reads one line, without echo when in is a terminal
func promptAPIKey(in io.Reader, prompt io.Writer) (string, error) {
	var line string
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "API key: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		line = string(b)
	} else {
		s, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = s
	}

	key := strings.TrimSpace(line)
	if key == "" {
		return "", errors.New("no api key given")
	}
	return key, nil
}
