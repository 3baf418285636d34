// Offline onboarding: creates the directory account and prints the issued
// credential to the console instead of emailing it. Useful when no SMTP
// relay is reachable.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/neuland-ingolstadt/membership-tools/internal/config"
	"github.com/neuland-ingolstadt/membership-tools/pkg/directory"
)

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		fail(err)
	}
	return strings.TrimSpace(line)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg := config.AppConfig
	in := bufio.NewReader(os.Stdin)

	fmt.Println("Collecting information for LDAP account ...")
	firstName := prompt(in, "First name: ")
	lastName := prompt(in, "Last name: ")

	provisioner := directory.New(directory.Config{
		Server:       cfg.LDAP.Server,
		BindCN:       cfg.LDAP.BindCN,
		BindPassword: cfg.LDAP.BindPassword,
		UserCN:       cfg.LDAP.UserCN,
		MailDomain:   cfg.Mail.Domain,
		Timeout:      cfg.LDAP.Timeout,
	}, directory.Options{})

	fmt.Println("Creating LDAP account ...")
	account, err := provisioner.Provision(context.Background(), firstName, lastName)
	if err != nil {
		fail(err)
	}
	fmt.Println("LDAP account created.")

	fmt.Printf("Email: %s\n", account.Email)
	fmt.Printf("Password: %s\n", account.Password)
}
