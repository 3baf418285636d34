// Interactive onboarding: prompts for the member's details, creates the
// directory account and emails the credential, mirroring the web flow.
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
	"github.com/neuland-ingolstadt/membership-tools/pkg/identity"
	"github.com/neuland-ingolstadt/membership-tools/pkg/member"
	"github.com/neuland-ingolstadt/membership-tools/pkg/notify"
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
	// the console transcript is the interface; keep structured logs to warnings
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg := config.AppConfig
	in := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	fmt.Println("Collecting information for LDAP account ...")
	firstName := prompt(in, "First name: ")
	lastName := prompt(in, "Last name: ")
	privateEmail := prompt(in, "Private Email: ")

	if err := identity.ValidateEmail(privateEmail); err != nil {
		fail(err)
	}

	provisioner := directory.New(directory.Config{
		Server:       cfg.LDAP.Server,
		BindCN:       cfg.LDAP.BindCN,
		BindPassword: cfg.LDAP.BindPassword,
		UserCN:       cfg.LDAP.UserCN,
		MailDomain:   cfg.Mail.Domain,
		Timeout:      cfg.LDAP.Timeout,
	}, directory.Options{})

	mailer, err := notify.NewMailer(notify.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		User:        cfg.SMTP.User,
		Password:    cfg.SMTP.Pass,
		FromName:    cfg.Mail.FromName,
		FromAddress: cfg.Mail.FromAddress,
		Subject:     cfg.Mail.Subject,
		Timeout:     cfg.SMTP.Timeout,
	}, notify.NewRenderer(cfg.TemplateDir), notify.Options{})
	if err != nil {
		fail(err)
	}

	fmt.Println("Creating LDAP account ...")
	account, err := provisioner.Provision(ctx, firstName, lastName)
	if err != nil {
		fail(err)
	}
	fmt.Println("LDAP account created.")
	fmt.Printf("Email: %s\n", account.Email)
	fmt.Printf("Password: %s\n", account.Password)

	fmt.Println("Sending email ...")
	req := member.AccountRequest{
		FirstName:    firstName,
		LastName:     lastName,
		PrivateEmail: privateEmail,
	}
	if err := mailer.SendWelcome(ctx, req, account); err != nil {
		fail(err)
	}
	fmt.Println("Welcome email sent.")
}
