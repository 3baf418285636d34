// Package directory provisions member accounts in the LDAP directory.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/neuland-ingolstadt/membership-tools/pkg/credential"
	"github.com/neuland-ingolstadt/membership-tools/pkg/identity"
	"github.com/neuland-ingolstadt/membership-tools/pkg/member"
)

// Error wraps the directory service's diagnostic for a failed operation.
type Error struct {
	Op  string
	DN  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("directory %s %s: %v", e.Op, e.DN, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Conn is the slice of *ldap.Conn the provisioner needs.
type Conn interface {
	Bind(username, password string) error
	Add(request *ldap.AddRequest) error
	Close() error
}

// DialFunc opens a connection to the directory service.
type DialFunc func(ctx context.Context) (Conn, error)

type Config struct {
	// Server URL, e.g. ldap://ldap.example.com:389
	Server string
	// Administrative bind identity and credential
	BindCN       string
	BindPassword string
	// Parent container for member entries, e.g. ou=users,dc=example,dc=com
	UserCN string
	// Domain of the issued organizational address
	MailDomain string
	// Applied to the dial and to every LDAP operation
	Timeout time.Duration
}

type Options struct {
	// Override for testing the directory connection
	Dial DialFunc
	// Structured logger using slog package
	Logger *slog.Logger
}

type Provisioner struct {
	cfg    Config
	dial   DialFunc
	logger *slog.Logger
}

func New(cfg Config, opts Options) *Provisioner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "directory"),
		slog.String("server", cfg.Server),
	)

	p := &Provisioner{
		cfg:    cfg,
		logger: logger,
	}

	p.dial = opts.Dial
	if p.dial == nil {
		p.dial = p.dialDirectory
	}

	return p
}

func (p *Provisioner) dialDirectory(_ context.Context) (Conn, error) {
	conn, err := ldap.DialURL(
		p.cfg.Server,
		ldap.DialWithDialer(&net.Dialer{Timeout: p.cfg.Timeout}),
	)
	if err != nil {
		return nil, err
	}
	conn.SetTimeout(p.cfg.Timeout)
	return conn, nil
}

// Provision creates one mail-enabled person entry under the configured user
// container and returns the issued address together with the generated
// password. The connection is released whether or not the add succeeded.
func (p *Provisioner) Provision(ctx context.Context, firstName, lastName string) (member.ProvisionedAccount, error) {
	token := identity.LoginToken(firstName, lastName)
	dn := fmt.Sprintf("cn=%s,%s", token, p.cfg.UserCN)
	email := token + "@" + p.cfg.MailDomain

	generated, err := credential.Generate()
	if err != nil {
		return member.ProvisionedAccount{}, fmt.Errorf("generate password: %w", err)
	}

	log := p.logger.With(slog.String("dn", dn))
	log.Info("creating directory entry")

	conn, err := p.dial(ctx)
	if err != nil {
		return member.ProvisionedAccount{}, &Error{Op: "dial", DN: dn, Err: err}
	}
	defer conn.Close()

	if err := conn.Bind(p.cfg.BindCN, p.cfg.BindPassword); err != nil {
		return member.ProvisionedAccount{}, &Error{Op: "bind", DN: dn, Err: err}
	}

	request := ldap.NewAddRequest(dn, nil)
	request.Attribute("objectClass", []string{"inetOrgPerson", "PostfixBookMailAccount"})
	request.Attribute("cn", []string{token})
	request.Attribute("givenName", []string{firstName})
	request.Attribute("sn", []string{lastName})
	request.Attribute("displayName", []string{firstName + " " + lastName})
	request.Attribute("userPassword", []string{generated})
	request.Attribute("mail", []string{email})
	request.Attribute("mailEnabled", []string{"TRUE"})

	if err := conn.Add(request); err != nil {
		return member.ProvisionedAccount{}, &Error{Op: "add", DN: dn, Err: err}
	}

	log.Info("directory entry created", slog.String("mail", email))

	return member.ProvisionedAccount{
		LoginToken: token,
		Email:      email,
		Password:   generated,
	}, nil
}
