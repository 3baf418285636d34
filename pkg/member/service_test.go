package member

import (
	"context"
	"errors"
	"testing"

	"github.com/neuland-ingolstadt/membership-tools/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvisioner struct {
	calls   int
	account ProvisionedAccount
	err     error
}

func (f *fakeProvisioner) Provision(_ context.Context, firstName, lastName string) (ProvisionedAccount, error) {
	f.calls++
	return f.account, f.err
}

type fakeNotifier struct {
	calls   int
	req     AccountRequest
	account ProvisionedAccount
	err     error
}

func (f *fakeNotifier) SendWelcome(_ context.Context, req AccountRequest, account ProvisionedAccount) error {
	f.calls++
	f.req = req
	f.account = account
	return f.err
}

func validRequest() AccountRequest {
	return AccountRequest{
		FirstName:    "Max",
		LastName:     "Mustermann",
		PrivateEmail: "max@example.com",
	}
}

func TestCreate_Success(t *testing.T) {
	account := ProvisionedAccount{
		LoginToken: "max.mustermann",
		Email:      "max.mustermann@neuland-ingolstadt.de",
		Password:   "aB3aB3aB3aB3",
	}
	prov := &fakeProvisioner{account: account}
	notif := &fakeNotifier{}

	svc := New(prov, notif, Options{})

	got, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, account, got)

	assert.Equal(t, 1, prov.calls)
	assert.Equal(t, 1, notif.calls)
	assert.Equal(t, validRequest(), notif.req)
	assert.Equal(t, account, notif.account)
}

func TestCreate_InvalidEmailGatesProvisioning(t *testing.T) {
	prov := &fakeProvisioner{}
	notif := &fakeNotifier{}
	svc := New(prov, notif, Options{})

	req := validRequest()
	req.PrivateEmail = "max@outlook.com"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var verr *identity.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Zero(t, prov.calls, "provisioning must not run for a rejected address")
	assert.Zero(t, notif.calls)
}

func TestCreate_EmptyNameRejected(t *testing.T) {
	prov := &fakeProvisioner{}
	notif := &fakeNotifier{}
	svc := New(prov, notif, Options{})

	req := validRequest()
	req.FirstName = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Zero(t, prov.calls)
}

func TestCreate_ProvisionFailureSkipsNotify(t *testing.T) {
	dirErr := errors.New("entry already exists")
	prov := &fakeProvisioner{err: dirErr}
	notif := &fakeNotifier{}
	svc := New(prov, notif, Options{})

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, dirErr)
	assert.ErrorContains(t, err, "provision:")
	assert.Zero(t, notif.calls, "no mail may be sent when provisioning failed")
}

func TestCreate_NotifyFailureReportsAccount(t *testing.T) {
	account := ProvisionedAccount{LoginToken: "max.mustermann"}
	sendErr := errors.New("relay unavailable")
	prov := &fakeProvisioner{account: account}
	notif := &fakeNotifier{err: sendErr}
	svc := New(prov, notif, Options{})

	got, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
	assert.ErrorContains(t, err, "notify:")
	// the directory entry exists even though delivery failed
	assert.Equal(t, account, got)
}
