package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/hypernova-labs/invoice-actions/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	session *auth.Session
	err     error
	got     auth.Credentials
}

func (p *stubProvider) SignIn(_ context.Context, creds auth.Credentials) (*auth.Session, error) {
	p.got = creds
	return p.session, p.err
}

func loginForm() url.Values {
	return url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}}
}

func TestAuthenticate_Success(t *testing.T) {
	provider := &stubProvider{session: &auth.Session{Token: "tok"}}
	actions := NewAuthActions(provider, quietLogger())

	session, message, err := actions.Authenticate(context.Background(), loginForm())
	require.NoError(t, err)
	assert.Empty(t, message)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, auth.Credentials{Email: "user@nextmail.com", Password: "123456"}, provider.got)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	provider := &stubProvider{err: &auth.Error{Type: auth.CredentialsSignin}}
	actions := NewAuthActions(provider, quietLogger())

	session, message, err := actions.Authenticate(context.Background(), loginForm())
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Equal(t, "Invalid credentials.", message)
}

func TestAuthenticate_OtherAuthError(t *testing.T) {
	provider := &stubProvider{err: &auth.Error{Type: auth.CallbackRouteError, Err: errors.New("bad hash")}}
	actions := NewAuthActions(provider, quietLogger())

	_, message, err := actions.Authenticate(context.Background(), loginForm())
	require.NoError(t, err)
	assert.Equal(t, "Something went wrong.", message)
}

func TestAuthenticate_UnclassifiedErrorPropagates(t *testing.T) {
	providerErr := errors.New("connection refused")
	provider := &stubProvider{err: providerErr}
	actions := NewAuthActions(provider, quietLogger())

	session, message, err := actions.Authenticate(context.Background(), loginForm())
	assert.ErrorIs(t, err, providerErr)
	assert.Nil(t, session)
	assert.Empty(t, message)
}
