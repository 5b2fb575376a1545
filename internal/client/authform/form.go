// Package authform runs the sign-in and sign-up form: field validation, the
// call into the identity service and the message shown afterwards.
package authform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/client/services"
	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/logging"
	"github.com/go-playground/validator/v10"
)

type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

const (
	MsgRegistered = "Registration successful. You can now sign in."
	MsgGeneric    = "An error occurred"
)

// Identity is the part of the remote store the form talks to.
type Identity interface {
	SignIn(ctx context.Context, cred services.Credential) error
	SignUp(ctx context.Context, cred services.Credential) error
}

type Form struct {
	Mode     Mode
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Result tells the caller where to go next and what to show.
type Result struct {
	Route   models.Route
	Message string
}

var fieldMessages = map[string]string{
	"Email":    "Enter a valid email address",
	"Password": "Password must be at least 6 characters",
}

type Submitter struct {
	identity Identity
	validate *validator.Validate
	logger   logging.Logger
}

func NewSubmitter(id Identity, l logging.Logger) *Submitter {
	return &Submitter{
		identity: id,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   l.With("module", "authform"),
	}
}

// Validate checks the form fields. The first failing field is returned as a
// *common.ValidationError.
func (s *Submitter) Validate(f Form) error {
	err := s.validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		return &common.ValidationError{Field: strings.ToLower(field), Message: fieldMessages[field]}
	}
	return fmt.Errorf("validate form: %w", err)
}

// Submit validates the form and signs in or registers. It never returns an
// error: every failure becomes the result message and the route stays on
// the login screen.
func (s *Submitter) Submit(ctx context.Context, f Form) Result {
	if err := s.Validate(f); err != nil {
		return Result{Route: models.RouteLogin, Message: message(err)}
	}

	cred := services.Credential{Email: f.Email, Password: f.Password}

	switch f.Mode {
	case ModeRegister:
		if err := s.identity.SignUp(ctx, cred); err != nil {
			s.logger.Error(ctx, "sign up failed", "err", err)
			return Result{Route: models.RouteLogin, Message: message(err)}
		}
		return Result{Route: models.RouteLogin, Message: MsgRegistered}
	default:
		if err := s.identity.SignIn(ctx, cred); err != nil {
			s.logger.Error(ctx, "sign in failed", "err", err)
			return Result{Route: models.RouteLogin, Message: message(err)}
		}
		return Result{Route: models.RouteDashboard}
	}
}

func message(err error) string {
	var ae *common.AuthError
	if errors.As(err, &ae) {
		return ae.Message
	}
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return MsgGeneric
}
