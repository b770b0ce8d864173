package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/visionai/console/internal/client/api"
	"github.com/visionai/console/internal/client/models"
	"github.com/visionai/console/internal/client/router"
	"github.com/visionai/console/internal/client/views"
)

// Where prints the current path and its breadcrumb trail.
func (a *App) Where(ctx context.Context) error {
	p := a.currentLocation()
	fmt.Fprintf(a.out, "%s  (%s)\n", p, router.Trail(router.Breadcrumbs(p)))
	return nil
}

// Expand toggles the feature statistics of one model on the models page.
func (a *App) Expand(ctx context.Context, id string) error {
	if !a.onPage("/models", "expand") {
		return nil
	}
	if id == "" {
		printlnFn("Usage: expand <model id>")
		return nil
	}

	a.mu.Lock()
	key := models.ID(id)
	a.expanded[key] = !a.expanded[key]
	a.mu.Unlock()

	return a.Refresh(ctx)
}

// Analyze runs the drift analysis and shows its result on the drift page.
func (a *App) Analyze(ctx context.Context) error {
	if !a.onPage("/drift", "analyze") {
		return nil
	}

	res := a.dash.RunDriftAnalysis(ctx)
	a.mu.Lock()
	a.analysis = &res
	a.mu.Unlock()

	a.render(ctx, a.currentLocation())
	return nil
}

// AddUser asks for a username and password and creates the user.
func (a *App) AddUser(ctx context.Context) error {
	if !a.onPage("/users", "adduser") {
		return nil
	}

	userName, err := getSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return a.inputFailed(err)
	}
	password, err := getPassword(a.reader, a.out, "New user password: ")
	if err != nil {
		return a.inputFailed(err)
	}
	defer clear(password)

	msg, err := a.dash.AddUser(ctx, models.NewUser{Username: userName, Password: string(password)})
	if err != nil {
		a.failed(ctx, views.MsgAddUserFailed, err)
		return err
	}
	a.view.Success(msg)
	return a.Refresh(ctx)
}

// ChangePassword changes the signed-in user's password.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.onPage("/users", "passwd") {
		return nil
	}

	oldPassword, err := getPassword(a.reader, a.out, "Current password: ")
	if err != nil {
		return a.inputFailed(err)
	}
	defer clear(oldPassword)

	newPassword, err := getPassword(a.reader, a.out, "New password: ")
	if err != nil {
		return a.inputFailed(err)
	}
	defer clear(newPassword)

	msg, err := a.dash.ChangePassword(ctx, models.PasswordChange{
		OldPassword: string(oldPassword),
		NewPassword: string(newPassword),
	})
	if err != nil {
		a.failed(ctx, views.MsgChangePasswordFailed, err)
		return err
	}
	a.view.Success(msg)
	return nil
}

// RegisterModel runs the two-step registration form. The first step asks
// whether the model is restricted; restricted models skip the description
// and labels.
func (a *App) RegisterModel(ctx context.Context) error {
	if !a.onPage("/model-metadata", "register") {
		return nil
	}

	answer, err := getSimpleText(a.reader, "Is this a restricted model? (y/N)", a.out)
	if err != nil {
		return a.inputFailed(err)
	}
	reg := models.ModelRegistration{Restricted: isYes(answer)}

	if reg.Name, err = getSimpleText(a.reader, "Model name", a.out); err != nil {
		return a.inputFailed(err)
	}
	if reg.Version, err = getSimpleText(a.reader, "Version", a.out); err != nil {
		return a.inputFailed(err)
	}
	if reg.Author, err = getSimpleText(a.reader, "Author", a.out); err != nil {
		return a.inputFailed(err)
	}

	if !reg.Restricted {
		if reg.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
			return a.inputFailed(err)
		}
		raw, err := getSimpleText(a.reader, "Labels (comma separated)", a.out)
		if err != nil {
			return a.inputFailed(err)
		}
		if reg.Labels, err = models.LabelsFromString(raw); err != nil {
			a.view.Error(err.Error())
			return err
		}
	}

	msg, err := a.dash.RegisterModel(ctx, reg)
	if err != nil {
		a.failed(ctx, views.MsgRegisterFailed, err)
		return err
	}
	a.view.Success(msg)
	return nil
}

// failed prints the backend's own explanation when it gave one, the
// validation message for form errors, and fallback otherwise.
func (a *App) failed(ctx context.Context, fallback string, err error) {
	a.log.Debug(ctx, "action failed", "error", err)

	if detail := api.DetailOf(err); detail != "" {
		a.view.Error(detail)
		return
	}
	if isValidation(err) {
		a.view.Error(err.Error())
		return
	}
	a.view.Error(fallback)
}

func isValidation(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve)
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

// inputFailed reports a form that could not be read, e.g. a password
// prompt without a terminal, instead of leaving the command silent.
func (a *App) inputFailed(err error) error {
	a.view.Error("Cannot read input: " + err.Error())
	return err
}
