// Package console is the interactive front end: it owns the session, shows
// the menu for the current role and dispatches choices to the retail
// service.
package console

import (
	"context"
	"errors"
	"io"

	"github.com/marshallshelly/retail-console/pkg/retail"
	"go.uber.org/zap"
)

// DefaultChoiceAttempts bounds how often an unparsable choice is reprompted
// before the menu is shown again.
const DefaultChoiceAttempts = 5

// errExit is returned by the exit choice to end Run.
var errExit = errors.New("exit")

// Controller runs the menu loop for one console.
type Controller struct {
	svc     *retail.Service
	in      *Prompter
	out     *Printer
	logger  *zap.Logger
	session retail.Session

	choiceAttempts int
}

// NewController creates a controller reading from in and writing to out.
func NewController(svc *retail.Service, in io.Reader, out io.Writer, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	printer := NewPrinter(out)
	return &Controller{
		svc:            svc,
		in:             NewPrompter(in, printer),
		out:            printer,
		logger:         logger,
		choiceAttempts: DefaultChoiceAttempts,
	}
}

// Session returns a copy of the current session.
func (c *Controller) Session() retail.Session {
	return c.session
}

// Run presents menus until the user exits or input ends. Operation
// failures are printed and never end the loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		err := c.step(ctx, c.menuFor(c.session.Role))
		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

// step shows m once, reads a choice and runs it.
func (c *Controller) step(ctx context.Context, m menu) error {
	m.render(c.out)

	choice, err := c.in.Choice(c.choiceAttempts)
	if errors.Is(err, errTooManyInvalid) {
		c.out.Warning("Too many invalid inputs, showing the menu again.")
		return nil
	}
	if err != nil {
		return err
	}

	item, ok := m.find(choice)
	if !ok {
		c.out.Error("Unrecognized choice!")
		return nil
	}

	if err := item.run(ctx); err != nil {
		if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
			return err
		}
		c.logger.Debug("operation failed",
			zap.String("operation", item.label),
			zap.Stringer("session", c.session.ID),
			zap.Error(err))
		c.out.Error("%s", err.Error())
	}
	return nil
}

func (c *Controller) exit(context.Context) error {
	return errExit
}

func (c *Controller) logOut(context.Context) error {
	c.logger.Info("logged out", zap.Stringer("session", c.session.ID), zap.Int64("user_id", c.session.UserID))
	c.session.Reset()
	return nil
}
