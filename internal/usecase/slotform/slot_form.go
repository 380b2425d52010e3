// Package slotform validates and submits the slot creation form.
//
// Checks run on every submission in a fixed order: start time present, start
// time strictly in the future, capacity an integer of at least one. A failed
// check blocks the request and reports an inline message for the field.
package slotform

import (
	"context"
	"reflect"
	"strconv"
	"strings"
	"time"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/pkg/clock"
	"slot-booking-web/internal/pkg/errs"
	"slot-booking-web/internal/pkg/notice"
	"slot-booking-web/internal/usecase/commands"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=slot_form.go -destination=../../../tests/mock/slotform/slot_form_mock.go -package=slotformmock

const (
	FieldStartTime   = "startTime"
	FieldMaxBookings = "maxBookings"

	// InputLayout matches an HTML datetime-local input.
	InputLayout = "2006-01-02T15:04"

	DefaultMaxBookings = "1"
)

const (
	MsgStartTimeRequired = "Start time is required"
	MsgStartTimeInvalid  = "Start time must be a valid date and time"
	MsgStartTimeFuture   = "Start time must be in the future"
	MsgMaxBookingsNumber = "Max bookings must be a whole number"
	MsgMaxBookingsMin    = "Must allow at least 1 booking"
	MsgCreated           = "Slot created successfully!"
)

var startTimeLayouts = []string{
	InputLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var fieldMessages = map[string]map[string]string{
	FieldStartTime: {
		"required":  MsgStartTimeRequired,
		"slot_time": MsgStartTimeInvalid,
		"future":    MsgStartTimeFuture,
	},
	FieldMaxBookings: {
		"required":     MsgMaxBookingsNumber,
		"whole_number": MsgMaxBookingsNumber,
		"min_bookings": MsgMaxBookingsMin,
	},
}

type Values struct {
	StartTime   string `form:"startTime" validate:"required,slot_time,future"`
	MaxBookings string `form:"maxBookings" validate:"required,whole_number,min_bookings"`
}

func (v Values) normalized() Values {
	return Values{
		StartTime:   strings.TrimSpace(v.StartTime),
		MaxBookings: strings.TrimSpace(v.MaxBookings),
	}
}

type FieldErrors map[string]string

func (fe FieldErrors) Get(field string) string { return fe[field] }

type State struct {
	Values Values
	Errors FieldErrors
	Notice notice.Notice
}

type SlotCreator interface {
	CreateSlot(ctx context.Context, draft slot.Draft) commands.Result
}

// Submission reports the form state after a submit. Result is nil when
// validation blocked the request.
type Submission struct {
	State  State
	Result *commands.Result
}

type Controller struct {
	creator   SlotCreator
	clock     clock.Clock
	location  *time.Location
	noticeTTL time.Duration
	validate  *validator.Validate
}

func NewController(creator SlotCreator, clk clock.Clock, loc *time.Location, noticeTTL time.Duration) (*Controller, error) {
	if loc == nil {
		loc = time.UTC
	}
	c := &Controller{
		creator:   creator,
		clock:     clk,
		location:  loc,
		noticeTTL: noticeTTL,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}

	c.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		return name
	})
	rules := map[string]validator.Func{
		"slot_time": func(fl validator.FieldLevel) bool {
			_, err := c.parseStartTime(fl.Field().String())
			return err == nil
		},
		"future": func(fl validator.FieldLevel) bool {
			t, err := c.parseStartTime(fl.Field().String())
			return err == nil && t.After(c.clock.Now())
		},
		"whole_number": func(fl validator.FieldLevel) bool {
			_, err := strconv.Atoi(fl.Field().String())
			return err == nil
		},
		"min_bookings": func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Field().String())
			return err == nil && n >= 1
		},
	}
	for tag, fn := range rules {
		if err := c.validate.RegisterValidation(tag, fn); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Defaults is the form's reset state: start now, capacity one.
func (c *Controller) Defaults() Values {
	return Values{
		StartTime:   c.MinStartTime(),
		MaxBookings: DefaultMaxBookings,
	}
}

func (c *Controller) MinStartTime() string {
	return c.clock.Now().In(c.location).Format(InputLayout)
}

func (c *Controller) Initial() State {
	return State{Values: c.Defaults()}
}

// Clear resets the form without submitting.
func (c *Controller) Clear() State {
	return c.Initial()
}

// Validate checks the values against the current time and returns the draft
// to submit, or the inline errors keyed by field.
func (c *Controller) Validate(v Values) (slot.Draft, FieldErrors) {
	v = v.normalized()
	if err := c.validate.Struct(v); err != nil {
		return slot.Draft{}, toFieldErrors(err)
	}

	start, _ := c.parseStartTime(v.StartTime)
	capacity, _ := strconv.Atoi(v.MaxBookings)
	draft, err := slot.NewDraft(start, capacity, c.clock.Now())
	switch {
	case errs.Is(err, slot.ErrStartTimeNotFuture):
		return slot.Draft{}, FieldErrors{FieldStartTime: MsgStartTimeFuture}
	case errs.Is(err, slot.ErrInvalidCapacity):
		return slot.Draft{}, FieldErrors{FieldMaxBookings: MsgMaxBookingsMin}
	}
	return draft, nil
}

func (c *Controller) Submit(ctx context.Context, v Values) Submission {
	draft, fieldErrs := c.Validate(v)
	if len(fieldErrs) > 0 {
		return Submission{State: State{Values: v, Errors: fieldErrs}}
	}

	res := c.creator.CreateSlot(ctx, draft)
	if !res.OK() {
		return Submission{State: State{Values: v}, Result: &res}
	}

	return Submission{
		State: State{
			Values: c.Defaults(),
			Notice: notice.Success(MsgCreated).Until(c.clock.Now().Add(c.noticeTTL)),
		},
		Result: &res,
	}
}

func (c *Controller) parseStartTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.ParseInLocation(layout, raw, c.location)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toFieldErrors(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return FieldErrors{FieldStartTime: MsgStartTimeInvalid}
	}
	fe := make(FieldErrors, len(verrs))
	for _, e := range verrs {
		if _, seen := fe[e.Field()]; seen {
			continue
		}
		fe[e.Field()] = fieldMessages[e.Field()][e.Tag()]
	}
	return fe
}
