package content

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var ErrInvalidEntry = errors.New("invalid journey entry")

// Validate checks content integrity and returns every violation found.
// Each journey entry must carry exactly one of a description or a role list.
func Validate(site *Site) error {
	if site == nil {
		return fmt.Errorf("%w: no content", ErrInvalidEntry)
	}
	var err error
	if len(site.Journey) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: journey is empty", ErrInvalidEntry))
	}
	for i, e := range site.Journey {
		err = multierr.Append(err, validateEntry(i, e))
	}
	return err
}

func validateEntry(i int, e Entry) error {
	var err error
	fail := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: entry %d (%q): %s", ErrInvalidEntry, i, e.Title, fmt.Sprintf(format, args...)))
	}

	if e.Title == "" {
		fail("missing title")
	}
	if e.Category == "" {
		fail("missing category")
	}
	if e.Logo == "" {
		fail("missing logo")
	}

	hasDescription := e.Description != ""
	switch {
	case hasDescription && e.IsComposite():
		fail("has both description and roles")
	case !hasDescription && !e.IsComposite():
		fail("has neither description nor roles")
	case hasDescription && e.Time == "":
		fail("missing time range")
	}

	for j, r := range e.Roles {
		if r.Time == "" {
			fail("role %d missing time range", j)
		}
		if r.Description == "" {
			fail("role %d missing description", j)
		}
	}
	return err
}
