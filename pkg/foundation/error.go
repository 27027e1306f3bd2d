//go:build darwin

package foundation

import (
	"fmt"

	"github.com/ebitengine/purego/objc"
)

var (
	selDomain               = objc.RegisterName("domain")
	selCode                 = objc.RegisterName("code")
	selLocalizedDescription = objc.RegisterName("localizedDescription")
)

// Error carries the domain, code and description of an NSError. The fields
// are read eagerly and the native object is not retained, so an Error stays
// valid after the autorelease pool that produced the NSError drains.
type Error struct {
	Domain      string
	Code        int
	Description string
}

// WrapError copies the fields of a raw NSError into an *Error. It returns
// nil when raw is nil, so call sites can forward the result directly as an
// error value.
func WrapError(raw objc.ID) *Error {
	if raw == 0 {
		return nil
	}
	domain, _ := StringFromRaw(raw.Send(selDomain))
	desc, _ := StringFromRaw(raw.Send(selLocalizedDescription))
	return &Error{
		Domain:      domain.String(),
		Code:        int(raw.Send(selCode)),
		Description: desc.String(),
	}
}

func (e *Error) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("%s error %d", e.Domain, e.Code)
}
