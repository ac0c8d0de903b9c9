// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package netenum

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by Interfaces on platforms where the
// operating system does not expose interface enumeration. The condition is
// permanent for the lifetime of the process; retrying yields the same
// result. It wraps errors.ErrUnsupported.
var ErrNotImplemented = fmt.Errorf("interface enumeration not implemented on this platform: %w", errors.ErrUnsupported)

// IsNotImplemented reports whether err is, or wraps, ErrNotImplemented.
// Callers use this to distinguish "the capability is permanently absent,
// disable the feature" from enumeration failures that might be transient.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
