// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package netenum

// Unavailable is the Enumerator for platforms where the operating system
// does not expose interface enumeration. Interfaces fails immediately with
// ErrNotImplemented on every call; no probing is attempted and nothing is
// allocated. Both methods are stateless and safe for concurrent use.
type Unavailable struct{}

func (Unavailable) Interfaces() ([]Interface, error) {
	return nil, ErrNotImplemented
}

// Release does nothing. No list is ever acquired from Unavailable, so there
// is nothing to free, but unconditional cleanup paths must remain safe.
func (Unavailable) Release([]Interface) {}
