// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package netenum enumerates the local host's network interfaces behind a
// provider abstraction, so that features which probe local interfaces (port
// mapping, local discovery) can be built once and degrade gracefully on
// platforms where the operating system does not expose interface
// enumeration.
//
// Two providers exist: System, backed by the operating system, and
// Unavailable, which always fails with ErrNotImplemented. The package-level
// functions use a default provider selected at build time; on restricted
// platforms every acquisition fails with ErrNotImplemented and the caller is
// expected to disable the dependent feature rather than retry.
package netenum

import "net"

// Interface is one local network interface together with its assigned
// addresses, as it was at the time of enumeration.
type Interface struct {
	net.Interface
	Addrs []net.Addr
}

// Enumerator acquires and releases lists of local network interfaces.
//
// Interfaces returns the current interfaces and transfers ownership of the
// list to the caller. On failure the returned list is always nil, never
// partially populated. Release frees whatever a successful acquisition
// allocated; it must be safe to call with any value a caller may hold,
// including nil and the nil result of a failed acquisition, so cleanup paths
// can run unconditionally.
type Enumerator interface {
	Interfaces() ([]Interface, error)
	Release(ifs []Interface)
}

// Interfaces enumerates using the platform default enumerator. On platforms
// without enumeration support the error is ErrNotImplemented, permanently;
// use IsNotImplemented to tell that apart from transient failures.
func Interfaces() ([]Interface, error) {
	return defaultEnumerator.Interfaces()
}

// Release releases a list obtained from Interfaces. Safe on nil.
func Release(ifs []Interface) {
	defaultEnumerator.Release(ifs)
}

// Default returns the enumerator selected for this platform at build time.
func Default() Enumerator {
	return defaultEnumerator
}
