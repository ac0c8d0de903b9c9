// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package netenum

import (
	"net"

	"github.com/pkg/errors"
)

// System is the Enumerator backed by the operating system. Errors from it
// are never ErrNotImplemented.
type System struct{}

func (System) Interfaces() ([]Interface, error) {
	intfs, err := net.Interfaces()
	if err != nil {
		return nil, errors.Wrap(err, "listing network interfaces")
	}

	ifs := make([]Interface, 0, len(intfs))
	for _, intf := range intfs {
		addrs, err := intf.Addrs()
		if err != nil {
			return nil, errors.Wrapf(err, "listing addresses on %s", intf.Name)
		}
		ifs = append(ifs, Interface{Interface: intf, Addrs: addrs})
	}
	return ifs, nil
}

// Release does nothing; the list holds no OS resources once returned. It
// exists so callers can release unconditionally regardless of which
// enumerator produced (or failed to produce) the list.
func (System) Release([]Interface) {}
