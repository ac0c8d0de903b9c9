// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build android

package netenum

// Android restricts the netlink sockets the standard library needs for
// interface enumeration. We don't attempt any substitute mechanism;
// enumeration is simply unavailable and dependent features should disable
// themselves.
var defaultEnumerator Enumerator = Unavailable{}
