// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Lists the local network interfaces and their addresses, or reports that
// interface enumeration is unavailable on this platform.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/syncthing/netenum"
)

var verbose = false // also print MTU and interface flags

func main() {
	flag.BoolVar(&verbose, "v", verbose, "Print MTU and interface flags")
	flag.Parse()

	ifs, err := netenum.Interfaces()
	if err != nil {
		if netenum.IsNotImplemented(err) {
			log.Fatalln("Interface enumeration is not available on this platform")
		}
		log.Fatalln("Listing network interfaces:", err)
	}
	defer netenum.Release(ifs)

	for _, intf := range ifs {
		if verbose {
			fmt.Printf("%s (mtu %d, %v)\n", intf.Name, intf.MTU, intf.Flags)
		} else {
			fmt.Println(intf.Name)
		}
		for _, addr := range intf.Addrs {
			fmt.Println("   ", addr)
		}
	}
}
