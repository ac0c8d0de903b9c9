// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package netenum

import (
	"errors"
	"sync"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestUnavailableAlwaysFails(t *testing.T) {
	var e Unavailable
	for i := 0; i < 3; i++ {
		ifs, err := e.Interfaces()
		if ifs != nil {
			t.Errorf("call %d: got a list (%d entries), expected nil", i, len(ifs))
		}
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("call %d: got %v, expected ErrNotImplemented", i, err)
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			t.Errorf("call %d: error does not wrap errors.ErrUnsupported", i)
		}
	}
}

func TestUnavailableReleaseSafe(t *testing.T) {
	var e Unavailable

	// Nil, as a defensive caller holds after a failed acquisition.
	e.Release(nil)

	ifs, _ := e.Interfaces()
	e.Release(ifs)

	// An arbitrary list the caller constructed themselves.
	e.Release(make([]Interface, 3))
}

type callResult struct {
	ListNil        bool
	NotImplemented bool
}

func observe(e Enumerator) callResult {
	ifs, err := e.Interfaces()
	return callResult{
		ListNil:        ifs == nil,
		NotImplemented: IsNotImplemented(err),
	}
}

func TestUnavailableOrderIndependence(t *testing.T) {
	var e Unavailable

	baseline := observe(e)
	if diff, equal := messagediff.PrettyDiff(callResult{ListNil: true, NotImplemented: true}, baseline); !equal {
		t.Fatalf("isolated call does not match contract. Diff:\n%s", diff)
	}

	// Acquire twice, release twice, release before acquire. Every
	// acquisition must look exactly like the isolated one.
	var results []callResult
	results = append(results, observe(e))
	results = append(results, observe(e))
	e.Release(nil)
	e.Release(nil)
	e.Release(make([]Interface, 1))
	results = append(results, observe(e))

	for i, res := range results {
		if diff, equal := messagediff.PrettyDiff(baseline, res); !equal {
			t.Errorf("call %d differs from isolated call. Diff:\n%s", i, diff)
		}
	}
}

func TestUnavailableConcurrent(t *testing.T) {
	var e Unavailable

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ifs, err := e.Interfaces()
				if ifs != nil || !IsNotImplemented(err) {
					t.Error("concurrent call deviated from contract")
					return
				}
				e.Release(ifs)
			}
		}()
	}
	wg.Wait()
}
