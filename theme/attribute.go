// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"slices"
	"sync"
)

// Attribute is the theme attribute on the document root. It is written
// by the toggle control (or a host mirroring the real DOM attribute)
// and observed by everything that depends on the theme.
//
// Every call to [Attribute.Set] is one mutation, even if the value does
// not change, and each mutation is delivered exactly once to every
// observer, in the order the mutations happened. Observers run
// synchronously inside Set and must not call Set themselves.
type Attribute struct {

	// deliver serializes mutations so that observers see them in order.
	deliver sync.Mutex

	// mu protects the fields below.
	mu sync.Mutex

	raw string

	observers []*observer
}

type observer struct {
	fn func(th Themes)
}

// NewAttribute returns a new attribute with the given initial raw value.
func NewAttribute(raw string) *Attribute {
	return &Attribute{raw: raw}
}

// Raw returns the raw attribute value.
func (a *Attribute) Raw() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.raw
}

// Get returns the current theme, see [Parse].
func (a *Attribute) Get() Themes {
	return Parse(a.Raw())
}

// Set writes the raw attribute value and notifies all observers.
func (a *Attribute) Set(raw string) {
	a.deliver.Lock()
	defer a.deliver.Unlock()

	a.mu.Lock()
	a.raw = raw
	obs := slices.Clone(a.observers)
	a.mu.Unlock()

	th := Parse(raw)
	for _, o := range obs {
		o.fn(th)
	}
}

// SetTheme writes the given theme as the attribute value.
func (a *Attribute) SetTheme(th Themes) {
	a.Set(th.String())
}

// Observe registers fn to be called with the new theme on every
// mutation. The returned function removes the observer; it is
// safe to call more than once.
func (a *Attribute) Observe(fn func(th Themes)) (cancel func()) {
	o := &observer{fn: fn}
	a.mu.Lock()
	a.observers = append(a.observers, o)
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.observers = slices.DeleteFunc(a.observers, func(x *observer) bool { return x == o })
	}
}

// ObserveCurrent is like [Attribute.Observe], except that fn is also
// called right away with the current theme. No mutation can happen
// between that call and the registration, so fn sees every value.
func (a *Attribute) ObserveCurrent(fn func(th Themes)) (cancel func()) {
	a.deliver.Lock()
	defer a.deliver.Unlock()
	cancel = a.Observe(fn)
	fn(a.Get())
	return cancel
}

// NumObservers returns the number of registered observers.
func (a *Attribute) NumObservers() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.observers)
}
