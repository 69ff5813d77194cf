// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Locale is a language tag such as "en" or "es".
type Locale string

func (l Locale) String() string { return string(l) }

// Locales is the configured, ordered set of supported locales and the
// default used when a request names an unsupported one.
type Locales struct {
	Supported []Locale
	Default   Locale
}

// Validate checks the configuration once at startup.
func (ls Locales) Validate() error {
	if len(ls.Supported) == 0 {
		return errors.New("no supported locales configured")
	}
	seen := make(map[Locale]bool, len(ls.Supported))
	for _, l := range ls.Supported {
		if strings.TrimSpace(string(l)) == "" {
			return errors.New("empty locale in supported list")
		}
		if seen[l] {
			return fmt.Errorf("duplicate locale %q", l)
		}
		seen[l] = true
	}
	if !seen[ls.Default] {
		return fmt.Errorf("default locale %q is not supported", ls.Default)
	}
	return nil
}

// Resolve returns raw as a Locale when it is supported, otherwise the
// default. It never fails.
func (ls Locales) Resolve(raw string) Locale {
	return NewLocale(raw, ls.Supported, ls.Default)
}

// Contains reports whether l is one of the supported locales.
func (ls Locales) Contains(l Locale) bool {
	return slices.Contains(ls.Supported, l)
}

// NewLocale returns raw when it is in supported and def otherwise.
func NewLocale(raw string, supported []Locale, def Locale) Locale {
	l := Locale(raw)
	if slices.Contains(supported, l) {
		return l
	}
	return def
}
