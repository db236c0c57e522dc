// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-gate/internal/app"
)

// FieldChain is the ordered rule list for one payload field.
type FieldChain struct {
	Name  string
	Rules []Rule
}

// Field declares the rule chain for name.
func Field(name string, rules ...Rule) FieldChain {
	return FieldChain{Name: name, Rules: rules}
}

// PayloadCheck inspects the payload as a whole and returns zero or more
// failures.
type PayloadCheck func(payload Payload) []FieldError

// Profile is the immutable validation configuration of one operation.
type Profile struct {
	name          string
	allowedFields []string
	checks        []PayloadCheck
	fields        []FieldChain
}

// NewProfile builds a profile whose allow-list is exactly the set of
// declared fields. The allowed-fields guard is installed as the first
// payload check.
//
// Returns ErrInvalidProfile when the allow-list and the declared chains
// disagree or a name is repeated.
func NewProfile(name string, allowedFields []string, fields ...FieldChain) (*Profile, error) {
	allowed := make(map[string]struct{}, len(allowedFields))
	for _, f := range allowedFields {
		if _, dup := allowed[f]; dup {
			return nil, fmt.Errorf("%w: %s: field %q allowed twice", ErrInvalidProfile, name, f)
		}
		allowed[f] = struct{}{}
	}

	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := declared[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s: field %q declared twice", ErrInvalidProfile, name, f.Name)
		}
		if _, ok := allowed[f.Name]; !ok {
			return nil, fmt.Errorf("%w: %s: field %q has rules but is not allowed", ErrInvalidProfile, name, f.Name)
		}
		declared[f.Name] = struct{}{}
	}

	for _, f := range allowedFields {
		if _, ok := declared[f]; !ok {
			return nil, fmt.Errorf("%w: %s: allowed field %q has no rules", ErrInvalidProfile, name, f)
		}
	}

	p := &Profile{
		name:          name,
		allowedFields: append([]string(nil), allowedFields...),
		fields:        append([]FieldChain(nil), fields...),
	}
	p.checks = []PayloadCheck{AllowedFieldsGuard(p.allowedFields)}

	return p, nil
}

// MustProfile is like NewProfile but panics on error. It is meant for
// package-level profile definitions.
func MustProfile(name string, allowedFields []string, fields ...FieldChain) *Profile {
	p, err := NewProfile(name, allowedFields, fields...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name implements [PayloadValidator].
func (p *Profile) Name() string {
	return p.name
}

// AllowedFieldsGuard returns the field-set guard: a single UnexpectedField error
// naming every key outside allowed, in payload order.
func AllowedFieldsGuard(allowed []string) PayloadCheck {
	set := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		set[f] = struct{}{}
	}

	return func(payload Payload) []FieldError {
		var invalid []string
		for _, key := range payload.Keys() {
			if _, ok := set[key]; !ok {
				invalid = append(invalid, key)
			}
		}
		if len(invalid) == 0 {
			return nil
		}

		return []FieldError{{
			Message: app.MsgInvalidFieldsPrefix + strings.Join(invalid, ", "),
			Kind:    UnexpectedField,
		}}
	}
}
