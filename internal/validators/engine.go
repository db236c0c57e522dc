package validators

// Outcome is the result of validating one payload.
type Outcome struct {
	// Errors lists every failure: payload checks first, then fields in
	// declared order, rules in declared order within a field.
	Errors []FieldError

	// Normalized holds the normalized value of every declared field that
	// was present in the payload. It is empty unless OK reports true.
	Normalized Payload
}

// OK reports whether validation produced no errors.
func (o Outcome) OK() bool {
	return len(o.Errors) == 0
}

// Validate implements [PayloadValidator].
//
// Every payload check and every field chain runs regardless of earlier
// failures. Within a chain, the first rule that reports failures ends the
// chain; rules composed with AllOf report all of theirs at once.
func (p *Profile) Validate(payload Payload) Outcome {
	var out Outcome
	for _, check := range p.checks {
		out.Errors = append(out.Errors, check(payload)...)
	}

	var normalized Payload
	for _, f := range p.fields {
		raw, present := payload.Get(f.Name)

		value, failures := f.run(raw, payload)
		for _, failure := range failures {
			out.Errors = append(out.Errors, FieldError{
				Field:   f.Name,
				Message: failure.Message,
				Kind:    failure.Kind,
			})
		}

		if present {
			normalized.Set(f.Name, value)
		}
	}

	if out.OK() {
		out.Normalized = normalized
	}

	return out
}

func (f FieldChain) run(value string, payload Payload) (string, []Failure) {
	for _, rule := range f.Rules {
		res := rule.Apply(value, payload)
		value = res.Value
		if len(res.Failures) > 0 {
			return value, res.Failures
		}
		if res.Skip {
			break
		}
	}
	return value, nil
}
