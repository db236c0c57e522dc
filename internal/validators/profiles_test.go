package validators

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validRegisterPayload() Payload {
	return NewPayload(
		FieldFirstName, "John",
		FieldLastName, "Doe",
		FieldEmailID, "john.doe@example.com",
		FieldPassword, "Secur3!Pass",
	)
}

func messages(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func decode(t *testing.T, body string) Payload {
	t.Helper()
	return DecodePayload(strings.NewReader(body))
}

// ── register ──────────────────────────────────────────────────────────────────

func TestRegister_ValidPayload(t *testing.T) {
	out := Register().Validate(validRegisterPayload())

	require.True(t, out.OK(), "unexpected errors: %v", out.Errors)
	assert.Empty(t, out.Errors)
	assert.Equal(t, []string{FieldFirstName, FieldLastName, FieldEmailID, FieldPassword}, out.Normalized.Keys())

	email, ok := out.Normalized.Get(FieldEmailID)
	require.True(t, ok)
	assert.Equal(t, "john.doe@example.com", email)
}

func TestRegister_LastNameOmitted(t *testing.T) {
	payload := NewPayload(
		FieldFirstName, "John",
		FieldEmailID, "john@example.com",
		FieldPassword, "Secur3!Pass",
	)

	out := Register().Validate(payload)

	require.True(t, out.OK(), "unexpected errors: %v", out.Errors)
	_, ok := out.Normalized.Get(FieldLastName)
	assert.False(t, ok, "omitted optional field must stay absent")
}

func TestRegister_LastNameBlankIsSkipped(t *testing.T) {
	payload := validRegisterPayload()
	payload.Set(FieldLastName, "   ")

	out := Register().Validate(payload)

	require.True(t, out.OK(), "unexpected errors: %v", out.Errors)
	lastName, ok := out.Normalized.Get(FieldLastName)
	require.True(t, ok)
	assert.Equal(t, "", lastName)
}

func TestRegister_UnexpectedFields(t *testing.T) {
	payload := validRegisterPayload()
	payload.Set("role", "admin")
	payload.Set("isAdmin", "true")

	out := Register().Validate(payload)

	require.False(t, out.OK())
	require.Len(t, out.Errors, 1)
	assert.Equal(t, FieldError{
		Field:   "",
		Message: "Invalid fields: role, isAdmin",
		Kind:    UnexpectedField,
	}, out.Errors[0])
}

func TestRegister_UnexpectedFieldsKeepPayloadOrder(t *testing.T) {
	payload := decode(t, `{"zeta":"1","firstName":"John","alpha":"2","emailId":"a@b.co","password":"Secur3!Pass","mid":"3"}`)

	out := Register().Validate(payload)

	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Invalid fields: zeta, alpha, mid", out.Errors[0].Message)
}

func TestRegister_GuardDoesNotShortCircuitFieldRules(t *testing.T) {
	payload := NewPayload(
		"nickname", "jj",
		FieldFirstName, "J",
		FieldEmailID, "not-an-email",
		FieldPassword, "Secur3!Pass",
	)

	out := Register().Validate(payload)

	assert.Equal(t, []FieldError{
		{Field: "", Message: "Invalid fields: nickname", Kind: UnexpectedField},
		{Field: FieldFirstName, Message: "First name should be between 2 and 25 characters", Kind: Shape},
		{Field: FieldEmailID, Message: "Invalid email address", Kind: Shape},
	}, out.Errors)
	assert.Zero(t, out.Normalized.Len())
}

func TestRegister_FirstNameRules(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		want      []string
	}{
		{name: "digit", firstName: "Jo3", want: []string{"First name should contain only alphabets"}},
		{name: "too short", firstName: "J", want: []string{"First name should be between 2 and 25 characters"}},
		{name: "too long", firstName: strings.Repeat("a", 26), want: []string{"First name should be between 2 and 25 characters"}},
		{name: "internal space", firstName: "Jo hn", want: []string{"First name should contain only alphabets"}},
		{name: "empty", firstName: "", want: []string{"First name should not be empty"}},
		{name: "blank", firstName: "   ", want: []string{"First name should not be empty"}},
		{name: "markup", firstName: "<b>", want: []string{"First name should contain only alphabets"}},
		{name: "surrounding spaces trimmed", firstName: "  John  ", want: nil},
		{name: "upper bound", firstName: strings.Repeat("a", 25), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRegisterPayload()
			payload.Set(FieldFirstName, tt.firstName)

			out := Register().Validate(payload)

			if tt.want == nil {
				assert.True(t, out.OK(), "unexpected errors: %v", out.Errors)
				return
			}
			assert.Equal(t, tt.want, messages(out.Errors))
			for _, e := range out.Errors {
				assert.Equal(t, FieldFirstName, e.Field)
			}
		})
	}
}

func TestRegister_FirstNameMissingIsMissingField(t *testing.T) {
	payload := NewPayload(
		FieldEmailID, "john@example.com",
		FieldPassword, "Secur3!Pass",
	)

	out := Register().Validate(payload)

	require.Len(t, out.Errors, 1)
	assert.Equal(t, FieldFirstName, out.Errors[0].Field)
	assert.Equal(t, MissingField, out.Errors[0].Kind)
}

func TestRegister_LastNameRules(t *testing.T) {
	tests := []struct {
		name     string
		lastName string
		want     []string
	}{
		{name: "too long", lastName: strings.Repeat("b", 26), want: []string{"Last name should be less than 25 characters"}},
		{name: "digit", lastName: "Do3", want: []string{"Last name should contain only alphabets"}},
		{name: "internal space", lastName: "Van Dyke", want: []string{"Last name should contain only alphabets"}},
		{name: "single letter", lastName: "D", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRegisterPayload()
			payload.Set(FieldLastName, tt.lastName)

			out := Register().Validate(payload)

			if tt.want == nil {
				assert.True(t, out.OK(), "unexpected errors: %v", out.Errors)
				return
			}
			assert.Equal(t, tt.want, messages(out.Errors))
		})
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	payload := validRegisterPayload()
	payload.Set(FieldEmailID, "not-an-email")

	out := Register().Validate(payload)

	require.Len(t, out.Errors, 1)
	assert.Equal(t, FieldError{Field: FieldEmailID, Message: "Invalid email address", Kind: Shape}, out.Errors[0])
}

func TestRegister_EmailTrimmed(t *testing.T) {
	payload := validRegisterPayload()
	payload.Set(FieldEmailID, "  john@example.com\t")

	out := Register().Validate(payload)

	require.True(t, out.OK(), "unexpected errors: %v", out.Errors)
	email, _ := out.Normalized.Get(FieldEmailID)
	assert.Equal(t, "john@example.com", email)
}

func TestRegister_PasswordComposition(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{
			name:     "lowercase only",
			password: "abcdefgh",
			want: []string{
				"Password must contain at least one uppercase letter",
				"Password must contain at least one number",
				"Password must contain at least one symbol",
			},
		},
		{
			name:     "short but otherwise complete",
			password: "Ab1!",
			want:     []string{"Password should be at least 8 characters long"},
		},
		{
			name:     "digits only",
			password: "1",
			want: []string{
				"Password should be at least 8 characters long",
				"Password must contain at least one uppercase letter",
				"Password must contain at least one lowercase letter",
				"Password must contain at least one symbol",
			},
		},
		{
			name:     "empty stops at presence",
			password: "",
			want:     []string{"Password should not be empty"},
		},
		{
			name:     "underscore is not a symbol",
			password: "Abcdefg1_",
			want:     []string{"Password must contain at least one symbol"},
		},
		{
			name:     "complete",
			password: "Abcdefg1!",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRegisterPayload()
			payload.Set(FieldPassword, tt.password)

			out := Register().Validate(payload)

			if tt.want == nil {
				assert.True(t, out.OK(), "unexpected errors: %v", out.Errors)
				return
			}
			assert.Equal(t, tt.want, messages(out.Errors))
		})
	}
}

func TestRegister_PasswordNotTrimmed(t *testing.T) {
	payload := validRegisterPayload()
	payload.Set(FieldPassword, " Secur3!Pass ")

	out := Register().Validate(payload)

	require.True(t, out.OK(), "unexpected errors: %v", out.Errors)
	password, _ := out.Normalized.Get(FieldPassword)
	assert.Equal(t, " Secur3!Pass ", password)
}

func TestRegister_EmptyPayload(t *testing.T) {
	for _, body := range []string{"", "null", "[]", `"text"`, "{not json", `{"firstName":`} {
		t.Run(body, func(t *testing.T) {
			out := Register().Validate(decode(t, body))

			assert.Equal(t, []FieldError{
				{Field: FieldFirstName, Message: "First name should not be empty", Kind: MissingField},
				{Field: FieldEmailID, Message: "Email should not be empty", Kind: MissingField},
				{Field: FieldPassword, Message: "Password should not be empty", Kind: MissingField},
			}, out.Errors)
		})
	}
}

func TestRegister_NullValuesAreMissing(t *testing.T) {
	out := Register().Validate(decode(t, `{"firstName":null,"emailId":"a@b.co","password":"Secur3!Pass"}`))

	require.Len(t, out.Errors, 1)
	assert.Equal(t, FieldError{Field: FieldFirstName, Message: "First name should not be empty", Kind: MissingField}, out.Errors[0])
}

func TestRegister_Idempotent(t *testing.T) {
	payload := NewPayload(
		FieldFirstName, "  John ",
		FieldLastName, "Doe",
		FieldEmailID, " john@example.com ",
		FieldPassword, `P&ss<w0rd>"/'`,
	)

	first := Register().Validate(payload)
	require.True(t, first.OK(), "unexpected errors: %v", first.Errors)

	encoded, err := json.Marshal(first.Normalized)
	require.NoError(t, err)

	second := Register().Validate(decode(t, string(encoded)))
	require.True(t, second.OK(), "unexpected errors: %v", second.Errors)
	assert.Equal(t, first.Normalized, second.Normalized)
}

func TestRegister_PasswordForeignReferencesAreEscaped(t *testing.T) {
	payload := NewPayload(
		FieldFirstName, "John",
		FieldEmailID, "john@example.com",
		FieldPassword, " Ab1&x; <'\"/\\`>&amp ",
	)

	out := Register().Validate(payload)
	require.True(t, out.OK(), "unexpected errors: %v", out.Errors)

	password, _ := out.Normalized.Get(FieldPassword)
	assert.Equal(t, " Ab1&amp;x; &lt;&#x27;&quot;&#x2F;&#x5C;&#96;&gt;&amp;amp ", password)

	again := Register().Validate(out.Normalized)
	require.True(t, again.OK())
	assert.Equal(t, out.Normalized, again.Normalized)
}

// ── login ─────────────────────────────────────────────────────────────────────

func TestLogin_Valid(t *testing.T) {
	out := Login().Validate(NewPayload(FieldEmailID, "john@example.com", FieldPassword, "abcdefgh"))

	require.True(t, out.OK(), "unexpected errors: %v", out.Errors)
	assert.Equal(t, []string{FieldEmailID, FieldPassword}, out.Normalized.Keys())
}

func TestLogin_PasswordTrimmed(t *testing.T) {
	out := Login().Validate(NewPayload(FieldEmailID, "john@example.com", FieldPassword, "  secret  "))

	require.True(t, out.OK())
	password, _ := out.Normalized.Get(FieldPassword)
	assert.Equal(t, "secret", password)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []FieldError
	}{
		{
			name: "register-only field rejected",
			body: `{"emailId":"john@example.com","password":"x","firstName":"John"}`,
			want: []FieldError{{Field: "", Message: "Invalid fields: firstName", Kind: UnexpectedField}},
		},
		{
			name: "blank password",
			body: `{"emailId":"john@example.com","password":"   "}`,
			want: []FieldError{{Field: FieldPassword, Message: "Password should not be empty", Kind: MissingField}},
		},
		{
			name: "bad email and missing password",
			body: `{"emailId":"john@"}`,
			want: []FieldError{
				{Field: FieldEmailID, Message: "Invalid email address", Kind: Shape},
				{Field: FieldPassword, Message: "Password should not be empty", Kind: MissingField},
			},
		},
		{
			name: "numeric values are stringified",
			body: `{"emailId":42,"password":12345}`,
			want: []FieldError{{Field: FieldEmailID, Message: "Invalid email address", Kind: Shape}},
		},
		{
			name: "object value counts as empty",
			body: `{"emailId":"john@example.com","password":{"$ne":""}}`,
			want: []FieldError{{Field: FieldPassword, Message: "Password should not be empty", Kind: MissingField}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Login().Validate(decode(t, tt.body))
			assert.Equal(t, tt.want, out.Errors)
		})
	}
}

// ── lookup ────────────────────────────────────────────────────────────────────

func TestLookup(t *testing.T) {
	p, err := Lookup(ProfileRegister)
	require.NoError(t, err)
	assert.Same(t, Register(), p)

	p, err = Lookup(ProfileLogin)
	require.NoError(t, err)
	assert.Same(t, Login(), p)

	_, err = Lookup("reset-password")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestProfiles_AllowListMatchesRules(t *testing.T) {
	for _, p := range []*Profile{Register(), Login()} {
		declared := make([]string, 0, len(p.fields))
		for _, f := range p.fields {
			declared = append(declared, f.Name)
		}
		assert.ElementsMatch(t, p.allowedFields, declared, p.Name())
	}
}
