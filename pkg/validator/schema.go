package validator

import "strings"

// FieldError is the first failing rule of one field.
type FieldError struct {
	Field   string        `json:"field"`
	Message string        `json:"message"`
	Args    []interface{} `json:"-"`
}

// Errors lists field errors in schema order.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the error reported for name, if any.
func (e Errors) Field(name string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe, true
		}
	}
	return FieldError{}, false
}

type Field struct {
	Name  string
	Rules []Rule

	// Secret fields are checked untrimmed; surrounding spaces are part of a password.
	Secret bool
}

func NewField(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

func NewSecretField(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules, Secret: true}
}

// Schema is an ordered, immutable set of field rules.
type Schema struct {
	fields []Field
}

func NewSchema(fields ...Field) Schema {
	copied := make([]Field, len(fields))
	for i, f := range fields {
		rules := make([]Rule, len(f.Rules))
		copy(rules, f.Rules)
		copied[i] = Field{Name: f.Name, Rules: rules, Secret: f.Secret}
	}
	return Schema{fields: copied}
}

// FieldNames returns the field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Validate returns nil when every field passes.
func (s Schema) Validate(values Values) Errors {
	var errs Errors
	for _, f := range s.fields {
		value := values.Get(f.Name)
		if f.Secret {
			value = values.Raw(f.Name)
		}
		for _, rule := range f.Rules {
			if !rule.Check(value, values) {
				errs = append(errs, FieldError{Field: f.Name, Message: rule.Message, Args: rule.Args})
				break
			}
		}
	}
	return errs
}

// Form couples a schema with the decoder that builds T from values the
// schema has accepted.
type Form[T any] struct {
	name   string
	schema Schema
	decode func(Values) T
}

func NewForm[T any](name string, schema Schema, decode func(Values) T) *Form[T] {
	return &Form[T]{name: name, schema: schema, decode: decode}
}

func (f *Form[T]) Name() string {
	return f.name
}

func (f *Form[T]) Schema() Schema {
	return f.schema
}

// Validate never touches the network. T is the zero value whenever errs is non-nil.
func (f *Form[T]) Validate(values Values) (T, Errors) {
	if errs := f.schema.Validate(values); len(errs) > 0 {
		var zero T
		return zero, errs
	}
	return f.decode(values), nil
}
