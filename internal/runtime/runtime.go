// Package runtime turns a form version plus a field mapping into a navigable,
// validated multi-step wizard. State lives for one session and is discarded
// on navigation away or successful submission.
package runtime

import (
	"fmt"
	"sort"

	"github.com/Techluminate-Academy/bsn-directory/internal/blob"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
	"github.com/Techluminate-Academy/bsn-directory/internal/mapping"
)

// StepPolicy controls how the step sequence is derived from the field list.
type StepPolicy int

const (
	// StepsPopulated renders only the step numbers that actually have fields.
	StepsPopulated StepPolicy = iota
	// StepsRange renders every step from 1 to the highest declared number,
	// showing empty pages for gaps.
	StepsRange
)

// Step is one wizard page: a step number and its fields in declaration order.
type Step struct {
	Number int
	Fields []schema.FieldDefinition
}

// Runtime holds the per-session wizard state. Values are restricted to
// string, bool, []string, *blob.Pending (a not-yet-uploaded file), or an
// uploaded-file URL string.
type Runtime struct {
	fields   []schema.FieldDefinition
	byName   map[string]schema.FieldDefinition
	mapping  mapping.FieldMapping
	steps    []Step
	cursor   int
	region   string
	values   map[string]any
	errors   map[string]string
	previews map[string][]string
}

// Option configures a Runtime at construction time.
type Option func(*Runtime)

// WithStepPolicy picks the step derivation policy. Default is StepsPopulated.
func WithStepPolicy(p StepPolicy) Option {
	return func(r *Runtime) {
		r.steps = deriveSteps(r.fields, p)
	}
}

// WithRegion sets the ISO region phone numbers are validated against.
func WithRegion(region string) Option {
	return func(r *Runtime) {
		if region != "" {
			r.region = region
		}
	}
}

// New builds a wizard over fields, resolved against m.
func New(fields []schema.FieldDefinition, m mapping.FieldMapping, opts ...Option) *Runtime {
	r := &Runtime{
		fields:   fields,
		byName:   make(map[string]schema.FieldDefinition, len(fields)),
		mapping:  m,
		steps:    deriveSteps(fields, StepsPopulated),
		region:   "US",
		values:   make(map[string]any),
		errors:   make(map[string]string),
		previews: make(map[string][]string),
	}
	for _, f := range fields {
		if _, dup := r.byName[f.Name]; !dup {
			r.byName[f.Name] = f
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// deriveSteps groups fields by step number and sorts groups ascending.
// Grouping is deterministic: fields keep their declaration order inside a
// step, so rendering twice from the same version yields identical pages.
func deriveSteps(fields []schema.FieldDefinition, policy StepPolicy) []Step {
	grouped := make(map[int][]schema.FieldDefinition)
	maxStep := 0
	for _, f := range fields {
		if f.Step < 1 {
			continue
		}
		grouped[f.Step] = append(grouped[f.Step], f)
		if f.Step > maxStep {
			maxStep = f.Step
		}
	}

	var numbers []int
	switch policy {
	case StepsRange:
		for n := 1; n <= maxStep; n++ {
			numbers = append(numbers, n)
		}
	default:
		for n := range grouped {
			numbers = append(numbers, n)
		}
		sort.Ints(numbers)
	}

	steps := make([]Step, 0, len(numbers))
	for _, n := range numbers {
		steps = append(steps, Step{Number: n, Fields: grouped[n]})
	}
	return steps
}

// Steps returns the derived pages in render order.
func (r *Runtime) Steps() []Step { return r.steps }

// StepIndex returns the active page cursor.
func (r *Runtime) StepIndex() int { return r.cursor }

// Set records a field value and clears any existing error for that field
// only. Errors on other fields persist until their step is revalidated.
// Names not declared in the field list are ignored, so stray form-state keys
// never leak into the values map.
func (r *Runtime) Set(name string, value any) {
	if _, known := r.byName[name]; !known {
		return
	}
	r.values[name] = value
	delete(r.errors, name)
}

// Value returns the current value for a field, or nil.
func (r *Runtime) Value(name string) any { return r.values[name] }

// Values returns the live form state. Callers hand it to the submission
// pipeline; the map is not copied.
func (r *Runtime) Values() map[string]any { return r.values }

// Errors returns the live per-field error map.
func (r *Runtime) Errors() map[string]string { return r.errors }

// Previews returns the preview URLs seeded for a file field.
func (r *Runtime) Previews(name string) []string { return r.previews[name] }

// Fields returns the field list backing this session.
func (r *Runtime) Fields() []schema.FieldDefinition { return r.fields }

// Mapping returns the external-field mapping backing this session.
func (r *Runtime) Mapping() mapping.FieldMapping { return r.mapping }

// Next validates the active step and, on success, advances the cursor,
// clamped at the last page. Returns false when validation blocks it.
func (r *Runtime) Next() bool {
	if !r.ValidateStep(r.cursor) {
		return false
	}
	if r.cursor < len(r.steps)-1 {
		r.cursor++
	}
	return true
}

// Previous always succeeds; the cursor is clamped at zero.
func (r *Runtime) Previous() {
	if r.cursor > 0 {
		r.cursor--
	}
}

// ValidateStep checks every field on page i, writing messages into the error
// map. Returns true when the page is clean. Out-of-range indexes are clean.
func (r *Runtime) ValidateStep(i int) bool {
	if i < 0 || i >= len(r.steps) {
		return true
	}
	ok := true
	for _, f := range r.steps[i].Fields {
		if msg := r.validateField(f); msg != "" {
			r.errors[f.Name] = msg
			ok = false
		} else {
			delete(r.errors, f.Name)
		}
	}
	return ok
}

// ValidateAll re-validates every step. Required before final submission: a
// user who back-navigated may have invalidated an earlier page.
func (r *Runtime) ValidateAll() bool {
	ok := true
	for i := range r.steps {
		if !r.ValidateStep(i) {
			ok = false
		}
	}
	return ok
}

func (r *Runtime) validateField(f schema.FieldDefinition) string {
	val := r.values[f.Name]

	if f.Required && isEmpty(val) {
		return fmt.Sprintf("%s is required", f.Label)
	}
	if isEmpty(val) {
		return ""
	}

	switch f.Type {
	case schema.FieldEmail:
		if s, ok := val.(string); ok && !ValidEmail(s) {
			return "Please enter a valid email address"
		}
	case schema.FieldPhone:
		if s, ok := val.(string); ok && !ValidPhone(s, r.region) {
			return "Please enter a valid phone number"
		}
	}
	return ""
}

// isEmpty reports whether a form value counts as missing for required-field
// purposes: nil, empty string, or empty string array.
func isEmpty(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case *blob.Pending:
		return v == nil
	}
	return false
}
