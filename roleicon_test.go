package roleicon

import (
	"testing"
)

func TestValidateNamespace(t *testing.T) {
	valid := []string{"foo", "foo1", "foo_bar", "detective2"}
	for _, ns := range valid {
		if err := ValidateNamespace(ns); err != nil {
			t.Errorf("namespace %q wrongly rejected: %v", ns, err)
		}
	}

	invalid := []string{"Foo", "FOO", "fooBar", "123", ""}
	for _, ns := range invalid {
		err := ValidateNamespace(ns)
		if err == nil {
			t.Errorf("namespace %q wrongly accepted", ns)
			continue
		}
		if !IsValidationError(err) {
			t.Errorf("error for %q is not a validation error: %v", ns, err)
		}
	}
}
