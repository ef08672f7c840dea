package advice

import (
	"strings"
	"testing"
)

func TestMatchFeverVerbatim(t *testing.T) {
	got := Match("I have a fever of 102")
	if !strings.HasPrefix(got, "For fever management:") {
		t.Fatalf("expected fever advice, got %q", got)
	}
	if got != rules[0].response {
		t.Fatal("fever advice not returned verbatim")
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	in := "my head pain is getting worse"
	first := Match(in)
	for i := 0; i < 5; i++ {
		if Match(in) != first {
			t.Fatal("same input produced different output")
		}
	}
}

func TestMatchDefaultResponse(t *testing.T) {
	for _, in := range []string{"", "   ", "hello there", "what is the weather"} {
		if got := Match(in); got != DefaultResponse {
			t.Fatalf("input %q: expected default response, got %q", in, got)
		}
	}
}

func TestMatchOrderIsSignificant(t *testing.T) {
	// "doctor" appears in the appointment group; "fever" must still win
	// because its group is evaluated first.
	got := Match("should I see a doctor about my fever")
	if !strings.HasPrefix(got, "For fever management:") {
		t.Fatal("earlier keyword group did not take precedence")
	}

	// "urgent" alone lands on the emergency group even though medication
	// advice also mentions doctors.
	got = Match("this is urgent")
	if !strings.HasPrefix(got, "In case of medical emergency:") {
		t.Fatal("emergency group not matched")
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	if Match("FEVER") != Match("fever") {
		t.Fatal("matching is case sensitive")
	}
}

func TestMatchEveryGroup(t *testing.T) {
	tests := []struct {
		input  string
		prefix string
	}{
		{"high temperature since morning", "For fever management:"},
		{"bad headache", "For headache relief:"},
		{"dry cough at night", "For cough and cold symptoms:"},
		{"how do I book an appointment", "To book a medical appointment:"},
		{"covid vaccine dates", "About vaccinations:"},
		{"emergency help needed", "In case of medical emergency:"},
		{"missed my medication", "About medications:"},
		{"advice on nutrition please", "For healthy nutrition:"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := Match(tt.input); !strings.HasPrefix(got, tt.prefix) {
				t.Fatalf("input %q: got %q", tt.input, got)
			}
		})
	}
}
