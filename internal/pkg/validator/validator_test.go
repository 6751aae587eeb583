package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-05-15"); !ok {
		t.Error("IsValidDate(2024-05-15) = false, want true")
	}
	invalid := []string{"2024-13-01", "2024-02-30", "15-05-2024", "2024/05/15", "", "yesterday"}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"09:00", "23:59", "9:05 AM", "12:00 pm", "5:30PM", " 09:00 "}
	invalid := []string{"", "25:00", "09:60", "garbage", "9 AM"}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Office", "WorkFromHome"}
	if !IsInSlice("Office", slice) {
		t.Error("IsInSlice(Office) = false, want true")
	}
	if IsInSlice("office", slice) {
		t.Error("IsInSlice is case-sensitive; got true for lowercase")
	}
	if IsInSlice("Remote", slice) {
		t.Error("IsInSlice(Remote) = true, want false")
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	if !IsValidEmployeeCode("2024-0012") {
		t.Error("IsValidEmployeeCode(2024-0012) = false, want true")
	}
	for _, code := range []string{"20240012", "24-0012", "abcd-0012", ""} {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidMonthYear(t *testing.T) {
	if !IsValidMonth(1) || !IsValidMonth(12) {
		t.Error("IsValidMonth rejects valid months")
	}
	if IsValidMonth(0) || IsValidMonth(13) {
		t.Error("IsValidMonth accepts invalid months")
	}
	if !IsValidYear(2024) {
		t.Error("IsValidYear(2024) = false, want true")
	}
	if IsValidYear(1999) || IsValidYear(2101) {
		t.Error("IsValidYear accepts out-of-window years")
	}
}
