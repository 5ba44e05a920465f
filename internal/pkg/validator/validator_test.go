package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   \t\n", true},
		{"non-empty", "hello", false},
		{"padded", "  hello  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.want {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid simple", "user@example.com", true},
		{"valid with plus", "user+tag@example.com", true},
		{"valid subdomain", "user@mail.example.co.uk", true},
		{"missing at", "userexample.com", false},
		{"missing domain", "user@", false},
		{"missing tld", "user@example", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name string
		uuid string
		want bool
	}{
		{"valid v4", "7f2b6e3a-9c41-4d2e-8f5a-1b2c3d4e5f60", true},
		{"valid v7", "0190163d-8694-7840-a86e-8a73f3a0b342", true},
		{"uppercase accepted", "7F2B6E3A-9C41-4D2E-8F5A-1B2C3D4E5F60", true},
		{"missing dashes", "7f2b6e3a9c414d2e8f5a1b2c3d4e5f60", false},
		{"too short", "7f2b6e3a-9c41-4d2e-8f5a", false},
		{"not hex", "zzzzzzzz-9c41-4d2e-8f5a-1b2c3d4e5f60", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidUUID(tt.uuid); got != tt.want {
				t.Errorf("IsValidUUID(%q) = %v, want %v", tt.uuid, got, tt.want)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"valid", "2025-06-15", true},
		{"invalid month", "2025-13-01", false},
		{"wrong format", "15-06-2025", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := IsValidDate(tt.date); got != tt.want {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"with seconds", "09:00:00", true},
		{"without seconds", "09:00", true},
		{"midnight", "00:00", true},
		{"invalid hour", "25:00", false},
		{"garbage", "soon", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTimeOfDay(tt.input); got != tt.want {
				t.Errorf("IsValidTimeOfDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m["email"] != "email is required" {
		t.Errorf("unexpected message for email: %q", m["email"])
	}
}
