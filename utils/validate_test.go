package utils

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "user@taskmon.dev", false},
		{"valid with subdomain", "user@mail.taskmon.dev", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"missing at", "usertaskmon.dev", true},
		{"missing local part", "@taskmon.dev", true},
		{"missing domain", "user@", true},
		{"no dot in domain", "user@localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) err = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("short password accepted")
	}
	if err := ValidatePassword("longenough"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
}

func TestValidateDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Ash", false},
		{"minimum length", "Al", false},
		{"too short", "A", true},
		{"too long", strings.Repeat("a", 51), true},
		{"whitespace trimmed", "  A  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDisplayName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDisplayName(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuestTitle(t *testing.T) {
	if err := ValidateQuestTitle(""); err == nil {
		t.Error("empty title accepted")
	}
	if err := ValidateQuestTitle("   "); err == nil {
		t.Error("whitespace title accepted")
	}
	if err := ValidateQuestTitle(strings.Repeat("a", 101)); err == nil {
		t.Error("overlong title accepted")
	}
	if err := ValidateQuestTitle("Water the plants"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
}

func TestValidateQuestDescription(t *testing.T) {
	if err := ValidateQuestDescription(strings.Repeat("a", 501)); err == nil {
		t.Error("overlong description accepted")
	}
	if err := ValidateQuestDescription(""); err != nil {
		t.Errorf("empty description rejected: %v", err)
	}
}

func TestValidateQuestDifficulty(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard"} {
		if err := ValidateQuestDifficulty(ok); err != nil {
			t.Errorf("ValidateQuestDifficulty(%q) rejected: %v", ok, err)
		}
	}
	if err := ValidateQuestDifficulty("nightmare"); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestValidateQuestType(t *testing.T) {
	for _, ok := range []string{"", "daily", "weekly", "normal"} {
		if err := ValidateQuestType(ok); err != nil {
			t.Errorf("ValidateQuestType(%q) rejected: %v", ok, err)
		}
	}
	if err := ValidateQuestType("yearly"); err == nil {
		t.Error("unknown type accepted")
	}
}

func TestValidateRewardXP(t *testing.T) {
	tests := []struct {
		name    string
		xp      int
		wantErr bool
	}{
		{"zero falls back to default", 0, false},
		{"normal", 50, false},
		{"maximum", 1000, false},
		{"negative", -1, true},
		{"too large", 1001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRewardXP(tt.xp)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRewardXP(%d) err = %v, wantErr %v", tt.xp, err, tt.wantErr)
			}
		})
	}
}
