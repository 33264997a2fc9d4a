package logger

import "testing"

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	if got := sanitizeValue("client_email", "a@b.co"); got != "[REDACTED]" {
		t.Fatalf("email not redacted: %v", got)
	}
	if got := sanitizeValue("jwt_secret_key", "s3cr3t"); got != "[REDACTED]" {
		t.Fatalf("secret not redacted: %v", got)
	}
	got, ok := sanitizeValue("owner_id", "acct-42").(string)
	if !ok || len(got) != len("hash:")+12 || got[:5] != "hash:" {
		t.Fatalf("owner not hashed: %v", got)
	}
	if got := sanitizeValue("client_id", int64(7)); got != int64(7) {
		t.Fatalf("plain value changed: %v", got)
	}
	nested, _ := sanitizeValue("payload", map[string]interface{}{"phone": "555", "name": "Acme"}).(map[string]interface{})
	if nested["phone"] != "[REDACTED]" || nested["name"] != "Acme" {
		t.Fatalf("nested map not sanitized: %v", nested)
	}
}

func TestNopLoggerWith(t *testing.T) {
	t.Parallel()
	l := Nop().With("service", "test")
	l.Info("hello", "owner_id", "x")
	l.Sync()
}
