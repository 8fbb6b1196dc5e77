package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Sales@123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "Sales@123" {
		t.Fatal("Hash() returned the plain password")
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", "Sales@123", hash, true},
		{"wrong password", "sales@123", hash, false},
		{"empty password", "", hash, false},
		{"empty hash", "Sales@123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verify(tt.password, tt.hash); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}
