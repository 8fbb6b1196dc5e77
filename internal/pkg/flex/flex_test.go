package flex

import (
	"encoding/json"
	"testing"
)

func TestFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValid   bool
		wantValue   float64
	}{
		{"missing", `{}`, false, false, 0},
		{"null", `{"v":null}`, false, false, 0},
		{"number", `{"v":250.5}`, true, true, 250.5},
		{"negative", `{"v":-3}`, true, true, -3},
		{"numeric string", `{"v":"120"}`, true, true, 120},
		{"blank string", `{"v":"  "}`, false, false, 0},
		{"text", `{"v":"abc"}`, true, false, 0},
		{"bool", `{"v":true}`, true, false, 0},
		{"object", `{"v":{"x":1}}`, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				V Float `json:"v"`
			}
			if err := json.Unmarshal([]byte(tt.body), &body); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if body.V.Present != tt.wantPresent || body.V.Valid != tt.wantValid || body.V.Value != tt.wantValue {
				t.Errorf("got %+v, want present=%v valid=%v value=%v", body.V, tt.wantPresent, tt.wantValid, tt.wantValue)
			}
		})
	}
}

func TestFloatID(t *testing.T) {
	tests := []struct {
		name   string
		f      Float
		want   uint
		wantOK bool
	}{
		{"integer", NewFloat(3), 3, true},
		{"zero", NewFloat(0), 0, false},
		{"negative", NewFloat(-1), 0, false},
		{"fraction", NewFloat(1.5), 0, false},
		{"invalid", Float{Present: true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.f.ID()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ID() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
