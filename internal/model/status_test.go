package model

import "testing"

func TestGeneratorState_IsPreviewing(t *testing.T) {
	tests := []struct {
		state    GeneratorState
		expected bool
	}{
		{GeneratorIdle, false},
		{GeneratorDrafting, false},
		{GeneratorPreviewing, true},
	}

	for _, test := range tests {
		result := test.state.IsPreviewing()
		if result != test.expected {
			t.Errorf("GeneratorState(%s).IsPreviewing() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestGeneratorState_String(t *testing.T) {
	state := GeneratorDrafting
	expected := "Drafting"
	result := state.String()

	if result != expected {
		t.Errorf("GeneratorState.String() = %s, expected %s", result, expected)
	}
}
