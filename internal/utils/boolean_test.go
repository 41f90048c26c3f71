package utils_test

import (
	"testing"

	"github.com/temirov/ftrek/internal/utils"
)

func TestParseBooleanLiteral(testingInstance *testing.T) {
	testCases := []struct {
		input              string
		expectedValue      bool
		expectedRecognized bool
	}{
		{input: "true", expectedValue: true, expectedRecognized: true},
		{input: " YES ", expectedValue: true, expectedRecognized: true},
		{input: "on", expectedValue: true, expectedRecognized: true},
		{input: "1", expectedValue: true, expectedRecognized: true},
		{input: "Off", expectedValue: false, expectedRecognized: true},
		{input: "n", expectedValue: false, expectedRecognized: true},
		{input: "maybe", expectedValue: false, expectedRecognized: false},
		{input: "", expectedValue: false, expectedRecognized: false},
	}

	for _, testCase := range testCases {
		actualValue, actualRecognized := utils.ParseBooleanLiteral(testCase.input)
		if actualValue != testCase.expectedValue || actualRecognized != testCase.expectedRecognized {
			testingInstance.Fatalf("ParseBooleanLiteral(%q) = (%t, %t), want (%t, %t)",
				testCase.input, actualValue, actualRecognized, testCase.expectedValue, testCase.expectedRecognized)
		}
	}
}
