package unique

import (
	"reflect"
	"testing"
)

func TestStringsSorted(t *testing.T) {
	testCases := []struct {
		in  []string
		out []string
	}{
		{
			in:  []string{"sky"},
			out: []string{"sky"},
		},
		{
			in:  []string{"sky", "earth"},
			out: []string{"earth", "sky"},
		},
		{
			in:  []string{"sky", "earth", "sky"},
			out: []string{"earth", "sky"},
		},
		{
			in:  []string{"planet", "planet", "planet"},
			out: []string{"planet"},
		},
	}
	for i, testCase := range testCases {
		if expected, actual := testCase.out, StringsSorted(testCase.in); !reflect.DeepEqual(actual, expected) {
			t.Errorf("[i=%v] Expected result=%+v but actual=%+v", i, expected, actual)
		}
	}
}
