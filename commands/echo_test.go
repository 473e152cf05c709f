package commands

import "testing"

func TestEcho(t *testing.T) {
	cases := goldenTestSuite{
		"no-args":    {[]string{"echo"}},
		"words":      {[]string{"echo", "hello", "world"}},
		"no-newline": {[]string{"echo", "-n", "hi"}},
	}

	cases.Run(t, Echo)
}
