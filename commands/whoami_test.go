package commands

import "testing"

func TestWhoami(t *testing.T) {
	cases := goldenTestSuite{
		"basic": {[]string{"whoami"}},
	}

	cases.Run(t, Whoami)
}

func TestHostname(t *testing.T) {
	cases := goldenTestSuite{
		"basic": {[]string{"hostname"}},
	}

	cases.Run(t, Hostname)
}
