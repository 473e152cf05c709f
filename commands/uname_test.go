package commands

import "testing"

func TestUname(t *testing.T) {
	cases := goldenTestSuite{
		"plain": {[]string{"uname"}},
		"all":   {[]string{"uname", "-a"}},
	}

	cases.Run(t, Uname)
}
