package commands

import (
	"fmt"

	getopt "github.com/pborman/getopt/v2"

	"github.com/tablesh/tablesh/core/table"
)

type procEntry struct {
	user    string
	pid     int64
	cpu     float64
	memory  string
	started string
	command string
}

// The process snapshot the shell reports. Session entries are always shown,
// system entries only with -a.
var (
	psSystem = []procEntry{
		{"root", 1, 2.7, "9.6mb", "05:04", "/sbin/init"},
		{"root", 226, 0.3, "7.7mb", "05:04", "/lib/systemd/systemd-journald"},
		{"root", 236, 0.1, "4.5mb", "05:04", "/lib/systemd/systemd-udevd"},
		{"message+", 343, 0.0, "3.5mb", "05:04", "/usr/bin/dbus-daemon"},
		{"root", 501, 0.0, "6.6mb", "05:04", "/usr/sbin/sshd -D"},
		{"root", 508, 0.0, "2.6mb", "05:04", "/usr/sbin/cron -f"},
	}
	psSession = []procEntry{
		{"root", 576, 0.0, "3.5mb", "05:04", "tablesh"},
		{"root", 581, 0.0, "3.0mb", "05:05", "ps"},
	}
)

// Ps reports a process snapshot as a table with User, Pid, Cpu, Memory,
// Started and Command columns. Memory holds size-strings so the table engine
// compares it by byte count.
func Ps(env *Env) (*table.Table, error) {
	opts := getopt.New()
	showAll := opts.Bool('a', "show system processes too")

	if err := opts.Getopt(env.Args, nil); err != nil {
		if env.Log != nil {
			env.Log.RecordInvalidInvocation(err.Error())
		}
		return nil, fmt.Errorf("usage: ps [-a]")
	}

	entries := psSession
	if *showAll {
		entries = append(append([]procEntry{}, psSystem...), psSession...)
	}

	out := table.New("User", "Pid", "Cpu", "Memory", "Started", "Command")
	for _, e := range entries {
		out.MustAddRow(
			table.String(e.user),
			table.Int(e.pid),
			table.Float(e.cpu),
			table.Size(e.memory),
			table.String(e.started),
			table.String(e.command),
		)
	}

	return out, nil
}

var _ ProducerFunc = Ps

func init() {
	mustAddProducer("ps", Ps)
}
