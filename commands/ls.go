package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"

	"github.com/tablesh/tablesh/core/table"
)

// Ls lists a directory as a table with Name, Size, Modified and Mode
// columns. The Size column holds size-strings so downstream filters compare
// it by byte count.
func Ls(env *Env) (*table.Table, error) {
	opts := getopt.New()
	listAll := opts.Bool('a', "don't ignore entries starting with .")

	if err := opts.Getopt(env.Args, nil); err != nil {
		if env.Log != nil {
			env.Log.RecordInvalidInvocation(err.Error())
		}
		return nil, fmt.Errorf("usage: ls [-a] [DIR]")
	}

	target := env.Dir
	switch args := opts.Args(); len(args) {
	case 0:
	case 1:
		if filepath.IsAbs(args[0]) {
			target = args[0]
		} else {
			target = filepath.Join(env.Dir, args[0])
		}
	default:
		return nil, fmt.Errorf("usage: ls [-a] [DIR]")
	}

	infos, err := afero.ReadDir(env.FS, target)
	if err != nil {
		return nil, err
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	out := table.New("Name", "Size", "Modified", "Mode")
	for _, info := range infos {
		if !*listAll && strings.HasPrefix(info.Name(), ".") {
			continue
		}

		if err := out.AddRow(
			table.String(info.Name()),
			table.Size(HumanSize(info.Size())),
			table.String(info.ModTime().Format("2006-01-02 15:04")),
			table.String(info.Mode().String()),
		); err != nil {
			return nil, err
		}
	}

	return out, nil
}

var _ ProducerFunc = Ls

func init() {
	mustAddProducer("ls", Ls)
}
