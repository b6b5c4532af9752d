package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
}

type command struct {
	name     string
	row, col int
}

func parseRowCol(args []string) (row, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, errors.New("row must be an int")
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, errors.New("column must be an int")
	}
	return row, col, nil
}

func parseCommand(line string) (command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return command{}, errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return command{}, fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return command{}, fmt.Errorf(
			"command %q takes %d arguments, got %d", parts[0], nargs, len(parts)-1,
		)
	}
	cmd := command{name: parts[0]}
	if nargs == 2 {
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return command{}, err
		}
		cmd.row, cmd.col = row, col
	}
	return cmd, nil
}

// splitCommands yields the non-blank lines of a client frame.
func splitCommands(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
