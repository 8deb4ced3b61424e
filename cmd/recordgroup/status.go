package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

func statusCell(ok bool, colorize bool) string {
	label, color := "FAIL", text.FgRed
	if ok {
		label, color = "ok", text.FgGreen
	}
	if !colorize {
		return label
	}
	return color.Sprint(label)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
