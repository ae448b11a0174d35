package config

import (
	"strings"
)

const (
	diagnosticBanner = "&m————————————————————————————————————"
	diagnosticIndent = "  "
)

// Diagnose renders err as the lines of a configuration error block for the
// file named fileName. Lines keep their markup codes; sinks decide how to show them.
//
//	&m————————————————————————————————————
//	&fConfiguration Error
//	&m————————————————————————————————————
//	&fError: The value expected at the current path is missing.
//	&fFile: config.yml
//	&fPath: 
//	&fdatabase:
//	&f  port: <- Expected [Whole Number E.G. 1, 2, 3]
//	&m————————————————————————————————————
func Diagnose(fileName string, err *PathError) []string {
	lines := []string{
		diagnosticBanner,
		"&fConfiguration Error",
		diagnosticBanner,
		"&fError: " + err.Message,
		"&fFile: " + fileName,
		"&fPath: ",
	}

	lines = append(lines, pathLines(err.Path, err.Expected)...)

	if err.URL != "" {
		lines = append(lines, "&b"+err.URL+" &ffor more information")
	}

	return append(lines, diagnosticBanner)
}

func pathLines(path string, expected []string) []string {
	segments := strings.Split(path, ".")
	for len(segments) > 1 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	lines := make([]string, 0, len(segments)+len(expected))

	for depth, segment := range segments {
		indent := strings.Repeat(diagnosticIndent, depth)

		if depth < len(segments)-1 {
			lines = append(lines, "&f"+indent+segment+":")

			continue
		}

		lines = append(lines, "&f"+indent+segment+": <- Expected ["+strings.Join(expected, ", ")+"]")

		if len(expected) > 1 {
			for _, value := range expected {
				lines = append(lines, "&f"+indent+" - "+value)
			}
		}
	}

	return lines
}
