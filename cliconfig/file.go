package cliconfig

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adf-tools/adfdoc/internal/osutil"
)

type File struct {
	// The path to the file
	Path string

	// A map of key/values that was loaded from the file
	Config map[string]string
}

func (f *File) Load() error {
	f.Config = map[string]string{}

	absolutePath, err := f.AbsolutePath()
	if err != nil {
		return fmt.Errorf("getting absolute path for %s: %w", f.Path, err)
	}

	file, err := os.Open(absolutePath)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", f.Path, err)
	}

	// Make sure the config file is closed when this function finishes.
	defer file.Close() //nolint:errcheck // it's only open for reading

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fullLine := scanner.Text()
		if isIgnoredLine(fullLine) {
			continue
		}

		key, value, err := parseLine(fullLine)
		if err != nil {
			return fmt.Errorf("parsing config line %d: %w", lineNum, err)
		}

		f.Config[key] = value
	}

	return scanner.Err()
}

func (f File) AbsolutePath() (string, error) {
	return osutil.NormalizeFilePath(f.Path)
}

func (f File) Exists() bool {
	// If getting the absolute path fails, we can just assume it doesn't
	// exist...probably...
	absolutePath, err := f.AbsolutePath()
	if err != nil {
		return false
	}

	return osutil.FileExists(absolutePath)
}

func parseLine(line string) (key, value string, err error) {
	if len(line) == 0 {
		return "", "", errors.New("zero length string")
	}

	// now split key from value
	splitString := strings.SplitN(line, "=", 2)
	if len(splitString) != 2 {
		return "", "", fmt.Errorf("can't separate key from value in string %q, no = found", line)
	}

	key = strings.TrimSpace(splitString[0])
	value = strings.TrimSpace(splitString[1])

	// check if we've got quoted values
	if strings.Count(value, `"`) == 2 || strings.Count(value, "'") == 2 {
		// pull the quotes off the edges
		value = strings.Trim(value, `"'`)

		// expand quotes and newlines
		value = strings.ReplaceAll(value, `\"`, `"`)
		value = strings.ReplaceAll(value, `\n`, "\n")
	}

	return key, value, nil
}

func isIgnoredLine(line string) bool {
	trimmedLine := strings.Trim(line, " \n\t")
	return len(trimmedLine) == 0 || strings.HasPrefix(trimmedLine, "#")
}
