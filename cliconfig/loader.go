// Package cliconfig loads command configuration structs from urfave/cli
// contexts and optional config files.
//
// It is intended for internal use by adfdoc only.
package cliconfig

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/oleiade/reflections"
	"github.com/urfave/cli"
)

type Loader struct {
	// The context that is passed when using a urfave/cli action
	CLI *cli.Context

	// The struct that the config values will be loaded into
	Config any

	// A slice of paths to files that should be used as config files
	DefaultConfigFilePaths []string

	// The file that was used when loading this configuration
	File *File
}

// Matches "arg:index" (a specific non-flag arg).
var argCLINameRE = regexp.MustCompile(`arg:(\d+)`)

// Load populates the config struct from the CLI context and any config file
// that is present, then runs validations declared on the struct's tags.
func (l *Loader) Load() error {
	// Try and find a config file, either passed in the command line using
	// --config, or in one of the default configuration file paths.
	if l.CLI.String("config") != "" {
		file := File{Path: l.CLI.String("config")}

		// Because this file was passed in manually, we should throw an
		// error if it doesn't exist.
		if !file.Exists() {
			absolutePath, _ := file.AbsolutePath()
			return fmt.Errorf("a configuration file could not be found at: %q", absolutePath)
		}
		l.File = &file
	} else {
		for _, path := range l.DefaultConfigFilePaths {
			file := File{Path: path}
			if file.Exists() {
				l.File = &file
				break
			}
		}
	}

	if l.File != nil {
		if err := l.File.Load(); err != nil {
			return fmt.Errorf("loading config file: %w", err)
		}
	}

	// Now it's onto actually setting the fields. We start by getting all
	// the fields from the configuration interface.
	fields, _ := reflections.Fields(l.Config)

	for _, fieldName := range fields {
		cliName, _ := reflections.GetFieldTag(l.Config, fieldName, "cli")
		if cliName != "" {
			if err := l.setFieldValueFromCLI(fieldName, cliName); err != nil {
				return fmt.Errorf("setting config field %s: %w", fieldName, err)
			}
		}

		validationRules, _ := reflections.GetFieldTag(l.Config, fieldName, "validate")
		if validationRules == "" {
			continue
		}

		// Determine the label for the field. Use the cli name if it
		// exists, otherwise fall back to the struct's field name.
		label, _ := reflections.GetFieldTag(l.Config, fieldName, "label")
		if label == "" {
			if cliName != "" {
				label = cliName
			} else {
				label = fieldName
			}
		}

		if err := l.validateField(fieldName, label, validationRules); err != nil {
			return err
		}
	}

	return nil
}

func (l Loader) setFieldValueFromCLI(fieldName, cliName string) error {
	fieldKind, err := reflections.GetFieldKind(l.Config, fieldName)
	if err != nil {
		return fmt.Errorf("getting the kind of struct field %q: %w", fieldName, err)
	}

	var value any

	// See if the cli option is using the arg format (arg:1)
	if argMatch := argCLINameRE.FindStringSubmatch(cliName); len(argMatch) > 0 {
		argIndex, err := strconv.Atoi(argMatch[1])
		if err != nil {
			return fmt.Errorf("converting string to int: %w", err)
		}

		// Only set the value if the args are long enough for the
		// position to exist.
		if len(l.CLI.Args()) > argIndex {
			value = l.CLI.Args()[argIndex]
		}
	} else {
		// We start by defaulting the value to whatever was provided by
		// the configuration file.
		if l.File != nil {
			if configFileValue, ok := l.File.Config[cliName]; ok {
				switch fieldKind {
				case reflect.String:
					value = configFileValue
				case reflect.Slice:
					value = strings.Split(configFileValue, ",")
				case reflect.Bool:
					value, _ = strconv.ParseBool(configFileValue)
				case reflect.Int:
					value, _ = strconv.Atoi(configFileValue)
				default:
					return fmt.Errorf("unable to convert string to type %s", fieldKind)
				}
			}
		}

		// If a value hasn't been found in a config file, but there
		// _is_ one provided by the CLI context, then use that.
		if value == nil || l.cliValueIsSet(cliName) {
			switch fieldKind {
			case reflect.String:
				value = l.CLI.String(cliName)
			case reflect.Slice:
				value = l.CLI.StringSlice(cliName)
			case reflect.Bool:
				value = l.CLI.Bool(cliName)
			case reflect.Int:
				value = l.CLI.Int(cliName)
			default:
				return fmt.Errorf("unable to handle type: %s", fieldKind)
			}
		}
	}

	if value != nil {
		if err := reflections.SetField(l.Config, fieldName, value); err != nil {
			return fmt.Errorf("setting value field %q to %q: %w", fieldName, value, err)
		}
	}

	return nil
}

func (l Loader) Errorf(format string, v ...any) error {
	suffix := fmt.Sprintf(" See: `%s %s --help`", l.CLI.App.Name, l.CLI.Command.Name)

	return fmt.Errorf(format+suffix, v...)
}

func (l Loader) cliValueIsSet(cliName string) bool {
	if l.CLI.IsSet(cliName) {
		return true
	}

	// cli.Context#IsSet only checks to see if the command was set via the
	// cli, not via the environment. So here we do some hacks to find out
	// the name of the EnvVar, and return true if it was set.
	for _, flag := range l.CLI.Command.Flags {
		name, _ := reflections.GetField(flag, "Name")
		envVar, _ := reflections.GetField(flag, "EnvVar")
		if name == cliName && envVar != "" {
			if envVarStr, ok := envVar.(string); ok {
				return os.Getenv(strings.TrimSpace(envVarStr)) != ""
			}
		}
	}

	return false
}

func (l Loader) fieldValueIsEmpty(fieldName string) bool {
	// We need to use the field kind to determine the type of empty test.
	value, _ := reflections.GetField(l.Config, fieldName)
	fieldKind, _ := reflections.GetFieldKind(l.Config, fieldName)

	switch fieldKind {
	case reflect.String:
		return value == ""
	case reflect.Slice:
		return reflect.ValueOf(value).Len() == 0
	case reflect.Bool:
		return value == false
	case reflect.Int:
		return value == 0
	default:
		panic(fmt.Sprintf("Can't determine empty-ness for field type %s", fieldKind))
	}
}

func (l Loader) validateField(fieldName, label, validationRules string) error {
	for _, rule := range strings.Split(validationRules, ",") {
		switch rule {
		case "required":
			if l.fieldValueIsEmpty(fieldName) {
				return l.Errorf("Missing %s.", label)
			}

		case "file-exists":
			value, _ := reflections.GetField(l.Config, fieldName)

			// An unset optional path is the required rule's
			// business, not this one's.
			if valueAsString, ok := value.(string); ok && valueAsString != "" {
				if _, err := os.Stat(valueAsString); err != nil {
					return fmt.Errorf("couldn't find %s located at %s: %w", label, value, err)
				}
			}

		default:
			return fmt.Errorf("unknown config validation rule %q", rule)
		}
	}

	return nil
}
