package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/temirov/ftrek/internal/utils"
)

const (
	booleanFlagTypeName          = "bool"
	booleanFlagTrueLiteral       = "true"
	booleanFlagPrefix            = "--"
	argumentTerminator           = "--"
	flagValueSeparator           = "="
	errorInvalidBooleanFlagValue = "invalid boolean value %q for --%s; accepted values: %s"
)

// separateBooleanLiterals are the spellings that may follow a boolean flag as
// a separate argument. Short forms such as "t" or "1" are too likely to be a
// directory name and must be attached with "=".
var separateBooleanLiterals = map[string]struct{}{
	"true":  {},
	"false": {},
	"yes":   {},
	"no":    {},
	"on":    {},
	"off":   {},
}

// booleanFlagValue is a pflag value accepting the extended boolean spellings
// (yes/no, on/off, 1/0) in addition to true/false.
type booleanFlagValue struct {
	target  *bool
	flagKey string
}

func (value *booleanFlagValue) Set(input string) error {
	if strings.TrimSpace(input) == "" {
		input = booleanFlagTrueLiteral
	}
	parsed, recognized := utils.ParseBooleanLiteral(input)
	if !recognized {
		return fmt.Errorf(errorInvalidBooleanFlagValue, input, value.flagKey, utils.BooleanLiteralsListing)
	}
	*value.target = parsed
	return nil
}

func (value *booleanFlagValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

// registerBooleanFlag adds an extended boolean flag that may appear bare.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	*target = defaultValue
	flagSet.Var(&booleanFlagValue{target: target, flagKey: name}, name, usage)
	registered := flagSet.Lookup(name)
	registered.DefValue = strconv.FormatBool(defaultValue)
	registered.NoOptDefVal = booleanFlagTrueLiteral
}

// normalizeBooleanFlagArguments joins "--flag value" into "--flag=value" for
// boolean flags when value is one of the long boolean literals. Any other
// following argument stays positional, so "--gitignore src" and "--gitignore t"
// keep the word as the directory.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	booleanFlags := map[string]struct{}{}
	command.Flags().VisitAll(func(flag *pflag.Flag) {
		if flag.Value.Type() == booleanFlagTypeName {
			booleanFlags[flag.Name] = struct{}{}
		}
	})

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		currentArgument := arguments[index]
		if currentArgument == argumentTerminator {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		flagName, isLongFlag := strings.CutPrefix(currentArgument, booleanFlagPrefix)
		if isLongFlag && !strings.Contains(flagName, flagValueSeparator) && index+1 < len(arguments) {
			if _, isBoolean := booleanFlags[flagName]; isBoolean {
				nextArgument := arguments[index+1]
				if _, separate := separateBooleanLiterals[strings.ToLower(nextArgument)]; separate {
					normalized = append(normalized, booleanFlagPrefix+flagName+flagValueSeparator+nextArgument)
					index++
					continue
				}
			}
		}
		normalized = append(normalized, currentArgument)
	}
	return normalized
}
