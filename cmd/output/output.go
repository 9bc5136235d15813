package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/sysregs/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSetting = errors.New("invalid setting")

type Format string

const (
	Format_Text Format = "text"
	Format_Yaml Format = "yaml"
)

type ColorMode string

const (
	ColorMode_Auto   ColorMode = "auto"
	ColorMode_Always ColorMode = "always"
	ColorMode_Never  ColorMode = "never"
)

var (
	RegisterColor = color.New(color.FgCyan, color.Bold)
	FieldColor    = color.New(color.FgGreen)
	RangeColor    = color.New(color.FgHiBlack)
	ValueColor    = color.New(color.FgMagenta)
	SymbolColor   = color.New(color.FgYellow)
	ErrorColor    = color.New(color.FgRed, color.Bold)
)

func init() {
	viper.SetDefault("output", string(Format_Text))
	viper.SetDefault("color", string(ColorMode_Auto))
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.file", "")
}

// Returns the configured output format
func CurrentFormat() (Format, error) {
	format := Format(strings.ToLower(viper.GetString("output")))

	switch format {
	case Format_Text, Format_Yaml:
		return format, nil
	}

	return "", utils.MakeError(ErrInvalidSetting, "output format '%v' (supported formats: %v, %v)", format, Format_Text, Format_Yaml)
}

// Enables or disables colored output according to the configured color mode. In auto mode
// colors are used only if out is a terminal
func ConfigureColor(out *os.File) error {
	mode := ColorMode(strings.ToLower(viper.GetString("color")))

	switch mode {
	case ColorMode_Auto:
		color.NoColor = !term.IsTerminal(int(out.Fd()))
	case ColorMode_Always:
		color.NoColor = false
	case ColorMode_Never:
		color.NoColor = true
	default:
		return utils.MakeError(ErrInvalidSetting, "color mode '%v' (supported modes: %v, %v, %v)", mode, ColorMode_Auto, ColorMode_Always, ColorMode_Never)
	}

	return nil
}

// Writes a value as a yaml document
func WriteYaml(out io.Writer, value any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return err
	}

	return encoder.Close()
}

// Prints an error to stderr and exits with the given code
func Fail(err error, code int) {
	fmt.Fprintf(os.Stderr, "%v %v\n", ErrorColor.Sprint("error:"), err)
	os.Exit(code)
}
