package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Output           string `mapstructure:"output"`
	Wrap             bool   `mapstructure:"wrap"`
	TabWidth         int    `mapstructure:"tab_width"`
	MaxInlineDepth   int    `mapstructure:"max_inline_depth"`
	SearchLoose      bool   `mapstructure:"search_loose"`
	ColorHeading     string `mapstructure:"color_heading"`
	ColorCode        string `mapstructure:"color_code"`
	ColorCodeBg      string `mapstructure:"color_code_bg"`
	ColorLink        string `mapstructure:"color_link"`
	ColorURL         string `mapstructure:"color_url"`
	ColorQuote       string `mapstructure:"color_quote"`
	ColorHR          string `mapstructure:"color_hr"`
	ColorBullet      string `mapstructure:"color_bullet"`
	ColorImage       string `mapstructure:"color_image"`
	ColorDim         string `mapstructure:"color_dim"`
	ColorBorder      string `mapstructure:"color_border"`
	ColorFind        string `mapstructure:"color_find"`
	ColorFindCurrent string `mapstructure:"color_find_current"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper. A missing config file is not an
// error; a malformed one is reported but defaults still apply.
func Init() error {
	setDefaults()

	viper.SetConfigName("mdview")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "mdview"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MDVIEW")
	viper.AutomaticEnv()

	var readErr error
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			readErr = err
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		return err
	}
	return readErr
}

func setDefaults() {
	viper.SetDefault("output", "auto")
	viper.SetDefault("wrap", true)
	viper.SetDefault("tab_width", 4)
	viper.SetDefault("max_inline_depth", 64)
	viper.SetDefault("search_loose", false)
	viper.SetDefault("color_heading", "36")     // Cyan
	viper.SetDefault("color_code", "33")        // Yellow
	viper.SetDefault("color_code_bg", "236")    // Dark gray
	viper.SetDefault("color_link", "34")        // Blue
	viper.SetDefault("color_url", "90")         // Gray
	viper.SetDefault("color_quote", "90")       // Gray
	viper.SetDefault("color_hr", "240")         // Dim gray
	viper.SetDefault("color_bullet", "35")      // Magenta
	viper.SetDefault("color_image", "32")       // Green
	viper.SetDefault("color_dim", "241")        // Gray
	viper.SetDefault("color_border", "240")     // Dim gray
	viper.SetDefault("color_find", "3")         // Yellow background
	viper.SetDefault("color_find_current", "9") // Orange/red background
}

// ConfigFile returns the config file in use, or "" when running on defaults
func ConfigFile() string {
	return viper.ConfigFileUsed()
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetWrap returns whether long lines wrap to the terminal width
func GetWrap() bool {
	return viper.GetBool("wrap")
}

// GetTabWidth returns the tab stop width used in code blocks
func GetTabWidth() int {
	if w := viper.GetInt("tab_width"); w > 0 {
		return w
	}
	return 4
}

// GetMaxInlineDepth returns the inline nesting limit
func GetMaxInlineDepth() int {
	return viper.GetInt("max_inline_depth")
}

// GetSearchLoose returns whether find also ignores diacritics and width
func GetSearchLoose() bool {
	return viper.GetBool("search_loose")
}

// GetColorHeading returns the color for headings
func GetColorHeading() string {
	return viper.GetString("color_heading")
}

// GetColorCode returns the foreground color for code
func GetColorCode() string {
	return viper.GetString("color_code")
}

// GetColorCodeBg returns the background color for code
func GetColorCodeBg() string {
	return viper.GetString("color_code_bg")
}

// GetColorLink returns the color for link text
func GetColorLink() string {
	return viper.GetString("color_link")
}

// GetColorURL returns the color for link and image targets
func GetColorURL() string {
	return viper.GetString("color_url")
}

// GetColorQuote returns the color for blockquotes
func GetColorQuote() string {
	return viper.GetString("color_quote")
}

// GetColorHR returns the color for horizontal rules
func GetColorHR() string {
	return viper.GetString("color_hr")
}

// GetColorBullet returns the color for list bullets and quote bars
func GetColorBullet() string {
	return viper.GetString("color_bullet")
}

// GetColorImage returns the color for the image marker
func GetColorImage() string {
	return viper.GetString("color_image")
}

// GetColorDim returns the color for secondary chrome text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns the color for borders and dividers
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorFind returns the background for find matches
func GetColorFind() string {
	return viper.GetString("color_find")
}

// GetColorFindCurrent returns the background for the current find match
func GetColorFindCurrent() string {
	return viper.GetString("color_find_current")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetWrap sets line wrapping at runtime
func SetWrap(wrap bool) {
	viper.Set("wrap", wrap)
	C.Wrap = wrap
}
