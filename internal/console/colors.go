package console

// AppColors defines the program-wide semantic styles.
// Values use the {{|fg:bg:flags|}} direct tag format.
type AppColors struct {
	// Log levels
	Timestamp string
	Trace     string
	Debug     string
	Info      string
	Notice    string
	Warn      string
	Error     string
	Fatal     string

	// Fatal trace block
	FatalFooter      string
	TraceHeader      string
	TraceFooter      string
	TraceFrameNumber string
	TraceFrameLines  string
	TraceSourceFile  string
	TraceLineNumber  string
	TraceFunction    string

	// General
	ApplicationName        string
	Version                string
	File                   string
	Folder                 string
	Var                    string
	Color                  string
	Format                 string
	Palette                string
	Ratio                  string
	Pass                   string
	Fail                   string
	UserCommand            string
	UserCommandError       string
	UserCommandErrorMarker string

	// Usage
	UsageCommand string
	UsageOption  string
	UsageColor   string
	UsageFile    string
	UsageFormat  string
	UsagePalette string
	UsageVar     string
}

// Colors is the global style set used by Parse.
var Colors = AppColors{
	Timestamp: "{{|-|}}",
	Trace:     "{{|blue|}}",
	Debug:     "{{|blue|}}",
	Info:      "{{|blue|}}",
	Notice:    "{{|green|}}",
	Warn:      "{{|yellow|}}",
	Error:     "{{|red|}}",
	Fatal:     "{{|white:red|}}",

	FatalFooter:      "{{|-|}}",
	TraceHeader:      "{{|red|}}",
	TraceFooter:      "{{|red|}}",
	TraceFrameNumber: "{{|red|}}",
	TraceFrameLines:  "{{|red|}}",
	TraceSourceFile:  "{{|cyan::b|}}",
	TraceLineNumber:  "{{|yellow::b|}}",
	TraceFunction:    "{{|green::b|}}",

	ApplicationName:        "{{|cyan::b|}}",
	Version:                "{{|cyan|}}",
	File:                   "{{|cyan::b|}}",
	Folder:                 "{{|cyan::b|}}",
	Var:                    "{{|magenta|}}",
	Color:                  "{{|cyan|}}",
	Format:                 "{{|magenta|}}",
	Palette:                "{{|cyan::b|}}",
	Ratio:                  "{{|yellow::b|}}",
	Pass:                   "{{|green|}}",
	Fail:                   "{{|red|}}",
	UserCommand:            "{{|yellow::b|}}",
	UserCommandError:       "{{|red::u|}}",
	UserCommandErrorMarker: "{{|red|}}",

	UsageCommand: "{{|yellow::b|}}",
	UsageOption:  "{{|yellow|}}",
	UsageColor:   "{{|cyan|}}",
	UsageFile:    "{{|cyan::b|}}",
	UsageFormat:  "{{|magenta|}}",
	UsagePalette: "{{|cyan|}}",
	UsageVar:     "{{|magenta|}}",
}

// baseAliases are shorthand tags available alongside the Colors fields.
var baseAliases = map[string]string{
	"nc": "{{|-|}}",
	"bd": "{{|::b|}}",
	"ul": "{{|::u|}}",
	"dm": "{{|::d|}}",
}
