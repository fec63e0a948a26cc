package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gubarz/mdview/internal/config"
	"github.com/gubarz/mdview/internal/output"
	"github.com/gubarz/mdview/internal/parser"
	"github.com/gubarz/mdview/internal/render"
	"github.com/gubarz/mdview/internal/search"
	"github.com/gubarz/mdview/internal/source"
	"github.com/gubarz/mdview/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.2.0"

var segmentsCmd = &cobra.Command{
	Use:   "segments <file>",
	Short: "Dump the parsed segments of a Markdown file",
	Long: `Prints one line per segment: the quoted segment text, a tab,
and the segment's tags in brackets.`,
	Args: cobra.ExactArgs(1),
	RunE: runSegments,
}

var rootCmd = &cobra.Command{
	Use:   "mdview [file]",
	Short: "Terminal Markdown viewer",
	Long: `View Markdown files in the terminal.

Without a file a welcome document is shown. When stdout is not a
terminal the document is printed instead of opening the pager.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(segmentsCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "", "Output mode: auto, view, print, copy, segments")
	rootCmd.PersistentFlags().Bool("print", false, "Print rendered document (shorthand for -o print)")
	rootCmd.PersistentFlags().Bool("copy", false, "Copy plain text (shorthand for -o copy)")
	rootCmd.PersistentFlags().StringP("find", "q", "", "Initial find query in the pager")
	rootCmd.PersistentFlags().Bool("no-wrap", false, "Do not wrap long lines")
	rootCmd.PersistentFlags().BoolP("benchmark", "b", false, "Benchmark parse time and exit")
	rootCmd.PersistentFlags().Bool("debug", false, "Write pager logs to "+ui.DebugLogFile)

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func newParser() *parser.Parser {
	return parser.New(parser.WithMaxDepth(config.GetMaxInlineDepth()))
}

func newRenderer() *render.Renderer {
	styles := render.DefaultStyles()
	styles.LoadFromConfig()
	return render.NewRenderer(styles, config.GetTabWidth())
}

func runSegments(cmd *cobra.Command, args []string) error {
	f, err := source.Load(args[0])
	if err != nil {
		return err
	}
	return output.NewWriter(os.Stdout, nil).Write(output.ModeSegments, newParser().Parse(f.Text))
}

func runView(cmd *cobra.Command, args []string) error {
	// Handle output mode flags
	if p, _ := cmd.Flags().GetBool("print"); p {
		config.SetOutput("print")
	} else if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput("copy")
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}
	if noWrap, _ := cmd.Flags().GetBool("no-wrap"); noWrap {
		config.SetWrap(false)
	}

	mode, err := output.ResolveMode(config.GetOutput(), output.StdoutIsTerminal())
	if err != nil {
		return err
	}

	var f *source.File
	if len(args) > 0 {
		if f, err = source.Load(args[0]); err != nil {
			return err
		}
	} else {
		f = ui.Welcome()
	}

	p := newParser()

	if benchmark, _ := cmd.Flags().GetBool("benchmark"); benchmark {
		return runBenchmark(p, f)
	}

	if mode == output.ModeView {
		query, _ := cmd.Flags().GetString("find")
		debug, _ := cmd.Flags().GetBool("debug")
		return ui.Run(ui.Options{
			File:     f,
			Parser:   p,
			Renderer: newRenderer(),
			Finder:   search.New(config.GetSearchLoose()),
			Wrap:     config.GetWrap(),
			Query:    query,
		}, debug)
	}

	w := output.NewWriter(os.Stdout, newRenderer()).WithClipboard(output.SystemClipboard())
	if config.GetWrap() {
		w = w.WithWidth(output.TerminalWidth())
	}
	return w.Write(mode, p.Parse(f.Text))
}

func runBenchmark(p *parser.Parser, f *source.File) error {
	start := time.Now()
	segments := p.Parse(f.Text)
	elapsed := time.Since(start)

	// Force GC and get memory stats
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("Parsed %s (%s) into %d segments in %v\n", f.Name, source.HumanSize(f.Size), len(segments), elapsed)
	fmt.Printf("Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
